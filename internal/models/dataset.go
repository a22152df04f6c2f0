package models

// Dataset is the whole persisted table set. It serializes to the single
// JSON document kept under the fixed storage key; table and field names
// match the original browser-storage document, plus the id high-water
// mark NextID.
type Dataset struct {
	NextID   uint      `json:"nextId,omitempty"`
	Users    []User    `json:"users"`
	Trips    []Trip    `json:"trips"`
	Bookings []Booking `json:"bookings"`
	Reviews  []Review  `json:"reviews"`
}

// TakeID returns a fresh surrogate key and advances the persisted
// high-water mark. The mark only ever grows, so the id of a deleted row
// is never reissued to a later entity. A document without the mark (or
// with a stale one) is caught up to the highest id in use first.
func (d *Dataset) TakeID() uint {
	if max := d.maxID(); d.NextID <= max {
		d.NextID = max + 1
	}
	id := d.NextID
	d.NextID++
	return id
}

func (d *Dataset) maxID() uint {
	var max uint
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	for _, t := range d.Trips {
		if t.ID > max {
			max = t.ID
		}
	}
	for _, b := range d.Bookings {
		if b.ID > max {
			max = b.ID
		}
	}
	for _, r := range d.Reviews {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}

// User returns a pointer into the Users table, or nil.
func (d *Dataset) User(id uint) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// UserByUsername returns a pointer into the Users table, or nil.
func (d *Dataset) UserByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// Trip returns a pointer into the Trips table, or nil.
func (d *Dataset) Trip(id uint) *Trip {
	for i := range d.Trips {
		if d.Trips[i].ID == id {
			return &d.Trips[i]
		}
	}
	return nil
}

// Booking returns a pointer into the Bookings table, or nil.
func (d *Dataset) Booking(id uint) *Booking {
	for i := range d.Bookings {
		if d.Bookings[i].ID == id {
			return &d.Bookings[i]
		}
	}
	return nil
}

// BookingFor returns the booking a user holds on a trip, whatever its
// status, or nil.
func (d *Dataset) BookingFor(tripID, userID uint) *Booking {
	for i := range d.Bookings {
		if d.Bookings[i].TripID == tripID && d.Bookings[i].UserID == userID {
			return &d.Bookings[i]
		}
	}
	return nil
}

// ReviewBy returns the review a user wrote for a trip, or nil.
func (d *Dataset) ReviewBy(tripID, fromUserID uint) *Review {
	for i := range d.Reviews {
		if d.Reviews[i].TripID == tripID && d.Reviews[i].FromUserID == fromUserID {
			return &d.Reviews[i]
		}
	}
	return nil
}
