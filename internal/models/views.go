package models

// Read models returned by the store's query operations. These are
// denormalized snapshots for display convenience; callers never mutate
// them back into the store.

// TripSummary is a trip annotated with the owning driver's display data,
// as shown on the trip board.
type TripSummary struct {
	Trip
	DriverName   string  `json:"driverName"`
	DriverRating float64 `json:"driverRating"`
}

// TripDetail is a trip joined with its full driver record, bookings and
// reviews, as shown on the trip page.
type TripDetail struct {
	Trip
	Driver   *User     `json:"driver,omitempty"`
	Bookings []Booking `json:"bookings"`
	Reviews  []Review  `json:"reviews"`
}

// BookingWithTrip is a booking joined with a snapshot of its parent trip.
type BookingWithTrip struct {
	Booking
	Trip TripSummary `json:"trip"`
}

// ReviewWithAuthor is a review annotated with the reviewer's display name.
type ReviewWithAuthor struct {
	Review
	AuthorName string `json:"authorName"`
}

// Session is the success shape shared by Login and Register: the user
// record plus a signed bearer token the caller keeps for its persisted
// session convention.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
