package models

import "time"

// BookingStatus is the lifecycle state of a seat request. There is no
// terminal state: the driver may flip a booking between any two states,
// seat accounting is handled on the confirmed transitions.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// Valid reports whether s is one of the three known statuses.
func (s BookingStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRejected
}

// User is a student or staff member. Password holds a bcrypt hash; it is
// part of the persisted document but cleared from every record the store
// hands back to callers.
type User struct {
	ID             uint    `json:"id"`
	Username       string  `json:"username"`
	Password       string  `json:"password,omitempty"`
	Name           string  `json:"name"`
	Faculty        string  `json:"faculty"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"reviewCount"`
	IsStaff        bool    `json:"isStaff"`
	EmailConfirmed bool    `json:"email_confirmed"`
}

// Public returns a copy safe to hand to callers (credential hash removed).
func (u User) Public() User {
	u.Password = ""
	return u
}

// Trip is a one-off car trip offered by a driver. Seats counts remaining
// open seats and is only moved by booking status transitions.
type Trip struct {
	ID           uint        `json:"id"`
	DriverID     uint        `json:"driver_id"`
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	OriginCoords *[2]float64 `json:"originCoords,omitempty"`
	DestCoords   *[2]float64 `json:"destCoords,omitempty"`
	Date         time.Time   `json:"date"`
	Seats        int         `json:"seats"`
	Price        int         `json:"price"`
	Description  string      `json:"description"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OwnerID implements policy.Ownable: the owning driver.
func (t Trip) OwnerID() uint { return t.DriverID }

// Booking is a passenger's seat request on a trip. Status changes never
// delete the row; bookings double as the request history.
type Booking struct {
	ID        uint          `json:"id"`
	TripID    uint          `json:"trip_id"`
	UserID    uint          `json:"userId"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Review is a passenger's one-time rating of a driver for a trip.
// Immutable once written; it feeds the driver's aggregate rating.
type Review struct {
	ID         uint      `json:"id"`
	TripID     uint      `json:"trip_id"`
	FromUserID uint      `json:"fromUserId"`
	ToUserID   uint      `json:"toUserId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
}
