package store

import "errors"

// Domain errors. Every store operation either returns a success value or
// exactly one of these; all are caused by invalid caller intent and are
// never retried internally.
var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrDuplicateUsername  = errors.New("duplicate_username")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrTripNotFound       = errors.New("trip_not_found")
	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrPermissionDenied   = errors.New("permission_denied")
	ErrSelfBooking        = errors.New("cannot_book_own_trip")
	ErrDuplicateBooking   = errors.New("already_booked")
	ErrNoSeatsAvailable   = errors.New("no_seats_available")
	ErrDuplicateReview    = errors.New("already_reviewed")
	ErrInvalidStatus      = errors.New("invalid_status")
)
