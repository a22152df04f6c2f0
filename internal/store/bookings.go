package store

import (
	"time"

	"github.com/aikerim-n/uni-carpool/internal/models"
	"github.com/aikerim-n/uni-carpool/internal/policy"
)

// BookTrip creates a pending seat request for a passenger. Seats are not
// decremented here; that happens only when the driver confirms. Any
// existing booking by this passenger on this trip blocks a new request,
// even a rejected one.
func (s *Store) BookTrip(tripID, userID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	trip := d.Trip(tripID)
	if trip == nil {
		return nil, ErrTripNotFound
	}
	if trip.DriverID == userID {
		return nil, ErrSelfBooking
	}
	if d.BookingFor(tripID, userID) != nil {
		return nil, ErrDuplicateBooking
	}
	if trip.Seats <= 0 {
		return nil, ErrNoSeatsAvailable
	}
	booking := models.Booking{
		ID:        d.TakeID(),
		TripID:    tripID,
		UserID:    userID,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	d.Bookings = append(d.Bookings, booking)
	if err := s.commit(d); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus moves a booking between states on behalf of the
// parent trip's driver. Seat accounting rides on the confirmed edge:
// entering confirmed takes a seat (and fails if none is left), leaving
// confirmed for rejected gives it back. Re-asserting the current status
// or moving between pending and rejected touches no seats, so redundant
// calls are idempotent.
func (s *Store) UpdateBookingStatus(bookingID uint, status models.BookingStatus, userID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	d, err := s.load()
	if err != nil {
		return nil, err
	}
	booking := d.Booking(bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	trip := d.Trip(booking.TripID)
	if trip == nil {
		return nil, ErrTripNotFound
	}
	if !s.owner.Can(userID, policy.ActionUpdate, *trip) {
		return nil, ErrPermissionDenied
	}

	switch {
	case status == models.StatusConfirmed && booking.Status != models.StatusConfirmed:
		if trip.Seats <= 0 {
			return nil, ErrNoSeatsAvailable
		}
		trip.Seats--
	case status == models.StatusRejected && booking.Status == models.StatusConfirmed:
		trip.Seats++
	}

	booking.Status = status
	if err := s.commit(d); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetUserBookings returns the bookings a passenger has placed, each with
// a snapshot of its parent trip and the driver's display name.
func (s *Store) GetUserBookings(userID uint) ([]models.BookingWithTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	out := []models.BookingWithTrip{}
	for _, b := range d.Bookings {
		if b.UserID != userID {
			continue
		}
		item := models.BookingWithTrip{Booking: b}
		if trip := d.Trip(b.TripID); trip != nil {
			item.Trip = summarize(d, *trip)
		}
		out = append(out, item)
	}
	return out, nil
}
