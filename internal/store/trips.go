package store

import (
	"sort"
	"time"

	"github.com/aikerim-n/uni-carpool/internal/models"
	"github.com/aikerim-n/uni-carpool/internal/policy"
)

// TripInput is the trip data supplied by the owning driver on create.
type TripInput struct {
	Origin       string
	Destination  string
	OriginCoords *[2]float64
	DestCoords   *[2]float64
	Date         time.Time
	Seats        int
	Price        int
	Description  string
}

// TripUpdate carries a partial trip edit; nil fields are left alone.
type TripUpdate struct {
	Origin       *string
	Destination  *string
	OriginCoords *[2]float64
	DestCoords   *[2]float64
	Date         *time.Time
	Seats        *int
	Price        *int
	Description  *string
}

// GetTrips returns every trip sorted by departure date ascending, each
// annotated with the owning driver's name and rating for the trip board.
func (s *Store) GetTrips() ([]models.TripSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	trips := make([]models.TripSummary, 0, len(d.Trips))
	for _, t := range d.Trips {
		trips = append(trips, summarize(d, t))
	}
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].Date.Before(trips[j].Date)
	})
	return trips, nil
}

func summarize(d *models.Dataset, t models.Trip) models.TripSummary {
	sum := models.TripSummary{Trip: t}
	if driver := d.User(t.DriverID); driver != nil {
		sum.DriverName = driver.Name
		sum.DriverRating = driver.Rating
	}
	return sum
}

// GetTrip returns one trip joined with its full driver record, its
// bookings and its reviews.
func (s *Store) GetTrip(id uint) (*models.TripDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	trip := d.Trip(id)
	if trip == nil {
		return nil, ErrTripNotFound
	}
	detail := models.TripDetail{
		Trip:     *trip,
		Bookings: []models.Booking{},
		Reviews:  []models.Review{},
	}
	if driver := d.User(trip.DriverID); driver != nil {
		pub := driver.Public()
		detail.Driver = &pub
	}
	for _, b := range d.Bookings {
		if b.TripID == trip.ID {
			detail.Bookings = append(detail.Bookings, b)
		}
	}
	for _, r := range d.Reviews {
		if r.TripID == trip.ID {
			detail.Reviews = append(detail.Reviews, r)
		}
	}
	return &detail, nil
}

// CreateTrip adds a trip owned by the given driver. Field validation is
// the caller's job; the store only assigns identity and ownership.
func (s *Store) CreateTrip(in TripInput, driverID uint) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	trip := models.Trip{
		ID:           d.TakeID(),
		DriverID:     driverID,
		Origin:       in.Origin,
		Destination:  in.Destination,
		OriginCoords: in.OriginCoords,
		DestCoords:   in.DestCoords,
		Date:         in.Date,
		Seats:        in.Seats,
		Price:        in.Price,
		Description:  in.Description,
		CreatedAt:    time.Now().UTC(),
	}
	d.Trips = append(d.Trips, trip)
	if err := s.commit(d); err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTrip merges the provided fields over an existing trip. Only the
// owning driver may edit; staff have no bypass here.
func (s *Store) UpdateTrip(id uint, in TripUpdate, userID uint) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	trip := d.Trip(id)
	if trip == nil {
		return nil, ErrTripNotFound
	}
	if !s.owner.Can(userID, policy.ActionUpdate, *trip) {
		return nil, ErrPermissionDenied
	}
	if in.Origin != nil {
		trip.Origin = *in.Origin
	}
	if in.Destination != nil {
		trip.Destination = *in.Destination
	}
	if in.OriginCoords != nil {
		trip.OriginCoords = in.OriginCoords
	}
	if in.DestCoords != nil {
		trip.DestCoords = in.DestCoords
	}
	if in.Date != nil {
		trip.Date = *in.Date
	}
	if in.Seats != nil {
		trip.Seats = *in.Seats
	}
	if in.Price != nil {
		trip.Price = *in.Price
	}
	if in.Description != nil {
		trip.Description = *in.Description
	}
	if err := s.commit(d); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip removes a trip together with its bookings and reviews.
// Allowed to the owning driver, or to any staff user.
func (s *Store) DeleteTrip(id, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}
	trip := d.Trip(id)
	if trip == nil {
		return ErrTripNotFound
	}
	p := policy.NewStaffBypassPolicy(s.owner, func(uid uint) bool {
		u := d.User(uid)
		return u != nil && u.IsStaff
	})
	if !p.Can(userID, policy.ActionDelete, *trip) {
		return ErrPermissionDenied
	}

	trips := d.Trips[:0]
	for _, t := range d.Trips {
		if t.ID != id {
			trips = append(trips, t)
		}
	}
	d.Trips = trips

	bookings := d.Bookings[:0]
	for _, b := range d.Bookings {
		if b.TripID != id {
			bookings = append(bookings, b)
		}
	}
	d.Bookings = bookings

	reviews := d.Reviews[:0]
	for _, r := range d.Reviews {
		if r.TripID != id {
			reviews = append(reviews, r)
		}
	}
	d.Reviews = reviews

	return s.commit(d)
}

// GetUserTrips returns the trips owned by a user, unenriched.
func (s *Store) GetUserTrips(userID uint) ([]models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	trips := []models.Trip{}
	for _, t := range d.Trips {
		if t.DriverID == userID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}
