package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aikerim-n/uni-carpool/internal/store"
)

func TestGetTripsSortedAndAnnotated(t *testing.T) {
	s := newTestStore(t)
	driver := registerUser(t, s, "yerlan")

	late := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	early := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := s.CreateTrip(store.TripInput{Origin: "A", Destination: "B", Date: late, Seats: 2}, driver); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateTrip(store.TripInput{Origin: "C", Destination: "D", Date: early, Seats: 2}, driver); err != nil {
		t.Fatalf("create: %v", err)
	}

	trips, err := s.GetTrips()
	if err != nil {
		t.Fatalf("get trips: %v", err)
	}
	for i := 1; i < len(trips); i++ {
		if trips[i].Date.Before(trips[i-1].Date) {
			t.Fatalf("trips not sorted by date: %v after %v", trips[i].Date, trips[i-1].Date)
		}
	}
	found := false
	for _, tr := range trips {
		if tr.DriverID == driver {
			found = true
			if tr.DriverName != "User yerlan" {
				t.Fatalf("missing driver annotation: %+v", tr)
			}
		}
	}
	if !found {
		t.Fatalf("created trips missing from board")
	}
}

func TestGetTripJoins(t *testing.T) {
	s := newTestStore(t)
	driver := registerUser(t, s, "nursultan")
	passenger := registerUser(t, s, "aliya")

	trip, err := s.CreateTrip(store.TripInput{Origin: "Campus", Destination: "Airport", Seats: 3, Price: 500}, driver)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.BookTrip(trip.ID, passenger); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := s.AddReview(trip.ID, passenger, driver, 4, "smooth ride"); err != nil {
		t.Fatalf("review: %v", err)
	}

	detail, err := s.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("get trip: %v", err)
	}
	if detail.Driver == nil || detail.Driver.ID != driver {
		t.Fatalf("driver join missing: %+v", detail.Driver)
	}
	if detail.Driver.Password != "" {
		t.Fatalf("driver join leaked credential hash")
	}
	if len(detail.Bookings) != 1 || detail.Bookings[0].UserID != passenger {
		t.Fatalf("bookings join wrong: %+v", detail.Bookings)
	}
	if len(detail.Reviews) != 1 || detail.Reviews[0].Rating != 4 {
		t.Fatalf("reviews join wrong: %+v", detail.Reviews)
	}

	if _, err := s.GetTrip(999999); !errors.Is(err, store.ErrTripNotFound) {
		t.Fatalf("expected trip_not_found got %v", err)
	}
}

func TestUpdateTripOwnerOnly(t *testing.T) {
	s := newTestStore(t)
	owner := registerUser(t, s, "daniyar")
	other := registerUser(t, s, "asel")

	trip, err := s.CreateTrip(store.TripInput{Origin: "A", Destination: "B", Seats: 2, Price: 100}, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := 250
	if _, err := s.UpdateTrip(trip.ID, store.TripUpdate{Price: &price}, other); !errors.Is(err, store.ErrPermissionDenied) {
		t.Fatalf("expected permission_denied got %v", err)
	}

	dest := "Railway Station"
	updated, err := s.UpdateTrip(trip.ID, store.TripUpdate{Price: &price, Destination: &dest}, owner)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 250 || updated.Destination != dest || updated.Origin != "A" {
		t.Fatalf("shallow merge wrong: %+v", updated)
	}

	if _, err := s.UpdateTrip(999999, store.TripUpdate{Price: &price}, owner); !errors.Is(err, store.ErrTripNotFound) {
		t.Fatalf("expected trip_not_found got %v", err)
	}
}

func TestDeleteTripPermissions(t *testing.T) {
	s := newTestStore(t)
	owner := registerUser(t, s, "timur")
	other := registerUser(t, s, "zhanar")

	trip, err := s.CreateTrip(store.TripInput{Origin: "A", Destination: "B", Seats: 2}, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteTrip(trip.ID, other); !errors.Is(err, store.ErrPermissionDenied) {
		t.Fatalf("expected permission_denied got %v", err)
	}

	// The seeded admin account is staff and may delete anyone's trip.
	staff, err := s.Login("admin", "password")
	if err != nil {
		t.Fatalf("staff login: %v", err)
	}
	if err := s.DeleteTrip(trip.ID, staff.User.ID); err != nil {
		t.Fatalf("staff delete: %v", err)
	}

	trips, err := s.GetTrips()
	if err != nil {
		t.Fatalf("get trips: %v", err)
	}
	for _, tr := range trips {
		if tr.ID == trip.ID {
			t.Fatalf("deleted trip still on board")
		}
	}

	if err := s.DeleteTrip(trip.ID, owner); !errors.Is(err, store.ErrTripNotFound) {
		t.Fatalf("expected trip_not_found got %v", err)
	}
}

func TestDeleteTripCascadesBookingsAndReviews(t *testing.T) {
	s := newTestStore(t)
	owner := registerUser(t, s, "galym")
	passenger := registerUser(t, s, "saule")

	trip, err := s.CreateTrip(store.TripInput{Origin: "A", Destination: "B", Seats: 2}, owner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.BookTrip(trip.ID, passenger); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := s.AddReview(trip.ID, passenger, owner, 5, "thanks"); err != nil {
		t.Fatalf("review: %v", err)
	}

	if err := s.DeleteTrip(trip.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	bookings, err := s.GetUserBookings(passenger)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected bookings cascaded, got %d", len(bookings))
	}
	reviews, err := s.GetReviewsForUser(owner)
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected reviews cascaded, got %d", len(reviews))
	}

	// The aggregate rating is the mean of ratings ever applied; cascading
	// the review rows leaves it untouched.
	u, err := s.GetUser(owner)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Rating != 5.0 || u.ReviewCount != 1 {
		t.Fatalf("aggregate changed by cascade: rating=%v count=%d", u.Rating, u.ReviewCount)
	}
}

func TestGetUserTrips(t *testing.T) {
	s := newTestStore(t)
	owner := registerUser(t, s, "meirzhan")

	if _, err := s.CreateTrip(store.TripInput{Origin: "A", Destination: "B", Seats: 1}, owner); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateTrip(store.TripInput{Origin: "C", Destination: "D", Seats: 1}, owner); err != nil {
		t.Fatalf("create: %v", err)
	}

	trips, err := s.GetUserTrips(owner)
	if err != nil {
		t.Fatalf("get user trips: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips got %d", len(trips))
	}
	for _, tr := range trips {
		if tr.DriverID != owner {
			t.Fatalf("foreign trip in result: %+v", tr)
		}
	}
}
