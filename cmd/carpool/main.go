package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aikerim-n/uni-carpool/internal/auth"
	"github.com/aikerim-n/uni-carpool/internal/config"
	"github.com/aikerim-n/uni-carpool/internal/db"
	"github.com/aikerim-n/uni-carpool/internal/store"
	"github.com/aikerim-n/uni-carpool/internal/validation"
)

var (
	seedOnlyFlag   = flag.Bool("seed-only", false, "Ensure the bootstrap dataset exists and exit")
	resetFlag      = flag.Bool("reset", false, "Drop the persisted dataset and reseed")
	registerFlag   = flag.String("register", "", "Register an account: username,password,name,faculty,email[,phone]")
	createTripFlag = flag.String("create-trip", "", "Create a trip: driverID,origin,destination,YYYY-MM-DD HH:MM,seats,price[,description]")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	backend := db.NewSnapshotBackend(gdb, db.StorageKey)

	if *resetFlag {
		if err := backend.Reset(); err != nil {
			log.Fatalf("Reset failed: %v", err)
		}
		log.Println("Persisted dataset dropped")
	}

	s, err := store.New(backend, auth.NewTokens(cfg.SessionSecret, "uni-carpool", cfg.TokenTTL))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	if *registerFlag != "" {
		in, violations, err := parseRegistration(*registerFlag)
		if err != nil {
			log.Fatalf("Bad -register value: %v", err)
		}
		if !violations.Empty() {
			log.Fatalf("Registration rejected: %v", violations)
		}
		sess, err := s.Register(in)
		if err != nil {
			log.Fatalf("Registration failed: %v", err)
		}
		log.Printf("Registered %s as user #%d", sess.User.Username, sess.User.ID)
	}

	if *createTripFlag != "" {
		in, driverID, violations, err := parseTripForm(*createTripFlag)
		if err != nil {
			log.Fatalf("Bad -create-trip value: %v", err)
		}
		if !violations.Empty() {
			log.Fatalf("Trip rejected: %v", violations)
		}
		trip, err := s.CreateTrip(in, driverID)
		if err != nil {
			log.Fatalf("Trip creation failed: %v", err)
		}
		log.Printf("Created trip #%d %s -> %s", trip.ID, trip.Origin, trip.Destination)
	}

	if *seedOnlyFlag || *resetFlag {
		log.Println("Dataset ready")
		return
	}

	trips, err := s.GetTrips()
	if err != nil {
		log.Fatalf("Failed to list trips: %v", err)
	}
	fmt.Printf("Upcoming trips (%d):\n", len(trips))
	for _, t := range trips {
		price := fmt.Sprintf("%d KZT", t.Price)
		if t.Price == 0 {
			price = "free"
		}
		fmt.Printf("  #%d %s -> %s on %s | %d seats | %s | driver %s (%.1f)\n",
			t.ID, t.Origin, t.Destination, t.Date.Format("2006-01-02 15:04"),
			t.Seats, price, t.DriverName, t.DriverRating)
	}
}

// parseRegistration splits a comma-separated -register value and runs the
// signup form rules over it before anything touches the store.
func parseRegistration(arg string) (store.RegisterInput, validation.Violations, error) {
	parts := strings.Split(arg, ",")
	if len(parts) < 5 || len(parts) > 6 {
		return store.RegisterInput{}, nil, fmt.Errorf("want username,password,name,faculty,email[,phone], got %d fields", len(parts))
	}
	form := validation.Registration{
		Username: strings.TrimSpace(parts[0]),
		Password: parts[1],
		Name:     strings.TrimSpace(parts[2]),
		Faculty:  strings.TrimSpace(parts[3]),
		Email:    strings.TrimSpace(parts[4]),
	}
	if len(parts) == 6 {
		form.Phone = strings.TrimSpace(parts[5])
	}
	if v := validation.Check(form); !v.Empty() {
		return store.RegisterInput{}, v, nil
	}
	return store.RegisterInput{
		Username: form.Username,
		Password: form.Password,
		Name:     form.Name,
		Faculty:  form.Faculty,
		Email:    form.Email,
		Phone:    form.Phone,
	}, nil, nil
}

// parseTripForm splits a comma-separated -create-trip value and runs the
// trip form rules over it. The date is local "2006-01-02 15:04".
func parseTripForm(arg string) (store.TripInput, uint, validation.Violations, error) {
	parts := strings.Split(arg, ",")
	if len(parts) < 6 || len(parts) > 7 {
		return store.TripInput{}, 0, nil, fmt.Errorf("want driverID,origin,destination,date,seats,price[,description], got %d fields", len(parts))
	}
	driverID, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return store.TripInput{}, 0, nil, fmt.Errorf("driver id: %w", err)
	}
	date, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(parts[3]), time.Local)
	if err != nil {
		return store.TripInput{}, 0, nil, fmt.Errorf("date: %w", err)
	}
	seats, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return store.TripInput{}, 0, nil, fmt.Errorf("seats: %w", err)
	}
	price, err := strconv.Atoi(strings.TrimSpace(parts[5]))
	if err != nil {
		return store.TripInput{}, 0, nil, fmt.Errorf("price: %w", err)
	}
	form := validation.TripForm{
		Origin:      strings.TrimSpace(parts[1]),
		Destination: strings.TrimSpace(parts[2]),
		Seats:       seats,
		Price:       price,
	}
	if len(parts) == 7 {
		form.Description = strings.TrimSpace(parts[6])
	}
	if v := validation.Check(form); !v.Empty() {
		return store.TripInput{}, 0, v, nil
	}
	return store.TripInput{
		Origin:      form.Origin,
		Destination: form.Destination,
		Date:        date,
		Seats:       form.Seats,
		Price:       form.Price,
		Description: form.Description,
	}, uint(driverID), nil, nil
}
