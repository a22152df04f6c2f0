package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aikerim-n/uni-carpool/internal/models"
)

// seedDataset is the fixed bootstrap content written the first time a
// backend is used: three demo accounts (password "password") and two demo
// trips around the ATU campus. Bookings and reviews start empty.
func seedDataset() *models.Dataset {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	pw := string(hash)
	almaty := time.FixedZone("ALMT", 5*60*60)
	return &models.Dataset{
		NextID: 6,
		Users: []models.User{
			{
				ID: 1, Username: "admin", Password: pw,
				Name: "Admin User", Faculty: "IT & Engineering",
				Email: "admin@atu.edu.kz", Phone: "+7 (701) 123-4567",
				Rating: 5.0, ReviewCount: 1, IsStaff: true, EmailConfirmed: true,
			},
			{
				ID: 2, Username: "driver1", Password: pw,
				Name: "Arman Aliev", Faculty: "Food Technology",
				Email: "arman@atu.edu.kz", Phone: "+7 (777) 987-6543",
				Rating: 4.8, ReviewCount: 5, EmailConfirmed: true,
			},
			{
				ID: 3, Username: "passenger1", Password: pw,
				Name: "Dina S.", Faculty: "Design",
				Email: "dina@atu.edu.kz", Phone: "+7 (702) 555-0011",
				Rating: 4.5, ReviewCount: 2,
			},
		},
		Trips: []models.Trip{
			{
				ID: 4, DriverID: 2,
				Origin:      "ATU Main Campus (Tole Bi 100)",
				Destination: "Samal-2 District",
				Date:        time.Date(2023, 11, 25, 18, 0, 0, 0, almaty),
				Seats:       3, Price: 200,
				Description: "Going home after evening lectures. Listening to Jazz.",
			},
			{
				ID: 5, DriverID: 1,
				Origin:      "ATU Dormitory #1",
				Destination: "Almaty-1 Railway Station",
				Date:        time.Date(2024, 12, 26, 9, 0, 0, 0, almaty),
				Seats:       4, Price: 0,
				Description: "Free ride for students going to the station.",
			},
		},
		Bookings: []models.Booking{},
		Reviews:  []models.Review{},
	}
}
