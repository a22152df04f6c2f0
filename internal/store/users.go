package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/aikerim-n/uni-carpool/internal/models"
)

// RegisterInput is the profile data supplied at registration. Format and
// domain checks (institutional email suffix and the like) happen at the
// presentation boundary before the store is called.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Faculty  string
	Email    string
	Phone    string
}

// UserUpdate carries a partial profile edit; nil fields are left alone.
type UserUpdate struct {
	Name     *string
	Faculty  *string
	Email    *string
	Phone    *string
	Password *string
}

// Login checks the credentials against the user table and returns the
// user record plus a signed bearer token.
func (s *Store) Login(username, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	user := d.UserByUsername(username)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

// Register creates a new account and logs it in. New users start with no
// rating, no reviews, no staff flag and an unconfirmed email.
func (s *Store) Register(in RegisterInput) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	if d.UserByUsername(in.Username) != nil {
		return nil, ErrDuplicateUsername
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	user := models.User{
		ID:       d.TakeID(),
		Username: in.Username,
		Password: string(hash),
		Name:     in.Name,
		Faculty:  in.Faculty,
		Email:    in.Email,
		Phone:    in.Phone,
	}
	d.Users = append(d.Users, user)
	if err := s.commit(d); err != nil {
		return nil, err
	}
	return s.session(&user)
}

func (s *Store) session(user *models.User) (*models.Session, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &models.Session{Token: token, User: user.Public()}, nil
}

// GetUser returns a single user record.
func (s *Store) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	user := d.User(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	pub := user.Public()
	return &pub, nil
}

// GetUsers returns every user record, as listed on the staff panel.
func (s *Store) GetUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(d.Users))
	for _, u := range d.Users {
		users = append(users, u.Public())
	}
	return users, nil
}

// UpdateUser merges the provided fields into an existing user record. A
// new password is re-hashed before it is stored.
func (s *Store) UpdateUser(id uint, in UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	user := d.User(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Faculty != nil {
		user.Faculty = *in.Faculty
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Password != nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		user.Password = string(hash)
	}
	if err := s.commit(d); err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// VerifyUser toggles the email-confirmed flag. The flip is idempotent in
// pairs, not a one-way transition: staff can revoke a verification. An
// unknown id is a no-op and returns nil without error.
func (s *Store) VerifyUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	user := d.User(id)
	if user == nil {
		return nil, nil
	}
	user.EmailConfirmed = !user.EmailConfirmed
	if err := s.commit(d); err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// DeleteUser removes a user and everything hanging off them: owned trips
// (with their bookings and reviews), bookings they placed, and reviews
// they wrote or received. Leaving those rows behind would break the join
// paths with dangling ids.
func (s *Store) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return err
	}
	if d.User(id) == nil {
		return ErrUserNotFound
	}

	owned := make(map[uint]bool)
	for _, t := range d.Trips {
		if t.DriverID == id {
			owned[t.ID] = true
		}
	}

	users := d.Users[:0]
	for _, u := range d.Users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	d.Users = users

	trips := d.Trips[:0]
	for _, t := range d.Trips {
		if t.DriverID != id {
			trips = append(trips, t)
		}
	}
	d.Trips = trips

	bookings := d.Bookings[:0]
	for _, b := range d.Bookings {
		if b.UserID != id && !owned[b.TripID] {
			bookings = append(bookings, b)
		}
	}
	d.Bookings = bookings

	reviews := d.Reviews[:0]
	for _, r := range d.Reviews {
		if r.FromUserID != id && r.ToUserID != id && !owned[r.TripID] {
			reviews = append(reviews, r)
		}
	}
	d.Reviews = reviews

	return s.commit(d)
}
