package store

import (
	"math"
	"time"

	"github.com/aikerim-n/uni-carpool/internal/models"
)

// AddReview records a passenger's one-time rating of a driver for a trip
// and folds it into the driver's aggregate rating. Review insertion and
// the aggregate update land in the same commit, so the two can never
// drift apart.
func (s *Store) AddReview(tripID, fromUserID, toUserID uint, rating int, comment string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	if d.Trip(tripID) == nil {
		return nil, ErrTripNotFound
	}
	if d.ReviewBy(tripID, fromUserID) != nil {
		return nil, ErrDuplicateReview
	}
	review := models.Review{
		ID:         d.TakeID(),
		TripID:     tripID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Rating:     rating,
		Comment:    comment,
		Date:       time.Now().UTC(),
	}
	d.Reviews = append(d.Reviews, review)

	if target := d.User(toUserID); target != nil {
		total := target.Rating*float64(target.ReviewCount) + float64(rating)
		target.ReviewCount++
		target.Rating = round1(total / float64(target.ReviewCount))
	}

	if err := s.commit(d); err != nil {
		return nil, err
	}
	return &review, nil
}

// round1 rounds to one decimal, matching the display precision of the
// aggregate rating.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// GetReviewsForUser returns every review written about a user, each
// annotated with the reviewer's display name.
func (s *Store) GetReviewsForUser(userID uint) ([]models.ReviewWithAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	out := []models.ReviewWithAuthor{}
	for _, r := range d.Reviews {
		if r.ToUserID != userID {
			continue
		}
		item := models.ReviewWithAuthor{Review: r}
		if author := d.User(r.FromUserID); author != nil {
			item.AuthorName = author.Name
		}
		out = append(out, item)
	}
	return out, nil
}
