//go:build unit || e2e

package builder

import (
	"time"

	"guideway/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	GuideID    uuid.UUID
	TravelerID uuid.UUID
	Rating     int
	Comment    string
	Now        time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		GuideID:    uuid.New(),
		TravelerID: uuid.New(),
		Rating:     5,
		Comment:    "Fantastic tour of the old town.",
		Now:        time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}

func (b *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(b.ID, b.BookingID, b.GuideID, b.TravelerID, b.Rating, b.Comment, b.Now)
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}
