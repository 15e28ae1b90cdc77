package repository

import (
	"context"

	"guideway/internal/domain/review"
	"guideway/internal/infra"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, db infra.DBTX, rev *review.Review) (uuid.UUID, error) {
	var comment *string
	if !rev.Comment().IsEmpty() {
		c := rev.Comment().String()
		comment = &c
	}

	query, args, err := qb.Insert("reviews").
		Columns("id", "booking_id", "guide_id", "traveler_id", "rating", "comment").
		Values(
			rev.ID(),
			rev.BookingID(),
			rev.GuideID(),
			rev.TravelerID(),
			rev.Rating().Value(),
			comment,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build review insert", err)
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}
