package repository

import (
	"context"

	"guideway/internal/infra"

	"github.com/google/uuid"
)

// recalcGuideRatingStatsSQL rebuilds the denormalized stats row from
// the reviews table inside the same transaction that inserted the
// review, so listings never see a stale count with a fresh average.
const recalcGuideRatingStatsSQL = `
INSERT INTO guide_rating_stats (guide_id, total_reviews, average_rating, updated_at)
SELECT $1, COUNT(*), COALESCE(AVG(rating), 0), now()
FROM reviews
WHERE guide_id = $1
ON CONFLICT (guide_id) DO UPDATE
SET total_reviews = EXCLUDED.total_reviews,
    average_rating = EXCLUDED.average_rating,
    updated_at = EXCLUDED.updated_at
`

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

func (r *RatingStatsRepository) RecalcGuideRatingStats(ctx context.Context, db infra.DBTX, guideID uuid.UUID) error {
	if _, err := db.Exec(ctx, recalcGuideRatingStatsSQL, guideID); err != nil {
		return infra.WrapRepoErr("failed to recalc guide rating stats", err)
	}
	return nil
}
