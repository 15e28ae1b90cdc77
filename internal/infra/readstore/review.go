package readstore

import (
	"context"
	"time"

	"guideway/internal/infra"
	"guideway/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db infra.DBTX
}

func NewReviewReadStore(db infra.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

// ListByGuide pages a guide's reviews with a (created_at, id) keyset
// cursor, newest first.
func (r *ReviewReadStore) ListByGuide(ctx context.Context, guideID uuid.UUID, limit int, afterTime *time.Time, afterID *uuid.UUID) ([]queries.ReviewListItem, error) {
	b := qb.Select("r.id", "u.name", "r.rating", "r.comment", "r.created_at").
		From("reviews r").
		Join("users u ON u.id = r.traveler_id").
		Where(squirrel.Eq{"r.guide_id": guideID})
	if afterTime != nil && afterID != nil {
		b = b.Where(squirrel.Expr("(r.created_at, r.id) < (?, ?)", *afterTime, *afterID))
	}

	query, args, err := b.
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(limit)). // #nosec G115 -- limit is bounded by ValidateLimit
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build review list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	items := make([]queries.ReviewListItem, 0, limit)
	for rows.Next() {
		var it queries.ReviewListItem
		if err := rows.Scan(&it.ID, &it.TravelerName, &it.Rating, &it.Comment, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return items, nil
}

func (r *ReviewReadStore) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query, args, err := qb.Select("1").
		From("reviews").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build review existence query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to read review existence", err)
	}
	return exists, nil
}
