package repository

import (
	"context"

	"guideway/internal/domain/availability"
	"guideway/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

// Upsert replaces the guide's window for the weekday if one exists.
func (r *AvailabilityRepository) Upsert(ctx context.Context, db infra.DBTX, w *availability.Window) (uuid.UUID, error) {
	query, args, err := qb.Insert("guide_availabilities").
		Columns("id", "guide_id", "day_of_week", "start_min", "end_min").
		Values(
			w.ID(),
			w.GuideID(),
			w.Day().Int(),
			w.TimeRange().Start().Minutes(),
			w.TimeRange().End().Minutes(),
		).
		Suffix(`ON CONFLICT (guide_id, day_of_week) DO UPDATE
			SET start_min = EXCLUDED.start_min,
			    end_min = EXCLUDED.end_min,
			    updated_at = now()
			RETURNING id`).
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build availability upsert", err)
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert availability", err)
	}
	return id, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, db infra.DBTX, windowID, guideID uuid.UUID) error {
	query, args, err := qb.Delete("guide_availabilities").
		Where(squirrel.Eq{"id": windowID, "guide_id": guideID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build availability delete", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("availability not found", nil, infra.KindNotFound)
	}
	return nil
}
