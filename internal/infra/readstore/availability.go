package readstore

import (
	"context"

	"guideway/internal/domain/schedule"
	"guideway/internal/infra"
	"guideway/internal/pkg/pgconv"
	"guideway/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db infra.DBTX
}

func NewAvailabilityReadStore(db infra.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (r *AvailabilityReadStore) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]queries.AvailabilityView, error) {
	query, args, err := qb.Select("id", "guide_id", "day_of_week", "start_min", "end_min").
		From("guide_availabilities").
		Where(squirrel.Eq{"guide_id": guideID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build availability list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availabilities", err)
	}
	defer rows.Close()

	var items []queries.AvailabilityView
	for rows.Next() {
		var v queries.AvailabilityView
		if err := rows.Scan(&v.ID, &v.GuideID, &v.Day, &v.StartMin, &v.EndMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		formatAvailability(&v)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rows", err)
	}
	return items, nil
}

func (r *AvailabilityReadStore) FindForDay(ctx context.Context, guideID uuid.UUID, day schedule.Weekday) (*queries.AvailabilityView, error) {
	query, args, err := qb.Select("id", "guide_id", "day_of_week", "start_min", "end_min").
		From("guide_availabilities").
		Where(squirrel.Eq{"guide_id": guideID, "day_of_week": day.Int()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build availability query", err)
	}

	var v queries.AvailabilityView
	if err := r.db.QueryRow(ctx, query, args...).Scan(&v.ID, &v.GuideID, &v.Day, &v.StartMin, &v.EndMin); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find availability", err)
	}
	formatAvailability(&v)
	return &v, nil
}

func formatAvailability(v *queries.AvailabilityView) {
	v.DayName = schedule.Weekday(v.Day).String()
	v.StartTime = schedule.TimeOfDay(v.StartMin).String()
	v.EndTime = schedule.TimeOfDay(v.EndMin).String()
}
