package readstore

import (
	"context"
	"time"

	"guideway/internal/domain/booking"
	"guideway/internal/domain/user"
	"guideway/internal/infra"
	"guideway/internal/pkg/pgconv"
	"guideway/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DashboardReadStore struct {
	db infra.DBTX
}

func NewDashboardReadStore(db infra.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (r *DashboardReadStore) ForTraveler(ctx context.Context, travelerID uuid.UUID, today time.Time) (*queries.TravelerDashboard, error) {
	var d queries.TravelerDashboard

	if err := r.count(ctx, &d.TotalBookings,
		qb.Select("COUNT(*)").From("bookings").Where(squirrel.Eq{"traveler_id": travelerID})); err != nil {
		return nil, err
	}
	if err := r.count(ctx, &d.UpcomingBookings,
		qb.Select("COUNT(*)").From("bookings").
			Where(squirrel.Eq{"traveler_id": travelerID}).
			Where(squirrel.GtOrEq{"date": today}).
			Where(squirrel.Eq{"status": []string{
				booking.StatusPending.String(), booking.StatusConfirmed.String(),
			}})); err != nil {
		return nil, err
	}
	if err := r.count(ctx, &d.CompletedBookings,
		qb.Select("COUNT(*)").From("bookings").
			Where(squirrel.Eq{"traveler_id": travelerID, "status": booking.StatusCompleted.String()})); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *DashboardReadStore) ForGuide(ctx context.Context, guideID uuid.UUID) (*queries.GuideDashboard, error) {
	var d queries.GuideDashboard

	if err := r.count(ctx, &d.TotalBookings,
		qb.Select("COUNT(*)").From("bookings").Where(squirrel.Eq{"guide_id": guideID})); err != nil {
		return nil, err
	}
	if err := r.count(ctx, &d.PendingBookings,
		qb.Select("COUNT(*)").From("bookings").
			Where(squirrel.Eq{"guide_id": guideID, "status": booking.StatusPending.String()})); err != nil {
		return nil, err
	}

	query, args, err := qb.Select("total_reviews", "average_rating").
		From("guide_rating_stats").
		Where(squirrel.Eq{"guide_id": guideID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build rating stats query", err)
	}
	var avg pgtype.Numeric
	if err := r.db.QueryRow(ctx, query, args...).Scan(&d.TotalReviews, &avg); err != nil {
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to read rating stats", err)
		}
	} else {
		rating, err := pgconv.Float64PtrFromNumeric(avg)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert rating stats", err)
		}
		d.AverageRating = rating
	}

	return &d, nil
}

func (r *DashboardReadStore) ForAdmin(ctx context.Context) (*queries.AdminDashboard, error) {
	var d queries.AdminDashboard

	if err := r.count(ctx, &d.TotalUsers,
		qb.Select("COUNT(*)").From("users")); err != nil {
		return nil, err
	}
	if err := r.count(ctx, &d.PendingGuides,
		qb.Select("COUNT(*)").From("users").
			Where(squirrel.Eq{"role": user.RoleGuide.String(), "status": user.StatusPending.String()})); err != nil {
		return nil, err
	}
	if err := r.count(ctx, &d.TotalBookings,
		qb.Select("COUNT(*)").From("bookings")); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *DashboardReadStore) count(ctx context.Context, dst *int64, b squirrel.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build dashboard count query", err)
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(dst); err != nil {
		return infra.WrapRepoErr("failed to count dashboard rows", err)
	}
	return nil
}
