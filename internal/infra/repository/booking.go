package repository

import (
	"context"
	"time"

	"guideway/internal/domain/booking"
	"guideway/internal/domain/schedule"
	"guideway/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	query, args, err := qb.Insert("bookings").
		Columns("id", "guide_id", "traveler_id", "date", "start_min", "end_min", "hours",
			"status", "total_cents", "is_paid", "special_requests").
		Values(
			b.ID(),
			b.GuideID(),
			b.TravelerID(),
			b.Date(),
			b.Slot().Start().Minutes(),
			b.Slot().End().Minutes(),
			b.Hours(),
			b.Status().String(),
			b.TotalCents(),
			b.IsPaid(),
			nullableText(b.SpecialRequests()),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, db infra.DBTX, bookingID uuid.UUID, status booking.Status, isPaid *bool) error {
	update := qb.Update("bookings").
		Set("status", status.String()).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": bookingID})
	if isPaid != nil {
		update = update.Set("is_paid", *isPaid)
	}
	query, args, err := update.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// ExistsOverlapping takes row locks on the guide's bookings for the
// date so concurrent creates serialize. The exclusion constraint on the
// table is the final guard; this check exists to return a clean
// conflict error on the common path.
func (r *BookingRepository) ExistsOverlapping(ctx context.Context, db infra.DBTX, guideID uuid.UUID, date time.Time, slot schedule.TimeRange) (bool, error) {
	query, args, err := qb.Select("id").
		From("bookings").
		Where(squirrel.Eq{"guide_id": guideID, "date": date}).
		Where(squirrel.NotEq{"status": booking.StatusCancelled.String()}).
		Where(squirrel.Lt{"start_min": slot.End().Minutes()}).
		Where(squirrel.Gt{"end_min": slot.Start().Minutes()}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build overlap query", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to read overlapping bookings", err)
	}
	return exists, nil
}
