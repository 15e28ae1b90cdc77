package readstore

import (
	"context"
	"time"

	"guideway/internal/domain/schedule"
	"guideway/internal/infra"
	"guideway/internal/pkg/pgconv"
	"guideway/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingColumns = `b.id, b.guide_id, g.name, b.traveler_id, t.name, b.date,
	b.start_min, b.end_min, b.hours, b.status, b.total_cents, b.is_paid,
	COALESCE(b.special_requests, ''), (r.id IS NOT NULL), b.created_at, b.updated_at`

func bookingBase() squirrel.SelectBuilder {
	return qb.Select(bookingColumns).
		From("bookings b").
		Join("users g ON g.id = b.guide_id").
		Join("users t ON t.id = b.traveler_id").
		LeftJoin("reviews r ON r.booking_id = b.id")
}

func scanBookingView(row interface{ Scan(...any) error }) (*queries.BookingView, error) {
	var v queries.BookingView
	if err := row.Scan(
		&v.ID, &v.GuideID, &v.GuideName, &v.TravelerID, &v.TravelerName, &v.Date,
		&v.StartMin, &v.EndMin, &v.Hours, &v.Status, &v.TotalCents, &v.IsPaid,
		&v.SpecialRequests, &v.Reviewed, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.StartTime = schedule.TimeOfDay(v.StartMin).String()
	v.EndTime = schedule.TimeOfDay(v.EndMin).String()
	return &v, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := bookingBase().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	v, err := scanBookingView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return v, nil
}

// List pages bookings newest first. Either filter narrows the listing
// to one side of the marketplace; admins pass neither and see all.
func (r *BookingReadStore) List(ctx context.Context, travelerID, guideID *uuid.UUID, limit int, afterTime *time.Time, afterID *uuid.UUID) ([]queries.BookingView, error) {
	b := bookingBase()
	if travelerID != nil {
		b = b.Where(squirrel.Eq{"b.traveler_id": *travelerID})
	}
	if guideID != nil {
		b = b.Where(squirrel.Eq{"b.guide_id": *guideID})
	}
	if afterTime != nil && afterID != nil {
		b = b.Where(squirrel.Expr("(b.created_at, b.id) < (?, ?)", *afterTime, *afterID))
	}

	query, args, err := b.
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(uint64(limit)). // #nosec G115 -- limit is bounded by ValidateLimit
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]queries.BookingView, 0, limit)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
