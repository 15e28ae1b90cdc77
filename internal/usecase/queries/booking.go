package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"guideway/internal/domain/booking"
	"guideway/internal/domain/policy"
	"guideway/internal/domain/schedule"
	"guideway/internal/infra"
	"guideway/internal/pkg/errs"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor policy.Actor) (*BookingView, error)
	// GetByIDSystem skips authorization for internal read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor policy.Actor, cursor *Cursor, limit int) ([]BookingView, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, travelerID, guideID *uuid.UUID, limit int, afterTime *time.Time, afterID *uuid.UUID) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor policy.Actor) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	entity, err := viewToEntity(view)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewBooking(actor, entity) {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor policy.Actor, cursor *Cursor, limit int) ([]BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var travelerID, guideID *uuid.UUID
	switch {
	case actor.IsAdmin():
	case actor.IsGuide():
		id := actor.ID
		guideID = &id
	default:
		id := actor.ID
		travelerID = &id
	}

	var afterTime *time.Time
	var afterID *uuid.UUID
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		afterTime, afterID = &t, &id
	}

	rows, err := q.readStore.List(ctx, travelerID, guideID, limit+1, afterTime, afterID)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func viewToEntity(v *BookingView) (*booking.Booking, error) {
	slot, err := schedule.NewTimeRange(schedule.TimeOfDay(v.StartMin), schedule.TimeOfDay(v.EndMin))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	status, err := booking.NewStatus(v.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.Reconstruct(
		v.ID, v.GuideID, v.TravelerID, v.Date, slot, status, v.TotalCents,
		v.IsPaid, v.SpecialRequests,
		v.CreatedAt, v.UpdatedAt,
	), nil
}
