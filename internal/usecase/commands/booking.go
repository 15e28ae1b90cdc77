package commands

import (
	"context"
	"time"

	"guideway/internal/domain/availability"
	"guideway/internal/domain/booking"
	"guideway/internal/domain/policy"
	"guideway/internal/domain/schedule"
	"guideway/internal/domain/user"
	reqdto "guideway/internal/handler/dto/request"
	"guideway/internal/infra"
	"guideway/internal/metrics"
	"guideway/internal/pkg/clock"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/queries"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, travelerID uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, rawStatus string, isPaid *bool, actor policy.Actor) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// CreateBooking runs the whole availability-then-conflict check inside
// one transaction. ExistsOverlapping locks the guide's rows for the
// date, and the exclusion constraint on bookings backstops any race the
// lock misses, so two travelers can never hold the same slot.
func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, travelerID uuid.UUID) (*queries.BookingView, error) {
	date, slot, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guideSnap, txErr := tx.Reads().GuideByID(ctx, req.GuideID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrGuideNotFound
			}
			return txErr
		}
		if guideSnap.Status != user.StatusActive.String() {
			return errs.ErrGuideNotActive
		}

		day := schedule.WeekdayOf(date)
		window, txErr := tx.Reads().AvailabilityForDay(ctx, req.GuideID, day)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrGuideUnavailableDay
			}
			return txErr
		}
		win, txErr := windowFromSnapshot(window)
		if txErr != nil {
			return txErr
		}
		if !win.Covers(slot) {
			return errs.ErrOutsideAvailability
		}

		taken, txErr := tx.Bookings().ExistsOverlapping(ctx, tx.DB(), req.GuideID, date, slot)
		if txErr != nil {
			return txErr
		}
		if taken {
			return errs.ErrBookingConflict
		}

		entity, txErr := booking.NewBooking(
			req.GuideID, travelerID, date, slot,
			guideSnap.HourlyRateCents, req.SpecialRequests, b.clock.Now(),
		)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}

		id, txErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return txErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated(booking.StatusPending.String())

	// Read-after-write: return the full view including joined names
	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, rawStatus string, isPaid *bool, actor policy.Actor) (*queries.BookingView, error) {
	next, err := booking.NewStatus(rawStatus)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().BookingByID(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return txErr
		}

		entity, txErr := reconstructFromSnapshot(snap)
		if txErr != nil {
			return txErr
		}

		if !policy.CanTransitionBooking(actor, entity, next) {
			return errs.ErrForbidden
		}

		if txErr := entity.Transition(next); txErr != nil {
			return errs.Mark(txErr, errs.ErrInvalidStatusTransition)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, next, isPaid)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingStatusChanged(next.String())

	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func windowFromSnapshot(snap *shared.AvailabilitySnapshot) (*availability.Window, error) {
	r, err := schedule.NewTimeRange(
		schedule.TimeOfDay(snap.StartMin),
		schedule.TimeOfDay(snap.EndMin),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	day, err := schedule.NewWeekday(snap.Day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return availability.ReconstructWindow(snap.ID, snap.GuideID, day, r, time.Time{}, time.Time{}), nil
}

func reconstructFromSnapshot(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	slot, err := schedule.NewTimeRange(
		schedule.TimeOfDay(snap.StartMin),
		schedule.TimeOfDay(snap.EndMin),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	status, err := booking.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.Reconstruct(
		snap.ID, snap.GuideID, snap.TravelerID,
		snap.Date, slot, status, snap.TotalCents,
		snap.IsPaid, snap.SpecialRequests,
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}
