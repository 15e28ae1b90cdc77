package commands

import (
	"context"

	"guideway/internal/domain/availability"
	"guideway/internal/domain/schedule"
	reqdto "guideway/internal/handler/dto/request"
	"guideway/internal/infra"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/queries"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	Upsert(ctx context.Context, guideID uuid.UUID, req reqdto.UpsertAvailabilityRequest) (*queries.AvailabilityView, error)
	Delete(ctx context.Context, windowID, guideID uuid.UUID) error
}

type availabilityUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityUseCase(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow}
}

// Upsert replaces the guide's window for the weekday. Saving twice for
// the same day is idempotent apart from the updated timestamps.
func (a *availabilityUseCaseImpl) Upsert(ctx context.Context, guideID uuid.UUID, req reqdto.UpsertAvailabilityRequest) (*queries.AvailabilityView, error) {
	day, err := schedule.NewWeekday(req.DayOfWeek)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	timeRange, err := schedule.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	window := availability.NewWindow(guideID, day, timeRange)

	var savedID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Availabilities().Upsert(ctx, tx.DB(), window)
		if txErr != nil {
			return txErr
		}
		savedID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.AvailabilityView{
		ID:        savedID,
		GuideID:   guideID,
		Day:       day.Int(),
		DayName:   day.String(),
		StartTime: timeRange.Start().String(),
		EndTime:   timeRange.End().String(),
		StartMin:  timeRange.Start().Minutes(),
		EndMin:    timeRange.End().Minutes(),
	}, nil
}

func (a *availabilityUseCaseImpl) Delete(ctx context.Context, windowID, guideID uuid.UUID) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availabilities().Delete(ctx, tx.DB(), windowID, guideID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrAvailabilityNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
