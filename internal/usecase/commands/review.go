package commands

import (
	"context"

	"guideway/internal/domain/policy"
	domreview "guideway/internal/domain/review"
	reqdto "guideway/internal/handler/dto/request"
	"guideway/internal/infra"
	"guideway/internal/pkg/clock"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, bookingID uuid.UUID, req reqdto.CreateReviewRequest, actor policy.Actor) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview inserts the review and rebuilds the guide's rating stats
// in the same transaction, so aggregates never drift from the rows.
// The unique index on booking_id backstops the duplicate check.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, bookingID uuid.UUID, req reqdto.CreateReviewRequest, actor policy.Actor) (*CreateReviewResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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
		if !policy.CanReviewBooking(actor, entity) {
			return errs.ErrForbidden
		}

		exists, txErr := tx.Reads().ReviewExistsForBooking(ctx, bookingID)
		if txErr != nil {
			return txErr
		}
		if exists {
			return errs.ErrDuplicateReview
		}

		rev, txErr := domreview.NewReview(
			uuid.Nil, bookingID, snap.GuideID, actor.ID,
			req.Rating, req.Comment, uc.clock.Now(),
		)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}

		id, txErr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return errs.ErrDuplicateReview
			}
			return txErr
		}
		createdID = id

		return tx.RatingStats().RecalcGuideRatingStats(ctx, tx.DB(), snap.GuideID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}
