package commands

import (
	"context"

	"guideway/internal/domain/guide"
	"guideway/internal/domain/policy"
	"guideway/internal/domain/user"
	reqdto "guideway/internal/handler/dto/request"
	"guideway/internal/infra"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateStatus(ctx context.Context, targetID uuid.UUID, rawStatus string, actor policy.Actor) error
	Delete(ctx context.Context, targetID uuid.UUID, actor policy.Actor) error
	UpdateGuideProfile(ctx context.Context, guideID uuid.UUID, req reqdto.UpdateGuideProfileRequest) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) UpdateStatus(ctx context.Context, targetID uuid.UUID, rawStatus string, actor policy.Actor) error {
	if !policy.CanModifyUser(actor, targetID) {
		if actor.IsAdmin() && actor.ID == targetID {
			return errs.ErrSelfModification
		}
		return errs.ErrForbidden
	}

	status, err := user.NewStatus(rawStatus)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateStatus(ctx, tx.DB(), targetID, status)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, targetID uuid.UUID, actor policy.Actor) error {
	if !policy.CanModifyUser(actor, targetID) {
		if actor.IsAdmin() && actor.ID == targetID {
			return errs.ErrSelfModification
		}
		return errs.ErrForbidden
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), targetID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *userUseCaseImpl) UpdateGuideProfile(ctx context.Context, guideID uuid.UUID, req reqdto.UpdateGuideProfileRequest) error {
	profile, err := guide.NewProfile(
		guideID,
		req.Location,
		req.Bio,
		req.HourlyRateCents,
		req.ExperienceYears,
		req.Languages,
		req.Specialties,
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().Update(ctx, tx.DB(), profile)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrProfileNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
