package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"guideway/internal/domain/guide"
	"guideway/internal/domain/user"
	reqdto "guideway/internal/handler/dto/request"
	"guideway/internal/infra"
	"guideway/internal/pkg/errs"
	"guideway/internal/pkg/jwt"
	"guideway/internal/pkg/password"
	"guideway/internal/usecase/queries"
	"guideway/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type RegisterResult struct {
	UserID uuid.UUID
	Status string
}

type AuthCommands interface {
	RegisterTraveler(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	RegisterGuide(ctx context.Context, req reqdto.RegisterGuideRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) RegisterTraveler(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	name, email, hash, err := validateRegistration(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	entity := user.NewTraveler(name, email, hash, req.Phone)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Users().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RegisterResult{UserID: entity.ID(), Status: entity.Status().String()}, nil
}

// RegisterGuide creates the account and its marketplace profile in one
// transaction. The account starts pending and stays invisible in search
// until an admin activates it.
func (a *authCommandsImpl) RegisterGuide(ctx context.Context, req reqdto.RegisterGuideRequest) (*RegisterResult, error) {
	name, email, hash, err := validateRegistration(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	entity := user.NewGuide(name, email, hash, req.Phone)
	profile, err := guide.NewProfile(
		entity.ID(),
		req.Location,
		req.Bio,
		req.HourlyRateCents,
		req.ExperienceYears,
		req.Languages,
		req.Specialties,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Users().Create(ctx, tx.DB(), entity); txErr != nil {
			return txErr
		}
		return tx.Profiles().Create(ctx, tx.DB(), profile)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RegisterResult{UserID: entity.ID(), Status: entity.Status().String()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", view.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and may log in
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, errs.ErrUserNotFound
	}
	if view.Status != user.StatusActive.String() {
		return nil, errs.ErrUserNotActive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plainPassword string) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, errs.ErrInvalidCredentials
	}

	if view.Status != user.StatusActive.String() {
		return nil, errs.ErrUserNotActive
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return view, nil
}

func validateRegistration(rawName, rawEmail, rawPassword string) (user.Name, user.Email, string, error) {
	name, err := user.NewName(rawName)
	if err != nil {
		return user.Name{}, user.Email{}, "", errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return user.Name{}, user.Email{}, "", errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := user.NewPassword(rawPassword)
	if err != nil {
		return user.Name{}, user.Email{}, "", errs.Mark(err, errs.ErrDomainValidation)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return user.Name{}, user.Email{}, "", errs.Mark(err, ErrAuthenticationFailed)
	}
	return name, email, hash, nil
}
