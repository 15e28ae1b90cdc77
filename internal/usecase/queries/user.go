package queries

import (
	"context"

	"github.com/google/uuid"

	"guideway/internal/infra"
	"guideway/internal/pkg/errs"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListUsers(ctx context.Context, role, status *string, page, limit int) ([]UserListItem, int64, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	List(ctx context.Context, role, status *string, limit, offset int) ([]UserListItem, int64, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, role, status *string, page, limit int) ([]UserListItem, int64, error) {
	limit = ValidateLimit(limit)
	if page < 1 {
		page = 1
	}
	return q.readStore.List(ctx, role, status, limit, (page-1)*limit)
}
