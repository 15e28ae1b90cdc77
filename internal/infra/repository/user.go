package repository

import (
	"context"
	"time"

	"guideway/internal/domain/user"
	"guideway/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, db infra.DBTX, u *user.User) (uuid.UUID, error) {
	query, args, err := qb.Insert("users").
		Columns("id", "name", "email", "password_hash", "phone", "role", "status").
		Values(
			u.ID(),
			u.Name().Value(),
			u.Email().Value(),
			u.PasswordHash(),
			nullableText(u.Phone()),
			u.Role().String(),
			u.Status().String(),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build user insert", err)
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	query, args, err := qb.Update("users").
		Set("last_login_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build last login update", err)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, db infra.DBTX, userID uuid.UUID, status user.Status) error {
	query, args, err := qb.Update("users").
		Set("status", status.String()).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user status update", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update user status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	query, args, err := qb.Delete("users").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build user delete", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
