package readstore

import (
	"context"

	"guideway/internal/infra"
	"guideway/internal/pkg/pgconv"
	"guideway/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type UserReadStore struct {
	db infra.DBTX
}

func NewUserReadStore(db infra.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query, args, err := qb.Select("id", "name", "email", "role", "status").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var v queries.AuthorizedUserView
	if err := r.db.QueryRow(ctx, query, args...).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.Status); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query, args, err := qb.Select("id", "name", "email", "role", "status", "password_hash").
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user query", err)
	}

	var v queries.AuthorizedUserView
	var passwordHash string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.Status, &passwordHash); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}

// List returns an admin page of users plus the unfiltered-for-paging total.
func (r *UserReadStore) List(ctx context.Context, role, status *string, limit, offset int) ([]queries.UserListItem, int64, error) {
	base := qb.Select("id", "name", "email", "COALESCE(phone, '')", "role", "status", "created_at").
		From("users")
	countQ := qb.Select("COUNT(*)").From("users")
	if role != nil {
		base = base.Where(squirrel.Eq{"role": *role})
		countQ = countQ.Where(squirrel.Eq{"role": *role})
	}
	if status != nil {
		base = base.Where(squirrel.Eq{"status": *status})
		countQ = countQ.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := base.
		OrderBy("created_at DESC").
		Limit(uint64(limit)).   // #nosec G115 -- limit is bounded by ValidateLimit
		Offset(uint64(offset)). // #nosec G115 -- offset derives from a validated page number
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build user list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	items := make([]queries.UserListItem, 0, limit)
	for rows.Next() {
		var it queries.UserListItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Email, &it.Phone, &it.Role, &it.Status, &it.CreatedAt); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan user row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read user rows", err)
	}

	cq, cargs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build user count query", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count users", err)
	}

	return items, total, nil
}
