package readstore

import (
	"context"
	"encoding/json"
	"strings"

	"guideway/internal/domain/user"
	"guideway/internal/infra"
	"guideway/internal/pkg/pgconv"
	"guideway/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GuideReadStore struct {
	db infra.DBTX
}

func NewGuideReadStore(db infra.DBTX) *GuideReadStore {
	return &GuideReadStore{db: db}
}

const guideColumns = `u.id, u.name, gp.location, gp.bio, gp.hourly_rate_cents, gp.experience_years,
	gp.languages, gp.specialties,
	COALESCE(grs.total_reviews, 0), grs.average_rating`

func (r *GuideReadStore) baseQuery() squirrel.SelectBuilder {
	return qb.Select(guideColumns).
		From("users u").
		Join("guide_profiles gp ON gp.user_id = u.id").
		LeftJoin("guide_rating_stats grs ON grs.guide_id = u.id").
		Where(squirrel.Eq{"u.role": user.RoleGuide.String(), "u.status": user.StatusActive.String()})
}

func applyGuideFilters(b squirrel.SelectBuilder, f queries.GuideSearchFilters) squirrel.SelectBuilder {
	if f.Query != nil {
		q := strings.TrimSpace(*f.Query)
		// "#<uuid>" looks up a guide by exact ID, anything else
		// matches on name.
		if id, ok := strings.CutPrefix(q, "#"); ok {
			if parsed, err := uuid.Parse(id); err == nil {
				return b.Where(squirrel.Eq{"u.id": parsed})
			}
		}
		b = b.Where(squirrel.ILike{"u.name": "%" + q + "%"})
	}
	if f.Location != nil {
		b = b.Where(squirrel.ILike{"gp.location": "%" + *f.Location + "%"})
	}
	if f.Language != nil {
		b = b.Where(squirrel.Expr("gp.languages @> ?", jsonArray(*f.Language)))
	}
	if f.Specialty != nil {
		b = b.Where(squirrel.Expr("gp.specialties @> ?", jsonArray(*f.Specialty)))
	}
	if f.MinRateCents != nil {
		b = b.Where(squirrel.GtOrEq{"gp.hourly_rate_cents": *f.MinRateCents})
	}
	if f.MaxRateCents != nil {
		b = b.Where(squirrel.LtOrEq{"gp.hourly_rate_cents": *f.MaxRateCents})
	}
	if f.MinExperienceYears != nil {
		b = b.Where(squirrel.GtOrEq{"gp.experience_years": *f.MinExperienceYears})
	}
	return b
}

func jsonArray(value string) string {
	raw, _ := json.Marshal([]string{value})
	return string(raw)
}

func (r *GuideReadStore) Search(ctx context.Context, f queries.GuideSearchFilters, limit, offset int) ([]queries.GuideListItem, int64, error) {
	query, args, err := applyGuideFilters(r.baseQuery(), f).
		OrderBy("grs.average_rating DESC NULLS LAST", "u.created_at DESC").
		Limit(uint64(limit)).   // #nosec G115 -- limit is bounded by ValidateLimit
		Offset(uint64(offset)). // #nosec G115 -- offset derives from a validated page number
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build guide search query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search guides", err)
	}
	defer rows.Close()

	items := make([]queries.GuideListItem, 0, limit)
	for rows.Next() {
		var it queries.GuideListItem
		var bio string
		var avg pgtype.Numeric
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Location, &bio, &it.HourlyRateCents, &it.ExperienceYears,
			&it.Languages, &it.Specialties, &it.TotalReviews, &avg,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan guide row", err)
		}
		rating, err := pgconv.Float64PtrFromNumeric(avg)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to convert guide rating", err)
		}
		it.AverageRating = rating
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read guide rows", err)
	}

	countQ := applyGuideFilters(
		qb.Select("COUNT(*)").
			From("users u").
			Join("guide_profiles gp ON gp.user_id = u.id").
			LeftJoin("guide_rating_stats grs ON grs.guide_id = u.id").
			Where(squirrel.Eq{"u.role": user.RoleGuide.String(), "u.status": user.StatusActive.String()}),
		f,
	)
	cq, cargs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build guide count query", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count guides", err)
	}

	return items, total, nil
}

func (r *GuideReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.GuideDetailView, error) {
	query, args, err := r.baseQuery().
		Where(squirrel.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build guide detail query", err)
	}

	var v queries.GuideDetailView
	var avg pgtype.Numeric
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.Name, &v.Location, &v.Bio, &v.HourlyRateCents, &v.ExperienceYears,
		&v.Languages, &v.Specialties, &v.TotalReviews, &avg,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guide not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guide", err)
	}
	rating, err := pgconv.Float64PtrFromNumeric(avg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert guide rating", err)
	}
	v.AverageRating = rating

	windows, err := NewAvailabilityReadStore(r.db).ListByGuide(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Availability = windows

	return &v, nil
}

// FindAccount reads the booking-relevant fields of a guide regardless
// of account status; callers decide whether pending or blocked guides
// are acceptable.
func (r *GuideReadStore) FindAccount(ctx context.Context, id uuid.UUID) (*queries.GuideAccountView, error) {
	query, args, err := qb.Select("u.id", "u.status", "gp.hourly_rate_cents").
		From("users u").
		Join("guide_profiles gp ON gp.user_id = u.id").
		Where(squirrel.Eq{"u.id": id, "u.role": user.RoleGuide.String()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build guide account query", err)
	}

	var v queries.GuideAccountView
	if err := r.db.QueryRow(ctx, query, args...).Scan(&v.ID, &v.Status, &v.HourlyRateCents); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guide not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guide account", err)
	}
	return &v, nil
}
