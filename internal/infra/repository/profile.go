package repository

import (
	"context"
	"time"

	"guideway/internal/domain/guide"
	"guideway/internal/infra"

	"github.com/Masterminds/squirrel"
)

type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) Create(ctx context.Context, db infra.DBTX, p *guide.Profile) error {
	query, args, err := qb.Insert("guide_profiles").
		Columns("user_id", "location", "bio", "hourly_rate_cents", "experience_years", "languages", "specialties").
		Values(
			p.UserID(),
			p.Location(),
			p.Bio(),
			p.HourlyRateCents(),
			p.ExperienceYears(),
			p.Languages(),
			p.Specialties(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build profile insert", err)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create guide profile", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, db infra.DBTX, p *guide.Profile) error {
	query, args, err := qb.Update("guide_profiles").
		Set("location", p.Location()).
		Set("bio", p.Bio()).
		Set("hourly_rate_cents", p.HourlyRateCents()).
		Set("experience_years", p.ExperienceYears()).
		Set("languages", p.Languages()).
		Set("specialties", p.Specialties()).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": p.UserID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build profile update", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update guide profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guide profile not found", nil, infra.KindNotFound)
	}
	return nil
}
