package queries

import (
	"context"

	"github.com/google/uuid"

	"guideway/internal/infra"
	"guideway/internal/pkg/errs"
)

// GuideSearchFilters are the public search knobs. Nil means "not
// filtered"; rates are in cents to match stored prices.
type GuideSearchFilters struct {
	Query              *string
	Location           *string
	Language           *string
	Specialty          *string
	MinRateCents       *int64
	MaxRateCents       *int64
	MinExperienceYears *int
}

// GuideAccountView carries the booking-relevant guide fields.
type GuideAccountView struct {
	ID              uuid.UUID
	Status          string
	HourlyRateCents int64
}

type GuideQueries interface {
	Search(ctx context.Context, filters GuideSearchFilters, page, limit int) ([]GuideListItem, int64, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*GuideDetailView, error)
}

type GuideReadStore interface {
	Search(ctx context.Context, filters GuideSearchFilters, limit, offset int) ([]GuideListItem, int64, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*GuideDetailView, error)
}

type guideQueriesImpl struct {
	readStore GuideReadStore
}

func NewGuideQueries(readStore GuideReadStore) GuideQueries {
	return &guideQueriesImpl{readStore: readStore}
}

func (q *guideQueriesImpl) Search(ctx context.Context, filters GuideSearchFilters, page, limit int) ([]GuideListItem, int64, error) {
	limit = ValidateLimit(limit)
	if page < 1 {
		page = 1
	}
	return q.readStore.Search(ctx, filters, limit, (page-1)*limit)
}

func (q *guideQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*GuideDetailView, error) {
	view, err := q.readStore.FindDetailByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrGuideNotFound
		}
		return nil, err
	}
	return view, nil
}
