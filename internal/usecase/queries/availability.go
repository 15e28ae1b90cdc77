package queries

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]AvailabilityView, error)
}

type AvailabilityReadStore interface {
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
}

func NewAvailabilityQueries(readStore AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore}
}

func (q *availabilityQueriesImpl) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]AvailabilityView, error) {
	return q.readStore.ListByGuide(ctx, guideID)
}
