package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"guideway/internal/domain/policy"
	"guideway/internal/pkg/clock"
)

type DashboardQueries interface {
	Get(ctx context.Context, actor policy.Actor) (*DashboardView, error)
}

type DashboardReadStore interface {
	ForTraveler(ctx context.Context, travelerID uuid.UUID, today time.Time) (*TravelerDashboard, error)
	ForGuide(ctx context.Context, guideID uuid.UUID) (*GuideDashboard, error)
	ForAdmin(ctx context.Context) (*AdminDashboard, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
	clock     clock.Clock
}

func NewDashboardQueries(readStore DashboardReadStore, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore, clock: clk}
}

func (q *dashboardQueriesImpl) Get(ctx context.Context, actor policy.Actor) (*DashboardView, error) {
	switch {
	case actor.IsAdmin():
		d, err := q.readStore.ForAdmin(ctx)
		if err != nil {
			return nil, err
		}
		return &DashboardView{Admin: d}, nil
	case actor.IsGuide():
		d, err := q.readStore.ForGuide(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		return &DashboardView{Guide: d}, nil
	default:
		now := q.clock.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		d, err := q.readStore.ForTraveler(ctx, actor.ID, today)
		if err != nil {
			return nil, err
		}
		return &DashboardView{Traveler: d}, nil
	}
}
