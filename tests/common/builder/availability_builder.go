//go:build unit || e2e

package builder

import (
	"guideway/internal/domain/availability"
	"guideway/internal/domain/schedule"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityBuilder struct {
	ID        uuid.UUID
	GuideID   uuid.UUID
	DayOfWeek int
	StartTime string
	EndTime   string
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		ID:        uuid.New(),
		GuideID:   uuid.New(),
		DayOfWeek: 0,
		StartTime: "08:00",
		EndTime:   "18:00",
	}
}

func (b *AvailabilityBuilder) WithGuideID(id uuid.UUID) *AvailabilityBuilder {
	b.GuideID = id
	return b
}

func (b *AvailabilityBuilder) WithDay(day int) *AvailabilityBuilder {
	b.DayOfWeek = day
	return b
}

func (b *AvailabilityBuilder) WithWindow(start, end string) *AvailabilityBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *AvailabilityBuilder) BuildDomain() (*availability.Window, error) {
	day, err := schedule.NewWeekday(b.DayOfWeek)
	if err != nil {
		return nil, err
	}
	r, err := schedule.ParseTimeRange(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return availability.NewWindow(b.GuideID, day, r), nil
}

func (b *AvailabilityBuilder) BuildSnapshot() *shared.AvailabilitySnapshot {
	r, err := schedule.ParseTimeRange(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return &shared.AvailabilitySnapshot{
		ID:       b.ID,
		GuideID:  b.GuideID,
		Day:      b.DayOfWeek,
		StartMin: r.Start().Minutes(),
		EndMin:   r.End().Minutes(),
	}
}
