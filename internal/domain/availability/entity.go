package availability

import (
	"time"

	"guideway/internal/domain/schedule"

	"github.com/google/uuid"
)

// Window is one weekly availability row: a guide is bookable on the
// given weekday within the given time range. At most one window exists
// per guide per weekday, so saving a window replaces any previous one.
type Window struct {
	id        uuid.UUID
	guideID   uuid.UUID
	day       schedule.Weekday
	timeRange schedule.TimeRange
	createdAt time.Time
	updatedAt time.Time
}

func NewWindow(guideID uuid.UUID, day schedule.Weekday, r schedule.TimeRange) *Window {
	return &Window{
		id:        uuid.New(),
		guideID:   guideID,
		day:       day,
		timeRange: r,
	}
}

func ReconstructWindow(
	id, guideID uuid.UUID,
	day schedule.Weekday,
	r schedule.TimeRange,
	createdAt, updatedAt time.Time,
) *Window {
	return &Window{
		id:        id,
		guideID:   guideID,
		day:       day,
		timeRange: r,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Covers reports whether a requested slot fits entirely inside this window.
func (w *Window) Covers(slot schedule.TimeRange) bool {
	return w.timeRange.Contains(slot)
}

func (w *Window) ID() uuid.UUID                { return w.id }
func (w *Window) GuideID() uuid.UUID           { return w.guideID }
func (w *Window) Day() schedule.Weekday        { return w.day }
func (w *Window) TimeRange() schedule.TimeRange { return w.timeRange }
func (w *Window) CreatedAt() time.Time         { return w.createdAt }
func (w *Window) UpdatedAt() time.Time         { return w.updatedAt }
