package request

import (
	"time"

	"guideway/internal/domain/schedule"

	"github.com/google/uuid"
)

const bookingDateLayout = "2006-01-02"

type CreateBookingRequest struct {
	GuideID         uuid.UUID `json:"guide_id" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required"`
	Hours           int       `json:"hours" binding:"required,min=1,max=8"`
	SpecialRequests string    `json:"special_requests" binding:"max=500"`
}

func (r *CreateBookingRequest) ToDomain() (time.Time, schedule.TimeRange, error) {
	date, err := time.ParseInLocation(bookingDateLayout, r.Date, time.UTC)
	if err != nil {
		return time.Time{}, schedule.TimeRange{}, err
	}

	start, err := schedule.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return time.Time{}, schedule.TimeRange{}, err
	}

	end, err := schedule.NewTimeOfDay(start.Minutes() + r.Hours*60)
	if err != nil {
		return time.Time{}, schedule.TimeRange{}, err
	}
	slot, err := schedule.NewTimeRange(start, end)
	if err != nil {
		return time.Time{}, schedule.TimeRange{}, err
	}

	return date, slot, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	IsPaid *bool  `json:"is_paid"`
}
