package shared

import (
	"time"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID     uuid.UUID
	Email  string
	Role   string
	Status string
}

type GuideSnapshot struct {
	ID              uuid.UUID
	Status          string
	HourlyRateCents int64
}

type BookingSnapshot struct {
	ID              uuid.UUID
	GuideID         uuid.UUID
	TravelerID      uuid.UUID
	Date            time.Time
	StartMin        int
	EndMin          int
	Status          string
	TotalCents      int64
	IsPaid          bool
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AvailabilitySnapshot struct {
	ID       uuid.UUID
	GuideID  uuid.UUID
	Day      int
	StartMin int
	EndMin   int
}
