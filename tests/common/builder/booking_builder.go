//go:build unit || e2e

package builder

import (
	"time"

	"guideway/internal/domain/booking"
	"guideway/internal/domain/schedule"
	"guideway/internal/usecase/queries"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	GuideID         uuid.UUID
	TravelerID      uuid.UUID
	Date            time.Time
	StartTime       string
	EndTime         string
	Status          string
	HourlyRateCents int64
	IsPaid          bool
	SpecialRequests string
	Today           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:              uuid.New(),
		GuideID:         uuid.New(),
		TravelerID:      uuid.New(),
		Date:            today.AddDate(0, 0, 7),
		StartTime:       "09:00",
		EndTime:         "12:00",
		Status:          "pending",
		HourlyRateCents: 5000,
		Today:           today,
	}
}

func (b *BookingBuilder) WithGuideID(id uuid.UUID) *BookingBuilder {
	b.GuideID = id
	return b
}

func (b *BookingBuilder) WithTravelerID(id uuid.UUID) *BookingBuilder {
	b.TravelerID = id
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithHourlyRate(cents int64) *BookingBuilder {
	b.HourlyRateCents = cents
	return b
}

func (b *BookingBuilder) WithSpecialRequests(text string) *BookingBuilder {
	b.SpecialRequests = text
	return b
}

func (b *BookingBuilder) slot() (schedule.TimeRange, error) {
	return schedule.ParseTimeRange(b.StartTime, b.EndTime)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := b.slot()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.GuideID, b.TravelerID, b.Date, slot, b.HourlyRateCents, b.SpecialRequests, b.Today)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	slot, err := b.slot()
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return &shared.BookingSnapshot{
		ID:              b.ID,
		GuideID:         b.GuideID,
		TravelerID:      b.TravelerID,
		Date:            b.Date,
		StartMin:        slot.Start().Minutes(),
		EndMin:          slot.End().Minutes(),
		Status:          b.Status,
		TotalCents:      booking.PriceCents(slot, b.HourlyRateCents),
		IsPaid:          b.IsPaid,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	slot, err := b.slot()
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return &queries.BookingView{
		ID:              b.ID,
		GuideID:         b.GuideID,
		GuideName:       "Test Guide",
		TravelerID:      b.TravelerID,
		TravelerName:    "Test Traveler",
		Date:            b.Date,
		StartTime:       slot.Start().String(),
		EndTime:         slot.End().String(),
		StartMin:        slot.Start().Minutes(),
		EndMin:          slot.End().Minutes(),
		Hours:           (slot.End().Minutes() - slot.Start().Minutes()) / 60,
		Status:          b.Status,
		TotalCents:      booking.PriceCents(slot, b.HourlyRateCents),
		IsPaid:          b.IsPaid,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}
