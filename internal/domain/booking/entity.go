package booking

import (
	"errors"
	"strings"
	"time"

	"guideway/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrDateInPast             = errors.New("booking date cannot be in the past")
	ErrSelfBooking            = errors.New("guides cannot book themselves")
	ErrInvalidDuration        = errors.New("booking must cover 1 to 8 whole hours")
	ErrSpecialRequestsTooLong = errors.New("special requests must be at most 500 characters")
)

const (
	MaxBookingHours          = 8
	MaxSpecialRequestsLength = 500
)

// Booking is a traveler's request for a guide's time on a single date.
// The total price is fixed at creation from the guide's hourly rate at
// that moment; later rate changes do not reprice existing bookings.
type Booking struct {
	id              uuid.UUID
	guideID         uuid.UUID
	travelerID      uuid.UUID
	date            time.Time
	slot            schedule.TimeRange
	status          Status
	totalCents      int64
	isPaid          bool
	specialRequests string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking validates the request against today's date and prices the
// slot. Availability and conflict checks happen in the usecase layer,
// inside the booking transaction.
func NewBooking(
	guideID, travelerID uuid.UUID,
	date time.Time,
	slot schedule.TimeRange,
	hourlyRateCents int64,
	specialRequests string,
	today time.Time,
) (*Booking, error) {
	if guideID == travelerID {
		return nil, ErrSelfBooking
	}
	date = truncateToDate(date)
	if date.Before(truncateToDate(today)) {
		return nil, ErrDateInPast
	}
	minutes := slot.DurationMinutes()
	if minutes%60 != 0 || minutes < 60 || minutes > MaxBookingHours*60 {
		return nil, ErrInvalidDuration
	}
	specialRequests = strings.TrimSpace(specialRequests)
	if len(specialRequests) > MaxSpecialRequestsLength {
		return nil, ErrSpecialRequestsTooLong
	}

	return &Booking{
		id:              uuid.New(),
		guideID:         guideID,
		travelerID:      travelerID,
		date:            date,
		slot:            slot,
		status:          StatusPending,
		totalCents:      PriceCents(slot, hourlyRateCents),
		specialRequests: specialRequests,
	}, nil
}

func Reconstruct(
	id, guideID, travelerID uuid.UUID,
	date time.Time,
	slot schedule.TimeRange,
	status Status,
	totalCents int64,
	isPaid bool,
	specialRequests string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		guideID:         guideID,
		travelerID:      travelerID,
		date:            date,
		slot:            slot,
		status:          status,
		totalCents:      totalCents,
		isPaid:          isPaid,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// PriceCents charges the hourly rate pro rata by minute.
func PriceCents(slot schedule.TimeRange, hourlyRateCents int64) int64 {
	return hourlyRateCents * int64(slot.DurationMinutes()) / 60
}

// Transition moves the booking to next if the status machine allows it.
func (b *Booking) Transition(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatus
	}
	b.status = next
	return nil
}

// BlocksSlot reports whether this booking still occupies its time slot.
// Cancelled bookings free the slot for rebooking.
func (b *Booking) BlocksSlot() bool {
	return b.status != StatusCancelled
}

// Hours is the booked duration in whole hours.
func (b *Booking) Hours() int { return b.slot.DurationMinutes() / 60 }

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) GuideID() uuid.UUID       { return b.guideID }
func (b *Booking) TravelerID() uuid.UUID    { return b.travelerID }
func (b *Booking) Date() time.Time          { return b.date }
func (b *Booking) Slot() schedule.TimeRange { return b.slot }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) TotalCents() int64        { return b.totalCents }
func (b *Booking) IsPaid() bool             { return b.isPaid }
func (b *Booking) SpecialRequests() string  { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
