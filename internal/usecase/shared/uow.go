package shared

import (
	"context"
	"time"

	"guideway/internal/domain/availability"
	"guideway/internal/domain/booking"
	"guideway/internal/domain/guide"
	"guideway/internal/domain/review"
	"guideway/internal/domain/schedule"
	"guideway/internal/domain/user"
	"guideway/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Availabilities() AvailabilityRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Users() UserRepository
	Profiles() ProfileRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	GuideByID(ctx context.Context, id uuid.UUID) (*GuideSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	AvailabilityForDay(ctx context.Context, guideID uuid.UUID, day schedule.Weekday) (*AvailabilitySnapshot, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus moves the booking and, when isPaid is non-nil, sets
	// the payment flag in the same statement.
	UpdateStatus(ctx context.Context, db infra.DBTX, bookingID uuid.UUID, status booking.Status, isPaid *bool) error
	// ExistsOverlapping locks the guide's bookings for the date and
	// reports whether any non-cancelled one overlaps the slot.
	ExistsOverlapping(ctx context.Context, db infra.DBTX, guideID uuid.UUID, date time.Time, slot schedule.TimeRange) (bool, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, db infra.DBTX, w *availability.Window) (uuid.UUID, error)
	Delete(ctx context.Context, db infra.DBTX, windowID, guideID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, db infra.DBTX, rev *review.Review) (uuid.UUID, error)
}

type RatingStatsRepository interface {
	RecalcGuideRatingStats(ctx context.Context, db infra.DBTX, guideID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, db infra.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error
	UpdateStatus(ctx context.Context, db infra.DBTX, userID uuid.UUID, status user.Status) error
	Delete(ctx context.Context, db infra.DBTX, userID uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, db infra.DBTX, p *guide.Profile) error
	Update(ctx context.Context, db infra.DBTX, p *guide.Profile) error
}
