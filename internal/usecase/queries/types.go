package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Status string    `json:"status"`
}

// UserListItem is the admin-facing user listing row.
type UserListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GuideListItem is one row of the guide search results.
type GuideListItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	ExperienceYears int       `json:"experience_years"`
	Languages       []string  `json:"languages"`
	Specialties     []string  `json:"specialties"`
	TotalReviews    int64     `json:"total_reviews"`
	AverageRating   *float64  `json:"average_rating,omitempty"`
}

// GuideDetailView is the full public guide page.
type GuideDetailView struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Location        string             `json:"location"`
	Bio             string             `json:"bio"`
	HourlyRateCents int64              `json:"hourly_rate_cents"`
	ExperienceYears int                `json:"experience_years"`
	Languages       []string           `json:"languages"`
	Specialties     []string           `json:"specialties"`
	TotalReviews    int64              `json:"total_reviews"`
	AverageRating   *float64           `json:"average_rating,omitempty"`
	Availability    []AvailabilityView `json:"availability"`
}

// AvailabilityView is one weekly window. Times render as "HH:MM"; the
// minute fields stay internal for validation paths.
type AvailabilityView struct {
	ID        uuid.UUID `json:"id"`
	GuideID   uuid.UUID `json:"guide_id"`
	Day       int       `json:"day_of_week"`
	DayName   string    `json:"day_name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	StartMin  int       `json:"-"`
	EndMin    int       `json:"-"`
}

// BookingView represents read-optimized booking data for both parties.
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	GuideID         uuid.UUID `json:"guide_id"`
	GuideName       string    `json:"guide_name"`
	TravelerID      uuid.UUID `json:"traveler_id"`
	TravelerName    string    `json:"traveler_name"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	StartMin        int       `json:"-"`
	EndMin          int       `json:"-"`
	Hours           int       `json:"hours"`
	Status          string    `json:"status"`
	TotalCents      int64     `json:"total_cents"`
	IsPaid          bool      `json:"is_paid"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Reviewed        bool      `json:"reviewed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReviewListItem is one row of a guide's public reviews.
type ReviewListItem struct {
	ID           uuid.UUID `json:"id"`
	TravelerName string    `json:"traveler_name"`
	Rating       int32     `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GuideRatingStats is the denormalized per-guide review aggregate.
type GuideRatingStats struct {
	GuideID       uuid.UUID `json:"guide_id"`
	TotalReviews  int64     `json:"total_reviews"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DashboardView carries role-scoped counters; exactly one section is set.
type DashboardView struct {
	Traveler *TravelerDashboard `json:"traveler,omitempty"`
	Guide    *GuideDashboard    `json:"guide,omitempty"`
	Admin    *AdminDashboard    `json:"admin,omitempty"`
}

type TravelerDashboard struct {
	TotalBookings     int64 `json:"total_bookings"`
	UpcomingBookings  int64 `json:"upcoming_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
}

type GuideDashboard struct {
	TotalBookings   int64    `json:"total_bookings"`
	PendingBookings int64    `json:"pending_bookings"`
	TotalReviews    int64    `json:"total_reviews"`
	AverageRating   *float64 `json:"average_rating,omitempty"`
}

type AdminDashboard struct {
	TotalUsers    int64 `json:"total_users"`
	PendingGuides int64 `json:"pending_guides"`
	TotalBookings int64 `json:"total_bookings"`
}
