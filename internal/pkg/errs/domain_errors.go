package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Guide errors
	ErrGuideNotFound   = errors.New("guide not found")
	ErrGuideNotActive  = errors.New("guide is not active")
	ErrNotAGuide       = errors.New("user is not a guide")
	ErrProfileNotFound = errors.New("guide profile not found")

	// Availability errors
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrGuideUnavailableDay  = errors.New("guide is not available on this day")
	ErrOutsideAvailability  = errors.New("selected time is outside guide availability")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingConflict         = errors.New("guide is already booked for this time")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrBookingInPast           = errors.New("booking date is in the past")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("booking already reviewed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotActive      = errors.New("user account is not active")
	ErrSelfModification   = errors.New("cannot modify own account")

	// Authorization errors
	ErrForbidden = errors.New("operation not permitted")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
