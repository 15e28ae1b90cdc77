package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")

	ErrNotBookingOwner     = errors.New("only the traveler who booked can review")
	ErrReviewAlreadyExists = errors.New("review already exists for this booking")
)
