package response

import (
	"github.com/google/uuid"
)

type CreatedReviewResponse struct {
	ID uuid.UUID `json:"id"`
}
