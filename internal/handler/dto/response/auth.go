package response

import (
	"guideway/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
