package response

import (
	"guideway/internal/usecase/queries"
)

type UserListResponse struct {
	Items []queries.UserListItem `json:"items"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}
