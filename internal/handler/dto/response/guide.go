package response

import (
	"guideway/internal/usecase/queries"
)

type GuideSearchResponse struct {
	Items []queries.GuideListItem `json:"items"`
	Total int64                   `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

type ReviewListResponse struct {
	Items      []queries.ReviewListItem `json:"items"`
	NextCursor *string                  `json:"next_cursor,omitempty"`
}
