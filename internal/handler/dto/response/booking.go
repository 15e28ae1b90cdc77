package response

import (
	"time"

	"guideway/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	GuideID         uuid.UUID `json:"guide_id"`
	GuideName       string    `json:"guide_name"`
	TravelerID      uuid.UUID `json:"traveler_id"`
	TravelerName    string    `json:"traveler_name"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Hours           int       `json:"hours"`
	Status          string    `json:"status"`
	TotalCents      int64     `json:"total_cents"`
	IsPaid          bool      `json:"is_paid"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Reviewed        bool      `json:"reviewed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor *string           `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.Date = v.Date.Format("2006-01-02")
	return &resp
}

func FromBookingViews(views []queries.BookingView, nextCursor *string) *BookingListResponse {
	items := make([]BookingResponse, len(views))
	for i := range views {
		items[i] = *FromBookingView(&views[i])
	}
	return &BookingListResponse{Items: items, NextCursor: nextCursor}
}
