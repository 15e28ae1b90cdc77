//go:build unit

package api

import (
	"context"
	"net/http"
	"testing"

	"guideway/internal/domain/policy"
	"guideway/internal/domain/user"
	"guideway/internal/handler/dto/request"
	"guideway/internal/handler/dto/response"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/queries"
	"guideway/tests/common/builder"
	commonhttp "guideway/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingCommands struct {
	view *queries.BookingView
	err  error
}

func (s *stubBookingCommands) CreateBooking(ctx context.Context, req request.CreateBookingRequest, travelerID uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingCommands) UpdateStatus(ctx context.Context, bookingID uuid.UUID, rawStatus string, isPaid *bool, actor policy.Actor) (*queries.BookingView, error) {
	return s.view, s.err
}

type stubBookingQueries struct {
	view  *queries.BookingView
	views []queries.BookingView
	next  *queries.Cursor
	err   error
}

func (s *stubBookingQueries) GetByID(ctx context.Context, id uuid.UUID, actor policy.Actor) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) GetByIDSystem(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) List(ctx context.Context, actor policy.Actor, cursor *queries.Cursor, limit int) ([]queries.BookingView, *queries.Cursor, error) {
	return s.views, s.next, s.err
}

// stubAuth plants the identity the auth middleware would have set.
func stubAuth(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_role", role)
		c.Next()
	}
}

func newBookingTestRouter(cmds *stubBookingCommands, qs *stubBookingQueries, actorID uuid.UUID, role user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewBookingHandler(cmds, qs)

	group := engine.Group("/api/bookings", stubAuth(actorID, role))
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.POST("/:id/status", h.UpdateStatus)
	return engine
}

func TestBookingHandler_Create(t *testing.T) {
	bb := builder.NewBookingBuilder()
	body := request.CreateBookingRequest{
		GuideID:   bb.GuideID,
		Date:      bb.Date.Format("2006-01-02"),
		StartTime: bb.StartTime,
		Hours:     3,
	}

	t.Run("returns 201 with the created booking", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{view: bb.BuildView()},
			&stubBookingQueries{},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/bookings", body, "")

		var resp response.BookingResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
		assert.Equal(t, bb.ID, resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, bb.Date.Format("2006-01-02"), resp.Date)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"guide not found", errs.ErrGuideNotFound, http.StatusNotFound, "Guide not found"},
		{"guide not active", errs.ErrGuideNotActive, http.StatusUnprocessableEntity, "not accepting"},
		{"bad payload semantics", errs.ErrDomainValidation, http.StatusBadRequest, "Invalid booking data"},
	}

	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingTestRouter(
				&stubBookingCommands{err: tc.err},
				&stubBookingQueries{},
				bb.TravelerID, user.RoleTraveler,
			)

			w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/bookings", body, "")

			commonhttp.AssertErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
		})
	}

	// Scheduling rejections name the offending request field.
	fieldCases := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
		wantMsg    string
	}{
		{"day not offered", errs.ErrGuideUnavailableDay, http.StatusUnprocessableEntity,
			"date", "Guide is not available on this day"},
		{"outside window", errs.ErrOutsideAvailability, http.StatusUnprocessableEntity,
			"start_time", "Selected time is outside guide availability"},
		{"slot taken", errs.ErrBookingConflict, http.StatusConflict,
			"start_time", "Guide is already booked for this time"},
	}

	for _, tc := range fieldCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingTestRouter(
				&stubBookingCommands{err: tc.err},
				&stubBookingQueries{},
				bb.TravelerID, user.RoleTraveler,
			)

			w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/bookings", body, "")

			commonhttp.AssertFieldErrorResponse(t, w, tc.wantStatus, tc.wantField, tc.wantMsg)
		})
	}

	t.Run("rejects malformed JSON body", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/bookings", gin.H{"guide_id": "nope"}, "")

		commonhttp.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

func TestBookingHandler_List(t *testing.T) {
	bb := builder.NewBookingBuilder()

	t.Run("returns items and the next cursor", func(t *testing.T) {
		next := &queries.Cursor{After: "opaque-cursor"}
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{views: []queries.BookingView{*bb.BuildView()}, next: next},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings?limit=1", nil, "")

		var resp response.BookingListResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Items, 1)
		require.NotNil(t, resp.NextCursor)
		assert.Equal(t, "opaque-cursor", *resp.NextCursor)
	})

	t.Run("empty page has no next cursor", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings", nil, "")

		var resp response.BookingListResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Empty(t, resp.Items)
		assert.Nil(t, resp.NextCursor)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{err: queries.ErrInvalidCursor},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings?cursor=garbage", nil, "")

		commonhttp.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}

func TestBookingHandler_GetByID(t *testing.T) {
	bb := builder.NewBookingBuilder()

	t.Run("returns the booking", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{view: bb.BuildView()},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings/"+bb.ID.String(), nil, "")

		var resp response.BookingResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, bb.ID, resp.ID)
	})

	t.Run("invalid id format", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "")

		commonhttp.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid booking ID")
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{err: errs.ErrForbidden},
			uuid.New(), user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings/"+bb.ID.String(), nil, "")

		commonhttp.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed")
	})

	t.Run("missing booking", func(t *testing.T) {
		router := newBookingTestRouter(
			&stubBookingCommands{},
			&stubBookingQueries{err: errs.ErrBookingNotFound},
			bb.TravelerID, user.RoleTraveler,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/api/bookings/"+bb.ID.String(), nil, "")

		commonhttp.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	bb := builder.NewBookingBuilder()
	body := request.UpdateBookingStatusRequest{Status: "confirmed"}

	t.Run("returns the updated booking", func(t *testing.T) {
		updated := bb.With(func(b *builder.BookingBuilder) { b.Status = "confirmed" }).BuildView()
		router := newBookingTestRouter(
			&stubBookingCommands{view: updated},
			&stubBookingQueries{},
			bb.GuideID, user.RoleGuide,
		)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/bookings/"+bb.ID.String()+"/status", body, "")

		var resp response.BookingResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, "confirmed", resp.Status)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing booking", errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		{"not a party to the booking", errs.ErrForbidden, http.StatusForbidden, "Not allowed"},
		{"terminal state", errs.ErrInvalidStatusTransition, http.StatusUnprocessableEntity, "Invalid status transition"},
		{"unknown status value", errs.ErrDomainValidation, http.StatusBadRequest, "Invalid status value"},
	}

	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingTestRouter(
				&stubBookingCommands{err: tc.err},
				&stubBookingQueries{},
				bb.GuideID, user.RoleGuide,
			)

			w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/bookings/"+bb.ID.String()+"/status", body, "")

			commonhttp.AssertErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
		})
	}
}
