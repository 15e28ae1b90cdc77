//go:build unit

package commands

import (
	"context"
	"testing"

	"guideway/internal/domain/booking"
	"guideway/internal/domain/policy"
	"guideway/internal/domain/user"
	reqdto "guideway/internal/handler/dto/request"
	"guideway/internal/infra"
	"guideway/internal/pkg/clock"
	"guideway/internal/pkg/errs"
	"guideway/internal/usecase/shared"
	"guideway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingEnv struct {
	uow     *fakeUoW
	queries *fakeBookingQueries
	clk     *clock.MockClock
	bb      *builder.BookingBuilder
	uc      BookingCommands
}

// newBookingEnv wires fakes for the happy path: active guide, an
// all-day window for every weekday, and no competing bookings.
func newBookingEnv() *bookingEnv {
	bb := builder.NewBookingBuilder()
	uow := newFakeUoW()
	uow.tx.reads.guide = &shared.GuideSnapshot{
		ID:              bb.GuideID,
		Status:          "active",
		HourlyRateCents: bb.HourlyRateCents,
	}
	uow.tx.reads.window = &shared.AvailabilitySnapshot{
		ID:       uuid.New(),
		GuideID:  bb.GuideID,
		StartMin: 8 * 60,
		EndMin:   18 * 60,
	}
	uow.tx.bookings.createID = bb.ID

	q := &fakeBookingQueries{view: bb.BuildView()}
	clk := clock.NewMockClock(bb.Today)
	return &bookingEnv{
		uow:     uow,
		queries: q,
		clk:     clk,
		bb:      bb,
		uc:      NewBookingUseCase(uow, q, clk),
	}
}

func (e *bookingEnv) createRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		GuideID:         e.bb.GuideID,
		Date:            e.bb.Date.Format("2006-01-02"),
		StartTime:       e.bb.StartTime,
		Hours:           3,
		SpecialRequests: "wheelchair accessible route",
	}
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("creates pending booking and returns the stored view", func(t *testing.T) {
		t.Parallel()
		env := newBookingEnv()

		view, err := env.uc.CreateBooking(context.Background(), env.createRequest(), env.bb.TravelerID)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, env.bb.ID, view.ID)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, int64(15000), view.TotalCents)
		require.NotNil(t, env.uow.tx.bookings.created)
		assert.Equal(t, env.bb.TravelerID, env.uow.tx.bookings.created.TravelerID())
		assert.Equal(t, "wheelchair accessible route", env.uow.tx.bookings.created.SpecialRequests())
	})

	cases := []struct {
		name    string
		arrange func(env *bookingEnv, req *reqdto.CreateBookingRequest)
		wantErr error
	}{
		{
			name: "malformed date is a validation error",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				req.Date = "06/08/2025"
			},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name: "unknown guide",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.uow.tx.reads.guide = nil
				env.uow.tx.reads.guideErr = notFoundErr()
			},
			wantErr: errs.ErrGuideNotFound,
		},
		{
			name: "guide awaiting activation cannot be booked",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.uow.tx.reads.guide.Status = "pending"
			},
			wantErr: errs.ErrGuideNotActive,
		},
		{
			name: "no window for the weekday",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.uow.tx.reads.window = nil
				env.uow.tx.reads.windowErr = notFoundErr()
			},
			wantErr: errs.ErrGuideUnavailableDay,
		},
		{
			name: "slot spills past the end of the window",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.uow.tx.reads.window.StartMin = 10 * 60
				env.uow.tx.reads.window.EndMin = 11 * 60
			},
			wantErr: errs.ErrOutsideAvailability,
		},
		{
			name: "overlapping booking already held",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.uow.tx.bookings.overlap = true
			},
			wantErr: errs.ErrBookingConflict,
		},
		{
			name: "exclusion constraint trips on insert",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.uow.tx.bookings.createErr = infra.WrapRepoErr("exclusion violated", nil, infra.KindConflict)
			},
			wantErr: errs.ErrBookingConflict,
		},
		{
			name: "slot running past midnight is a validation error",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				req.StartTime = "23:00"
				req.Hours = 2
			},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name: "booking a past date is a validation error",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				req.Date = env.bb.Today.AddDate(0, 0, -1).Format("2006-01-02")
			},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name: "read-after-write failure surfaces as a database error",
			arrange: func(env *bookingEnv, req *reqdto.CreateBookingRequest) {
				env.queries.view = nil
				env.queries.err = errs.New("connection reset")
			},
			wantErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newBookingEnv()
			req := env.createRequest()
			tc.arrange(env, &req)

			view, err := env.uc.CreateBooking(context.Background(), req, env.bb.TravelerID)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, view)
		})
	}
}

func TestBookingUseCase_CreateBooking_SameDayAllowed(t *testing.T) {
	t.Parallel()
	env := newBookingEnv()
	req := env.createRequest()
	req.Date = env.bb.Today.Format("2006-01-02")
	env.queries.view = env.bb.With(func(b *builder.BookingBuilder) { b.Date = env.bb.Today }).BuildView()

	view, err := env.uc.CreateBooking(context.Background(), req, env.bb.TravelerID)

	require.NoError(t, err)
	assert.Equal(t, env.bb.Today, view.Date)
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	t.Parallel()

	guideActor := func(env *bookingEnv) policy.Actor {
		return policy.Actor{ID: env.bb.GuideID, Role: user.RoleGuide}
	}
	travelerActor := func(env *bookingEnv) policy.Actor {
		return policy.Actor{ID: env.bb.TravelerID, Role: user.RoleTraveler}
	}
	adminActor := func(env *bookingEnv) policy.Actor {
		return policy.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	}

	paid := true

	cases := []struct {
		name       string
		fromStatus string
		toStatus   string
		isPaid     *bool
		actor      func(env *bookingEnv) policy.Actor
		arrange    func(env *bookingEnv)
		wantErr    error
		wantStored booking.Status
	}{
		{
			name:       "guide confirms a pending booking",
			fromStatus: "pending",
			toStatus:   "confirmed",
			actor:      guideActor,
			wantStored: booking.StatusConfirmed,
		},
		{
			name:       "guide completes a confirmed booking",
			fromStatus: "confirmed",
			toStatus:   "completed",
			actor:      guideActor,
			wantStored: booking.StatusCompleted,
		},
		{
			name:       "guide marks the booking paid on completion",
			fromStatus: "confirmed",
			toStatus:   "completed",
			isPaid:     &paid,
			actor:      guideActor,
			wantStored: booking.StatusCompleted,
		},
		{
			name:       "guide cancels a pending booking",
			fromStatus: "pending",
			toStatus:   "cancelled",
			actor:      guideActor,
			wantStored: booking.StatusCancelled,
		},
		{
			name:       "traveler cannot cancel their own booking",
			fromStatus: "pending",
			toStatus:   "cancelled",
			actor:      travelerActor,
			wantErr:    errs.ErrForbidden,
		},
		{
			name:       "admin cancels on behalf of support",
			fromStatus: "confirmed",
			toStatus:   "cancelled",
			actor:      adminActor,
			wantStored: booking.StatusCancelled,
		},
		{
			name:       "traveler cannot confirm",
			fromStatus: "pending",
			toStatus:   "confirmed",
			actor:      travelerActor,
			wantErr:    errs.ErrForbidden,
		},
		{
			name:       "admin cannot mark completed",
			fromStatus: "confirmed",
			toStatus:   "completed",
			actor:      adminActor,
			wantErr:    errs.ErrForbidden,
		},
		{
			name:       "unrelated guide is rejected",
			fromStatus: "pending",
			toStatus:   "confirmed",
			actor: func(env *bookingEnv) policy.Actor {
				return policy.Actor{ID: uuid.New(), Role: user.RoleGuide}
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:       "cancelled booking is terminal",
			fromStatus: "cancelled",
			toStatus:   "confirmed",
			actor:      guideActor,
			wantErr:    errs.ErrInvalidStatusTransition,
		},
		{
			name:       "completed booking cannot be cancelled",
			fromStatus: "completed",
			toStatus:   "cancelled",
			actor:      guideActor,
			wantErr:    errs.ErrInvalidStatusTransition,
		},
		{
			name:       "unknown status string",
			fromStatus: "pending",
			toStatus:   "archived",
			actor:      guideActor,
			wantErr:    errs.ErrDomainValidation,
		},
		{
			name:       "missing booking",
			fromStatus: "pending",
			toStatus:   "confirmed",
			actor:      guideActor,
			arrange: func(env *bookingEnv) {
				env.uow.tx.reads.booking = nil
				env.uow.tx.reads.bookingErr = notFoundErr()
			},
			wantErr: errs.ErrBookingNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newBookingEnv()
			env.bb.WithStatus(tc.fromStatus)
			env.uow.tx.reads.booking = env.bb.BuildSnapshot()
			env.queries.view = env.bb.With(func(b *builder.BookingBuilder) { b.Status = tc.toStatus }).BuildView()
			if tc.arrange != nil {
				tc.arrange(env)
			}

			view, err := env.uc.UpdateStatus(context.Background(), env.bb.ID, tc.toStatus, tc.isPaid, tc.actor(env))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, view)
			assert.Equal(t, tc.toStatus, view.Status)
			assert.Equal(t, tc.wantStored, env.uow.tx.bookings.lastStatus)
			assert.Equal(t, tc.isPaid, env.uow.tx.bookings.lastIsPaid)
		})
	}
}
