//go:build unit

package commands

import (
	"context"
	"time"

	"guideway/internal/domain/availability"
	"guideway/internal/domain/booking"
	"guideway/internal/domain/guide"
	"guideway/internal/domain/policy"
	"guideway/internal/domain/review"
	"guideway/internal/domain/schedule"
	"guideway/internal/domain/user"
	"guideway/internal/infra"
	"guideway/internal/usecase/queries"
	"guideway/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		reads:          &fakeReads{},
		bookings:       &fakeBookingRepo{},
		availabilities: &fakeAvailabilityRepo{},
		reviews:        &fakeReviewRepo{},
		ratingStats:    &fakeRatingStatsRepo{},
		users:          &fakeUserRepo{},
		profiles:       &fakeProfileRepo{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeTx struct {
	reads          *fakeReads
	bookings       *fakeBookingRepo
	availabilities *fakeAvailabilityRepo
	reviews        *fakeReviewRepo
	ratingStats    *fakeRatingStatsRepo
	users          *fakeUserRepo
	profiles       *fakeProfileRepo
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Availabilities() shared.AvailabilityRepository { return t.availabilities }
func (t *fakeTx) Reviews() shared.ReviewRepository             { return t.reviews }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository    { return t.ratingStats }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Profiles() shared.ProfileRepository           { return t.profiles }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() infra.DBTX                               { return nil }

type fakeReads struct {
	user      *shared.UserSnapshot
	userErr   error
	guide     *shared.GuideSnapshot
	guideErr  error
	booking   *shared.BookingSnapshot
	bookingErr error
	window    *shared.AvailabilitySnapshot
	windowErr error
	reviewExists    bool
	reviewExistsErr error
}

func (r *fakeReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.user, r.userErr
}

func (r *fakeReads) GuideByID(ctx context.Context, id uuid.UUID) (*shared.GuideSnapshot, error) {
	return r.guide, r.guideErr
}

func (r *fakeReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.booking, r.bookingErr
}

func (r *fakeReads) AvailabilityForDay(ctx context.Context, guideID uuid.UUID, day schedule.Weekday) (*shared.AvailabilitySnapshot, error) {
	return r.window, r.windowErr
}

func (r *fakeReads) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return r.reviewExists, r.reviewExistsErr
}

type fakeBookingRepo struct {
	createID   uuid.UUID
	createErr  error
	created    *booking.Booking
	overlap    bool
	overlapErr error
	updateErr  error
	lastStatus booking.Status
	lastIsPaid *bool
}

func (r *fakeBookingRepo) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = b
	return r.createID, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, db infra.DBTX, bookingID uuid.UUID, status booking.Status, isPaid *bool) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.lastStatus = status
	r.lastIsPaid = isPaid
	return nil
}

func (r *fakeBookingRepo) ExistsOverlapping(ctx context.Context, db infra.DBTX, guideID uuid.UUID, date time.Time, slot schedule.TimeRange) (bool, error) {
	return r.overlap, r.overlapErr
}

type fakeAvailabilityRepo struct {
	upsertID  uuid.UUID
	upsertErr error
	deleteErr error
	deleted   uuid.UUID
}

func (r *fakeAvailabilityRepo) Upsert(ctx context.Context, db infra.DBTX, w *availability.Window) (uuid.UUID, error) {
	if r.upsertErr != nil {
		return uuid.Nil, r.upsertErr
	}
	return r.upsertID, nil
}

func (r *fakeAvailabilityRepo) Delete(ctx context.Context, db infra.DBTX, windowID, guideID uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = windowID
	return nil
}

type fakeReviewRepo struct {
	createID  uuid.UUID
	createErr error
	created   *review.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, db infra.DBTX, rev *review.Review) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = rev
	return r.createID, nil
}

type fakeRatingStatsRepo struct {
	recalcErr   error
	recalcCalls int
	lastGuideID uuid.UUID
}

func (r *fakeRatingStatsRepo) RecalcGuideRatingStats(ctx context.Context, db infra.DBTX, guideID uuid.UUID) error {
	if r.recalcErr != nil {
		return r.recalcErr
	}
	r.recalcCalls++
	r.lastGuideID = guideID
	return nil
}

type fakeUserRepo struct {
	createID      uuid.UUID
	createErr     error
	created       *user.User
	lastLoginErr  error
	lastLoginFor  uuid.UUID
	statusErr     error
	lastSetStatus user.Status
	deleteErr     error
	deletedID     uuid.UUID
}

func (r *fakeUserRepo) Create(ctx context.Context, db infra.DBTX, u *user.User) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = u
	return r.createID, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	r.lastLoginFor = userID
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, db infra.DBTX, userID uuid.UUID, status user.Status) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	r.lastSetStatus = status
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, db infra.DBTX, userID uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedID = userID
	return nil
}

type fakeProfileRepo struct {
	createErr error
	updateErr error
	created   *guide.Profile
	updated   *guide.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, db infra.DBTX, p *guide.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = p
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, db infra.DBTX, p *guide.Profile) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = p
	return nil
}

type fakeBookingQueries struct {
	view *queries.BookingView
	err  error
}

func (q *fakeBookingQueries) GetByID(ctx context.Context, id uuid.UUID, actor policy.Actor) (*queries.BookingView, error) {
	return q.view, q.err
}

func (q *fakeBookingQueries) GetByIDSystem(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return q.view, q.err
}

func (q *fakeBookingQueries) List(ctx context.Context, actor policy.Actor, cursor *queries.Cursor, limit int) ([]queries.BookingView, *queries.Cursor, error) {
	return nil, nil, nil
}

type fakeUserReadStore struct {
	view    *queries.AuthorizedUserView
	hash    string
	findErr error
}

func (s *fakeUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return s.view, s.findErr
}

func (s *fakeUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	return s.view, s.hash, s.findErr
}

func (s *fakeUserReadStore) List(ctx context.Context, role, status *string, limit, offset int) ([]queries.UserListItem, int64, error) {
	return nil, 0, nil
}
