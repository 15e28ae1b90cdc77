// Package policy centralizes authorization decisions. Handlers and
// usecases ask these functions instead of scattering role checks, so
// every rule about who may touch a booking, a schedule, or another
// user lives in one place.
package policy

import (
	"guideway/internal/domain/booking"
	"guideway/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated principal making a request.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool    { return a.Role == user.RoleAdmin }
func (a Actor) IsGuide() bool    { return a.Role == user.RoleGuide }
func (a Actor) IsTraveler() bool { return a.Role == user.RoleTraveler }

// CanViewBooking allows admins and either party of the booking.
func CanViewBooking(a Actor, b *booking.Booking) bool {
	if a.IsAdmin() {
		return true
	}
	return a.ID == b.TravelerID() || a.ID == b.GuideID()
}

// CanTransitionBooking allows admins and the booked guide to change
// status, except that only the guide may mark a booking completed.
func CanTransitionBooking(a Actor, b *booking.Booking, next booking.Status) bool {
	isOwningGuide := a.IsGuide() && a.ID == b.GuideID()
	if next == booking.StatusCompleted {
		return isOwningGuide
	}
	return a.IsAdmin() || isOwningGuide
}

// CanReviewBooking allows only the traveler who made the booking.
func CanReviewBooking(a Actor, b *booking.Booking) bool {
	return a.ID == b.TravelerID()
}

// CanAdministerUsers gates the admin user-management surface.
func CanAdministerUsers(a Actor) bool {
	return a.IsAdmin()
}

// CanModifyUser blocks admins from changing or deleting their own
// account through the admin surface.
func CanModifyUser(a Actor, targetID uuid.UUID) bool {
	return CanAdministerUsers(a) && a.ID != targetID
}
