package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Travelers register directly as active accounts; guides
// start out pending until an admin approves them.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	phone        string
	role         Role
	status       Status
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTraveler(name Name, email Email, passwordHash, phone string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         RoleTraveler,
		status:       StatusActive,
	}
}

func NewGuide(name Name, email Email, passwordHash, phone string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         RoleGuide,
		status:       StatusPending,
	}
}

func Reconstruct(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	phone string,
	role Role,
	status Status,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		status:       status,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) CanLogin() bool {
	return u.status == StatusActive
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() Name            { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Phone() string         { return u.phone }
func (u *User) Role() Role            { return u.role }
func (u *User) Status() Status        { return u.status }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
