//go:build unit || e2e

package builder

import (
	"time"

	"guideway/internal/domain/user"
	"guideway/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	Status       string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test Traveler",
		Email:        "traveler@example.com",
		PasswordHash: "hashed_password",
		Phone:        "+81-90-0000-0000",
		Role:         "user",
		Status:       "active",
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithStatus(status string) *UserBuilder {
	b.Status = status
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	status, err := user.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return user.Reconstruct(b.ID, name, email, b.PasswordHash, b.Phone, role, status, nil, now, now), nil
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:     b.ID,
		Name:   b.Name,
		Email:  b.Email,
		Role:   b.Role,
		Status: b.Status,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}
