//go:build unit

package user_test

import (
	"errors"
	"testing"

	"guideway/internal/domain/user"
	"guideway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("traveler registration", func(t *testing.T) {
		name, _ := user.NewName("Alice")
		email, _ := user.NewEmail("alice@example.com")

		actual := user.NewTraveler(name, email, "hashed_password", "+81-90-1234-5678")
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleTraveler, actual.Role())
		assert.Equal(t, user.StatusActive, actual.Status())
		assert.Equal(t, "+81-90-1234-5678", actual.Phone())
		assert.True(t, actual.CanLogin())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("guide registration starts pending", func(t *testing.T) {
		name, _ := user.NewName("Bob")
		email, _ := user.NewEmail("bob@example.com")

		actual := user.NewGuide(name, email, "hashed_password", "")
		require.NotNil(t, actual)

		assert.Equal(t, user.RoleGuide, actual.Role())
		assert.Equal(t, user.StatusPending, actual.Status())
		assert.False(t, actual.CanLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("not-an-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "traveler role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "guide role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("guide") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("status gates login", func(t *testing.T) {
		for status, canLogin := range map[string]bool{
			"pending": false,
			"active":  true,
			"blocked": false,
		} {
			actual, err := builder.NewUserBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, canLogin, actual.CanLogin(), "status %s", status)
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, c.errIs), "expected %v, got %v", c.errIs, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
