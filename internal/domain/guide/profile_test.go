//go:build unit

package guide_test

import (
	"errors"
	"strings"
	"testing"

	"guideway/internal/domain/guide"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(mutate func(*profileArgs)) (*guide.Profile, error) {
	args := &profileArgs{
		userID:          uuid.New(),
		location:        "Lisbon",
		bio:             "Licensed guide for food and history tours.",
		hourlyRateCents: 5000,
		experienceYears: 4,
		languages:       []string{"en", "pt"},
		specialties:     []string{"food", "history"},
	}
	if mutate != nil {
		mutate(args)
	}
	return guide.NewProfile(args.userID, args.location, args.bio, args.hourlyRateCents, args.experienceYears, args.languages, args.specialties)
}

type profileArgs struct {
	userID          uuid.UUID
	location        string
	bio             string
	hourlyRateCents int64
	experienceYears int
	languages       []string
	specialties     []string
}

func TestNewProfile(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := newProfile(nil)
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", p.Location())
		assert.Equal(t, int64(5000), p.HourlyRateCents())
	})

	cases := []struct {
		name   string
		mutate func(*profileArgs)
		errIs  error
	}{
		{
			name:   "zero rate",
			mutate: func(a *profileArgs) { a.hourlyRateCents = 0 },
			errIs:  guide.ErrInvalidHourlyRate,
		},
		{
			name:   "negative rate",
			mutate: func(a *profileArgs) { a.hourlyRateCents = -100 },
			errIs:  guide.ErrInvalidHourlyRate,
		},
		{
			name:   "negative experience",
			mutate: func(a *profileArgs) { a.experienceYears = -1 },
			errIs:  guide.ErrInvalidExperience,
		},
		{
			name:   "empty location",
			mutate: func(a *profileArgs) { a.location = "  " },
			errIs:  guide.ErrEmptyLocation,
		},
		{
			name:   "bio too long",
			mutate: func(a *profileArgs) { a.bio = strings.Repeat("a", 2001) },
			errIs:  guide.ErrBioTooLong,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := newProfile(c.mutate)
			assert.True(t, errors.Is(err, c.errIs), "expected %v, got %v", c.errIs, err)
		})
	}

	t.Run("tags deduplicated case insensitively", func(t *testing.T) {
		p, err := newProfile(func(a *profileArgs) {
			a.languages = []string{"EN", "en", " pt "}
			a.specialties = []string{"Food", "food"}
		})
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"EN", "pt"}, p.Languages()); diff != "" {
			t.Errorf("languages mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"Food"}, p.Specialties()); diff != "" {
			t.Errorf("specialties mismatch (-want +got):\n%s", diff)
		}
	})
}
