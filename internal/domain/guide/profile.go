package guide

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidHourlyRate = errors.New("hourly rate must be positive")
	ErrInvalidExperience = errors.New("experience years must not be negative")
	ErrBioTooLong        = errors.New("bio must be at most 2000 characters")
	ErrEmptyLocation     = errors.New("location must not be empty")
)

// Profile holds the public marketplace attributes of a guide. It is
// created alongside the user row during guide registration and edited
// by the guide afterwards.
type Profile struct {
	userID          uuid.UUID
	location        string
	bio             string
	hourlyRateCents int64
	experienceYears int
	languages       []string
	specialties     []string
}

func NewProfile(
	userID uuid.UUID,
	location, bio string,
	hourlyRateCents int64,
	experienceYears int,
	languages, specialties []string,
) (*Profile, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if hourlyRateCents <= 0 {
		return nil, ErrInvalidHourlyRate
	}
	if experienceYears < 0 {
		return nil, ErrInvalidExperience
	}
	if len(bio) > 2000 {
		return nil, ErrBioTooLong
	}
	return &Profile{
		userID:          userID,
		location:        location,
		bio:             bio,
		hourlyRateCents: hourlyRateCents,
		experienceYears: experienceYears,
		languages:       normalizeTags(languages),
		specialties:     normalizeTags(specialties),
	}, nil
}

func ReconstructProfile(
	userID uuid.UUID,
	location, bio string,
	hourlyRateCents int64,
	experienceYears int,
	languages, specialties []string,
) *Profile {
	return &Profile{
		userID:          userID,
		location:        location,
		bio:             bio,
		hourlyRateCents: hourlyRateCents,
		experienceYears: experienceYears,
		languages:       languages,
		specialties:     specialties,
	}
}

func (p *Profile) UserID() uuid.UUID     { return p.userID }
func (p *Profile) Location() string      { return p.location }
func (p *Profile) Bio() string           { return p.bio }
func (p *Profile) HourlyRateCents() int64 { return p.hourlyRateCents }
func (p *Profile) ExperienceYears() int  { return p.experienceYears }
func (p *Profile) Languages() []string   { return p.languages }
func (p *Profile) Specialties() []string { return p.specialties }

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
