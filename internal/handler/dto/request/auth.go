package request

import (
	"guideway/internal/domain/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

type RegisterGuideRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	Phone           string   `json:"phone" binding:"omitempty,max=30"`
	Location        string   `json:"location" binding:"required,max=100"`
	Bio             string   `json:"bio" binding:"max=2000"`
	HourlyRateCents int64    `json:"hourly_rate_cents" binding:"required,min=1"`
	ExperienceYears int      `json:"experience_years" binding:"min=0"`
	Languages       []string `json:"languages"`
	Specialties     []string `json:"specialties"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
