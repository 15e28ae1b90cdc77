//go:build unit || e2e

package builder

import (
	"guideway/internal/handler/dto/request"
)

type RegisterRequestBuilder struct {
	req request.RegisterRequest
}

func NewRegisterRequestBuilder() *RegisterRequestBuilder {
	return &RegisterRequestBuilder{
		req: request.RegisterRequest{
			Name:     "Test Traveler",
			Email:    "traveler@example.com",
			Password: "password123",
			Phone:    "+351-912-000-000",
		},
	}
}

func (b *RegisterRequestBuilder) WithEmail(email string) *RegisterRequestBuilder {
	b.req.Email = email
	return b
}

func (b *RegisterRequestBuilder) WithPassword(password string) *RegisterRequestBuilder {
	b.req.Password = password
	return b
}

func (b *RegisterRequestBuilder) Build() request.RegisterRequest {
	return b.req
}

func NewLoginRequest(email, password string) request.LoginRequest {
	return request.LoginRequest{Email: email, Password: password}
}

func NewGuideRegisterRequest() request.RegisterGuideRequest {
	return request.RegisterGuideRequest{
		Name:            "Test Guide",
		Email:           "guide@example.com",
		Password:        "password123",
		Phone:           "+351-913-000-000",
		Location:        "Lisbon",
		Bio:             "Licensed guide for food and history tours.",
		HourlyRateCents: 5000,
		ExperienceYears: 4,
		Languages:       []string{"en", "pt"},
		Specialties:     []string{"food", "history"},
	}
}
