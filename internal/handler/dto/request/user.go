package request

type UpdateGuideProfileRequest struct {
	Location        string   `json:"location" binding:"required,max=100"`
	Bio             string   `json:"bio" binding:"max=2000"`
	HourlyRateCents int64    `json:"hourly_rate_cents" binding:"required,min=1"`
	ExperienceYears int      `json:"experience_years" binding:"min=0"`
	Languages       []string `json:"languages"`
	Specialties     []string `json:"specialties"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active blocked"`
}
