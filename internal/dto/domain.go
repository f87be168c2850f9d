package dto

import "time"

type AddDomainRequestDTO struct {
	Name      string   `json:"name" validate:"required" example:"example.com"`
	Tags      []string `json:"tags" example:"production,client"`
	AutoRenew bool     `json:"autoRenew" example:"false"`
}

type UpdateDomainRequestDTO struct {
	Registrar  *string    `json:"registrar,omitempty" example:"GoDaddy"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty" example:"2026-12-09T16:09:57+03:00"`
	Tags       *[]string  `json:"tags,omitempty"`
	AutoRenew  *bool      `json:"autoRenew,omitempty"`
}

type DomainResponseDTO struct {
	ID                 string     `json:"id" example:"b81c6f1e-50a8-41dd-9a29-6ab0e3f1c002"`
	Name               string     `json:"name" example:"example.com"`
	Registrar          *string    `json:"registrar" example:"GoDaddy"`
	ExpiryDate         *time.Time `json:"expiryDate" example:"2026-12-09T16:09:57+03:00"`
	Status             string     `json:"status" example:"active"`
	Tags               []string   `json:"tags"`
	AutoRenew          bool       `json:"autoRenew" example:"false"`
	DaysUntilExpiry    int        `json:"daysUntilExpiry" example:"45"`
	ProgressPercentage float64    `json:"progressPercentage" example:"12.33"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type DashboardStatsDTO struct {
	TotalDomains   int `json:"totalDomains" example:"12"`
	ActiveDomains  int `json:"activeDomains" example:"8"`
	ExpiringSoon   int `json:"expiringSoon" example:"3"`
	ExpiredDomains int `json:"expiredDomains" example:"1"`
}

type WhoisResponseDTO struct {
	Registrar  *string    `json:"registrar" example:"NameCheap"`
	ExpiryDate *time.Time `json:"expiryDate" example:"2026-12-09T16:09:57+03:00"`
}
