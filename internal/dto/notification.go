package dto

import "time"

type NotificationResponseDTO struct {
	ID        string    `json:"id" example:"1c7b9e52-6d30-4f1b-8d69-5b2ac4d1e004"`
	DomainID  *string   `json:"domainId" example:"b81c6f1e-50a8-41dd-9a29-6ab0e3f1c002"`
	Type      string    `json:"type" example:"expiry_reminder"`
	Message   string    `json:"message" example:"Domain example.com is expiring"`
	EmailSent bool      `json:"emailSent" example:"false"`
	Read      bool      `json:"read" example:"false"`
	CreatedAt time.Time `json:"createdAt"`
}
