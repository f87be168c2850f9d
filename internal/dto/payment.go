package dto

import "time"

type CreateOrderRequestDTO struct {
	DomainID string `json:"domainId" validate:"required" example:"b81c6f1e-50a8-41dd-9a29-6ab0e3f1c002"`
	Amount   int64  `json:"amount" validate:"required,gt=0" example:"99900"`
}

type CreateOrderResponseDTO struct {
	OrderID  string `json:"orderId" example:"order_NXhj2O8wZ4K1xA"`
	Amount   int64  `json:"amount" example:"99900"`
	Currency string `json:"currency" example:"USD"`
}

type VerifyPaymentRequestDTO struct {
	DomainID  string `json:"domainId" validate:"required" example:"b81c6f1e-50a8-41dd-9a29-6ab0e3f1c002"`
	PaymentID string `json:"paymentId" validate:"required" example:"pay_NXhj9F2aQ7L3yB"`
	OrderID   string `json:"orderId" validate:"required" example:"order_NXhj2O8wZ4K1xA"`
	Signature string `json:"signature" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0" example:"99900"`
}

type PaymentResponseDTO struct {
	ID               string    `json:"id" example:"b2f5d7a3-9c41-46a7-8a15-2f0cd1b4c003"`
	DomainID         string    `json:"domainId" example:"b81c6f1e-50a8-41dd-9a29-6ab0e3f1c002"`
	Amount           int64     `json:"amount" example:"99900"`
	Currency         string    `json:"currency" example:"USD"`
	GatewayPaymentID *string   `json:"gatewayPaymentId" example:"pay_NXhj9F2aQ7L3yB"`
	GatewayOrderID   *string   `json:"gatewayOrderId" example:"order_NXhj2O8wZ4K1xA"`
	Status           string    `json:"status" example:"completed"`
	CreatedAt        time.Time `json:"createdAt"`
}
