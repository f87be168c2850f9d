package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/dto"
	"github.com/avdeev/domainpro/internal/gateway"
	"github.com/avdeev/domainpro/internal/service/paymentservice"
	pkgauth "github.com/avdeev/domainpro/pkg/auth"
	"github.com/avdeev/domainpro/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, userID, domainID string, amount int64) (*gateway.Order, error)
	VerifyPayment(ctx context.Context, userID, domainID, gatewayPaymentID, gatewayOrderID, signature string, amount int64) (*domain.Payment, error)
	GetPayments(ctx context.Context, userID string) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a renewal order
//	@Description	Register a renewal charge with the payment gateway for one of the user's domains
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order request body"
//	@Success		201		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Domain not found"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Security		BearerAuth
//	@Router			/api/payments/create-order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DomainID == "" || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Domain id and a positive amount are required")
		return
	}
	order, err := h.paymentService.CreateOrder(r.Context(), userID, req.DomainID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrDomainNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrGatewayUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

// VerifyPayment godoc
//
//	@Summary		Verify a renewal payment
//	@Description	Settle a pending renewal: completes the payment and extends the domain by one year
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Verification request body"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or signature"
//	@Failure		404		{object}	utils.Response	"Domain or order not found"
//	@Failure		409		{object}	utils.Response	"Payment already processed"
//	@Failure		422		{object}	utils.Response	"Payment does not match the order"
//	@Security		BearerAuth
//	@Router			/api/payments/verify [post]
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.VerifyPayment(r.Context(), userID, req.DomainID, req.PaymentID, req.OrderID, req.Signature, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrDomainNotFound), errors.Is(err, paymentservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrPaymentAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

// GetPayments godoc
//
//	@Summary		Payment history
//	@Description	Return all payments of the authenticated user, newest first
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	payments, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.PaymentResponseDTO, 0, len(payments))
	for _, p := range payments {
		result = append(result, toPaymentDTO(&p))
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func toPaymentDTO(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:               p.ID,
		DomainID:         p.DomainID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		GatewayPaymentID: p.GatewayPaymentID,
		GatewayOrderID:   p.GatewayOrderID,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
	}
}
