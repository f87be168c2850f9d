package domains

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/dto"
	"github.com/avdeev/domainpro/internal/lifecycle"
	"github.com/avdeev/domainpro/internal/service/domainservice"
	"github.com/avdeev/domainpro/internal/whois"
	pkgauth "github.com/avdeev/domainpro/pkg/auth"
	"github.com/avdeev/domainpro/pkg/utils"
	"github.com/avdeev/domainpro/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	AddDomain(ctx context.Context, userID, name string, tags []string, autoRenew bool) (*domain.Domain, error)
	GetDomains(ctx context.Context, userID string) ([]domainservice.DomainWithStats, error)
	UpdateDomain(ctx context.Context, userID, id string, upd domainservice.Update) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, userID, id string) error
	GetDashboardStats(ctx context.Context, userID string) (*domainservice.DashboardStats, error)
	Lookup(ctx context.Context, domainName string) (*whois.Record, error)
}

type DomainHandler struct {
	domainService Service
}

func New(domainService Service) *DomainHandler {
	return &DomainHandler{
		domainService: domainService,
	}
}

// AddDomain godoc
//
//	@Summary		Track a new domain
//	@Description	Add a domain to the authenticated user's portfolio, enriched with WHOIS data
//	@Tags			Domains
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddDomainRequestDTO	true	"Domain to add"
//	@Success		201		{object}	dto.DomainResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or domain name"
//	@Failure		409		{object}	utils.Response	"Domain already tracked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/domains [post]
func (h *DomainHandler) AddDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.AddDomainRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if !validate.IsDomainName(name) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid domain name")
		return
	}
	d, err := h.domainService.AddDomain(r.Context(), userID, name, req.Tags, req.AutoRenew)
	if err != nil {
		if errors.Is(err, domainservice.ErrDomainAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDomainDTOWithStats(d))
}

// GetDomains godoc
//
//	@Summary		List tracked domains
//	@Description	Return all domains of the authenticated user with expiry statistics
//	@Tags			Domains
//	@Produce		json
//	@Success		200	{array}		dto.DomainResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/domains [get]
func (h *DomainHandler) GetDomains(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	domains, err := h.domainService.GetDomains(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.DomainResponseDTO, 0, len(domains))
	for _, d := range domains {
		result = append(result, toDomainDTO(&d.Domain, d.DaysUntilExpiry, d.ProgressPercentage))
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// UpdateDomain godoc
//
//	@Summary		Update a tracked domain
//	@Description	Change registrar, expiry date, tags or auto-renew of a domain
//	@Tags			Domains
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Domain id"
//	@Param			request	body		dto.UpdateDomainRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.DomainResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Domain not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/domains/{id} [put]
func (h *DomainHandler) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.UpdateDomainRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	d, err := h.domainService.UpdateDomain(r.Context(), userID, chi.URLParam(r, "id"), domainservice.Update{
		Registrar:  req.Registrar,
		ExpiryDate: req.ExpiryDate,
		Tags:       req.Tags,
		AutoRenew:  req.AutoRenew,
	})
	if err != nil {
		if errors.Is(err, domainservice.ErrDomainNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDomainDTOWithStats(d))
}

// DeleteDomain godoc
//
//	@Summary		Stop tracking a domain
//	@Description	Remove a domain from the authenticated user's portfolio
//	@Tags			Domains
//	@Produce		json
//	@Param			id	path	string	true	"Domain id"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Domain not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/domains/{id} [delete]
func (h *DomainHandler) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	err := h.domainService.DeleteDomain(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domainservice.ErrDomainNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetDashboardStats godoc
//
//	@Summary		Portfolio statistics
//	@Description	Return aggregate counts of the user's domains by lifecycle state
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	dto.DashboardStatsDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/dashboard/stats [get]
func (h *DomainHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	stats, err := h.domainService.GetDashboardStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardStatsDTO{
		TotalDomains:   stats.TotalDomains,
		ActiveDomains:  stats.ActiveDomains,
		ExpiringSoon:   stats.ExpiringSoon,
		ExpiredDomains: stats.ExpiredDomains,
	})
}

// Whois godoc
//
//	@Summary		WHOIS lookup
//	@Description	Query registrar and expiry data for any domain name
//	@Tags			Whois
//	@Produce		json
//	@Param			domain	path		string	true	"Domain name"
//	@Success		200		{object}	dto.WhoisResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid domain name"
//	@Failure		502		{object}	utils.Response	"WHOIS provider unavailable"
//	@Security		BearerAuth
//	@Router			/api/whois/{domain} [get]
func (h *DomainHandler) Whois(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(chi.URLParam(r, "domain"))
	if !validate.IsDomainName(name) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid domain name")
		return
	}
	record, err := h.domainService.Lookup(r.Context(), name)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "WHOIS provider unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WhoisResponseDTO{
		Registrar:  record.Registrar,
		ExpiryDate: record.ExpiryDate,
	})
}

func toDomainDTOWithStats(d *domain.Domain) dto.DomainResponseDTO {
	c := lifecycle.Classify(d.ExpiryDate, time.Now())
	return toDomainDTO(d, c.DaysUntilExpiry, c.ProgressPercentage)
}

func toDomainDTO(d *domain.Domain, days int, progress float64) dto.DomainResponseDTO {
	return dto.DomainResponseDTO{
		ID:                 d.ID,
		Name:               d.Name,
		Registrar:          d.Registrar,
		ExpiryDate:         d.ExpiryDate,
		Status:             d.Status,
		Tags:               d.Tags,
		AutoRenew:          d.AutoRenew,
		DaysUntilExpiry:    days,
		ProgressPercentage: progress,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
