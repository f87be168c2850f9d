package domainservice

import (
	"context"
	"errors"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/lifecycle"
	"github.com/avdeev/domainpro/internal/whois"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Domain, error)
	FindByName(ctx context.Context, userID, name string) (*domain.Domain, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Domain, error)
	FindForSweep(ctx context.Context, limit uint32) ([]domain.Domain, error)
	FindDueForReminder(ctx context.Context, from, to time.Time) ([]domain.Domain, error)
	Save(ctx context.Context, d *domain.Domain) error
	Update(ctx context.Context, d *domain.Domain) error
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrDomainNotFound      = errors.New("domain not found")
	ErrDomainAlreadyExists = errors.New("domain already exists")
)

type DomainWithStats struct {
	domain.Domain
	DaysUntilExpiry    int
	ProgressPercentage float64
}

type DashboardStats struct {
	TotalDomains   int
	ActiveDomains  int
	ExpiringSoon   int
	ExpiredDomains int
}

type Update struct {
	Registrar  *string
	ExpiryDate *time.Time
	Tags       *[]string
	AutoRenew  *bool
}

type Service struct {
	repo  Repo
	whois whois.ClientI
	now   func() time.Time
}

func New(repo Repo, whoisClient whois.ClientI) *Service {
	return &Service{
		repo:  repo,
		whois: whoisClient,
		now:   time.Now,
	}
}

// AddDomain creates a record for the caller, enriched by a WHOIS lookup.
// A freshly added domain always starts as active; the next sweep will
// reclassify it if its expiry says otherwise. A failed lookup is not
// fatal: the domain is stored without registrar and expiry data.
func (s *Service) AddDomain(ctx context.Context, userID, name string, tags []string, autoRenew bool) (*domain.Domain, error) {
	existing, err := s.repo.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("domain already exists", zap.String("name", name))
		return nil, ErrDomainAlreadyExists
	}

	record, err := s.whois.Lookup(ctx, name)
	if err != nil {
		zap.L().Warn("whois lookup failed, adding domain without expiry data", zap.String("name", name), zap.Error(err))
		record = &whois.Record{}
	}

	d := &domain.Domain{
		UserID:     userID,
		Name:       name,
		Registrar:  record.Registrar,
		ExpiryDate: record.ExpiryDate,
		Status:     domain.StatusActive,
		Tags:       tags,
		AutoRenew:  autoRenew,
	}

	if err := s.repo.Save(ctx, d); err != nil {
		zap.L().Error("can't save domain: ", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (s *Service) GetDomains(ctx context.Context, userID string) ([]DomainWithStats, error) {
	domains, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get domains", zap.Error(err))
		return nil, err
	}

	now := s.now()
	result := make([]DomainWithStats, 0, len(domains))
	for _, d := range domains {
		c := lifecycle.Classify(d.ExpiryDate, now)
		result = append(result, DomainWithStats{
			Domain:             d,
			DaysUntilExpiry:    c.DaysUntilExpiry,
			ProgressPercentage: c.ProgressPercentage,
		})
	}
	return result, nil
}

func (s *Service) UpdateDomain(ctx context.Context, userID, id string, upd Update) (*domain.Domain, error) {
	d, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Registrar != nil {
		d.Registrar = upd.Registrar
	}
	if upd.Tags != nil {
		d.Tags = *upd.Tags
	}
	if upd.AutoRenew != nil {
		d.AutoRenew = *upd.AutoRenew
	}
	if upd.ExpiryDate != nil {
		// A manual expiry change reclassifies immediately so the stored
		// status never contradicts a completed mutation.
		d.ExpiryDate = upd.ExpiryDate
		d.Status = lifecycle.Classify(d.ExpiryDate, s.now()).Status
	}

	if err := s.repo.Update(ctx, d); err != nil {
		zap.L().Error("can't update domain: ", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDomain(ctx context.Context, userID, id string) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete domain: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetDashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	domains, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get domains", zap.Error(err))
		return nil, err
	}

	now := s.now()
	stats := &DashboardStats{TotalDomains: len(domains)}
	for _, d := range domains {
		switch lifecycle.Classify(d.ExpiryDate, now).Status {
		case domain.StatusExpired:
			stats.ExpiredDomains++
		case domain.StatusExpiring:
			stats.ExpiringSoon++
		default:
			stats.ActiveDomains++
		}
	}
	return stats, nil
}

func (s *Service) Lookup(ctx context.Context, domainName string) (*whois.Record, error) {
	return s.whois.Lookup(ctx, domainName)
}

// findOwned resolves the domain and hides other users' records behind
// not-found, so existence never leaks across accounts.
func (s *Service) findOwned(ctx context.Context, userID, id string) (*domain.Domain, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.UserID != userID {
		return nil, ErrDomainNotFound
	}
	return d, nil
}
