package domainrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = "id, user_id, name, registrar, expiry_date, status, tags, auto_renew, created_at, updated_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Domain, error) {
	query := `
        SELECT ` + columns + `
        FROM domains
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	d, err := scanDomain(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find domain", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) FindByName(ctx context.Context, userID, name string) (*domain.Domain, error) {
	query := `
        SELECT ` + columns + `
        FROM domains
        WHERE user_id = $1 AND name = $2
    `
	row := r.db.QueryRow(ctx, query, userID, name)

	d, err := scanDomain(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find domain by name", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Domain, error) {
	query := `
        SELECT ` + columns + `
        FROM domains
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get domains", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDomains(rows)
}

// FindForSweep returns domains with a known expiry date across all accounts.
// Domains without one never transition and are skipped by the sweep.
func (r *Repository) FindForSweep(ctx context.Context, limit uint32) ([]domain.Domain, error) {
	query := `
        SELECT ` + columns + `
        FROM domains
        WHERE expiry_date IS NOT NULL
        ORDER BY expiry_date ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get domains for sweep", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDomains(rows)
}

// FindDueForReminder returns domains expiring within the [from, to] window
// that have no reminder notification already delivered inside the window.
// The window-based query keeps reminders from being lost when a daily run
// is skipped, and from repeating once one has been sent.
func (r *Repository) FindDueForReminder(ctx context.Context, from, to time.Time) ([]domain.Domain, error) {
	query := `
        SELECT ` + columns + `
        FROM domains d
        WHERE d.expiry_date IS NOT NULL
          AND d.expiry_date > $1
          AND d.expiry_date <= $2
          AND NOT EXISTS (
            SELECT 1 FROM notifications n
            WHERE n.domain_id = d.id
              AND n.type = 'expiry_reminder'
              AND n.email_sent = TRUE
              AND n.created_at > d.expiry_date - INTERVAL '8 days'
          )
        ORDER BY d.expiry_date ASC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get domains due for reminder", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectDomains(rows)
}

func (r *Repository) Save(ctx context.Context, d *domain.Domain) error {
	query := `
        INSERT INTO domains (id, user_id, name, registrar, expiry_date, status, tags, auto_renew, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10)
    `
	d.ID = uuid.NewString()
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	tags, err := tagsJSON(d.Tags)
	if err != nil {
		return err
	}

	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, d.ID, d.UserID, d.Name, d.Registrar, d.ExpiryDate, d.Status, tags, d.AutoRenew, d.CreatedAt, d.UpdatedAt)
		if err != nil {
			zap.L().Error("can't save domain", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, d *domain.Domain) error {
	query := `
        UPDATE domains
        SET registrar = $1, expiry_date = $2, status = $3, tags = $4::jsonb, auto_renew = $5, updated_at = $6
        WHERE id = $7
    `
	d.UpdatedAt = time.Now()

	tags, err := tagsJSON(d.Tags)
	if err != nil {
		return err
	}

	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, d.Registrar, d.ExpiryDate, d.Status, tags, d.AutoRenew, d.UpdatedAt, d.ID)
		if err != nil {
			zap.L().Error("failed to update domain", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	query := `
        UPDATE domains
        SET status = $1, updated_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, status, updatedAt, id)
	if err != nil {
		zap.L().Error("failed to update domain status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
        DELETE FROM domains
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete domain", zap.Error(err))
		return err
	}
	return nil
}

func tagsJSON(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		zap.L().Error("can't marshal domain tags", zap.Error(err))
		return "", err
	}
	return string(b), nil
}

func scanDomain(row pgx.Row) (*domain.Domain, error) {
	var d domain.Domain
	var tags []byte
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Registrar, &d.ExpiryDate, &d.Status, &tags, &d.AutoRenew, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &d.Tags); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func collectDomains(rows pgx.Rows) ([]domain.Domain, error) {
	var domains []domain.Domain
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			zap.L().Error("can't scan domain row", zap.Error(err))
			return nil, err
		}
		domains = append(domains, *d)
	}
	return domains, nil
}
