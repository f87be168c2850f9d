package domain

import "time"

const (
	// StatusActive домен действует, до истечения больше 30 дней.
	StatusActive = "active"
	// StatusExpiring до истечения осталось 30 дней или меньше.
	StatusExpiring = "expiring"
	// StatusExpired срок регистрации домена истёк.
	StatusExpired = "expired"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

const (
	NotificationExpiryReminder = "expiry_reminder"
	NotificationDomainExpired  = "domain_expired"
	NotificationPaymentSuccess = "payment_success"
)

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Domain struct {
	ID         string     `db:"id"`
	UserID     string     `db:"user_id"`
	Name       string     `db:"name"`
	Registrar  *string    `db:"registrar"`
	ExpiryDate *time.Time `db:"expiry_date"`
	Status     string     `db:"status"`
	Tags       []string   `db:"tags"`
	AutoRenew  bool       `db:"auto_renew"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

type Payment struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	DomainID         string    `db:"domain_id"`
	Amount           int64     `db:"amount"`
	Currency         string    `db:"currency"`
	GatewayPaymentID *string   `db:"gateway_payment_id"`
	GatewayOrderID   *string   `db:"gateway_order_id"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
}

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	DomainID  *string   `db:"domain_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	EmailSent bool      `db:"email_sent"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}
