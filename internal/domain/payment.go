package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusProcessing        PaymentStatus = "processing"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusExpired           PaymentStatus = "expired"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// Terminal reports whether the provider will never move the payment again.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled,
		PaymentStatusExpired, PaymentStatusRefunded, PaymentStatusPartiallyRefunded:
		return true
	}
	return false
}

// FailedTerminal reports whether the payment ended without collecting money.
func (s PaymentStatus) FailedTerminal() bool {
	return s == PaymentStatusFailed || s == PaymentStatusCancelled || s == PaymentStatusExpired
}

// Payment is one attempt, with one external provider, to collect an order's
// total. (Provider, ProviderPaymentID) is globally unique and serves as the
// idempotency key for reconciliation.
type Payment struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	Provider          string          `json:"provider"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PayerEmail        string          `json:"payer_email,omitempty"`
	RejectionReason   string          `json:"rejection_reason,omitempty"`
	RedirectURL       string          `json:"redirect_url,omitempty"`
	ProviderMetadata  json.RawMessage `json:"provider_metadata,omitempty"`
	ApprovedAt        *time.Time      `json:"approved_at,omitempty"`
	FailedAt          *time.Time      `json:"failed_at,omitempty"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	ExpiredAt         *time.Time      `json:"expired_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ApplyObservation copies a normalized provider observation onto the payment
// snapshot. Terminal timestamps are set once and never overwritten.
func (p *Payment) ApplyObservation(obs *ProviderPayment, now time.Time) {
	p.Status = obs.Status
	if obs.PayerEmail != "" {
		p.PayerEmail = obs.PayerEmail
	}
	p.RejectionReason = obs.RejectionReason
	if len(obs.Raw) > 0 {
		p.ProviderMetadata = obs.Raw
	}

	switch obs.Status {
	case PaymentStatusPaid:
		if p.ApprovedAt == nil {
			if obs.ApprovedAt != nil {
				p.ApprovedAt = obs.ApprovedAt
			} else {
				p.ApprovedAt = &now
			}
		}
	case PaymentStatusFailed:
		if p.FailedAt == nil {
			p.FailedAt = &now
		}
	case PaymentStatusCancelled:
		if p.CancelledAt == nil {
			p.CancelledAt = &now
		}
	case PaymentStatusExpired:
		if p.ExpiredAt == nil {
			p.ExpiredAt = &now
		}
	}
	p.UpdatedAt = now
}

type PaymentEventKind string

const (
	PaymentEventObservation  PaymentEventKind = "observation_received"
	PaymentEventStatusChange PaymentEventKind = "status_change"
)

// PaymentEvent is an immutable audit record of a status observation. Appended
// on every reconciliation pass, never mutated, never used for control flow.
type PaymentEvent struct {
	ID        string           `json:"id"`
	PaymentID string           `json:"payment_id"`
	Kind      PaymentEventKind `json:"kind"`
	Status    PaymentStatus    `json:"status"`
	Detail    string           `json:"detail,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// ProviderPayment is the provider-agnostic shape every adapter normalizes
// provider data into.
type ProviderPayment struct {
	ID              string
	Status          PaymentStatus
	Amount          decimal.Decimal
	Currency        string
	PayerEmail      string
	RejectionReason string
	ApprovedAt      *time.Time
	Raw             json.RawMessage
}

// CreatePaymentInput carries everything a provider needs to open a payment.
type CreatePaymentInput struct {
	OrderID           string
	Amount            decimal.Decimal
	Currency          string
	Description       string
	SuccessURL        string
	BackURL           string
	NotificationURL   string
	ExpirationMinutes int
}

// CreatedPayment is the provider's answer to CreatePaymentInput.
type CreatedPayment struct {
	ID          string
	RedirectURL string
	Status      PaymentStatus
}

// PaymentLink is the checkout hand-off returned to the buyer. Reused while a
// payment attempt is still in flight so repeated checkout requests never
// create divergent payments.
type PaymentLink struct {
	PaymentID   string    `json:"payment_id"`
	Provider    string    `json:"provider"`
	RedirectURL string    `json:"redirect_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}
