// Package yookassa adapts the YooKassa payments API to the provider contract.
package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avezhov/ReTicket/internal/domain"
)

const ProviderName = "yookassa"

const defaultBaseURL = "https://api.yookassa.ru/v3"

type Client struct {
	baseURL   string
	shopID    string
	secretKey string
	http      *http.Client
}

func New(shopID, secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		shopID:    shopID,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Name() string { return ProviderName }

type amountPayload struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type confirmationPayload struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type cancellationDetails struct {
	Party  string `json:"party"`
	Reason string `json:"reason"`
}

type paymentPayload struct {
	ID                  string               `json:"id"`
	Status              string               `json:"status"`
	Amount              amountPayload        `json:"amount"`
	RefundedAmount      *amountPayload       `json:"refunded_amount,omitempty"`
	Confirmation        *confirmationPayload `json:"confirmation,omitempty"`
	CancellationDetails *cancellationDetails `json:"cancellation_details,omitempty"`
	CapturedAt          *time.Time           `json:"captured_at,omitempty"`
	Metadata            map[string]string    `json:"metadata,omitempty"`
}

func (c *Client) CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.CreatedPayment, error) {
	body := map[string]any{
		"amount": amountPayload{
			Value:    in.Amount.StringFixed(2),
			Currency: in.Currency,
		},
		"capture": true,
		"confirmation": confirmationPayload{
			Type:      "redirect",
			ReturnURL: in.SuccessURL,
		},
		"description": in.Description,
		"metadata":    map[string]string{"order_id": in.OrderID},
	}

	var p paymentPayload
	if _, err := c.do(ctx, http.MethodPost, "/payments", body, &p); err != nil {
		return nil, err
	}

	created := &domain.CreatedPayment{
		ID:     p.ID,
		Status: normalizeStatus(&p),
	}
	if p.Confirmation != nil {
		created.RedirectURL = p.Confirmation.ConfirmationURL
	}
	return created, nil
}

func (c *Client) GetPayment(ctx context.Context, providerPaymentID string) (*domain.ProviderPayment, error) {
	var p paymentPayload
	raw, err := c.do(ctx, http.MethodGet, "/payments/"+providerPaymentID, nil, &p)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(p.Amount.Value)
	if err != nil {
		return nil, fmt.Errorf("parse payment amount %q: %w", p.Amount.Value, err)
	}

	obs := &domain.ProviderPayment{
		ID:         p.ID,
		Status:     normalizeStatus(&p),
		Amount:     amount,
		Currency:   p.Amount.Currency,
		ApprovedAt: p.CapturedAt,
		Raw:        raw,
	}
	if p.CancellationDetails != nil {
		obs.RejectionReason = p.CancellationDetails.Reason
	}
	return obs, nil
}

type webhookPayload struct {
	Event  string `json:"event"`
	Object struct {
		ID string `json:"id"`
	} `json:"object"`
}

func (c *Client) ParseWebhook(body []byte) (string, error) {
	var w webhookPayload
	if err := json.Unmarshal(body, &w); err != nil {
		return "", fmt.Errorf("decode webhook: %w", err)
	}
	if w.Object.ID == "" {
		return "", fmt.Errorf("webhook %q carries no payment id", w.Event)
	}
	return w.Object.ID, nil
}

// do performs one API call. Transport failures and 5xx responses map to
// domain.ErrProviderUnavailable so callers never confuse an outage with a
// payment status.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.shopID, c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Idempotence-Key", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrProviderUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrProviderUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %s %s: status %d", domain.ErrProviderUnavailable, method, path, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: provider has no payment for %s", domain.ErrPaymentNotFound, path)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("yookassa rejected %s %s: status %d: %s", method, path, resp.StatusCode, raw)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return raw, nil
}
