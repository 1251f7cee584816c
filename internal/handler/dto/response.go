package dto

import (
	"time"

	"github.com/avezhov/ReTicket/internal/domain"
)

type OrderResponse struct {
	ID                   string `json:"id"`
	BuyerID              string `json:"buyer_id"`
	EventID              string `json:"event_id"`
	Status               string `json:"status"`
	Subtotal             string `json:"subtotal"`
	Commission           string `json:"commission"`
	VAT                  string `json:"vat"`
	Total                string `json:"total"`
	Currency             string `json:"currency"`
	ReservationExpiresAt string `json:"reservation_expires_at"`
	Resumed              bool   `json:"resumed,omitempty"`
	CreatedAt            string `json:"created_at"`
}

type PaymentLinkResponse struct {
	PaymentID   string `json:"payment_id"`
	Provider    string `json:"provider"`
	RedirectURL string `json:"redirect_url"`
	ExpiresAt   string `json:"expires_at"`
}

type WaveResponse struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOrderResponse(o *domain.Order, resumed bool) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		BuyerID:              o.BuyerID,
		EventID:              o.EventID,
		Status:               string(o.Status),
		Subtotal:             o.Subtotal.StringFixed(2),
		Commission:           o.Commission.StringFixed(2),
		VAT:                  o.VAT.StringFixed(2),
		Total:                o.Total.StringFixed(2),
		Currency:             o.Currency,
		ReservationExpiresAt: o.ReservationExpiresAt.Format(time.RFC3339),
		Resumed:              resumed,
		CreatedAt:            o.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentLinkResponse(l *domain.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		PaymentID:   l.PaymentID,
		Provider:    l.Provider,
		RedirectURL: l.RedirectURL,
		ExpiresAt:   l.ExpiresAt.Format(time.RFC3339),
	}
}

func ToWaveResponse(w domain.TicketWave) WaveResponse {
	return WaveResponse{
		ID:       w.ID,
		EventID:  w.EventID,
		Name:     w.Name,
		Currency: w.Currency,
	}
}
