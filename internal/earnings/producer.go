// Package earnings dispatches confirmed sales to the downstream
// seller-earnings workflow over Kafka. The consumer owns hold periods and
// payouts; this side only guarantees at-least-once delivery keyed by order
// id, so the consumer must deduplicate.
package earnings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/avezhov/ReTicket/internal/domain"
)

const EventTicketsSold = "TicketsSold"

type envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type ticketsSoldPayload struct {
	OrderID  string `json:"order_id"`
	BuyerID  string `json:"buyer_id"`
	EventID  string `json:"event_id"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// OrderConfirmed publishes one TicketsSold event for the order. The message
// key is the order id, which gives the consumer a stable dedup handle.
func (p *Producer) OrderConfirmed(ctx context.Context, o *domain.Order) error {
	payload, err := json.Marshal(ticketsSoldPayload{
		OrderID:  o.ID,
		BuyerID:  o.BuyerID,
		EventID:  o.EventID,
		Total:    o.Total.String(),
		Currency: o.Currency,
	})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	value, err := json.Marshal(envelope{
		EventID:      uuid.New().String(),
		EventType:    EventTicketsSold,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "reticket-core",
		Payload:      payload,
	})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", EventTicketsSold, err)
	}
	return nil
}

func (p *Producer) Close() error { return p.w.Close() }
