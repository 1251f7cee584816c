// Package cache keeps best-effort redis caches. Nothing here is a source of
// truth; every miss or failure falls back to Postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avezhov/ReTicket/internal/domain"
)

// payment_link:{order_id} -> JSON-encoded domain.PaymentLink
const keyPaymentLink = "payment_link:%s"

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

type LinkCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLinkCache(rdb *redis.Client, ttl time.Duration) *LinkCache {
	return &LinkCache{rdb: rdb, ttl: ttl}
}

func (c *LinkCache) Get(ctx context.Context, orderID string) (*domain.PaymentLink, error) {
	raw, err := c.rdb.Get(ctx, fmt.Sprintf(keyPaymentLink, orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment link: %w", err)
	}

	var link domain.PaymentLink
	if err = json.Unmarshal(raw, &link); err != nil {
		return nil, fmt.Errorf("decode payment link: %w", err)
	}
	return &link, nil
}

func (c *LinkCache) Set(ctx context.Context, orderID string, link *domain.PaymentLink) error {
	raw, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("encode payment link: %w", err)
	}
	if err = c.rdb.Set(ctx, fmt.Sprintf(keyPaymentLink, orderID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set payment link: %w", err)
	}
	return nil
}
