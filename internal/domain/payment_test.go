package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_Terminal(t *testing.T) {
	terminal := []PaymentStatus{
		PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled,
		PaymentStatusExpired, PaymentStatusRefunded, PaymentStatusPartiallyRefunded,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "%s", s)
	}

	assert.False(t, PaymentStatusPending.Terminal())
	assert.False(t, PaymentStatusProcessing.Terminal())
}

func TestPaymentStatus_FailedTerminal(t *testing.T) {
	assert.True(t, PaymentStatusFailed.FailedTerminal())
	assert.True(t, PaymentStatusCancelled.FailedTerminal())
	assert.True(t, PaymentStatusExpired.FailedTerminal())

	// Paid and refunds collected money at some point.
	assert.False(t, PaymentStatusPaid.FailedTerminal())
	assert.False(t, PaymentStatusRefunded.FailedTerminal())
	assert.False(t, PaymentStatusPending.FailedTerminal())
}

func TestPayment_ApplyObservation_Paid(t *testing.T) {
	now := time.Now().UTC()
	p := &Payment{Status: PaymentStatusProcessing}

	p.ApplyObservation(&ProviderPayment{
		Status:     PaymentStatusPaid,
		PayerEmail: "buyer@example.com",
		Raw:        []byte(`{"id":"pmt-1"}`),
	}, now)

	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.Equal(t, "buyer@example.com", p.PayerEmail)
	require.NotNil(t, p.ApprovedAt)
	assert.Equal(t, now, *p.ApprovedAt)
	assert.JSONEq(t, `{"id":"pmt-1"}`, string(p.ProviderMetadata))
}

func TestPayment_ApplyObservation_PrefersProviderTimestamp(t *testing.T) {
	now := time.Now().UTC()
	approved := now.Add(-time.Minute)
	p := &Payment{Status: PaymentStatusProcessing}

	p.ApplyObservation(&ProviderPayment{
		Status:     PaymentStatusPaid,
		ApprovedAt: &approved,
	}, now)

	require.NotNil(t, p.ApprovedAt)
	assert.Equal(t, approved, *p.ApprovedAt)
}

func TestPayment_ApplyObservation_TerminalTimestampSetOnce(t *testing.T) {
	first := time.Now().UTC()
	p := &Payment{Status: PaymentStatusPending}

	p.ApplyObservation(&ProviderPayment{Status: PaymentStatusFailed}, first)
	require.NotNil(t, p.FailedAt)

	// Replayed observation must not move the timestamp.
	p.ApplyObservation(&ProviderPayment{Status: PaymentStatusFailed}, first.Add(time.Hour))
	assert.Equal(t, first, *p.FailedAt)
	assert.Equal(t, first.Add(time.Hour), p.UpdatedAt)
}

func TestPayment_ApplyObservation_KeepsEmailOnEmptyObservation(t *testing.T) {
	now := time.Now().UTC()
	p := &Payment{Status: PaymentStatusProcessing, PayerEmail: "buyer@example.com"}

	p.ApplyObservation(&ProviderPayment{Status: PaymentStatusProcessing}, now)

	assert.Equal(t, "buyer@example.com", p.PayerEmail)
}
