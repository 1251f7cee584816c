package yookassa

import "github.com/avezhov/ReTicket/internal/domain"

// Cancellation reasons YooKassa reports when the buyer never completed the
// payment before its deadline.
var expiryReasons = map[string]bool{
	"expired_on_confirmation": true,
	"expired_on_capture":      true,
}

var statusMap = map[string]domain.PaymentStatus{
	"pending":             domain.PaymentStatusPending,
	"waiting_for_capture": domain.PaymentStatusProcessing,
	"succeeded":           domain.PaymentStatusPaid,
	"canceled":            domain.PaymentStatusFailed,
}

// normalizeStatus maps a YooKassa payment onto the provider-agnostic status
// set. The mapping is total: statuses this adapter does not know yet come
// back as pending so a later pass can pick them up.
func normalizeStatus(p *paymentPayload) domain.PaymentStatus {
	st, ok := statusMap[p.Status]
	if !ok {
		return domain.PaymentStatusPending
	}

	switch st {
	case domain.PaymentStatusPaid:
		return refineSucceeded(p)
	case domain.PaymentStatusFailed:
		return refineCanceled(p)
	default:
		return st
	}
}

func refineSucceeded(p *paymentPayload) domain.PaymentStatus {
	if p.RefundedAmount == nil || p.RefundedAmount.Value == "" {
		return domain.PaymentStatusPaid
	}
	switch {
	case p.RefundedAmount.Value == "0.00":
		return domain.PaymentStatusPaid
	case p.RefundedAmount.Value == p.Amount.Value:
		return domain.PaymentStatusRefunded
	default:
		return domain.PaymentStatusPartiallyRefunded
	}
}

func refineCanceled(p *paymentPayload) domain.PaymentStatus {
	if p.CancellationDetails == nil {
		return domain.PaymentStatusFailed
	}
	switch {
	case expiryReasons[p.CancellationDetails.Reason]:
		return domain.PaymentStatusExpired
	case p.CancellationDetails.Reason == "canceled_by_merchant":
		return domain.PaymentStatusCancelled
	default:
		return domain.PaymentStatusFailed
	}
}
