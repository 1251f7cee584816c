package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrWaveNotFound    = errors.New("ticket wave not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrUnknownProvider = errors.New("unknown payment provider")
)

var (
	ErrEventFinished       = errors.New("event has already finished")
	ErrMixedCurrencies     = errors.New("selections span multiple currencies")
	ErrSelfPurchase        = errors.New("buyer cannot purchase own listing")
	ErrTooManyTickets      = errors.New("ticket count exceeds per-order limit")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInsufficientTickets = errors.New("not enough tickets available")
)

// ErrTicketsUnavailable is the conflict signal: the claim lost to another
// buyer between availability lookup and reservation insert. Expected under
// concurrency, surfaced as "no longer available", never retried silently.
var ErrTicketsUnavailable = errors.New("tickets no longer available")

var (
	ErrOrderNotPending       = errors.New("order is not pending")
	ErrOrderExpired          = errors.New("order reservation window has expired")
	ErrOrderAlreadyConfirmed = errors.New("order is already confirmed")
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")
	ErrOrderAlreadyExpired   = errors.New("order is already expired")
)

// ErrPaymentAmountMismatch aborts reconciliation without mutating state:
// the provider reported an amount that differs from the order total.
var ErrPaymentAmountMismatch = errors.New("payment amount does not match order total")

// ErrProviderUnavailable marks transient transport failures talking to a
// payment provider. Never interpreted as a payment status; the scheduler
// retries on its next pass.
var ErrProviderUnavailable = errors.New("payment provider unavailable")
