package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Webhook boundary errors
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrMissingIdentity  = errors.New("payment event missing customer identity")
	ErrMissingEventID   = errors.New("payment event missing id")

	// Configuration errors
	ErrWebhookSecretMissing = errors.New("webhook secret not configured")
	ErrStripeKeyMissing     = errors.New("stripe api key not configured")

	// Ledger errors
	ErrInsufficientMinutes = errors.New("insufficient minutes")
	ErrLedgerUnavailable   = errors.New("ledger store unavailable")

	// Idempotency errors
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
)
