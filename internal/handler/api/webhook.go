package api

import (
	"errors"
	"net/http"

	"colpa-mia/internal/domain/payment"
	resdto "colpa-mia/internal/handler/dto/response"
	"colpa-mia/internal/pkg/errs"
	"colpa-mia/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const ignoredEventType = "event_type"

type EventVerifier interface {
	VerifyAndParse(body []byte, sigHeader string) (*payment.Event, error)
}

type WebhookHandler struct {
	verifier        EventVerifier
	paymentCommands commands.PaymentCommands
}

func NewWebhookHandler(verifier EventVerifier, paymentCommands commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{
		verifier:        verifier,
		paymentCommands: paymentCommands,
	}
}

// HandleStripeEvent acknowledges or rejects the event itself; everything
// the customer sees (credited balance, delivered message) happens
// asynchronously from the provider's point of view.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	evt, err := h.verifier.VerifyAndParse(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrWebhookSecretMissing):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook secret not configured"})
		case errors.Is(err, errs.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		case errors.Is(err, errs.ErrMalformedPayload):
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		case errors.Is(err, errs.ErrMissingIdentity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing customer identity"})
		case errors.Is(err, errs.ErrMissingEventID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing event id"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event"})
		}
		return
	}
	if evt == nil {
		// Not a payment-completion event: acknowledged, no side effects.
		c.JSON(http.StatusOK, resdto.Ignored(ignoredEventType))
		return
	}

	result, err := h.paymentCommands.FulfillPayment(c.Request.Context(), evt)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStripeKeyMissing):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stripe api key not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		}
		return
	}

	switch result.Status {
	case commands.StatusAlreadyProcessed:
		c.JSON(http.StatusOK, resdto.AlreadyProcessed())
	case commands.StatusIgnored:
		c.JSON(http.StatusOK, resdto.Ignored(result.IgnoreReason))
	default:
		c.JSON(http.StatusOK, resdto.Acknowledged())
	}
}
