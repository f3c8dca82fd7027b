package response

// WebhookResponse is the acknowledgment returned to the payment provider.
// The end customer's experience is entirely asynchronous; nothing about
// delivery outcomes leaks through this surface beyond the ack itself.
type WebhookResponse struct {
	OK               bool   `json:"ok"`
	Ignored          string `json:"ignored,omitempty"`
	AlreadyProcessed bool   `json:"alreadyProcessed,omitempty"`
}

func Acknowledged() WebhookResponse {
	return WebhookResponse{OK: true}
}

func Ignored(reason string) WebhookResponse {
	return WebhookResponse{OK: true, Ignored: reason}
}

func AlreadyProcessed() WebhookResponse {
	return WebhookResponse{OK: true, AlreadyProcessed: true}
}
