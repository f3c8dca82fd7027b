package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"colpa-mia/internal/pkg/config"
)

// TwilioWhatsApp sends WhatsApp messages through the Twilio REST API.
// BaseURL is overridable so tests can point it at an httptest server.
type TwilioWhatsApp struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewTwilioWhatsApp(cfg config.TwilioConfig) *TwilioWhatsApp {
	return &TwilioWhatsApp{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.FromNumber,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		client:     &http.Client{},
	}
}

func (t *TwilioWhatsApp) Send(ctx context.Context, to, body string) error {
	if t.accountSID == "" || t.authToken == "" || t.from == "" {
		return fmt.Errorf("twilio_not_configured")
	}

	form := url.Values{}
	form.Set("To", "whatsapp:"+to)
	form.Set("From", "whatsapp:"+t.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("request_failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Surface Twilio's machine-readable reason when it sends one.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	var te twilioError
	if json.Unmarshal(raw, &te) == nil && te.Message != "" {
		return fmt.Errorf("twilio_%d: %s", te.Code, te.Message)
	}
	return fmt.Errorf("status_%d", resp.StatusCode)
}
