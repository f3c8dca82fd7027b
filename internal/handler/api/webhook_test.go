//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"colpa-mia/internal/domain/payment"
	"colpa-mia/internal/handler/api"
	"colpa-mia/internal/pkg/errs"
	"colpa-mia/internal/usecase/commands"
	commandsmock "colpa-mia/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubVerifier supplies a canned parse result, letting the tests exercise
// the handler's mapping without real signatures.
type stubVerifier struct {
	evt *payment.Event
	err error
}

func (s *stubVerifier) VerifyAndParse([]byte, string) (*payment.Event, error) {
	return s.evt, s.err
}

type WebhookHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	verifier     *stubVerifier
	router       *gin.Engine
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.verifier = &stubVerifier{}

	handler := api.NewWebhookHandler(s.verifier, s.mockCommands)
	s.router = gin.New()
	s.router.POST("/api/stripe/webhook", handler.HandleStripeEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *WebhookHandlerTestSuite) TestCreditedEventIsAcknowledged() {
	evt := &payment.Event{ID: "evt_1", Identity: "user@example.com"}
	s.verifier.evt = evt
	s.mockCommands.EXPECT().FulfillPayment(gomock.Any(), evt).
		Return(&commands.FulfillResult{Status: commands.StatusCredited, Minutes: 15}, nil)

	rec := s.post(`{}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok": true}`, rec.Body.String())
}

func (s *WebhookHandlerTestSuite) TestAlreadyProcessedEvent() {
	s.verifier.evt = &payment.Event{ID: "evt_1", Identity: "user@example.com"}
	s.mockCommands.EXPECT().FulfillPayment(gomock.Any(), gomock.Any()).
		Return(&commands.FulfillResult{Status: commands.StatusAlreadyProcessed}, nil)

	rec := s.post(`{}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok": true, "alreadyProcessed": true}`, rec.Body.String())
}

func (s *WebhookHandlerTestSuite) TestIgnoredForNoMinutes() {
	s.verifier.evt = &payment.Event{ID: "evt_1", Identity: "user@example.com"}
	s.mockCommands.EXPECT().FulfillPayment(gomock.Any(), gomock.Any()).
		Return(&commands.FulfillResult{Status: commands.StatusIgnored, IgnoreReason: commands.IgnoreReasonNoMinutes}, nil)

	rec := s.post(`{}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok": true, "ignored": "no_minutes"}`, rec.Body.String())
}

func (s *WebhookHandlerTestSuite) TestIrrelevantEventTypeIsAcknowledged() {
	s.verifier.evt = nil

	rec := s.post(`{}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok": true, "ignored": "event_type"}`, rec.Body.String())
}

func (s *WebhookHandlerTestSuite) TestVerificationErrors() {
	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "missing secret is an operator error", err: errs.ErrWebhookSecretMissing, expectCode: http.StatusInternalServerError},
		{name: "bad signature", err: errs.ErrInvalidSignature, expectCode: http.StatusBadRequest},
		{name: "malformed payload", err: errs.ErrMalformedPayload, expectCode: http.StatusBadRequest},
		{name: "missing identity", err: errs.ErrMissingIdentity, expectCode: http.StatusBadRequest},
		{name: "missing event id", err: errs.ErrMissingEventID, expectCode: http.StatusBadRequest},
		{name: "anything else", err: errors.New("unexpected"), expectCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.verifier.evt = nil
			s.verifier.err = tt.err
			rec := s.post(`{}`)
			s.Equal(tt.expectCode, rec.Code)
		})
	}
}

func (s *WebhookHandlerTestSuite) TestFulfillmentFailureIsRetryable() {
	s.verifier.evt = &payment.Event{ID: "evt_1", Identity: "user@example.com"}
	s.mockCommands.EXPECT().FulfillPayment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	rec := s.post(`{}`)

	// 5xx makes Stripe redeliver; the idempotency gate absorbs the retry.
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *WebhookHandlerTestSuite) TestMissingAPIKeyIsOperatorError() {
	s.verifier.evt = &payment.Event{ID: "evt_1", Identity: "user@example.com"}
	s.mockCommands.EXPECT().FulfillPayment(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrStripeKeyMissing)

	rec := s.post(`{}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "stripe api key not configured")
}
