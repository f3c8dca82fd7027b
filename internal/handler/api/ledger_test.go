//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"colpa-mia/internal/handler/api"
	"colpa-mia/internal/pkg/errs"
	"colpa-mia/internal/usecase/queries"
	commandsmock "colpa-mia/tests/mock/commands"
	queriesmock "colpa-mia/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLedgerCommands
	mockQueries  *queriesmock.MockLedgerQueries
	router       *gin.Engine
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLedgerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLedgerQueries(s.mockCtrl)

	handler := api.NewLedgerHandler(s.mockCommands, s.mockQueries)
	s.router = gin.New()
	s.router.GET("/api/balance", handler.GetBalance)
	s.router.GET("/api/ledger", handler.GetLedger)
	s.router.POST("/api/consume", handler.ConsumeMinutes)
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

var viewTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func (s *LedgerHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *LedgerHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *LedgerHandlerTestSuite) TestGetBalance() {
	s.Run("returns the balance", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), "user@example.com").
			Return(&queries.BalanceView{Identity: "user@example.com", Balance: 15, LastUpdated: viewTime}, nil)

		rec := s.get("/api/balance?email=user@example.com")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"identity": "user@example.com", "balance": 15, "last_updated": "2025-06-01T12:00:00Z"}`, rec.Body.String())
	})

	s.Run("missing email", func() {
		rec := s.get("/api/balance")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid email", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), "   ").
			Return(nil, errs.ErrMissingIdentity)

		rec := s.get("/api/balance?email=%20%20%20")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("store failure", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), "user@example.com").
			Return(nil, errors.New("kv down"))

		rec := s.get("/api/balance?email=user@example.com")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *LedgerHandlerTestSuite) TestGetLedger() {
	s.Run("returns the history", func() {
		s.mockQueries.EXPECT().GetLedger(gomock.Any(), "user@example.com").
			Return(&queries.LedgerView{
				Identity: "user@example.com",
				Balance:  10,
				History: []queries.HistoryEntryView{
					{EventID: "evt_1", AmountDelta: 15, Timestamp: viewTime, SourceSKU: "price_excuse_m"},
					{EventID: "consume", AmountDelta: -5, Timestamp: viewTime},
				},
				LastUpdated: viewTime,
			}, nil)

		rec := s.get("/api/ledger?email=user@example.com")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"event_id":"evt_1"`)
		s.Contains(rec.Body.String(), `"amount_delta":-5`)
		s.Contains(rec.Body.String(), `"source_sku":"price_excuse_m"`)
	})

	s.Run("missing email", func() {
		rec := s.get("/api/ledger")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *LedgerHandlerTestSuite) TestConsumeMinutes() {
	s.Run("consumes and returns the new balance", func() {
		s.mockCommands.EXPECT().ConsumeMinutes(gomock.Any(), "user@example.com", 3).
			Return(&queries.BalanceView{Identity: "user@example.com", Balance: 12, LastUpdated: viewTime}, nil)

		rec := s.postJSON("/api/consume", `{"email": "user@example.com", "minutes": 3}`)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"balance":12`)
	})

	s.Run("insufficient balance", func() {
		s.mockCommands.EXPECT().ConsumeMinutes(gomock.Any(), "user@example.com", 99).
			Return(nil, errs.ErrInsufficientMinutes)

		rec := s.postJSON("/api/consume", `{"email": "user@example.com", "minutes": 99}`)

		s.Equal(http.StatusPaymentRequired, rec.Code)
		s.Contains(rec.Body.String(), "Insufficient minutes")
	})

	s.Run("malformed body", func() {
		rec := s.postJSON("/api/consume", `{"email": `)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing email fails binding", func() {
		rec := s.postJSON("/api/consume", `{"minutes": 3}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("non-email identity fails binding", func() {
		rec := s.postJSON("/api/consume", `{"email": "not-an-email"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
