package api

import (
	"errors"
	"net/http"

	reqdto "colpa-mia/internal/handler/dto/request"
	resdto "colpa-mia/internal/handler/dto/response"
	"colpa-mia/internal/handler/httperr"
	"colpa-mia/internal/pkg/errs"
	"colpa-mia/internal/usecase/commands"
	"colpa-mia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerCommands commands.LedgerCommands
	ledgerQueries  queries.LedgerQueries
}

func NewLedgerHandler(ledgerCommands commands.LedgerCommands, ledgerQueries queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerCommands: ledgerCommands,
		ledgerQueries:  ledgerQueries,
	}
}

func (h *LedgerHandler) GetBalance(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing email parameter"), "Email query parameter required", nil)
		return
	}

	view, err := h.ledgerQueries.GetBalance(c.Request.Context(), email)
	if err != nil {
		h.renderLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

func (h *LedgerHandler) GetLedger(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing email parameter"), "Email query parameter required", nil)
		return
	}

	view, err := h.ledgerQueries.GetLedger(c.Request.Context(), email)
	if err != nil {
		h.renderLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerView(view))
}

func (h *LedgerHandler) ConsumeMinutes(c *gin.Context) {
	var req reqdto.ConsumeMinutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.ledgerCommands.ConsumeMinutes(c.Request.Context(), req.Email, req.Minutes)
	if err != nil {
		h.renderLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

func (h *LedgerHandler) renderLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrMissingIdentity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
	case errors.Is(err, errs.ErrInsufficientMinutes):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient minutes", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
