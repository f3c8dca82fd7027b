package components

import (
	"colpa-mia/internal/handler"
	"colpa-mia/internal/handler/api"
	"colpa-mia/internal/handler/middleware"
	"colpa-mia/internal/infra/stripegw"
	"colpa-mia/internal/usecase/commands"
	"colpa-mia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(verifier *stripegw.Verifier, paymentCommands commands.PaymentCommands) *api.WebhookHandler {
			return api.NewWebhookHandler(verifier, paymentCommands)
		},
		func(ledgerCommands commands.LedgerCommands, ledgerQueries queries.LedgerQueries) *api.LedgerHandler {
			return api.NewLedgerHandler(ledgerCommands, ledgerQueries)
		},
	),
	fx.Invoke(
		func(engine *gin.Engine, logger *middleware.Logger, webhookHandler *api.WebhookHandler, ledgerHandler *api.LedgerHandler) {
			handler.NewRouter(engine, logger, webhookHandler, ledgerHandler)
		},
	),
)
