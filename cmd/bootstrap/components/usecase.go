package components

import (
	"log/slog"

	"colpa-mia/internal/domain/entitlement"
	"colpa-mia/internal/infra/excusegen"
	"colpa-mia/internal/infra/ledger"
	"colpa-mia/internal/infra/marker"
	"colpa-mia/internal/infra/notify"
	"colpa-mia/internal/infra/stripegw"
	"colpa-mia/internal/pkg/config"
	"colpa-mia/internal/usecase/commands"
	"colpa-mia/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(cfg config.Config) (entitlement.Table, error) {
			return entitlement.ParseTable(cfg.Rules.PriceRules)
		},
		func(
			markers *marker.Store,
			ledgerStore *ledger.Store,
			gateway *stripegw.Gateway,
			generator *excusegen.Generator,
			dispatcher *notify.Dispatcher,
			rules entitlement.Table,
			logger *slog.Logger,
		) commands.PaymentCommands {
			return commands.NewFulfillmentUseCase(markers, ledgerStore, gateway, generator, dispatcher, rules, logger)
		},
		func(ledgerStore *ledger.Store, logger *slog.Logger) commands.LedgerCommands {
			return commands.NewLedgerUseCase(ledgerStore, logger)
		},
		func(ledgerStore *ledger.Store) queries.LedgerQueries {
			return queries.NewLedgerQueries(ledgerStore)
		},
	),
)
