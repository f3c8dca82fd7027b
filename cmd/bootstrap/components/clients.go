package components

import (
	"log/slog"

	"colpa-mia/internal/infra/excusegen"
	"colpa-mia/internal/infra/kv"
	"colpa-mia/internal/infra/ledger"
	"colpa-mia/internal/infra/marker"
	"colpa-mia/internal/infra/notify"
	"colpa-mia/internal/infra/stripegw"
	"colpa-mia/internal/pkg/clock"
	"colpa-mia/internal/pkg/config"

	"go.uber.org/fx"
)

// ClientModule wires the external-service boundaries and the KV-backed
// stores.
var ClientModule = fx.Module("clients",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) *stripegw.Verifier {
			return stripegw.NewVerifier(cfg.Stripe.WebhookSecret)
		},
		func(cfg config.Config, logger *slog.Logger) *stripegw.Gateway {
			return stripegw.NewGateway(cfg.Stripe, logger)
		},
		func(cfg config.Config, logger *slog.Logger) *excusegen.Generator {
			return excusegen.NewGenerator(cfg.OpenAI, logger)
		},
		func(cfg config.Config, logger *slog.Logger) *notify.Dispatcher {
			return notify.NewDispatcher(
				notify.NewTwilioWhatsApp(cfg.Twilio),
				notify.NewSMTPMailer(cfg.SMTP),
				logger,
			)
		},
		func(store kv.Store, clk clock.Clock, logger *slog.Logger) *ledger.Store {
			return ledger.NewStore(store, clk, logger)
		},
		func(store kv.Store) *marker.Store {
			return marker.NewStore(store)
		},
	),
)
