package bootstrap

import (
	"context"
	"log/slog"

	"movie-booking/internal/infra/events"
	"movie-booking/internal/pkg/config"
	"movie-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, booking events are dropped")
		return events.NopPublisher{}
	}

	p := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
