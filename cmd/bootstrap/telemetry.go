package bootstrap

import (
	"context"
	"log/slog"

	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetry,
	),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config) (*telemetry.Provider, error) {
	if !cfg.Telemetry.Enabled {
		return telemetry.NewNoop(), nil
	}
	provider, err := telemetry.New(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("flushing telemetry")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
