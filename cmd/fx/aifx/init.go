// README: Itinerary generator selected by TW_AI_PROVIDER.
package aifx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourweaver/internal/ai"
	"tourweaver/internal/config"
)

var Module = fx.Provide(ProvideGenerator)

// ProvideGenerator builds the generator and closes its client on shutdown.
func ProvideGenerator(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (ai.Generator, error) {
	gen, err := ai.NewGenerator(context.Background(), cfg.AI)
	if err != nil {
		return nil, err
	}
	log.Info("itinerary generator ready", zap.String("provider", cfg.AI.Provider))

	if c, ok := gen.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return c.Close() },
		})
	}
	return gen, nil
}
