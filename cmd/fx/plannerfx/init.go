package plannerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourweaver/internal/ai"
	"tourweaver/internal/config"
	"tourweaver/internal/enrich"
	"tourweaver/internal/service"
)

var Module = fx.Provide(ProvideTripPlanner)

func ProvideTripPlanner(gen ai.Generator, enricher *enrich.Service, cfg config.Config, log *zap.Logger) *service.TripPlanner {
	return service.NewTripPlanner(gen, enricher, service.Options{
		Timeout:      cfg.AI.Timeout,
		EnrichHotels: cfg.Places.Enrich,
	}, log)
}
