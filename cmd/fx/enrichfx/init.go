// README: Photo finder, hotel searcher and the enrichment seam over both.
package enrichfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourweaver/internal/config"
	"tourweaver/internal/enrich"
	"tourweaver/internal/maps"
	"tourweaver/internal/photos"
)

var Module = fx.Provide(
	ProvidePhotoFinder,
	ProvideHotelSearcher,
	ProvideEnrichService,
)

func ProvidePhotoFinder(cfg config.Config, log *zap.Logger) photos.Finder {
	if cfg.Photos.UnsplashKey == "" {
		log.Warn("UNSPLASH_ACCESS_KEY not set; destination images use the placeholder")
	}
	return photos.NewFinder(cfg.Photos.UnsplashKey, cfg.Photos.FallbackURL)
}

func ProvideHotelSearcher(cfg config.Config, log *zap.Logger) (maps.HotelSearcher, error) {
	if cfg.Places.APIKey == "" {
		log.Warn("GOOGLE_PLACES_API_KEY not set; hotel lookups return no results")
	}
	return maps.NewHotelSearcher(cfg.Places.APIKey, cfg.Places.MaxHotels)
}

func ProvideEnrichService(finder photos.Finder, hotels maps.HotelSearcher, cfg config.Config, log *zap.Logger) *enrich.Service {
	return enrich.NewService(finder, hotels, enrich.Config{
		FallbackURL: cfg.Photos.FallbackURL,
		Concurrency: cfg.Photos.Concurrency,
	}, log)
}
