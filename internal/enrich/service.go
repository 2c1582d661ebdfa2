// README: Best-effort enrichment; lookups degrade to placeholders and are only logged.
package enrich

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tourweaver/internal/itinerary"
	"tourweaver/internal/maps"
	"tourweaver/internal/photos"
)

// PhotoResult is the outcome of one image lookup. Found is false when URL is the placeholder.
type PhotoResult struct {
	URL   string `json:"url"`
	Found bool   `json:"found"`
}

type Config struct {
	FallbackURL string
	// Concurrency bounds parallel photo lookups within one request.
	Concurrency int
}

// Service wraps the photo and hotel collaborators. None of its methods fail.
type Service struct {
	photos photos.Finder
	hotels maps.HotelSearcher
	cfg    Config
	log    *zap.Logger
}

func NewService(finder photos.Finder, hotels maps.HotelSearcher, cfg Config, log *zap.Logger) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{photos: finder, hotels: hotels, cfg: cfg, log: log.Named("enrich")}
}

// Photo looks up a single image for query.
func (s *Service) Photo(ctx context.Context, query string) PhotoResult {
	url, err := s.photos.FindPhoto(ctx, query)
	if err != nil || url == "" {
		if err != nil && !errors.Is(err, photos.ErrPhotoNotFound) {
			s.log.Warn("photo lookup failed", zap.String("query", query), zap.Error(err))
		}
		return PhotoResult{URL: s.cfg.FallbackURL}
	}
	return PhotoResult{URL: url, Found: true}
}

// DestinationImages fills ImageURL for destinations that lack one. The returned
// slice is a copy in input order.
func (s *Service) DestinationImages(ctx context.Context, dests []itinerary.Destination) []itinerary.Destination {
	out := make([]itinerary.Destination, len(dests))
	copy(out, dests)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i := range out {
		if out[i].ImageURL != "" {
			out[i].ImageFound = true
			continue
		}
		query := strings.TrimSpace(out[i].ImageHint)
		if query == "" {
			query = out[i].Name
		}
		g.Go(func() error {
			res := s.Photo(gctx, query)
			out[i].ImageURL = res.URL
			out[i].ImageFound = res.Found
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Hotels runs a places search; any failure yields an empty list.
func (s *Service) Hotels(ctx context.Context, q maps.HotelQuery) []itinerary.Hotel {
	hotels, err := s.hotels.SearchHotels(ctx, q)
	if err != nil {
		s.log.Warn("hotel search failed", zap.String("location", q.Location), zap.Error(err))
		return []itinerary.Hotel{}
	}
	if hotels == nil {
		return []itinerary.Hotel{}
	}
	return hotels
}
