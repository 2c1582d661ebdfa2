// README: HTTP server construction and lifecycle.
package httpfx

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourweaver/internal/config"
	"tourweaver/internal/enrich"
	httptransport "tourweaver/internal/http"
	"tourweaver/internal/http/middleware"
	"tourweaver/internal/service"
)

// shutdownTimeout bounds draining in-flight requests on stop.
const shutdownTimeout = 15 * time.Second

var Module = fx.Options(
	fx.Provide(ProvideHTTPServer),
	fx.Invoke(StartServer),
)

func ProvideHTTPServer(cfg config.Config, planner *service.TripPlanner, enricher *enrich.Service, log *zap.Logger) (*http.Server, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler, err := httptransport.NewServer(httptransport.ServerDeps{
		Planner:     planner,
		Enricher:    enricher,
		Logger:      log,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Limiter:     middleware.NewRateLimiter(cfg.Rate.PerMinute, cfg.Rate.Burst),
	}).Routes()
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func StartServer(lc fx.Lifecycle, server *http.Server, log *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		},
	})
}
