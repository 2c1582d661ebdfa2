// README: API gateway; builds the gin engine and delegates to the planner and enrichment services.
package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourweaver/internal/http/handlers"
	"tourweaver/internal/http/middleware"
	"tourweaver/internal/http/web"
)

type ServerDeps struct {
	Planner     handlers.Planner
	Enricher    handlers.Enricher
	Logger      *zap.Logger
	CORSOrigins []string
	// Limiter guards the generation routes. Nil disables admission control.
	Limiter *middleware.RateLimiter
}

type Server struct {
	planner     handlers.Planner
	enricher    handlers.Enricher
	log         *zap.Logger
	corsOrigins []string
	limiter     *middleware.RateLimiter
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		planner:     deps.Planner,
		enricher:    deps.Enricher,
		log:         log,
		corsOrigins: deps.CORSOrigins,
		limiter:     deps.Limiter,
	}
}

// Routes returns the fully wired handler.
func (s *Server) Routes() (http.Handler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.TraceID(),
		middleware.Logging(s.log.Named("http")),
		middleware.Recovery(s.log),
		middleware.CORS(s.corsOrigins),
	)
	registerRoutes(r, s)
	return r, nil
}
