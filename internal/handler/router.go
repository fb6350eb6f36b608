// Package handler wires HTTP routes to the page shell and the GitHub widget.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/naka-gawa/portfolio/internal/metrics"
	"github.com/naka-gawa/portfolio/internal/middleware"
	"github.com/naka-gawa/portfolio/internal/shell"
	"github.com/naka-gawa/portfolio/internal/widget"
)

// RouterDeps groups what NewRouter needs.
type RouterDeps struct {
	Shell         *shell.Shell
	Loader        widget.Loader
	WidgetEnabled bool

	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable it only behind a reverse proxy that sets those headers.
	TrustProxy  bool
	RateLimiter *middleware.RateLimiter
	Observer    middleware.RequestObserver
	Gatherer    prometheus.Gatherer
	Logger      *zap.Logger
}

// NewRouter builds the chi router.
//
// Middleware order: [RealIP] → Recovery → SecurityHeaders → Logging. Rate limiting
// applies only to routes that trigger work: the GitHub fragment and the contact stub.
// An over-limit fragment request still gets a widget section in its error state.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()
	if deps.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.NewRecoveryMiddleware(deps.Logger))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.Observer))

	page := NewPageHandler(deps.Shell, deps.Loader, deps.WidgetEnabled, deps.Logger)

	r.Get("/", page.Index)
	r.Get("/healthz", page.Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(shell.Static()))))
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	if deps.RateLimiter != nil {
		r.With(deps.RateLimiter.RejectWith(http.HandlerFunc(page.GitHubRateLimited))).Get("/fragments/github", page.GitHubFragment)
		r.With(deps.RateLimiter.Middleware()).Post("/contact", page.Contact)
	} else {
		r.Get("/fragments/github", page.GitHubFragment)
		r.Post("/contact", page.Contact)
	}

	return r
}
