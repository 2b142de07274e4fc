// Package api exposes the knowledge graph over HTTP as a JSON API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayuwidi/gaung/internal/api/middleware"
	"github.com/ayuwidi/gaung/internal/entity"
	"github.com/ayuwidi/gaung/internal/geo"
	"github.com/ayuwidi/gaung/internal/health"
	"github.com/ayuwidi/gaung/internal/sparql"
)

// RouterDeps bundles all dependencies needed by the HTTP router.
type RouterDeps struct {
	EntityService *entity.Service
	HealthService *health.Service
	GeoService    *geo.Service
	QueryService  *sparql.QueryService
	Registry      *prometheus.Registry
	Logger        *slog.Logger
	BasePath      string
}

// Router sets up all HTTP routes for the application.
type Router struct {
	entities *entity.Service
	health   *health.Service
	geo      *geo.Service
	queries  *sparql.QueryService
	registry *prometheus.Registry
	logger   *slog.Logger
	basePath string
}

// NewRouter creates a new Router with all routes configured.
func NewRouter(deps RouterDeps) *Router {
	return &Router{
		entities: deps.EntityService,
		health:   deps.HealthService,
		geo:      deps.GeoService,
		queries:  deps.QueryService,
		registry: deps.Registry,
		logger:   deps.Logger,
		basePath: deps.BasePath,
	}
}

// Handler returns the fully configured HTTP handler with middleware applied.
func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	bp := r.basePath

	mux.HandleFunc("GET "+bp+"/api/health", r.handleHealthCheck)

	mux.HandleFunc("GET "+bp+"/api/search", r.handleSearch)
	mux.HandleFunc("GET "+bp+"/api/search/suggestions", r.handleSuggestions)

	mux.HandleFunc("GET "+bp+"/api/entities/{id}", r.handleEntityDetail)
	mux.HandleFunc("GET "+bp+"/api/entities/{id}/years", r.handleEntityYears)
	mux.HandleFunc("GET "+bp+"/api/entity/related", r.handleRelated)
	// Wildcard: entity IDs are URIs and contain slashes.
	mux.HandleFunc("GET "+bp+"/api/entity/{id...}", r.handleEntityInfo)

	mux.HandleFunc("GET "+bp+"/api/map/countries", r.handleMapCountries)
	mux.HandleFunc("GET "+bp+"/api/map/countries/{iso3Code}", r.handleMapCountry)

	// Raw query endpoints are rate limited per IP.
	queryLimit := middleware.NewQueryRateLimiter(time.Second, 10)
	mux.Handle("POST "+bp+"/api/sparql/query", queryLimit.Middleware(http.HandlerFunc(r.handleQuery)))
	mux.Handle("POST "+bp+"/api/sparql/validate", queryLimit.Middleware(http.HandlerFunc(r.handleValidate)))
	mux.HandleFunc("GET "+bp+"/api/sparql/samples", r.handleSamples)

	if r.registry != nil {
		mux.Handle("GET "+bp+"/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	}

	var handler http.Handler = mux
	handler = middleware.Logging(r.logger)(handler)
	handler = middleware.RequestID(handler)
	return handler
}
