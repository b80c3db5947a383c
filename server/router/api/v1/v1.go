// Package v1 exposes the resolver over a JSON HTTP API.
package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/semaphore"

	"github.com/hrygo/smartdate/cache"
	"github.com/hrygo/smartdate/internal/profile"
	"github.com/hrygo/smartdate/prediction"
	"github.com/hrygo/smartdate/resolver"
	"github.com/hrygo/smartdate/server/internal/observability"
)

// APIV1Service wires the resolver, cache, and prediction engine behind the
// versioned routes.
type APIV1Service struct {
	Profile    *profile.Profile
	Resolver   *resolver.CachedResolver
	Prediction *prediction.Engine
	Metrics    *observability.Metrics
	CacheStore *cache.Store

	// resolveSemaphore bounds concurrent resolves; parsing is cheap but the
	// server should degrade predictably under request floods.
	resolveSemaphore *semaphore.Weighted
}

// NewAPIV1Service creates the service with a caller-owned result cache sized
// from the profile.
func NewAPIV1Service(p *profile.Profile) *APIV1Service {
	core := resolver.New()
	store := cache.New(p.CacheCapacity, p.CacheTTL)
	return &APIV1Service{
		Profile:          p,
		Resolver:         resolver.NewCached(core, store),
		Prediction:       prediction.NewEngine(core),
		Metrics:          observability.NewMetrics(store.Size),
		CacheStore:       store,
		resolveSemaphore: semaphore.NewWeighted(p.MaxConcurrentResolves),
	}
}

// RegisterRoutes attaches the v1 routes to the echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/resolve", s.ResolveDate)
	g.GET("/predict", s.PredictDate)
	g.GET("/correct", s.CorrectDate)
	g.GET("/locales", s.ListLocales)
	g.GET("/healthz", s.Health)
	g.GET("/system/metrics/overview", s.GetMetricsOverview)
}

// Health reports liveness.
// GET /api/v1/healthz
func (s *APIV1Service) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.Profile.Version,
		"time":    time.Now().Format(time.RFC3339),
	})
}
