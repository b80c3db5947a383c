// Package server assembles the HTTP surface: echo instance, middleware, and
// the versioned API routes.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/time/rate"

	"github.com/hrygo/smartdate/internal/profile"
	"github.com/hrygo/smartdate/server/internal/observability"
	apiv1 "github.com/hrygo/smartdate/server/router/api/v1"
)

// Server hosts the resolver API.
type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
	apiService *apiv1.APIV1Service
	stopSweep  context.CancelFunc
}

// New creates a server from the profile. It installs the process-wide slog
// handler for the profile's mode.
func New(p *profile.Profile) *Server {
	observability.SetupLogger(p.Mode)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestIDMiddleware())
	if p.RateLimitPerSecond > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(p.RateLimitPerSecond))))
	}

	api := apiv1.NewAPIV1Service(p)
	api.RegisterRoutes(e)

	return &Server{
		Profile:    p,
		echoServer: e,
		apiService: api,
	}
}

// Start begins serving and blocks until the listener fails. It also starts
// the periodic cache sweep, which runs until Shutdown.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopSweep = cancel
	go s.sweepCache(ctx, s.Profile.CacheTTL)

	addr := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("smartdate server started", "addr", addr, "mode", s.Profile.Mode)
	if err := s.echoServer.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// sweepCache periodically drops expired cache entries so the store does not
// sit at capacity with dead weight between lookups.
func (s *Server) sweepCache(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.apiService.CacheStore.CleanupExpired(); removed > 0 {
				slog.Debug("cache sweep", "removed", removed)
			}
		}
	}
}

// Shutdown stops the cache sweep and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.stopSweep != nil {
		s.stopSweep()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", "error", err)
		return err
	}
	slog.Info("smartdate server stopped")
	return nil
}

// requestIDMiddleware tags every request with a short ID for log correlation.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = shortuuid.New()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.Set("request_id", id)

			start := time.Now()
			err := next(c)
			slog.Info("http request",
				observability.LogFieldRequestID, id,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				observability.LogFieldDuration, time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
