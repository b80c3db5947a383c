package v1

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/smartdate/locale"
	"github.com/hrygo/smartdate/resolver"
	"github.com/hrygo/smartdate/server/internal/observability"
)

// ResolveRequest is the JSON body of a resolve call. Omitted feature flags
// default to enabled, matching the library defaults.
type ResolveRequest struct {
	Input                 string `json:"input"`
	Format                string `json:"format,omitempty"`
	Locale                string `json:"locale,omitempty"`
	EnableNaturalLanguage *bool  `json:"enable_natural_language,omitempty"`
	EnableRelativeDate    *bool  `json:"enable_relative_date,omitempty"`
	EnableSmartCorrection *bool  `json:"enable_smart_correction,omitempty"`
	Strict                bool   `json:"strict,omitempty"`
}

// ResolveResponse mirrors resolver.Outcome with a wire-friendly date.
type ResolveResponse struct {
	Resolved  bool   `json:"resolved"`
	Date      string `json:"date,omitempty"` // yyyy-MM-dd
	Formatted string `json:"formatted,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ResolveDate resolves raw human input to a calendar date.
// POST /api/v1/resolve
func (s *APIV1Service) ResolveDate(c echo.Context) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := s.resolveSemaphore.Acquire(c.Request().Context(), 1); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "server busy"})
	}
	defer s.resolveSemaphore.Release(1)

	opts := s.optionsFor(req)
	start := time.Now()
	out := s.Resolver.Resolve(req.Input, opts)
	s.Metrics.RecordResolve(string(out.Strategy), out.Resolved, time.Since(start))

	resp := ResolveResponse{
		Resolved:  out.Resolved,
		Formatted: out.Formatted,
		Strategy:  string(out.Strategy),
		Reason:    out.Reason,
	}
	if out.Resolved {
		resp.Date = out.Date.Format("2006-01-02")
		slog.Debug("resolve succeeded",
			observability.LogFieldRequestID, c.Get("request_id"),
			observability.LogFieldStrategy, string(out.Strategy),
			observability.LogFieldLocale, string(opts.Locale))
	} else {
		slog.Debug("resolve declined",
			observability.LogFieldRequestID, c.Get("request_id"),
			observability.LogFieldLocale, string(opts.Locale),
			observability.LogFieldInputLen, len(req.Input))
	}
	return c.JSON(http.StatusOK, resp)
}

// PredictDate produces a live preview for partial input.
// GET /api/v1/predict?input=...&format=...
func (s *APIV1Service) PredictDate(c echo.Context) error {
	input := c.QueryParam("input")
	format := c.QueryParam("format")
	if format == "" {
		format = s.Profile.DefaultFormat
	}

	result, ok := s.Prediction.Predict(input, format)
	if !ok {
		return c.JSON(http.StatusOK, map[string]bool{"predicted": false})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"predicted":  true,
		"prediction": result,
	})
}

// CorrectDate clamps a typed-but-unparsed triple to the nearest valid date.
// GET /api/v1/correct?year=2025&month=4&day=31
func (s *APIV1Service) CorrectDate(c echo.Context) error {
	year, err1 := strconv.Atoi(c.QueryParam("year"))
	month, err2 := strconv.Atoi(c.QueryParam("month"))
	day, err3 := strconv.Atoi(c.QueryParam("day"))
	if err1 != nil || err2 != nil || err3 != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "year, month and day must be integers"})
	}
	return c.JSON(http.StatusOK, resolver.Correct(year, month, day))
}

// ListLocales returns the registered locale keys.
// GET /api/v1/locales
func (s *APIV1Service) ListLocales(c echo.Context) error {
	keys := locale.Keys()
	locales := make([]string, 0, len(keys))
	for _, k := range keys {
		locales = append(locales, string(k))
	}
	return c.JSON(http.StatusOK, map[string][]string{"locales": locales})
}

func (s *APIV1Service) optionsFor(req ResolveRequest) resolver.Options {
	opts := resolver.DefaultOptions()
	opts.Format = s.Profile.DefaultFormat
	opts.Locale = locale.Key(s.Profile.DefaultLocale)

	if req.Format != "" {
		opts.Format = req.Format
	}
	if req.Locale != "" {
		opts.Locale = locale.Key(req.Locale)
	}
	if req.EnableNaturalLanguage != nil {
		opts.EnableNaturalLanguage = *req.EnableNaturalLanguage
	}
	if req.EnableRelativeDate != nil {
		opts.EnableRelativeDate = *req.EnableRelativeDate
	}
	if req.EnableSmartCorrection != nil {
		opts.EnableSmartCorrection = *req.EnableSmartCorrection
	}
	opts.Strict = req.Strict
	return opts
}
