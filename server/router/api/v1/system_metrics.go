package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetMetricsOverview returns the in-process resolve counters.
// GET /api/v1/system/metrics/overview
func (s *APIV1Service) GetMetricsOverview(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Metrics.Snapshot())
}
