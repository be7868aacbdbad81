package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetDashboardMetricsHandler godoc
// @Summary Stock dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics(r.Context())
	if err != nil {
		logger.Error("failed to fetch metrics", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}
	respond(w, http.StatusOK, m)
}
