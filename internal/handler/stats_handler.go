package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/service"
)

// StatsHandler serves dashboard figures.
type StatsHandler struct {
	svc service.StatsService
}

// NewStatsHandler creates a handler layer.
func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats godoc
// @Summary Dashboard stats
// @Tags stats
// @Produce json
// @Success 200 {object} DataResponse{data=service.Stats}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return failWith(c, err, "", "")
	}
	return respond(c, http.StatusOK, stats)
}
