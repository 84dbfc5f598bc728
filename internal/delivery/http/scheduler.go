package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunScheduler
// @Summary RunScheduler
// @Description Triggers one auto-order scheduler pass and returns its report. Safe to invoke while a timed run is in flight.
// @ID run-scheduler
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} scheduler.RunReport
// @Failure 401,403 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/scheduler/run [post]
func (h *Handler) RunScheduler(c *gin.Context) {
	report, err := h.svc.AutoOrders.RunNow(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
