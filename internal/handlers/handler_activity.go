package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
)

// activityHandler exposes the audit log.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

// registerActivityRoutes registers the audit log route. Admin-only.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	rg.GET("/activity", middleware.RequireAdmin(), h.listActivities)
}

// listActivities godoc
// @Summary List audit log entries
// @Description Returns recent audit records, newest first
// @Tags activity
// @Produce  json
// @Param   limit query int false "Page size (default 50)"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.ActivityResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /activity [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.activityService.ListActivities(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list activity log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activity log"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListActivityResponse(entries))
}
