package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/services"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/gin-gonic/gin"
)

type ReadinessHandler struct {
	BaseHandler
	readinessService   services.ReadinessService
	leaderboardService services.LeaderboardService
	exportService      services.ExportService
}

func NewReadinessHandler(
	readinessService services.ReadinessService,
	leaderboardService services.LeaderboardService,
	exportService services.ExportService,
	logger utils.Logger,
) *ReadinessHandler {
	return &ReadinessHandler{
		BaseHandler:        NewBaseHandler(logger),
		readinessService:   readinessService,
		leaderboardService: leaderboardService,
		exportService:      exportService,
	}
}

// GetReadiness returns the composite readiness index
// @Summary Get readiness index
// @Description Combines the latest score of each practice module into a single readiness number
// @Tags readiness
// @Produce json
// @Success 200 {object} services.ReadinessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /readiness [get]
func (h *ReadinessHandler) GetReadiness(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Computing readiness index")

	result, err := h.readinessService.GetReadiness(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLeaderboard returns the readiness leaderboard
// @Summary Get leaderboard
// @Description Ranks users by readiness index, including the caller's own rank
// @Tags readiness
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} services.LeaderboardResponse
// @Failure 401 {object} ErrorResponse
// @Router /leaderboard [get]
func (h *ReadinessHandler) GetLeaderboard(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	h.LogRequest(c, "Reading leaderboard", "limit", limit)

	result, err := h.leaderboardService.Top(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportHistory downloads the user's test history as a workbook
// @Summary Export test history
// @Description Streams an Excel workbook with one sheet per test module
// @Tags readiness
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Router /export/history [get]
func (h *ReadinessHandler) ExportHistory(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting test history")

	data, err := h.exportService.ExportHistory(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("test-history-%d.xlsx", userID)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
