package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/services"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	BaseHandler
	progressService services.ProgressService
	validator       *utils.Validator
}

func NewProgressHandler(progressService services.ProgressService, validator *utils.Validator, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     NewBaseHandler(logger),
		progressService: progressService,
		validator:       validator,
	}
}

// GetProgress returns streak, medals and aggregate statistics
// @Summary Get progress overview
// @Description Returns the user's practice streak, earned medals and per-module statistics
// @Tags progress
// @Produce json
// @Success 200 {object} services.ProgressResponse
// @Failure 401 {object} ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Reading progress overview")

	result, err := h.progressService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory returns the attempt history for one test module
// @Summary Get module history
// @Description Lists past results for a module, newest first
// @Tags progress
// @Produce json
// @Param module path string true "Test module" Enums(situational, story, word, piq, physical)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Param date_from query string false "Lower bound (RFC 3339)"
// @Param date_to query string false "Upper bound (RFC 3339)"
// @Success 200 {object} services.HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /history/{module} [get]
func (h *ProgressHandler) GetHistory(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	req := services.HistoryRequest{
		Module: c.Param("module"),
	}
	req.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	req.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid date_from",
				Details: err.Error(),
			})
			return
		}
		req.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid date_to",
				Details: err.Error(),
			})
			return
		}
		req.DateTo = &t
	}

	if err := h.validator.Validate(&req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Reading module history", "module", req.Module)

	result, err := h.progressService.GetHistory(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
