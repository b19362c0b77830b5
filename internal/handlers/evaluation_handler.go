package handlers

import (
	"net/http"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/services"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/gin-gonic/gin"
)

type EvaluationHandler struct {
	BaseHandler
	evaluationService services.EvaluationService
}

func NewEvaluationHandler(evaluationService services.EvaluationService, logger utils.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		BaseHandler:       NewBaseHandler(logger),
		evaluationService: evaluationService,
	}
}

// EvaluateSituational scores a situational-reaction test submission
// @Summary Evaluate situational test
// @Description Scores a batch of situational-reaction responses and stores the result
// @Tags tests
// @Accept json
// @Produce json
// @Param submission body services.SituationalTestRequest true "Test submission"
// @Success 200 {object} services.EvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tests/situational [post]
func (h *EvaluationHandler) EvaluateSituational(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Evaluating situational test")

	var req services.SituationalTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.evaluationService.EvaluateSituational(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluateStories scores a picture-story test submission
// @Summary Evaluate story test
// @Description Scores a batch of picture stories and stores the result
// @Tags tests
// @Accept json
// @Produce json
// @Param submission body services.StoryTestRequest true "Test submission"
// @Success 200 {object} services.EvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tests/stories [post]
func (h *EvaluationHandler) EvaluateStories(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Evaluating story test")

	var req services.StoryTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.evaluationService.EvaluateStories(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluateWords scores a word-association test submission
// @Summary Evaluate word-association test
// @Description Scores a batch of word-association sentences and stores the result
// @Tags tests
// @Accept json
// @Produce json
// @Param submission body services.WordTestRequest true "Test submission"
// @Success 200 {object} services.EvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tests/word-association [post]
func (h *EvaluationHandler) EvaluateWords(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Evaluating word-association test")

	var req services.WordTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.evaluationService.EvaluateWords(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluatePIQ scores a biographical questionnaire
// @Summary Evaluate PIQ
// @Description Derives trait scores and follow-up questions from the biographical profile
// @Tags piq
// @Accept json
// @Produce json
// @Param profile body services.PIQRequest true "Biographical profile"
// @Success 200 {object} services.EvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /piq [post]
func (h *EvaluationHandler) EvaluatePIQ(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Evaluating PIQ profile")

	var req services.PIQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.evaluationService.EvaluatePIQ(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluatePhysical scores a physical self-report
// @Summary Evaluate physical readiness
// @Description Scores body metrics and fitness proxies and builds a remediation plan
// @Tags physical
// @Accept json
// @Produce json
// @Param profile body services.PhysicalRequest true "Physical self-report"
// @Success 200 {object} services.EvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /physical [post]
func (h *EvaluationHandler) EvaluatePhysical(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Evaluating physical self-report")

	var req services.PhysicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.evaluationService.EvaluatePhysical(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
