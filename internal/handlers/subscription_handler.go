package handlers

import (
	"net/http"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/services"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService, logger utils.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         NewBaseHandler(logger),
		subscriptionService: subscriptionService,
	}
}

// Activate records a confirmed payment and unlocks the practice modules
// @Summary Activate subscription
// @Description Records the payment confirmation and flips the user's access flag
// @Tags subscription
// @Accept json
// @Produce json
// @Param payment body services.ActivateSubscriptionRequest true "Payment confirmation"
// @Success 200 {object} services.SubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /subscription/activate [post]
func (h *SubscriptionHandler) Activate(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Activating subscription")

	var req services.ActivateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.subscriptionService.Activate(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Status returns the user's subscription state
// @Summary Get subscription status
// @Tags subscription
// @Produce json
// @Success 200 {object} services.SubscriptionResponse
// @Failure 401 {object} ErrorResponse
// @Router /subscription/status [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	result, err := h.subscriptionService.Status(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
