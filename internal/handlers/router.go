package handlers

import (
	"net/http"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/services"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	evaluationHandler   *EvaluationHandler
	readinessHandler    *ReadinessHandler
	progressHandler     *ProgressHandler
	subscriptionHandler *SubscriptionHandler
}

func NewHandlerManager(
	serviceManager *services.ServiceManager,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		evaluationHandler:   NewEvaluationHandler(serviceManager.Evaluation, logger),
		readinessHandler:    NewReadinessHandler(serviceManager.Readiness, serviceManager.Leaderboard, serviceManager.Export, logger),
		progressHandler:     NewProgressHandler(serviceManager.Progress, validator, logger),
		subscriptionHandler: NewSubscriptionHandler(serviceManager.Subscription, logger),
	}
}

// SetupRoutes sets up all API routes. Every route under /api/v1 requires an
// authenticated user; the evaluators additionally require a subscription.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, auth, subscribed gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "readiness-service",
		})
	})

	v1 := router.Group("/api/v1", auth)
	{
		tests := v1.Group("/tests", subscribed)
		{
			tests.POST("/situational", hm.evaluationHandler.EvaluateSituational)
			tests.POST("/stories", hm.evaluationHandler.EvaluateStories)
			tests.POST("/word-association", hm.evaluationHandler.EvaluateWords)
		}

		v1.POST("/piq", subscribed, hm.evaluationHandler.EvaluatePIQ)
		v1.POST("/physical", subscribed, hm.evaluationHandler.EvaluatePhysical)

		v1.GET("/readiness", hm.readinessHandler.GetReadiness)
		v1.GET("/leaderboard", hm.readinessHandler.GetLeaderboard)
		v1.GET("/export/history", hm.readinessHandler.ExportHistory)

		v1.GET("/progress", hm.progressHandler.GetProgress)
		v1.GET("/history/:module", hm.progressHandler.GetHistory)

		subscription := v1.Group("/subscription")
		{
			subscription.POST("/activate", hm.subscriptionHandler.Activate)
			subscription.GET("/status", hm.subscriptionHandler.Status)
		}
	}
}
