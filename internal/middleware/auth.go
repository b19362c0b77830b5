package middleware

import (
	"net/http"
	"strings"

	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/config"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/repositories"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/utils"
	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
)

// InitAuth configures the Casdoor SDK once at startup.
func InitAuth(cfg config.CasdoorConfig) {
	casdoorsdk.InitConfig(
		cfg.Endpoint,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.Certificate,
		cfg.Organization,
		cfg.Application,
	)
}

// Auth validates the bearer token and resolves the local user account,
// creating it on first login. Sets "user_id" in the request context.
func Auth(users repositories.UserRepository, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing bearer token",
			})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := casdoorsdk.ParseJwtToken(token)
		if err != nil {
			logger.Warn("Token validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			return
		}

		user, err := users.GetOrCreateByCasdoorID(c.Request.Context(), claims.User.Id, claims.User.Email, claims.User.DisplayName)
		if err != nil {
			logger.Error("Failed to resolve user account", "casdoor_id", claims.User.Id, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to resolve user account",
			})
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// RequireSubscription gates the practice modules behind the one-time
// payment. Must run after Auth.
func RequireSubscription(users repositories.UserRepository, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "User not authenticated",
			})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID.(uint))
		if err != nil {
			logger.Error("Failed to load user for subscription check", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to verify subscription",
			})
			return
		}

		if !user.IsSubscribed {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"message": "Active subscription required to access practice modules",
			})
			return
		}

		c.Next()
	}
}
