package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/RabbiPrimon/Calorie-Counter/internal/middleware"
	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Calorie Counter API is running",
	})
}

// RegisterRoutes wires every flow onto the engine. The redis client may be
// nil; login throttling and token revocation are skipped in that case.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService *service.AuthService, redisClient *redis.Client) {
	router.GET("/health", HealthCheck)

	var credentialLimiter *middleware.RateLimiter
	if redisClient != nil {
		credentialLimiter = middleware.NewCredentialRateLimiter(redisClient)
	}

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(service.NewProfileService(db))
	dashboardHandler := NewDashboardHandler(service.NewDashboardService(db))
	consumptionHandler := NewConsumptionHandler(service.NewConsumptionService(db))
	adminHandler := NewAdminHandler(service.NewAdminService(db))

	// Public credential endpoints, throttled when redis is available.
	public := router.Group("")
	if credentialLimiter != nil {
		public.Use(credentialLimiter.RateLimitMiddleware())
	}
	authHandler.RegisterPublicRoutes(public)

	// Everything else sits behind the session guard.
	private := router.Group("")
	private.Use(middleware.AuthMiddleware(authService))
	authHandler.RegisterPrivateRoutes(private)
	profileHandler.RegisterRoutes(private)
	dashboardHandler.RegisterRoutes(private)
	consumptionHandler.RegisterRoutes(private)

	admin := private.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	adminHandler.RegisterRoutes(admin)
}

// currentUserID pulls the authenticated account out of the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrs service.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrRoleMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
