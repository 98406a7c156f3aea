package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

// ProfileHandler serves the biometric profile form.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile/", h.GetProfile)
	router.POST("/profile/", h.UpdateProfile)
}

// GetProfile returns the current profile values for the form. A pure read:
// an account without a profile gets zero-value defaults, no row is created.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusOK, types.ProfileResponse{Role: models.RoleUser})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// UpdateProfile applies the submitted field set atomically and points the
// client at the dashboard.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  profileResponse(profile),
		"redirect": "/dashboard/",
	})
}

func profileResponse(p *models.Profile) types.ProfileResponse {
	updatedAt := p.UpdatedAt
	return types.ProfileResponse{
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		HeightCm:  p.HeightCm,
		WeightKg:  p.WeightKg,
		Role:      p.Role,
		UpdatedAt: &updatedAt,
	}
}
