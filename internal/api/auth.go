package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RabbiPrimon/Calorie-Counter/internal/models"
	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterPublicRoutes mounts the unauthenticated endpoints. Registration
// lives at the site root, matching the original URL layout.
func (h *AuthHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/", h.RegistrationForm)
	router.POST("/", h.Register)
	router.GET("/login/", h.LoginForm)
	router.POST("/login/", h.Login)
}

// RegisterPrivateRoutes mounts the endpoints that need a session.
func (h *AuthHandler) RegisterPrivateRoutes(router *gin.RouterGroup) {
	router.GET("/logout/", h.Logout)
	router.POST("/logout/", h.Logout)
}

// RegistrationForm describes the registration form for clients.
func (h *AuthHandler) RegistrationForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "email", "password", "password_confirm"},
	})
}

// Register creates an account plus blank profile and signs the caller in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, token, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.AuthResponse{
		Token:    token,
		Redirect: "/profile/",
	})
}

// LoginForm describes the login form for clients.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"identifier", "password", "role"},
		"roles":  []string{models.RoleUser, models.RoleAdmin},
	})
}

// Login verifies credentials and the claimed role, then issues a session
// token. Admins are pointed at the admin landing page.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, token, err := h.auth.Login(c.Request.Context(), req.Identifier, req.Password, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	redirect := "/dashboard/"
	if req.Role == models.RoleAdmin {
		redirect = "/admin/"
	}

	c.JSON(http.StatusOK, types.AuthResponse{
		Token:    token,
		Redirect: redirect,
	})
}

// Logout revokes the presented token and points the client at the login
// page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if v, exists := c.Get("token"); exists {
		if token, ok := v.(string); ok {
			if err := h.auth.RevokeToken(c.Request.Context(), token); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"redirect": "/login/"})
}
