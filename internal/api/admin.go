package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
)

// AdminHandler serves the administrative landing page.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.Landing)
}

func (h *AdminHandler) Landing(c *gin.Context) {
	overview, err := h.admin.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
