package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RabbiPrimon/Calorie-Counter/internal/service"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

// ConsumptionHandler serves the food-intake entry form.
type ConsumptionHandler struct {
	consumption *service.ConsumptionService
}

func NewConsumptionHandler(consumption *service.ConsumptionService) *ConsumptionHandler {
	return &ConsumptionHandler{consumption: consumption}
}

func (h *ConsumptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/add_consumption/", h.ListToday)
	router.POST("/add_consumption/", h.AddConsumption)
}

// ListToday returns what the account has logged so far today, the data the
// entry page displays next to the form.
func (h *ConsumptionHandler) ListToday(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	entries, err := h.consumption.ListToday(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	list := make([]types.ConsumptionEntryResponse, 0, len(entries))
	for _, e := range entries {
		list = append(list, types.ConsumptionEntryResponse{
			ID:       e.ID,
			ItemName: e.ItemName,
			Quantity: e.Quantity,
			Calories: e.Calories,
			Date:     e.Date.Local().Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"consumptions": list})
}

// AddConsumption appends one validated entry, date-stamped server-side,
// and points the client at the dashboard.
func (h *ConsumptionHandler) AddConsumption(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.AddConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.consumption.Add(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry": types.ConsumptionEntryResponse{
			ID:       entry.ID,
			ItemName: entry.ItemName,
			Quantity: entry.Quantity,
			Calories: entry.Calories,
			Date:     entry.Date.Local().Format("2006-01-02"),
		},
		"redirect": "/dashboard/",
	})
}
