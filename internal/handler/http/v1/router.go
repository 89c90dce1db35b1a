package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API v1 routes. The health check is
// registered before the auth middleware and stays open.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	api.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	api.POST("/recommendations", h.recommend)

	suggestions := api.Group("/suggestions")
	{
		suggestions.POST("", h.createSuggestion)
		suggestions.GET("", h.listPendingSuggestions)
		suggestions.POST("/decision", h.decideSuggestion)
	}

	dispatches := api.Group("/dispatches")
	{
		dispatches.POST("", h.directDispatch)
		dispatches.GET("", h.listActiveDispatches)
		dispatches.GET("/:id", h.getDispatch)
		dispatches.PUT("/:id/status", h.updateDispatchStatus)
		dispatches.PUT("/:id/vehicles", h.updateDispatchVehicles)
	}

	units := api.Group("/units")
	{
		units.GET("", h.listAvailableUnits)
		units.GET("/:id/volunteers", h.listUnitVolunteers)
	}

	api.GET("/vehicles", h.listVehicles)
}
