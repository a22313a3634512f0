package report

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the board API under the given group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	items := r.Group("/items")
	{
		items.GET("", h.List)
		items.POST("", h.Create)
	}
}
