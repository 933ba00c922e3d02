package http

import "github.com/gin-gonic/gin"

// Register mounts the application-tracking routes for the signed-in viewer.
func Register(g *gin.RouterGroup, h *Handler) {
	g.GET("", h.grouped)
	g.PUT("/:hteId", h.setStatus)
	g.DELETE("/:hteId", h.remove)
}
