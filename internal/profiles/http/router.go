package http

import "github.com/gin-gonic/gin"

// Register mounts the viewer's profile routes.
func Register(g *gin.RouterGroup, h *Handler) {
	g.GET("", h.get)
	g.PUT("", h.update)
	g.POST("/resume", h.uploadResume)
	g.GET("/stream", h.stream)
}
