package http

import "github.com/gin-gonic/gin"

// Register mounts the admin analytics routes. The caller is expected to have
// already applied the admin gate.
func Register(g *gin.RouterGroup, h *Handler) {
	g.GET("", h.summary)
	g.GET("/export", h.export)
}
