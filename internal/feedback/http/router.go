package http

import (
	"github.com/gin-gonic/gin"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
)

// Register mounts the feedback routes: any verified user can submit, the
// inbox itself is admin-only.
func Register(g *gin.RouterGroup, h *Handler) {
	g.POST("", h.submit)

	admin := g.Group("", middleware.RequireAdmin())
	admin.GET("", h.list)
	admin.GET("/stream", h.stream)
	admin.PATCH("/:id/read", h.markRead)
	admin.PATCH("/:id/status", h.updateStatus)
	admin.DELETE("/:id", h.delete)
}
