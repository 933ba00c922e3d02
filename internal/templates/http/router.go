package http

import (
	"github.com/gin-gonic/gin"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
)

// Register mounts the template routes: everyone reads, admin manages.
func Register(g *gin.RouterGroup, h *Handler) {
	g.GET("", h.list)

	admin := g.Group("", middleware.RequireAdmin())
	admin.POST("", h.upload)
	admin.DELETE("/:id", h.delete)
}
