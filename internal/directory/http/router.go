package http

import (
	"github.com/gin-gonic/gin"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
)

// Register mounts the directory routes. Reads are open to every verified
// user; writes and the letter composer require admin.
func Register(g *gin.RouterGroup, h *Handler) {
	g.GET("", h.list)
	g.GET("/options", h.options)

	admin := g.Group("", middleware.RequireAdmin())
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
	admin.GET("/:id/renewal-letter", h.renewalLetter)
}
