package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
	"github.com/oancholarevelo/interniskolar/internal/templates/repository"
)

type Handler struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewHandler(repo *repository.Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

func (h *Handler) list(c *gin.Context) {
	templates, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list templates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load templates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "templates": templates})
}

func (h *Handler) upload(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "template name required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "template file required"})
		return
	}
	defer file.Close()

	uploadedBy := c.GetString(middleware.KeyEmail)
	tmpl, err := h.repo.Upload(c.Request.Context(), name, header.Filename, uploadedBy, file)
	if err != nil {
		h.logger.Error("failed to upload template", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to upload template"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "template": tmpl})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete template", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to delete template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
