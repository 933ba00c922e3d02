package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	"github.com/oancholarevelo/interniskolar/internal/applications/group"
	"github.com/oancholarevelo/interniskolar/internal/applications/reconcile"
	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
	dirservice "github.com/oancholarevelo/interniskolar/internal/directory/service"
	profdomain "github.com/oancholarevelo/interniskolar/internal/profiles/domain"
)

// StatusWriter persists one reconciled status change.
type StatusWriter interface {
	SetStatus(ctx context.Context, uid, companyID string, newStatus *appdomain.Status) ([]appdomain.Record, error)
}

// ProfileReader loads the viewer's profile for the grouped view.
type ProfileReader interface {
	Get(ctx context.Context, uid string) (profdomain.Profile, bool, error)
}

type Handler struct {
	repo     StatusWriter
	profiles ProfileReader
	catalog  *dirservice.CatalogProvider
	logger   *zap.Logger
}

func NewHandler(repo StatusWriter, profiles ProfileReader, catalog *dirservice.CatalogProvider, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, profiles: profiles, catalog: catalog, logger: logger}
}

type statusReq struct {
	Status string `json:"status"`
}

// setStatus adds or moves one company in the viewer's pipeline.
func (h *Handler) setStatus(c *gin.Context) {
	companyID := c.Param("hteId")

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	status := appdomain.Status(req.Status)
	if !appdomain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": appdomain.ErrInvalidStatus.Error()})
		return
	}

	uid := c.GetString(middleware.KeyUID)
	records, err := h.repo.SetStatus(c.Request.Context(), uid, companyID, &status)
	if err != nil {
		h.logger.Error("failed to update application status",
			zap.String("uid", uid), zap.String("hteId", companyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "applications": records})
}

// remove drops one company from the viewer's pipeline.
func (h *Handler) remove(c *gin.Context) {
	companyID := c.Param("hteId")
	uid := c.GetString(middleware.KeyUID)

	records, err := h.repo.SetStatus(c.Request.Context(), uid, companyID, nil)
	if err != nil {
		h.logger.Error("failed to remove application",
			zap.String("uid", uid), zap.String("hteId", companyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to remove application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "applications": records})
}

// grouped serves the "My Applications" view: companies grouped by status.
func (h *Handler) grouped(c *gin.Context) {
	uid := c.GetString(middleware.KeyUID)

	profile, _, err := h.profiles.Get(c.Request.Context(), uid)
	if err != nil {
		h.logger.Error("failed to load profile", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load applications"})
		return
	}

	catalog, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load HTE catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load applications"})
		return
	}

	grouped := group.ByStatus(reconcile.Normalize(profile.Shortlist), catalog)
	c.JSON(http.StatusOK, gin.H{"ok": true, "groups": grouped.Groups, "total": grouped.Total})
}
