package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/analytics"
	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	dirservice "github.com/oancholarevelo/interniskolar/internal/directory/service"
)

// ShortlistLister fetches every profile's stored application list.
type ShortlistLister interface {
	ListShortlists(ctx context.Context) ([]appdomain.StoredList, error)
}

type Handler struct {
	profiles ShortlistLister
	catalog  *dirservice.CatalogProvider
	logger   *zap.Logger
}

func NewHandler(profiles ShortlistLister, catalog *dirservice.CatalogProvider, logger *zap.Logger) *Handler {
	return &Handler{profiles: profiles, catalog: catalog, logger: logger}
}

func (h *Handler) compute(ctx context.Context) (analytics.Summary, error) {
	shortlists, err := h.profiles.ListShortlists(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	catalog, err := h.catalog.Catalog(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Compute(shortlists, catalog, time.Now()), nil
}

// summary serves the admin dashboard payload, recomputed from scratch.
func (h *Handler) summary(c *gin.Context) {
	result, err := h.compute(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "analytics": result})
}

// export streams the analytics workbook for the OJT office.
func (h *Handler) export(c *gin.Context) {
	result, err := h.compute(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to compute analytics"})
		return
	}

	now := time.Now()
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="interniskolar-analytics-%s.xlsx"`, now.Format("2006-01-02")))

	if err := analytics.WriteXLSX(c.Writer, result, now); err != nil {
		h.logger.Error("failed to write analytics export", zap.Error(err))
	}
}
