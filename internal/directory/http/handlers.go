package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
	"github.com/oancholarevelo/interniskolar/internal/directory/service"
	"github.com/oancholarevelo/interniskolar/internal/letters"
)

// Repo is the write side the admin endpoints need.
type Repo interface {
	Create(ctx context.Context, hte domain.HTE) (string, error)
	Update(ctx context.Context, id string, hte domain.HTE) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	catalog *service.CatalogProvider
	repo    Repo
	logger  *zap.Logger
}

func NewHandler(catalog *service.CatalogProvider, repo Repo, logger *zap.Logger) *Handler {
	return &Handler{catalog: catalog, repo: repo, logger: logger}
}

func (h *Handler) list(c *gin.Context) {
	catalog, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load HTE catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load directory"})
		return
	}

	criteria := service.Criteria{
		Search:      c.Query("search"),
		Course:      c.Query("course"),
		Location:    c.Query("location"),
		Industry:    c.Query("industry"),
		MOAStatus:   domain.MOAStatus(c.Query("moaStatus")),
		Admin:       c.GetBool(middleware.KeyIsAdmin),
		ShowExpired: c.Query("showExpired") == "true",
	}

	htes := service.Filter(catalog, criteria, time.Now())
	c.JSON(http.StatusOK, gin.H{"ok": true, "htes": htes})
}

func (h *Handler) options(c *gin.Context) {
	catalog, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load HTE catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load directory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "courses": service.CourseOptions(catalog)})
}

type hteReq struct {
	Name             string `json:"name"`
	Address          string `json:"address"`
	ContactPerson    string `json:"contactPerson"`
	ContactNumber    string `json:"contactNumber"`
	ContactEmail     string `json:"contactEmail"`
	NatureOfBusiness string `json:"natureOfBusiness"`
	Course           string `json:"course"`
	MOALink          string `json:"moaLink"`
	MOAEndDate       string `json:"moaEndDate"` // YYYY-MM-DD, empty for none
}

func (r *hteReq) toDomain() (domain.HTE, error) {
	hte := domain.HTE{
		Name:             strings.TrimSpace(r.Name),
		Address:          r.Address,
		ContactPerson:    r.ContactPerson,
		ContactNumber:    r.ContactNumber,
		ContactEmail:     r.ContactEmail,
		NatureOfBusiness: r.NatureOfBusiness,
		Course:           r.Course,
		MOALink:          r.MOALink,
	}
	if r.MOAEndDate != "" {
		end, err := time.Parse("2006-01-02", r.MOAEndDate)
		if err != nil {
			return domain.HTE{}, err
		}
		hte.MOAEndDate = &end
	}
	return hte, nil
}

func (h *Handler) create(c *gin.Context) {
	var req hteReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	hte, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid moaEndDate"})
		return
	}

	id, err := h.repo.Create(c.Request.Context(), hte)
	if err != nil {
		h.logger.Error("failed to create HTE", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to save HTE"})
		return
	}
	h.catalog.Invalidate(c.Request.Context())

	hte.ID = id
	c.JSON(http.StatusCreated, gin.H{"ok": true, "hte": hte})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req hteReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	hte, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid moaEndDate"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, hte); err != nil {
		h.logger.Error("failed to update HTE", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to save HTE"})
		return
	}
	h.catalog.Invalidate(c.Request.Context())

	hte.ID = id
	c.JSON(http.StatusOK, gin.H{"ok": true, "hte": hte})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete HTE", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to delete HTE"})
		return
	}
	h.catalog.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// renewalLetter composes the MOA outreach email for one HTE.
func (h *Handler) renewalLetter(c *gin.Context) {
	id := c.Param("id")
	catalog, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load directory"})
		return
	}
	for _, hte := range catalog {
		if hte.ID == id {
			c.JSON(http.StatusOK, gin.H{"ok": true, "letter": letters.Renewal(hte, time.Now())})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "HTE not found"})
}
