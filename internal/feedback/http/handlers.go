package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
	"github.com/oancholarevelo/interniskolar/internal/feedback/domain"
	"github.com/oancholarevelo/interniskolar/internal/feedback/repository"
	"github.com/oancholarevelo/interniskolar/internal/store"
)

// Repo is the inbox persistence surface.
type Repo interface {
	Create(ctx context.Context, fb domain.Feedback) (string, error)
	List(ctx context.Context) ([]domain.Feedback, error)
	MarkRead(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.WorkflowStatus) error
	Delete(ctx context.Context, id string) error
	Query() firestore.Query
}

type Handler struct {
	repo    Repo
	limiter *submitLimiter
	logger  *zap.Logger
}

func NewHandler(repo Repo, logger *zap.Logger) *Handler {
	// A handful of submissions per minute is plenty for a contact form.
	return &Handler{
		repo:    repo,
		limiter: newSubmitLimiter(rate.Every(20*time.Second), 3),
		logger:  logger,
	}
}

type submitReq struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

func (h *Handler) submit(c *gin.Context) {
	uid := c.GetString(middleware.KeyUID)
	if !h.limiter.allow(uid) {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many submissions, try again shortly"})
		return
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	category := domain.Category(req.Type)
	if !domain.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidCategory.Error()})
		return
	}

	fb := domain.Feedback{
		UserID:    uid,
		UserName:  strings.TrimSpace(req.Name),
		UserEmail: c.GetString(middleware.KeyEmail),
		Category:  category,
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.repo.Create(c.Request.Context(), fb)
	if err != nil {
		h.logger.Error("failed to submit feedback", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to submit request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) list(c *gin.Context) {
	inbox, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load inbox"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "feedback": inbox})
}

func (h *Handler) markRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.MarkRead(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to mark feedback read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	status := domain.WorkflowStatus(req.Status)
	if !domain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidStatus.Error()})
		return
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), id, status); err != nil {
		h.logger.Error("failed to update feedback status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// stream pushes inbox snapshots to the admin console as server-sent events.
// The subscription is torn down when the client disconnects.
func (h *Handler) stream(c *gin.Context) {
	updates := make(chan interface{}, 1)
	unsubscribe := store.Subscribe(c.Request.Context(), h.repo.Query(),
		func(snaps []*firestore.DocumentSnapshot) {
			inbox := make([]domain.Feedback, 0, len(snaps))
			for _, snap := range snaps {
				inbox = append(inbox, repository.Decode(snap))
			}
			repository.SortInbox(inbox)
			select {
			case updates <- inbox:
			case <-c.Request.Context().Done():
			}
		},
		func(err error) {
			h.logger.Warn("inbox subscription error, client will resync", zap.Error(err))
			select {
			case updates <- gin.H{"error": "sync interrupted"}:
			case <-c.Request.Context().Done():
			}
		})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case update := <-updates:
			c.SSEvent("feedback", update)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete feedback", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to delete request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
