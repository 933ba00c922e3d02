package http

import (
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
	"github.com/oancholarevelo/interniskolar/internal/profiles/repository"
	"github.com/oancholarevelo/interniskolar/internal/store"
)

type Handler struct {
	repo    *repository.Repository
	resumes *repository.ResumeStore
	logger  *zap.Logger
}

func NewHandler(repo *repository.Repository, resumes *repository.ResumeStore, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, resumes: resumes, logger: logger}
}

// get returns the viewer's profile, creating it with defaults on first
// verified login.
func (h *Handler) get(c *gin.Context) {
	uid := c.GetString(middleware.KeyUID)
	email := c.GetString(middleware.KeyEmail)

	profile, err := h.repo.Ensure(c.Request.Context(), uid, email)
	if err != nil {
		h.logger.Error("failed to ensure profile", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": profile, "isAdmin": c.GetBool(middleware.KeyIsAdmin)})
}

type updateReq struct {
	Name string `json:"name"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	uid := c.GetString(middleware.KeyUID)
	if err := h.repo.UpdateName(c.Request.Context(), uid, strings.TrimSpace(req.Name)); err != nil {
		h.logger.Error("failed to update profile name", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// uploadResume stores the file and points the profile at it.
func (h *Handler) uploadResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "resume file required"})
		return
	}
	defer file.Close()

	uid := c.GetString(middleware.KeyUID)
	resumeURL, err := h.resumes.Upload(c.Request.Context(), uid, header.Filename, file)
	if err != nil {
		h.logger.Error("failed to upload resume", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to upload resume"})
		return
	}

	if err := h.repo.UpdateResume(c.Request.Context(), uid, resumeURL); err != nil {
		h.logger.Error("failed to save resume reference", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to save resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "resumeUrl": resumeURL})
}

// stream pushes profile snapshots to the client as server-sent events, the
// server-side stand-in for the client SDK's realtime document listener. The
// subscription is torn down when the client disconnects.
func (h *Handler) stream(c *gin.Context) {
	uid := c.GetString(middleware.KeyUID)

	updates := make(chan interface{}, 1)
	unsubscribe := store.SubscribeDoc(c.Request.Context(), h.repo.Doc(uid),
		func(snap *firestore.DocumentSnapshot) {
			select {
			case updates <- repository.Decode(snap):
			case <-c.Request.Context().Done():
			}
		},
		func(err error) {
			h.logger.Warn("profile subscription error, client will resync",
				zap.String("uid", uid), zap.Error(err))
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
			c.SSEvent("profile", update)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
