package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/auth"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// InteractionHandler serves per-user like/save/share state on articles.
type InteractionHandler struct {
	interactions *services.InteractionService
}

func NewInteractionHandler(interactions *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactions: interactions}
}

func (h *InteractionHandler) Register(group *gin.RouterGroup) {
	group.GET("/article/:id/status", h.Status)
	group.POST("/article/:id/like", h.toggle(services.KindLike))
	group.POST("/article/:id/save", h.toggle(services.KindSave))
	group.POST("/article/:id/share", h.Share)
}

func (h *InteractionHandler) Status(c *gin.Context) {
	userID, articleID, err := h.identify(c)
	if err != nil {
		respondError(c, err)
		return
	}
	status, err := h.interactions.Status(c.Request.Context(), userID, articleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// toggle flips the flag by default; a body of {"value": true|false}
// requests idempotent set semantics instead, which survives network
// retries without double-toggling.
func (h *InteractionHandler) toggle(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, articleID, err := h.identify(c)
		if err != nil {
			respondError(c, err)
			return
		}

		var body struct {
			Value *bool `json:"value"`
		}
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}

		status, err := h.interactions.Toggle(c.Request.Context(), userID, articleID, kind, body.Value)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

func (h *InteractionHandler) Share(c *gin.Context) {
	userID, articleID, err := h.identify(c)
	if err != nil {
		respondError(c, err)
		return
	}
	status, shareURL, err := h.interactions.Share(c.Request.Context(), userID, articleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"share_url": shareURL,
	})
}

func (h *InteractionHandler) identify(c *gin.Context) (userID, articleID uint, err error) {
	claims := auth.CurrentClaims(c)
	if claims == nil {
		return 0, 0, apperrors.ErrUnauthorized
	}
	id, err := parseID(c)
	if err != nil {
		return 0, 0, err
	}
	return claims.UserID, id, nil
}
