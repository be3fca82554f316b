package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
	"github.com/launchhub/launchhub-backend/internal/auth"
	"github.com/launchhub/launchhub-backend/internal/dtos"
	"github.com/launchhub/launchhub-backend/internal/models"
	"github.com/launchhub/launchhub-backend/internal/services"
)

// AuthHandler serves both token schemes: /api/user-auth/* for end
// users and /api/auth/* for admins. Same JWT manager, the role claim
// tells them apart.
type AuthHandler struct {
	users      *services.UserService
	jwtManager *auth.JWTManager
}

func NewAuthHandler(users *services.UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{users: users, jwtManager: jwtManager}
}

// Register creates an end-user account. Admin accounts are provisioned
// out of band.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Name, req.Password, models.RoleUser)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login issues an end-user token.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, false)
}

// AdminLogin issues an admin token; a non-admin account gets 403.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, true)
}

func (h *AuthHandler) login(c *gin.Context, wantAdmin bool) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if wantAdmin && user.Role != models.RoleAdmin {
		respondError(c, apperrors.ErrForbidden)
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{Token: token})
}

// Me returns the account behind the presented token. Both schemes use
// it as their identity-check endpoint.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	if claims == nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
