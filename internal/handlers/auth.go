package handlers

import (
	"errors"
	"net/http"

	"taskify/backend/internal/models"
	"taskify/backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db          *gorm.DB
	authService services.AuthService
	tokens      *services.TokenService
}

func NewAuthHandler(db *gorm.DB, authService services.AuthService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{db: db, authService: authService, tokens: tokens}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	user, err := h.authService.SignupUser(h.db, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, "User already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.sendTokenResponse(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.authService.LoginUser(h.db, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.sendTokenResponse(c, http.StatusOK, user)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(h.db, callerID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userPayload(user),
	})
}

func (h *AuthHandler) sendTokenResponse(c *gin.Context, statusCode int, user *models.User) {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	c.JSON(statusCode, gin.H{
		"success": true,
		"token":   token,
		"user":    userPayload(user),
	})
}
