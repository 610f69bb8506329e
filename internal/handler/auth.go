package handler

import (
	"net/http"
	"time"

	"staff-weekly/internal/logger"
	"staff-weekly/internal/middleware"
	"staff-weekly/internal/model"
	"staff-weekly/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(auth *service.AuthService, secret []byte, ttl time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret, ttl: ttl}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := middleware.SignToken(u.ID, u.Role, h.secret, h.ttl)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("register.ok", "uid", u.ID, "email", u.Email)
	c.JSON(http.StatusCreated, model.AuthResponse{Token: token, User: *u})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		fail(c, err)
		return
	}

	token, err := middleware.SignToken(u.ID, u.Role, h.secret, h.ttl)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("login.ok", "uid", u.ID, "role", u.Role)
	c.JSON(http.StatusOK, model.AuthResponse{Token: token, User: *u})
}
