package handler

import (
	"net/http"

	"holocron/internal/middleware"
	"holocron/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserUnknown:
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
		case service.ErrInvalidCreds:
			c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "access_token": token})
}

func (h *AuthHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"got it": middleware.GetUserName(c)})
}
