package handler

import (
	"net/http"

	"recipehub/entity"
	"recipehub/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves token issuance.
type AuthHandler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates and returns a new AuthHandler.
func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login exchanges email and password for a signed token.
func (h *authHandler) Login(c *gin.Context) {
	var req entity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"auth_token": token})
}

// Logout ends the session. Tokens are stateless, so the server side has
// nothing to revoke; the endpoint exists for API-shape compatibility.
func (h *authHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
