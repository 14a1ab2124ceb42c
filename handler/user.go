package handler

import (
	"net/http"

	"recipehub/controller"
	"recipehub/entity"
	"recipehub/middleware"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account endpoints.
type UserHandler interface {
	Create(c *gin.Context)
	GetUser(c *gin.Context)
	ListUsers(c *gin.Context)
	Me(c *gin.Context)
	SetPassword(c *gin.Context)
	Subscriptions(c *gin.Context)
}

type userHandler struct {
	userController         controller.UserController
	subscriptionController controller.SubscriptionController
}

// NewUserHandler creates and returns a new UserHandler.
func NewUserHandler(userController controller.UserController, subscriptionController controller.SubscriptionController) UserHandler {
	return &userHandler{
		userController:         userController,
		subscriptionController: subscriptionController,
	}
}

// Create registers a new account. Open to unauthenticated clients.
func (h *userHandler) Create(c *gin.Context) {
	var req entity.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userController.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser returns one user with viewer-relative is_subscribed.
func (h *userHandler) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	viewerID, _ := middleware.CurrentUserID(c)
	user, err := h.userController.GetUser(c.Request.Context(), id, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers returns the user directory, newest first.
func (h *userHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c)
	viewerID, _ := middleware.CurrentUserID(c)
	users, err := h.userController.ListUsers(c.Request.Context(), viewerID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Me returns the authenticated user.
func (h *userHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	user, err := h.userController.GetUser(c.Request.Context(), userID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SetPassword changes the authenticated user's password.
func (h *userHandler) SetPassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req entity.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.userController.SetPassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Subscriptions lists the users the authenticated user follows.
func (h *userHandler) Subscriptions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	limit, offset := pagination(c)
	entries, err := h.subscriptionController.ListSubscriptions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
