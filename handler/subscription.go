package handler

import (
	"net/http"

	"recipehub/controller"
	"recipehub/middleware"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler serves the follow/unfollow endpoints.
type SubscriptionHandler interface {
	Subscribe(c *gin.Context)
	Unsubscribe(c *gin.Context)
}

type subscriptionHandler struct {
	subscriptionController controller.SubscriptionController
}

// NewSubscriptionHandler creates and returns a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionController controller.SubscriptionController) SubscriptionHandler {
	return &subscriptionHandler{subscriptionController: subscriptionController}
}

// Subscribe follows the user in the path.
func (h *subscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	targetID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.subscriptionController.Subscribe(c.Request.Context(), userID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Unsubscribe removes the follow edge.
func (h *subscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	targetID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.subscriptionController.Unsubscribe(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
