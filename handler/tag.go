package handler

import (
	"net/http"

	"recipehub/controller"

	"github.com/gin-gonic/gin"
)

// TagHandler serves the read-only tag endpoints.
type TagHandler interface {
	GetTag(c *gin.Context)
	ListTags(c *gin.Context)
}

type tagHandler struct {
	tagController controller.TagController
}

// NewTagHandler creates and returns a new TagHandler.
func NewTagHandler(tagController controller.TagController) TagHandler {
	return &tagHandler{tagController: tagController}
}

func (h *tagHandler) GetTag(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag, err := h.tagController.GetTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *tagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagController.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
