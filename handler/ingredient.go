package handler

import (
	"net/http"

	"recipehub/controller"

	"github.com/gin-gonic/gin"
)

// IngredientHandler serves the read-only ingredient catalog endpoints.
type IngredientHandler interface {
	GetIngredient(c *gin.Context)
	ListIngredients(c *gin.Context)
}

type ingredientHandler struct {
	ingredientController controller.IngredientController
}

// NewIngredientHandler creates and returns a new IngredientHandler.
func NewIngredientHandler(ingredientController controller.IngredientController) IngredientHandler {
	return &ingredientHandler{ingredientController: ingredientController}
}

func (h *ingredientHandler) GetIngredient(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := h.ingredientController.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

// ListIngredients searches the catalog by ?name=.
func (h *ingredientHandler) ListIngredients(c *gin.Context) {
	limit, offset := pagination(c)
	ings, err := h.ingredientController.SearchIngredients(c.Request.Context(), c.Query("name"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ings)
}
