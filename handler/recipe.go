package handler

import (
	"net/http"
	"strings"

	"recipehub/controller"
	"recipehub/entity"
	"recipehub/export"
	"recipehub/middleware"

	"github.com/gin-gonic/gin"
)

// RecipeHandler serves recipe CRUD plus the favorite and shopping-cart
// actions, including the PDF download.
type RecipeHandler interface {
	Create(c *gin.Context)
	GetRecipe(c *gin.Context)
	ListRecipes(c *gin.Context)
	UpdateRecipe(c *gin.Context)
	DeleteRecipe(c *gin.Context)
	Favorite(c *gin.Context)
	Unfavorite(c *gin.Context)
	AddToCart(c *gin.Context)
	RemoveFromCart(c *gin.Context)
	DownloadShoppingCart(c *gin.Context)
}

type recipeHandler struct {
	recipeController controller.RecipeController
	favoriteCtrl     controller.FavoriteController
	listController   controller.ShoppingListController
	renderer         export.Renderer
}

// NewRecipeHandler creates and returns a new RecipeHandler.
func NewRecipeHandler(recipeController controller.RecipeController, favoriteCtrl controller.FavoriteController, listController controller.ShoppingListController, renderer export.Renderer) RecipeHandler {
	return &recipeHandler{
		recipeController: recipeController,
		favoriteCtrl:     favoriteCtrl,
		listController:   listController,
		renderer:         renderer,
	}
}

// Create publishes a new recipe owned by the authenticated user.
func (h *recipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req entity.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := h.recipeController.CreateRecipe(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// GetRecipe returns the detail view.
func (h *recipeHandler) GetRecipe(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	viewerID, _ := middleware.CurrentUserID(c)
	recipe, err := h.recipeController.GetRecipe(c.Request.Context(), id, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ListRecipes returns recipes newest first, filterable by ?tags=slug,slug.
func (h *recipeHandler) ListRecipes(c *gin.Context) {
	limit, offset := pagination(c)
	viewerID, _ := middleware.CurrentUserID(c)
	var slugs []string
	if raw := c.Query("tags"); raw != "" {
		slugs = strings.Split(raw, ",")
	}
	recipes, err := h.recipeController.ListRecipes(c.Request.Context(), viewerID, slugs, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// UpdateRecipe replaces the recipe's fields and association sets; author only.
func (h *recipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var req entity.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := h.recipeController.UpdateRecipe(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes the recipe and its dependents; author only.
func (h *recipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.recipeController.DeleteRecipe(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Favorite adds the recipe to the user's favorites.
func (h *recipeHandler) Favorite(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.favoriteCtrl.Favorite(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// Unfavorite removes the recipe from the user's favorites.
func (h *recipeHandler) Unfavorite(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.favoriteCtrl.Unfavorite(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddToCart puts the recipe on the user's shopping list.
func (h *recipeHandler) AddToCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.listController.AddRecipe(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// RemoveFromCart takes the recipe off the user's shopping list.
func (h *recipeHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.listController.RemoveRecipe(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart exports the merged summary as an attached PDF.
func (h *recipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	rows, err := h.listController.Export(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := h.renderer.Render(rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="shopping_list.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
