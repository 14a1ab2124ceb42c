package controller

import (
	"context"
	"errors"
	"fmt"

	"recipehub/entity"
	"recipehub/mapper"
	"recipehub/repository"

	"gorm.io/gorm"
)

// FavoriteController manages the (user, recipe) favorite edges.
type FavoriteController interface {
	Favorite(ctx context.Context, userID, recipeID uint) (*entity.RecipeSummary, error)
	Unfavorite(ctx context.Context, userID, recipeID uint) error
}

type favoriteController struct {
	favoriteRepository *repository.FavoriteRepository
	recipeRepository   *repository.RecipeRepository
}

// NewFavoriteController creates and returns a new FavoriteController.
func NewFavoriteController(favoriteRepository *repository.FavoriteRepository, recipeRepository *repository.RecipeRepository) FavoriteController {
	return &favoriteController{
		favoriteRepository: favoriteRepository,
		recipeRepository:   recipeRepository,
	}
}

// Favorite records the edge; favoriting the same recipe twice is a Conflict.
func (c *favoriteController) Favorite(ctx context.Context, userID, recipeID uint) (*entity.RecipeSummary, error) {
	recipe, err := c.recipeRepository.GetRecipeByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	err = c.favoriteRepository.CreateFavorite(ctx, userID, recipeID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("recipe already in favorites: %w", entity.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return mapper.RecipeModelToSummary(recipe), nil
}

// Unfavorite deletes the edge; removing an absent favorite is an error.
func (c *favoriteController) Unfavorite(ctx context.Context, userID, recipeID uint) error {
	_, err := c.recipeRepository.GetRecipeByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return err
	}
	deleted, err := c.favoriteRepository.DeleteFavorite(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("recipe is %w in your favorites", entity.ErrAbsentEdge)
	}
	return nil
}
