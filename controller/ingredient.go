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

// IngredientController exposes the read-only ingredient catalog.
type IngredientController interface {
	GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error)
	SearchIngredients(ctx context.Context, name string, limit, offset int) ([]entity.Ingredient, error)
}

type ingredientController struct {
	ingredientRepository *repository.IngredientRepository
}

// NewIngredientController creates and returns a new IngredientController.
func NewIngredientController(ingredientRepository *repository.IngredientRepository) IngredientController {
	return &ingredientController{ingredientRepository: ingredientRepository}
}

// GetIngredient fetches one catalog row.
func (c *ingredientController) GetIngredient(ctx context.Context, id uint) (*entity.Ingredient, error) {
	ing, err := c.ingredientRepository.GetIngredientByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ingredient %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return mapper.IngredientModelToEntity(ing), nil
}

// SearchIngredients returns catalog rows matching the name query.
func (c *ingredientController) SearchIngredients(ctx context.Context, name string, limit, offset int) ([]entity.Ingredient, error) {
	ings, err := c.ingredientRepository.SearchIngredients(ctx, name, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Ingredient, 0, len(ings))
	for i := range ings {
		out = append(out, *mapper.IngredientModelToEntity(&ings[i]))
	}
	return out, nil
}
