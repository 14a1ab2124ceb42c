package controller

import (
	"context"
	"errors"
	"fmt"

	"recipehub/entity"
	"recipehub/mapper"
	"recipehub/model"
	"recipehub/repository"

	"gorm.io/gorm"
)

// ShoppingListController manages the per-user shopping list and produces the
// merged ingredient summary for export.
type ShoppingListController interface {
	AddRecipe(ctx context.Context, userID, recipeID uint) (*entity.RecipeSummary, error)
	RemoveRecipe(ctx context.Context, userID, recipeID uint) error
	Export(ctx context.Context, userID uint) ([]entity.SummaryRow, error)
}

type shoppingListController struct {
	listRepository   *repository.ShoppingListRepository
	recipeRepository *repository.RecipeRepository
}

// NewShoppingListController creates and returns a new ShoppingListController.
func NewShoppingListController(listRepository *repository.ShoppingListRepository, recipeRepository *repository.RecipeRepository) ShoppingListController {
	return &shoppingListController{
		listRepository:   listRepository,
		recipeRepository: recipeRepository,
	}
}

// AddRecipe puts the recipe on the user's list, creating the list on first
// use. Adding is idempotent-rejecting: a recipe already on the list is a
// Conflict, whether detected here or by the unique index under a race.
func (c *shoppingListController) AddRecipe(ctx context.Context, userID, recipeID uint) (*entity.RecipeSummary, error) {
	recipe, err := c.recipeRepository.GetRecipeByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	err = c.listRepository.AddRecipe(ctx, userID, recipeID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("recipe already in list: %w", entity.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return mapper.RecipeModelToSummary(recipe), nil
}

// RemoveRecipe takes the recipe off the user's list. Removing an absent entry
// is an error, not a no-op.
func (c *shoppingListController) RemoveRecipe(ctx context.Context, userID, recipeID uint) error {
	_, err := c.recipeRepository.GetRecipeByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return err
	}
	deleted, err := c.listRepository.RemoveRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("recipe is %w in your shopping list", entity.ErrAbsentEdge)
	}
	return nil
}

// Export walks every recipe on the user's list, expands each into its line
// items and folds them into summary rows. A user with no list row gets
// NotFound, never an empty document.
func (c *shoppingListController) Export(ctx context.Context, userID uint) ([]entity.SummaryRow, error) {
	list, err := c.listRepository.GetListByOwner(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("shopping list %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	recipes, err := c.listRepository.GetListRecipes(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	agg := newSummaryAggregator()
	for _, recipe := range recipes {
		items, err := c.recipeRepository.GetLineItems(ctx, recipe.ID)
		if err != nil {
			return nil, err
		}
		agg.addAll(items)
	}
	return agg.rows(), nil
}

// summaryKey is the semantic grouping key for the merge: two distinct catalog
// rows with the same name and unit fold into one summary row. Grouping by
// ingredient id would show "flour" twice whenever the imported catalog holds
// duplicate rows.
type summaryKey struct {
	name string
	unit string
}

// summaryAggregator folds line items into summary rows, preserving the order
// in which each (name, unit) group was first seen.
type summaryAggregator struct {
	totals map[summaryKey]int
	order  []summaryKey
}

func newSummaryAggregator() *summaryAggregator {
	return &summaryAggregator{totals: make(map[summaryKey]int)}
}

func (a *summaryAggregator) addAll(items []model.RecipeIngredient) {
	for _, item := range items {
		key := summaryKey{name: item.Ingredient.Name, unit: item.Ingredient.MeasurementUnit}
		if _, seen := a.totals[key]; !seen {
			a.order = append(a.order, key)
		}
		a.totals[key] += item.Amount
	}
}

func (a *summaryAggregator) rows() []entity.SummaryRow {
	rows := make([]entity.SummaryRow, 0, len(a.order))
	for _, key := range a.order {
		rows = append(rows, entity.SummaryRow{
			Name:            key.name,
			MeasurementUnit: key.unit,
			Amount:          a.totals[key],
		})
	}
	return rows
}
