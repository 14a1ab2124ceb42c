package repository

import (
	"context"

	"recipehub/model"

	"gorm.io/gorm"
)

// RecipeRepository holds the database connection for recipes and their
// tag/ingredient associations.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates and returns a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

// CreateRecipe inserts the recipe together with its tag edges and line items
// in one transaction.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *model.Recipe, tagIDs []uint, items []model.RecipeIngredient) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&model.RecipeTag{RecipeID: recipe.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		for i := range items {
			items[i].RecipeID = recipe.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipe overwrites the recipe's own fields and replaces its tag and
// line-item sets in one transaction.
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe *model.Recipe, tagIDs []uint, items []model.RecipeIngredient) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Recipe{}).Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"name":         recipe.Name,
				"image":        recipe.Image,
				"text":         recipe.Text,
				"cooking_time": recipe.CookingTime,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&model.RecipeTag{RecipeID: recipe.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		for i := range items {
			items[i].ID = 0
			items[i].RecipeID = recipe.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetRecipeByID fetches a recipe by primary key.
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.DB.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns recipes newest first, optionally filtered by tag slugs.
func (r *RecipeRepository) ListRecipes(ctx context.Context, tagSlugs []string, limit, offset int) ([]model.Recipe, error) {
	q := r.DB.WithContext(ctx).Model(&model.Recipe{}).Order("recipes.id DESC")
	if len(tagSlugs) > 0 {
		q = q.Distinct("recipes.*").
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", tagSlugs)
	}
	var recipes []model.Recipe
	err := q.Limit(limit).Offset(offset).Find(&recipes).Error
	return recipes, err
}

// ListByAuthor returns the author's recipes newest first.
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]model.Recipe, error) {
	q := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []model.Recipe
	err := q.Find(&recipes).Error
	return recipes, err
}

// CountByAuthor returns how many recipes the author has published.
func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetLineItems returns the recipe's line items with their ingredients
// preloaded, in insertion order.
func (r *RecipeRepository) GetLineItems(ctx context.Context, recipeID uint) ([]model.RecipeIngredient, error) {
	var items []model.RecipeIngredient
	err := r.DB.WithContext(ctx).Preload("Ingredient").
		Where("recipe_id = ?", recipeID).Order("id ASC").Find(&items).Error
	return items, err
}

// GetRecipeTags returns the tags attached to a recipe.
func (r *RecipeRepository) GetRecipeTags(ctx context.Context, recipeID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.WithContext(ctx).
		Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
		Where("recipe_tags.recipe_id = ?", recipeID).Order("tags.id ASC").Find(&tags).Error
	return tags, err
}

// DeleteRecipe removes the recipe and every dependent row (tag edges, line
// items, favorites, shopping-list entries) in a single transaction.
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteRecipeDependents(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
}

// deleteRecipeDependents removes every row referencing the given recipes.
// Shared with UserRepository.DeleteUser, which cascades through recipes.
func deleteRecipeDependents(tx *gorm.DB, recipeIDs []uint) error {
	if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&model.RecipeTag{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	return tx.Where("recipe_id IN ?", recipeIDs).Delete(&model.RecipeShoppingList{}).Error
}
