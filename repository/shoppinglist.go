package repository

import (
	"context"
	"errors"

	"recipehub/model"

	"gorm.io/gorm"
)

// ShoppingListRepository holds the database connection for the per-user
// shopping list and its membership edges.
type ShoppingListRepository struct {
	DB *gorm.DB
}

// NewShoppingListRepository creates and returns a new ShoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{DB: db}
}

// GetListByOwner fetches the user's list head. gorm.ErrRecordNotFound means
// the user never added anything.
func (r *ShoppingListRepository) GetListByOwner(ctx context.Context, ownerID uint) (*model.ShoppingList, error) {
	var list model.ShoppingList
	if err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// AddRecipe creates the user's list if absent and inserts the membership edge
// in one transaction. Two concurrent first adds race on the owner unique
// index; the loser re-fetches the winner's row. A duplicate edge surfaces as
// gorm.ErrDuplicatedKey.
func (r *ShoppingListRepository) AddRecipe(ctx context.Context, ownerID, recipeID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := fetchOrInsertList(tx, ownerID)
		if err != nil {
			return err
		}
		return tx.Create(&model.RecipeShoppingList{
			ShoppingListID: list.ID,
			RecipeID:       recipeID,
		}).Error
	})
}

// RemoveRecipe deletes the membership edge and reports how many rows went
// away. A user with no list at all simply deletes zero rows.
func (r *ShoppingListRepository) RemoveRecipe(ctx context.Context, ownerID, recipeID uint) (int64, error) {
	var list model.ShoppingList
	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	res := r.DB.WithContext(ctx).
		Where("shopping_list_id = ? AND recipe_id = ?", list.ID, recipeID).
		Delete(&model.RecipeShoppingList{})
	return res.RowsAffected, res.Error
}

// GetListRecipes returns the recipes on the list in edge insertion order, so
// the exported summary's first-seen row order follows the order recipes were
// added.
func (r *ShoppingListRepository) GetListRecipes(ctx context.Context, listID uint) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Joins("JOIN recipe_shopping_lists ON recipe_shopping_lists.recipe_id = recipes.id").
		Where("recipe_shopping_lists.shopping_list_id = ?", listID).
		Order("recipe_shopping_lists.id ASC").
		Find(&recipes).Error
	return recipes, err
}

// CountEntries returns the list's membership count.
func (r *ShoppingListRepository) CountEntries(ctx context.Context, listID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RecipeShoppingList{}).
		Where("shopping_list_id = ?", listID).Count(&count).Error
	return count, err
}

// IsInCart reports whether the recipe is on the user's list.
func (r *ShoppingListRepository) IsInCart(ctx context.Context, ownerID, recipeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RecipeShoppingList{}).
		Joins("JOIN shopping_lists ON shopping_lists.id = recipe_shopping_lists.shopping_list_id").
		Where("shopping_lists.owner_id = ? AND recipe_shopping_lists.recipe_id = ?", ownerID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// fetchOrInsertList implements get-or-create for the list head inside the
// caller's transaction. The unique index on owner_id guards the race: the
// losing insert is retried as a plain fetch.
func fetchOrInsertList(tx *gorm.DB, ownerID uint) (*model.ShoppingList, error) {
	var list model.ShoppingList
	err := tx.Where("owner_id = ?", ownerID).First(&list).Error
	if err == nil {
		return &list, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	list = model.ShoppingList{OwnerID: ownerID}
	err = tx.Create(&list).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = tx.Where("owner_id = ?", ownerID).First(&list).Error
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}
