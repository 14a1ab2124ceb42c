package repository

import (
	"context"

	"recipehub/model"

	"gorm.io/gorm"
)

// FavoriteRepository holds the database connection for favorite edges.
type FavoriteRepository struct {
	DB *gorm.DB
}

// NewFavoriteRepository creates and returns a new FavoriteRepository.
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// CreateFavorite inserts the (user, recipe) edge. A duplicate pair surfaces
// as gorm.ErrDuplicatedKey via the unique index.
func (r *FavoriteRepository) CreateFavorite(ctx context.Context, userID, recipeID uint) error {
	return r.DB.WithContext(ctx).Create(&model.Favorite{UserID: userID, RecipeID: recipeID}).Error
}

// DeleteFavorite removes the edge and reports how many rows were deleted, so
// the caller can distinguish "removed" from "was never there".
func (r *FavoriteRepository) DeleteFavorite(ctx context.Context, userID, recipeID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	return res.RowsAffected, res.Error
}

// IsFavorited reports whether the (user, recipe) edge exists.
func (r *FavoriteRepository) IsFavorited(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}
