package repository

import (
	"context"
	"errors"

	"recipehub/model"

	"gorm.io/gorm"
)

// UserRepository holds the database connection for user rows.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user. A duplicate email or username surfaces as
// gorm.ErrDuplicatedKey.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// GetUserByID fetches a user by primary key.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameTaken reports whether a user with the given username exists.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// EmailTaken reports whether a user with the given email exists.
func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ListUsers returns users ordered newest first.
func (r *UserRepository) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Order("id DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hash []byte) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Update("password", hash).Error
}

// DeleteUser removes a user together with every dependent row in a single
// transaction: recipes (with their own dependents), favorites, shopping list,
// subscription edges in both directions.
func (r *UserRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeIDs []uint
		if err := tx.Model(&model.Recipe{}).Where("author_id = ?", id).
			Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		if len(recipeIDs) > 0 {
			if err := deleteRecipeDependents(tx, recipeIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recipeIDs).Delete(&model.Recipe{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		var list model.ShoppingList
		if err := tx.Where("owner_id = ?", id).First(&list).Error; err == nil {
			if err := tx.Where("shopping_list_id = ?", list.ID).
				Delete(&model.RecipeShoppingList{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&list).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Where("subscriber_id = ? OR subscribed_to_id = ?", id, id).
			Delete(&model.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
