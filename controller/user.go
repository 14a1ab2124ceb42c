package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipehub/entity"
	"recipehub/mapper"
	"recipehub/model"
	"recipehub/repository"
	"recipehub/util"

	"gorm.io/gorm"
)

// Usernames that collide with fixed endpoint path segments.
var reservedUsernames = map[string]struct{}{
	"me":            {},
	"set_password":  {},
	"subscribe":     {},
	"subscriptions": {},
}

// UserController manages accounts.
type UserController interface {
	CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error)
	GetUser(ctx context.Context, id, viewerID uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, viewerID uint, limit, offset int) ([]entity.User, error)
	SetPassword(ctx context.Context, userID uint, current, newPassword string) error
	DeleteUser(ctx context.Context, id uint) error
}

type userController struct {
	userRepository         *repository.UserRepository
	subscriptionRepository *repository.SubscriptionRepository
}

// NewUserController creates and returns a new UserController.
func NewUserController(userRepository *repository.UserRepository, subscriptionRepository *repository.SubscriptionRepository) UserController {
	return &userController{
		userRepository:         userRepository,
		subscriptionRepository: subscriptionRepository,
	}
}

// CreateUser registers an account. Reserved usernames are rejected before any
// storage I/O; the unique indexes on email and username back the pre-checks
// under concurrent registration.
func (c *userController) CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error) {
	if _, reserved := reservedUsernames[strings.ToLower(req.Username)]; reserved {
		return nil, entity.NewValidationError("username", "this username is not allowed")
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		return nil, entity.NewValidationError("password", err.Error())
	}
	if taken, err := c.userRepository.EmailTaken(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("email %w", entity.ErrConflict)
	}
	if taken, err := c.userRepository.UsernameTaken(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, fmt.Errorf("username %w", entity.ErrConflict)
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
	}
	err = c.userRepository.CreateUser(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent registration.
		return nil, fmt.Errorf("email or username %w", entity.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return mapper.UserModelToEntity(user, false), nil
}

// GetUser fetches a user; is_subscribed is computed relative to the viewer.
func (c *userController) GetUser(ctx context.Context, id, viewerID uint) (*entity.User, error) {
	user, err := c.userRepository.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	subscribed := false
	if viewerID != 0 && viewerID != id {
		subscribed, err = c.subscriptionRepository.IsSubscribed(ctx, viewerID, id)
		if err != nil {
			return nil, err
		}
	}
	return mapper.UserModelToEntity(user, subscribed), nil
}

// GetUserByEmail returns the raw model so the auth service can verify the
// password hash.
func (c *userController) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := c.userRepository.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %w", entity.ErrNotFound)
	}
	return user, err
}

// ListUsers returns users newest first with viewer-relative is_subscribed.
func (c *userController) ListUsers(ctx context.Context, viewerID uint, limit, offset int) ([]entity.User, error) {
	users, err := c.userRepository.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(users))
	for i := range users {
		subscribed := false
		if viewerID != 0 && viewerID != users[i].ID {
			subscribed, err = c.subscriptionRepository.IsSubscribed(ctx, viewerID, users[i].ID)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, *mapper.UserModelToEntity(&users[i], subscribed))
	}
	return out, nil
}

// SetPassword verifies the current password before storing the new hash.
func (c *userController) SetPassword(ctx context.Context, userID uint, current, newPassword string) error {
	user, err := c.userRepository.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %w", entity.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if !util.CheckPasswordHash(current, user.Password) {
		return entity.NewValidationError("current_password", "wrong password")
	}
	if err := util.ValidatePassword(newPassword); err != nil {
		return entity.NewValidationError("new_password", err.Error())
	}
	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return c.userRepository.UpdatePassword(ctx, userID, hash)
}

// DeleteUser removes the account and all dependent rows.
func (c *userController) DeleteUser(ctx context.Context, id uint) error {
	if _, err := c.userRepository.GetUserByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %w", entity.ErrNotFound)
	} else if err != nil {
		return err
	}
	return c.userRepository.DeleteUser(ctx, id)
}
