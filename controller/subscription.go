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

// SubscriptionController manages the directed follow edges between users.
type SubscriptionController interface {
	Subscribe(ctx context.Context, subscriberID, targetID uint) (*entity.SubscriptionEntry, error)
	Unsubscribe(ctx context.Context, subscriberID, targetID uint) error
	IsSubscribed(ctx context.Context, subscriberID, targetID uint) (bool, error)
	ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]entity.SubscriptionEntry, error)
}

type subscriptionController struct {
	subscriptionRepository *repository.SubscriptionRepository
	userRepository         *repository.UserRepository
	recipeRepository       *repository.RecipeRepository
}

// NewSubscriptionController creates and returns a new SubscriptionController.
func NewSubscriptionController(subscriptionRepository *repository.SubscriptionRepository, userRepository *repository.UserRepository, recipeRepository *repository.RecipeRepository) SubscriptionController {
	return &subscriptionController{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		recipeRepository:       recipeRepository,
	}
}

// Subscribe adds the directed edge. Self-subscription is rejected before any
// storage write; a duplicate edge is a Conflict whether caught by the
// existence pre-check or by the unique index under a race.
func (c *subscriptionController) Subscribe(ctx context.Context, subscriberID, targetID uint) (*entity.SubscriptionEntry, error) {
	if subscriberID == targetID {
		return nil, fmt.Errorf("cannot subscribe to yourself: %w", entity.ErrSelfReference)
	}
	target, err := c.userRepository.GetUserByID(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	err = c.subscriptionRepository.CreateSubscription(ctx, subscriberID, targetID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("already subscribed to this user: %w", entity.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return c.buildEntry(ctx, target, true)
}

// Unsubscribe removes the directed edge; removing an absent edge is an error.
func (c *subscriptionController) Unsubscribe(ctx context.Context, subscriberID, targetID uint) error {
	_, err := c.userRepository.GetUserByID(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user %w", entity.ErrNotFound)
	}
	if err != nil {
		return err
	}
	deleted, err := c.subscriptionRepository.DeleteSubscription(ctx, subscriberID, targetID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("you were %w among this user's subscribers", entity.ErrAbsentEdge)
	}
	return nil
}

// IsSubscribed reports whether subscriber follows target. Not symmetric.
func (c *subscriptionController) IsSubscribed(ctx context.Context, subscriberID, targetID uint) (bool, error) {
	return c.subscriptionRepository.IsSubscribed(ctx, subscriberID, targetID)
}

// ListSubscriptions returns the users the subscriber follows, each with their
// recipe summaries and recipe count.
func (c *subscriptionController) ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]entity.SubscriptionEntry, error) {
	users, err := c.subscriptionRepository.ListSubscriptions(ctx, subscriberID, limit, offset)
	if err != nil {
		return nil, err
	}
	entries := make([]entity.SubscriptionEntry, 0, len(users))
	for i := range users {
		entry, err := c.buildEntry(ctx, &users[i], true)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (c *subscriptionController) buildEntry(ctx context.Context, target *model.User, isSubscribed bool) (*entity.SubscriptionEntry, error) {
	recipes, err := c.recipeRepository.ListByAuthor(ctx, target.ID, 0)
	if err != nil {
		return nil, err
	}
	count, err := c.recipeRepository.CountByAuthor(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	summaries := make([]entity.RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, *mapper.RecipeModelToSummary(&recipes[i]))
	}
	return &entity.SubscriptionEntry{
		User:         *mapper.UserModelToEntity(target, isSubscribed),
		Recipes:      summaries,
		RecipesCount: int(count),
	}, nil
}
