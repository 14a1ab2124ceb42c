package controller

import (
	"context"
	"errors"
	"fmt"

	"recipehub/entity"
	"recipehub/mapper"
	"recipehub/model"
	"recipehub/repository"
	"recipehub/util"

	"gorm.io/gorm"
)

// ErrNotAuthor guards author-only recipe mutations.
var ErrNotAuthor = errors.New("only the author can modify this recipe")

// RecipeController manages recipes with their tag sets and line items.
type RecipeController interface {
	CreateRecipe(ctx context.Context, authorID uint, req *entity.RecipeRequest) (*entity.Recipe, error)
	GetRecipe(ctx context.Context, id, viewerID uint) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, viewerID uint, tagSlugs []string, limit, offset int) ([]entity.Recipe, error)
	UpdateRecipe(ctx context.Context, id, requesterID uint, req *entity.RecipeRequest) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, id, requesterID uint) error
}

type recipeController struct {
	recipeRepository       *repository.RecipeRepository
	tagRepository          *repository.TagRepository
	ingredientRepository   *repository.IngredientRepository
	userRepository         *repository.UserRepository
	favoriteRepository     *repository.FavoriteRepository
	listRepository         *repository.ShoppingListRepository
	subscriptionRepository *repository.SubscriptionRepository
	mediaDir               string
}

// NewRecipeController creates and returns a new RecipeController. mediaDir is
// where base64 image uploads are persisted.
func NewRecipeController(
	recipeRepository *repository.RecipeRepository,
	tagRepository *repository.TagRepository,
	ingredientRepository *repository.IngredientRepository,
	userRepository *repository.UserRepository,
	favoriteRepository *repository.FavoriteRepository,
	listRepository *repository.ShoppingListRepository,
	subscriptionRepository *repository.SubscriptionRepository,
	mediaDir string,
) RecipeController {
	return &recipeController{
		recipeRepository:       recipeRepository,
		tagRepository:          tagRepository,
		ingredientRepository:   ingredientRepository,
		userRepository:         userRepository,
		favoriteRepository:     favoriteRepository,
		listRepository:         listRepository,
		subscriptionRepository: subscriptionRepository,
		mediaDir:               mediaDir,
	}
}

// validateRecipeRequest rejects malformed submissions before any persistence:
// empty tag/ingredient lists, duplicate references within one submission,
// non-positive cooking time or amounts.
func validateRecipeRequest(req *entity.RecipeRequest) error {
	if len(req.Tags) == 0 {
		return entity.NewValidationError("tags", "required field")
	}
	if len(req.Ingredients) == 0 {
		return entity.NewValidationError("ingredients", "required field")
	}
	if req.CookingTime < 1 {
		return entity.NewValidationError("cooking_time", "must be at least 1")
	}
	seenTags := make(map[uint]struct{}, len(req.Tags))
	for _, id := range req.Tags {
		if _, dup := seenTags[id]; dup {
			return entity.NewValidationError("tags", "duplicate tag in submission")
		}
		seenTags[id] = struct{}{}
	}
	seenIngredients := make(map[uint]struct{}, len(req.Ingredients))
	for _, item := range req.Ingredients {
		if item.Amount < 1 {
			return entity.NewValidationError("ingredients", "amount must be at least 1")
		}
		if _, dup := seenIngredients[item.ID]; dup {
			return entity.NewValidationError("ingredients", "duplicate ingredient in submission")
		}
		seenIngredients[item.ID] = struct{}{}
	}
	return nil
}

// resolveReferences checks that every referenced tag and ingredient exists.
func (c *recipeController) resolveReferences(ctx context.Context, req *entity.RecipeRequest) error {
	tags, err := c.tagRepository.GetTagsByIDs(ctx, req.Tags)
	if err != nil {
		return err
	}
	if len(tags) != len(req.Tags) {
		return fmt.Errorf("tag %w", entity.ErrNotFound)
	}
	ids := make([]uint, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ids = append(ids, item.ID)
	}
	ingredients, err := c.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(ingredients) != len(ids) {
		return fmt.Errorf("ingredient %w", entity.ErrNotFound)
	}
	return nil
}

func lineItemModels(req *entity.RecipeRequest) []model.RecipeIngredient {
	items := make([]model.RecipeIngredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		items = append(items, model.RecipeIngredient{IngredientID: item.ID, Amount: item.Amount})
	}
	return items
}

// CreateRecipe validates, persists the image, and writes the recipe with its
// associations in one transaction.
func (c *recipeController) CreateRecipe(ctx context.Context, authorID uint, req *entity.RecipeRequest) (*entity.Recipe, error) {
	if err := validateRecipeRequest(req); err != nil {
		return nil, err
	}
	if req.Image == "" {
		return nil, entity.NewValidationError("image", "required field")
	}
	if err := c.resolveReferences(ctx, req); err != nil {
		return nil, err
	}
	imagePath, err := util.SaveBase64Image(req.Image, c.mediaDir)
	if err != nil {
		return nil, entity.NewValidationError("image", err.Error())
	}
	recipe := &model.Recipe{
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		AuthorID:    authorID,
	}
	if err := c.recipeRepository.CreateRecipe(ctx, recipe, req.Tags, lineItemModels(req)); err != nil {
		return nil, err
	}
	return c.GetRecipe(ctx, recipe.ID, authorID)
}

// GetRecipe assembles the detail view with viewer-relative membership flags.
func (c *recipeController) GetRecipe(ctx context.Context, id, viewerID uint) (*entity.Recipe, error) {
	recipe, err := c.recipeRepository.GetRecipeByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c.buildDetail(ctx, recipe, viewerID)
}

// ListRecipes returns detail views newest first, optionally filtered by tag
// slugs.
func (c *recipeController) ListRecipes(ctx context.Context, viewerID uint, tagSlugs []string, limit, offset int) ([]entity.Recipe, error) {
	recipes, err := c.recipeRepository.ListRecipes(ctx, tagSlugs, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Recipe, 0, len(recipes))
	for i := range recipes {
		detail, err := c.buildDetail(ctx, &recipes[i], viewerID)
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}

// UpdateRecipe is author-only and replaces the tag and line-item sets.
func (c *recipeController) UpdateRecipe(ctx context.Context, id, requesterID uint, req *entity.RecipeRequest) (*entity.Recipe, error) {
	recipe, err := c.recipeRepository.GetRecipeByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}
	if err := validateRecipeRequest(req); err != nil {
		return nil, err
	}
	if err := c.resolveReferences(ctx, req); err != nil {
		return nil, err
	}
	imagePath := recipe.Image
	if req.Image != "" {
		imagePath, err = util.SaveBase64Image(req.Image, c.mediaDir)
		if err != nil {
			return nil, entity.NewValidationError("image", err.Error())
		}
	}
	updated := &model.Recipe{
		ID:          id,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		AuthorID:    recipe.AuthorID,
	}
	if err := c.recipeRepository.UpdateRecipe(ctx, updated, req.Tags, lineItemModels(req)); err != nil {
		return nil, err
	}
	return c.GetRecipe(ctx, id, requesterID)
}

// DeleteRecipe is author-only and removes all dependent rows with the recipe.
func (c *recipeController) DeleteRecipe(ctx context.Context, id, requesterID uint) error {
	recipe, err := c.recipeRepository.GetRecipeByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("recipe %w", entity.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if recipe.AuthorID != requesterID {
		return ErrNotAuthor
	}
	return c.recipeRepository.DeleteRecipe(ctx, id)
}

func (c *recipeController) buildDetail(ctx context.Context, recipe *model.Recipe, viewerID uint) (*entity.Recipe, error) {
	author, err := c.userRepository.GetUserByID(ctx, recipe.AuthorID)
	if err != nil {
		return nil, err
	}
	tags, err := c.recipeRepository.GetRecipeTags(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	items, err := c.recipeRepository.GetLineItems(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	tagEntities := make([]entity.Tag, 0, len(tags))
	for i := range tags {
		tagEntities = append(tagEntities, *mapper.TagModelToEntity(&tags[i]))
	}
	itemEntities := make([]entity.LineItem, 0, len(items))
	for i := range items {
		itemEntities = append(itemEntities, *mapper.LineItemModelToEntity(&items[i]))
	}

	favorited := false
	inCart := false
	followsAuthor := false
	if viewerID != 0 {
		if favorited, err = c.favoriteRepository.IsFavorited(ctx, viewerID, recipe.ID); err != nil {
			return nil, err
		}
		if inCart, err = c.listRepository.IsInCart(ctx, viewerID, recipe.ID); err != nil {
			return nil, err
		}
		if viewerID != recipe.AuthorID {
			if followsAuthor, err = c.subscriptionRepository.IsSubscribed(ctx, viewerID, recipe.AuthorID); err != nil {
				return nil, err
			}
		}
	}
	return mapper.RecipeModelToDetail(recipe, mapper.UserModelToEntity(author, followsAuthor), tagEntities, itemEntities, favorited, inCart), nil
}
