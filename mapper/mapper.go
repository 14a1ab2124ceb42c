package mapper

import (
	"recipehub/entity"
	"recipehub/model"
)

// One named conversion function per output shape. The calling context picks
// the shape; nothing here inspects types at runtime.

// UserModelToEntity maps a User model to its outward entity. isSubscribed is
// relative to the requesting user and supplied by the caller.
func UserModelToEntity(m *model.User, isSubscribed bool) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		IsSubscribed: isSubscribed,
		CreatedAt:    m.CreatedAt,
	}
}

// TagModelToEntity maps a Tag model to the corresponding entity.
func TagModelToEntity(m *model.Tag) *entity.Tag {
	return &entity.Tag{
		ID:    m.ID,
		Name:  m.Name,
		Color: m.Color,
		Slug:  m.Slug,
	}
}

// IngredientModelToEntity maps an Ingredient model to the corresponding entity.
func IngredientModelToEntity(m *model.Ingredient) *entity.Ingredient {
	return &entity.Ingredient{
		ID:              m.ID,
		Name:            m.Name,
		MeasurementUnit: m.MeasurementUnit,
	}
}

// RecipeModelToSummary maps a Recipe model to the lightweight summary shape
// used by the favorite, shopping-cart and subscription endpoints.
func RecipeModelToSummary(m *model.Recipe) *entity.RecipeSummary {
	return &entity.RecipeSummary{
		ID:          m.ID,
		Name:        m.Name,
		Image:       m.Image,
		CookingTime: m.CookingTime,
	}
}

// LineItemModelToEntity flattens a RecipeIngredient row together with its
// preloaded Ingredient into one line-item shape.
func LineItemModelToEntity(m *model.RecipeIngredient) *entity.LineItem {
	return &entity.LineItem{
		ID:              m.IngredientID,
		Name:            m.Ingredient.Name,
		MeasurementUnit: m.Ingredient.MeasurementUnit,
		Amount:          m.Amount,
	}
}

// RecipeModelToDetail assembles the full recipe detail view from the recipe
// row and its caller-resolved associations and membership flags.
func RecipeModelToDetail(m *model.Recipe, author *entity.User, tags []entity.Tag, items []entity.LineItem, favorited, inCart bool) *entity.Recipe {
	return &entity.Recipe{
		ID:               m.ID,
		Tags:             tags,
		Author:           *author,
		Ingredients:      items,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             m.Name,
		Image:            m.Image,
		Text:             m.Text,
		CookingTime:      m.CookingTime,
	}
}
