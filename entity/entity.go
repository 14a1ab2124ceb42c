package entity

import "time"

// User is the outward representation of an account. Password is accepted on
// registration only and never serialized back.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Password     string    `json:"-"`
	IsSubscribed bool      `json:"is_subscribed"`
	CreatedAt    time.Time `json:"-"`
}

// Tag is a recipe label with a fixed display color.
type Tag struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// Ingredient is a catalog row. Names are not unique across the catalog;
// imported data may carry near-duplicates.
type Ingredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// LineItem is one (ingredient, amount) entry of a recipe, flattened with the
// ingredient's display fields.
type LineItem struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Recipe is the detail view of a recipe.
type Recipe struct {
	ID               uint       `json:"id"`
	Tags             []Tag      `json:"tags"`
	Author           User       `json:"author"`
	Ingredients      []LineItem `json:"ingredients"`
	IsFavorited      bool       `json:"is_favorited"`
	IsInShoppingCart bool       `json:"is_in_shopping_cart"`
	Name             string     `json:"name"`
	Image            string     `json:"image"`
	Text             string     `json:"text"`
	CookingTime      int        `json:"cooking_time"`
}

// RecipeSummary is the lightweight recipe shape returned by the favorite and
// shopping-cart endpoints and embedded in subscription bodies.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// SummaryRow is one merged line of the exported shopping list: all line items
// sharing (Name, MeasurementUnit) folded together with their amounts summed.
type SummaryRow struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// SubscriptionEntry is one followee in the current user's subscription list.
type SubscriptionEntry struct {
	User
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int             `json:"recipes_count"`
}
