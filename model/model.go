package model

import "time"

// User is an account row. Email and username are unique at the schema level;
// the reserved-username check lives in the controller layer.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"size:150;not null" json:"first_name"`
	LastName  string    `gorm:"size:150;not null" json:"last_name"`
	Password  []byte    `gorm:"not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Tag is a recipe label. Name, color and slug are all unique.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:7;uniqueIndex;not null" json:"color"`
	Slug  string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
}

// Ingredient is a catalog row. Name is intentionally NOT unique: catalog
// imports may introduce duplicate rows, which is why the shopping-list export
// groups by (name, measurement_unit) rather than by id.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:200;not null;index" json:"name"`
	MeasurementUnit string `gorm:"size:200;not null" json:"measurement_unit"`
}

// Recipe is owned by its author and cascade-deleted with them.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Image       string    `gorm:"size:255" json:"image"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CookingTime int       `gorm:"not null" json:"cooking_time"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeTag is the recipe/tag join row, unique per pair.
type RecipeTag struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_recipe_tag" json:"recipe_id"`
	TagID    uint `gorm:"not null;uniqueIndex:idx_recipe_tag" json:"tag_id"`

	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Tag    Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeIngredient attaches an amount to one (recipe, ingredient) pair.
// Duplicate ingredient references within one recipe are rejected at the
// input-validation layer, not by a storage constraint.
type RecipeIngredient struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RecipeID     uint `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint `gorm:"not null;index" json:"ingredient_id"`
	Amount       int  `gorm:"not null" json:"amount"`

	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient"`
}

// Favorite marks a recipe as favorited by a user, unique per pair.
type Favorite struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// ShoppingList is the per-user list head, created lazily on the first cart
// mutation. The unique index on OwnerID backs the fetch-or-insert path.
type ShoppingList struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"not null;uniqueIndex" json:"owner_id"`

	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeShoppingList is the list/recipe membership edge, unique per pair.
type RecipeShoppingList struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ShoppingListID uint `gorm:"not null;uniqueIndex:idx_list_recipe" json:"shopping_list_id"`
	RecipeID       uint `gorm:"not null;uniqueIndex:idx_list_recipe" json:"recipe_id"`

	ShoppingList ShoppingList `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe       Recipe       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Subscription is a directed follow edge. The ordered pair is unique and
// self-subscription is rejected before this row is ever written.
type Subscription struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SubscriberID   uint      `gorm:"not null;uniqueIndex:idx_subscription_pair" json:"subscriber_id"`
	SubscribedToID uint      `gorm:"not null;uniqueIndex:idx_subscription_pair" json:"subscribed_to_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Subscriber   User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	SubscribedTo User `gorm:"foreignKey:SubscribedToID;constraint:OnDelete:CASCADE" json:"-"`
}
