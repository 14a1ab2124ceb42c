package entity

// LoginRequest is the body of POST /auth/token/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SetPasswordRequest is the body of POST /users/set_password.
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LineItemRequest references a catalog ingredient with an amount.
type LineItemRequest struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required"`
}

// RecipeRequest is the body of POST /recipes and PUT /recipes/:id. Image is a
// base64 data URI ("data:image/png;base64,....").
type RecipeRequest struct {
	Name        string            `json:"name" binding:"required"`
	Image       string            `json:"image"`
	Text        string            `json:"text" binding:"required"`
	CookingTime int               `json:"cooking_time" binding:"required"`
	Tags        []uint            `json:"tags"`
	Ingredients []LineItemRequest `json:"ingredients"`
}
