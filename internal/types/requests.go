package types

import "github.com/google/uuid"

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	FirstName string `json:"first_name" binding:"max=30"`
	LastName  string `json:"last_name" binding:"max=30"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token together with the user summary.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// UserRequest represents the admin-facing create/update body for users.
type UserRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	PhotoURL  string `json:"photo_url"`
}

// CategoryRequest represents the create/update body for categories.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
	PhotoURL    string `json:"photo_url" binding:"max=255"`
}

// ProductRequest represents the create/update body for catalog products.
type ProductRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// BlogRequest represents the create/update body for blog posts.
type BlogRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	PhotoURL    string    `json:"photo_url"`
	CookingTime *int      `json:"cooking_time"`
	Status      string    `json:"status"`
	AuthorID    uuid.UUID `json:"author_id"`
}

// CommentRequest represents the create/update body for comments. The
// user id is optional on the wire; handlers default it to the caller.
type CommentRequest struct {
	Text     string    `json:"text" binding:"required,max=255"`
	UserID   uuid.UUID `json:"user_id"`
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}

// RatingRequest represents the create/update body for ratings.
type RatingRequest struct {
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	UserID   uuid.UUID `json:"user_id"`
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}
