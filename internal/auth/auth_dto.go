package auth

import "go-storefront-api/internal/cart"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// AuthResponse carries the server cart alongside the token so a logging-in
// client can overwrite its local mirror in one round trip.
type AuthResponse struct {
	Token string            `json:"token"`
	User  UserResponse      `json:"user"`
	Cart  cart.CartResponse `json:"cart"`
}
