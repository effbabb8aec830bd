// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// JoinUserInput defines the data required to register a new user.
type JoinUserInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// JoinUserOutput returns the newly created user's basic information.
type JoinUserOutput struct {
	UserID int64
	Email  string
}

// TokenOutput returns the access token issued after a successful login.
type TokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	JoinUser(ctx context.Context, input *JoinUserInput) (*JoinUserOutput, error)
	Authenticate(ctx context.Context, input *LoginInput) (*TokenOutput, error)
}
