package auth

import (
	"context"
)

// AuthService defines authentication business logic
type AuthService interface {
	// Register creates a user account linked to an existing employee
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle completes the OAuth code exchange and issues tokens
	LoginWithGoogle(ctx context.Context, code string, session SessionTrackingRequest) (TokenResponse, error)

	// Refresh rotates a refresh token into a new token pair
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the authenticated user's profile
	Me(ctx context.Context) (MeResponse, error)
}

// RefreshTokenRepository persists issued refresh tokens for revocation.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt int64, ipAddress, userAgent string) error
	IsValid(ctx context.Context, token string) (string, error) // returns userID
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
