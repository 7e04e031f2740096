package user

import (
	"context"
)

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuth(ctx context.Context, provider, providerID string) (User, error)
	Update(ctx context.Context, u User) error

	// GetAdmins retrieves all admin users, for notification fan-out.
	GetAdmins(ctx context.Context) ([]User, error)
}
