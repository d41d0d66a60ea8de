package user

import "context"

// Repository defines data access for user profiles.
type Repository interface {
	// GetByID retrieves a profile by its ID
	GetByID(ctx context.Context, id string) (Profile, error)

	// GetByEmail retrieves a profile by email, used for login
	GetByEmail(ctx context.Context, email string) (Profile, error)
}
