package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues access + refresh tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Me resolves the profile of the authenticated user from JWT claims
	Me(ctx context.Context) (ProfileResponse, error)
}
