package auth

import "context"

type AuthService interface {
	// Login verifies the credentials and issues an access/refresh token
	// pair carrying the user's id and role.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
