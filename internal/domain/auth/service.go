package auth

import "context"

type AuthService interface {
	// LoginWithGoogle upserts the user identified by the verified Google
	// account and issues a token pair.
	LoginWithGoogle(ctx context.Context, email string, googleID string, emailVerified bool) (TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, refreshToken string) (AccessTokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser resolves the authenticated user from the request claims.
	CurrentUser(ctx context.Context) (UserResponse, error)
}
