package auth

// TokenResponse is returned after a completed OAuth login.
type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"` // delivered via HttpOnly cookie only
	RefreshTokenExpiresIn int64  `json:"-"`
}

// AccessTokenResponse is returned by the refresh endpoint.
type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

// UserResponse is the "who am I" record for the application shell.
type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	Role        string  `json:"role"`
}

// RefreshTokenRequest is the JSON fallback when no cookie is present.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}
