package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftnote/shiftnote-backend-go/internal/domain/auth"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/user"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

// fakeUserRepository stores users in memory keyed by id and email.
type fakeUserRepository struct {
	byID    map[string]user.User
	byEmail map[string]user.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepository) UpsertByEmail(ctx context.Context, candidate user.User) (user.User, error) {
	if existing, ok := f.byEmail[candidate.Email]; ok {
		existing.OAuthProvider = candidate.OAuthProvider
		existing.OAuthProviderID = candidate.OAuthProviderID
		f.byID[existing.ID] = existing
		f.byEmail[existing.Email] = existing
		return existing, nil
	}
	f.byID[candidate.ID] = candidate
	f.byEmail[candidate.Email] = candidate
	return candidate, nil
}

func newTestAuthService(repo user.UserRepository) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), jwtService
}

func TestLoginWithGoogleCreatesUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	tokens, err := svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", true)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))

	created, ok := repo.byEmail["taro@example.com"]
	require.True(t, ok)
	assert.Equal(t, user.RoleEmployee, created.Role)
	assert.Equal(t, "google", *created.OAuthProvider)
	assert.Equal(t, "google-123", *created.OAuthProviderID)
}

func TestLoginWithGoogleExistingUserKeepsID(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	_, err := svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", true)
	require.NoError(t, err)
	first, ok := repo.byEmail["taro@example.com"]
	require.True(t, ok)

	_, err = svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", true)
	require.NoError(t, err)
	second, ok := repo.byEmail["taro@example.com"]
	require.True(t, ok)

	assert.Equal(t, first.ID, second.ID)
}

func TestLoginWithGoogleUnverifiedEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	_, err := svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", false)
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
	assert.Empty(t, repo.byEmail)
}

func TestRefreshToken(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	tokens, err := svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", true)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	tokens, err := svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", true)
	require.NoError(t, err)

	// An access token carries type "access" and must not refresh.
	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenUnknownUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc, jwtService := newTestAuthService(repo)

	refreshToken, _, err := jwtService.GenerateRefreshToken("ghost-user")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), refreshToken)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestAuthService(repo)

	tokens, err := svc.LoginWithGoogle(context.Background(), "taro@example.com", "google-123", true)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	_, err = svc.RefreshToken(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
