package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/user"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, display_name, role, oauth_provider, oauth_provider_id,
			   created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.Role,
		&u.OAuthProvider, &u.OAuthProviderID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// UpsertByEmail implements user.UserRepository.
func (r *userRepositoryImpl) UpsertByEmail(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, display_name, role, oauth_provider, oauth_provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET
			oauth_provider = EXCLUDED.oauth_provider,
			oauth_provider_id = EXCLUDED.oauth_provider_id,
			updated_at = NOW()
		RETURNING id, email, display_name, role, oauth_provider, oauth_provider_id,
				  created_at, updated_at
	`

	var saved user.User
	err := q.QueryRow(ctx, query,
		u.ID, u.Email, u.DisplayName, u.Role, u.OAuthProvider, u.OAuthProviderID,
	).Scan(
		&saved.ID, &saved.Email, &saved.DisplayName, &saved.Role,
		&saved.OAuthProvider, &saved.OAuthProviderID,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to upsert user by email: %w", err)
	}

	return saved, nil
}
