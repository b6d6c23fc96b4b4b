package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// UpsertByEmail creates the user on first OAuth login and refreshes
	// the provider link on subsequent logins.
	UpsertByEmail(ctx context.Context, u User) (User, error)
}
