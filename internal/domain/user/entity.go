package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Sees the staff roster dashboard
	RoleEmployee Role = "employee" // Enters their own shifts
)

type User struct {
	ID              string
	Email           string
	DisplayName     *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsManager checks if the user may view the staff roster.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
