package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAdmin   UserRole = "ADMIN"
)

// User represents an authenticated account. Identity comes from the
// university SSO provider; Subject is the provider's stable identifier.
type User struct {
	ID        string
	Subject   string
	Email     string
	Name      string
	Picture   string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user can perform moderation actions.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
