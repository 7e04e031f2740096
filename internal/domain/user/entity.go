package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR admin - full access
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user has admin access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve attendance and leave requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
