package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages users and master data
	RoleManager  Role = "manager"  // Can approve overtime and leave, view reports
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Department      string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the role is administrator
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsManager checks if the role is manager or admin
func (r Role) IsManager() bool {
	return r == RoleManager || r == RoleAdmin
}

// CanApprove checks if the role can approve overtime and leave requests
func (r Role) CanApprove() bool {
	return r.IsManager()
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role.IsManager()
}

// CanApprove checks if user can approve overtime and leave requests
func (u *User) CanApprove() bool {
	return u.Role.CanApprove()
}
