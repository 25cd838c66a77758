package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByDepartment retrieves all users in a department, ordered by name.
	// An empty department returns every user.
	ListByDepartment(ctx context.Context, department string) ([]User, error)

	// ListDepartments retrieves the distinct department names
	ListDepartments(ctx context.Context) ([]string, error)

	// LinkGoogleAccount attaches a Google OAuth identity to an existing user
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
