package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access methods for overtime requests.
type OvertimeRepository interface {
	// Create creates a new overtime request in pending status
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)

	// GetByID retrieves an overtime request by ID
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)

	// Update updates an existing overtime request
	Update(ctx context.Context, req OvertimeRequest) error

	// ListByMonth retrieves requests dated within [monthStart, monthEnd],
	// optionally filtered by user and status, ordered by date.
	ListByMonth(ctx context.Context, monthStart, monthEnd time.Time, userID, status *string) ([]OvertimeRequest, error)
}
