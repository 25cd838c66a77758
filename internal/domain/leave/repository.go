package leave

import (
	"context"
	"time"
)

// LeaveScheduleRepository defines data access methods for leave schedules.
type LeaveScheduleRepository interface {
	// Create creates a new leave schedule in pending status
	Create(ctx context.Context, schedule LeaveSchedule) (LeaveSchedule, error)

	// GetByID retrieves a leave schedule by ID
	GetByID(ctx context.Context, id string) (LeaveSchedule, error)

	// Update updates an existing leave schedule
	Update(ctx context.Context, schedule LeaveSchedule) error

	// ListByUserAndMonth retrieves one user's schedules whose date range
	// overlaps the month containing monthStart, ordered by start date.
	ListByUserAndMonth(ctx context.Context, userID string, monthStart time.Time) ([]LeaveSchedule, error)

	// ListPending retrieves all schedules awaiting a decision
	ListPending(ctx context.Context) ([]LeaveSchedule, error)
}
