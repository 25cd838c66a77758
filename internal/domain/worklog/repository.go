package worklog

import (
	"context"
	"time"
)

// WorkLogRepository defines data access methods for daily work records.
type WorkLogRepository interface {
	// Create creates a new work record
	Create(ctx context.Context, record DailyWorkRecord) (DailyWorkRecord, error)

	// GetByID retrieves a work record by ID
	GetByID(ctx context.Context, id string) (DailyWorkRecord, error)

	// GetByUserAndDate retrieves the record for a user on a specific date.
	// Used to prevent double check-in. Returns nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*DailyWorkRecord, error)

	// Update updates an existing work record
	Update(ctx context.Context, record DailyWorkRecord) error

	// ListByDateRange retrieves all records with [start, end] dates inclusive,
	// optionally scoped to one department, ordered by user name then date.
	ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]DailyWorkRecord, error)

	// ListOpenSessions retrieves records with a check-in but no check-out
	// dated strictly before the given date. Used by the nightly close job.
	ListOpenSessions(ctx context.Context, before time.Time) ([]DailyWorkRecord, error)
}
