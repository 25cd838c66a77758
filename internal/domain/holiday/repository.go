package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	// GetByDate retrieves the holiday on a date. Returns nil when the date
	// is not a holiday.
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)

	// ListByRange retrieves holidays with dates in [start, end] inclusive
	ListByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// Upsert creates or replaces the holiday on a date
	Upsert(ctx context.Context, h Holiday) (Holiday, error)

	// Delete removes the holiday on a date
	Delete(ctx context.Context, date time.Time) error
}
