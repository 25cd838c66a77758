package holiday

import "context"

// HolidayService defines business logic for the holiday calendar
type HolidayService interface {
	// Lookup returns the holiday name for a date, or nil when it is a workday
	Lookup(ctx context.Context, date string) (*HolidayResponse, error)

	// ListMonth retrieves holidays falling in a calendar month
	ListMonth(ctx context.Context, year, month int) ([]HolidayResponse, error)

	// Upsert creates or replaces a holiday (admin)
	Upsert(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)

	// Delete removes a holiday (admin)
	Delete(ctx context.Context, date string) error
}
