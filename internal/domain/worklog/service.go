package worklog

import "context"

// WorkLogService defines business logic for work record operations
type WorkLogService interface {
	// ClockIn records the authenticated user's check-in for today
	ClockIn(ctx context.Context, req ClockInRequest) (WorkRecordResponse, error)

	// ClockOut closes the authenticated user's open session
	ClockOut(ctx context.Context, req ClockOutRequest) (WorkRecordResponse, error)

	// ListWeek retrieves all work records for one ISO week
	ListWeek(ctx context.Context, filter WeeklyFilter) ([]WorkRecordResponse, error)

	// UpdateWorkRecord fixes clock data on a record (admin)
	UpdateWorkRecord(ctx context.Context, req UpdateWorkRecordRequest) (WorkRecordResponse, error)
}
