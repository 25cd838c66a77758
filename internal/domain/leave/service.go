package leave

import "context"

// LeaveScheduleService defines business logic for leave schedule operations
type LeaveScheduleService interface {
	// CreateSchedule submits a new leave schedule for the authenticated user
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// ListMySchedules retrieves the authenticated user's schedules for a month
	ListMySchedules(ctx context.Context, year, month int) ([]ScheduleResponse, error)

	// ListPending retrieves schedules awaiting a decision (manager/admin)
	ListPending(ctx context.Context) ([]ScheduleResponse, error)

	// ApproveSchedule approves a pending schedule (manager/admin)
	ApproveSchedule(ctx context.Context, id string) (ScheduleResponse, error)

	// RejectSchedule rejects a pending schedule with a reason (manager/admin)
	RejectSchedule(ctx context.Context, req RejectScheduleRequest) (ScheduleResponse, error)

	// CancelSchedule cancels the requester's own pending schedule
	CancelSchedule(ctx context.Context, id string) (ScheduleResponse, error)
}
