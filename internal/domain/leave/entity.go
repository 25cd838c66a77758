package leave

import "time"

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "pending"
	ScheduleStatusApproved  ScheduleStatus = "approved"
	ScheduleStatusRejected  ScheduleStatus = "rejected"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// SuppressesLateness reports whether a schedule in this status excuses a
// late or missing check-in on its covered dates. Only pending and approved
// schedules do; rejected and cancelled ones are ignored by the aggregator.
func (s ScheduleStatus) SuppressesLateness() bool {
	return s == ScheduleStatusPending || s == ScheduleStatusApproved
}

// LeaveSchedule is an approved or pending absence spanning the inclusive
// date range [StartDate, EndDate].
type LeaveSchedule struct {
	ID              string
	UserID          string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          ScheduleStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join field for responses
	UserName *string
}

// Covers reports whether date falls inside [StartDate, EndDate].
// Comparison is by calendar date; time components are ignored.
func (l *LeaveSchedule) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
