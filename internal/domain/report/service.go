package report

import "context"

// ReportService builds the weekly attendance view and latecomer reports
// from work logs, leave schedules, and the holiday calendar.
type ReportService interface {
	// WeeklyReport builds the per-user weekly table and that week's
	// latecomer entries for one ISO week.
	WeeklyReport(ctx context.Context, req WeeklyReportRequest) (WeeklyReportResponse, error)

	// MonthlyLatecomers merges the latecomer reports of every week
	// intersecting the month, keeping only dates inside it.
	MonthlyLatecomers(ctx context.Context, req MonthlyReportRequest) (MonthlyLatecomerResponse, error)
}
