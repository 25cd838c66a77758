package report

import (
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT DTOs
// ========================================

// DayCell is one user's rendered attendance for one calendar date.
type DayCell struct {
	Date         string `json:"date"`
	WorkType     string `json:"work_type"`
	Label        string `json:"label"`
	CheckIn      string `json:"check_in,omitempty"`
	CheckOut     string `json:"check_out,omitempty"`
	TimeRange    string `json:"time_range"`
	Total        string `json:"total"`
	TotalMinutes int    `json:"total_minutes"`
	HolidayName  string `json:"holiday_name,omitempty"`
}

// WeeklyRow is one user's row in the weekly attendance table:
// department, name, weekly total, then Monday through Sunday.
type WeeklyRow struct {
	UserID             string     `json:"user_id"`
	Department         string     `json:"department"`
	Name               string     `json:"name"`
	WeeklyTotal        string     `json:"weekly_total"`
	WeeklyTotalMinutes int        `json:"weekly_total_minutes"`
	Days               [7]DayCell `json:"days"`
}

// LatecomerEntry is a derived record for one late arrival. It is computed
// fresh on every aggregation pass and never persisted.
type LatecomerEntry struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Department   string `json:"department"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out,omitempty"`
	TotalMinutes int    `json:"total_minutes"`
	WorkType     string `json:"work_type"`
}

type WeeklyReportRequest struct {
	Year       int
	Week       int
	Department string
}

func (r *WeeklyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Week < 1 || r.Week > 53 {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week must be between 1 and 53",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyReportRequest struct {
	Year        int
	Month       int
	Departments []string
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeeklyReportResponse is the weekly table plus the week's latecomers.
type WeeklyReportResponse struct {
	Year      int                         `json:"year"`
	Week      int                         `json:"week"`
	WeekStart string                      `json:"week_start"`
	WeekEnd   string                      `json:"week_end"`
	Rows       []WeeklyRow                 `json:"rows"`
	Latecomers map[string][]LatecomerEntry `json:"latecomers"`
}

// MonthlyLatecomerResponse maps date to that date's latecomer entries for
// one calendar month.
type MonthlyLatecomerResponse struct {
	Year       int                         `json:"year"`
	Month      int                         `json:"month"`
	Latecomers map[string][]LatecomerEntry `json:"latecomers"`
}
