package worklog

import (
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
)

// ========================================
// WORK LOG DTOs
// ========================================

type ClockInRequest struct {
	UserID   string `json:"-"`
	WorkType string `json:"work_type"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkType == "" {
		r.WorkType = string(WorkTypeNormal)
	}
	if !WorkType(r.WorkType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is not a known work type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	UserID string `json:"-"`
}

// UpdateWorkRecordRequest lets an admin fix wrong clock data.
// Times are "HH:MM" on the record's own date.
type UpdateWorkRecordRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	WorkType *string `json:"work_type"`
}

func (r *UpdateWorkRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidClockTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be a clock time in HH:MM format",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidClockTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be a clock time in HH:MM format",
			})
		}
	}

	if r.WorkType != nil && !WorkType(*r.WorkType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is not a known work type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeeklyFilter selects one ISO week of work records.
type WeeklyFilter struct {
	Year       int
	Week       int
	Department string
}

func (f *WeeklyFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if f.Week < 1 || f.Week > 53 {
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

type WorkRecordResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	Department   string  `json:"department"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	WorkType     string  `json:"work_type"`
	TotalMinutes *int    `json:"total_minutes"`
}
