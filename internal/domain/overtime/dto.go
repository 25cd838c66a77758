package overtime

import (
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
)

// ========================================
// OVERTIME DTOs
// ========================================

// CreateOvertimeRequest submits a new overtime request. expected_start is
// required for weekend/holiday work and must be absent for weekday work;
// allowances are weekday-only.
type CreateOvertimeRequest struct {
	UserID                 string  `json:"-"`
	Date                   string  `json:"date"`
	ExpectedStart          *string `json:"expected_start"`
	ExpectedEnd            string  `json:"expected_end"`
	CompensationMethod     string  `json:"compensation_method"`
	MealAllowanceUsed      bool    `json:"meal_allowance_used"`
	TransportAllowanceUsed bool    `json:"transport_allowance_used"`
	ClientName             string  `json:"client_name"`
	WorkDescription        string  `json:"work_description"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a date in YYYY-MM-DD format",
		})
	}

	if r.ExpectedStart != nil && *r.ExpectedStart != "" {
		if _, ok := validator.IsValidClockTime(*r.ExpectedStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_start",
				Message: "expected_start must be a clock time in HH:MM format",
			})
		}
	}

	if _, ok := validator.IsValidClockTime(r.ExpectedEnd); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_end",
			Message: "expected_end must be a clock time in HH:MM format",
		})
	}

	if !CompensationMethod(r.CompensationMethod).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "compensation_method",
			Message: "compensation_method must be special_leave, comp_leave, or paid_allowance",
		})
	}

	if validator.IsEmpty(r.WorkDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_description",
			Message: "work_description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectOvertimeRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkApproveRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter selects overtime requests for one calendar month.
type ListFilter struct {
	Year   int
	Month  int
	UserID *string
	Status *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of H, T, Y, N",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OvertimeResponse struct {
	ID                     string  `json:"id"`
	UserID                 string  `json:"user_id"`
	UserName               string  `json:"user_name,omitempty"`
	Date                   string  `json:"date"`
	DayClass               string  `json:"day_class"`
	Status                 string  `json:"status"`
	ExpectedStart          *string `json:"expected_start,omitempty"`
	ExpectedEnd            string  `json:"expected_end"`
	CompensationMethod     string  `json:"compensation_method"`
	MealAllowanceUsed      bool    `json:"meal_allowance_used"`
	TransportAllowanceUsed bool    `json:"transport_allowance_used"`
	ClientName             string  `json:"client_name,omitempty"`
	WorkDescription        string  `json:"work_description"`
	RejectionReason        *string `json:"rejection_reason,omitempty"`
}

// BulkApproveResponse reports per-id outcomes. Approved items stay approved
// even when later ids fail; there is no rollback.
type BulkApproveResponse struct {
	ApprovedIDs []string          `json:"approved_ids"`
	Failed      map[string]string `json:"failed,omitempty"`
}
