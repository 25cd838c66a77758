package holiday

import (
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
)

type UpsertHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
