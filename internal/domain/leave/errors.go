package leave

import "errors"

var (
	ErrScheduleNotFound         = errors.New("leave schedule not found")
	ErrScheduleAlreadyProcessed = errors.New("leave schedule already processed")
	ErrInvalidDateRange         = errors.New("end date must not be before start date")
	ErrSelfApproval             = errors.New("cannot approve your own leave schedule")
)
