package report

import "errors"

var (
	ErrNoWeekData = errors.New("no work records found for the requested week")
)
