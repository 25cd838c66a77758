package worklog

import "errors"

// Work log domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// General errors
	ErrWorkRecordNotFound   = errors.New("work record not found")
	ErrCheckOutBeforeInTime = errors.New("check-out time must be after check-in time")
	ErrUnauthorized         = errors.New("unauthorized to access this work record")
)
