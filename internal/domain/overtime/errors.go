package overtime

import "errors"

// Overtime domain errors
var (
	ErrOvertimeNotFound   = errors.New("overtime request not found")
	ErrInvalidTransition  = errors.New("transition not defined for current status")
	ErrSelfApproval       = errors.New("cannot decide your own overtime request")
	ErrNotRequester       = errors.New("only the requester may cancel this request")
	ErrNotCancelled       = errors.New("only a cancelled request can be reapplied")
	ErrRejectNeedsApproved = errors.New("reject at compensation stage requires an approved holiday-work request")
)
