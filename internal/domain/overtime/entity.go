package overtime

import "time"

// Status is the overtime request lifecycle state. The legacy single-letter
// codes are kept as wire values: H pending, T approved, Y compensated,
// N cancelled.
type Status string

const (
	StatusPending     Status = "H"
	StatusApproved    Status = "T"
	StatusCompensated Status = "Y"
	StatusCancelled   Status = "N"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompensated, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	return s == StatusCompensated || s == StatusCancelled
}

// CanTransition reports whether the state machine defines a move from s to
// next. Defined moves: H→T, T→Y, H→N, T→N. No transition skips a state.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusCancelled
	case StatusApproved:
		return next == StatusCompensated || next == StatusCancelled
	}
	return false
}

// CompensationMethod is how overtime is repaid to the employee.
type CompensationMethod string

const (
	CompensationSpecialLeave  CompensationMethod = "special_leave"
	CompensationCompLeave     CompensationMethod = "comp_leave"
	CompensationPaidAllowance CompensationMethod = "paid_allowance"
)

func (m CompensationMethod) IsValid() bool {
	switch m {
	case CompensationSpecialLeave, CompensationCompLeave, CompensationPaidAllowance:
		return true
	}
	return false
}

// DayClass distinguishes weekday overtime from weekend or public-holiday
// overtime, which carry different request shapes and compensation rules.
type DayClass string

const (
	DayClassWeekday DayClass = "weekday"
	DayClassHoliday DayClass = "holiday"
)

// OvertimeRequest is a request to work beyond regular hours on one date.
// Weekday requests carry ExpectedEnd only and may use meal and transport
// allowances; weekend/holiday requests carry ExpectedStart and ExpectedEnd.
type OvertimeRequest struct {
	ID                    string
	UserID                string
	Date                  time.Time
	DayClass              DayClass
	Status                Status
	ExpectedStart         *time.Time
	ExpectedEnd           time.Time
	CompensationMethod    CompensationMethod
	MealAllowanceUsed     bool
	TransportAllowanceUsed bool
	ClientName            string
	WorkDescription       string
	DecidedBy             *string
	DecidedAt             *time.Time
	RejectionReason       *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Join field for responses
	UserName *string
}
