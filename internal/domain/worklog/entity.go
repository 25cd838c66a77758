package worklog

import "time"

// WorkType is the categorical tag for the nature of a day's attendance.
type WorkType string

const (
	WorkTypeNormal        WorkType = "normal"
	WorkTypeExternal      WorkType = "external"
	WorkTypeRemote        WorkType = "remote"
	WorkTypeAnnualLeave   WorkType = "annual_leave"
	WorkTypeHalfDayAM     WorkType = "half_day_am"
	WorkTypeHalfDayPM     WorkType = "half_day_pm"
	WorkTypePublicDuty    WorkType = "public_duty"
	WorkTypePublicHoliday WorkType = "public_holiday"
	WorkTypeNone          WorkType = "none"
)

// IsValid reports whether t is one of the known work types.
func (t WorkType) IsValid() bool {
	switch t {
	case WorkTypeNormal, WorkTypeExternal, WorkTypeRemote, WorkTypeAnnualLeave,
		WorkTypeHalfDayAM, WorkTypeHalfDayPM, WorkTypePublicDuty,
		WorkTypePublicHoliday, WorkTypeNone:
		return true
	}
	return false
}

// Label returns the display label for the work type.
func (t WorkType) Label() string {
	switch t {
	case WorkTypeNormal:
		return "Office"
	case WorkTypeExternal:
		return "External"
	case WorkTypeRemote:
		return "Remote"
	case WorkTypeAnnualLeave:
		return "Annual Leave"
	case WorkTypeHalfDayAM:
		return "Half Day (AM)"
	case WorkTypeHalfDayPM:
		return "Half Day (PM)"
	case WorkTypePublicDuty:
		return "Public Duty"
	case WorkTypePublicHoliday:
		return "Holiday"
	case WorkTypeNone:
		return "-"
	}
	return "-"
}

// DailyWorkRecord is one user's attendance for one calendar date.
// CheckIn and CheckOut carry HH:MM clock times on the record's date;
// TotalMinutes stays nil while the user is still clocked in.
type DailyWorkRecord struct {
	ID           string
	UserID       string
	UserName     string
	Department   string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkType     WorkType
	TotalMinutes *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the record has a check-in without a check-out.
func (r *DailyWorkRecord) Open() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}
