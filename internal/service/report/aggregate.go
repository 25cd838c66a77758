package report

import (
	"fmt"
	"time"

	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/domain/report"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

const dateLayout = "2006-01-02"

// WeekStart normalizes t to the Monday of its week.
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return d.AddDate(0, 0, -offset)
}

// ISOWeekStart returns the Monday of the given ISO week.
func ISOWeekStart(year, week int) time.Time {
	// Jan 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	return WeekStart(jan4).AddDate(0, 0, (week-1)*7)
}

// WeekDates derives the 7 calendar dates [weekStart, weekStart+6].
func WeekDates(weekStart time.Time) [7]time.Time {
	var dates [7]time.Time
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}

// MonthWeekStarts returns the Monday of every calendar week whose date
// range intersects the given month.
func MonthWeekStarts(year, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var starts []time.Time
	for ws := WeekStart(first); !ws.After(last); ws = ws.AddDate(0, 0, 7) {
		starts = append(starts, ws)
	}
	return starts
}

// FormatDuration renders minutes as "{H}h {M}m", omitting a zero
// component. Zero minutes renders as the placeholder "-".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// IsLateArrival reports whether a check-in time is after the 10:00
// threshold. Exactly 10:00:00 is on time.
func IsLateArrival(checkIn time.Time) bool {
	if checkIn.Hour() > 10 {
		return true
	}
	return checkIn.Hour() == 10 && (checkIn.Minute() > 0 || checkIn.Second() > 0)
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func timeRange(rec *worklog.DailyWorkRecord) string {
	if rec == nil || rec.CheckIn == nil {
		return ""
	}
	if rec.CheckOut == nil {
		if rec.WorkType == worklog.WorkTypeNormal {
			return formatClock(rec.CheckIn) + " - (in progress)"
		}
		return formatClock(rec.CheckIn)
	}
	return formatClock(rec.CheckIn) + " - " + formatClock(rec.CheckOut)
}

// BuildWeeklyView converts raw work records into one table row per user,
// Monday through Sunday from weekStart. Users appear in the order they
// are first seen in records; absent days render placeholder cells.
// holidayNames maps "YYYY-MM-DD" to a holiday name for cell labeling.
func BuildWeeklyView(records []worklog.DailyWorkRecord, weekStart time.Time, holidayNames map[string]string) []report.WeeklyRow {
	dates := WeekDates(WeekStart(weekStart))

	byUser := make(map[string]map[string]worklog.DailyWorkRecord)
	var userOrder []string
	names := make(map[string]worklog.DailyWorkRecord)

	for _, rec := range records {
		if _, ok := byUser[rec.UserID]; !ok {
			byUser[rec.UserID] = make(map[string]worklog.DailyWorkRecord)
			userOrder = append(userOrder, rec.UserID)
			names[rec.UserID] = rec
		}
		byUser[rec.UserID][rec.Date.Format(dateLayout)] = rec
	}

	rows := make([]report.WeeklyRow, 0, len(userOrder))
	for _, userID := range userOrder {
		ref := names[userID]
		row := report.WeeklyRow{
			UserID:     userID,
			Department: ref.Department,
			Name:       ref.UserName,
		}

		total := 0
		for i, date := range dates {
			key := date.Format(dateLayout)
			cell := report.DayCell{
				Date:        key,
				WorkType:    string(worklog.WorkTypeNone),
				Label:       worklog.WorkTypeNone.Label(),
				TimeRange:   "",
				Total:       "-",
				HolidayName: holidayNames[key],
			}

			if rec, ok := byUser[userID][key]; ok {
				mins := 0
				if rec.TotalMinutes != nil {
					mins = *rec.TotalMinutes
				}
				total += mins

				cell.WorkType = string(rec.WorkType)
				cell.Label = rec.WorkType.Label()
				cell.CheckIn = formatClock(rec.CheckIn)
				cell.CheckOut = formatClock(rec.CheckOut)
				cell.TimeRange = timeRange(&rec)
				cell.Total = FormatDuration(mins)
				cell.TotalMinutes = mins
			}

			row.Days[i] = cell
		}

		row.WeeklyTotalMinutes = total
		row.WeeklyTotal = FormatDuration(total)
		rows = append(rows, row)
	}

	return rows
}

// ComputeLatecomers classifies late arrivals for the given dates. A user
// is a latecomer on a date when the day's record has a check-in after
// 10:00, the work type is normal, and no pending or approved leave
// schedule covers the date. Entries keep the record scan order; the same
// (user, date) attendance fact is reported at most once even when records
// arrive through multiple query paths.
func ComputeLatecomers(records []worklog.DailyWorkRecord, dates []time.Time, schedulesByUser map[string][]leave.LeaveSchedule) map[string][]report.LatecomerEntry {
	result := make(map[string][]report.LatecomerEntry)
	seen := make(map[string]bool)

	for _, date := range dates {
		key := date.Format(dateLayout)
		for _, rec := range records {
			if rec.Date.Format(dateLayout) != key {
				continue
			}
			if rec.CheckIn == nil {
				continue
			}
			if rec.WorkType != worklog.WorkTypeNormal {
				continue
			}
			if !IsLateArrival(*rec.CheckIn) {
				continue
			}
			if scheduleCovers(schedulesByUser[rec.UserID], date) {
				continue
			}

			identity := rec.UserID + "|" + key
			if seen[identity] {
				continue
			}
			seen[identity] = true

			mins := 0
			if rec.TotalMinutes != nil {
				mins = *rec.TotalMinutes
			}
			result[key] = append(result[key], report.LatecomerEntry{
				UserID:       rec.UserID,
				UserName:     rec.UserName,
				Department:   rec.Department,
				Date:         key,
				CheckIn:      formatClock(rec.CheckIn),
				CheckOut:     formatClock(rec.CheckOut),
				TotalMinutes: mins,
				WorkType:     string(rec.WorkType),
			})
		}
	}

	return result
}

func scheduleCovers(schedules []leave.LeaveSchedule, date time.Time) bool {
	for i := range schedules {
		if !schedules[i].Status.SuppressesLateness() {
			continue
		}
		if schedules[i].Covers(date) {
			return true
		}
	}
	return false
}
