package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func minutes(n int) *int {
	return &n
}

func record(userID, name string, day time.Time, in, out *time.Time, wt worklog.WorkType, total *int) worklog.DailyWorkRecord {
	return worklog.DailyWorkRecord{
		ID:           userID + "-" + day.Format("2006-01-02"),
		UserID:       userID,
		UserName:     name,
		Department:   "engineering",
		Date:         day,
		CheckIn:      in,
		CheckOut:     out,
		WorkType:     wt,
		TotalMinutes: total,
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{"monday stays", date(2025, time.June, 2), date(2025, time.June, 2)},
		{"wednesday rewinds", date(2025, time.June, 4), date(2025, time.June, 2)},
		{"sunday rewinds six days", date(2025, time.June, 8), date(2025, time.June, 2)},
		{"saturday rewinds five days", date(2025, time.June, 7), date(2025, time.June, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.input))
		})
	}
}

func TestISOWeekStart(t *testing.T) {
	// Cross-check against the standard library's ISOWeek.
	ws := ISOWeekStart(2025, 23)
	assert.Equal(t, time.Monday, ws.Weekday())
	year, week := ws.ISOWeek()
	assert.Equal(t, 2025, year)
	assert.Equal(t, 23, week)

	// Week 1 of a year starting mid-week reaches back into December.
	ws = ISOWeekStart(2026, 1)
	assert.Equal(t, date(2025, time.December, 29), ws)
}

func TestMonthWeekStarts(t *testing.T) {
	// June 2025: Sunday the 1st belongs to the week of May 26.
	starts := MonthWeekStarts(2025, 6)
	require.NotEmpty(t, starts)
	assert.Equal(t, date(2025, time.May, 26), starts[0])
	assert.Equal(t, date(2025, time.June, 30), starts[len(starts)-1])
	for _, ws := range starts {
		assert.Equal(t, time.Monday, ws.Weekday())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "-"},
		{-5, "-"},
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
		{481, "8h 1m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestIsLateArrival(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		late bool
	}{
		{"early morning", time.Date(2025, 6, 2, 9, 59, 0, 0, time.UTC), false},
		{"ten o'clock exactly", time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), false},
		{"one second past ten", time.Date(2025, 6, 2, 10, 0, 1, 0, time.UTC), true},
		{"one minute past ten", time.Date(2025, 6, 2, 10, 1, 0, 0, time.UTC), true},
		{"afternoon", time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.late, IsLateArrival(tt.in))
		})
	}
}

func TestBuildWeeklyView(t *testing.T) {
	monday := date(2025, time.June, 2)

	records := []worklog.DailyWorkRecord{
		record("u1", "Alice", monday, clock(2025, time.June, 2, 9, 31), clock(2025, time.June, 2, 18, 20), worklog.WorkTypeNormal, minutes(529)),
		record("u1", "Alice", monday.AddDate(0, 0, 1), clock(2025, time.June, 3, 10, 5), nil, worklog.WorkTypeNormal, nil),
		record("u2", "Bob", monday, nil, nil, worklog.WorkTypeAnnualLeave, nil),
	}

	rows := BuildWeeklyView(records, monday, map[string]string{"2025-06-04": "Foundation Day"})
	require.Len(t, rows, 2)

	alice := rows[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "09:31 - 18:20", alice.Days[0].TimeRange)
	assert.Equal(t, "8h 49m", alice.Days[0].Total)
	assert.Equal(t, "10:05 - (in progress)", alice.Days[1].TimeRange)
	assert.Equal(t, "-", alice.Days[1].Total)
	assert.Equal(t, "Foundation Day", alice.Days[2].HolidayName)
	assert.Equal(t, "8h 49m", alice.WeeklyTotal)
	assert.Equal(t, 529, alice.WeeklyTotalMinutes)

	bob := rows[1]
	assert.Equal(t, string(worklog.WorkTypeAnnualLeave), bob.Days[0].WorkType)
	assert.Empty(t, bob.Days[0].TimeRange)
	assert.Equal(t, "-", bob.WeeklyTotal)

	// Days without any record render placeholders.
	assert.Equal(t, string(worklog.WorkTypeNone), alice.Days[5].WorkType)
	assert.Equal(t, "-", alice.Days[5].Total)
}

func TestBuildWeeklyView_NormalizesWeekStart(t *testing.T) {
	wednesday := date(2025, time.June, 4)
	records := []worklog.DailyWorkRecord{
		record("u1", "Alice", date(2025, time.June, 2), clock(2025, time.June, 2, 9, 0), clock(2025, time.June, 2, 17, 0), worklog.WorkTypeNormal, minutes(480)),
	}

	rows := BuildWeeklyView(records, wednesday, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-06-02", rows[0].Days[0].Date)
	assert.Equal(t, "8h", rows[0].Days[0].Total)
}

func TestComputeLatecomers(t *testing.T) {
	monday := date(2025, time.June, 2)
	tuesday := monday.AddDate(0, 0, 1)
	dates := []time.Time{monday, tuesday}

	records := []worklog.DailyWorkRecord{
		// Scenario A: 10:30 normal arrival, no schedule: late.
		record("u1", "Alice", monday, clock(2025, time.June, 2, 10, 30), clock(2025, time.June, 2, 19, 0), worklog.WorkTypeNormal, minutes(510)),
		// Scenario B: 10:30 but covered by a pending schedule: excused.
		record("u2", "Bob", monday, clock(2025, time.June, 2, 10, 30), nil, worklog.WorkTypeNormal, nil),
		// Scenario C: late but remote work: not eligible.
		record("u3", "Carol", monday, clock(2025, time.June, 2, 11, 0), nil, worklog.WorkTypeRemote, nil),
		// Scenario D: exactly 10:00: on time.
		record("u4", "Dave", monday, clock(2025, time.June, 2, 10, 0), nil, worklog.WorkTypeNormal, nil),
		// Scenario E: no check-in at all: skipped.
		record("u5", "Eve", monday, nil, nil, worklog.WorkTypeNormal, nil),
		// Alice again on Tuesday, rejected schedule does not excuse.
		record("u1", "Alice", tuesday, clock(2025, time.June, 3, 10, 45), nil, worklog.WorkTypeNormal, nil),
	}

	schedules := map[string][]leave.LeaveSchedule{
		"u2": {{
			UserID:    "u2",
			StartDate: monday,
			EndDate:   tuesday,
			Status:    leave.ScheduleStatusPending,
		}},
		"u1": {{
			UserID:    "u1",
			StartDate: tuesday,
			EndDate:   tuesday,
			Status:    leave.ScheduleStatusRejected,
		}},
	}

	got := ComputeLatecomers(records, dates, schedules)

	require.Len(t, got["2025-06-02"], 1)
	assert.Equal(t, "Alice", got["2025-06-02"][0].UserName)
	assert.Equal(t, "10:30", got["2025-06-02"][0].CheckIn)
	assert.Equal(t, 510, got["2025-06-02"][0].TotalMinutes)

	require.Len(t, got["2025-06-03"], 1)
	assert.Equal(t, "u1", got["2025-06-03"][0].UserID)
}

func TestComputeLatecomers_ApprovedScheduleSuppresses(t *testing.T) {
	monday := date(2025, time.June, 2)
	records := []worklog.DailyWorkRecord{
		record("u1", "Alice", monday, clock(2025, time.June, 2, 12, 0), nil, worklog.WorkTypeNormal, nil),
	}
	schedules := map[string][]leave.LeaveSchedule{
		"u1": {{
			UserID:    "u1",
			StartDate: monday.AddDate(0, 0, -3),
			EndDate:   monday,
			Status:    leave.ScheduleStatusApproved,
		}},
	}

	got := ComputeLatecomers(records, []time.Time{monday}, schedules)
	assert.Empty(t, got)
}

func TestComputeLatecomers_DeduplicatesByUserAndDate(t *testing.T) {
	monday := date(2025, time.June, 2)
	rec := record("u1", "Alice", monday, clock(2025, time.June, 2, 10, 30), nil, worklog.WorkTypeNormal, nil)

	// The same attendance fact arriving through two query paths.
	got := ComputeLatecomers([]worklog.DailyWorkRecord{rec, rec}, []time.Time{monday}, nil)
	require.Len(t, got["2025-06-02"], 1)
}

func TestComputeLatecomers_PreservesScanOrder(t *testing.T) {
	monday := date(2025, time.June, 2)
	records := []worklog.DailyWorkRecord{
		record("u1", "Alice", monday, clock(2025, time.June, 2, 10, 30), nil, worklog.WorkTypeNormal, nil),
		record("u2", "Bob", monday, clock(2025, time.June, 2, 10, 15), nil, worklog.WorkTypeNormal, nil),
		record("u3", "Carol", monday, clock(2025, time.June, 2, 11, 0), nil, worklog.WorkTypeNormal, nil),
	}

	got := ComputeLatecomers(records, []time.Time{monday}, nil)
	require.Len(t, got["2025-06-02"], 3)
	assert.Equal(t, "Alice", got["2025-06-02"][0].UserName)
	assert.Equal(t, "Bob", got["2025-06-02"][1].UserName)
	assert.Equal(t, "Carol", got["2025-06-02"][2].UserName)
}
