package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/domain/report"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

type fakeWorkLogRepo struct {
	records []worklog.DailyWorkRecord
	err     error
}

func (f *fakeWorkLogRepo) ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]worklog.DailyWorkRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []worklog.DailyWorkRecord
	for _, rec := range f.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		if department != "" && rec.Department != department {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	mu        sync.Mutex
	schedules map[string][]leave.LeaveSchedule
	failFor   map[string]bool
	calls     int
}

func (f *fakeLeaveRepo) ListByUserAndMonth(ctx context.Context, userID string, monthStart time.Time) ([]leave.LeaveSchedule, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.failFor[userID] {
		return nil, errors.New("connection refused")
	}
	return f.schedules[userID], nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWeeklyReport(t *testing.T) {
	monday := date(2025, time.June, 2)

	workLogRepo := &fakeWorkLogRepo{records: []worklog.DailyWorkRecord{
		record("u1", "Alice", monday, clock(2025, time.June, 2, 10, 30), clock(2025, time.June, 2, 19, 0), worklog.WorkTypeNormal, minutes(510)),
		record("u2", "Bob", monday, clock(2025, time.June, 2, 9, 0), clock(2025, time.June, 2, 18, 0), worklog.WorkTypeNormal, minutes(540)),
	}}
	leaveRepo := &fakeLeaveRepo{}
	holidayRepo := &fakeHolidayRepo{}

	svc := NewReportService(workLogRepo, leaveRepo, holidayRepo, discardLogger())

	got, err := svc.WeeklyReport(context.Background(), report.WeeklyReportRequest{Year: 2025, Week: 23})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", got.WeekStart)
	assert.Equal(t, "2025-06-08", got.WeekEnd)
	require.Len(t, got.Rows, 2)

	require.Len(t, got.Latecomers["2025-06-02"], 1)
	assert.Equal(t, "Alice", got.Latecomers["2025-06-02"][0].UserName)
}

func TestWeeklyReport_ScheduleFetchFailureIsFailOpen(t *testing.T) {
	monday := date(2025, time.June, 2)

	workLogRepo := &fakeWorkLogRepo{records: []worklog.DailyWorkRecord{
		record("u1", "Alice", monday, clock(2025, time.June, 2, 10, 30), nil, worklog.WorkTypeNormal, nil),
	}}
	// The fetch fails, so Alice is treated as unscheduled and still
	// classified late.
	leaveRepo := &fakeLeaveRepo{failFor: map[string]bool{"u1": true}}

	svc := NewReportService(workLogRepo, leaveRepo, &fakeHolidayRepo{}, discardLogger())

	got, err := svc.WeeklyReport(context.Background(), report.WeeklyReportRequest{Year: 2025, Week: 23})
	require.NoError(t, err)
	require.Len(t, got.Latecomers["2025-06-02"], 1)
}

func TestWeeklyReport_HolidayDateNotAssessed(t *testing.T) {
	monday := date(2025, time.June, 2)

	workLogRepo := &fakeWorkLogRepo{records: []worklog.DailyWorkRecord{
		record("u1", "Alice", monday, clock(2025, time.June, 2, 11, 0), nil, worklog.WorkTypeNormal, nil),
	}}
	holidayRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{Date: monday, Name: "Foundation Day"},
	}}

	svc := NewReportService(workLogRepo, &fakeLeaveRepo{}, holidayRepo, discardLogger())

	got, err := svc.WeeklyReport(context.Background(), report.WeeklyReportRequest{Year: 2025, Week: 23})
	require.NoError(t, err)
	assert.Empty(t, got.Latecomers)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Foundation Day", got.Rows[0].Days[0].HolidayName)
}

func TestWeeklyReport_RejectsInvalidWeek(t *testing.T) {
	svc := NewReportService(&fakeWorkLogRepo{}, &fakeLeaveRepo{}, &fakeHolidayRepo{}, discardLogger())

	_, err := svc.WeeklyReport(context.Background(), report.WeeklyReportRequest{Year: 2025, Week: 0})
	assert.Error(t, err)
}

func TestMonthlyLatecomers_FiltersBoundaryWeeks(t *testing.T) {
	// Saturday May 31 and Monday June 30 both sit in weeks that straddle
	// months; only June dates may surface in a June report.
	mayFriday := date(2025, time.May, 30)
	juneMonday := date(2025, time.June, 2)

	workLogRepo := &fakeWorkLogRepo{records: []worklog.DailyWorkRecord{
		record("u1", "Alice", mayFriday, clock(2025, time.May, 30, 10, 30), nil, worklog.WorkTypeNormal, nil),
		record("u1", "Alice", juneMonday, clock(2025, time.June, 2, 10, 30), nil, worklog.WorkTypeNormal, nil),
	}}

	svc := NewReportService(workLogRepo, &fakeLeaveRepo{}, &fakeHolidayRepo{}, discardLogger())

	got, err := svc.MonthlyLatecomers(context.Background(), report.MonthlyReportRequest{Year: 2025, Month: 6})
	require.NoError(t, err)

	assert.NotContains(t, got.Latecomers, "2025-05-30")
	require.Len(t, got.Latecomers["2025-06-02"], 1)
}

func TestMonthlyLatecomers_DeduplicatesAcrossDepartmentQueries(t *testing.T) {
	juneMonday := date(2025, time.June, 2)

	rec := record("u1", "Alice", juneMonday, clock(2025, time.June, 2, 10, 30), nil, worklog.WorkTypeNormal, nil)
	rec.Department = "engineering"

	workLogRepo := &fakeWorkLogRepo{records: []worklog.DailyWorkRecord{rec}}
	svc := NewReportService(workLogRepo, &fakeLeaveRepo{}, &fakeHolidayRepo{}, discardLogger())

	// The same department selected twice must not double-report the entry.
	got, err := svc.MonthlyLatecomers(context.Background(), report.MonthlyReportRequest{
		Year:        2025,
		Month:       6,
		Departments: []string{"engineering", "engineering"},
	})
	require.NoError(t, err)
	require.Len(t, got.Latecomers["2025-06-02"], 1)
}
