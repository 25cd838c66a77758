package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/report"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

type fakeWorkLogRepo struct {
	records []worklog.DailyWorkRecord
}

func (f *fakeWorkLogRepo) Create(ctx context.Context, record worklog.DailyWorkRecord) (worklog.DailyWorkRecord, error) {
	return record, nil
}

func (f *fakeWorkLogRepo) GetByID(ctx context.Context, id string) (worklog.DailyWorkRecord, error) {
	return worklog.DailyWorkRecord{}, worklog.ErrWorkRecordNotFound
}

func (f *fakeWorkLogRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*worklog.DailyWorkRecord, error) {
	return nil, nil
}

func (f *fakeWorkLogRepo) Update(ctx context.Context, record worklog.DailyWorkRecord) error {
	return nil
}

func (f *fakeWorkLogRepo) ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]worklog.DailyWorkRecord, error) {
	var out []worklog.DailyWorkRecord
	for _, rec := range f.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeWorkLogRepo) ListOpenSessions(ctx context.Context, before time.Time) ([]worklog.DailyWorkRecord, error) {
	return nil, nil
}

type fakeReportService struct {
	latecomers map[string][]report.LatecomerEntry
}

func (f *fakeReportService) WeeklyReport(ctx context.Context, req report.WeeklyReportRequest) (report.WeeklyReportResponse, error) {
	return report.WeeklyReportResponse{}, nil
}

func (f *fakeReportService) MonthlyLatecomers(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyLatecomerResponse, error) {
	return report.MonthlyLatecomerResponse{
		Year:       req.Year,
		Month:      req.Month,
		Latecomers: f.latecomers,
	}, nil
}

func mins(n int) *int { return &n }

func TestWorkTimeWorkbook(t *testing.T) {
	day5 := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	day6 := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)

	repo := &fakeWorkLogRepo{records: []worklog.DailyWorkRecord{
		{UserID: "u1", UserName: "Alice", Department: "engineering", Date: day5, TotalMinutes: mins(480)},
		{UserID: "u1", UserName: "Alice", Department: "engineering", Date: day6, TotalMinutes: mins(90)},
		{UserID: "u2", UserName: "Bob", Department: "sales", Date: day5, TotalMinutes: mins(300)},
	}}

	svc := NewExportService(repo, &fakeReportService{})

	f, filename, err := svc.WorkTimeWorkbook(context.Background(), ExportRequest{Months: []string{"2025-06"}})
	require.NoError(t, err)
	assert.Equal(t, "work-time_2025-06.xlsx", filename)

	require.Contains(t, f.GetSheetList(), "2025-06")

	// Header row: department, name, then one column per day.
	v, _ := f.GetCellValue("2025-06", "A1")
	assert.Equal(t, "Department", v)
	v, _ = f.GetCellValue("2025-06", "B1")
	assert.Equal(t, "Name", v)
	v, _ = f.GetCellValue("2025-06", "C1")
	assert.Equal(t, "1", v)

	// Day 5 lands in column C+4 = G.
	v, _ = f.GetCellValue("2025-06", "A2")
	assert.Equal(t, "engineering", v)
	v, _ = f.GetCellValue("2025-06", "B2")
	assert.Equal(t, "Alice", v)
	v, _ = f.GetCellValue("2025-06", "G2")
	assert.Equal(t, "8h", v)
	v, _ = f.GetCellValue("2025-06", "H2")
	assert.Equal(t, "1h 30m", v)

	// Days without work render the placeholder.
	v, _ = f.GetCellValue("2025-06", "C2")
	assert.Equal(t, "-", v)

	v, _ = f.GetCellValue("2025-06", "B3")
	assert.Equal(t, "Bob", v)
	v, _ = f.GetCellValue("2025-06", "G3")
	assert.Equal(t, "5h", v)
}

func TestWorkTimeWorkbook_OneSheetPerMonth(t *testing.T) {
	svc := NewExportService(&fakeWorkLogRepo{}, &fakeReportService{})

	f, filename, err := svc.WorkTimeWorkbook(context.Background(), ExportRequest{Months: []string{"2025-05", "2025-06"}})
	require.NoError(t, err)

	assert.Equal(t, "work-time_2025-05_2025-06.xlsx", filename)
	assert.ElementsMatch(t, []string{"2025-05", "2025-06"}, f.GetSheetList())
}

func TestLateTimeWorkbook(t *testing.T) {
	reportSvc := &fakeReportService{latecomers: map[string][]report.LatecomerEntry{
		"2025-06-02": {{
			UserID:       "u1",
			UserName:     "Alice",
			Department:   "engineering",
			Date:         "2025-06-02",
			CheckIn:      "10:30",
			CheckOut:     "19:00",
			TotalMinutes: 510,
			WorkType:     "normal",
		}},
	}}

	svc := NewExportService(&fakeWorkLogRepo{}, reportSvc)

	f, filename, err := svc.LateTimeWorkbook(context.Background(), ExportRequest{Months: []string{"2025-06"}})
	require.NoError(t, err)
	assert.Equal(t, "late-time_2025-06.xlsx", filename)

	v, _ := f.GetCellValue("2025-06", "A1")
	assert.Equal(t, "Date", v)
	v, _ = f.GetCellValue("2025-06", "A2")
	assert.Equal(t, "2025-06-02", v)
	v, _ = f.GetCellValue("2025-06", "C2")
	assert.Equal(t, "Alice", v)
	v, _ = f.GetCellValue("2025-06", "E2")
	assert.Equal(t, "10:30", v)
	v, _ = f.GetCellValue("2025-06", "G2")
	assert.Equal(t, "8h 30m", v)
}

func TestExportRequestValidate(t *testing.T) {
	req := ExportRequest{}
	assert.Error(t, req.Validate())

	req = ExportRequest{Months: []string{"June 2025"}}
	assert.Error(t, req.Validate())

	req = ExportRequest{Months: []string{"2025-06"}}
	assert.NoError(t, req.Validate())
}
