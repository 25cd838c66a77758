package export

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/workdesk/workdesk-backend-go/internal/domain/report"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
	svcreport "github.com/workdesk/workdesk-backend-go/internal/service/report"
)

// ExportService builds downloadable XLSX workbooks from the monthly
// aggregations. One sheet per selected month.
type ExportService interface {
	// WorkTimeWorkbook renders per-user daily work totals for each month
	WorkTimeWorkbook(ctx context.Context, req ExportRequest) (*excelize.File, string, error)

	// LateTimeWorkbook renders the latecomer report for each month
	LateTimeWorkbook(ctx context.Context, req ExportRequest) (*excelize.File, string, error)
}

// ExportRequest selects the months ("YYYY-MM") and departments to export.
// No departments means all.
type ExportRequest struct {
	Months      []string `json:"months"`
	Departments []string `json:"departments"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Months) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "months",
			Message: "at least one month is required",
		})
	}
	for _, m := range r.Months {
		if _, ok := validator.IsValidMonth(m); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "months",
				Message: fmt.Sprintf("%q must be a month in YYYY-MM format", m),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExportServiceImpl struct {
	workLogRepo   worklog.WorkLogRepository
	reportService report.ReportService
}

func NewExportService(workLogRepo worklog.WorkLogRepository, reportService report.ReportService) ExportService {
	return &ExportServiceImpl{
		workLogRepo:   workLogRepo,
		reportService: reportService,
	}
}

func (s *ExportServiceImpl) WorkTimeWorkbook(ctx context.Context, req ExportRequest) (*excelize.File, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	headerStyle := newHeaderStyle(f)

	for i, month := range req.Months {
		monthStart, _ := validator.IsValidMonth(month)
		monthEnd := monthStart.AddDate(0, 1, -1)
		days := monthEnd.Day()

		sheet := sheetName(f, i, month)

		headers := append([]string{"Department", "Name"}, dayHeaders(days)...)
		writeHeaderRow(f, sheet, headers, headerStyle)

		records, err := s.monthRecords(ctx, monthStart, monthEnd, req.Departments)
		if err != nil {
			return nil, "", err
		}

		row := 2
		for _, userRow := range groupByUser(records) {
			setCell(f, sheet, 1, row, userRow.department)
			setCell(f, sheet, 2, row, userRow.name)
			for day := 1; day <= days; day++ {
				setCell(f, sheet, 2+day, row, svcreport.FormatDuration(userRow.minutesByDay[day]))
			}
			row++
		}

		f.SetColWidth(sheet, "A", "A", 18)
		f.SetColWidth(sheet, "B", "B", 24)
	}

	return f, exportFilename("work-time", req.Months), nil
}

func (s *ExportServiceImpl) LateTimeWorkbook(ctx context.Context, req ExportRequest) (*excelize.File, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	headerStyle := newHeaderStyle(f)

	headers := []string{"Date", "Department", "Name", "Work Type", "Check In", "Check Out", "Total Time"}

	for i, month := range req.Months {
		monthStart, _ := validator.IsValidMonth(month)

		sheet := sheetName(f, i, month)
		writeHeaderRow(f, sheet, headers, headerStyle)

		monthly, err := s.reportService.MonthlyLatecomers(ctx, report.MonthlyReportRequest{
			Year:        monthStart.Year(),
			Month:       int(monthStart.Month()),
			Departments: req.Departments,
		})
		if err != nil {
			return nil, "", err
		}

		dates := make([]string, 0, len(monthly.Latecomers))
		for date := range monthly.Latecomers {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		row := 2
		for _, date := range dates {
			for _, entry := range monthly.Latecomers[date] {
				setCell(f, sheet, 1, row, entry.Date)
				setCell(f, sheet, 2, row, entry.Department)
				setCell(f, sheet, 3, row, entry.UserName)
				setCell(f, sheet, 4, row, entry.WorkType)
				setCell(f, sheet, 5, row, entry.CheckIn)
				setCell(f, sheet, 6, row, entry.CheckOut)
				setCell(f, sheet, 7, row, svcreport.FormatDuration(entry.TotalMinutes))
				row++
			}
		}

		f.SetColWidth(sheet, "A", "A", 12)
		f.SetColWidth(sheet, "B", "C", 20)
	}

	return f, exportFilename("late-time", req.Months), nil
}

func (s *ExportServiceImpl) monthRecords(ctx context.Context, monthStart, monthEnd time.Time, departments []string) ([]worklog.DailyWorkRecord, error) {
	if len(departments) == 0 {
		departments = []string{""}
	}

	var records []worklog.DailyWorkRecord
	for _, department := range departments {
		list, err := s.workLogRepo.ListByDateRange(ctx, monthStart, monthEnd, department)
		if err != nil {
			return nil, fmt.Errorf("failed to list work records: %w", err)
		}
		records = append(records, list...)
	}
	return records, nil
}

type userMonthRow struct {
	department   string
	name         string
	minutesByDay map[int]int
}

func groupByUser(records []worklog.DailyWorkRecord) []userMonthRow {
	index := make(map[string]int)
	var rows []userMonthRow

	for _, rec := range records {
		i, ok := index[rec.UserID]
		if !ok {
			i = len(rows)
			index[rec.UserID] = i
			rows = append(rows, userMonthRow{
				department:   rec.Department,
				name:         rec.UserName,
				minutesByDay: make(map[int]int),
			})
		}
		if rec.TotalMinutes != nil {
			rows[i].minutesByDay[rec.Date.Day()] += *rec.TotalMinutes
		}
	}
	return rows
}

func newHeaderStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

// sheetName names the i-th sheet after its month label, reusing the
// default first sheet so the workbook has no empty leftover.
func sheetName(f *excelize.File, i int, month string) string {
	if i == 0 {
		f.SetSheetName(f.GetSheetName(0), month)
		return month
	}
	f.NewSheet(month)
	return month
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, value)
}

func dayHeaders(days int) []string {
	headers := make([]string, days)
	for d := 1; d <= days; d++ {
		headers[d-1] = fmt.Sprintf("%d", d)
	}
	return headers
}

func exportFilename(prefix string, months []string) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, strings.Join(months, "_"))
}
