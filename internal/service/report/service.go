package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/domain/report"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

const scheduleFetchConcurrency = 8

type ReportServiceImpl struct {
	workLogRepo WorkLogRepository
	leaveRepo   LeaveScheduleRepository
	holidayRepo HolidayRepository
	logger      *slog.Logger
}

type WorkLogRepository interface {
	ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]worklog.DailyWorkRecord, error)
}

type LeaveScheduleRepository interface {
	ListByUserAndMonth(ctx context.Context, userID string, monthStart time.Time) ([]leave.LeaveSchedule, error)
}

type HolidayRepository interface {
	ListByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error)
}

func NewReportService(
	workLogRepo WorkLogRepository,
	leaveRepo LeaveScheduleRepository,
	holidayRepo HolidayRepository,
	logger *slog.Logger,
) report.ReportService {
	return &ReportServiceImpl{
		workLogRepo: workLogRepo,
		leaveRepo:   leaveRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

func (s *ReportServiceImpl) WeeklyReport(ctx context.Context, req report.WeeklyReportRequest) (report.WeeklyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WeeklyReportResponse{}, err
	}

	weekStart := ISOWeekStart(req.Year, req.Week)
	weekEnd := weekStart.AddDate(0, 0, 6)

	records, err := s.workLogRepo.ListByDateRange(ctx, weekStart, weekEnd, req.Department)
	if err != nil {
		return report.WeeklyReportResponse{}, fmt.Errorf("failed to list work records: %w", err)
	}

	holidayNames, err := s.holidayNames(ctx, weekStart, weekEnd)
	if err != nil {
		return report.WeeklyReportResponse{}, err
	}

	rows := BuildWeeklyView(records, weekStart, holidayNames)
	schedules := s.fetchSchedules(ctx, records, weekStart, weekEnd)
	dates := lateEligibleDates(weekStart, holidayNames)

	return report.WeeklyReportResponse{
		Year:       req.Year,
		Week:       req.Week,
		WeekStart:  weekStart.Format(dateLayout),
		WeekEnd:    weekEnd.Format(dateLayout),
		Rows:       rows,
		Latecomers: ComputeLatecomers(records, dates, schedules),
	}, nil
}

func (s *ReportServiceImpl) MonthlyLatecomers(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyLatecomerResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyLatecomerResponse{}, err
	}

	departments := req.Departments
	if len(departments) == 0 {
		departments = []string{""}
	}

	merged := make(map[string][]report.LatecomerEntry)
	seen := make(map[string]bool)

	for _, weekStart := range MonthWeekStarts(req.Year, req.Month) {
		weekEnd := weekStart.AddDate(0, 0, 6)

		holidayNames, err := s.holidayNames(ctx, weekStart, weekEnd)
		if err != nil {
			return report.MonthlyLatecomerResponse{}, err
		}
		dates := lateEligibleDates(weekStart, holidayNames)

		for _, department := range departments {
			records, err := s.workLogRepo.ListByDateRange(ctx, weekStart, weekEnd, department)
			if err != nil {
				return report.MonthlyLatecomerResponse{}, fmt.Errorf("failed to list work records: %w", err)
			}

			schedules := s.fetchSchedules(ctx, records, weekStart, weekEnd)

			for date, entries := range ComputeLatecomers(records, dates, schedules) {
				// Boundary weeks spill into neighboring months; keep
				// only the dates inside the requested one.
				if !inMonth(date, req.Year, req.Month) {
					continue
				}
				for _, entry := range entries {
					identity := entry.UserID + "|" + entry.Date
					if seen[identity] {
						continue
					}
					seen[identity] = true
					merged[date] = append(merged[date], entry)
				}
			}
		}
	}

	return report.MonthlyLatecomerResponse{
		Year:       req.Year,
		Month:      req.Month,
		Latecomers: merged,
	}, nil
}

// fetchSchedules loads each distinct user's leave schedules for the
// months the week touches. A failed fetch is logged and treated as the
// user having no schedules so one bad row cannot take the report down.
func (s *ReportServiceImpl) fetchSchedules(ctx context.Context, records []worklog.DailyWorkRecord, weekStart, weekEnd time.Time) map[string][]leave.LeaveSchedule {
	userIDs := make([]string, 0)
	known := make(map[string]bool)
	for _, rec := range records {
		if !known[rec.UserID] {
			known[rec.UserID] = true
			userIDs = append(userIDs, rec.UserID)
		}
	}

	months := []time.Time{monthOf(weekStart)}
	if m := monthOf(weekEnd); !m.Equal(months[0]) {
		months = append(months, m)
	}

	var mu sync.Mutex
	schedules := make(map[string][]leave.LeaveSchedule, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scheduleFetchConcurrency)

	for _, userID := range userIDs {
		g.Go(func() error {
			var all []leave.LeaveSchedule
			for _, monthStart := range months {
				list, err := s.leaveRepo.ListByUserAndMonth(gctx, userID, monthStart)
				if err != nil {
					s.logger.Warn("failed to fetch leave schedules, treating user as unscheduled",
						slog.String("user_id", userID),
						slog.String("error", err.Error()),
					)
					return nil
				}
				all = append(all, list...)
			}

			mu.Lock()
			schedules[userID] = all
			mu.Unlock()
			return nil
		})
	}

	// Goroutines never return errors, Wait only joins them.
	_ = g.Wait()

	return schedules
}

func (s *ReportServiceImpl) holidayNames(ctx context.Context, start, end time.Time) (map[string]string, error) {
	holidays, err := s.holidayRepo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	names := make(map[string]string, len(holidays))
	for _, h := range holidays {
		names[h.Date.Format(dateLayout)] = h.Name
	}
	return names, nil
}

// lateEligibleDates returns the week's Monday through Friday, minus any
// public holiday. Lateness is never assessed on weekends or holidays.
func lateEligibleDates(weekStart time.Time, holidayNames map[string]string) []time.Time {
	dates := make([]time.Time, 0, 5)
	for i := 0; i < 5; i++ {
		date := weekStart.AddDate(0, 0, i)
		if _, ok := holidayNames[date.Format(dateLayout)]; ok {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func inMonth(date string, year, month int) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return t.Year() == year && int(t.Month()) == month
}
