package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/user"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	svcreport "github.com/workdesk/workdesk-backend-go/internal/service/report"
)

type WorkLogServiceImpl struct {
	workLogRepo worklog.WorkLogRepository
}

func NewWorkLogService(workLogRepo worklog.WorkLogRepository) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		workLogRepo: workLogRepo,
	}
}

func (s *WorkLogServiceImpl) ClockIn(ctx context.Context, req worklog.ClockInRequest) (worklog.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkRecordResponse{}, err
	}

	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return worklog.WorkRecordResponse{}, err
	}

	now := time.Now()
	today := dateOnly(now)

	existing, err := s.workLogRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return worklog.WorkRecordResponse{}, fmt.Errorf("failed to check today's record: %w", err)
	}
	if existing != nil {
		return worklog.WorkRecordResponse{}, worklog.ErrAlreadyCheckedIn
	}

	checkIn := now
	record := worklog.DailyWorkRecord{
		UserID:   userID,
		Date:     today,
		CheckIn:  &checkIn,
		WorkType: worklog.WorkType(req.WorkType),
	}

	created, err := s.workLogRepo.Create(ctx, record)
	if err != nil {
		return worklog.WorkRecordResponse{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return toResponse(created), nil
}

func (s *WorkLogServiceImpl) ClockOut(ctx context.Context, req worklog.ClockOutRequest) (worklog.WorkRecordResponse, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return worklog.WorkRecordResponse{}, err
	}

	now := time.Now()
	today := dateOnly(now)

	record, err := s.workLogRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return worklog.WorkRecordResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return worklog.WorkRecordResponse{}, worklog.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return worklog.WorkRecordResponse{}, worklog.ErrAlreadyCheckedOut
	}

	checkOut := now
	minutes := int(checkOut.Sub(*record.CheckIn).Minutes())
	record.CheckOut = &checkOut
	record.TotalMinutes = &minutes

	if err := s.workLogRepo.Update(ctx, *record); err != nil {
		return worklog.WorkRecordResponse{}, fmt.Errorf("failed to close work record: %w", err)
	}

	return toResponse(*record), nil
}

func (s *WorkLogServiceImpl) ListWeek(ctx context.Context, filter worklog.WeeklyFilter) ([]worklog.WorkRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	weekStart := svcreport.ISOWeekStart(filter.Year, filter.Week)
	weekEnd := weekStart.AddDate(0, 0, 6)

	records, err := s.workLogRepo.ListByDateRange(ctx, weekStart, weekEnd, filter.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}

	responses := make([]worklog.WorkRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

func (s *WorkLogServiceImpl) UpdateWorkRecord(ctx context.Context, req worklog.UpdateWorkRecordRequest) (worklog.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkRecordResponse{}, err
	}

	_, role, err := identityFromContext(ctx)
	if err != nil {
		return worklog.WorkRecordResponse{}, err
	}
	if !role.IsAdmin() {
		return worklog.WorkRecordResponse{}, worklog.ErrUnauthorized
	}

	record, err := s.workLogRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worklog.WorkRecordResponse{}, err
	}

	if req.CheckIn != nil {
		record.CheckIn, err = clockOnDate(record.Date, *req.CheckIn)
		if err != nil {
			return worklog.WorkRecordResponse{}, err
		}
	}
	if req.CheckOut != nil {
		record.CheckOut, err = clockOnDate(record.Date, *req.CheckOut)
		if err != nil {
			return worklog.WorkRecordResponse{}, err
		}
	}
	if req.WorkType != nil {
		record.WorkType = worklog.WorkType(*req.WorkType)
	}

	if record.CheckIn != nil && record.CheckOut != nil {
		if !record.CheckOut.After(*record.CheckIn) {
			return worklog.WorkRecordResponse{}, worklog.ErrCheckOutBeforeInTime
		}
		minutes := int(record.CheckOut.Sub(*record.CheckIn).Minutes())
		record.TotalMinutes = &minutes
	} else {
		record.TotalMinutes = nil
	}

	if err := s.workLogRepo.Update(ctx, record); err != nil {
		return worklog.WorkRecordResponse{}, fmt.Errorf("failed to update work record: %w", err)
	}

	return toResponse(record), nil
}

// clockOnDate resolves an "HH:MM" clock time onto the record's own date.
// An empty string clears the field.
func clockOnDate(date time.Time, clock string) (*time.Time, error) {
	if clock == "" {
		return nil, nil
	}
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return nil, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
	return &t, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func identityFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id not found in token")
	}

	role, _ := claims["role"].(string)
	return userID, user.Role(role), nil
}

func toResponse(record worklog.DailyWorkRecord) worklog.WorkRecordResponse {
	resp := worklog.WorkRecordResponse{
		ID:           record.ID,
		UserID:       record.UserID,
		UserName:     record.UserName,
		Department:   record.Department,
		Date:         record.Date.Format("2006-01-02"),
		WorkType:     string(record.WorkType),
		TotalMinutes: record.TotalMinutes,
	}
	if record.CheckIn != nil {
		v := record.CheckIn.Format("15:04")
		resp.CheckIn = &v
	}
	if record.CheckOut != nil {
		v := record.CheckOut.Format("15:04")
		resp.CheckOut = &v
	}
	return resp
}
