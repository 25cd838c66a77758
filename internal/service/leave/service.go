package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/domain/user"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

type LeaveScheduleServiceImpl struct {
	leaveRepo leave.LeaveScheduleRepository
}

func NewLeaveScheduleService(leaveRepo leave.LeaveScheduleRepository) leave.LeaveScheduleService {
	return &LeaveScheduleServiceImpl{
		leaveRepo: leaveRepo,
	}
}

func (s *LeaveScheduleServiceImpl) CreateSchedule(ctx context.Context, req leave.CreateScheduleRequest) (leave.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ScheduleResponse{}, err
	}

	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	schedule := leave.LeaveSchedule{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    leave.ScheduleStatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, schedule)
	if err != nil {
		return leave.ScheduleResponse{}, fmt.Errorf("failed to create leave schedule: %w", err)
	}

	return toResponse(created), nil
}

func (s *LeaveScheduleServiceImpl) ListMySchedules(ctx context.Context, year, month int) ([]leave.ScheduleResponse, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := leave.MonthFilter{UserID: userID, Year: year, Month: month}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	schedules, err := s.leaveRepo.ListByUserAndMonth(ctx, userID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave schedules: %w", err)
	}

	responses := make([]leave.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, toResponse(schedule))
	}
	return responses, nil
}

func (s *LeaveScheduleServiceImpl) ListPending(ctx context.Context) ([]leave.ScheduleResponse, error) {
	_, role, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !role.CanApprove() {
		return nil, worklog.ErrUnauthorized
	}

	schedules, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending schedules: %w", err)
	}

	responses := make([]leave.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, toResponse(schedule))
	}
	return responses, nil
}

func (s *LeaveScheduleServiceImpl) ApproveSchedule(ctx context.Context, id string) (leave.ScheduleResponse, error) {
	approverID, role, err := identityFromContext(ctx)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}
	if !role.CanApprove() {
		return leave.ScheduleResponse{}, worklog.ErrUnauthorized
	}

	schedule, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}
	if schedule.Status != leave.ScheduleStatusPending {
		return leave.ScheduleResponse{}, leave.ErrScheduleAlreadyProcessed
	}
	if schedule.UserID == approverID {
		return leave.ScheduleResponse{}, leave.ErrSelfApproval
	}

	now := time.Now()
	schedule.Status = leave.ScheduleStatusApproved
	schedule.ApprovedBy = &approverID
	schedule.ApprovedAt = &now

	if err := s.leaveRepo.Update(ctx, schedule); err != nil {
		return leave.ScheduleResponse{}, fmt.Errorf("failed to approve leave schedule: %w", err)
	}

	return toResponse(schedule), nil
}

func (s *LeaveScheduleServiceImpl) RejectSchedule(ctx context.Context, req leave.RejectScheduleRequest) (leave.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ScheduleResponse{}, err
	}

	approverID, role, err := identityFromContext(ctx)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}
	if !role.CanApprove() {
		return leave.ScheduleResponse{}, worklog.ErrUnauthorized
	}

	schedule, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}
	if schedule.Status != leave.ScheduleStatusPending {
		return leave.ScheduleResponse{}, leave.ErrScheduleAlreadyProcessed
	}
	if schedule.UserID == approverID {
		return leave.ScheduleResponse{}, leave.ErrSelfApproval
	}

	now := time.Now()
	schedule.Status = leave.ScheduleStatusRejected
	schedule.ApprovedBy = &approverID
	schedule.ApprovedAt = &now
	schedule.RejectionReason = &req.Reason

	if err := s.leaveRepo.Update(ctx, schedule); err != nil {
		return leave.ScheduleResponse{}, fmt.Errorf("failed to reject leave schedule: %w", err)
	}

	return toResponse(schedule), nil
}

func (s *LeaveScheduleServiceImpl) CancelSchedule(ctx context.Context, id string) (leave.ScheduleResponse, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}

	schedule, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.ScheduleResponse{}, err
	}
	if schedule.UserID != userID {
		return leave.ScheduleResponse{}, worklog.ErrUnauthorized
	}
	if schedule.Status != leave.ScheduleStatusPending {
		return leave.ScheduleResponse{}, leave.ErrScheduleAlreadyProcessed
	}

	schedule.Status = leave.ScheduleStatusCancelled

	if err := s.leaveRepo.Update(ctx, schedule); err != nil {
		return leave.ScheduleResponse{}, fmt.Errorf("failed to cancel leave schedule: %w", err)
	}

	return toResponse(schedule), nil
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

func toResponse(schedule leave.LeaveSchedule) leave.ScheduleResponse {
	resp := leave.ScheduleResponse{
		ID:              schedule.ID,
		UserID:          schedule.UserID,
		StartDate:       schedule.StartDate.Format("2006-01-02"),
		EndDate:         schedule.EndDate.Format("2006-01-02"),
		Reason:          schedule.Reason,
		Status:          string(schedule.Status),
		ApprovedBy:      schedule.ApprovedBy,
		RejectionReason: schedule.RejectionReason,
	}
	if schedule.UserName != nil {
		resp.UserName = *schedule.UserName
	}
	return resp
}
