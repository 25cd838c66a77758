package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/domain/overtime"
	"github.com/workdesk/workdesk-backend-go/internal/domain/user"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	holidayRepo  holiday.HolidayRepository
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, holidayRepo holiday.HolidayRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo: overtimeRepo,
		holidayRepo:  holidayRepo,
	}
}

func (s *OvertimeServiceImpl) CreateRequest(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	dayClass, err := s.classifyDay(ctx, date)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	entity, err := buildRequest(userID, date, dayClass, req)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	created, err := s.overtimeRepo.Create(ctx, entity)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return toResponse(created), nil
}

// buildRequest validates the shape of a request against its day class and
// assembles the pending entity. Weekday requests carry end time only and
// may use allowances; weekend and holiday requests carry both times and
// may not.
func buildRequest(userID string, date time.Time, dayClass overtime.DayClass, req overtime.CreateOvertimeRequest) (overtime.OvertimeRequest, error) {
	var errs validator.ValidationErrors

	method := overtime.CompensationMethod(req.CompensationMethod)

	switch dayClass {
	case overtime.DayClassWeekday:
		if req.ExpectedStart != nil && *req.ExpectedStart != "" {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_start",
				Message: "expected_start is not accepted for weekday overtime",
			})
		}
		if method == overtime.CompensationSpecialLeave {
			errs = append(errs, validator.ValidationError{
				Field:   "compensation_method",
				Message: "special_leave is reserved for weekend or holiday work",
			})
		}
	case overtime.DayClassHoliday:
		if req.ExpectedStart == nil || *req.ExpectedStart == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_start",
				Message: "expected_start is required for weekend or holiday work",
			})
		}
		if req.MealAllowanceUsed || req.TransportAllowanceUsed {
			errs = append(errs, validator.ValidationError{
				Field:   "meal_allowance_used",
				Message: "allowances apply to weekday overtime only",
			})
		}
		if method == overtime.CompensationPaidAllowance {
			errs = append(errs, validator.ValidationError{
				Field:   "compensation_method",
				Message: "paid_allowance is reserved for weekday overtime",
			})
		}
	}

	if len(errs) > 0 {
		return overtime.OvertimeRequest{}, errs
	}

	entity := overtime.OvertimeRequest{
		UserID:                 userID,
		Date:                   date,
		DayClass:               dayClass,
		Status:                 overtime.StatusPending,
		CompensationMethod:     method,
		MealAllowanceUsed:      req.MealAllowanceUsed,
		TransportAllowanceUsed: req.TransportAllowanceUsed,
		ClientName:             req.ClientName,
		WorkDescription:        req.WorkDescription,
	}

	end, _ := validator.IsValidClockTime(req.ExpectedEnd)
	entity.ExpectedEnd = onDate(date, end)

	if dayClass == overtime.DayClassHoliday {
		start, _ := validator.IsValidClockTime(*req.ExpectedStart)
		t := onDate(date, start)
		entity.ExpectedStart = &t
	}

	return entity, nil
}

func (s *OvertimeServiceImpl) classifyDay(ctx context.Context, date time.Time) (overtime.DayClass, error) {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return overtime.DayClassHoliday, nil
	}

	found, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to classify overtime date: %w", err)
	}
	if found != nil {
		return overtime.DayClassHoliday, nil
	}
	return overtime.DayClassWeekday, nil
}

func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.ListFilter) ([]overtime.OvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, role, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Employees only ever see their own requests.
	if !role.IsManager() {
		filter.UserID = &userID
	}

	monthStart := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	requests, err := s.overtimeRepo.ListByMonth(ctx, monthStart, monthEnd, filter.UserID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

func (s *OvertimeServiceImpl) Approve(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	return s.decide(ctx, id, overtime.StatusApproved, nil)
}

func (s *OvertimeServiceImpl) Compensate(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	return s.decide(ctx, id, overtime.StatusCompensated, nil)
}

func (s *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.RejectOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}
	return s.decide(ctx, req.ID, overtime.StatusCancelled, &req.Reason)
}

// decide applies one manager decision to a request. The transition table
// is the single gate; nothing is written when the move is undefined.
func (s *OvertimeServiceImpl) decide(ctx context.Context, id string, next overtime.Status, reason *string) (overtime.OvertimeResponse, error) {
	deciderID, role, err := identityFromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if !role.CanApprove() {
		return overtime.OvertimeResponse{}, worklog.ErrUnauthorized
	}

	request, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if request.UserID == deciderID {
		return overtime.OvertimeResponse{}, overtime.ErrSelfApproval
	}
	if !request.Status.CanTransition(next) {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidTransition
	}

	// Rejecting past the pending stage is only defined for holiday work.
	if next == overtime.StatusCancelled && request.Status == overtime.StatusApproved && request.DayClass != overtime.DayClassHoliday {
		return overtime.OvertimeResponse{}, overtime.ErrRejectNeedsApproved
	}

	now := time.Now()
	request.Status = next
	request.DecidedBy = &deciderID
	request.DecidedAt = &now
	request.RejectionReason = reason

	if err := s.overtimeRepo.Update(ctx, request); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime request: %w", err)
	}

	return toResponse(request), nil
}

func (s *OvertimeServiceImpl) BulkApprove(ctx context.Context, req overtime.BulkApproveRequest) (overtime.BulkApproveResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.BulkApproveResponse{}, err
	}

	result := overtime.BulkApproveResponse{
		ApprovedIDs: make([]string, 0, len(req.IDs)),
	}

	for _, id := range req.IDs {
		if _, err := s.Approve(ctx, id); err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[id] = err.Error()
			continue
		}
		result.ApprovedIDs = append(result.ApprovedIDs, id)
	}

	return result, nil
}

func (s *OvertimeServiceImpl) Cancel(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	request, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if request.UserID != userID {
		return overtime.OvertimeResponse{}, overtime.ErrNotRequester
	}
	// Requesters can withdraw only while the request is still pending.
	if request.Status != overtime.StatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidTransition
	}

	request.Status = overtime.StatusCancelled

	if err := s.overtimeRepo.Update(ctx, request); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to cancel overtime request: %w", err)
	}

	return toResponse(request), nil
}

func (s *OvertimeServiceImpl) Reapply(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	userID, _, err := identityFromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	previous, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if previous.UserID != userID {
		return overtime.OvertimeResponse{}, overtime.ErrNotRequester
	}
	if previous.Status != overtime.StatusCancelled {
		return overtime.OvertimeResponse{}, overtime.ErrNotCancelled
	}

	fresh := overtime.OvertimeRequest{
		UserID:                 previous.UserID,
		Date:                   previous.Date,
		DayClass:               previous.DayClass,
		Status:                 overtime.StatusPending,
		ExpectedStart:          previous.ExpectedStart,
		ExpectedEnd:            previous.ExpectedEnd,
		CompensationMethod:     previous.CompensationMethod,
		MealAllowanceUsed:      previous.MealAllowanceUsed,
		TransportAllowanceUsed: previous.TransportAllowanceUsed,
		ClientName:             previous.ClientName,
		WorkDescription:        previous.WorkDescription,
	}

	created, err := s.overtimeRepo.Create(ctx, fresh)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to reapply overtime request: %w", err)
	}

	return toResponse(created), nil
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

func onDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

func toResponse(req overtime.OvertimeRequest) overtime.OvertimeResponse {
	resp := overtime.OvertimeResponse{
		ID:                     req.ID,
		UserID:                 req.UserID,
		Date:                   req.Date.Format("2006-01-02"),
		DayClass:               string(req.DayClass),
		Status:                 string(req.Status),
		ExpectedEnd:            req.ExpectedEnd.Format("15:04"),
		CompensationMethod:     string(req.CompensationMethod),
		MealAllowanceUsed:      req.MealAllowanceUsed,
		TransportAllowanceUsed: req.TransportAllowanceUsed,
		ClientName:             req.ClientName,
		WorkDescription:        req.WorkDescription,
		RejectionReason:        req.RejectionReason,
	}
	if req.ExpectedStart != nil {
		v := req.ExpectedStart.Format("15:04")
		resp.ExpectedStart = &v
	}
	if req.UserName != nil {
		resp.UserName = *req.UserName
	}
	return resp
}
