package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/domain/user"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
	}
}

func (s *HolidayServiceImpl) Lookup(ctx context.Context, date string) (*holiday.HolidayResponse, error) {
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a date in YYYY-MM-DD format",
		}}
	}

	found, err := s.holidayRepo.GetByDate(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to look up holiday: %w", err)
	}
	if found == nil {
		return nil, nil
	}

	return &holiday.HolidayResponse{
		Date: found.Date.Format("2006-01-02"),
		Name: found.Name,
	}, nil
}

func (s *HolidayServiceImpl) ListMonth(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	if month < 1 || month > 12 {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be between 1 and 12",
		}}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	holidays, err := s.holidayRepo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.HolidayResponse{
			Date: h.Date.Format("2006-01-02"),
			Name: h.Name,
		})
	}
	return responses, nil
}

func (s *HolidayServiceImpl) Upsert(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if err := requireAdmin(ctx); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	saved, err := s.holidayRepo.Upsert(ctx, holiday.Holiday{Date: date, Name: req.Name})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return holiday.HolidayResponse{
		Date: saved.Date.Format("2006-01-02"),
		Name: saved.Name,
	}, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, date string) error {
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a date in YYYY-MM-DD format",
		}}
	}
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.holidayRepo.Delete(ctx, parsed); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func requireAdmin(ctx context.Context) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if !user.Role(role).IsAdmin() {
		return worklog.ErrUnauthorized
	}
	return nil
}
