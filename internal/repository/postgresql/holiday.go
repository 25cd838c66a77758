package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// GetByDate implements holiday.HolidayRepository.
func (r *holidayRepository) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name, created_at, updated_at
		FROM holidays
		WHERE date = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Not a holiday
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return &h, nil
}

// ListByRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepository) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING date, name, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Date, h.Name).Scan(&h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
