package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/database"
)

type workLogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepository{db: db}
}

const workLogColumns = `w.id, w.user_id, u.name, u.department, w.date,
	w.check_in, w.check_out, w.work_type, w.total_minutes,
	w.created_at, w.updated_at`

func scanWorkRecord(row pgx.Row) (worklog.DailyWorkRecord, error) {
	var rec worklog.DailyWorkRecord
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.UserName, &rec.Department, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.WorkType, &rec.TotalMinutes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements worklog.WorkLogRepository.
func (r *workLogRepository) Create(ctx context.Context, record worklog.DailyWorkRecord) (worklog.DailyWorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO work_records (id, user_id, date, check_in, check_out, work_type, total_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.WorkType,
		record.TotalMinutes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return worklog.DailyWorkRecord{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return record, nil
}

// GetByID implements worklog.WorkLogRepository.
func (r *workLogRepository) GetByID(ctx context.Context, id string) (worklog.DailyWorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_records w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.id = $1
	`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.DailyWorkRecord{}, worklog.ErrWorkRecordNotFound
		}
		return worklog.DailyWorkRecord{}, fmt.Errorf("failed to get work record by ID: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements worklog.WorkLogRepository.
func (r *workLogRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*worklog.DailyWorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_records w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.user_id = $1 AND w.date = $2
		LIMIT 1
	`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing record found
		}
		return nil, fmt.Errorf("failed to get work record by user and date: %w", err)
	}

	return &rec, nil
}

// Update implements worklog.WorkLogRepository.
func (r *workLogRepository) Update(ctx context.Context, record worklog.DailyWorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_records
		SET check_in = $1, check_out = $2, work_type = $3, total_minutes = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		record.CheckIn,
		record.CheckOut,
		record.WorkType,
		record.TotalMinutes,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update work record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrWorkRecordNotFound
	}

	return nil
}

// ListByDateRange implements worklog.WorkLogRepository.
func (r *workLogRepository) ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]worklog.DailyWorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_records w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.date >= $1 AND w.date <= $2
	`
	args := []interface{}{start, end}

	if department != "" {
		query += ` AND u.department = $3`
		args = append(args, department)
	}
	query += ` ORDER BY u.name ASC, w.date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	defer rows.Close()

	var records []worklog.DailyWorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListOpenSessions implements worklog.WorkLogRepository.
func (r *workLogRepository) ListOpenSessions(ctx context.Context, before time.Time) ([]worklog.DailyWorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_records w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.check_in IS NOT NULL
		  AND w.check_out IS NULL
		  AND w.date < $1
		ORDER BY w.date ASC
	`

	rows, err := q.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var records []worklog.DailyWorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open session: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
