package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workdesk/workdesk-backend-go/internal/domain/leave"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/database"
)

type leaveScheduleRepository struct {
	db *database.DB
}

func NewLeaveScheduleRepository(db *database.DB) leave.LeaveScheduleRepository {
	return &leaveScheduleRepository{db: db}
}

const leaveColumns = `l.id, l.user_id, u.name, l.start_date, l.end_date, l.reason,
	l.status, l.approved_by, l.approved_at, l.rejection_reason,
	l.created_at, l.updated_at`

func scanLeaveSchedule(row pgx.Row) (leave.LeaveSchedule, error) {
	var s leave.LeaveSchedule
	err := row.Scan(
		&s.ID, &s.UserID, &s.UserName, &s.StartDate, &s.EndDate, &s.Reason,
		&s.Status, &s.ApprovedBy, &s.ApprovedAt, &s.RejectionReason,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements leave.LeaveScheduleRepository.
func (r *leaveScheduleRepository) Create(ctx context.Context, schedule leave.LeaveSchedule) (leave.LeaveSchedule, error) {
	q := GetQuerier(ctx, r.db)

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_schedules (id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		schedule.ID,
		schedule.UserID,
		schedule.StartDate,
		schedule.EndDate,
		schedule.Reason,
		schedule.Status,
	).Scan(&schedule.CreatedAt, &schedule.UpdatedAt)

	if err != nil {
		return leave.LeaveSchedule{}, fmt.Errorf("failed to create leave schedule: %w", err)
	}

	return schedule, nil
}

// GetByID implements leave.LeaveScheduleRepository.
func (r *leaveScheduleRepository) GetByID(ctx context.Context, id string) (leave.LeaveSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_schedules l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`

	s, err := scanLeaveSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveSchedule{}, leave.ErrScheduleNotFound
		}
		return leave.LeaveSchedule{}, fmt.Errorf("failed to get leave schedule by ID: %w", err)
	}

	return s, nil
}

// Update implements leave.LeaveScheduleRepository.
func (r *leaveScheduleRepository) Update(ctx context.Context, schedule leave.LeaveSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_schedules
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		schedule.Status,
		schedule.ApprovedBy,
		schedule.ApprovedAt,
		schedule.RejectionReason,
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrScheduleNotFound
	}

	return nil
}

// ListByUserAndMonth implements leave.LeaveScheduleRepository.
func (r *leaveScheduleRepository) ListByUserAndMonth(ctx context.Context, userID string, monthStart time.Time) ([]leave.LeaveSchedule, error) {
	q := GetQuerier(ctx, r.db)

	monthEnd := monthStart.AddDate(0, 1, -1)

	// A schedule overlaps the month when its range intersects [monthStart, monthEnd].
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_schedules l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE l.user_id = $1
		  AND l.start_date <= $2
		  AND l.end_date >= $3
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, userID, monthEnd, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave schedules: %w", err)
	}
	defer rows.Close()

	var schedules []leave.LeaveSchedule
	for rows.Next() {
		s, err := scanLeaveSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// ListPending implements leave.LeaveScheduleRepository.
func (r *leaveScheduleRepository) ListPending(ctx context.Context) ([]leave.LeaveSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_schedules l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE l.status = $1
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, leave.ScheduleStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave schedules: %w", err)
	}
	defer rows.Close()

	var schedules []leave.LeaveSchedule
	for rows.Next() {
		s, err := scanLeaveSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}
