package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workdesk/workdesk-backend-go/internal/domain/overtime"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `o.id, o.user_id, u.name, o.date, o.day_class, o.status,
	o.expected_start, o.expected_end, o.compensation_method,
	o.meal_allowance_used, o.transport_allowance_used,
	o.client_name, o.work_description,
	o.decided_by, o.decided_at, o.rejection_reason,
	o.created_at, o.updated_at`

func scanOvertime(row pgx.Row) (overtime.OvertimeRequest, error) {
	var ot overtime.OvertimeRequest
	err := row.Scan(
		&ot.ID, &ot.UserID, &ot.UserName, &ot.Date, &ot.DayClass, &ot.Status,
		&ot.ExpectedStart, &ot.ExpectedEnd, &ot.CompensationMethod,
		&ot.MealAllowanceUsed, &ot.TransportAllowanceUsed,
		&ot.ClientName, &ot.WorkDescription,
		&ot.DecidedBy, &ot.DecidedAt, &ot.RejectionReason,
		&ot.CreatedAt, &ot.UpdatedAt,
	)
	return ot, err
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO overtime_requests (
			id, user_id, date, day_class, status, expected_start, expected_end,
			compensation_method, meal_allowance_used, transport_allowance_used,
			client_name, work_description
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		req.Date,
		req.DayClass,
		req.Status,
		req.ExpectedStart,
		req.ExpectedEnd,
		req.CompensationMethod,
		req.MealAllowanceUsed,
		req.TransportAllowanceUsed,
		req.ClientName,
		req.WorkDescription,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
	`

	ot, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request by ID: %w", err)
	}

	return ot, nil
}

// Update implements overtime.OvertimeRepository.
func (r *overtimeRepository) Update(ctx context.Context, req overtime.OvertimeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $1, decided_by = $2, decided_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		req.Status,
		req.DecidedBy,
		req.DecidedAt,
		req.RejectionReason,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}

// ListByMonth implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByMonth(ctx context.Context, monthStart, monthEnd time.Time, userID, status *string) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.date >= $1 AND o.date <= $2
	`
	args := []interface{}{monthStart, monthEnd}
	argIdx := 3

	if userID != nil && *userID != "" {
		query += fmt.Sprintf(" AND o.user_id = $%d", argIdx)
		args = append(args, *userID)
		argIdx++
	}

	if status != nil && *status != "" {
		query += fmt.Sprintf(" AND o.status = $%d", argIdx)
		args = append(args, *status)
		argIdx++
	}

	query += ` ORDER BY o.date ASC, o.created_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		ot, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, ot)
	}

	return requests, rows.Err()
}
