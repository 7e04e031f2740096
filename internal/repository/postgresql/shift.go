package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/shift"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `s.id, s.name, s.start_time, s.end_time, s.grace_minutes,
	   s.half_day_hours, s.early_leave_threshold_minutes, s.break_duration_minutes,
	   s.created_at, s.updated_at, s.deleted_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.GraceMinutes,
		&sh.HalfDayHours, &sh.EarlyLeaveThresholdMinutes, &sh.BreakDurationMinutes,
		&sh.CreatedAt, &sh.UpdatedAt, &sh.DeletedAt,
	)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, grace_minutes,
			half_day_hours, early_leave_threshold_minutes, break_duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sh.Name, sh.StartTime, sh.EndTime, sh.GraceMinutes,
		sh.HalfDayHours, sh.EarlyLeaveThresholdMinutes, sh.BreakDurationMinutes,
	).Scan(&sh.ID, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return sh, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.id = $1 AND s.deleted_at IS NULL`

	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return sh, nil
}

// GetByEmployeeID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.shift_id = s.id
		WHERE e.id = $1 AND s.deleted_at IS NULL AND e.deleted_at IS NULL`

	sh, err := scanShift(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return sh, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.deleted_at IS NULL
		ORDER BY s.start_time ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, sh shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, grace_minutes = $4,
			half_day_hours = $5, early_leave_threshold_minutes = $6,
			break_duration_minutes = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		sh.Name, sh.StartTime, sh.EndTime, sh.GraceMinutes,
		sh.HalfDayHours, sh.EarlyLeaveThresholdMinutes, sh.BreakDurationMinutes,
		sh.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var assigned int
	countQuery := `SELECT COUNT(*) FROM employees WHERE shift_id = $1 AND deleted_at IS NULL`
	if err := q.QueryRow(ctx, countQuery, id).Scan(&assigned); err != nil {
		return fmt.Errorf("failed to count shift assignments: %w", err)
	}
	if assigned > 0 {
		return shift.ErrShiftInUse
	}

	query := `
		UPDATE shifts
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
