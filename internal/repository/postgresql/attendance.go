package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.shift_id,
	   a.check_in_time, a.check_out_time, a.check_in_status, a.check_out_status,
	   a.day_status, a.work_hours, a.note, a.created_at, a.updated_at,
	   e.full_name AS employee_name,
	   d.name AS department_name`

const attendanceJoins = `
	FROM attendances a
	LEFT JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = e.department_id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ShiftID,
		&att.CheckInTime, &att.CheckOutTime, &att.CheckInStatus, &att.CheckOutStatus,
		&att.DayStatus, &att.WorkHours, &att.Note, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
		&att.DepartmentName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, shift_id, check_in_time, check_out_time,
			check_in_status, check_out_status, day_status, work_hours, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.ShiftID, att.CheckInTime, att.CheckOutTime,
		att.CheckInStatus, att.CheckOutStatus, att.DayStatus, att.WorkHours, att.Note,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1 AND a.date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET date = $1, shift_id = $2, check_in_time = $3, check_out_time = $4,
			check_in_status = $5, check_out_status = $6, day_status = $7,
			work_hours = $8, note = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		att.Date, att.ShiftID, att.CheckInTime, att.CheckOutTime,
		att.CheckInStatus, att.CheckOutStatus, att.DayStatus,
		att.WorkHours, att.Note, att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.DayStatus != nil && *filter.DayStatus != "" {
		baseWhere += fmt.Sprintf(" AND a.day_status = $%d", argIdx)
		args = append(args, *filter.DayStatus)
		argIdx++
	}

	countQuery := "SELECT COUNT(*)" + attendanceJoins + " WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Build ORDER BY
	orderByField := "a.date"
	switch filter.SortBy {
	case "employee_name":
		orderByField = "e.full_name"
	case "check_in_time":
		orderByField = "a.check_in_time"
	case "day_status":
		orderByField = "a.day_status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`SELECT `+attendanceColumns+attendanceJoins+`
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.DayStatus != nil && *filter.DayStatus != "" {
		baseWhere += fmt.Sprintf(" AND a.day_status = $%d", argIdx)
		args = append(args, *filter.DayStatus)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`SELECT `+attendanceColumns+attendanceJoins+`
		WHERE %s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

// GetOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenSessions(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.date = $1
		  AND a.check_in_time IS NOT NULL
		  AND a.check_out_time IS NULL`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		sessions = append(sessions, att)
	}

	return sessions, rows.Err()
}

// BulkCreate implements attendance.AttendanceRepository. Employee-days that
// already have a record are left untouched.
func (r *attendanceRepositoryImpl) BulkCreate(ctx context.Context, attendances []attendance.Attendance) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, shift_id, check_in_status, day_status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	inserted := 0
	for _, att := range attendances {
		tag, err := q.Exec(ctx, query,
			att.EmployeeID, att.Date, att.ShiftID, att.CheckInStatus, att.DayStatus,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to bulk create attendance: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// SetDayStatusRange implements attendance.AttendanceRepository. Missing
// employee-day records inside the range are created.
func (r *attendanceRepositoryImpl) SetDayStatusRange(ctx context.Context, employeeID string, from, to time.Time, status attendance.DayStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, day_status)
		SELECT $1, d::date, $4
		FROM generate_series($2::date, $3::date, interval '1 day') AS d
		ON CONFLICT (employee_id, date)
		DO UPDATE SET day_status = EXCLUDED.day_status, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, from, to, status); err != nil {
		return fmt.Errorf("failed to set day status range: %w", err)
	}

	return nil
}
