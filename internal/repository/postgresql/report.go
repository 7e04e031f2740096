package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/domain/report"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct{}

func NewReportRepository() report.ReportRepository {
	return &reportRepositoryImpl{}
}

// GetAttendanceSummary implements report.ReportRepository.
func (r *reportRepositoryImpl) GetAttendanceSummary(ctx context.Context, db *database.DB, filter *report.SummaryFilter, startDate, endDate time.Time) ([]report.EmployeeSummary, error) {
	q := GetQuerier(ctx, db)

	baseWhere := "a.date >= $1 AND a.date <= $2"
	args := []interface{}{startDate, endDate}
	argIdx := 3

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

	query := fmt.Sprintf(`
		SELECT a.employee_id,
			   e.full_name,
			   d.name AS department_name,
			   COUNT(*) FILTER (WHERE a.day_status IN ('present', 'manual_present', 'work_from_home')) AS present_days,
			   COUNT(*) FILTER (WHERE a.day_status = 'absent') AS absent_days,
			   COUNT(*) FILTER (WHERE a.day_status = 'half_day') AS half_days,
			   COUNT(*) FILTER (WHERE a.day_status = 'early_leave') AS early_leave_days,
			   COUNT(*) FILTER (WHERE a.day_status = 'leave') AS leave_days,
			   COUNT(*) FILTER (WHERE a.check_in_status = 'late') AS late_check_ins,
			   COALESCE(EXTRACT(EPOCH FROM SUM(a.work_hours::interval)), 0) AS total_work_seconds
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE %s
		GROUP BY a.employee_id, e.full_name, d.name
		ORDER BY e.full_name ASC`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance summary: %w", err)
	}
	defer rows.Close()

	var summaries []report.EmployeeSummary
	for rows.Next() {
		var summary report.EmployeeSummary
		var totalWorkSeconds float64
		err := rows.Scan(
			&summary.EmployeeID,
			&summary.EmployeeName,
			&summary.DepartmentName,
			&summary.PresentDays,
			&summary.AbsentDays,
			&summary.HalfDays,
			&summary.EarlyLeaveDays,
			&summary.LeaveDays,
			&summary.LateCheckIns,
			&totalWorkSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}

		total := int(totalWorkSeconds)
		summary.TotalWorkHours = fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
