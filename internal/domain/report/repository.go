package report

import (
	"context"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type ReportRepository interface {
	// GetAttendanceSummary aggregates day statuses per employee over the
	// inclusive date range. Employees with no rows in the range are omitted.
	GetAttendanceSummary(ctx context.Context, db *database.DB, filter *SummaryFilter, startDate, endDate time.Time) ([]EmployeeSummary, error)
}
