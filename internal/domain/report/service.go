package report

import "context"

type ReportService interface {
	GetAttendanceSummary(ctx context.Context, filter *SummaryFilter) (*SummaryResponse, error)
	// ExportAttendancePDF renders the summary as a PDF document.
	ExportAttendancePDF(ctx context.Context, filter *SummaryFilter) ([]byte, error)
}
