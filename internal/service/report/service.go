package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/staffledger/attendance-backend-go/internal/domain/report"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db         *database.DB
	reportRepo report.ReportRepository
}

func NewReportService(db *database.DB, reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{db: db, reportRepo: reportRepo}
}

// GetAttendanceSummary implements report.ReportService.
func (s *ReportServiceImpl) GetAttendanceSummary(ctx context.Context, filter *report.SummaryFilter) (*report.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", filter.StartDate)
	endDate, _ := time.Parse("2006-01-02", filter.EndDate)

	summaries, err := s.reportRepo.GetAttendanceSummary(ctx, s.db, filter, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance summary: %w", err)
	}

	return &report.SummaryResponse{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Employees: summaries,
	}, nil
}

// ExportAttendancePDF implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendancePDF(ctx context.Context, filter *report.SummaryFilter) ([]byte, error) {
	summary, err := s.GetAttendanceSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(summary.Employees) == 0 {
		return nil, report.ErrNoDataInRange
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Summary")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", summary.StartDate, summary.EndDate))
	pdf.Ln(10)

	headers := []string{"Employee", "Department", "Present", "Absent", "Half Day", "Early Leave", "Leave", "Late", "Work Hours"}
	widths := []float64{55, 40, 20, 20, 22, 26, 20, 18, 30}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, emp := range summary.Employees {
		department := "-"
		if emp.DepartmentName != nil {
			department = *emp.DepartmentName
		}
		cells := []string{
			emp.EmployeeName,
			department,
			fmt.Sprintf("%d", emp.PresentDays),
			fmt.Sprintf("%d", emp.AbsentDays),
			fmt.Sprintf("%d", emp.HalfDays),
			fmt.Sprintf("%d", emp.EarlyLeaveDays),
			fmt.Sprintf("%d", emp.LeaveDays),
			fmt.Sprintf("%d", emp.LateCheckIns),
			emp.TotalWorkHours,
		}
		for i, cell := range cells {
			align := "C"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render attendance report: %w", err)
	}

	return buf.Bytes(), nil
}
