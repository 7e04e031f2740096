package leave

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/leave"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/domain/user"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
	"github.com/staffledger/attendance-backend-go/internal/pkg/email"
	"github.com/staffledger/attendance-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db              *database.DB
	leaveRepo       leave.LeaveRepository
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	userRepo        user.UserRepository
	notificationSvc notification.Service
	emailService    email.EmailService
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		leaveRepo:       leaveRepo,
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		emailService:    emailService,
	}
}

// RequestLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RequestLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	overlaps, err := s.leaveRepo.HasOverlap(ctx, req.EmployeeID, startDate, endDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyAdmins(ctx, emp, created)

	return mapLeaveToResponse(created), nil
}

// ApproveLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decideLeave(ctx, req, leave.StatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decideLeave(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decideLeave(ctx context.Context, req leave.DecideLeaveRequest, status leave.LeaveStatus) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	deciderID, _ := claims["user_id"].(string)

	record, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if record.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now()
	record.Status = status
	record.DecidedBy = &deciderID
	record.DecidedAt = &now
	record.Note = req.Note

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.leaveRepo.Update(ctx, record); err != nil {
			return err
		}
		if status == leave.StatusApproved {
			// Stamp the approved range so the absence-marking job and the
			// summary report see these days as leave, not absence.
			if err := s.attendanceRepo.SetDayStatusRange(ctx, record.EmployeeID, record.StartDate, record.EndDate, attendance.DayLeave); err != nil {
				return fmt.Errorf("failed to stamp leave days: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyDecision(ctx, record)

	return mapLeaveToResponse(record), nil
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(record), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	records, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapLeaveToResponse(record))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Leaves:     responses,
	}, nil
}

func (s *LeaveServiceImpl) notifyAdmins(ctx context.Context, emp employee.Employee, record leave.LeaveRequest) {
	admins, err := s.userRepo.GetAdmins(ctx)
	if err != nil {
		slog.Warn("failed to load admins for leave notification", "error", err)
		return
	}

	reqs := make([]notification.CreateNotificationRequest, 0, len(admins))
	for _, admin := range admins {
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: admin.ID,
			Type:        notification.TypeLeaveRequest,
			Title:       "New Leave Request",
			Message:     fmt.Sprintf("%s requested %s leave from %s to %s", emp.FullName, record.Type, record.StartDate.Format("2006-01-02"), record.EndDate.Format("2006-01-02")),
			Data: map[string]interface{}{
				"leave_id":    record.ID,
				"employee_id": record.EmployeeID,
			},
		})
	}

	if err := s.notificationSvc.QueueBulkNotification(ctx, reqs); err != nil {
		slog.Warn("failed to queue leave request notifications", "error", err)
	}
}

func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, record leave.LeaveRequest) {
	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		slog.Warn("failed to load employee for leave decision notification", "error", err)
		return
	}

	notifType := notification.TypeLeaveApproved
	title := "Leave Request Approved"
	if record.Status == leave.StatusRejected {
		notifType = notification.TypeLeaveRejected
		title = "Leave Request Rejected"
	}

	if emp.UserID != nil {
		err := s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: *emp.UserID,
			SenderID:    record.DecidedBy,
			Type:        notifType,
			Title:       title,
			Message:     fmt.Sprintf("Your %s leave from %s to %s has been %s", record.Type, record.StartDate.Format("2006-01-02"), record.EndDate.Format("2006-01-02"), record.Status),
			Data: map[string]interface{}{
				"leave_id": record.ID,
			},
		})
		if err != nil {
			slog.Warn("failed to queue leave decision notification", "error", err)
		}
	}

	if err := s.emailService.SendLeaveDecision(
		emp.Email,
		emp.FullName,
		string(record.Type),
		record.StartDate.Format("2006-01-02"),
		record.EndDate.Format("2006-01-02"),
		string(record.Status),
		record.Note,
	); err != nil {
		slog.Warn("failed to send leave decision email", "error", err)
	}
}

func mapLeaveToResponse(record leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Type:         string(record.Type),
		StartDate:    record.StartDate.Format("2006-01-02"),
		EndDate:      record.EndDate.Format("2006-01-02"),
		Reason:       record.Reason,
		Status:       string(record.Status),
		DecidedBy:    record.DecidedBy,
		Note:         record.Note,
		CreatedAt:    record.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if record.DecidedAt != nil {
		decidedAt := record.DecidedAt.Format("2006-01-02 15:04:05")
		resp.DecidedAt = &decidedAt
	}
	return resp
}
