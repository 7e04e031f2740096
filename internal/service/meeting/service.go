package meeting

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/meeting"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
	"github.com/staffledger/attendance-backend-go/internal/repository/postgresql"
)

type MeetingServiceImpl struct {
	db              *database.DB
	seriesRepo      meeting.SeriesRepository
	instanceRepo    meeting.InstanceRepository
	attendeeRepo    meeting.AttendeeRepository
	employeeRepo    employee.EmployeeRepository
	notificationSvc notification.Service
}

func NewMeetingService(
	db *database.DB,
	seriesRepo meeting.SeriesRepository,
	instanceRepo meeting.InstanceRepository,
	attendeeRepo meeting.AttendeeRepository,
	employeeRepo employee.EmployeeRepository,
	notificationSvc notification.Service,
) meeting.MeetingService {
	return &MeetingServiceImpl{
		db:              db,
		seriesRepo:      seriesRepo,
		instanceRepo:    instanceRepo,
		attendeeRepo:    attendeeRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
	}
}

// CreateSeries implements meeting.MeetingService.
func (s *MeetingServiceImpl) CreateSeries(ctx context.Context, req meeting.CreateSeriesRequest) (meeting.SeriesResponse, error) {
	if err := req.Validate(); err != nil {
		return meeting.SeriesResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return meeting.SeriesResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizerID, ok := claims["employee_id"].(string)
	if !ok || organizerID == "" {
		return meeting.SeriesResponse{}, employee.ErrEmployeeNotFound
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	rule := ""
	if req.RecurrenceRule != nil {
		rule = *req.RecurrenceRule
	}

	instances, err := meeting.ExpandInstances(
		meeting.RecurrenceType(req.RecurrenceType), rule,
		startDate, endDate, req.StartTime, req.EndTime,
	)
	if err != nil {
		return meeting.SeriesResponse{}, err
	}

	var series meeting.Series
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		series, err = s.seriesRepo.Create(ctx, meeting.Series{
			Title:          req.Title,
			Description:    req.Description,
			OrganizerID:    organizerID,
			RecurrenceType: meeting.RecurrenceType(req.RecurrenceType),
			RecurrenceRule: req.RecurrenceRule,
			StartDate:      startDate,
			EndDate:        endDate,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
		})
		if err != nil {
			return err
		}

		for i := range instances {
			instances[i].SeriesID = series.ID
		}

		created, err := s.instanceRepo.BulkCreate(ctx, instances)
		if err != nil {
			return err
		}
		instances = created

		if len(req.AttendeeIDs) > 0 {
			attendees := make([]meeting.Attendee, 0, len(instances)*len(req.AttendeeIDs))
			for _, instance := range instances {
				for _, employeeID := range req.AttendeeIDs {
					attendees = append(attendees, meeting.Attendee{
						InstanceID: instance.ID,
						EmployeeID: employeeID,
					})
				}
			}
			if err := s.attendeeRepo.BulkCreate(ctx, attendees); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return meeting.SeriesResponse{}, err
	}

	return mapSeriesToResponse(series, len(instances)), nil
}

// GetSeries implements meeting.MeetingService.
func (s *MeetingServiceImpl) GetSeries(ctx context.Context, id string) (meeting.SeriesResponse, error) {
	series, err := s.seriesRepo.GetByID(ctx, id)
	if err != nil {
		return meeting.SeriesResponse{}, err
	}

	_, total, err := s.instanceRepo.List(ctx, meeting.InstanceFilter{SeriesID: &id, Page: 1, Limit: 1})
	if err != nil {
		return meeting.SeriesResponse{}, fmt.Errorf("failed to count meeting instances: %w", err)
	}

	return mapSeriesToResponse(series, int(total)), nil
}

// DeleteSeries implements meeting.MeetingService.
func (s *MeetingServiceImpl) DeleteSeries(ctx context.Context, id string) error {
	return s.seriesRepo.Delete(ctx, id)
}

// ListInstances implements meeting.MeetingService.
func (s *MeetingServiceImpl) ListInstances(ctx context.Context, filter meeting.InstanceFilter) (meeting.ListInstancesResponse, error) {
	if err := filter.Validate(); err != nil {
		return meeting.ListInstancesResponse{}, err
	}

	instances, total, err := s.instanceRepo.List(ctx, filter)
	if err != nil {
		return meeting.ListInstancesResponse{}, fmt.Errorf("failed to list meeting instances: %w", err)
	}

	responses := make([]meeting.InstanceResponse, 0, len(instances))
	for _, instance := range instances {
		responses = append(responses, mapInstanceToResponse(instance))
	}

	return meeting.ListInstancesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Instances:  responses,
	}, nil
}

// CancelInstance implements meeting.MeetingService.
func (s *MeetingServiceImpl) CancelInstance(ctx context.Context, id string) error {
	instance, err := s.instanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if instance.Cancelled {
		return meeting.ErrInstanceCancelled
	}

	if err := s.instanceRepo.SetCancelled(ctx, id, true); err != nil {
		return err
	}

	s.notifyCancellation(ctx, instance)

	return nil
}

// MarkAttendance implements meeting.MeetingService.
func (s *MeetingServiceImpl) MarkAttendance(ctx context.Context, req meeting.MarkAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	instance, err := s.instanceRepo.GetByID(ctx, req.InstanceID)
	if err != nil {
		return err
	}
	if instance.Cancelled {
		return meeting.ErrInstanceCancelled
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	return s.attendeeRepo.Upsert(ctx, meeting.Attendee{
		InstanceID: req.InstanceID,
		EmployeeID: req.EmployeeID,
		Attended:   req.Attended,
	})
}

func (s *MeetingServiceImpl) notifyCancellation(ctx context.Context, instance meeting.Instance) {
	attendees, err := s.attendeeRepo.ListByInstance(ctx, instance.ID)
	if err != nil {
		slog.Warn("failed to load attendees for cancellation notice", "error", err)
		return
	}

	title := "Meeting"
	if instance.Title != nil {
		title = *instance.Title
	}

	var reqs []notification.CreateNotificationRequest
	for _, attendee := range attendees {
		emp, err := s.employeeRepo.GetByID(ctx, attendee.EmployeeID)
		if err != nil || emp.UserID == nil {
			continue
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: *emp.UserID,
			Type:        notification.TypeMeetingCancelled,
			Title:       "Meeting Cancelled",
			Message:     fmt.Sprintf("%s on %s has been cancelled", title, instance.InstanceDate.Format("2006-01-02")),
			Data: map[string]interface{}{
				"instance_id": instance.ID,
			},
		})
	}

	if err := s.notificationSvc.QueueBulkNotification(ctx, reqs); err != nil {
		slog.Warn("failed to queue cancellation notifications", "error", err)
	}
}

func mapSeriesToResponse(series meeting.Series, instanceCount int) meeting.SeriesResponse {
	return meeting.SeriesResponse{
		ID:             series.ID,
		Title:          series.Title,
		Description:    series.Description,
		OrganizerID:    series.OrganizerID,
		RecurrenceType: string(series.RecurrenceType),
		RecurrenceRule: series.RecurrenceRule,
		StartDate:      series.StartDate.Format("2006-01-02"),
		EndDate:        series.EndDate.Format("2006-01-02"),
		StartTime:      series.StartTime,
		EndTime:        series.EndTime,
		InstanceCount:  instanceCount,
		CreatedAt:      series.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapInstanceToResponse(instance meeting.Instance) meeting.InstanceResponse {
	return meeting.InstanceResponse{
		ID:           instance.ID,
		SeriesID:     instance.SeriesID,
		Title:        instance.Title,
		InstanceDate: instance.InstanceDate.Format("2006-01-02"),
		StartTime:    instance.StartTime,
		EndTime:      instance.EndTime,
		Cancelled:    instance.Cancelled,
	}
}
