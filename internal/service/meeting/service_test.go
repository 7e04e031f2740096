package meeting

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/attendance-backend-go/internal/domain/employee"
	"github.com/staffledger/attendance-backend-go/internal/domain/meeting"
	"github.com/staffledger/attendance-backend-go/internal/domain/notification"
	"github.com/staffledger/attendance-backend-go/internal/repository/postgresql"
)

type fakeSeriesRepo struct {
	series map[string]meeting.Series
	nextID int
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{series: make(map[string]meeting.Series), nextID: 1}
}

func (f *fakeSeriesRepo) Create(ctx context.Context, s meeting.Series) (meeting.Series, error) {
	s.ID = fmt.Sprintf("series-%d", f.nextID)
	f.nextID++
	f.series[s.ID] = s
	return s, nil
}

func (f *fakeSeriesRepo) GetByID(ctx context.Context, id string) (meeting.Series, error) {
	if s, ok := f.series[id]; ok {
		return s, nil
	}
	return meeting.Series{}, meeting.ErrSeriesNotFound
}

func (f *fakeSeriesRepo) List(ctx context.Context, page, limit int) ([]meeting.Series, int64, error) {
	var out []meeting.Series
	for _, s := range f.series {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSeriesRepo) Delete(ctx context.Context, id string) error {
	delete(f.series, id)
	return nil
}

type fakeInstanceRepo struct {
	instances map[string]meeting.Instance
	nextID    int
}

func newFakeInstanceRepo() *fakeInstanceRepo {
	return &fakeInstanceRepo{instances: make(map[string]meeting.Instance), nextID: 1}
}

func (f *fakeInstanceRepo) BulkCreate(ctx context.Context, instances []meeting.Instance) ([]meeting.Instance, error) {
	created := make([]meeting.Instance, 0, len(instances))
	for _, instance := range instances {
		instance.ID = fmt.Sprintf("instance-%d", f.nextID)
		f.nextID++
		f.instances[instance.ID] = instance
		created = append(created, instance)
	}
	return created, nil
}

func (f *fakeInstanceRepo) GetByID(ctx context.Context, id string) (meeting.Instance, error) {
	if instance, ok := f.instances[id]; ok {
		return instance, nil
	}
	return meeting.Instance{}, meeting.ErrInstanceNotFound
}

func (f *fakeInstanceRepo) List(ctx context.Context, filter meeting.InstanceFilter) ([]meeting.Instance, int64, error) {
	var out []meeting.Instance
	for _, instance := range f.instances {
		if filter.SeriesID != nil && instance.SeriesID != *filter.SeriesID {
			continue
		}
		out = append(out, instance)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInstanceRepo) ListOnDate(ctx context.Context, date string) ([]meeting.Instance, error) {
	var out []meeting.Instance
	for _, instance := range f.instances {
		if !instance.Cancelled && instance.InstanceDate.Format("2006-01-02") == date {
			out = append(out, instance)
		}
	}
	return out, nil
}

func (f *fakeInstanceRepo) SetCancelled(ctx context.Context, id string, cancelled bool) error {
	instance, ok := f.instances[id]
	if !ok {
		return meeting.ErrInstanceNotFound
	}
	instance.Cancelled = cancelled
	f.instances[id] = instance
	return nil
}

type fakeAttendeeRepo struct {
	attendees []meeting.Attendee
}

func (f *fakeAttendeeRepo) BulkCreate(ctx context.Context, attendees []meeting.Attendee) error {
	f.attendees = append(f.attendees, attendees...)
	return nil
}

func (f *fakeAttendeeRepo) Upsert(ctx context.Context, attendee meeting.Attendee) error {
	for i, existing := range f.attendees {
		if existing.InstanceID == attendee.InstanceID && existing.EmployeeID == attendee.EmployeeID {
			f.attendees[i].Attended = attendee.Attended
			return nil
		}
	}
	f.attendees = append(f.attendees, attendee)
	return nil
}

func (f *fakeAttendeeRepo) ListByInstance(ctx context.Context, instanceID string) ([]meeting.Attendee, error) {
	var out []meeting.Attendee
	for _, attendee := range f.attendees {
		if attendee.InstanceID == instanceID {
			out = append(out, attendee)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeNotificationService struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotificationService) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotificationService) QueueBulkNotification(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, reqs...)
	return nil
}

func (f *fakeNotificationService) GetNotifications(ctx context.Context, userID string, page, limit int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return &notification.NotificationListResponse{}, nil
}

func (f *fakeNotificationService) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (f *fakeNotificationService) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	return nil
}

func (f *fakeNotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeNotificationService) Delete(ctx context.Context, userID string, notificationID string) error {
	return nil
}

func (f *fakeNotificationService) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	close(ch)
	return ch, func() {}
}

func (f *fakeNotificationService) Stop() {}

// authedContext builds a context carrying verified claims and a transaction,
// the shape the handlers and WithTransaction hand the service in production.
func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	token, err := jwt.NewBuilder().
		Claim("user_id", "user-1").
		Claim("employee_id", employeeID).
		Build()
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), jwtauth.TokenCtxKey, token)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mock.ExpectBegin()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	return postgresql.ContextWithTx(ctx, tx)
}

func newTestService() (*MeetingServiceImpl, *fakeSeriesRepo, *fakeInstanceRepo, *fakeAttendeeRepo, *fakeNotificationService) {
	seriesRepo := newFakeSeriesRepo()
	instanceRepo := newFakeInstanceRepo()
	attendeeRepo := &fakeAttendeeRepo{}
	notificationSvc := &fakeNotificationService{}
	userID := "user-2"
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-2": {ID: "emp-2", FullName: "Jane Roe", UserID: &userID},
	}}

	svc := NewMeetingService(nil, seriesRepo, instanceRepo, attendeeRepo, employeeRepo, notificationSvc).(*MeetingServiceImpl)
	return svc, seriesRepo, instanceRepo, attendeeRepo, notificationSvc
}

func TestCreateSeriesExpandsWeeklyOccurrences(t *testing.T) {
	svc, seriesRepo, instanceRepo, attendeeRepo, _ := newTestService()
	ctx := authedContext(t, "emp-1")

	rule := "Monday"
	resp, err := svc.CreateSeries(ctx, meeting.CreateSeriesRequest{
		Title:          "Weekly Sync",
		RecurrenceType: "weekly",
		RecurrenceRule: &rule,
		StartDate:      "2025-03-05", // Wednesday
		EndDate:        "2025-03-18",
		StartTime:      "10:00:00",
		EndTime:        "11:00:00",
		AttendeeIDs:    []string{"emp-2", "emp-3"},
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.OrganizerID)
	// Mondays in range: March 10 and March 17.
	assert.Equal(t, 2, resp.InstanceCount)
	assert.Len(t, seriesRepo.series, 1)
	assert.Len(t, instanceRepo.instances, 2)
	// Every attendee is invited to every occurrence.
	assert.Len(t, attendeeRepo.attendees, 4)

	for _, instance := range instanceRepo.instances {
		assert.Equal(t, resp.ID, instance.SeriesID)
		assert.Equal(t, time.Monday, instance.InstanceDate.Weekday())
		assert.Equal(t, "10:00:00", instance.StartTime)
	}
}

func TestCreateSeriesOneTimeSingleInstance(t *testing.T) {
	svc, _, instanceRepo, attendeeRepo, _ := newTestService()
	ctx := authedContext(t, "emp-1")

	resp, err := svc.CreateSeries(ctx, meeting.CreateSeriesRequest{
		Title:          "Kickoff",
		RecurrenceType: "one_time",
		StartDate:      "2025-03-05",
		EndDate:        "2025-03-05",
		StartTime:      "09:00:00",
		EndTime:        "10:00:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.InstanceCount)
	assert.Len(t, instanceRepo.instances, 1)
	assert.Empty(t, attendeeRepo.attendees)
}

func TestCreateSeriesRejectsInvalidRange(t *testing.T) {
	svc, seriesRepo, _, _, _ := newTestService()
	ctx := authedContext(t, "emp-1")

	_, err := svc.CreateSeries(ctx, meeting.CreateSeriesRequest{
		Title:          "Backwards",
		RecurrenceType: "daily",
		StartDate:      "2025-03-10",
		EndDate:        "2025-03-05",
		StartTime:      "09:00:00",
		EndTime:        "10:00:00",
	})
	require.Error(t, err)
	assert.Empty(t, seriesRepo.series)
}

func TestCancelInstanceNotifiesAttendees(t *testing.T) {
	svc, _, instanceRepo, attendeeRepo, notificationSvc := newTestService()
	ctx := authedContext(t, "emp-1")

	created, err := instanceRepo.BulkCreate(ctx, []meeting.Instance{{
		SeriesID:     "series-1",
		InstanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00:00",
		EndTime:      "11:00:00",
	}})
	require.NoError(t, err)
	require.NoError(t, attendeeRepo.Upsert(ctx, meeting.Attendee{InstanceID: created[0].ID, EmployeeID: "emp-2"}))

	require.NoError(t, svc.CancelInstance(ctx, created[0].ID))

	instance, err := instanceRepo.GetByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.True(t, instance.Cancelled)
	require.Len(t, notificationSvc.queued, 1)
	assert.Equal(t, notification.TypeMeetingCancelled, notificationSvc.queued[0].Type)
	assert.Equal(t, "user-2", notificationSvc.queued[0].RecipientID)

	// A second cancel is rejected rather than renotifying.
	assert.ErrorIs(t, svc.CancelInstance(ctx, created[0].ID), meeting.ErrInstanceCancelled)
}

func TestMarkAttendanceOnCancelledInstance(t *testing.T) {
	svc, _, instanceRepo, _, _ := newTestService()
	ctx := authedContext(t, "emp-1")

	created, err := instanceRepo.BulkCreate(ctx, []meeting.Instance{{
		SeriesID:     "series-1",
		InstanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00:00",
		EndTime:      "11:00:00",
	}})
	require.NoError(t, err)
	require.NoError(t, instanceRepo.SetCancelled(ctx, created[0].ID, true))

	err = svc.MarkAttendance(ctx, meeting.MarkAttendanceRequest{
		InstanceID: created[0].ID,
		EmployeeID: "emp-2",
		Attended:   true,
	})
	assert.ErrorIs(t, err, meeting.ErrInstanceCancelled)
}

func TestMarkAttendanceUpserts(t *testing.T) {
	svc, _, instanceRepo, attendeeRepo, _ := newTestService()
	ctx := authedContext(t, "emp-1")

	created, err := instanceRepo.BulkCreate(ctx, []meeting.Instance{{
		SeriesID:     "series-1",
		InstanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00:00",
		EndTime:      "11:00:00",
	}})
	require.NoError(t, err)

	req := meeting.MarkAttendanceRequest{InstanceID: created[0].ID, EmployeeID: "emp-2", Attended: true}
	require.NoError(t, svc.MarkAttendance(ctx, req))
	req.Attended = false
	require.NoError(t, svc.MarkAttendance(ctx, req))

	require.Len(t, attendeeRepo.attendees, 1)
	assert.False(t, attendeeRepo.attendees[0].Attended)
}
