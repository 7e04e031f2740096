package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/domain/shift"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance // keyed by employeeID+date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance), nextID: 1}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.nextID++
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, att := range f.records {
		if att.ID == id {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if att, ok := f.records[recordKey(employeeID, date)]; ok {
		return &att, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID {
			out = append(out, att)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) GetOpenSessions(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) BulkCreate(ctx context.Context, attendances []attendance.Attendance) (int, error) {
	inserted := 0
	for _, att := range attendances {
		key := recordKey(att.EmployeeID, att.Date)
		if _, exists := f.records[key]; exists {
			continue
		}
		f.records[key] = att
		inserted++
	}
	return inserted, nil
}

func (f *fakeAttendanceRepo) SetDayStatusRange(ctx context.Context, employeeID string, from, to time.Time, status attendance.DayStatus) error {
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		att := f.records[recordKey(employeeID, d)]
		att.EmployeeID = employeeID
		att.Date = d
		att.DayStatus = status
		f.records[recordKey(employeeID, d)] = att
	}
	return nil
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift // keyed by employeeID
}

func (f *fakeShiftRepo) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	return sh, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) GetByEmployeeID(ctx context.Context, employeeID string) (shift.Shift, error) {
	if sh, ok := f.shifts[employeeID]; ok {
		return sh, nil
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) { return nil, nil }

func (f *fakeShiftRepo) Update(ctx context.Context, sh shift.Shift) error { return nil }

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error { return nil }

func nineToFive() shift.Shift {
	return shift.Shift{
		ID:           "shift-1",
		Name:         "Regular",
		StartTime:    time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2000, 1, 1, 17, 0, 0, 0, time.UTC),
		GraceMinutes: 15,
	}
}

func newTestService(attendanceRepo *fakeAttendanceRepo, shiftRepo *fakeShiftRepo, at time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(attendanceRepo, shiftRepo, nil).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return at }
	return svc
}

func TestCheckIn_OnTimeWithinGrace(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	at := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC) // exactly start+grace
	svc := newTestService(repo, shifts, at)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckInStatus)
	assert.Equal(t, "on_time", *resp.CheckInStatus)
	assert.Equal(t, "2025-03-10", resp.Date)
}

func TestCheckIn_LateAfterGrace(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	at := time.Date(2025, 3, 10, 9, 15, 1, 0, time.UTC)
	svc := newTestService(repo, shifts, at)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckInStatus)
	assert.Equal(t, "late", *resp.CheckInStatus)
}

func TestCheckIn_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, shifts, at)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_NoShiftAssigned(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{}}

	svc := newTestService(repo, shifts, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNoShiftAssigned)
}

func TestCheckOut_FullDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, shifts, checkInAt)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(8*time.Hour + 30*time.Minute) }

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutStatus)
	assert.Equal(t, "on_time", *resp.CheckOutStatus)
	assert.Equal(t, "present", resp.DayStatus)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, "08:30:00", *resp.WorkHours)
}

func TestCheckOut_ShortDayBecomesEarlyLeave(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, shifts, checkInAt)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(2 * time.Hour) }

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, "early_leave", resp.DayStatus)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	svc := newTestService(repo, shifts, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, shifts, checkInAt)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return checkInAt.Add(8 * time.Hour) }

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestManualUpdate_RecomputesFromCorrectedTimes(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, shifts, checkInAt)

	created, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	checkOut := "2025-03-10 18:30:00"
	resp, err := svc.ManualUpdate(context.Background(), attendance.ManualUpdateRequest{
		ID:           created.ID,
		CheckOutTime: &checkOut,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutStatus)
	assert.Equal(t, "overtime", *resp.CheckOutStatus)
	assert.Equal(t, "present", resp.DayStatus)
	require.NotNil(t, resp.WorkHours)
	assert.Equal(t, "09:30:00", *resp.WorkHours)
}

func TestManualUpdate_ExplicitStatusWins(t *testing.T) {
	repo := newFakeAttendanceRepo()
	shifts := &fakeShiftRepo{shifts: map[string]shift.Shift{"emp-1": nineToFive()}}

	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, shifts, checkInAt)

	created, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	dayStatus := "work_from_home"
	resp, err := svc.ManualUpdate(context.Background(), attendance.ManualUpdateRequest{
		ID:        created.ID,
		DayStatus: &dayStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, "work_from_home", resp.DayStatus)
}
