package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/staffledger/attendance-backend-go/internal/domain/attendance"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanAttendance_Success(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	checkIn := now.Add(-8 * time.Hour)
	status := attendance.CheckInOnTime

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 15 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "att-1"
		*(dest[1].(*string)) = "emp-1"
		*(dest[2].(*time.Time)) = now.Truncate(24 * time.Hour)
		*(dest[4].(**time.Time)) = &checkIn
		*(dest[6].(**attendance.CheckInStatus)) = &status
		*(dest[8].(*attendance.DayStatus)) = attendance.DayPresent
		*(dest[11].(*time.Time)) = now
		*(dest[12].(*time.Time)) = now
		return nil
	}}

	att, err := scanAttendance(row)
	if err != nil {
		t.Fatalf("scanAttendance returned error: %v", err)
	}

	if att.ID != "att-1" || att.EmployeeID != "emp-1" {
		t.Fatalf("unexpected attendance %+v", att)
	}
	if att.DayStatus != attendance.DayPresent {
		t.Fatalf("expected day status present, got %s", att.DayStatus)
	}
	if att.CheckInStatus == nil || *att.CheckInStatus != attendance.CheckInOnTime {
		t.Fatalf("unexpected check-in status %+v", att.CheckInStatus)
	}
}

func TestGetByEmployeeAndDate_NoRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT ")).
		WithArgs("emp-1", date).
		WillReturnError(pgx.ErrNoRows)

	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("failed to begin mock tx: %v", err)
	}

	repo := NewAttendanceRepository(&database.DB{})
	ctx := ContextWithTx(context.Background(), tx)

	att, err := repo.GetByEmployeeAndDate(ctx, "emp-1", date)
	if err != nil {
		t.Fatalf("expected nil error for missing record, got %v", err)
	}
	if att != nil {
		t.Fatalf("expected nil attendance, got %+v", att)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBulkCreate_SkipsConflicts(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkInAbsent := attendance.CheckInAbsent
	shiftID := "shift-1"

	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Date: date, ShiftID: &shiftID, CheckInStatus: &checkInAbsent, DayStatus: attendance.DayAbsent},
		{EmployeeID: "emp-2", Date: date, ShiftID: &shiftID, CheckInStatus: &checkInAbsent, DayStatus: attendance.DayAbsent},
	}

	mock.ExpectBegin()
	// First insert lands, second hits the (employee_id, date) conflict.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendances")).
		WithArgs("emp-1", date, &shiftID, &checkInAbsent, attendance.DayAbsent).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendances")).
		WithArgs("emp-2", date, &shiftID, &checkInAbsent, attendance.DayAbsent).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("failed to begin mock tx: %v", err)
	}

	repo := NewAttendanceRepository(&database.DB{})
	ctx := ContextWithTx(context.Background(), tx)

	inserted, err := repo.BulkCreate(ctx, records)
	if err != nil {
		t.Fatalf("BulkCreate returned error: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 inserted, got %d", inserted)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
