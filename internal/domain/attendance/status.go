package attendance

import (
	"fmt"
	"math"
	"time"
)

// CheckInStatus classifies a single check-in against the shift start.
type CheckInStatus string

const (
	CheckInOnTime CheckInStatus = "on_time"
	CheckInLate   CheckInStatus = "late"
	CheckInManual CheckInStatus = "manual"
	CheckInAbsent CheckInStatus = "absent"
)

// WorkStatus classifies the worked duration between check-in and check-out.
type WorkStatus string

const (
	WorkEarlyLeave WorkStatus = "early_leave"
	WorkHalfDay    WorkStatus = "half_day"
	WorkEarlyGo    WorkStatus = "early_go"
	WorkOnTime     WorkStatus = "on_time"
	WorkOvertime   WorkStatus = "overtime"
	WorkManual     WorkStatus = "manual"
)

// DayStatus is the single authoritative classification for one employee-day.
type DayStatus string

const (
	DayPresent       DayStatus = "present"
	DayAbsent        DayStatus = "absent"
	DayHalfDay       DayStatus = "half_day"
	DayEarlyLeave    DayStatus = "early_leave"
	DayManualPresent DayStatus = "manual_present"
	DayLeave         DayStatus = "leave"
	DayHoliday       DayStatus = "holiday"
	DayWeekend       DayStatus = "weekend"
	DayWorkFromHome  DayStatus = "work_from_home"
)

// Work duration buckets. These are deliberately global rather than derived
// from the shift's half_day_hours / early_leave_threshold_minutes fields;
// the per-shift fields exist in the data model but do not drive bucketing.
const (
	earlyLeaveBelow = 4 * time.Hour
	halfDayUpTo     = 5 * time.Hour
	earlyGoUpTo     = 7 * time.Hour
	onTimeUpTo      = 9 * time.Hour
)

const (
	clockLayout     = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

// referenceDay anchors clock-only comparisons onto a single calendar day.
var referenceDay = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// WorkResult is the outcome of classifying one check-in/check-out pair.
type WorkResult struct {
	WorkedMinutes int
	WorkedHours   float64
	WorkHours     string // formatted HH:MM:SS
	Status        WorkStatus
}

// ParseClock parses a "HH:MM:SS" clock string onto the reference day.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid HH:MM:SS clock", ErrInvalidFormat, s)
	}
	return time.Date(referenceDay.Year(), referenceDay.Month(), referenceDay.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// ParseTimestamp parses an RFC3339 or "2006-01-02 15:04:05" timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a valid timestamp", ErrInvalidFormat, s)
}

// FormatWorkHours renders a duration as HH:MM:SS.
func FormatWorkHours(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ClassifyCheckIn compares a check-in instant to the shift start plus grace
// window. The boundary is inclusive: checking in exactly at start+grace is
// still on time. Both instants are normalized onto one reference day so only
// the time of day matters.
func ClassifyCheckIn(checkIn, shiftStart time.Time, graceMinutes int) CheckInStatus {
	in := onReferenceDay(checkIn)
	limit := onReferenceDay(shiftStart).Add(time.Duration(graceMinutes) * time.Minute)
	if in.After(limit) {
		return CheckInLate
	}
	return CheckInOnTime
}

// ClassifyWork computes the worked duration between check-in and check-out
// and buckets it into a work status. Check-out must not precede check-in.
func ClassifyWork(checkIn, checkOut time.Time) (WorkResult, error) {
	if checkOut.Before(checkIn) {
		return WorkResult{}, fmt.Errorf("%w: check-out %s precedes check-in %s",
			ErrInvalidRange, checkOut.Format(timestampLayout), checkIn.Format(timestampLayout))
	}

	worked := checkOut.Sub(checkIn)
	workedMinutes := int(worked.Minutes())
	workedHours := math.Round(float64(workedMinutes)/60*100) / 100

	var status WorkStatus
	switch {
	case worked < earlyLeaveBelow:
		status = WorkEarlyLeave
	case worked <= halfDayUpTo:
		status = WorkHalfDay
	case worked <= earlyGoUpTo:
		status = WorkEarlyGo
	case worked <= onTimeUpTo:
		status = WorkOnTime
	default:
		status = WorkOvertime
	}

	return WorkResult{
		WorkedMinutes: workedMinutes,
		WorkedHours:   workedHours,
		WorkHours:     FormatWorkHours(worked),
		Status:        status,
	}, nil
}

// ClassifyWorkStrings is the string front-end of ClassifyWork for callers
// holding raw timestamps.
func ClassifyWorkStrings(checkIn, checkOut string) (WorkResult, error) {
	in, err := ParseTimestamp(checkIn)
	if err != nil {
		return WorkResult{}, err
	}
	out, err := ParseTimestamp(checkOut)
	if err != nil {
		return WorkResult{}, err
	}
	return ClassifyWork(in, out)
}

// ResolveDayStatus combines check-in status, work status and worked hours
// into the day's overall status. The rule ladder is order-sensitive and its
// boundary inequalities are asymmetric between late and on-time check-ins;
// both are load-bearing and must not be "cleaned up".
func ResolveDayStatus(in CheckInStatus, out WorkStatus, workedHours float64) (DayStatus, error) {
	if in == "" {
		return "", fmt.Errorf("%w: check-in status is required", ErrMissingInput)
	}
	if out == "" {
		return "", fmt.Errorf("%w: work status is required", ErrMissingInput)
	}
	if workedHours < 0 {
		return "", fmt.Errorf("%w: worked hours is required", ErrMissingInput)
	}

	if out == WorkEarlyGo {
		out = WorkEarlyLeave
	}

	checkedIn := in == CheckInOnTime || in == CheckInLate
	fullOut := out == WorkOnTime || out == WorkOvertime

	switch {
	case in == CheckInAbsent:
		return DayAbsent, nil
	case in == CheckInManual || out == WorkManual:
		return DayManualPresent, nil
	case checkedIn && fullOut && workedHours >= 8:
		return DayPresent, nil
	case checkedIn && out == WorkEarlyLeave && workedHours <= 3.99:
		return DayEarlyLeave, nil
	case in == CheckInOnTime && out == WorkEarlyLeave && workedHours > 3.99 && workedHours < 8:
		return DayEarlyLeave, nil
	case in == CheckInLate && out == WorkEarlyLeave && workedHours >= 4 && workedHours < 8:
		return DayHalfDay, nil
	case out == WorkHalfDay && workedHours <= 5:
		return DayHalfDay, nil
	default:
		return DayPresent, nil
	}
}

func onReferenceDay(t time.Time) time.Time {
	return time.Date(referenceDay.Year(), referenceDay.Month(), referenceDay.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
