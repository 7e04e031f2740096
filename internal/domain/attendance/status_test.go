package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseClock(s)
	require.NoError(t, err)
	return parsed
}

func TestClassifyCheckIn(t *testing.T) {
	cases := []struct {
		name         string
		checkIn      string
		shiftStart   string
		graceMinutes int
		want         CheckInStatus
	}{
		{"before shift start", "08:45:00", "09:00:00", 15, CheckInOnTime},
		{"at shift start", "09:00:00", "09:00:00", 15, CheckInOnTime},
		{"within grace window", "09:10:00", "09:00:00", 15, CheckInOnTime},
		{"exactly at grace boundary", "09:15:00", "09:00:00", 15, CheckInOnTime},
		{"one second past grace", "09:15:01", "09:00:00", 15, CheckInLate},
		{"well past grace", "10:30:00", "09:00:00", 15, CheckInLate},
		{"zero grace at start", "09:00:00", "09:00:00", 0, CheckInOnTime},
		{"zero grace one second late", "09:00:01", "09:00:00", 0, CheckInLate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyCheckIn(clock(t, tc.checkIn), clock(t, tc.shiftStart), tc.graceMinutes)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyWork_Buckets(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		worked time.Duration
		want   WorkStatus
	}{
		{"3h59m59s is early leave", 3*time.Hour + 59*time.Minute + 59*time.Second, WorkEarlyLeave},
		{"exactly 4h is half day", 4 * time.Hour, WorkHalfDay},
		{"4h30m is half day", 4*time.Hour + 30*time.Minute, WorkHalfDay},
		{"exactly 5h is half day", 5 * time.Hour, WorkHalfDay},
		{"5h00m01s is early go", 5*time.Hour + time.Second, WorkEarlyGo},
		{"exactly 7h is early go", 7 * time.Hour, WorkEarlyGo},
		{"7h00m01s is on time", 7*time.Hour + time.Second, WorkOnTime},
		{"exactly 8h is on time", 8 * time.Hour, WorkOnTime},
		{"exactly 9h is on time", 9 * time.Hour, WorkOnTime},
		{"9h00m01s is overtime", 9*time.Hour + time.Second, WorkOvertime},
		{"zero duration is early leave", 0, WorkEarlyLeave},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ClassifyWork(base, base.Add(tc.worked))
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Status)
		})
	}
}

func TestClassifyWork_Result(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 30*time.Minute)

	result, err := ClassifyWork(in, out)
	require.NoError(t, err)
	assert.Equal(t, 510, result.WorkedMinutes)
	assert.Equal(t, 8.5, result.WorkedHours)
	assert.Equal(t, "08:30:00", result.WorkHours)
	assert.Equal(t, WorkOnTime, result.Status)
}

func TestClassifyWork_InvalidRange(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := ClassifyWork(in, in.Add(-time.Second))
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Equal timestamps are a valid zero-length session.
	result, err := ClassifyWork(in, in)
	require.NoError(t, err)
	assert.Equal(t, 0, result.WorkedMinutes)
}

func TestClassifyWorkStrings(t *testing.T) {
	result, err := ClassifyWorkStrings("2025-03-10 09:00:00", "2025-03-10 17:30:00")
	require.NoError(t, err)
	assert.Equal(t, WorkOnTime, result.Status)
	assert.Equal(t, "08:30:00", result.WorkHours)

	_, err = ClassifyWorkStrings("not-a-timestamp", "2025-03-10 17:30:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ClassifyWorkStrings("2025-03-10 09:00:00", "17:30")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// RFC3339 is accepted too
	result, err = ClassifyWorkStrings("2025-03-10T09:00:00Z", "2025-03-10T13:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, WorkHalfDay, result.Status)
}

func TestResolveDayStatus_Ladder(t *testing.T) {
	cases := []struct {
		name  string
		in    CheckInStatus
		out   WorkStatus
		hours float64
		want  DayStatus
	}{
		{"absent wins over everything", CheckInAbsent, WorkOvertime, 12, DayAbsent},
		{"manual check-in", CheckInManual, WorkOnTime, 8, DayManualPresent},
		{"manual check-out", CheckInOnTime, WorkManual, 8, DayManualPresent},
		{"full day on time", CheckInOnTime, WorkOnTime, 8, DayPresent},
		{"full day late check-in", CheckInLate, WorkOvertime, 9.5, DayPresent},
		{"short early leave on time", CheckInOnTime, WorkEarlyLeave, 3.5, DayEarlyLeave},
		{"short early leave late", CheckInLate, WorkEarlyLeave, 3.99, DayEarlyLeave},
		{"on-time early leave mid hours", CheckInOnTime, WorkEarlyLeave, 4.5, DayEarlyLeave},
		{"late early leave mid hours", CheckInLate, WorkEarlyLeave, 4.5, DayHalfDay},
		{"on-time early leave near full", CheckInOnTime, WorkEarlyLeave, 7.99, DayEarlyLeave},
		{"late early leave near full", CheckInLate, WorkEarlyLeave, 7.99, DayHalfDay},
		{"early go normalizes to early leave", CheckInOnTime, WorkEarlyGo, 4.5, DayEarlyLeave},
		{"half day bucket", CheckInOnTime, WorkHalfDay, 4.5, DayHalfDay},
		{"half day bucket at 5 hours", CheckInLate, WorkHalfDay, 5, DayHalfDay},
		{"default is present", CheckInOnTime, WorkOnTime, 7.5, DayPresent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDayStatus(tc.in, tc.out, tc.hours)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Same hours, different check-in status must yield a different day status.
// This asymmetry between rules of the ladder is intentional.
func TestResolveDayStatus_LateVsOnTimeAsymmetry(t *testing.T) {
	late, err := ResolveDayStatus(CheckInLate, WorkEarlyLeave, 4.5)
	require.NoError(t, err)
	onTime, err := ResolveDayStatus(CheckInOnTime, WorkEarlyLeave, 4.5)
	require.NoError(t, err)

	assert.Equal(t, DayHalfDay, late)
	assert.Equal(t, DayEarlyLeave, onTime)

	// The 3.99..4 gap: a late check-in with 3.995 hours falls through every
	// early-leave rule and lands on the default.
	gap, err := ResolveDayStatus(CheckInLate, WorkEarlyLeave, 3.995)
	require.NoError(t, err)
	assert.Equal(t, DayPresent, gap)
}

func TestResolveDayStatus_MissingInput(t *testing.T) {
	_, err := ResolveDayStatus("", WorkOnTime, 8)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = ResolveDayStatus(CheckInOnTime, "", 8)
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = ResolveDayStatus(CheckInOnTime, WorkOnTime, -1)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestFormatWorkHours(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{8*time.Hour + 30*time.Minute, "08:30:00"},
		{26*time.Hour + 5*time.Minute + 9*time.Second, "26:05:09"},
		{-time.Hour, "00:00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatWorkHours(tc.d))
	}
}

func TestParseClock(t *testing.T) {
	parsed, err := ParseClock("09:15:30")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 15, parsed.Minute())
	assert.Equal(t, 30, parsed.Second())

	_, err = ParseClock("9:15")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseClock("25:00:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
