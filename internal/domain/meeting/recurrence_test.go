package meeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandInstances_OneTime(t *testing.T) {
	instances, err := ExpandInstances(RecurrenceOneTime, "", date(2025, 6, 2), date(2025, 6, 2), "10:00:00", "11:00:00")
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, date(2025, 6, 2), instances[0].InstanceDate)
	assert.Equal(t, "10:00:00", instances[0].StartTime)
	assert.Equal(t, "11:00:00", instances[0].EndTime)
}

// One-time emits the seed date only even when the range spans several days.
func TestExpandInstances_OneTime_WideRange(t *testing.T) {
	instances, err := ExpandInstances(RecurrenceOneTime, "", date(2025, 6, 2), date(2025, 6, 30), "10:00:00", "11:00:00")
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, date(2025, 6, 2), instances[0].InstanceDate)
}

func TestExpandInstances_Daily_SkipsWeekend(t *testing.T) {
	// 2025-06-02 is a Monday, 2025-06-08 a Sunday.
	instances, err := ExpandInstances(RecurrenceDaily, "", date(2025, 6, 2), date(2025, 6, 8), "09:00:00", "09:30:00")
	require.NoError(t, err)
	require.Len(t, instances, 5)

	for i, inst := range instances {
		assert.Equal(t, date(2025, 6, 2+i), inst.InstanceDate)
		wd := inst.InstanceDate.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestExpandInstances_Weekly_Mondays(t *testing.T) {
	instances, err := ExpandInstances(RecurrenceWeekly, "monday", date(2025, 1, 1), date(2025, 1, 31), "10:00:00", "11:00:00")
	require.NoError(t, err)

	// Mondays in January 2025: 6, 13, 20, 27.
	require.Len(t, instances, 4)
	for i, day := range []int{6, 13, 20, 27} {
		assert.Equal(t, date(2025, 1, day), instances[i].InstanceDate)
		assert.Equal(t, time.Monday, instances[i].InstanceDate.Weekday())
		assert.Equal(t, "10:00:00", instances[i].StartTime)
		assert.Equal(t, "11:00:00", instances[i].EndTime)
	}
}

func TestExpandInstances_Weekly_CaseInsensitive(t *testing.T) {
	lower, err := ExpandInstances(RecurrenceWeekly, "friday", date(2025, 1, 1), date(2025, 1, 31), "10:00:00", "11:00:00")
	require.NoError(t, err)
	upper, err := ExpandInstances(RecurrenceWeekly, "FRIDAY", date(2025, 1, 1), date(2025, 1, 31), "10:00:00", "11:00:00")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	require.NotEmpty(t, lower)
}

func TestExpandInstances_Weekly_MissingRule(t *testing.T) {
	_, err := ExpandInstances(RecurrenceWeekly, "  ", date(2025, 1, 1), date(2025, 1, 31), "10:00:00", "11:00:00")
	assert.ErrorIs(t, err, ErrMissingRecurrenceRule)
}

func TestExpandInstances_Monthly(t *testing.T) {
	instances, err := ExpandInstances(RecurrenceMonthly, "", date(2025, 1, 15), date(2025, 5, 20), "14:00:00", "15:00:00")
	require.NoError(t, err)

	require.Len(t, instances, 5)
	for i, m := range []time.Month{time.January, time.February, time.March, time.April, time.May} {
		assert.Equal(t, date(2025, m, 15), instances[i].InstanceDate)
	}
}

// A seed on the 31st skips months whose cursor lands on a normalized date
// with a different day-of-month.
func TestExpandInstances_Monthly_DayOfMonthGuard(t *testing.T) {
	instances, err := ExpandInstances(RecurrenceMonthly, "", date(2025, 1, 31), date(2025, 4, 30), "14:00:00", "15:00:00")
	require.NoError(t, err)

	for _, inst := range instances {
		assert.Equal(t, 31, inst.InstanceDate.Day())
	}
}

func TestExpandInstances_InvertedRange(t *testing.T) {
	for _, recType := range []RecurrenceType{RecurrenceOneTime, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		instances, err := ExpandInstances(recType, "monday", date(2025, 6, 10), date(2025, 6, 1), "10:00:00", "11:00:00")
		require.NoError(t, err)
		assert.Empty(t, instances)
	}
}

func TestExpandInstances_UnknownType(t *testing.T) {
	_, err := ExpandInstances("yearly", "", date(2025, 1, 1), date(2025, 12, 31), "10:00:00", "11:00:00")
	assert.ErrorIs(t, err, ErrInvalidRecurrenceType)
}
