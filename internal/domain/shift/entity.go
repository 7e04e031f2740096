package shift

import "time"

// Shift is a reusable shift definition. Employees reference a shift; the
// attendance engine reads its start time and grace window at check-in.
type Shift struct {
	ID                         string
	Name                       string
	StartTime                  time.Time // time of day
	EndTime                    time.Time // time of day
	GraceMinutes               int
	HalfDayHours               float64
	EarlyLeaveThresholdMinutes int
	BreakDurationMinutes       int
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  *time.Time
}
