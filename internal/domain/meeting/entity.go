package meeting

import "time"

// RecurrenceType describes how a meeting series repeats.
type RecurrenceType string

const (
	RecurrenceOneTime RecurrenceType = "one_time"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

var RecurrenceTypeValues = []string{
	string(RecurrenceOneTime),
	string(RecurrenceDaily),
	string(RecurrenceWeekly),
	string(RecurrenceMonthly),
}

// Series is an abstract repeating meeting. Concrete occurrences are produced
// by the recurrence expander and persisted as Instances.
type Series struct {
	ID             string
	Title          string
	Description    *string
	OrganizerID    string
	RecurrenceType RecurrenceType
	RecurrenceRule *string // weekday name for weekly series
	StartDate      time.Time
	EndDate        time.Time
	StartTime      string // HH:MM:SS
	EndTime        string // HH:MM:SS
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Instance is one dated occurrence of a series. Instances share the series'
// clock times and are individually cancellable and attendable.
type Instance struct {
	ID           string
	SeriesID     string
	InstanceDate time.Time
	StartTime    string
	EndTime      string
	Cancelled    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	Title *string
}

// Attendee marks an employee's attendance on a single instance.
type Attendee struct {
	ID         string
	InstanceID string
	EmployeeID string
	Attended   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
