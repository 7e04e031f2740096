package meeting

import (
	"context"
)

// SeriesRepository defines data access for meeting series.
type SeriesRepository interface {
	Create(ctx context.Context, series Series) (Series, error)
	GetByID(ctx context.Context, id string) (Series, error)
	List(ctx context.Context, page, limit int) ([]Series, int64, error)
	Delete(ctx context.Context, id string) error
}

// InstanceRepository defines data access for concrete meeting occurrences.
type InstanceRepository interface {
	// BulkCreate persists the expanded occurrences of a series and returns
	// them with their generated IDs.
	BulkCreate(ctx context.Context, instances []Instance) ([]Instance, error)

	GetByID(ctx context.Context, id string) (Instance, error)
	List(ctx context.Context, filter InstanceFilter) ([]Instance, int64, error)

	// ListOnDate retrieves non-cancelled instances on a calendar day, for the
	// meeting reminder job.
	ListOnDate(ctx context.Context, date string) ([]Instance, error)

	SetCancelled(ctx context.Context, id string, cancelled bool) error
}

// AttendeeRepository tracks per-instance attendance marks.
type AttendeeRepository interface {
	BulkCreate(ctx context.Context, attendees []Attendee) error
	Upsert(ctx context.Context, attendee Attendee) error
	ListByInstance(ctx context.Context, instanceID string) ([]Attendee, error)
}
