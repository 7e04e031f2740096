package meeting

import (
	"context"
)

// MeetingService defines business logic for meeting series and instances
type MeetingService interface {
	// CreateSeries persists the series and expands it into dated instances
	CreateSeries(ctx context.Context, req CreateSeriesRequest) (SeriesResponse, error)

	// GetSeries retrieves one series with its instance count
	GetSeries(ctx context.Context, id string) (SeriesResponse, error)

	// DeleteSeries removes a series and its instances
	DeleteSeries(ctx context.Context, id string) error

	// ListInstances retrieves occurrences with filters
	ListInstances(ctx context.Context, filter InstanceFilter) (ListInstancesResponse, error)

	// CancelInstance cancels a single occurrence without touching the series
	CancelInstance(ctx context.Context, id string) error

	// MarkAttendance toggles an employee's attendance on one occurrence
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) error
}
