package meeting

import "errors"

// Meeting domain errors
var (
	ErrInvalidRecurrenceType = errors.New("unknown recurrence type")
	ErrMissingRecurrenceRule = errors.New("weekly series requires a weekday recurrence rule")
	ErrSeriesNotFound        = errors.New("meeting series not found")
	ErrInstanceNotFound      = errors.New("meeting instance not found")
	ErrInstanceCancelled     = errors.New("meeting instance has been cancelled")
)
