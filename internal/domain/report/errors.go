package report

import "errors"

var (
	ErrNoDataInRange = errors.New("no attendance data in the requested range")
)
