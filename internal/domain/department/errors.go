package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrDepartmentNotEmpty   = errors.New("department still has employees")
)
