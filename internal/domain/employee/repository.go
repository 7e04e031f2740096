package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// GetActive retrieves all active employees, for the batch jobs.
	GetActive(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
