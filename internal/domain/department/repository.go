package department

import (
	"context"
)

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) error

	// Delete soft-deletes; fails when employees still belong to it.
	Delete(ctx context.Context, id string) error
}
