package shift

import (
	"context"
)

// ShiftRepository defines data access methods for shift definitions.
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByEmployeeID resolves the shift currently assigned to an employee.
	GetByEmployeeID(ctx context.Context, employeeID string) (Shift, error)

	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error

	// Delete soft-deletes a shift; fails when employees still reference it.
	Delete(ctx context.Context, id string) error
}
