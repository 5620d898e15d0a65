package employee

import (
	"context"
)

// EmployeeRepository defines data access for employee records. The core only
// needs point lookups; employee administration lives outside this service.
type EmployeeRepository interface {
	// GetByID retrieves an employee or ErrEmployeeNotFound
	GetByID(ctx context.Context, id string) (Employee, error)
}
