package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	CountActive(ctx context.Context) (int64, error)
}
