package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, name, email, department, position,
			role, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1`

	var emp employee.Employee
	err := querier.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.Email,
		&emp.Department, &emp.Position,
		&emp.Role, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	querier := GetQuerier(ctx, r.db)

	var count int64
	err := querier.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}
