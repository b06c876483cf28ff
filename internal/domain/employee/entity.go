package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	Department   *string
	Position     *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)
