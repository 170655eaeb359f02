package models

import "time"

// Employee is a row of the employees table. DepartmentID and UserID are
// nullable columns.
type Employee struct {
	EmployeeID   int64     `db:"id"`
	Code         string    `db:"code"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Position     string    `db:"position"`
	ServiceID    int64     `db:"service_id"`
	DepartmentID *int64    `db:"department_id"`
	HireDate     time.Time `db:"hire_date"`
	IsActive     bool      `db:"is_active"`
	UserID       *int64    `db:"user_id"`
	AuditFields
}
