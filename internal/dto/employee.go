package dto

import "time"

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	Code         string    `json:"code" binding:"required,notblank,max=50"`
	FullName     string    `json:"fullName" binding:"required,notblank,max=200"`
	Email        string    `json:"email" binding:"omitempty,email"`
	Phone        string    `json:"phone" binding:"max=30"`
	Position     string    `json:"position" binding:"max=100"`
	ServiceID    int64     `json:"serviceId" binding:"required,min=1"`
	DepartmentID *int64    `json:"departmentId" binding:"omitempty,min=1"`
	HireDate     time.Time `json:"hireDate" binding:"required"`
	IsActive     *bool     `json:"isActive"`
}

// UpdateEmployeeRequest replaces an employee.
type UpdateEmployeeRequest struct {
	CreateEmployeeRequest
	Version int `json:"version" binding:"required,min=1"`
}
