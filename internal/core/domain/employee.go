package domain

import "time"

// Employee is a staff member. UserID links the employee to its login identity.
type Employee struct {
	EmployeeID   int64     `json:"id"`
	Code         string    `json:"code"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Position     string    `json:"position"`
	ServiceID    int64     `json:"serviceId"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
	HireDate     time.Time `json:"hireDate"`
	IsActive     bool      `json:"isActive"`
	UserID       *int64    `json:"userId,omitempty"`
	AuditFields
}

// ProtectedRange is an inclusive range of employee ids reserved for seed and
// system accounts. Those records can be read but never updated or deleted.
type ProtectedRange struct {
	Min int64
	Max int64
}

// Contains reports whether id lies inside the range. An empty range
// (Max < Min) contains nothing.
func (r ProtectedRange) Contains(id int64) bool {
	return r.Max >= r.Min && id >= r.Min && id <= r.Max
}
