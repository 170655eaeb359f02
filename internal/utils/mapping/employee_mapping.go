package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:   d.EmployeeID,
		Code:         d.Code,
		FullName:     d.FullName,
		Email:        d.Email,
		Phone:        d.Phone,
		Position:     d.Position,
		ServiceID:    d.ServiceID,
		DepartmentID: d.DepartmentID,
		HireDate:     domain.DateOnly(d.HireDate),
		IsActive:     d.IsActive,
		UserID:       d.UserID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		Code:         m.Code,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		Position:     m.Position,
		ServiceID:    m.ServiceID,
		DepartmentID: m.DepartmentID,
		HireDate:     domain.DateOnly(m.HireDate),
		IsActive:     m.IsActive,
		UserID:       m.UserID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
