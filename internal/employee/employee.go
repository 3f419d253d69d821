package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/employee"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID           int64     `json:"id"`
	Registration string    `json:"registration"`
	FullName     string    `json:"full_name"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Manager      string    `json:"manager"`
	CPF          *string   `json:"cpf,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:           e.ID,
		Registration: e.Registration,
		FullName:     e.FullName,
		Position:     e.Position,
		Department:   e.Department,
		Manager:      e.Manager,
		CPF:          e.CPF,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromDataModel(m *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:           m.ID,
		Registration: m.Registration,
		FullName:     m.FullName,
		Position:     m.Position,
		Department:   m.Department,
		Manager:      m.Manager,
		CPF:          m.CPF,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromDataModelSlice(models []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(models))
	for i, m := range models {
		result[i] = FromDataModel(m)
	}
	return result
}
