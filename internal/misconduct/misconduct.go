package misconduct

import (
	"errors"
	"time"

	misconductDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/misconduct"
)

var ErrTypeNotFound = errors.New("misconduct type not found")

// Type is a catalog entry for a kind of workplace misconduct.
type Type struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	DefaultClassification string    `json:"default_classification"`
	CLTClause             string    `json:"clt_clause"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
}

func (t *Type) Deactivate() {
	t.IsActive = false
}

func NewType(name, description, defaultClassification, cltClause string) *Type {
	return &Type{
		Name:                  name,
		Description:           description,
		DefaultClassification: defaultClassification,
		CLTClause:             cltClause,
		IsActive:              true,
		CreatedAt:             time.Now(),
	}
}

func ToDataModel(t *Type) *misconductDatamodel.MisconductType {
	return &misconductDatamodel.MisconductType{
		ID:                    t.ID,
		Name:                  t.Name,
		Description:           t.Description,
		DefaultClassification: t.DefaultClassification,
		CLTClause:             t.CLTClause,
		IsActive:              t.IsActive,
		CreatedAt:             t.CreatedAt,
	}
}

func FromDataModel(m *misconductDatamodel.MisconductType) *Type {
	return &Type{
		ID:                    m.ID,
		Name:                  m.Name,
		Description:           m.Description,
		DefaultClassification: m.DefaultClassification,
		CLTClause:             m.CLTClause,
		IsActive:              m.IsActive,
		CreatedAt:             m.CreatedAt,
	}
}
