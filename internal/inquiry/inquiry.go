package inquiry

import (
	"errors"
	"time"

	inquiryDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/inquiry"
)

const (
	RolePresident   = inquiryDatamodel.RolePresident
	RoleSecretaryI  = inquiryDatamodel.RoleSecretaryI
	RoleSecretaryII = inquiryDatamodel.RoleSecretaryII
	RoleMember      = inquiryDatamodel.RoleMember
	RoleLawyer      = inquiryDatamodel.RoleLawyer
)

// MandatoryRoles must each appear exactly once in a commission.
var MandatoryRoles = []string{RolePresident, RoleSecretaryI, RoleSecretaryII}

var (
	ErrInquiryNotFound = errors.New("inquiry not found for this process")
	ErrInquiryExists   = errors.New("an inquiry already exists for this process")
)

type Inquiry struct {
	ID             int64     `json:"id"`
	ProcessID      int64     `json:"process_id"`
	Number         string    `json:"number"`
	InstitutorName string    `json:"institutor_name"`
	InstitutorCPF  string    `json:"institutor_cpf"`
	OpenedAt       time.Time `json:"opened_at"`
	CreatedBy      int64     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Members   []CommissionMember `json:"members"`
	Witnesses []Witness          `json:"witnesses"`
}

type CommissionMember struct {
	ID       int64   `json:"id"`
	Role     string  `json:"role"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	CPF      string  `json:"cpf"`
	OAB      *string `json:"oab,omitempty"`
}

type Witness struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Position string `json:"position"`
}

func ToDataModel(i *Inquiry) *inquiryDatamodel.Inquiry {
	model := &inquiryDatamodel.Inquiry{
		ID:             i.ID,
		ProcessID:      i.ProcessID,
		Number:         i.Number,
		InstitutorName: i.InstitutorName,
		InstitutorCPF:  i.InstitutorCPF,
		OpenedAt:       i.OpenedAt,
		CreatedBy:      i.CreatedBy,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
	for _, m := range i.Members {
		model.Members = append(model.Members, inquiryDatamodel.CommissionMember{
			ID:       m.ID,
			Role:     m.Role,
			Name:     m.Name,
			Position: m.Position,
			CPF:      m.CPF,
			OAB:      m.OAB,
		})
	}
	for _, w := range i.Witnesses {
		model.Witnesses = append(model.Witnesses, inquiryDatamodel.Witness{
			ID:       w.ID,
			Name:     w.Name,
			CPF:      w.CPF,
			Position: w.Position,
		})
	}
	return model
}

func FromDataModel(m *inquiryDatamodel.Inquiry) *Inquiry {
	inq := &Inquiry{
		ID:             m.ID,
		ProcessID:      m.ProcessID,
		Number:         m.Number,
		InstitutorName: m.InstitutorName,
		InstitutorCPF:  m.InstitutorCPF,
		OpenedAt:       m.OpenedAt,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for _, member := range m.Members {
		inq.Members = append(inq.Members, CommissionMember{
			ID:       member.ID,
			Role:     member.Role,
			Name:     member.Name,
			Position: member.Position,
			CPF:      member.CPF,
			OAB:      member.OAB,
		})
	}
	for _, witness := range m.Witnesses {
		inq.Witnesses = append(inq.Witnesses, Witness{
			ID:       witness.ID,
			Name:     witness.Name,
			CPF:      witness.CPF,
			Position: witness.Position,
		})
	}
	return inq
}
