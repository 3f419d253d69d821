package inquiry

import (
	"strconv"
	"strings"
	"time"

	errors "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/core/common/validation"
)

type CommissionMemberDTO struct {
	Role     string  `json:"role"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	CPF      string  `json:"cpf"`
	OAB      *string `json:"oab,omitempty"`
}

type WitnessDTO struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Position string `json:"position"`
}

type CreateInquiryDTO struct {
	ProcessID      int64                 `json:"process_id"`
	Number         string                `json:"number"`
	InstitutorName string                `json:"institutor_name"`
	InstitutorCPF  string                `json:"institutor_cpf"`
	OpenedAt       *time.Time            `json:"opened_at,omitempty"`
	Members        []CommissionMemberDTO `json:"members"`
	Witnesses      []WitnessDTO          `json:"witnesses,omitempty"`
}

var validRoles = []string{RolePresident, RoleSecretaryI, RoleSecretaryII, RoleMember, RoleLawyer}

func (dto *CreateInquiryDTO) Validate() error {
	v := validation.NewValidator()

	v.Field("process_id", dto.ProcessID).Required()
	v.Field("number", dto.Number).Required()
	v.Field("institutor_name", dto.InstitutorName).Required()
	v.Field("institutor_cpf", dto.InstitutorCPF).Required()

	v.Field("members", "members").Custom(func(interface{}) *errors.AppError {
		if dto.hasMandatoryRoles() {
			return nil
		}
		return errors.NewValidationFieldError("members",
			"comissão exige exatamente um Presidente, um Secretário I e um Secretário II",
			errors.ErrCodeValidationFailed)
	})

	for i, m := range dto.Members {
		field := "members[" + strconv.Itoa(i) + "]"
		v.Field(field+".name", m.Name).Required()
		v.Field(field+".role", m.Role).Required().OneOf(validRoles, errors.ErrCodeValidationFailed)
	}

	for i, w := range dto.Witnesses {
		field := "witnesses[" + strconv.Itoa(i) + "]"
		v.Field(field+".name", w.Name).Required()
	}

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (dto *CreateInquiryDTO) hasMandatoryRoles() bool {
	seen := make(map[string]int, len(dto.Members))
	for _, m := range dto.Members {
		seen[strings.TrimSpace(m.Role)]++
	}
	for _, role := range MandatoryRoles {
		if seen[role] != 1 {
			return false
		}
	}
	return true
}

func (dto *CreateInquiryDTO) ToInquiry(userID int64) *Inquiry {
	openedAt := time.Now()
	if dto.OpenedAt != nil {
		openedAt = *dto.OpenedAt
	}

	inq := &Inquiry{
		ProcessID:      dto.ProcessID,
		Number:         strings.TrimSpace(dto.Number),
		InstitutorName: strings.TrimSpace(dto.InstitutorName),
		InstitutorCPF:  strings.TrimSpace(dto.InstitutorCPF),
		OpenedAt:       openedAt,
		CreatedBy:      userID,
	}
	for _, m := range dto.Members {
		inq.Members = append(inq.Members, CommissionMember{
			Role:     strings.TrimSpace(m.Role),
			Name:     strings.TrimSpace(m.Name),
			Position: strings.TrimSpace(m.Position),
			CPF:      strings.TrimSpace(m.CPF),
			OAB:      m.OAB,
		})
	}
	for _, w := range dto.Witnesses {
		inq.Witnesses = append(inq.Witnesses, Witness{
			Name:     strings.TrimSpace(w.Name),
			CPF:      strings.TrimSpace(w.CPF),
			Position: strings.TrimSpace(w.Position),
		})
	}
	return inq
}
