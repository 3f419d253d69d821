package user

import (
	"strings"

	errors "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/core/common/validation"
)

type CreateUserDTO struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Profile    string `json:"profile"`
	Department string `json:"department,omitempty"`
}

func (dto *CreateUserDTO) Validate() error {
	v := validation.NewValidator()

	v.Field("email", dto.Email).Required().Custom(func(value interface{}) *errors.AppError {
		if s, ok := value.(string); ok && s != "" && !strings.Contains(s, "@") {
			return errors.NewValidationFieldError("email", "email inválido", errors.ErrCodeValidationFailed)
		}
		return nil
	})
	v.Field("name", dto.Name).Required()
	v.Field("password", dto.Password).Required().MinLength(8)
	v.Field("profile", dto.Profile).Required().OneOf(Profiles, errors.ErrCodeValidationFailed)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateUserDTO struct {
	Name       *string `json:"name,omitempty"`
	Profile    *string `json:"profile,omitempty"`
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	Password   *string `json:"password,omitempty"`
}

func (dto *UpdateUserDTO) Validate() error {
	v := validation.NewValidator()

	if dto.Profile != nil {
		v.Field("profile", *dto.Profile).OneOf(Profiles, errors.ErrCodeValidationFailed)
	}
	if dto.Password != nil {
		v.Field("password", *dto.Password).MinLength(8)
	}
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required()
	}

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// ProfilePermissionDTO attaches one catalog permission to a profile's
// default set.
type ProfilePermissionDTO struct {
	Profile    string `json:"profile"`
	Permission string `json:"permission"`
}

func (dto *ProfilePermissionDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("profile", dto.Profile).Required().OneOf(Profiles, errors.ErrCodeValidationFailed)
	v.Field("permission", dto.Permission).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// PermissionOverrideDTO grants or revokes a single catalog permission for a
// user. Granted false records a revoke that beats the profile default.
type PermissionOverrideDTO struct {
	Permission string `json:"permission"`
	Granted    bool   `json:"granted"`
}

func (dto *PermissionOverrideDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("permission", dto.Permission).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
