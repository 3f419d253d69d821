package user

import (
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/user"
)

const (
	ProfileAdministrator = userDatamodel.ProfileAdministrator
	ProfileManager       = userDatamodel.ProfileManager
	ProfileLegal         = userDatamodel.ProfileLegal
	ProfileStaff         = userDatamodel.ProfileStaff
)

// Profiles lists every profile accepted when creating or updating a user.
var Profiles = []string{ProfileAdministrator, ProfileManager, ProfileLegal, ProfileStaff}

var (
	ErrNotFound          = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUnknownPermission = errors.New("permission not found in catalog")
)

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Profile      string     `json:"profile"`
	Department   string     `json:"department"`
	IsActive     bool       `json:"is_active"`
	Permissions  []string   `json:"permissions,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Permission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfilePermission is one catalog permission granted by default to every
// user of a profile.
type ProfilePermission struct {
	ID           int64     `json:"id"`
	Profile      string    `json:"profile"`
	PermissionID int64     `json:"permission_id"`
	Permission   string    `json:"permission"`
	CreatedAt    time.Time `json:"created_at"`
}

// PermissionOverride is an explicit per-user grant or revoke layered over the
// profile defaults.
type PermissionOverride struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	PermissionID int64     `json:"permission_id"`
	Permission   string    `json:"permission"`
	Granted      bool      `json:"granted"`
	GrantedBy    *int64    `json:"granted_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Activity struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *int64    `json:"entity_id,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidProfile(profile string) bool {
	for _, p := range Profiles {
		if p == profile {
			return true
		}
	}
	return false
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Profile:      u.Profile,
		Department:   u.Department,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Profile:      u.Profile,
		Department:   u.Department,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Permissions:  []string{},
	}
}

func FromDataModelWithPermissions(u *userDatamodel.User, permissions []string) *User {
	domainUser := FromDataModel(u)
	domainUser.Permissions = permissions
	return domainUser
}
