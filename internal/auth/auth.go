package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal "github.com/frahmantamala/disciplinary-management/internal"
)

// Permission names used across the HTTP surface. The catalog rows seeded in
// the database must match these exactly.
const (
	PermAdmin             = "admin"
	PermViewProcesses     = "view_processes"
	PermViewAllProcesses  = "view_all_processes"
	PermCreateProcesses   = "create_processes"
	PermFinalizeProcesses = "finalize_processes"
	PermManageInquiries   = "manage_inquiries"
	PermGenerateDocuments = "generate_documents"
	PermSendReports       = "send_reports"
	PermManageUsers       = "manage_users"
	PermImportEmployees   = "import_employees"
)

// User is the authenticated principal carried through request context.
type User struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Profile     string   `json:"profile"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    bool     `json:"is_active"`
}

func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (u *User) HasAnyPermission(permissions []string) bool {
	for _, userPerm := range u.Permissions {
		for _, requiredPerm := range permissions {
			if userPerm == requiredPerm {
				return true
			}
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasPermission(PermAdmin)
}

type ctxKey string

const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

var (
	ErrInvalidCredentials = internal.ErrInvalidCredentials
	ErrInvalidToken       = internal.ErrInvalidToken
	ErrTokenExpired       = internal.ErrTokenExpired
	ErrUserInactive       = internal.ErrUserInactive
)
