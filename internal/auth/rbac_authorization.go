package auth

import (
	"context"
	"log/slog"
	"net/http"
)

type PermissionAuthorizer interface {
	HasPermission(ctx context.Context, userPermissions []string, permission string) (bool, error)
}

type RBACAuthorization struct {
	authorizer PermissionAuthorizer
	logger     *slog.Logger
}

func NewRBACAuthorization(authorizer PermissionAuthorizer, logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		authorizer: authorizer,
		logger:     logger,
	}
}

func (ra *RBACAuthorization) Check(next http.HandlerFunc, permission string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user == nil {
			ra.logger.Warn("authorization check failed: user not found in context")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		hasAccess, err := ra.authorizer.HasPermission(r.Context(), user.Permissions, permission)
		if err != nil {
			ra.logger.ErrorContext(r.Context(), "authorization check failed", "error", err, "user_id", user.ID, "permission", permission)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if !hasAccess {
			ra.logger.WarnContext(r.Context(), "access denied: insufficient permissions",
				"user_id", user.ID,
				"required_permission", permission,
				"user_permissions", user.Permissions)
			http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (ra *RBACAuthorization) Middleware(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return ra.Check(next.ServeHTTP, permission)
	}
}

func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.Middleware(PermAdmin)
}

func (ra *RBACAuthorization) RequireViewProcesses() func(http.Handler) http.Handler {
	return ra.Middleware(PermViewProcesses)
}

func (ra *RBACAuthorization) RequireCreateProcesses() func(http.Handler) http.Handler {
	return ra.Middleware(PermCreateProcesses)
}

func (ra *RBACAuthorization) RequireFinalizeProcesses() func(http.Handler) http.Handler {
	return ra.Middleware(PermFinalizeProcesses)
}

func (ra *RBACAuthorization) RequireManageInquiries() func(http.Handler) http.Handler {
	return ra.Middleware(PermManageInquiries)
}

func (ra *RBACAuthorization) RequireGenerateDocuments() func(http.Handler) http.Handler {
	return ra.Middleware(PermGenerateDocuments)
}

func (ra *RBACAuthorization) RequireSendReports() func(http.Handler) http.Handler {
	return ra.Middleware(PermSendReports)
}

func (ra *RBACAuthorization) RequireManageUsers() func(http.Handler) http.Handler {
	return ra.Middleware(PermManageUsers)
}

func (ra *RBACAuthorization) RequireImportEmployees() func(http.Handler) http.Handler {
	return ra.Middleware(PermImportEmployees)
}
