package auth

import "context"

type PermissionChecker interface {
	HasPermission(ctx context.Context, userPermissions []string, permission string) (bool, error)
	CanViewAllProcesses(userPermissions []string) bool
	HasAnyPermission(userPermissions []string, requiredPermissions []string) bool
	IsAdmin(userPermissions []string) bool
}

type DefaultPermissionChecker struct{}

func NewPermissionChecker() *DefaultPermissionChecker {
	return &DefaultPermissionChecker{}
}

func (c *DefaultPermissionChecker) HasPermission(ctx context.Context, userPermissions []string, permission string) (bool, error) {
	// admin short-circuits every named permission
	return c.HasAnyPermission(userPermissions, []string{permission, PermAdmin}), nil
}

func (c *DefaultPermissionChecker) CanViewAllProcesses(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermViewAllProcesses, PermAdmin})
}

func (c *DefaultPermissionChecker) HasAnyPermission(userPermissions []string, requiredPermissions []string) bool {
	for _, userPerm := range userPermissions {
		for _, requiredPerm := range requiredPermissions {
			if userPerm == requiredPerm {
				return true
			}
		}
	}
	return false
}

func (c *DefaultPermissionChecker) IsAdmin(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermAdmin})
}
