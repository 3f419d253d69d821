package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	internal "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/core/events"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, userID int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context, limit, offset int) ([]*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetPermissions(ctx context.Context, userID int64) ([]string, error)
	GetPermissionByName(ctx context.Context, name string) (*Permission, error)
	ListPermissions(ctx context.Context) ([]*Permission, error)
	ListProfilePermissions(ctx context.Context) ([]*ProfilePermission, error)
	AddProfilePermission(ctx context.Context, profile string, permissionID int64) error
	DeleteProfilePermission(ctx context.Context, profile string, permissionID int64) error
	UpsertOverride(ctx context.Context, userID, permissionID int64, granted bool, grantedBy int64) error
	DeleteOverride(ctx context.Context, userID, permissionID int64) error
	ListOverrides(ctx context.Context, userID int64) ([]*PermissionOverride, error)
	RecordActivity(ctx context.Context, a *Activity) error
	ListActivities(ctx context.Context, userID int64, limit, offset int) ([]*Activity, error)
	ListLogins(ctx context.Context, userID int64, limit, offset int) ([]*LoginEvent, error)
}

// PasswordHasher hashes plaintext passwords before persistence. The auth
// service provides the bcrypt-backed implementation.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, log *slog.Logger) *Service {
	if log == nil {
		if wrapper := logger.LoggerWrapper(); wrapper != nil {
			log = wrapper
		} else {
			log = slog.Default()
		}
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: log,
	}
}

func (s *Service) GetByID(ctx context.Context, userID int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	perms, err := s.repo.GetPermissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user permissions: %w", err)
	}
	u.Permissions = perms

	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.GetAll(ctx, limit, offset)
}

func (s *Service) CreateUser(ctx context.Context, createdBy int64, dto *CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Email:        email,
		Name:         strings.TrimSpace(dto.Name),
		PasswordHash: hash,
		Profile:      dto.Profile,
		Department:   strings.TrimSpace(dto.Department),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, createdBy, "user.created", "users", &u.ID, "perfil: "+u.Profile)
	s.logger.Info("user created", "user_id", u.ID, "email", u.Email, "profile", u.Profile)

	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, updatedBy, userID int64, dto *UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		u.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Profile != nil {
		u.Profile = *dto.Profile
	}
	if dto.Department != nil {
		u.Department = strings.TrimSpace(*dto.Department)
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, updatedBy, "user.updated", "users", &userID, "")
	return u, nil
}

// GetEffectivePermissions resolves the permission set a user actually holds:
// profile defaults plus grants minus revokes.
func (s *Service) GetEffectivePermissions(ctx context.Context, userID int64) ([]string, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetPermissions(ctx, userID)
}

func (s *Service) ListProfilePermissions(ctx context.Context) ([]*ProfilePermission, error) {
	return s.repo.ListProfilePermissions(ctx)
}

// AddProfilePermission attaches a catalog permission to a profile's default
// set. Adding an already attached permission is a no-op.
func (s *Service) AddProfilePermission(ctx context.Context, addedBy int64, dto *ProfilePermissionDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	perm, err := s.repo.GetPermissionByName(ctx, strings.TrimSpace(dto.Permission))
	if err != nil || perm == nil {
		return internal.NewValidationError(
			fmt.Sprintf("permissão desconhecida: %s", dto.Permission),
			internal.ErrCodeUnknownPermission,
		)
	}

	if err := s.repo.AddProfilePermission(ctx, dto.Profile, perm.ID); err != nil {
		return err
	}

	s.recordActivity(ctx, addedBy, "profile_permission.added", "profiles", nil, dto.Profile+": "+perm.Name)
	s.logger.Info("profile permission added", "profile", dto.Profile, "permission", perm.Name)
	return nil
}

// RemoveProfilePermission detaches a catalog permission from a profile's
// default set. Per-user overrides are unaffected.
func (s *Service) RemoveProfilePermission(ctx context.Context, removedBy int64, profile, permissionName string) error {
	if !ValidProfile(profile) {
		return internal.NewValidationError(
			fmt.Sprintf("perfil desconhecido: %s", profile),
			internal.ErrCodeValidationFailed,
		)
	}

	perm, err := s.repo.GetPermissionByName(ctx, strings.TrimSpace(permissionName))
	if err != nil || perm == nil {
		return internal.NewValidationError(
			fmt.Sprintf("permissão desconhecida: %s", permissionName),
			internal.ErrCodeUnknownPermission,
		)
	}

	if err := s.repo.DeleteProfilePermission(ctx, profile, perm.ID); err != nil {
		return err
	}

	s.recordActivity(ctx, removedBy, "profile_permission.removed", "profiles", nil, profile+": "+perm.Name)
	return nil
}

// SetPermissionOverride grants or revokes one catalog permission for a user.
// The permission must exist in the catalog; typos never create phantom rows.
func (s *Service) SetPermissionOverride(ctx context.Context, grantedBy, userID int64, dto *PermissionOverrideDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}

	perm, err := s.repo.GetPermissionByName(ctx, strings.TrimSpace(dto.Permission))
	if err != nil || perm == nil {
		return internal.NewValidationError(
			fmt.Sprintf("permissão desconhecida: %s", dto.Permission),
			internal.ErrCodeUnknownPermission,
		)
	}

	if err := s.repo.UpsertOverride(ctx, userID, perm.ID, dto.Granted, grantedBy); err != nil {
		return err
	}

	action := "permission.granted"
	if !dto.Granted {
		action = "permission.revoked"
	}
	s.recordActivity(ctx, grantedBy, action, "users", &userID, perm.Name)
	s.logger.Info("permission override set",
		"user_id", userID,
		"permission", perm.Name,
		"granted", dto.Granted,
		"granted_by", grantedBy)

	return nil
}

// ClearPermissionOverride removes an override so the profile default applies
// again.
func (s *Service) ClearPermissionOverride(ctx context.Context, clearedBy, userID int64, permissionName string) error {
	perm, err := s.repo.GetPermissionByName(ctx, strings.TrimSpace(permissionName))
	if err != nil || perm == nil {
		return internal.NewValidationError(
			fmt.Sprintf("permissão desconhecida: %s", permissionName),
			internal.ErrCodeUnknownPermission,
		)
	}

	if err := s.repo.DeleteOverride(ctx, userID, perm.ID); err != nil {
		return err
	}

	s.recordActivity(ctx, clearedBy, "permission.override_cleared", "users", &userID, perm.Name)
	return nil
}

func (s *Service) ListPermissionOverrides(ctx context.Context, userID int64) ([]*PermissionOverride, error) {
	return s.repo.ListOverrides(ctx, userID)
}

func (s *Service) ListPermissions(ctx context.Context) ([]*Permission, error) {
	return s.repo.ListPermissions(ctx)
}

func (s *Service) ListActivities(ctx context.Context, userID int64, limit, offset int) ([]*Activity, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListActivities(ctx, userID, limit, offset)
}

func (s *Service) ListLogins(ctx context.Context, userID int64, limit, offset int) ([]*LoginEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListLogins(ctx, userID, limit, offset)
}

func (s *Service) recordActivity(ctx context.Context, userID int64, action, entity string, entityID *int64, details string) {
	err := s.repo.RecordActivity(ctx, &Activity{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  details,
	})
	if err != nil {
		s.logger.Warn("failed to record activity", "action", action, "user_id", userID, "error", err)
	}
}

// RegisterEventHandlers subscribes the audit trail to domain events so
// finalizations, document generations and report sends show up in the
// per-user activity feed.
func (s *Service) RegisterEventHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeProcessFinalized, func(ctx context.Context, e events.Event) error {
		evt, ok := e.(*events.ProcessFinalizedEvent)
		if !ok {
			return nil
		}
		processID := evt.ProcessID
		s.recordActivity(ctx, evt.UserID, "process.finalized", "processes", &processID, evt.Decision)
		return nil
	})

	bus.Subscribe(events.EventTypeDocumentGenerated, func(ctx context.Context, e events.Event) error {
		evt, ok := e.(*events.DocumentGeneratedEvent)
		if !ok {
			return nil
		}
		processID := evt.ProcessID
		s.recordActivity(ctx, evt.UserID, "document.generated", "processes", &processID, evt.DocumentType)
		return nil
	})

	bus.Subscribe(events.EventTypeReportSent, func(ctx context.Context, e events.Event) error {
		evt, ok := e.(*events.ReportSentEvent)
		if !ok {
			return nil
		}
		processID := evt.ProcessID
		s.recordActivity(ctx, evt.UserID, "report.sent", "processes", &processID, evt.Transport)
		return nil
	})
}
