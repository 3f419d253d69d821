package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/disciplinary-management/internal/auth"
	userDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetPasswordForEmail(ctx context.Context, email string) (string, int64, bool, error) {
	var (
		passwordHash string
		userID       int64
		active       bool
	)
	query := `SELECT id, password_hash, is_active FROM users WHERE email = ?`

	row := r.db.WithContext(ctx).Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash, &active); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, false, fmt.Errorf("user not found")
		}
		return "", 0, false, err
	}
	return passwordHash, userID, active, nil
}

// GetUserWithPermissions resolves the effective permission set: the profile
// defaults, plus per-user grants, minus per-user revokes. A revoke always
// wins over the profile default.
func (r *Repository) GetUserWithPermissions(ctx context.Context, userID int64) (*auth.User, error) {
	var u auth.User

	query := `SELECT id, email, name, profile, is_active FROM users WHERE id = ?`
	row := r.db.WithContext(ctx).Raw(query, userID).Row()
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Profile, &u.IsActive); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	permQuery := `
		SELECT p.name
		FROM permissions p
		JOIN profile_permissions pp ON pp.permission_id = p.id
		JOIN users u ON u.profile = pp.profile
		WHERE u.id = ?
		UNION
		SELECT p.name
		FROM permissions p
		JOIN user_permission_overrides o ON o.permission_id = p.id
		WHERE o.user_id = ? AND o.granted = true
		EXCEPT
		SELECT p.name
		FROM permissions p
		JOIN user_permission_overrides o ON o.permission_id = p.id
		WHERE o.user_id = ? AND o.granted = false`

	rows, err := r.db.WithContext(ctx).Raw(permQuery, userID, userID, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var permName string
		if err := rows.Scan(&permName); err != nil {
			return nil, err
		}
		permissions = append(permissions, permName)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	u.Permissions = permissions
	return &u, nil
}

func (r *Repository) RecordLogin(ctx context.Context, attempt auth.LoginAttempt) error {
	event := &userDatamodel.LoginEvent{
		UserID:    attempt.UserID,
		IP:        attempt.IP,
		UserAgent: attempt.UserAgent,
		Success:   attempt.Success,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *Repository) TouchLastLogin(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Update("last_login_at", time.Now()).Error
}
