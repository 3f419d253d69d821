package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	userDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/user"
	"github.com/frahmantamala/disciplinary-management/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	var model userDatamodel.User
	err := r.db.WithContext(ctx).First(&model, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&model), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model userDatamodel.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&model), nil
}

func (r *UserRepository) GetAll(ctx context.Context, limit, offset int) ([]*user.User, error) {
	var models []*userDatamodel.User
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(models))
	for _, m := range models {
		users = append(users, user.FromDataModel(m))
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := user.ToDataModel(u)
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(user.ToDataModel(u)).Error
}

// GetPermissions returns the effective set: profile defaults plus grants
// minus revokes.
func (r *UserRepository) GetPermissions(ctx context.Context, userID int64) ([]string, error) {
	query := `
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

	rows, err := r.db.WithContext(ctx).Raw(query, userID, userID, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		permissions = append(permissions, name)
	}
	return permissions, rows.Err()
}

func (r *UserRepository) GetPermissionByName(ctx context.Context, name string) (*user.Permission, error) {
	var model userDatamodel.Permission
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUnknownPermission
		}
		return nil, err
	}
	return &user.Permission{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}, nil
}

func (r *UserRepository) ListPermissions(ctx context.Context) ([]*user.Permission, error) {
	var models []*userDatamodel.Permission
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	perms := make([]*user.Permission, 0, len(models))
	for _, m := range models {
		perms = append(perms, &user.Permission{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		})
	}
	return perms, nil
}

func (r *UserRepository) ListProfilePermissions(ctx context.Context) ([]*user.ProfilePermission, error) {
	query := `
		SELECT pp.id, pp.profile, pp.permission_id, p.name, pp.created_at
		FROM profile_permissions pp
		JOIN permissions p ON p.id = pp.permission_id
		ORDER BY pp.profile ASC, p.name ASC`

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []*user.ProfilePermission
	for rows.Next() {
		var pp user.ProfilePermission
		if err := rows.Scan(&pp.ID, &pp.Profile, &pp.PermissionID, &pp.Permission, &pp.CreatedAt); err != nil {
			return nil, err
		}
		perms = append(perms, &pp)
	}
	return perms, rows.Err()
}

func (r *UserRepository) AddProfilePermission(ctx context.Context, profile string, permissionID int64) error {
	row := &userDatamodel.ProfilePermission{
		Profile:      profile,
		PermissionID: permissionID,
		CreatedAt:    time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}, {Name: "permission_id"}},
		DoNothing: true,
	}).Create(row).Error
}

func (r *UserRepository) DeleteProfilePermission(ctx context.Context, profile string, permissionID int64) error {
	return r.db.WithContext(ctx).
		Where("profile = ? AND permission_id = ?", profile, permissionID).
		Delete(&userDatamodel.ProfilePermission{}).Error
}

func (r *UserRepository) UpsertOverride(ctx context.Context, userID, permissionID int64, granted bool, grantedBy int64) error {
	override := &userDatamodel.UserPermissionOverride{
		UserID:       userID,
		PermissionID: permissionID,
		Granted:      granted,
		GrantedBy:    &grantedBy,
		CreatedAt:    time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "permission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"granted", "granted_by", "created_at"}),
	}).Create(override).Error
}

func (r *UserRepository) DeleteOverride(ctx context.Context, userID, permissionID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND permission_id = ?", userID, permissionID).
		Delete(&userDatamodel.UserPermissionOverride{}).Error
}

func (r *UserRepository) ListOverrides(ctx context.Context, userID int64) ([]*user.PermissionOverride, error) {
	query := `
		SELECT o.id, o.user_id, o.permission_id, p.name, o.granted, o.granted_by, o.created_at
		FROM user_permission_overrides o
		JOIN permissions p ON p.id = o.permission_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC`

	rows, err := r.db.WithContext(ctx).Raw(query, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []*user.PermissionOverride
	for rows.Next() {
		var o user.PermissionOverride
		if err := rows.Scan(&o.ID, &o.UserID, &o.PermissionID, &o.Permission, &o.Granted, &o.GrantedBy, &o.CreatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, &o)
	}
	return overrides, rows.Err()
}

func (r *UserRepository) RecordActivity(ctx context.Context, a *user.Activity) error {
	model := &userDatamodel.Activity{
		UserID:    a.UserID,
		Action:    a.Action,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Details:   a.Details,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *UserRepository) ListActivities(ctx context.Context, userID int64, limit, offset int) ([]*user.Activity, error) {
	var models []*userDatamodel.Activity
	query := r.db.WithContext(ctx).Model(&userDatamodel.Activity{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, err
	}

	activities := make([]*user.Activity, 0, len(models))
	for _, m := range models {
		activities = append(activities, &user.Activity{
			ID:        m.ID,
			UserID:    m.UserID,
			Action:    m.Action,
			Entity:    m.Entity,
			EntityID:  m.EntityID,
			Details:   m.Details,
			CreatedAt: m.CreatedAt,
		})
	}
	return activities, nil
}

func (r *UserRepository) ListLogins(ctx context.Context, userID int64, limit, offset int) ([]*user.LoginEvent, error) {
	var models []*userDatamodel.LoginEvent
	query := r.db.WithContext(ctx).Model(&userDatamodel.LoginEvent{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, err
	}

	logins := make([]*user.LoginEvent, 0, len(models))
	for _, m := range models {
		logins = append(logins, &user.LoginEvent{
			ID:        m.ID,
			UserID:    m.UserID,
			IP:        m.IP,
			UserAgent: m.UserAgent,
			Success:   m.Success,
			CreatedAt: m.CreatedAt,
		})
	}
	return logins, nil
}
