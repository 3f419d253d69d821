package user

import "time"

// Profiles known to the permission algebra. Each maps to a default
// permission set; per-user overrides are layered on top.
const (
	ProfileAdministrator = "administrador"
	ProfileManager       = "gestor"
	ProfileLegal         = "juridico"
	ProfileStaff         = "funcionario"
)

type User struct {
	ID           int64      `gorm:"primaryKey"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	Name         string     `gorm:"column:name;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Profile      string     `gorm:"column:profile;not null;default:funcionario"`
	Department   string     `gorm:"column:department"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;default:now()"`
}

type Permission struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}

// ProfilePermission maps a profile to one of its default permissions.
type ProfilePermission struct {
	ID           int64     `gorm:"primaryKey"`
	Profile      string    `gorm:"column:profile;not null"`
	PermissionID int64     `gorm:"column:permission_id;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
}

// UserPermissionOverride records an explicit grant or revoke for a single
// user. A revoke always beats the profile default and any grant.
type UserPermissionOverride struct {
	ID           int64     `gorm:"primaryKey"`
	UserID       int64     `gorm:"column:user_id;not null"`
	PermissionID int64     `gorm:"column:permission_id;not null"`
	Granted      bool      `gorm:"column:granted;not null"`
	GrantedBy    *int64    `gorm:"column:granted_by"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
}

type Activity struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Action    string    `gorm:"column:action;not null"`
	Entity    string    `gorm:"column:entity"`
	EntityID  *int64    `gorm:"column:entity_id"`
	Details   string    `gorm:"column:details"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
}

func (Activity) TableName() string {
	return "user_activities"
}

type LoginEvent struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null"`
	IP        string    `gorm:"column:ip"`
	UserAgent string    `gorm:"column:user_agent"`
	Success   bool      `gorm:"column:success;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
}

func (LoginEvent) TableName() string {
	return "user_logins"
}
