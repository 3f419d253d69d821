package employee

import "time"

type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	Registration string    `gorm:"column:registration;uniqueIndex;not null"`
	FullName     string    `gorm:"column:full_name;not null"`
	Position     string    `gorm:"column:position"`
	Department   string    `gorm:"column:department"`
	Manager      string    `gorm:"column:manager"`
	CPF          *string   `gorm:"column:cpf"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
