package misconduct

import "time"

// MisconductType is a catalog entry describing a kind of workplace
// misconduct and its default classification.
type MisconductType struct {
	ID                    int64     `gorm:"primaryKey"`
	Name                  string    `gorm:"column:name;uniqueIndex;not null"`
	Description           string    `gorm:"column:description"`
	DefaultClassification string    `gorm:"column:default_classification"`
	CLTClause             string    `gorm:"column:clt_clause"`
	IsActive              bool      `gorm:"column:is_active;default:true"`
	CreatedAt             time.Time `gorm:"column:created_at;default:now()"`
}

func (MisconductType) TableName() string {
	return "misconduct_types"
}
