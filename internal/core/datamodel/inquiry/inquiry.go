package inquiry

import "time"

// Commission roles. President and both secretaries are mandatory when an
// inquiry is opened; members and the lawyer are optional.
const (
	RolePresident   = "Presidente"
	RoleSecretaryI  = "Secretário I"
	RoleSecretaryII = "Secretário II"
	RoleMember      = "Membro"
	RoleLawyer      = "Advogado"
)

type Inquiry struct {
	ID             int64     `gorm:"primaryKey"`
	ProcessID      int64     `gorm:"column:process_id;uniqueIndex;not null"`
	Number         string    `gorm:"column:number;not null"`
	InstitutorName string    `gorm:"column:institutor_name;not null"`
	InstitutorCPF  string    `gorm:"column:institutor_cpf"`
	OpenedAt       time.Time `gorm:"column:opened_at;type:date"`
	CreatedBy      int64     `gorm:"column:created_by;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Members   []CommissionMember `gorm:"foreignKey:InquiryID"`
	Witnesses []Witness          `gorm:"foreignKey:InquiryID"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

type CommissionMember struct {
	ID        int64     `gorm:"primaryKey"`
	InquiryID int64     `gorm:"column:inquiry_id;not null"`
	Role      string    `gorm:"column:role;not null"`
	Name      string    `gorm:"column:name;not null"`
	Position  string    `gorm:"column:position"`
	CPF       string    `gorm:"column:cpf"`
	OAB       *string   `gorm:"column:oab"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CommissionMember) TableName() string {
	return "commission_members"
}

type Witness struct {
	ID        int64     `gorm:"primaryKey"`
	InquiryID int64     `gorm:"column:inquiry_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	CPF       string    `gorm:"column:cpf"`
	Position  string    `gorm:"column:position"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Witness) TableName() string {
	return "inquiry_witnesses"
}
