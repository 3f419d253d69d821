package process

import "time"

// Status values are stored with underscores, mirroring how the intake
// spreadsheets encode them. Display formatting happens at read time.
const (
	StatusUnderAnalysis     = "Em_Analise"
	StatusAwaitingSignature = "Aguardando_Assinatura"
	StatusFinalized         = "Finalizado"
)

const (
	ClassificationLight    = "Leve"
	ClassificationMedium   = "Media"
	ClassificationSerious  = "Grave"
	ClassificationGravest  = "Gravissima"
)

type Process struct {
	ID               int64      `gorm:"primaryKey"`
	EmployeeID       int64      `gorm:"column:employee_id;not null"`
	MisconductTypeID int64      `gorm:"column:misconduct_type_id;not null"`
	Classification   string     `gorm:"column:classification;not null"`
	Status           string     `gorm:"column:status;default:Em_Analise"`
	Description      string     `gorm:"column:description"`
	OccurrenceDate   *time.Time `gorm:"column:occurrence_date;type:date"`
	PeriodStart      *time.Time `gorm:"column:period_start;type:date"`
	PeriodEnd        *time.Time `gorm:"column:period_end;type:date"`
	CLTClause        *string    `gorm:"column:clt_clause"`

	SIOccurrenceNumber *string `gorm:"column:si_occurrence_number"`
	FinalDecision      *string `gorm:"column:final_decision"`
	AppliedMeasure     *string `gorm:"column:applied_measure"`
	SuspensionDays     *int    `gorm:"column:suspension_days"`
	Resolution         *string `gorm:"column:resolution"`
	OpinionHTML        *string `gorm:"column:opinion_html"`
	SignatureName      *string `gorm:"column:signature_name"`

	NotificationEmail1 *string `gorm:"column:notification_email_1"`
	NotificationEmail2 *string `gorm:"column:notification_email_2"`
	NotificationEmail3 *string `gorm:"column:notification_email_3"`

	CreatedBy   int64      `gorm:"column:created_by;not null"`
	FinalizedAt *time.Time `gorm:"column:finalized_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Process) TableName() string {
	return "processes"
}

// NotificationEmails returns the stored recipient columns that are non-empty,
// in column order.
func (p *Process) NotificationEmails() []string {
	var out []string
	for _, e := range []*string{p.NotificationEmail1, p.NotificationEmail2, p.NotificationEmail3} {
		if e != nil && *e != "" {
			out = append(out, *e)
		}
	}
	return out
}
