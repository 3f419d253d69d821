package process

import (
	"errors"
	"strconv"
	"strings"
	"time"

	processDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/process"
)

// Stored statuses keep the underscore form from the intake spreadsheets.
// Use FormatStatus for anything user-facing.
const (
	StatusUnderAnalysis     = processDatamodel.StatusUnderAnalysis
	StatusAwaitingSignature = processDatamodel.StatusAwaitingSignature
	StatusFinalized         = processDatamodel.StatusFinalized
)

const (
	DecisionArchive         = "Arquivar Processo"
	DecisionApplyMeasure    = "Aplicar Medida Disciplinar"
	DecisionJustCauseDirect = "Recomendar Justa Causa Direta"
)

const (
	MeasureWrittenWarning = "Advertência Escrita"
	MeasureSuspension1Day = "Suspensão de 1 dia"
	MeasureSuspension3Day = "Suspensão de 3 dias"
	MeasureSuspension5Day = "Suspensão de 5 dias"
)

var ValidDecisions = []string{DecisionArchive, DecisionApplyMeasure, DecisionJustCauseDirect}

var ValidMeasures = []string{MeasureWrittenWarning, MeasureSuspension1Day, MeasureSuspension3Day, MeasureSuspension5Day}

var (
	ErrProcessNotFound    = errors.New("process not found")
	ErrProcessFinalized   = errors.New("process is finalized and read-only")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrUnauthorizedAccess = errors.New("unauthorized access to process")
)

type Process struct {
	ID               int64      `json:"id"`
	EmployeeID       int64      `json:"employee_id"`
	MisconductTypeID int64      `json:"misconduct_type_id"`
	Classification   string     `json:"classification"`
	Status           string     `json:"status"`
	Description      string     `json:"description"`
	OccurrenceDate   *time.Time `json:"occurrence_date,omitempty"`
	PeriodStart      *time.Time `json:"period_start,omitempty"`
	PeriodEnd        *time.Time `json:"period_end,omitempty"`
	CLTClause        *string    `json:"clt_clause,omitempty"`

	SIOccurrenceNumber *string `json:"si_occurrence_number,omitempty"`
	FinalDecision      *string `json:"final_decision,omitempty"`
	AppliedMeasure     *string `json:"applied_measure,omitempty"`
	SuspensionDays     *int    `json:"suspension_days,omitempty"`
	Resolution         *string `json:"resolution,omitempty"`
	OpinionHTML        *string `json:"opinion_html,omitempty"`
	SignatureName      *string `json:"signature_name,omitempty"`

	NotificationEmail1 *string `json:"notification_email_1,omitempty"`
	NotificationEmail2 *string `json:"notification_email_2,omitempty"`
	NotificationEmail3 *string `json:"notification_email_3,omitempty"`

	CreatedBy   int64      `json:"created_by"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Display forms, derived at read time. Never persisted.
	StatusLabel         string `json:"status_label,omitempty"`
	ClassificationLabel string `json:"classification_label,omitempty"`
}

func (p *Process) IsFinalized() bool {
	return p.Status == StatusFinalized
}

// CanTransitionTo validates the workflow. Finalization never happens through
// a plain status update; the finalize operation owns that transition.
func (p *Process) CanTransitionTo(status string) bool {
	if p.IsFinalized() {
		return false
	}
	switch p.Status {
	case StatusUnderAnalysis:
		return status == StatusAwaitingSignature
	case StatusAwaitingSignature:
		return status == StatusUnderAnalysis
	}
	return false
}

// NotificationEmails returns the stored recipient columns that are non-empty.
func (p *Process) NotificationEmails() []string {
	var out []string
	for _, e := range []*string{p.NotificationEmail1, p.NotificationEmail2, p.NotificationEmail3} {
		if e != nil && strings.TrimSpace(*e) != "" {
			out = append(out, strings.TrimSpace(*e))
		}
	}
	return out
}

// SuspensionDaysFromMeasure extracts the day count from a suspension measure
// label, e.g. "Suspensão de 3 dias" yields 3. Returns 0 when the measure is
// not a suspension.
func SuspensionDaysFromMeasure(measure string) int {
	fields := strings.Fields(measure)
	for i, f := range fields {
		if n, err := strconv.Atoi(f); err == nil && i > 0 {
			return n
		}
	}
	return 0
}

func ToDataModel(p *Process) *processDatamodel.Process {
	return &processDatamodel.Process{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		MisconductTypeID:   p.MisconductTypeID,
		Classification:     p.Classification,
		Status:             p.Status,
		Description:        p.Description,
		OccurrenceDate:     p.OccurrenceDate,
		PeriodStart:        p.PeriodStart,
		PeriodEnd:          p.PeriodEnd,
		CLTClause:          p.CLTClause,
		SIOccurrenceNumber: p.SIOccurrenceNumber,
		FinalDecision:      p.FinalDecision,
		AppliedMeasure:     p.AppliedMeasure,
		SuspensionDays:     p.SuspensionDays,
		Resolution:         p.Resolution,
		OpinionHTML:        p.OpinionHTML,
		SignatureName:      p.SignatureName,
		NotificationEmail1: p.NotificationEmail1,
		NotificationEmail2: p.NotificationEmail2,
		NotificationEmail3: p.NotificationEmail3,
		CreatedBy:          p.CreatedBy,
		FinalizedAt:        p.FinalizedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromDataModel(m *processDatamodel.Process) *Process {
	p := &Process{
		ID:                 m.ID,
		EmployeeID:         m.EmployeeID,
		MisconductTypeID:   m.MisconductTypeID,
		Classification:     m.Classification,
		Status:             m.Status,
		Description:        m.Description,
		OccurrenceDate:     m.OccurrenceDate,
		PeriodStart:        m.PeriodStart,
		PeriodEnd:          m.PeriodEnd,
		CLTClause:          m.CLTClause,
		SIOccurrenceNumber: m.SIOccurrenceNumber,
		FinalDecision:      m.FinalDecision,
		AppliedMeasure:     m.AppliedMeasure,
		SuspensionDays:     m.SuspensionDays,
		Resolution:         m.Resolution,
		OpinionHTML:        m.OpinionHTML,
		SignatureName:      m.SignatureName,
		NotificationEmail1: m.NotificationEmail1,
		NotificationEmail2: m.NotificationEmail2,
		NotificationEmail3: m.NotificationEmail3,
		CreatedBy:          m.CreatedBy,
		FinalizedAt:        m.FinalizedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	p.StatusLabel = FormatStatus(p.Status)
	p.ClassificationLabel = FormatClassification(p.Classification)
	return p
}

func FromDataModelSlice(models []*processDatamodel.Process) []*Process {
	result := make([]*Process, len(models))
	for i, m := range models {
		result[i] = FromDataModel(m)
	}
	return result
}
