package process

import (
	"strings"
	"time"

	errors "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/core/common/validation"
)

type CreateProcessDTO struct {
	EmployeeID       int64      `json:"employee_id"`
	MisconductTypeID int64      `json:"misconduct_type_id"`
	Classification   string     `json:"classification"`
	Description      string     `json:"description"`
	OccurrenceDate   *time.Time `json:"occurrence_date,omitempty"`
	PeriodStart      *time.Time `json:"period_start,omitempty"`
	PeriodEnd        *time.Time `json:"period_end,omitempty"`
	CLTClause        *string    `json:"clt_clause,omitempty"`

	NotificationEmail1 *string `json:"notification_email_1,omitempty"`
	NotificationEmail2 *string `json:"notification_email_2,omitempty"`
	NotificationEmail3 *string `json:"notification_email_3,omitempty"`
}

func (dto CreateProcessDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required()
	v.Field("misconduct_type_id", dto.MisconductTypeID).Required()
	v.Field("classification", dto.Classification).Required()
	v.Field("description", dto.Description).Required().MaxLength(5000)
	if dto.OccurrenceDate != nil {
		v.Field("occurrence_date", *dto.OccurrenceDate).NotFuture()
	}
	if err := v.Validate(); err != nil {
		return err
	}
	switch FormatClassification(dto.Classification) {
	case "Leve", "Média", "Grave", "Gravíssima":
	default:
		return errors.NewValidationFieldError("classification",
			"classification must be one of Leve, Media, Grave, Gravissima",
			errors.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("status", dto.Status).
		Required().
		OneOf([]string{StatusUnderAnalysis, StatusAwaitingSignature}, errors.ErrCodeInvalidStatus)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// FinalizeProcessDTO carries the legal decision that closes a process. The
// notification emails, when present, replace the ones stored on the row
// before the finalization report goes out.
type FinalizeProcessDTO struct {
	Decision           string  `json:"decision"`
	AppliedMeasure     *string `json:"applied_measure,omitempty"`
	OpinionHTML        *string `json:"opinion_html,omitempty"`
	SIOccurrenceNumber string  `json:"si_occurrence_number"`
	SignatureName      *string `json:"signature_name,omitempty"`

	NotificationEmail1 *string `json:"notification_email_1,omitempty"`
	NotificationEmail2 *string `json:"notification_email_2,omitempty"`
	NotificationEmail3 *string `json:"notification_email_3,omitempty"`
}

func (dto FinalizeProcessDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("decision", dto.Decision).
		Required().
		OneOf(ValidDecisions, errors.ErrCodeInvalidDecision)
	v.Field("si_occurrence_number", strings.TrimSpace(dto.SIOccurrenceNumber)).
		Custom(func(value interface{}) *errors.AppError {
			if s, ok := value.(string); !ok || s == "" {
				return errors.NewValidationFieldError("si_occurrence_number",
					"SI occurrence number is required to finalize a process",
					errors.ErrCodeMissingOccurrenceNumber)
			}
			return nil
		})
	if err := v.Validate(); err != nil {
		return err
	}

	if dto.Decision == DecisionApplyMeasure {
		if dto.AppliedMeasure == nil || strings.TrimSpace(*dto.AppliedMeasure) == "" {
			return errors.NewValidationFieldError("applied_measure",
				"a disciplinary measure is required for this decision",
				errors.ErrCodeInvalidMeasure)
		}
		valid := false
		for _, m := range ValidMeasures {
			if *dto.AppliedMeasure == m {
				valid = true
				break
			}
		}
		if !valid {
			return errors.NewValidationFieldError("applied_measure",
				"unknown disciplinary measure: "+*dto.AppliedMeasure,
				errors.ErrCodeInvalidMeasure)
		}
	}
	return nil
}

// BuildResolution composes the human-readable resolution text stored on the
// process. The legal opinion, when present, is appended verbatim.
func (dto FinalizeProcessDTO) BuildResolution() string {
	var resolution string
	switch dto.Decision {
	case DecisionArchive:
		resolution = "Arquivado"
	case DecisionApplyMeasure:
		measure := ""
		if dto.AppliedMeasure != nil {
			measure = *dto.AppliedMeasure
		}
		resolution = "Medida disciplinar: " + measure
	case DecisionJustCauseDirect:
		resolution = "Recomendação: Justa Causa Direta"
	}
	if dto.OpinionHTML != nil && strings.TrimSpace(*dto.OpinionHTML) != "" {
		resolution += " — Parecer: " + *dto.OpinionHTML
	}
	return resolution
}
