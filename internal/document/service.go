package document

import (
	"context"
	"html"
	"log/slog"
	"strconv"
	"strings"
	"time"

	errors "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/core/events"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	"github.com/frahmantamala/disciplinary-management/internal/inquiry"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	"github.com/frahmantamala/disciplinary-management/internal/process"
)

const dateLayout = "02/01/2006"

// Default texts used when a process lacks the corresponding field.
const (
	defaultCLTClause     = "Conforme disposições do contrato de trabalho e legislação vigente"
	defaultSignatureName = "Setor Jurídico"
	notAvailable         = "N/A"
)

type ProcessGetter interface {
	GetProcessByID(ctx context.Context, id int64) (*process.Process, error)
}

type EmployeeGetter interface {
	GetEmployeeByID(ctx context.Context, id int64) (*employee.Employee, error)
}

type MisconductTypeGetter interface {
	GetTypeByID(ctx context.Context, id int64) (*misconduct.Type, error)
}

type InquiryGetter interface {
	GetInquiryByProcessID(ctx context.Context, processID int64) (*inquiry.Inquiry, error)
}

type Service struct {
	processes   ProcessGetter
	employees   EmployeeGetter
	misconducts MisconductTypeGetter
	inquiries   InquiryGetter
	eventBus    *events.EventBus
	location    *time.Location
	logger      *slog.Logger
}

func NewService(
	processes ProcessGetter,
	employees EmployeeGetter,
	misconducts MisconductTypeGetter,
	inquiries InquiryGetter,
	eventBus *events.EventBus,
	logger *slog.Logger,
) *Service {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		logger.Warn("failed to load America/Sao_Paulo timezone, using UTC", "error", err)
		loc = time.UTC
	}
	return &Service{
		processes:   processes,
		employees:   employees,
		misconducts: misconducts,
		inquiries:   inquiries,
		eventBus:    eventBus,
		location:    loc,
		logger:      logger,
	}
}

func (s *Service) formatDate(t time.Time) string {
	return t.In(s.location).Format(dateLayout)
}

// Generate renders a document of the given type for a process and returns the
// filled HTML.
func (s *Service) Generate(ctx context.Context, processID int64, documentType string, userID int64) (string, error) {
	if _, ok := TemplateFor(documentType); !ok {
		return "", errors.NewValidationError(
			"unknown document type: "+documentType,
			errors.ErrCodeUnknownDocumentType)
	}

	var htmlOut string
	var err error
	if documentType == TypeInquiry {
		htmlOut, err = s.generateInquiryDocument(ctx, processID)
	} else {
		htmlOut, err = s.generateProcessDocument(ctx, processID, documentType)
	}
	if err != nil {
		return "", err
	}

	s.logger.Info("document generated",
		"process_id", processID,
		"document_type", documentType,
		"user_id", userID)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewDocumentGeneratedEvent(processID, documentType, userID))
	}
	return htmlOut, nil
}

func (s *Service) generateProcessDocument(ctx context.Context, processID int64, documentType string) (string, error) {
	p, err := s.processes.GetProcessByID(ctx, processID)
	if err != nil {
		s.logger.Error("process not found for document", "error", err, "process_id", processID)
		if err == process.ErrProcessNotFound {
			return "", errors.ErrProcessNotFound
		}
		return "", err
	}

	emp, err := s.employees.GetEmployeeByID(ctx, p.EmployeeID)
	if err != nil {
		s.logger.Error("employee not found for document", "error", err, "employee_id", p.EmployeeID)
		return "", errors.ErrEmployeeNotFound
	}

	misconductName := notAvailable
	if mt, err := s.misconducts.GetTypeByID(ctx, p.MisconductTypeID); err == nil && mt != nil {
		misconductName = mt.Name
	}

	now := time.Now()

	period := notAvailable
	occurrence := notAvailable
	if p.PeriodStart != nil && p.PeriodEnd != nil {
		period = s.formatDate(*p.PeriodStart) + " a " + s.formatDate(*p.PeriodEnd)
	} else if p.PeriodStart != nil {
		period = s.formatDate(*p.PeriodStart)
	} else if p.OccurrenceDate != nil {
		period = s.formatDate(*p.OccurrenceDate)
	}
	if p.OccurrenceDate != nil {
		occurrence = s.formatDate(*p.OccurrenceDate)
	} else if p.PeriodStart != nil {
		occurrence = s.formatDate(*p.PeriodStart)
	}

	suspensionDays := 0
	if p.SuspensionDays != nil {
		suspensionDays = *p.SuspensionDays
	}
	// TODO: count the suspension window from the notification date instead of
	// the generation date once the legal team signs off on the change.
	returnDate := notAvailable
	if suspensionDays > 0 {
		returnDate = s.formatDate(now.AddDate(0, 0, suspensionDays))
	}

	cltClause := defaultCLTClause
	if p.CLTClause != nil && strings.TrimSpace(*p.CLTClause) != "" {
		cltClause = *p.CLTClause
	}

	signature := defaultSignatureName
	if p.SignatureName != nil && strings.TrimSpace(*p.SignatureName) != "" {
		signature = *p.SignatureName
	}

	resolution := ""
	if p.Resolution != nil {
		resolution = *p.Resolution
	}

	data := map[string]string{
		"nome_colaborador":       emp.FullName,
		"cargo_colaborador":      emp.Position,
		"setor_colaborador":      emp.Department,
		"periodo_ocorrencia":     period,
		"data_da_ocorrencia":     occurrence,
		"tipo_desvio_nome":       misconductName,
		"descricao_desvio":       p.Description,
		"classificacao_desvio":   process.FormatClassification(p.Classification),
		"resolucao_final":        resolution,
		"dias_suspensao_numero":  strconv.Itoa(suspensionDays),
		"dias_suspensao_extenso": Extenso(suspensionDays),
		"data_retorno_suspensao": returnDate,
		"clt_alinea":             cltClause,
		"data_atual":             s.formatDate(now),
		"nome_assinatura":        signature,
	}

	template, _ := TemplateFor(documentType)
	return Fill(template, data), nil
}

func (s *Service) generateInquiryDocument(ctx context.Context, processID int64) (string, error) {
	inq, err := s.inquiries.GetInquiryByProcessID(ctx, processID)
	if err != nil {
		s.logger.Error("inquiry not found for document", "error", err, "process_id", processID)
		if err == inquiry.ErrInquiryNotFound {
			return "", errors.ErrInquiryNotFound
		}
		return "", err
	}

	var membersTable strings.Builder
	presidentName := notAvailable
	for _, m := range inq.Members {
		oab := "—"
		if m.OAB != nil && strings.TrimSpace(*m.OAB) != "" {
			oab = *m.OAB
		}
		membersTable.WriteString("<tr><td>" + html.EscapeString(m.Name) +
			"</td><td>" + html.EscapeString(m.Position) +
			"</td><td>" + html.EscapeString(m.Role) +
			"</td><td>" + html.EscapeString(oab) + "</td></tr>")
		if m.Role == inquiry.RolePresident && presidentName == notAvailable {
			presidentName = m.Name
		}
	}
	if presidentName == notAvailable && len(inq.Members) > 0 {
		presidentName = inq.Members[0].Name
	}

	var witnessesTable strings.Builder
	for _, w := range inq.Witnesses {
		witnessesTable.WriteString("<tr><td>" + html.EscapeString(w.Name) +
			"</td><td>" + html.EscapeString(w.CPF) + "</td></tr>")
	}

	data := map[string]string{
		"numero_sindicancia": inq.Number,
		"nome_instituidor":   inq.InstitutorName,
		"cpf_instituidor":    inq.InstitutorCPF,
		"presidente_nome":    presidentName,
		"data_atual":         s.formatDate(time.Now()),
		"membros_table":      membersTable.String(),
		"testemunhas_table":  witnessesTable.String(),
	}

	return Fill(inquiryTemplate, data), nil
}
