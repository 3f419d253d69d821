package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/core/events"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	"github.com/frahmantamala/disciplinary-management/internal/process"
)

// Display names used in email subjects and attachment filenames.
var documentTypeNames = map[string]string{
	"advertencia": "Advertência Disciplinar",
	"suspensao":   "Suspensão Disciplinar",
	"justa_causa": "Aviso de Dispensa por Justa Causa",
	"sindicancia": "Termo de Instauração de Sindicância",
}

type ProcessGetter interface {
	GetProcessByID(ctx context.Context, id int64) (*process.Process, error)
}

type EmployeeGetter interface {
	GetEmployeeByID(ctx context.Context, id int64) (*employee.Employee, error)
}

type MisconductTypeGetter interface {
	GetTypeByID(ctx context.Context, id int64) (*misconduct.Type, error)
}

// Service resolves recipients and dispatches process emails through the
// configured transport.
type Service struct {
	transport   Transport
	processes   ProcessGetter
	employees   EmployeeGetter
	misconducts MisconductTypeGetter
	eventBus    *events.EventBus
	logger      *slog.Logger
}

func NewService(
	transport Transport,
	processes ProcessGetter,
	employees EmployeeGetter,
	misconducts MisconductTypeGetter,
	eventBus *events.EventBus,
	logger *slog.Logger,
) *Service {
	return &Service{
		transport:   transport,
		processes:   processes,
		employees:   employees,
		misconducts: misconducts,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// NewTransportFromConfig picks the delivery channel: SMTP when its block is
// complete, otherwise Resend. Returns nil when neither is configured.
func NewTransportFromConfig(cfg internal.MailConfig, logger *slog.Logger) Transport {
	if cfg.SMTPConfigured() {
		return NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, logger)
	}
	if cfg.ResendConfigured() {
		return NewResendTransport(cfg.ResendAPIKey, cfg.ResendFrom, logger)
	}
	return nil
}

// ReportOverrides carries per-call field substitutions for the report body.
// The legal team uses them to preview a report before the finalization values
// are persisted on the row.
type ReportOverrides struct {
	EmployeeName       *string `json:"nome_funcionario,omitempty"`
	MisconductType     *string `json:"tipo_desvio,omitempty"`
	Classification     *string `json:"classificacao,omitempty"`
	Resolution         *string `json:"resolucao,omitempty"`
	SIOccurrenceNumber *string `json:"si_occurrence_number,omitempty"`
}

// ResolveRecipients applies the override rule: explicit recipients replace
// the ones stored on the process, never merge with them.
func ResolveRecipients(explicit []string, p *process.Process) []string {
	var cleaned []string
	for _, r := range explicit {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) > 0 {
		return cleaned
	}
	return p.NotificationEmails()
}

// SendProcessReport emails the finalization summary. A process with no
// recipients is not an error: the report is simply skipped and sent=false
// tells the caller to phrase the response accordingly. Overrides replace
// individual body fields for preview sends; nil means the persisted values.
func (s *Service) SendProcessReport(ctx context.Context, processID int64, recipients []string, overrides *ReportOverrides, userID int64) (bool, error) {
	if s.transport == nil {
		return false, internal.ErrMailNotConfigured
	}

	p, err := s.processes.GetProcessByID(ctx, processID)
	if err != nil {
		return false, err
	}

	to := ResolveRecipients(recipients, p)
	if len(to) == 0 {
		s.logger.Info("process report skipped: no recipients", "process_id", processID)
		return false, nil
	}

	employeeName := ""
	if emp, err := s.employees.GetEmployeeByID(ctx, p.EmployeeID); err == nil && emp != nil {
		employeeName = emp.FullName
	}

	misconductName := ""
	if mt, err := s.misconducts.GetTypeByID(ctx, p.MisconductTypeID); err == nil && mt != nil {
		misconductName = mt.Name
	}

	classification := process.FormatClassification(p.Classification)
	resolution := ""
	if p.Resolution != nil {
		resolution = *p.Resolution
	}
	siNumber := ""
	if p.SIOccurrenceNumber != nil {
		siNumber = *p.SIOccurrenceNumber
	}

	if overrides != nil {
		if overrides.EmployeeName != nil {
			employeeName = *overrides.EmployeeName
		}
		if overrides.MisconductType != nil {
			misconductName = *overrides.MisconductType
		}
		if overrides.Classification != nil {
			classification = process.FormatClassification(*overrides.Classification)
		}
		if overrides.Resolution != nil {
			resolution = *overrides.Resolution
		}
		if overrides.SIOccurrenceNumber != nil {
			siNumber = *overrides.SIOccurrenceNumber
		}
	}

	msg := &Message{
		To:      to,
		Subject: "Processo Disciplinar Finalizado: " + employeeName,
		HTML: fmt.Sprintf(`
      <h1>Relatório de Medida Disciplinar</h1>
      <p>O processo disciplinar para o funcionário <strong>%s</strong> foi finalizado.</p>
      <p><strong>Tipo de Desvio:</strong> %s</p>
      <p><strong>Classificação:</strong> %s</p>
      <p><strong>Resolução Final:</strong> %s</p>
      <p><strong>Número da Ocorrência no SI:</strong> %s</p>
    `, employeeName, misconductName, classification, resolution, siNumber),
	}

	sendCtx, cancel := internal.WithTimeout(ctx, 0)
	defer cancel()
	if err := s.transport.Send(sendCtx, msg); err != nil {
		return false, err
	}

	s.logger.Info("process report sent",
		"process_id", processID,
		"recipients", len(to),
		"transport", s.transport.Name())

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewReportSentEvent(processID, to, s.transport.Name(), userID))
	}
	return true, nil
}

// SendDocument emails a generated document as an HTML attachment. Recipients
// must be explicit here; stored notification emails are for finalization
// reports only.
func (s *Service) SendDocument(ctx context.Context, processID int64, documentType, htmlContent string, recipients []string) (bool, error) {
	if s.transport == nil {
		return false, internal.ErrMailNotConfigured
	}

	var to []string
	for _, r := range recipients {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			to = append(to, trimmed)
		}
	}
	if len(to) == 0 {
		s.logger.Info("document send skipped: no recipients", "process_id", processID)
		return false, nil
	}

	p, err := s.processes.GetProcessByID(ctx, processID)
	if err != nil {
		return false, err
	}

	employeeName := "Funcionário"
	if emp, err := s.employees.GetEmployeeByID(ctx, p.EmployeeID); err == nil && emp != nil {
		employeeName = emp.FullName
	}

	documentTypeName, ok := documentTypeNames[documentType]
	if !ok {
		documentTypeName = "Documento Disciplinar"
	}

	msg := &Message{
		To:      to,
		Subject: documentTypeName + " - " + employeeName,
		HTML:    buildDocumentEmailHTML(documentTypeName, employeeName),
		Attachments: []Attachment{
			{
				Filename:    strings.ReplaceAll(documentTypeName, " ", "_") + ".html",
				Content:     []byte(htmlContent),
				ContentType: "text/html",
			},
		},
	}

	sendCtx, cancel := internal.WithTimeout(ctx, 0)
	defer cancel()
	if err := s.transport.Send(sendCtx, msg); err != nil {
		return false, err
	}

	s.logger.Info("document sent",
		"process_id", processID,
		"document_type", documentType,
		"recipients", len(to),
		"transport", s.transport.Name())
	return true, nil
}

func buildDocumentEmailHTML(documentTypeName, employeeName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; background-color:#f2f4f6;">
  <table width="100%%" border="0" cellpadding="0" cellspacing="0" style="background-color:#f2f4f6;padding:20px;">
    <tr>
      <td align="center">
        <table width="600" border="0" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;border:1px solid #e8e5ef;box-shadow:0 4px 8px rgba(0,0,0,0.05);">
          <tr>
            <td align="center" style="padding:20px 0;">
              <h1 style="color:#333333;margin:0;">Sistema Disciplinar</h1>
            </td>
          </tr>
          <tr>
            <td style="padding:20px 40px;">
              <h2 style="color:#333333;text-align:center;">%s</h2>
              <p style="color:#555555;font-size:16px;line-height:1.5;">Olá,</p>
              <p style="color:#555555;font-size:16px;line-height:1.5;">Segue em anexo o documento disciplinar para <strong>%s</strong>. Este é um documento oficial que deve ser tratado com confidencialidade.</p>
              <p style="color:#555555;font-size:16px;line-height:1.5; margin-top:16px;">O documento foi gerado automaticamente pelo Sistema Disciplinar.</p>
            </td>
          </tr>
          <tr>
            <td align="center" style="padding:20px 40px;border-top:1px solid #e8e5ef;font-size:12px;color:#999999;">
              <p style="margin:0;">Este é um e-mail automático. Por favor, não responda.</p>
              <p style="margin:4px 0 0 0;">&copy; 2025 Sistema Disciplinar. Todos os direitos reservados.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, documentTypeName, documentTypeName, employeeName)
}
