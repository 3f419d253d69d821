package mailer_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	"github.com/frahmantamala/disciplinary-management/internal/mailer"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	"github.com/frahmantamala/disciplinary-management/internal/process"
)

func TestMailer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mailer Module Suite")
}

// Fake transport recording every delivery attempt
type fakeTransport struct {
	sent    []*mailer.Message
	sendErr error
}

func (t *fakeTransport) Send(ctx context.Context, msg *mailer.Message) error {
	if t.sendErr != nil {
		return t.sendErr
	}
	t.sent = append(t.sent, msg)
	return nil
}

func (t *fakeTransport) Name() string { return "fake" }

type stubProcessGetter struct {
	process *process.Process
	err     error
}

func (s *stubProcessGetter) GetProcessByID(ctx context.Context, id int64) (*process.Process, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.process, nil
}

type stubEmployeeGetter struct {
	employee *employee.Employee
}

func (s *stubEmployeeGetter) GetEmployeeByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if s.employee == nil {
		return nil, employee.ErrEmployeeNotFound
	}
	return s.employee, nil
}

type stubMisconductGetter struct {
	misconductType *misconduct.Type
}

func (s *stubMisconductGetter) GetTypeByID(ctx context.Context, id int64) (*misconduct.Type, error) {
	if s.misconductType == nil {
		return nil, misconduct.ErrTypeNotFound
	}
	return s.misconductType, nil
}

func ptr(s string) *string { return &s }

var _ = Describe("MailerService", func() {
	var (
		svc         *mailer.Service
		transport   *fakeTransport
		processes   *stubProcessGetter
		employees   *stubEmployeeGetter
		misconducts *stubMisconductGetter
		ctx         context.Context
	)

	newService := func(t mailer.Transport) *mailer.Service {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		return mailer.NewService(t, processes, employees, misconducts, nil, logger)
	}

	BeforeEach(func() {
		transport = &fakeTransport{}
		processes = &stubProcessGetter{
			process: &process.Process{
				ID:                 1,
				EmployeeID:         10,
				MisconductTypeID:   2,
				Classification:     "grave",
				Status:             "Finalizado",
				Resolution:         ptr("Arquivado"),
				SIOccurrenceNumber: ptr("SI-2026-0042"),
				NotificationEmail1: ptr("rh@empresa.com.br"),
				NotificationEmail2: ptr("  juridico@empresa.com.br "),
			},
		}
		employees = &stubEmployeeGetter{
			employee: &employee.Employee{ID: 10, FullName: "Ana Souza"},
		}
		misconducts = &stubMisconductGetter{
			misconductType: &misconduct.Type{ID: 2, Name: "Abandono de posto"},
		}
		svc = newService(transport)
		ctx = context.Background()
	})

	Describe("SendProcessReport", func() {
		It("sends to the stored notification emails", func() {
			sent, err := svc.SendProcessReport(ctx, 1, nil, nil, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeTrue())
			Expect(transport.sent).To(HaveLen(1))
			Expect(transport.sent[0].To).To(Equal([]string{"rh@empresa.com.br", "juridico@empresa.com.br"}))
			Expect(transport.sent[0].Subject).To(ContainSubstring("Ana Souza"))
			Expect(transport.sent[0].HTML).To(ContainSubstring("SI-2026-0042"))
			Expect(transport.sent[0].HTML).To(ContainSubstring("Grave"))
		})

		It("replaces stored recipients with explicit ones, never merging", func() {
			sent, err := svc.SendProcessReport(ctx, 1, []string{"diretoria@empresa.com.br"}, nil, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeTrue())
			Expect(transport.sent[0].To).To(Equal([]string{"diretoria@empresa.com.br"}))
		})

		It("ignores blank explicit recipients and falls back to stored ones", func() {
			sent, err := svc.SendProcessReport(ctx, 1, []string{"  ", ""}, nil, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeTrue())
			Expect(transport.sent[0].To).To(Equal([]string{"rh@empresa.com.br", "juridico@empresa.com.br"}))
		})

		It("applies per-call overrides to the report body", func() {
			overrides := &mailer.ReportOverrides{
				MisconductType:     ptr("Outro desvio"),
				Classification:     ptr("gravissima"),
				Resolution:         ptr("Suspensão aplicada"),
				SIOccurrenceNumber: ptr("SI-2026-0099"),
			}

			sent, err := svc.SendProcessReport(ctx, 1, nil, overrides, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeTrue())
			Expect(transport.sent).To(HaveLen(1))
			Expect(transport.sent[0].HTML).To(ContainSubstring("Outro desvio"))
			Expect(transport.sent[0].HTML).To(ContainSubstring("Gravíssima"))
			Expect(transport.sent[0].HTML).To(ContainSubstring("Suspensão aplicada"))
			Expect(transport.sent[0].HTML).To(ContainSubstring("SI-2026-0099"))
			Expect(transport.sent[0].HTML).ToNot(ContainSubstring("Arquivado"))
			Expect(transport.sent[0].HTML).ToNot(ContainSubstring("SI-2026-0042"))
		})

		It("skips silently when the process has no recipients at all", func() {
			processes.process.NotificationEmail1 = nil
			processes.process.NotificationEmail2 = nil

			sent, err := svc.SendProcessReport(ctx, 1, nil, nil, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeFalse())
			Expect(transport.sent).To(BeEmpty())
		})

		It("fails when no transport is configured", func() {
			svc = newService(nil)

			sent, err := svc.SendProcessReport(ctx, 1, nil, nil, 7)

			Expect(err).To(MatchError(internal.ErrMailNotConfigured))
			Expect(sent).To(BeFalse())
		})

		It("propagates transport failures", func() {
			transport.sendErr = errors.New("connection refused")

			sent, err := svc.SendProcessReport(ctx, 1, nil, nil, 7)

			Expect(err).To(MatchError("connection refused"))
			Expect(sent).To(BeFalse())
		})

		It("propagates a missing process", func() {
			processes.err = process.ErrProcessNotFound

			sent, err := svc.SendProcessReport(ctx, 99, nil, nil, 7)

			Expect(err).To(MatchError(process.ErrProcessNotFound))
			Expect(sent).To(BeFalse())
		})
	})

	Describe("SendDocument", func() {
		const html = "<html><body>Documento</body></html>"

		It("attaches the rendered document", func() {
			sent, err := svc.SendDocument(ctx, 1, "advertencia", html, []string{"gestor@empresa.com.br"})

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeTrue())
			Expect(transport.sent).To(HaveLen(1))
			msg := transport.sent[0]
			Expect(msg.Subject).To(Equal("Advertência Disciplinar - Ana Souza"))
			Expect(msg.Attachments).To(HaveLen(1))
			Expect(msg.Attachments[0].Filename).To(Equal("Advertência_Disciplinar.html"))
			Expect(msg.Attachments[0].ContentType).To(Equal("text/html"))
			Expect(string(msg.Attachments[0].Content)).To(Equal(html))
		})

		It("never falls back to the stored notification emails", func() {
			sent, err := svc.SendDocument(ctx, 1, "advertencia", html, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeFalse())
			Expect(transport.sent).To(BeEmpty())
		})

		It("uses a generic name for unknown document types", func() {
			sent, err := svc.SendDocument(ctx, 1, "outro", html, []string{"gestor@empresa.com.br"})

			Expect(err).ToNot(HaveOccurred())
			Expect(sent).To(BeTrue())
			Expect(transport.sent[0].Subject).To(ContainSubstring("Documento Disciplinar"))
		})
	})

	Describe("NewTransportFromConfig", func() {
		It("prefers SMTP when its block is complete", func() {
			cfg := internal.MailConfig{
				SMTPHost:     "smtp.empresa.com.br",
				SMTPPort:     587,
				SMTPUser:     "noreply",
				SMTPPassword: "secret",
				SMTPFrom:     "noreply@empresa.com.br",
				ResendAPIKey: "re_123",
			}

			t := mailer.NewTransportFromConfig(cfg, slog.Default())

			Expect(t).ToNot(BeNil())
			Expect(t.Name()).To(Equal("smtp"))
		})

		It("falls back to Resend when SMTP is incomplete", func() {
			cfg := internal.MailConfig{
				SMTPHost:     "smtp.empresa.com.br",
				ResendAPIKey: "re_123",
			}

			t := mailer.NewTransportFromConfig(cfg, slog.Default())

			Expect(t).ToNot(BeNil())
			Expect(t.Name()).To(Equal("resend"))
		})

		It("returns nil when nothing is configured", func() {
			t := mailer.NewTransportFromConfig(internal.MailConfig{}, slog.Default())

			Expect(t).To(BeNil())
		})
	})
})
