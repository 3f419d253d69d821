package document_test

import (
	"context"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/document"
	"github.com/frahmantamala/disciplinary-management/internal/employee"
	"github.com/frahmantamala/disciplinary-management/internal/inquiry"
	"github.com/frahmantamala/disciplinary-management/internal/misconduct"
	"github.com/frahmantamala/disciplinary-management/internal/process"
)

type mockProcessGetter struct {
	process *process.Process
	err     error
}

func (m *mockProcessGetter) GetProcessByID(ctx context.Context, id int64) (*process.Process, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.process, nil
}

type mockEmployeeGetter struct {
	employee *employee.Employee
	err      error
}

func (m *mockEmployeeGetter) GetEmployeeByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employee, nil
}

type mockMisconductGetter struct {
	misconductType *misconduct.Type
	err            error
}

func (m *mockMisconductGetter) GetTypeByID(ctx context.Context, id int64) (*misconduct.Type, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.misconductType, nil
}

type mockInquiryGetter struct {
	inquiry *inquiry.Inquiry
	err     error
}

func (m *mockInquiryGetter) GetInquiryByProcessID(ctx context.Context, processID int64) (*inquiry.Inquiry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.inquiry, nil
}

func str(s string) *string { return &s }

var _ = Describe("DocumentService", func() {
	var (
		svc         *document.Service
		processes   *mockProcessGetter
		employees   *mockEmployeeGetter
		misconducts *mockMisconductGetter
		inquiries   *mockInquiryGetter
		ctx         context.Context
	)

	BeforeEach(func() {
		occurred := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		days := 3
		processes = &mockProcessGetter{
			process: &process.Process{
				ID:               1,
				EmployeeID:       10,
				MisconductTypeID: 2,
				Classification:   "grave",
				Status:           "Finalizado",
				Description:      "Abandono do posto de trabalho",
				OccurrenceDate:   &occurred,
				SuspensionDays:   &days,
				Resolution:       str("Medida disciplinar: Suspensão de 3 dias"),
				SignatureName:    str("Dra. Carla Mendes"),
			},
		}
		employees = &mockEmployeeGetter{
			employee: &employee.Employee{
				ID:         10,
				FullName:   "Ana Souza",
				Position:   "Operadora de Produção",
				Department: "Produção",
			},
		}
		misconducts = &mockMisconductGetter{
			misconductType: &misconduct.Type{ID: 2, Name: "Abandono de posto"},
		}
		inquiries = &mockInquiryGetter{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = document.NewService(processes, employees, misconducts, inquiries, nil, logger)
		ctx = context.Background()
	})

	Describe("Generate", func() {
		It("rejects an unknown document type", func() {
			_, err := svc.Generate(ctx, 1, "demissao", 7)

			Expect(err).To(HaveOccurred())
			appErr, ok := err.(*internal.AppError)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeUnknownDocumentType))
		})

		It("renders a suspension document with the spelled out day count", func() {
			out, err := svc.Generate(ctx, 1, document.TypeSuspension, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Ana Souza"))
			Expect(out).To(ContainSubstring("Operadora de Produção"))
			Expect(out).To(ContainSubstring("Abandono de posto"))
			Expect(out).To(ContainSubstring("3 (três)"))
			Expect(out).To(ContainSubstring("Grave"))
			Expect(out).To(ContainSubstring("Dra. Carla Mendes"))
			Expect(out).To(ContainSubstring("10/03/2026"))
			Expect(out).ToNot(ContainSubstring("{{"))
		})

		It("renders a warning document", func() {
			out, err := svc.Generate(ctx, 1, document.TypeWarning, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("ADVERTÊNCIA DISCIPLINAR"))
			Expect(out).To(ContainSubstring("Medida disciplinar: Suspensão de 3 dias"))
			Expect(out).ToNot(ContainSubstring("{{"))
		})

		It("falls back to defaults when optional fields are absent", func() {
			processes.process.CLTClause = nil
			processes.process.SignatureName = nil

			out, err := svc.Generate(ctx, 1, document.TypeJustCause, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Setor Jurídico"))
			Expect(out).ToNot(ContainSubstring("{{"))
		})

		It("returns not found when the process is missing", func() {
			processes.err = process.ErrProcessNotFound

			_, err := svc.Generate(ctx, 99, document.TypeWarning, 7)

			Expect(err).To(MatchError(internal.ErrProcessNotFound))
		})

		It("returns not found when the employee is missing", func() {
			employees.err = employee.ErrEmployeeNotFound

			_, err := svc.Generate(ctx, 1, document.TypeWarning, 7)

			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Generate for an inquiry", func() {
		BeforeEach(func() {
			oab := "OAB/SP 12345"
			inquiries.inquiry = &inquiry.Inquiry{
				ID:             1,
				ProcessID:      1,
				Number:         "SIND-2026-001",
				InstitutorName: "Carlos Lima",
				InstitutorCPF:  "111.222.333-44",
				Members: []inquiry.CommissionMember{
					{Role: inquiry.RolePresident, Name: "Marina Alves", Position: "Gerente de RH"},
					{Role: inquiry.RoleSecretaryI, Name: "João Pedro", Position: "Analista"},
					{Role: inquiry.RoleSecretaryII, Name: "Beatriz Costa", Position: "Analista"},
					{Role: inquiry.RoleLawyer, Name: "Dra. Carla Mendes", Position: "Advogada", OAB: &oab},
				},
				Witnesses: []inquiry.Witness{
					{Name: "Rafael Dias", CPF: "555.666.777-88"},
				},
			}
		})

		It("renders the commission and witness tables", func() {
			out, err := svc.Generate(ctx, 1, document.TypeInquiry, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("SIND-2026-001"))
			Expect(out).To(ContainSubstring("Carlos Lima"))
			Expect(out).To(ContainSubstring("Marina Alves"))
			Expect(out).To(ContainSubstring("OAB/SP 12345"))
			Expect(out).To(ContainSubstring("Rafael Dias"))
			Expect(out).ToNot(ContainSubstring("{{"))
		})

		It("uses the president as the signing member", func() {
			out, err := svc.Generate(ctx, 1, document.TypeInquiry, 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("Presidente da Comissão"))
			Expect(out).To(ContainSubstring("Marina Alves"))
		})

		It("returns not found when no inquiry exists", func() {
			inquiries.err = inquiry.ErrInquiryNotFound

			_, err := svc.Generate(ctx, 1, document.TypeInquiry, 7)

			Expect(err).To(MatchError(internal.ErrInquiryNotFound))
		})
	})
})
