package process_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/disciplinary-management/internal/process"
)

func TestProcess(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Process Module Suite")
}

// Mock repository for testing
type mockProcessRepository struct {
	processes         map[int64]*process.Process
	createError       error
	getError          error
	updateError       error
	updateStatusError error
	updateCalls       int
	nextID            int64
}

func newMockProcessRepository() *mockProcessRepository {
	return &mockProcessRepository{
		processes: make(map[int64]*process.Process),
		nextID:    1,
	}
}

func (m *mockProcessRepository) Create(ctx context.Context, p *process.Process) error {
	if m.createError != nil {
		return m.createError
	}
	p.ID = m.nextID
	m.nextID++
	m.processes[p.ID] = p
	return nil
}

func (m *mockProcessRepository) GetByID(ctx context.Context, id int64) (*process.Process, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	p, exists := m.processes[id]
	if !exists {
		return nil, process.ErrProcessNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockProcessRepository) GetAll(ctx context.Context, filter process.ListFilter) ([]*process.Process, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	var out []*process.Process
	for _, p := range m.processes {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.OccurrenceFrom != nil && (p.OccurrenceDate == nil || p.OccurrenceDate.Before(*filter.OccurrenceFrom)) {
			continue
		}
		if filter.OccurrenceTo != nil && (p.OccurrenceDate == nil || p.OccurrenceDate.After(*filter.OccurrenceTo)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProcessRepository) Update(ctx context.Context, p *process.Process) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.updateCalls++
	m.processes[p.ID] = p
	return nil
}

func (m *mockProcessRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusError != nil {
		return m.updateStatusError
	}
	if p, exists := m.processes[id]; exists {
		p.Status = status
	}
	return nil
}

// Mock reporter for testing
type mockReporter struct {
	sendError  error
	calls      int
	lastUserID int64
}

func (m *mockReporter) SendProcessReport(ctx context.Context, processID int64, recipients []string, userID int64) (bool, error) {
	m.calls++
	m.lastUserID = userID
	if m.sendError != nil {
		return false, m.sendError
	}
	return true, nil
}

func strPtr(s string) *string { return &s }

var _ = Describe("ProcessService", func() {
	var (
		svc      *process.Service
		mockRepo *mockProcessRepository
		reporter *mockReporter
		logger   *slog.Logger
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = newMockProcessRepository()
		reporter = &mockReporter{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = process.NewService(mockRepo, reporter, nil, logger)
		ctx = context.Background()
	})

	Describe("CreateProcess", func() {
		Context("with a valid payload", func() {
			It("creates the process in analysis status", func() {
				dto := process.CreateProcessDTO{
					EmployeeID:       10,
					MisconductTypeID: 2,
					Classification:   "Media",
					Description:      "Atraso recorrente sem justificativa",
				}

				result, err := svc.CreateProcess(ctx, 7, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result).ToNot(BeNil())
				Expect(result.ID).To(BeNumerically(">", 0))
				Expect(result.Status).To(Equal(process.StatusUnderAnalysis))
				Expect(result.StatusLabel).To(Equal("Sindicância"))
				Expect(result.ClassificationLabel).To(Equal("Média"))
				Expect(result.CreatedBy).To(Equal(int64(7)))
			})
		})

		Context("when validation fails", func() {
			It("rejects a missing employee", func() {
				dto := process.CreateProcessDTO{
					MisconductTypeID: 2,
					Classification:   "Leve",
					Description:      "Descrição",
				}

				result, err := svc.CreateProcess(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())
			})

			It("rejects an unknown classification", func() {
				dto := process.CreateProcessDTO{
					EmployeeID:       10,
					MisconductTypeID: 2,
					Classification:   "Altissima",
					Description:      "Descrição",
				}

				result, err := svc.CreateProcess(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())
			})

			It("rejects an occurrence date in the future", func() {
				future := time.Now().Add(48 * time.Hour)
				dto := process.CreateProcessDTO{
					EmployeeID:       10,
					MisconductTypeID: 2,
					Classification:   "Leve",
					Description:      "Descrição",
					OccurrenceDate:   &future,
				}

				result, err := svc.CreateProcess(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())
			})
		})

		Context("when the repository fails", func() {
			It("returns the repository error", func() {
				mockRepo.createError = errors.New("database error")
				dto := process.CreateProcessDTO{
					EmployeeID:       10,
					MisconductTypeID: 2,
					Classification:   "Leve",
					Description:      "Descrição",
				}

				result, err := svc.CreateProcess(ctx, 7, dto)

				Expect(err).To(MatchError("database error"))
				Expect(result).To(BeNil())
			})
		})
	})

	Describe("UpdateStatus", func() {
		BeforeEach(func() {
			mockRepo.processes[1] = &process.Process{
				ID:     1,
				Status: process.StatusUnderAnalysis,
			}
		})

		It("moves a case from analysis to awaiting signature", func() {
			result, err := svc.UpdateStatus(ctx, 1, process.UpdateStatusDTO{Status: process.StatusAwaitingSignature})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(process.StatusAwaitingSignature))
			Expect(mockRepo.processes[1].Status).To(Equal(process.StatusAwaitingSignature))
		})

		It("moves a case back from awaiting signature to analysis", func() {
			mockRepo.processes[1].Status = process.StatusAwaitingSignature

			result, err := svc.UpdateStatus(ctx, 1, process.UpdateStatusDTO{Status: process.StatusUnderAnalysis})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(process.StatusUnderAnalysis))
		})

		It("never finalizes through a plain status update", func() {
			_, err := svc.UpdateStatus(ctx, 1, process.UpdateStatusDTO{Status: process.StatusFinalized})

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.processes[1].Status).To(Equal(process.StatusUnderAnalysis))
		})

		It("rejects updates on a finalized process", func() {
			mockRepo.processes[1].Status = process.StatusFinalized

			_, err := svc.UpdateStatus(ctx, 1, process.UpdateStatusDTO{Status: process.StatusUnderAnalysis})

			Expect(err).To(MatchError(process.ErrProcessFinalized))
		})

		It("returns not found for a missing process", func() {
			_, err := svc.UpdateStatus(ctx, 99, process.UpdateStatusDTO{Status: process.StatusAwaitingSignature})

			Expect(err).To(MatchError(process.ErrProcessNotFound))
		})
	})

	Describe("FinalizeProcess", func() {
		BeforeEach(func() {
			mockRepo.processes[1] = &process.Process{
				ID:             1,
				EmployeeID:     10,
				Classification: "Grave",
				Status:         process.StatusAwaitingSignature,
			}
		})

		Context("with a disciplinary measure", func() {
			It("finalizes and derives the suspension days", func() {
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionApplyMeasure,
					AppliedMeasure:     strPtr(process.MeasureSuspension3Day),
					SIOccurrenceNumber: "SI-2026-0042",
				}

				result, warning, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(warning).To(BeNil())
				Expect(result.Status).To(Equal(process.StatusFinalized))
				Expect(result.FinalDecision).To(HaveValue(Equal(process.DecisionApplyMeasure)))
				Expect(result.SuspensionDays).To(HaveValue(Equal(3)))
				Expect(result.Resolution).To(HaveValue(ContainSubstring(process.MeasureSuspension3Day)))
				Expect(result.SIOccurrenceNumber).To(HaveValue(Equal("SI-2026-0042")))
				Expect(result.FinalizedAt).ToNot(BeNil())
			})

			It("rejects the decision without a measure", func() {
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionApplyMeasure,
					SIOccurrenceNumber: "SI-2026-0042",
				}

				_, _, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.updateCalls).To(Equal(0))
			})

			It("rejects an unknown measure", func() {
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionApplyMeasure,
					AppliedMeasure:     strPtr("Suspensão de 30 dias"),
					SIOccurrenceNumber: "SI-2026-0042",
				}

				_, _, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.updateCalls).To(Equal(0))
			})
		})

		Context("with notification emails in the payload", func() {
			It("persists them onto the process before reporting", func() {
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionArchive,
					SIOccurrenceNumber: "SI-2026-0050",
					NotificationEmail1: strPtr("rh@empresa.com.br"),
					NotificationEmail2: strPtr("juridico@empresa.com.br"),
				}

				result, warning, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(warning).To(BeNil())
				Expect(result.Status).To(Equal(process.StatusFinalized))

				stored := mockRepo.processes[1]
				Expect(stored.NotificationEmail1).To(HaveValue(Equal("rh@empresa.com.br")))
				Expect(stored.NotificationEmail2).To(HaveValue(Equal("juridico@empresa.com.br")))
				Expect(stored.NotificationEmail3).To(BeNil())
				Expect(reporter.calls).To(Equal(1))
				Expect(reporter.lastUserID).To(Equal(int64(7)))
			})
		})

		Context("when archiving", func() {
			It("finalizes without a measure", func() {
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionArchive,
					SIOccurrenceNumber: "SI-2026-0043",
				}

				result, warning, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(warning).To(BeNil())
				Expect(result.Resolution).To(HaveValue(Equal("Arquivado")))
				Expect(result.SuspensionDays).To(BeNil())
			})
		})

		Context("when the SI occurrence number is missing", func() {
			It("fails before touching the repository", func() {
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionArchive,
					SIOccurrenceNumber: "   ",
				}

				_, _, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.updateCalls).To(Equal(0))
				Expect(mockRepo.processes[1].Status).To(Equal(process.StatusAwaitingSignature))
			})
		})

		Context("when the process is already finalized", func() {
			It("refuses a second finalization", func() {
				mockRepo.processes[1].Status = process.StatusFinalized

				_, _, err := svc.FinalizeProcess(ctx, 1, 7, process.FinalizeProcessDTO{
					Decision:           process.DecisionArchive,
					SIOccurrenceNumber: "SI-2026-0044",
				})

				Expect(err).To(MatchError(process.ErrProcessFinalized))
				Expect(mockRepo.updateCalls).To(Equal(0))
			})
		})

		Context("when the report email fails", func() {
			It("finalizes anyway and returns a warning", func() {
				reporter.sendError = errors.New("smtp unreachable")
				dto := process.FinalizeProcessDTO{
					Decision:           process.DecisionJustCauseDirect,
					SIOccurrenceNumber: "SI-2026-0045",
				}

				result, warning, err := svc.FinalizeProcess(ctx, 1, 7, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(process.StatusFinalized))
				Expect(warning).ToNot(BeNil())
				Expect(warning.Message).To(ContainSubstring("smtp unreachable"))
				Expect(reporter.calls).To(Equal(1))
			})
		})

		Context("when persisting fails", func() {
			It("returns the repository error", func() {
				mockRepo.updateError = errors.New("database error")

				_, _, err := svc.FinalizeProcess(ctx, 1, 7, process.FinalizeProcessDTO{
					Decision:           process.DecisionArchive,
					SIOccurrenceNumber: "SI-2026-0046",
				})

				Expect(err).To(MatchError("database error"))
				Expect(reporter.calls).To(Equal(0))
			})
		})
	})

	Describe("ListProcesses", func() {
		It("filters by occurrence period", func() {
			jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
			mar := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
			jun := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
			mockRepo.processes[1] = &process.Process{ID: 1, Status: process.StatusFinalized, OccurrenceDate: &jan}
			mockRepo.processes[2] = &process.Process{ID: 2, Status: process.StatusFinalized, OccurrenceDate: &mar}
			mockRepo.processes[3] = &process.Process{ID: 3, Status: process.StatusFinalized, OccurrenceDate: &jun}

			from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
			result, err := svc.ListProcesses(ctx, process.ListFilter{OccurrenceFrom: &from, OccurrenceTo: &to})

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).To(Equal(int64(2)))
		})

		It("filters by status", func() {
			mockRepo.processes[1] = &process.Process{ID: 1, Status: process.StatusUnderAnalysis}
			mockRepo.processes[2] = &process.Process{ID: 2, Status: process.StatusFinalized}

			result, err := svc.ListProcesses(ctx, process.ListFilter{Status: process.StatusFinalized})

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).To(Equal(int64(2)))
		})
	})
})
