package inquiry_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/disciplinary-management/internal/inquiry"
	"github.com/frahmantamala/disciplinary-management/internal/process"
)

func TestInquiry(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inquiry Module Suite")
}

type mockInquiryRepository struct {
	inquiries   map[int64]*inquiry.Inquiry
	createError error
	nextID      int64
}

func newMockInquiryRepository() *mockInquiryRepository {
	return &mockInquiryRepository{
		inquiries: make(map[int64]*inquiry.Inquiry),
		nextID:    1,
	}
}

func (m *mockInquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.createError != nil {
		return m.createError
	}
	inq.ID = m.nextID
	m.nextID++
	m.inquiries[inq.ProcessID] = inq
	return nil
}

func (m *mockInquiryRepository) GetByProcessID(ctx context.Context, processID int64) (*inquiry.Inquiry, error) {
	inq, exists := m.inquiries[processID]
	if !exists {
		return nil, inquiry.ErrInquiryNotFound
	}
	return inq, nil
}

func (m *mockInquiryRepository) GetByID(ctx context.Context, id int64) (*inquiry.Inquiry, error) {
	for _, inq := range m.inquiries {
		if inq.ID == id {
			return inq, nil
		}
	}
	return nil, inquiry.ErrInquiryNotFound
}

type mockProcessChecker struct {
	exists bool
	err    error
}

func (m *mockProcessChecker) ProcessExists(ctx context.Context, processID int64) (bool, error) {
	return m.exists, m.err
}

func validDTO() *inquiry.CreateInquiryDTO {
	return &inquiry.CreateInquiryDTO{
		ProcessID:      1,
		Number:         "SIND-2026-001",
		InstitutorName: "Carlos Lima",
		InstitutorCPF:  "111.222.333-44",
		Members: []inquiry.CommissionMemberDTO{
			{Role: inquiry.RolePresident, Name: "Marina Alves", Position: "Gerente de RH"},
			{Role: inquiry.RoleSecretaryI, Name: "João Pedro", Position: "Analista"},
			{Role: inquiry.RoleSecretaryII, Name: "Beatriz Costa", Position: "Analista"},
		},
	}
}

var _ = Describe("InquiryService", func() {
	var (
		svc      *inquiry.Service
		mockRepo *mockInquiryRepository
		checker  *mockProcessChecker
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = newMockInquiryRepository()
		checker = &mockProcessChecker{exists: true}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = inquiry.NewService(mockRepo, checker, logger)
		ctx = context.Background()
	})

	Describe("CreateInquiry", func() {
		Context("with a complete commission", func() {
			It("creates the inquiry with its members", func() {
				result, err := svc.CreateInquiry(ctx, 7, validDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(result).ToNot(BeNil())
				Expect(result.ID).To(BeNumerically(">", 0))
				Expect(result.Number).To(Equal("SIND-2026-001"))
				Expect(result.Members).To(HaveLen(3))
				Expect(result.CreatedBy).To(Equal(int64(7)))
			})

			It("accepts optional extra members and witnesses", func() {
				dto := validDTO()
				dto.Members = append(dto.Members, inquiry.CommissionMemberDTO{
					Role: inquiry.RoleLawyer, Name: "Dra. Carla Mendes", Position: "Advogada",
				})
				dto.Witnesses = []inquiry.WitnessDTO{
					{Name: "Rafael Dias", CPF: "555.666.777-88"},
				}

				result, err := svc.CreateInquiry(ctx, 7, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Members).To(HaveLen(4))
				Expect(result.Witnesses).To(HaveLen(1))
			})
		})

		Context("when the commission is incomplete", func() {
			It("rejects a missing secretary", func() {
				dto := validDTO()
				dto.Members = dto.Members[:2]

				_, err := svc.CreateInquiry(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.inquiries).To(BeEmpty())
			})

			It("rejects a duplicated president", func() {
				dto := validDTO()
				dto.Members = append(dto.Members, inquiry.CommissionMemberDTO{
					Role: inquiry.RolePresident, Name: "Outro Presidente", Position: "Diretor",
				})

				_, err := svc.CreateInquiry(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
			})

			It("rejects an unknown role", func() {
				dto := validDTO()
				dto.Members[2].Role = "Tesoureiro"

				_, err := svc.CreateInquiry(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
			})

			It("rejects a member without a name", func() {
				dto := validDTO()
				dto.Members[1].Name = ""

				_, err := svc.CreateInquiry(ctx, 7, dto)

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the process does not exist", func() {
			It("returns the process not found error", func() {
				checker.exists = false

				_, err := svc.CreateInquiry(ctx, 7, validDTO())

				Expect(err).To(MatchError(process.ErrProcessNotFound))
			})
		})

		Context("when an inquiry already exists for the process", func() {
			It("refuses to create a second one", func() {
				_, err := svc.CreateInquiry(ctx, 7, validDTO())
				Expect(err).ToNot(HaveOccurred())

				_, err = svc.CreateInquiry(ctx, 7, validDTO())
				Expect(err).To(MatchError(inquiry.ErrInquiryExists))
			})
		})

		Context("when the repository fails", func() {
			It("returns the repository error", func() {
				mockRepo.createError = errors.New("database error")

				_, err := svc.CreateInquiry(ctx, 7, validDTO())

				Expect(err).To(MatchError("database error"))
			})
		})
	})

	Describe("GetInquiryByProcessID", func() {
		It("returns the inquiry for the process", func() {
			created, err := svc.CreateInquiry(ctx, 7, validDTO())
			Expect(err).ToNot(HaveOccurred())

			found, err := svc.GetInquiryByProcessID(ctx, 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(found.ID).To(Equal(created.ID))
		})

		It("returns not found when none exists", func() {
			_, err := svc.GetInquiryByProcessID(ctx, 42)

			Expect(err).To(MatchError(inquiry.ErrInquiryNotFound))
		})
	})
})
