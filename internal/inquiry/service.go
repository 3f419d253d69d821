package inquiry

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/disciplinary-management/internal/process"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	GetByProcessID(ctx context.Context, processID int64) (*Inquiry, error)
	GetByID(ctx context.Context, id int64) (*Inquiry, error)
}

// ProcessChecker confirms the target process exists before an inquiry is opened.
type ProcessChecker interface {
	ProcessExists(ctx context.Context, processID int64) (bool, error)
}

type Service struct {
	repo      Repository
	processes ProcessChecker
	logger    *slog.Logger
}

func NewService(repo Repository, processes ProcessChecker, log *slog.Logger) *Service {
	if log == nil {
		if wrapper := logger.LoggerWrapper(); wrapper != nil {
			log = wrapper
		} else {
			log = slog.Default()
		}
	}
	return &Service{
		repo:      repo,
		processes: processes,
		logger:    log,
	}
}

func (s *Service) CreateInquiry(ctx context.Context, userID int64, dto *CreateInquiryDTO) (*Inquiry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.processes.ProcessExists(ctx, dto.ProcessID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, process.ErrProcessNotFound
	}

	if existing, err := s.repo.GetByProcessID(ctx, dto.ProcessID); err == nil && existing != nil {
		return nil, ErrInquiryExists
	}

	inq := dto.ToInquiry(userID)
	if err := s.repo.Create(ctx, inq); err != nil {
		s.logger.Error("failed to create inquiry", "process_id", dto.ProcessID, "error", err)
		return nil, err
	}

	s.logger.Info("inquiry created",
		"inquiry_id", inq.ID,
		"process_id", inq.ProcessID,
		"number", inq.Number,
		"members", len(inq.Members))

	return inq, nil
}

func (s *Service) GetInquiryByProcessID(ctx context.Context, processID int64) (*Inquiry, error) {
	return s.repo.GetByProcessID(ctx, processID)
}
