package process

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/frahmantamala/disciplinary-management/internal/core/events"
)

// Repository defines the data access methods for disciplinary processes.
type Repository interface {
	Create(ctx context.Context, p *Process) error
	GetByID(ctx context.Context, id int64) (*Process, error)
	GetAll(ctx context.Context, filter ListFilter) ([]*Process, error)
	Update(ctx context.Context, p *Process) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ListFilter narrows a process listing. OccurrenceFrom and OccurrenceTo bound
// the occurrence date inclusively; either side may be left open.
type ListFilter struct {
	Status         string
	EmployeeID     int64
	OccurrenceFrom *time.Time
	OccurrenceTo   *time.Time
	Limit          int
	Offset         int
}

// Reporter sends the finalization report. Delivery failures must not roll
// back a finalization, so the service only logs them.
type Reporter interface {
	SendProcessReport(ctx context.Context, processID int64, recipients []string, userID int64) (sent bool, err error)
}

type Service struct {
	repo     Repository
	reporter Reporter
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, reporter Reporter, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		reporter: reporter,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *Service) CreateProcess(ctx context.Context, userID int64, dto CreateProcessDTO) (*Process, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("process validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	now := time.Now()
	p := &Process{
		EmployeeID:         dto.EmployeeID,
		MisconductTypeID:   dto.MisconductTypeID,
		Classification:     strings.TrimSpace(dto.Classification),
		Status:             StatusUnderAnalysis,
		Description:        dto.Description,
		OccurrenceDate:     dto.OccurrenceDate,
		PeriodStart:        dto.PeriodStart,
		PeriodEnd:          dto.PeriodEnd,
		CLTClause:          dto.CLTClause,
		NotificationEmail1: dto.NotificationEmail1,
		NotificationEmail2: dto.NotificationEmail2,
		NotificationEmail3: dto.NotificationEmail3,
		CreatedBy:          userID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create process", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("process created",
		"process_id", p.ID,
		"employee_id", p.EmployeeID,
		"classification", p.Classification,
		"user_id", userID)

	p.StatusLabel = FormatStatus(p.Status)
	p.ClassificationLabel = FormatClassification(p.Classification)
	return p, nil
}

func (s *Service) GetProcessByID(ctx context.Context, id int64) (*Process, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get process", "error", err, "process_id", id)
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProcesses(ctx context.Context, filter ListFilter) ([]*Process, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	processes, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list processes", "error", err)
		return nil, err
	}
	return processes, nil
}

// UpdateStatus moves a process between the two pre-finalization statuses.
// Sending a case to signature carries no extra validation; the legal team
// decides when a case file is ready.
func (s *Service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*Process, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.CanTransitionTo(dto.Status) {
		s.logger.Warn("status transition rejected",
			"process_id", id,
			"from", p.Status,
			"to", dto.Status)
		if p.IsFinalized() {
			return nil, ErrProcessFinalized
		}
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, dto.Status); err != nil {
		s.logger.Error("failed to update process status", "error", err, "process_id", id)
		return nil, err
	}

	s.logger.Info("process status updated", "process_id", id, "from", p.Status, "to", dto.Status)

	p.Status = dto.Status
	p.StatusLabel = FormatStatus(p.Status)
	return p, nil
}

// FinalizeProcess closes a process with a legal decision. Validation happens
// before anything is written: a failed finalization leaves the process
// untouched. The report email is best-effort.
func (s *Service) FinalizeProcess(ctx context.Context, id, userID int64, dto FinalizeProcessDTO) (*Process, *Warning, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("finalize validation failed", "error", err, "process_id", id)
		return nil, nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.IsFinalized() {
		s.logger.Warn("finalize rejected: process already finalized", "process_id", id)
		return nil, nil, ErrProcessFinalized
	}

	now := time.Now()
	resolution := dto.BuildResolution()
	siNumber := strings.TrimSpace(dto.SIOccurrenceNumber)

	p.Status = StatusFinalized
	p.FinalDecision = &dto.Decision
	p.AppliedMeasure = dto.AppliedMeasure
	p.OpinionHTML = dto.OpinionHTML
	p.Resolution = &resolution
	p.SIOccurrenceNumber = &siNumber
	p.SignatureName = dto.SignatureName
	p.FinalizedAt = &now
	p.UpdatedAt = now

	if dto.NotificationEmail1 != nil {
		p.NotificationEmail1 = dto.NotificationEmail1
	}
	if dto.NotificationEmail2 != nil {
		p.NotificationEmail2 = dto.NotificationEmail2
	}
	if dto.NotificationEmail3 != nil {
		p.NotificationEmail3 = dto.NotificationEmail3
	}

	if dto.AppliedMeasure != nil {
		if days := SuspensionDaysFromMeasure(*dto.AppliedMeasure); days > 0 {
			p.SuspensionDays = &days
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("failed to persist finalization", "error", err, "process_id", id)
		return nil, nil, err
	}

	s.logger.Info("process finalized",
		"process_id", id,
		"decision", dto.Decision,
		"resolution", resolution,
		"user_id", userID)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewProcessFinalizedEvent(p.ID, p.EmployeeID, dto.Decision, resolution, userID))
	}

	var warning *Warning
	if s.reporter != nil {
		if _, err := s.reporter.SendProcessReport(ctx, p.ID, nil, userID); err != nil {
			s.logger.Warn("finalization report not sent", "error", err, "process_id", id)
			warning = &Warning{Message: "Processo finalizado, mas o envio do relatório falhou: " + err.Error()}
		}
	}

	p.StatusLabel = FormatStatus(p.Status)
	p.ClassificationLabel = FormatClassification(p.Classification)
	return p, warning, nil
}

// Warning reports a non-fatal condition alongside a successful operation.
type Warning struct {
	Message string `json:"message"`
}
