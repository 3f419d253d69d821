package misconduct

import (
	"context"
	"log/slog"
	"strings"

	misconductDatamodel "github.com/frahmantamala/disciplinary-management/internal/core/datamodel/misconduct"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*misconductDatamodel.MisconductType, error)
	GetByID(ctx context.Context, id int64) (*misconductDatamodel.MisconductType, error)
	Create(ctx context.Context, t *misconductDatamodel.MisconductType) error
	Update(ctx context.Context, t *misconductDatamodel.MisconductType) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListTypes returns the active catalog entries.
func (s *Service) ListTypes(ctx context.Context) ([]*Type, error) {
	models, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list misconduct types", "error", err)
		return nil, err
	}

	var types []*Type
	for _, m := range models {
		t := FromDataModel(m)
		if t.IsActive {
			types = append(types, t)
		}
	}
	return types, nil
}

func (s *Service) GetTypeByID(ctx context.Context, id int64) (*Type, error) {
	model, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get misconduct type", "error", err, "type_id", id)
		return nil, err
	}
	if model == nil {
		return nil, ErrTypeNotFound
	}
	return FromDataModel(model), nil
}

func (s *Service) CreateType(ctx context.Context, name, description, defaultClassification, cltClause string) (*Type, error) {
	t := NewType(strings.TrimSpace(name), description, defaultClassification, cltClause)
	model := ToDataModel(t)
	if err := s.repo.Create(ctx, model); err != nil {
		s.logger.Error("failed to create misconduct type", "error", err, "name", name)
		return nil, err
	}
	t.ID = model.ID
	s.logger.Info("misconduct type created", "type_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *Service) DeactivateType(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to deactivate misconduct type", "error", err, "type_id", id)
		return err
	}
	s.logger.Info("misconduct type deactivated", "type_id", id)
	return nil
}
