package employee

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	errors "github.com/frahmantamala/disciplinary-management/internal"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByRegistration(ctx context.Context, registration string) (*Employee, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Employee, error)
	Upsert(ctx context.Context, e *Employee) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetEmployeeByID(ctx context.Context, id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	return emp, nil
}

func (s *Service) GetEmployeeByRegistration(ctx context.Context, registration string) (*Employee, error) {
	emp, err := s.repo.GetByRegistration(ctx, strings.TrimSpace(registration))
	if err != nil {
		s.logger.Error("failed to get employee by registration", "error", err, "registration", registration)
		return nil, err
	}
	return emp, nil
}

func (s *Service) SearchEmployees(ctx context.Context, query string, limit, offset int) ([]*Employee, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	employees, err := s.repo.Search(ctx, strings.TrimSpace(query), limit, offset)
	if err != nil {
		s.logger.Error("failed to search employees", "error", err, "query", query)
		return nil, err
	}
	return employees, nil
}

// ImportResult summarizes a roster import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// csvHeader maps accepted column names (the HR export uses the Portuguese
// ones) to canonical fields.
var csvHeader = map[string]string{
	"matricula":     "registration",
	"registration":  "registration",
	"nome_completo": "full_name",
	"full_name":     "full_name",
	"cargo":         "position",
	"position":      "position",
	"setor":         "department",
	"department":    "department",
	"gestor":        "manager",
	"manager":       "manager",
	"cpf":           "cpf",
}

// ImportCSV upserts employees from the HR roster export. Rows missing a
// registration or name are skipped and reported, not fatal.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewValidationError("empty or unreadable CSV file", errors.ErrCodeValidationFailed)
	}

	columns := make(map[int]string, len(header))
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := csvHeader[key]; ok {
			columns[i] = canonical
		}
	}
	if len(columns) == 0 {
		return nil, errors.NewValidationError("CSV header has no recognized columns", errors.ErrCodeValidationFailed)
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, "line "+strconv.Itoa(line)+": malformed row")
			continue
		}

		fields := make(map[string]string)
		for i, value := range record {
			if canonical, ok := columns[i]; ok {
				fields[canonical] = strings.TrimSpace(value)
			}
		}

		if fields["registration"] == "" || fields["full_name"] == "" {
			result.Skipped++
			result.Errors = append(result.Errors, "line "+strconv.Itoa(line)+": registration and full name are required")
			continue
		}

		emp := &Employee{
			Registration: fields["registration"],
			FullName:     fields["full_name"],
			Position:     fields["position"],
			Department:   fields["department"],
			Manager:      fields["manager"],
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if cpf := fields["cpf"]; cpf != "" {
			emp.CPF = &cpf
		}

		if err := s.repo.Upsert(ctx, emp); err != nil {
			s.logger.Error("failed to upsert employee", "error", err, "registration", emp.Registration)
			result.Skipped++
			result.Errors = append(result.Errors, "line "+strconv.Itoa(line)+": "+err.Error())
			continue
		}
		result.Imported++
	}

	s.logger.Info("employee import finished",
		"imported", result.Imported,
		"skipped", result.Skipped)
	return result, nil
}
