package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
)

var ErrForbidden = errors.New("forbidden")

// ProcessOwnershipStore answers who opened a given disciplinary process. It
// reads through sqlx directly so the policy check stays a single round trip.
type ProcessOwnershipStore struct {
	db *sqlx.DB
}

func NewProcessOwnershipStore(db *sqlx.DB) *ProcessOwnershipStore {
	return &ProcessOwnershipStore{db: db}
}

func (s *ProcessOwnershipStore) GetProcessCreator(ctx context.Context, processID int64) (int64, error) {
	var createdBy int64
	err := s.db.GetContext(ctx, &createdBy, "SELECT created_by FROM processes WHERE id = $1", processID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sql.ErrNoRows
		}
		return 0, err
	}
	return createdBy, nil
}

// ProcessAccessPolicy is the attribute-based complement to the RBAC
// middleware: staff profiles only see processes they opened, while anyone
// holding view_all_processes or admin sees everything.
type ProcessAccessPolicy struct {
	ownership *ProcessOwnershipStore
	checker   PermissionChecker
}

func NewProcessAccessPolicy(ownership *ProcessOwnershipStore, checker PermissionChecker) *ProcessAccessPolicy {
	return &ProcessAccessPolicy{
		ownership: ownership,
		checker:   checker,
	}
}

func (p *ProcessAccessPolicy) CanViewProcess(ctx context.Context, u *User, processID int64) error {
	if u == nil {
		return ErrForbidden
	}
	if p.checker.CanViewAllProcesses(u.Permissions) {
		return nil
	}

	createdBy, err := p.ownership.GetProcessCreator(ctx, processID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// missing processes fall through to the handler's 404
			return nil
		}
		return err
	}
	if createdBy == u.ID {
		return nil
	}
	return ErrForbidden
}

// RequireProcessAccess guards routes carrying an {id} process URL parameter.
func RequireProcessAccess(policy *ProcessAccessPolicy) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok || u == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			processID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
			if err != nil {
				http.Error(w, "invalid process id", http.StatusBadRequest)
				return
			}

			if err := policy.CanViewProcess(r.Context(), u, processID); err != nil {
				if errors.Is(err, ErrForbidden) {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
