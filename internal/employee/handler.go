package employee

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetEmployeeByID(ctx context.Context, id int64) (*Employee, error)
	GetEmployeeByRegistration(ctx context.Context, registration string) (*Employee, error)
	SearchEmployees(ctx context.Context, query string, limit, offset int) ([]*Employee, error)
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	emp, err := h.Service.GetEmployeeByID(r.Context(), id)
	if err != nil {
		if err == ErrEmployeeNotFound {
			h.WriteError(w, http.StatusNotFound, "employee not found")
			return
		}
		h.Logger.Error("GetEmployee: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if registration := r.URL.Query().Get("registration"); registration != "" {
		emp, err := h.Service.GetEmployeeByRegistration(r.Context(), registration)
		if err != nil {
			if err == ErrEmployeeNotFound {
				h.WriteError(w, http.StatusNotFound, "employee not found")
				return
			}
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"employees": []*Employee{emp}})
		return
	}

	employees, err := h.Service.SearchEmployees(r.Context(), r.URL.Query().Get("q"), limit, offset)
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employees": employees,
		"limit":     limit,
		"offset":    offset,
	})
}

// ImportCSV ingests the HR roster export. Accepts either a raw CSV body or a
// multipart upload under the "file" field.
func (h *Handler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	var reader io.Reader = r.Body

	if contentType := r.Header.Get("Content-Type"); len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		file, _, err := r.FormFile("file")
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "missing file upload")
			return
		}
		defer file.Close()
		reader = file
	}

	result, err := h.Service.ImportCSV(r.Context(), reader)
	if err != nil {
		h.Logger.Error("ImportCSV: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}
