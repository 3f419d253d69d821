package process

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/disciplinary-management/internal/auth"
	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateProcess(ctx context.Context, userID int64, dto CreateProcessDTO) (*Process, error)
	GetProcessByID(ctx context.Context, id int64) (*Process, error)
	ListProcesses(ctx context.Context, filter ListFilter) ([]*Process, error)
	UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*Process, error)
	FinalizeProcess(ctx context.Context, id, userID int64, dto FinalizeProcessDTO) (*Process, *Warning, error)
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

func (h *Handler) CreateProcess(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateProcessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateProcess: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreateProcess(r.Context(), user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateProcess: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetProcess(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid process ID")
		return
	}

	p, err := h.Service.GetProcessByID(r.Context(), id)
	if err != nil {
		h.Logger.Error("GetProcess: service error", "error", err, "process_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{Limit: 20}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}
	filter.Status = r.URL.Query().Get("status")
	if empStr := r.URL.Query().Get("employee_id"); empStr != "" {
		if e, err := strconv.ParseInt(empStr, 10, 64); err == nil {
			filter.EmployeeID = e
		}
	}
	if fromStr := r.URL.Query().Get("occurrence_from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			filter.OccurrenceFrom = &from
		}
	}
	if toStr := r.URL.Query().Get("occurrence_to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			filter.OccurrenceTo = &to
		}
	}

	processes, err := h.Service.ListProcesses(r.Context(), filter)
	if err != nil {
		h.Logger.Error("ListProcesses: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"processes": processes,
		"limit":     filter.Limit,
		"offset":    filter.Offset,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid process ID")
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdateStatus(r.Context(), id, dto)
	if err != nil {
		h.Logger.Error("UpdateStatus: service error", "error", err, "process_id", id)
		switch err {
		case ErrProcessNotFound:
			h.WriteError(w, http.StatusNotFound, "process not found")
		case ErrProcessFinalized:
			h.WriteError(w, http.StatusBadRequest, "process is finalized and read-only")
		case ErrInvalidTransition:
			h.WriteError(w, http.StatusBadRequest, "invalid status transition")
		default:
			h.HandleServiceError(w, err)
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) FinalizeProcess(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid process ID")
		return
	}

	var dto FinalizeProcessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("FinalizeProcess: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, warning, err := h.Service.FinalizeProcess(r.Context(), id, user.ID, dto)
	if err != nil {
		h.Logger.Error("FinalizeProcess: service error", "error", err, "process_id", id, "user_id", user.ID)
		switch err {
		case ErrProcessNotFound:
			h.WriteError(w, http.StatusNotFound, "process not found")
		case ErrProcessFinalized:
			h.WriteError(w, http.StatusConflict, "process is already finalized")
		default:
			h.HandleServiceError(w, err)
		}
		return
	}

	response := map[string]interface{}{"process": p}
	if warning != nil {
		response["warning"] = warning.Message
	}
	h.WriteJSON(w, http.StatusOK, response)
}
