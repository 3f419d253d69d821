package misconduct

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListTypes(ctx context.Context) ([]*Type, error)
	GetTypeByID(ctx context.Context, id int64) (*Type, error)
	CreateType(ctx context.Context, name, description, defaultClassification, cltClause string) (*Type, error)
	DeactivateType(ctx context.Context, id int64) error
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

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListTypes(r.Context())
	if err != nil {
		h.Logger.Error("ListTypes: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list misconduct types")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"misconduct_types": types})
}

type createTypeRequest struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	DefaultClassification string `json:"default_classification"`
	CLTClause             string `json:"clt_clause"`
}

func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req createTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		h.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	t, err := h.Service.CreateType(r.Context(), req.Name, req.Description, req.DefaultClassification, req.CLTClause)
	if err != nil {
		h.Logger.Error("CreateType: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create misconduct type")
		return
	}

	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) DeactivateType(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid misconduct type ID")
		return
	}

	if err := h.Service.DeactivateType(r.Context(), id); err != nil {
		h.Logger.Error("DeactivateType: service error", "error", err, "type_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to deactivate misconduct type")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
