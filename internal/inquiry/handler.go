package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	internal "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/auth"
	"github.com/frahmantamala/disciplinary-management/internal/process"
	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type ServiceAPI interface {
	CreateInquiry(ctx context.Context, userID int64, dto *CreateInquiryDTO) (*Inquiry, error)
	GetInquiryByProcessID(ctx context.Context, processID int64) (*Inquiry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	var lg *slog.Logger
	if wrapper := logger.LoggerWrapper(); wrapper != nil {
		lg = wrapper
	} else {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	var dto CreateInquiryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	inq, err := h.Service.CreateInquiry(r.Context(), user.ID, &dto)
	if err != nil {
		switch {
		case errors.Is(err, process.ErrProcessNotFound):
			h.WriteError(w, http.StatusNotFound, "processo não encontrado")
		case errors.Is(err, ErrInquiryExists):
			h.WriteError(w, http.StatusConflict, "este processo já possui uma sindicância instaurada")
		default:
			if appErr, ok := internal.IsAppError(err); ok {
				h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
				return
			}
			h.Logger.Error("create inquiry failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "erro interno ao criar sindicância")
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, inq)
}

func (h *Handler) GetInquiryByProcess(w http.ResponseWriter, r *http.Request) {
	processID, err := strconv.ParseInt(chi.URLParam(r, "processID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "process_id inválido")
		return
	}

	inq, err := h.Service.GetInquiryByProcessID(r.Context(), processID)
	if err != nil {
		if errors.Is(err, ErrInquiryNotFound) {
			h.WriteError(w, http.StatusNotFound, "sindicância não encontrada para este processo")
			return
		}
		h.Logger.Error("get inquiry failed", "process_id", processID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao buscar sindicância")
		return
	}

	h.WriteJSON(w, http.StatusOK, inq)
}
