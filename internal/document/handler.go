package document

import (
	"context"
	"encoding/json"
	"html"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/auth"
	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type ServiceAPI interface {
	Generate(ctx context.Context, processID int64, documentType string, userID int64) (string, error)
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

type generateRequest struct {
	ProcessID    int64  `json:"process_id"`
	DocumentType string `json:"document_type"`
}

// Generate renders a document and returns it as HTML. Errors are structured
// JSON; the legacy_html=1 query flag switches error responses back to the
// HTML-with-status-200 shape older spreadsheet macros still scrape.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.writeGenerateError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("Generate: invalid request body", "error", err)
		h.writeGenerateError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ProcessID == 0 || req.DocumentType == "" {
		h.writeGenerateError(w, r, http.StatusBadRequest, "process_id e document_type válidos são obrigatórios")
		return
	}

	htmlOut, err := h.Service.Generate(r.Context(), req.ProcessID, req.DocumentType, user.ID)
	if err != nil {
		h.Logger.Error("Generate: service error", "error", err, "process_id", req.ProcessID, "document_type", req.DocumentType)
		status := http.StatusInternalServerError
		message := "failed to generate document"
		if appErr, ok := errors.IsAppError(err); ok {
			status = appErr.StatusCode
			message = appErr.GetDetailedMessage()
		}
		h.writeGenerateError(w, r, status, message)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(htmlOut))
}

func (h *Handler) writeGenerateError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if r.URL.Query().Get("legacy_html") == "1" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body><h1>Error</h1><p>" + html.EscapeString(message) + "</p></body></html>"))
		return
	}
	h.WriteError(w, status, message)
}
