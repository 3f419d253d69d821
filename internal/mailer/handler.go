package mailer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/frahmantamala/disciplinary-management/internal"
	"github.com/frahmantamala/disciplinary-management/internal/auth"
	"github.com/frahmantamala/disciplinary-management/internal/process"
	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type ServiceAPI interface {
	SendProcessReport(ctx context.Context, processID int64, recipients []string, overrides *ReportOverrides, userID int64) (bool, error)
	SendDocument(ctx context.Context, processID int64, documentType, htmlContent string, recipients []string) (bool, error)
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

type sendReportRequest struct {
	ProcessID  int64            `json:"process_id"`
	Recipients []string         `json:"recipients,omitempty"`
	Overrides  *ReportOverrides `json:"overrides,omitempty"`
}

func (h *Handler) SendProcessReport(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	var req sendReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProcessID == 0 {
		h.WriteError(w, http.StatusBadRequest, "process_id obrigatório")
		return
	}

	sent, err := h.Service.SendProcessReport(r.Context(), req.ProcessID, req.Recipients, req.Overrides, user.ID)
	if err != nil {
		h.Logger.Error("SendProcessReport: service error", "error", err, "process_id", req.ProcessID)
		switch err {
		case process.ErrProcessNotFound, internal.ErrProcessNotFound:
			h.WriteError(w, http.StatusNotFound, "process not found")
		case internal.ErrMailNotConfigured:
			h.WriteError(w, http.StatusInternalServerError, "no email transport is configured")
		default:
			h.WriteError(w, http.StatusInternalServerError, "Falha ao enviar e-mail")
		}
		return
	}

	if !sent {
		h.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Processo finalizado, mas nenhum e-mail de notificação foi fornecido.",
		})
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Relatório enviado com sucesso!",
	})
}

type sendDocumentRequest struct {
	ProcessID    int64    `json:"process_id"`
	DocumentType string   `json:"document_type"`
	HTMLContent  string   `json:"html_content"`
	Recipients   []string `json:"recipients,omitempty"`
}

func (h *Handler) SendDocument(w http.ResponseWriter, r *http.Request) {
	var req sendDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProcessID == 0 || strings.TrimSpace(req.DocumentType) == "" || strings.TrimSpace(req.HTMLContent) == "" {
		h.WriteError(w, http.StatusBadRequest, "process_id, document_type e html_content são obrigatórios")
		return
	}

	sent, err := h.Service.SendDocument(r.Context(), req.ProcessID, req.DocumentType, req.HTMLContent, req.Recipients)
	if err != nil {
		h.Logger.Error("SendDocument: service error", "error", err, "process_id", req.ProcessID)
		switch err {
		case process.ErrProcessNotFound, internal.ErrProcessNotFound:
			h.WriteError(w, http.StatusNotFound, "process not found")
		case internal.ErrMailNotConfigured:
			h.WriteError(w, http.StatusInternalServerError, "RESEND_API_KEY ausente (ou configure SMTP_*)")
		default:
			h.WriteError(w, http.StatusInternalServerError, "Falha ao enviar documento por email")
		}
		return
	}

	if !sent {
		h.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Documento gerado, mas nenhum destinatário foi fornecido.",
		})
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Documento enviado com sucesso!",
	})
}
