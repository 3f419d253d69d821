package user

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
	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type ServiceAPI interface {
	GetByID(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*User, error)
	CreateUser(ctx context.Context, createdBy int64, dto *CreateUserDTO) (*User, error)
	UpdateUser(ctx context.Context, updatedBy, userID int64, dto *UpdateUserDTO) (*User, error)
	GetEffectivePermissions(ctx context.Context, userID int64) ([]string, error)
	ListProfilePermissions(ctx context.Context) ([]*ProfilePermission, error)
	AddProfilePermission(ctx context.Context, addedBy int64, dto *ProfilePermissionDTO) error
	RemoveProfilePermission(ctx context.Context, removedBy int64, profile, permissionName string) error
	SetPermissionOverride(ctx context.Context, grantedBy, userID int64, dto *PermissionOverrideDTO) error
	ClearPermissionOverride(ctx context.Context, clearedBy, userID int64, permissionName string) error
	ListPermissionOverrides(ctx context.Context, userID int64) ([]*PermissionOverride, error)
	ListPermissions(ctx context.Context) ([]*Permission, error)
	ListActivities(ctx context.Context, userID int64, limit, offset int) ([]*Activity, error)
	ListLogins(ctx context.Context, userID int64, limit, offset int) ([]*LoginEvent, error)
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

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := paging(r)

	users, err := h.Service.ListUsers(r.Context(), limit, offset)
	if err != nil {
		h.Logger.Error("list users failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao listar usuários")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}

	u, err := h.Service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "usuário não encontrado")
			return
		}
		h.Logger.Error("get user failed", "user_id", userID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao buscar usuário")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	u, err := h.Service.CreateUser(r.Context(), actor.ID, &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			h.WriteError(w, http.StatusConflict, "e-mail já cadastrado")
		default:
			h.writeServiceError(w, err, "erro interno ao criar usuário")
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	u, err := h.Service.UpdateUser(r.Context(), actor.ID, userID, &dto)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "usuário não encontrado")
			return
		}
		h.writeServiceError(w, err, "erro interno ao atualizar usuário")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) SetPermission(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}

	var dto PermissionOverrideDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if err := h.Service.SetPermissionOverride(r.Context(), actor.ID, userID, &dto); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "usuário não encontrado")
			return
		}
		h.writeServiceError(w, err, "erro interno ao definir permissão")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "permissão atualizada"})
}

func (h *Handler) ClearPermission(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}

	permission := chi.URLParam(r, "permission")
	if permission == "" {
		h.WriteError(w, http.StatusBadRequest, "permissão obrigatória")
		return
	}

	if err := h.Service.ClearPermissionOverride(r.Context(), actor.ID, userID, permission); err != nil {
		h.writeServiceError(w, err, "erro interno ao remover permissão")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "permissão removida"})
}

func (h *Handler) GetUserPermissions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}

	perms, err := h.Service.GetEffectivePermissions(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "usuário não encontrado")
			return
		}
		h.Logger.Error("get user permissions failed", "user_id", userID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao buscar permissões")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"permissions": perms})
}

func (h *Handler) ListProfilePermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Service.ListProfilePermissions(r.Context())
	if err != nil {
		h.Logger.Error("list profile permissions failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao listar permissões de perfil")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"profile_permissions": perms})
}

func (h *Handler) AddProfilePermission(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	var dto ProfilePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if err := h.Service.AddProfilePermission(r.Context(), actor.ID, &dto); err != nil {
		h.writeServiceError(w, err, "erro interno ao adicionar permissão de perfil")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "permissão de perfil adicionada"})
}

func (h *Handler) RemoveProfilePermission(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	profile := chi.URLParam(r, "profile")
	permission := chi.URLParam(r, "permission")
	if profile == "" || permission == "" {
		h.WriteError(w, http.StatusBadRequest, "perfil e permissão obrigatórios")
		return
	}

	if err := h.Service.RemoveProfilePermission(r.Context(), actor.ID, profile, permission); err != nil {
		h.writeServiceError(w, err, "erro interno ao remover permissão de perfil")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "permissão de perfil removida"})
}

func (h *Handler) ListOverrides(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}

	overrides, err := h.Service.ListPermissionOverrides(r.Context(), userID)
	if err != nil {
		h.Logger.Error("list overrides failed", "user_id", userID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao listar permissões")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"overrides": overrides})
}

func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Service.ListPermissions(r.Context())
	if err != nil {
		h.Logger.Error("list permissions failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao listar permissões")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"permissions": perms})
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}
	limit, offset := paging(r)

	activities, err := h.Service.ListActivities(r.Context(), userID, limit, offset)
	if err != nil {
		h.Logger.Error("list activities failed", "user_id", userID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao listar atividades")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}

func (h *Handler) ListLogins(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "id inválido")
		return
	}
	limit, offset := paging(r)

	logins, err := h.Service.ListLogins(r.Context(), userID, limit, offset)
	if err != nil {
		h.Logger.Error("list logins failed", "user_id", userID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "erro interno ao listar acessos")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"logins": logins})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
		return
	}
	h.Logger.Error("user handler error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, fallback)
}

func paging(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}
