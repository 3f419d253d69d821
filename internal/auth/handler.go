package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/disciplinary-management/internal/transport"
	"github.com/frahmantamala/disciplinary-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	tokens, err := h.Service.Authenticate(r.Context(), dto, clientIP(r), r.UserAgent())
	if err != nil {
		h.Logger.Error("authentication failed", "error", err)

		switch err {
		case ErrInvalidCredentials:
			h.WriteError(w, http.StatusUnauthorized, "credenciais inválidas")
		case ErrUserInactive:
			h.WriteError(w, http.StatusUnauthorized, "usuário inativo")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "erro interno do servidor")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(r.Context(), dto.RefreshToken)
	if err != nil {
		h.Logger.Error("token refresh failed", "error", err)

		switch err {
		case ErrInvalidToken, ErrTokenExpired:
			h.WriteError(w, http.StatusUnauthorized, "refresh token inválido")
		case ErrUserInactive:
			h.WriteError(w, http.StatusUnauthorized, "usuário inativo")
		default:
			h.WriteError(w, http.StatusInternalServerError, "erro interno do servidor")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "token de autorização ausente")
		return
	}

	if _, err := h.Service.ValidateAccessToken(token); err != nil {
		h.WriteError(w, http.StatusUnauthorized, "token inválido")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated user with the effective permission set, which
// is what the frontend uses to decide which screens to render.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "usuário não autenticado")
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "token de autorização ausente")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "token inválido")
			return
		}

		uid, err := strconv.ParseInt(claims.UserID, 10, 64)
		if err != nil {
			h.Logger.Warn("failed to parse user id from token claims", "value", claims.UserID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "token inválido")
			return
		}

		coreUser, err := h.Service.GetUserWithPermissions(r.Context(), uid)
		if err != nil {
			h.Logger.Error("failed to load user permissions", "user_id", uid, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "usuário não encontrado")
			return
		}
		if !coreUser.IsActive {
			h.WriteError(w, http.StatusUnauthorized, "usuário inativo")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), coreUser)))
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}
