package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	manager *Manager
	tokens  *TokenIssuer
	logger  *slog.Logger
}

func NewHandler(manager *Manager, tokens *TokenIssuer, logger *slog.Logger) *Handler {
	return &Handler{manager: manager, tokens: tokens, logger: logger}
}

// Start begins a fresh session and returns its token
func (h *Handler) Start(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.manager.Create()

	token, err := h.tokens.Issue(s.ID)
	if err != nil {
		_ = h.manager.End(s.ID)
		h.logger.Error("issue session token", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(token)
}

// End discards the caller's session
func (h *Handler) End(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.manager.End(sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Refresh issues a new token for a live session. Tokens expire a fixed TTL
// after issue, so long-lived clients call this before theirs runs out.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := h.manager.Get(sessionID); err != nil {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Issue(sessionID)
	if err != nil {
		h.logger.Error("refresh session token", "session_id", sessionID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(token)
}

func (h *Handler) Routes(router *httprouter.Router) {
	router.POST("/session", h.Start)
	router.POST("/session/refresh", h.Refresh)
	router.DELETE("/session", h.End)
}
