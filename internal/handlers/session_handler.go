package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"github.com/tasteplaces/tasteplaces/internal/session"
	"go.uber.org/zap"
)

// maxActionBytes caps the size of an action body
const maxActionBytes = 4 << 10

// SessionHandler exposes browsing sessions: the client sends actions, the server
// answers with the recomputed view.
type SessionHandler struct {
	sessions *service.SessionService
	log      *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log,
	}
}

// CreateSession handles POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Create(r.Context())
	if err != nil {
		h.writeSessionError(w, "", err)
		return
	}

	h.log.Info("session created", zap.String("session_id", view.SessionID))
	WriteJSON(w, http.StatusCreated, view, h.log)
}

// GetSession handles GET /api/session/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")

	view, err := h.sessions.View(r.Context(), id)
	if err != nil {
		h.writeSessionError(w, id, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// Dispatch handles POST /api/session/{sessionId}/action
func (h *SessionHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")

	r.Body = http.MaxBytesReader(w, r.Body, maxActionBytes)

	var cmd session.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.log.Warn("failed to decode action", zap.String("session_id", id), zap.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large", h.log)
			return
		}
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	action, err := cmd.Action()
	if err != nil {
		h.log.Warn("rejected action", zap.String("session_id", id), zap.String("type", cmd.Type), zap.Error(err))
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	view, err := h.sessions.Dispatch(r.Context(), id, action)
	if err != nil {
		h.writeSessionError(w, id, err)
		return
	}

	h.log.Debug("action applied",
		zap.String("session_id", id),
		zap.String("type", cmd.Type),
		zap.Int("count", view.Count),
	)
	WriteJSON(w, http.StatusOK, view, h.log)
}

// DeleteSession handles DELETE /api/session/{sessionId}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")

	if err := h.sessions.Delete(r.Context(), id); err != nil {
		h.writeSessionError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.log.Info("session not found", zap.String("session_id", id))
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
		return
	case errors.Is(err, session.ErrTooManySessions):
		h.log.Warn("session limit reached")
		WriteError(w, http.StatusTooManyRequests, "Too many sessions", h.log)
		return
	}

	h.log.Error("session operation failed", zap.String("session_id", id), zap.Error(err))
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
}
