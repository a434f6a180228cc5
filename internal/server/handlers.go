package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/coradesk/corabot/internal/dialog"
	"github.com/coradesk/corabot/internal/session"
)

type createSessionResponse struct {
	SessionID        string   `json:"session_id"`
	Message          string   `json:"message"`
	SuggestedReplies []string `json:"suggested_replies"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type turnResponse struct {
	Message          string   `json:"message"`
	Context          string   `json:"context,omitempty"`
	SuggestedReplies []string `json:"suggested_replies"`
}

type resetResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, greeting, err := s.sessions.Create()
	if err != nil {
		s.log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID:        id,
		Message:          greeting.Message,
		SuggestedReplies: greeting.SuggestedReplies,
	})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	var res dialog.Result
	err := s.sessions.WithSession(id, func(eng *dialog.Engine) error {
		res = eng.ProcessInput(req.Message)
		return nil
	})
	if err != nil {
		s.respondSessionError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, turnResponse{
		Message:          res.Message,
		Context:          string(res.Context),
		SuggestedReplies: res.SuggestedReplies,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var history []dialog.Turn
	err := s.sessions.WithSession(id, func(eng *dialog.Engine) error {
		history = eng.History()
		return nil
	})
	if err != nil {
		s.respondSessionError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var msg string
	err := s.sessions.WithSession(id, func(eng *dialog.Engine) error {
		msg = eng.ResetContext()
		return nil
	})
	if err != nil {
		s.respondSessionError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, resetResponse{Message: msg})
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if err := s.sessions.End(id); err != nil {
		s.respondSessionError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) respondSessionError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	s.log.Error().Err(err).Str("session_id", id).Msg("session error")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
