package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dveras/focado/internal/auth"
	"github.com/dveras/focado/internal/model"
	"github.com/dveras/focado/internal/pomodoro"
	"github.com/dveras/focado/internal/websocket"
)

type SessionHandler struct {
	service *pomodoro.Service
	hub     *websocket.Hub
	logger  *slog.Logger
}

func NewSessionHandler(service *pomodoro.Service, hub *websocket.Hub, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{service: service, hub: hub, logger: logger}
}

type startSessionRequest struct {
	ProjectID     *int64 `json:"project_id"`
	WorkDuration  int    `json:"work_duration"`
	BreakDuration int    `json:"break_duration"`
}

func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	sess, err := h.service.Start(auth.UserID(r.Context()), req.ProjectID, req.WorkDuration, req.BreakDuration)
	if err != nil {
		h.logger.Error("start session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("session", "started", sess.ID, nil))
	writeJSON(w, http.StatusCreated, sess)
}

// Complete finishes the session. The `mode` and `total_time` query
// parameters default to "work" and 25 minutes, matching the client timer.
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = model.SessionModeWork
	}
	totalTime := pomodoro.DefaultTotalTime
	if v := r.URL.Query().Get("total_time"); v != "" {
		totalTime, err = strconv.Atoi(v)
		if err != nil || totalTime <= 0 {
			writeError(w, http.StatusBadRequest, "invalid total_time")
			return
		}
	}

	sess, err := h.service.Complete(id, mode, totalTime)
	if err != nil {
		h.respondLifecycleError(w, "complete", id, err)
		return
	}

	extra := map[string]any{}
	if sess.ProjectID != nil {
		extra["project_id"] = *sess.ProjectID
	}
	h.hub.Broadcast(websocket.NewMessage("session", "completed", sess.ID, extra))
	writeJSON(w, http.StatusOK, sess)
}

func (h *SessionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	sess, err := h.service.Pause(id)
	if err != nil {
		h.respondLifecycleError(w, "pause", id, err)
		return
	}

	h.hub.Broadcast(websocket.NewMessage("session", "paused", sess.ID, nil))
	writeJSON(w, http.StatusOK, sess)
}

func (h *SessionHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	sess, err := h.service.Stop(id)
	if err != nil {
		h.respondLifecycleError(w, "stop", id, err)
		return
	}

	h.hub.Broadcast(websocket.NewMessage("session", "stopped", sess.ID, nil))
	writeJSON(w, http.StatusOK, sess)
}

func (h *SessionHandler) respondLifecycleError(w http.ResponseWriter, op string, id int64, err error) {
	if errors.Is(err, pomodoro.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	h.logger.Error("session "+op, "session_id", id, "error", err)
	writeError(w, http.StatusInternalServerError, "failed to "+op+" session")
}
