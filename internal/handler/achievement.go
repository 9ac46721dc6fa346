package handler

import (
	"log/slog"
	"net/http"

	"github.com/dveras/focado/internal/achievement"
	"github.com/dveras/focado/internal/auth"
	"github.com/dveras/focado/internal/websocket"
)

type AchievementHandler struct {
	service *achievement.Service
	hub     *websocket.Hub
	logger  *slog.Logger
}

func NewAchievementHandler(service *achievement.Service, hub *websocket.Hub, logger *slog.Logger) *AchievementHandler {
	return &AchievementHandler{service: service, hub: hub, logger: logger}
}

// Check runs the rule table against the user's current totals and returns
// the achievements that unlocked on this evaluation.
func (h *AchievementHandler) Check(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.service.Check(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("check achievements", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to check achievements")
		return
	}

	for _, a := range unlocked {
		h.hub.Broadcast(websocket.NewMessage("achievement", "unlocked", a.ID, map[string]any{"title": a.Title}))
	}
	writeJSON(w, http.StatusOK, unlocked)
}

// List returns the user's unlocked achievements.
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.service.ListUnlocked(auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list achievements")
		return
	}
	writeJSON(w, http.StatusOK, achievements)
}
