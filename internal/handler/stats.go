package handler

import (
	"log/slog"
	"net/http"

	"github.com/dveras/focado/internal/auth"
	"github.com/dveras/focado/internal/stats"
)

type StatsHandler struct {
	service *stats.Service
	logger  *slog.Logger
}

func NewStatsHandler(service *stats.Service, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: logger}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.CalculateProductivity(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("calculate productivity", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to calculate statistics")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
