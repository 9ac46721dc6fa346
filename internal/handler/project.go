package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dveras/focado/internal/auth"
	"github.com/dveras/focado/internal/model"
	"github.com/dveras/focado/internal/store"
	"github.com/dveras/focado/internal/websocket"
)

type ProjectHandler struct {
	projects *store.ProjectStore
	hub      *websocket.Hub
	logger   *slog.Logger
}

func NewProjectHandler(projects *store.ProjectStore, hub *websocket.Hub, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, hub: hub, logger: logger}
}

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func validProjectStatus(s string) bool {
	switch s {
	case model.ProjectStatusActive, model.ProjectStatusCompleted, model.ProjectStatusPaused:
		return true
	}
	return false
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status == "" {
		req.Status = model.ProjectStatusActive
	}
	if !validProjectStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	project, err := h.projects.Create(auth.UserID(r.Context()), req.Title, req.Description, req.Status)
	if err != nil {
		h.logger.Error("create project", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("project", "created", project.ID, nil))
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, ok := h.ownedProject(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status == "" {
		req.Status = existing.Status
	}
	if !validProjectStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	project, err := h.projects.Update(existing.ID, req.Title, req.Description, req.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update project")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("project", "updated", project.ID, nil))
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.ownedProject(w, r)
	if !ok {
		return
	}

	if err := h.projects.Delete(existing.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	h.hub.Broadcast(websocket.NewMessage("project", "deleted", existing.ID, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) ownedProject(w http.ResponseWriter, r *http.Request) (*model.Project, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}

	project, err := h.projects.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get project")
		return nil, false
	}
	if project == nil || project.UserID != auth.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "project not found")
		return nil, false
	}
	return project, true
}
