package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dveras/focado/internal/achievement"
	"github.com/dveras/focado/internal/clock"
	"github.com/dveras/focado/internal/handler"
	"github.com/dveras/focado/internal/middleware"
	"github.com/dveras/focado/internal/pomodoro"
	"github.com/dveras/focado/internal/stats"
	"github.com/dveras/focado/internal/store"
	ws "github.com/dveras/focado/internal/websocket"
)

type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	userStore    *store.UserStore
	userH        *handler.UserHandler
	taskH        *handler.TaskHandler
	eventH       *handler.EventHandler
	projectH     *handler.ProjectHandler
	sessionH     *handler.SessionHandler
	statsH       *handler.StatsHandler
	achievementH *handler.AchievementHandler
	logger       *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	clk := clock.System{}

	userStore := store.NewUserStore(db)
	taskStore := store.NewTaskStore(db)
	eventStore := store.NewEventStore(db)
	projectStore := store.NewProjectStore(db)
	sessionStore := store.NewSessionStore(db)
	achievementStore := store.NewAchievementStore(db)

	pomodoroSvc := pomodoro.NewService(sessionStore, clk, logger.With("component", "pomodoro"))
	statsSvc := stats.NewService(sessionStore, projectStore)
	achievementSvc := achievement.NewService(userStore, sessionStore, achievementStore, clk, logger.With("component", "achievement"))

	return &Server{
		db:           db,
		hub:          hub,
		userStore:    userStore,
		userH:        handler.NewUserHandler(userStore, logger.With("component", "user")),
		taskH:        handler.NewTaskHandler(taskStore, hub, logger.With("component", "task")),
		eventH:       handler.NewEventHandler(eventStore, hub, logger.With("component", "event")),
		projectH:     handler.NewProjectHandler(projectStore, hub, logger.With("component", "project")),
		sessionH:     handler.NewSessionHandler(pomodoroSvc, hub, logger.With("component", "session")),
		statsH:       handler.NewStatsHandler(statsSvc, logger.With("component", "stats")),
		achievementH: handler.NewAchievementHandler(achievementSvc, hub, logger.With("component", "achievement")),
		logger:       logger,
	}
}

// Hub returns the WebSocket hub for broadcasting outside the request path.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (auth service handles credentials; registration only
	// provisions the record)
	outerMux.HandleFunc("POST /register", s.userH.Create)
	outerMux.HandleFunc("GET /health", s.healthHandler)
	outerMux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))

	// Everything under /api/ requires a resolved user.
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireUser(s.userStore)
	outerMux.Handle("/api/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Users
	mux.HandleFunc("GET /api/users/{id}", s.userH.Get)
	mux.HandleFunc("PUT /api/users/{id}", s.userH.Update)
	mux.HandleFunc("DELETE /api/users/{id}", s.userH.Delete)

	// Tasks
	mux.HandleFunc("POST /api/tasks", s.taskH.Create)
	mux.HandleFunc("GET /api/tasks", s.taskH.List)
	mux.HandleFunc("GET /api/tasks/{id}", s.taskH.Get)
	mux.HandleFunc("PUT /api/tasks/{id}", s.taskH.Update)
	mux.HandleFunc("PATCH /api/tasks/{id}/complete", s.taskH.Complete)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.taskH.Delete)

	// Calendar events
	mux.HandleFunc("POST /api/events", s.eventH.Create)
	mux.HandleFunc("GET /api/events", s.eventH.List)
	mux.HandleFunc("GET /api/events/{id}", s.eventH.Get)
	mux.HandleFunc("PUT /api/events/{id}", s.eventH.Update)
	mux.HandleFunc("DELETE /api/events/{id}", s.eventH.Delete)

	// Projects
	mux.HandleFunc("POST /api/projects", s.projectH.Create)
	mux.HandleFunc("GET /api/projects", s.projectH.List)
	mux.HandleFunc("GET /api/projects/{id}", s.projectH.Get)
	mux.HandleFunc("PUT /api/projects/{id}", s.projectH.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", s.projectH.Delete)

	// Pomodoro session lifecycle
	mux.HandleFunc("POST /api/pomodoro/sessions", s.sessionH.Start)
	mux.HandleFunc("PATCH /api/pomodoro/sessions/{id}/complete", s.sessionH.Complete)
	mux.HandleFunc("PATCH /api/pomodoro/sessions/{id}/pause", s.sessionH.Pause)
	mux.HandleFunc("PATCH /api/pomodoro/sessions/{id}/stop", s.sessionH.Stop)

	// Statistics and achievements
	mux.HandleFunc("GET /api/statistics", s.statsH.Get)
	mux.HandleFunc("POST /api/achievements/check", s.achievementH.Check)
	mux.HandleFunc("GET /api/achievements", s.achievementH.List)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
