package model

import "time"

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusPaused    = "paused"
)

// Project groups Pomodoro sessions and carries running totals. The totals
// are incremented once per completed session and never decremented.
// TotalWorkTime is denominated in minutes, unlike the per-session
// total_work_time which is seconds.
type Project struct {
	ID                    int64      `json:"id"`
	UserID                int64      `json:"user_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Status                string     `json:"status"`
	TotalPomodoroSessions int        `json:"total_pomodoro_sessions"`
	TotalWorkTime         int        `json:"total_work_time"`
	StartDate             time.Time  `json:"start_date"`
	EndDate               *time.Time `json:"end_date"`
}
