package model

import "time"

const (
	SessionStatusRunning     = "running"
	SessionStatusPaused      = "paused"
	SessionStatusCompleted   = "completed"
	SessionStatusInterrupted = "interrupted"
)

const (
	SessionModeWork  = "work"
	SessionModeBreak = "break"
)

// PomodoroSession is one recorded work/break interval. WorkDuration and
// BreakDuration are the configured interval lengths in minutes;
// TotalWorkTime and TotalBreakTime are accumulated seconds, non-zero only
// after completion. EndTime is set exactly when the session reaches a
// terminal status (completed or interrupted).
type PomodoroSession struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ProjectID      *int64     `json:"project_id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	WorkDuration   int        `json:"work_duration"`
	BreakDuration  int        `json:"break_duration"`
	Status         string     `json:"status"`
	Mode           string     `json:"mode"`
	TotalWorkTime  int        `json:"total_work_time"`
	TotalBreakTime int        `json:"total_break_time"`
	IsCompleted    bool       `json:"is_completed"`
}
