package model

import "time"

// Achievement is a persisted evaluation record for one rule. A row is
// written on every evaluator run; AchievedAt is set only when the row is
// unlocked. Threshold fields of zero mean "not a criterion".
type Achievement struct {
	ID                    int64      `json:"id"`
	UserID                int64      `json:"user_id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	AchievementType       string     `json:"achievement_type"`
	TotalSessionsRequired int        `json:"total_sessions_required"`
	TotalWorkTimeRequired int        `json:"total_work_time_required"`
	AchievedAt            *time.Time `json:"achieved_at"`
	IsUnlocked            bool       `json:"is_unlocked"`
}
