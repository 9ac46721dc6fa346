package model

// ProjectProductivity names the project that accumulated the most work time.
type ProjectProductivity struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	TotalTime int    `json:"total_time"`
}

// DailyProductivity is the per-calendar-date session rollup. Date is
// formatted YYYY-MM-DD; TotalTime is seconds.
type DailyProductivity struct {
	Date          string `json:"date"`
	TotalTime     int    `json:"total_time"`
	TotalSessions int    `json:"total_sessions"`
}

// WeeklyProductivity is the per-ISO-week session rollup.
type WeeklyProductivity struct {
	Year          int `json:"year"`
	Week          int `json:"week"`
	TotalTime     int `json:"total_time"`
	TotalSessions int `json:"total_sessions"`
}

// MonthlyProductivity is the per-calendar-month session rollup.
type MonthlyProductivity struct {
	Year          int `json:"year"`
	Month         int `json:"month"`
	TotalTime     int `json:"total_time"`
	TotalSessions int `json:"total_sessions"`
}

// StatisticsSummary is the full productivity report for one user. Totals
// are zero (never null) for users without sessions; MostProductiveProject
// is nil when the user has no project-linked sessions.
type StatisticsSummary struct {
	TotalWorkTime         int                   `json:"total_work_time"`
	TotalPomodoroSessions int                   `json:"total_pomodoro_sessions"`
	MostProductiveProject *ProjectProductivity  `json:"most_productive_project"`
	DailyProductivity     []DailyProductivity   `json:"daily_productivity"`
	WeeklyProductivity    []WeeklyProductivity  `json:"weekly_productivity"`
	MonthlyProductivity   []MonthlyProductivity `json:"monthly_productivity"`
}
