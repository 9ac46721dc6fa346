// Package stats computes per-user productivity summaries over persisted
// Pomodoro sessions: lifetime totals, the top project by accumulated work
// time, and daily/weekly/monthly buckets.
package stats

import (
	"sort"

	"github.com/dveras/focado/internal/model"
	"github.com/dveras/focado/internal/store"
)

const (
	dailyBucketLimit   = 30
	weeklyBucketLimit  = 12
	monthlyBucketLimit = 12
)

type Service struct {
	sessions *store.SessionStore
	projects *store.ProjectStore
}

func NewService(sessions *store.SessionStore, projects *store.ProjectStore) *Service {
	return &Service{sessions: sessions, projects: projects}
}

// CalculateProductivity builds the full statistics summary for one user.
// A user with no sessions gets zero totals, a nil top project, and empty
// bucket lists.
func (s *Service) CalculateProductivity(userID int64) (*model.StatisticsSummary, error) {
	sessions, err := s.sessions.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &model.StatisticsSummary{
		DailyProductivity:   []model.DailyProductivity{},
		WeeklyProductivity:  []model.WeeklyProductivity{},
		MonthlyProductivity: []model.MonthlyProductivity{},
	}

	for _, sess := range sessions {
		summary.TotalWorkTime += sess.TotalWorkTime
	}
	summary.TotalPomodoroSessions = len(sessions)

	top, err := s.mostProductiveProject(sessions)
	if err != nil {
		return nil, err
	}
	summary.MostProductiveProject = top

	summary.DailyProductivity = dailyBuckets(sessions)
	summary.WeeklyProductivity = weeklyBuckets(sessions)
	summary.MonthlyProductivity = monthlyBuckets(sessions)

	return summary, nil
}

// mostProductiveProject picks the project with the highest summed session
// work time. Ties keep the project whose session appeared first in the
// user's history.
func (s *Service) mostProductiveProject(sessions []model.PomodoroSession) (*model.ProjectProductivity, error) {
	totals := make(map[int64]int)
	var order []int64

	for _, sess := range sessions {
		if sess.ProjectID == nil {
			continue
		}
		id := *sess.ProjectID
		if _, seen := totals[id]; !seen {
			order = append(order, id)
		}
		totals[id] += sess.TotalWorkTime
	}

	if len(order) == 0 {
		return nil, nil
	}

	bestID := order[0]
	for _, id := range order[1:] {
		if totals[id] > totals[bestID] {
			bestID = id
		}
	}

	project, err := s.projects.GetByID(bestID)
	if err != nil {
		return nil, err
	}

	top := &model.ProjectProductivity{ID: bestID, TotalTime: totals[bestID]}
	if project != nil {
		top.Title = project.Title
	}
	return top, nil
}

func dailyBuckets(sessions []model.PomodoroSession) []model.DailyProductivity {
	totals := make(map[string]*model.DailyProductivity)
	for _, sess := range sessions {
		date := sess.StartTime.UTC().Format("2006-01-02")
		b, ok := totals[date]
		if !ok {
			b = &model.DailyProductivity{Date: date}
			totals[date] = b
		}
		b.TotalTime += sess.TotalWorkTime
		b.TotalSessions++
	}

	buckets := make([]model.DailyProductivity, 0, len(totals))
	for _, b := range totals {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})

	// Keep the most recent buckets, still in ascending order.
	if len(buckets) > dailyBucketLimit {
		buckets = buckets[len(buckets)-dailyBucketLimit:]
	}
	return buckets
}

func weeklyBuckets(sessions []model.PomodoroSession) []model.WeeklyProductivity {
	type key struct{ year, week int }

	totals := make(map[key]*model.WeeklyProductivity)
	for _, sess := range sessions {
		year, week := sess.StartTime.UTC().ISOWeek()
		k := key{year, week}
		b, ok := totals[k]
		if !ok {
			b = &model.WeeklyProductivity{Year: year, Week: week}
			totals[k] = b
		}
		b.TotalTime += sess.TotalWorkTime
		b.TotalSessions++
	}

	buckets := make([]model.WeeklyProductivity, 0, len(totals))
	for _, b := range totals {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Week < buckets[j].Week
	})

	if len(buckets) > weeklyBucketLimit {
		buckets = buckets[len(buckets)-weeklyBucketLimit:]
	}
	return buckets
}

func monthlyBuckets(sessions []model.PomodoroSession) []model.MonthlyProductivity {
	type key struct{ year, month int }

	totals := make(map[key]*model.MonthlyProductivity)
	for _, sess := range sessions {
		t := sess.StartTime.UTC()
		k := key{t.Year(), int(t.Month())}
		b, ok := totals[k]
		if !ok {
			b = &model.MonthlyProductivity{Year: k.year, Month: k.month}
			totals[k] = b
		}
		b.TotalTime += sess.TotalWorkTime
		b.TotalSessions++
	}

	buckets := make([]model.MonthlyProductivity, 0, len(totals))
	for _, b := range totals {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})

	if len(buckets) > monthlyBucketLimit {
		buckets = buckets[len(buckets)-monthlyBucketLimit:]
	}
	return buckets
}
