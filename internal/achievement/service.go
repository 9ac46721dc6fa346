// Package achievement evaluates a fixed rule table against a user's
// lifetime session totals and persists the outcome of every evaluation.
package achievement

import (
	"log/slog"
	"time"

	"github.com/dveras/focado/internal/clock"
	"github.com/dveras/focado/internal/model"
	"github.com/dveras/focado/internal/store"
)

type Service struct {
	users        *store.UserStore
	sessions     *store.SessionStore
	achievements *store.AchievementStore
	clock        clock.Clock
	logger       *slog.Logger
}

func NewService(users *store.UserStore, sessions *store.SessionStore, achievements *store.AchievementStore, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		users:        users,
		sessions:     sessions,
		achievements: achievements,
		clock:        clk,
		logger:       logger,
	}
}

// Check evaluates every rule against the user's current totals, persists
// one achievement row per rule, and returns only the rows that unlocked.
// An unknown user is a no-op, not an error.
//
// Two oddities are intentional and match the observed client behavior:
// rows are written on every call with no dedupe against earlier unlocks,
// and the "Focus Time" comparison pits the seconds-denominated session sum
// against a minutes-denominated threshold, so it unlocks far earlier than
// its description suggests.
func (s *Service) Check(userID int64) ([]model.Achievement, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []model.Achievement{}, nil
	}

	totalSessions, totalWorkTime, err := s.sessions.CountAndWorkTimeByUser(userID)
	if err != nil {
		return nil, err
	}

	unlocked := []model.Achievement{}
	for _, rule := range rules {
		met := (rule.TotalSessionsRequired > 0 && totalSessions >= rule.TotalSessionsRequired) ||
			(rule.TotalWorkTimeRequired > 0 && totalWorkTime >= rule.TotalWorkTimeRequired)

		var achievedAt *time.Time
		if met {
			now := s.clock.Now()
			achievedAt = &now
		}

		row, err := s.achievements.Create(
			userID, rule.Title, rule.Description, rule.Type,
			rule.TotalSessionsRequired, rule.TotalWorkTimeRequired,
			achievedAt, met,
		)
		if err != nil {
			return nil, err
		}

		if met {
			s.logger.Info("achievement unlocked", "user_id", userID, "title", rule.Title)
			unlocked = append(unlocked, *row)
		}
	}

	return unlocked, nil
}

// ListUnlocked returns the user's unlocked achievement rows.
func (s *Service) ListUnlocked(userID int64) ([]model.Achievement, error) {
	achievements, err := s.achievements.ListUnlockedByUser(userID)
	if err != nil {
		return nil, err
	}
	if achievements == nil {
		achievements = []model.Achievement{}
	}
	return achievements, nil
}
