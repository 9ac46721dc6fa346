// Package pomodoro owns the lifecycle of a work/break session:
// start → running → {completed | paused | interrupted}.
//
// Transitions are deliberately permissive: any operation applies to any
// existing session regardless of its current state, matching the
// single-user client's last-write-wins expectations. The only failure mode
// is a missing session.
package pomodoro

import (
	"errors"
	"log/slog"

	"github.com/dveras/focado/internal/clock"
	"github.com/dveras/focado/internal/model"
	"github.com/dveras/focado/internal/store"
)

// ErrSessionNotFound is returned by lifecycle operations when the session
// id does not resolve to a persisted session.
var ErrSessionNotFound = errors.New("session not found")

const (
	DefaultWorkDuration  = 25 // minutes
	DefaultBreakDuration = 5  // minutes
	DefaultTotalTime     = 25 // minutes
)

type Service struct {
	sessions *store.SessionStore
	clock    clock.Clock
	logger   *slog.Logger
}

func NewService(sessions *store.SessionStore, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{sessions: sessions, clock: clk, logger: logger}
}

// Start creates a running work session for the user, optionally attached
// to a project. Durations of zero or less fall back to the defaults.
func (s *Service) Start(userID int64, projectID *int64, workDuration, breakDuration int) (*model.PomodoroSession, error) {
	if workDuration <= 0 {
		workDuration = DefaultWorkDuration
	}
	if breakDuration <= 0 {
		breakDuration = DefaultBreakDuration
	}

	sess, err := s.sessions.Create(userID, projectID, s.clock.Now(), workDuration, breakDuration)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session started", "session_id", sess.ID, "user_id", userID)
	return sess, nil
}

// Complete marks the session completed, recording totalTime (minutes) as
// seconds on the session and crediting the attached project, if any, with
// one session and totalTime minutes of work.
func (s *Service) Complete(sessionID int64, mode string, totalTime int) (*model.PomodoroSession, error) {
	if mode == "" {
		mode = model.SessionModeWork
	}
	if totalTime <= 0 {
		totalTime = DefaultTotalTime
	}

	if err := s.exists(sessionID); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Complete(sessionID, mode, totalTime, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("session completed", "session_id", sessionID, "mode", mode, "total_time_minutes", totalTime)
	return sess, nil
}

// Pause sets the session status to paused and nothing else. There is no
// resume operation; the client starts a fresh session instead.
func (s *Service) Pause(sessionID int64) (*model.PomodoroSession, error) {
	if err := s.exists(sessionID); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Pause(sessionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session paused", "session_id", sessionID)
	return sess, nil
}

// Stop interrupts the session. Interrupted sessions never count toward
// project totals.
func (s *Service) Stop(sessionID int64) (*model.PomodoroSession, error) {
	if err := s.exists(sessionID); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Interrupt(sessionID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("session interrupted", "session_id", sessionID)
	return sess, nil
}

func (s *Service) exists(sessionID int64) error {
	sess, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrSessionNotFound
	}
	return nil
}
