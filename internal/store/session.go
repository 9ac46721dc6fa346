package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dveras/focado/internal/model"
)

type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func scanSession(scanner interface{ Scan(...any) error }) (*model.PomodoroSession, error) {
	var s model.PomodoroSession
	var projectID sql.NullInt64
	var endTime sql.NullTime
	var completed int

	err := scanner.Scan(
		&s.ID, &s.UserID, &projectID, &s.StartTime, &endTime,
		&s.WorkDuration, &s.BreakDuration, &s.Status, &s.Mode,
		&s.TotalWorkTime, &s.TotalBreakTime, &completed,
	)
	if err != nil {
		return nil, err
	}

	if projectID.Valid {
		s.ProjectID = &projectID.Int64
	}
	if endTime.Valid {
		s.EndTime = &endTime.Time
	}
	s.IsCompleted = completed != 0
	return &s, nil
}

const sessionCols = `id, user_id, project_id, start_time, end_time, work_duration, break_duration, status, mode, total_work_time, total_break_time, is_completed`

func (s *SessionStore) Create(userID int64, projectID *int64, startTime time.Time, workDuration, breakDuration int) (*model.PomodoroSession, error) {
	var pID sql.NullInt64
	if projectID != nil {
		pID = sql.NullInt64{Int64: *projectID, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO pomodoro_sessions (user_id, project_id, start_time, work_duration, break_duration, status, mode) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, pID, startTime.UTC(), workDuration, breakDuration,
		model.SessionStatusRunning, model.SessionModeWork,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *SessionStore) GetByID(id int64) (*model.PomodoroSession, error) {
	row := s.db.QueryRow(`SELECT `+sessionCols+` FROM pomodoro_sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) ListByUser(userID int64) ([]model.PomodoroSession, error) {
	rows, err := s.db.Query(
		`SELECT `+sessionCols+` FROM pomodoro_sessions WHERE user_id = ? ORDER BY start_time ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.PomodoroSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

func (s *SessionStore) ListByProject(projectID int64) ([]model.PomodoroSession, error) {
	rows, err := s.db.Query(
		`SELECT `+sessionCols+` FROM pomodoro_sessions WHERE project_id = ? ORDER BY start_time ASC, id ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions by project: %w", err)
	}
	defer rows.Close()

	var sessions []model.PomodoroSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// CountAndWorkTimeByUser returns the session count and the summed
// total_work_time (seconds) for one user in a single query.
func (s *SessionStore) CountAndWorkTimeByUser(userID int64) (int, int, error) {
	var count, workTime int
	err := s.db.QueryRow(
		`SELECT COUNT(id), COALESCE(SUM(total_work_time), 0) FROM pomodoro_sessions WHERE user_id = ?`,
		userID,
	).Scan(&count, &workTime)
	if err != nil {
		return 0, 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, workTime, nil
}

// Complete marks the session completed and, when a project is attached,
// bumps that project's running totals in the same transaction. Session
// work time is stored in seconds; the project totals stay in minutes.
func (s *SessionStore) Complete(id int64, mode string, totalTimeMinutes int, endTime time.Time) (*model.PomodoroSession, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE pomodoro_sessions SET end_time = ?, status = ?, mode = ?, total_work_time = ?, is_completed = 1 WHERE id = ?`,
		endTime.UTC(), model.SessionStatusCompleted, mode, totalTimeMinutes*60, id,
	)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	var projectID sql.NullInt64
	err = tx.QueryRow(`SELECT project_id FROM pomodoro_sessions WHERE id = ?`, id).Scan(&projectID)
	if err != nil {
		return nil, fmt.Errorf("get session project: %w", err)
	}

	if projectID.Valid {
		_, err = tx.Exec(
			`UPDATE projects SET total_pomodoro_sessions = total_pomodoro_sessions + 1, total_work_time = total_work_time + ? WHERE id = ?`,
			totalTimeMinutes, projectID.Int64,
		)
		if err != nil {
			return nil, fmt.Errorf("update project totals: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return s.GetByID(id)
}

// Pause sets the session status to paused. Every other field, end_time
// included, is left untouched.
func (s *SessionStore) Pause(id int64) (*model.PomodoroSession, error) {
	_, err := s.db.Exec(
		`UPDATE pomodoro_sessions SET status = ? WHERE id = ?`,
		model.SessionStatusPaused, id,
	)
	if err != nil {
		return nil, fmt.Errorf("pause session: %w", err)
	}
	return s.GetByID(id)
}

// Interrupt marks the session interrupted. Project totals are never
// touched for interrupted sessions.
func (s *SessionStore) Interrupt(id int64, endTime time.Time) (*model.PomodoroSession, error) {
	_, err := s.db.Exec(
		`UPDATE pomodoro_sessions SET end_time = ?, status = ?, is_completed = 0 WHERE id = ?`,
		endTime.UTC(), model.SessionStatusInterrupted, id,
	)
	if err != nil {
		return nil, fmt.Errorf("interrupt session: %w", err)
	}
	return s.GetByID(id)
}
