package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dveras/focado/internal/model"
)

type AchievementStore struct {
	db *sql.DB
}

func NewAchievementStore(db *sql.DB) *AchievementStore {
	return &AchievementStore{db: db}
}

func scanAchievement(scanner interface{ Scan(...any) error }) (*model.Achievement, error) {
	var a model.Achievement
	var achievedAt sql.NullTime
	var unlocked int

	err := scanner.Scan(
		&a.ID, &a.UserID, &a.Title, &a.Description, &a.AchievementType,
		&a.TotalSessionsRequired, &a.TotalWorkTimeRequired, &achievedAt, &unlocked,
	)
	if err != nil {
		return nil, err
	}

	if achievedAt.Valid {
		a.AchievedAt = &achievedAt.Time
	}
	a.IsUnlocked = unlocked != 0
	return &a, nil
}

const achievementCols = `id, user_id, title, description, achievement_type, total_sessions_required, total_work_time_required, achieved_at, is_unlocked`

// Create persists one evaluation record. achievedAt is nil for rows that
// did not unlock.
func (s *AchievementStore) Create(userID int64, title, description, achievementType string, sessionsRequired, workTimeRequired int, achievedAt *time.Time, unlocked bool) (*model.Achievement, error) {
	var at sql.NullTime
	if achievedAt != nil {
		at = sql.NullTime{Time: achievedAt.UTC(), Valid: true}
	}
	var u int
	if unlocked {
		u = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO achievements (user_id, title, description, achievement_type, total_sessions_required, total_work_time_required, achieved_at, is_unlocked) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, title, description, achievementType, sessionsRequired, workTimeRequired, at, u,
	)
	if err != nil {
		return nil, fmt.Errorf("insert achievement: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *AchievementStore) GetByID(id int64) (*model.Achievement, error) {
	row := s.db.QueryRow(`SELECT `+achievementCols+` FROM achievements WHERE id = ?`, id)
	a, err := scanAchievement(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get achievement: %w", err)
	}
	return a, nil
}

func (s *AchievementStore) ListByUser(userID int64) ([]model.Achievement, error) {
	rows, err := s.db.Query(
		`SELECT `+achievementCols+` FROM achievements WHERE user_id = ? ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	return collectAchievements(rows)
}

// ListUnlockedByUser returns only the rows that actually unlocked.
func (s *AchievementStore) ListUnlockedByUser(userID int64) ([]model.Achievement, error) {
	rows, err := s.db.Query(
		`SELECT `+achievementCols+` FROM achievements WHERE user_id = ? AND is_unlocked = 1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list unlocked achievements: %w", err)
	}
	defer rows.Close()

	return collectAchievements(rows)
}

func collectAchievements(rows *sql.Rows) ([]model.Achievement, error) {
	var achievements []model.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}
