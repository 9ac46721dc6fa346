package store

import (
	"database/sql"
	"fmt"

	"github.com/dveras/focado/internal/model"
)

type ProjectStore struct {
	db *sql.DB
}

func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func scanProject(scanner interface{ Scan(...any) error }) (*model.Project, error) {
	var p model.Project
	var endDate sql.NullTime

	err := scanner.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status,
		&p.TotalPomodoroSessions, &p.TotalWorkTime, &p.StartDate, &endDate,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		p.EndDate = &endDate.Time
	}
	return &p, nil
}

const projectCols = `id, user_id, title, description, status, total_pomodoro_sessions, total_work_time, start_date, end_date`

func (s *ProjectStore) Create(userID int64, title, description, status string) (*model.Project, error) {
	result, err := s.db.Exec(
		`INSERT INTO projects (user_id, title, description, status) VALUES (?, ?, ?, ?)`,
		userID, title, description, status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ProjectStore) GetByID(id int64) (*model.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectCols+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *ProjectStore) ListByUser(userID int64) ([]model.Project, error) {
	rows, err := s.db.Query(
		`SELECT `+projectCols+` FROM projects WHERE user_id = ? ORDER BY start_date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *ProjectStore) Update(id int64, title, description, status string) (*model.Project, error) {
	_, err := s.db.Exec(
		`UPDATE projects SET title = ?, description = ?, status = ? WHERE id = ?`,
		title, description, status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return s.GetByID(id)
}

func (s *ProjectStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
