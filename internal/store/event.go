package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dveras/focado/internal/model"
)

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

func scanEvent(scanner interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	var allDay int

	err := scanner.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Description,
		&e.StartTime, &e.EndTime, &e.Location, &allDay,
	)
	if err != nil {
		return nil, err
	}

	e.IsAllDay = allDay != 0
	return &e, nil
}

const eventCols = `id, user_id, title, description, start_time, end_time, location, is_all_day`

func (s *EventStore) Create(userID int64, title, description string, startTime, endTime time.Time, location string, isAllDay bool) (*model.Event, error) {
	var allDay int
	if isAllDay {
		allDay = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO events (user_id, title, description, start_time, end_time, location, is_all_day) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, title, description, startTime.UTC(), endTime.UTC(), location, allDay,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *EventStore) GetByID(id int64) (*model.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventCols+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ListByUser returns the user's events, optionally bounded: events starting
// at or after start, ending at or before end. Nil bounds are ignored.
func (s *EventStore) ListByUser(userID int64, start, end *time.Time) ([]model.Event, error) {
	query := `SELECT ` + eventCols + ` FROM events WHERE user_id = ?`
	args := []any{userID}

	if start != nil {
		query += ` AND start_time >= ?`
		args = append(args, start.UTC())
	}
	if end != nil {
		query += ` AND end_time <= ?`
		args = append(args, end.UTC())
	}
	query += ` ORDER BY start_time ASC, id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (s *EventStore) Update(id int64, title, description string, startTime, endTime time.Time, location string, isAllDay bool) (*model.Event, error) {
	var allDay int
	if isAllDay {
		allDay = 1
	}

	_, err := s.db.Exec(
		`UPDATE events SET title = ?, description = ?, start_time = ?, end_time = ?, location = ?, is_all_day = ? WHERE id = ?`,
		title, description, startTime.UTC(), endTime.UTC(), location, allDay, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.GetByID(id)
}

func (s *EventStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
