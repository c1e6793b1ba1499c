package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrBoardNotFound is returned when no saved board has the requested name.
var ErrBoardNotFound = errors.New("storage: board not found")

// SavedBoard is a board stored in the database. Data holds the board in the
// JSON wire format.
type SavedBoard struct {
	ID        int64
	Name      string
	LevelID   string // Level the board was saved from; empty for imports
	Data      []byte
	UpdatedAt time.Time
}

// SaveBoard stores a board under name, replacing any board with that name.
func (s *Store) SaveBoard(name, levelID string, data []byte) error {
	if name == "" {
		return fmt.Errorf("storage: board name is empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO boards (name, level_id, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		     level_id = excluded.level_id,
		     data = excluded.data,
		     updated_at = CURRENT_TIMESTAMP`,
		name, levelID, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board %q: %w", name, err)
	}
	return nil
}

// LoadBoard returns the board saved under name.
func (s *Store) LoadBoard(name string) (SavedBoard, error) {
	var b SavedBoard
	var data string
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT id, name, level_id, data, updated_at
		 FROM boards
		 WHERE name = ?`,
		name,
	).Scan(&b.ID, &b.Name, &b.LevelID, &data, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return SavedBoard{}, fmt.Errorf("%w: %q", ErrBoardNotFound, name)
	}
	if err != nil {
		return SavedBoard{}, fmt.Errorf("storage: cannot load board %q: %w", name, err)
	}

	b.Data = []byte(data)
	b.UpdatedAt = parseTime(updatedAt)
	return b, nil
}

// ListBoards returns all saved boards without their data, newest first.
func (s *Store) ListBoards() ([]SavedBoard, error) {
	rows, err := s.db.Query(
		`SELECT id, name, level_id, updated_at
		 FROM boards
		 ORDER BY updated_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}
	defer rows.Close()

	var boards []SavedBoard
	for rows.Next() {
		var b SavedBoard
		var updatedAt any
		if err := rows.Scan(&b.ID, &b.Name, &b.LevelID, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.UpdatedAt = parseTime(updatedAt)
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return boards, nil
}

// DeleteBoard removes the board saved under name.
func (s *Store) DeleteBoard(name string) error {
	res, err := s.db.Exec("DELETE FROM boards WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrBoardNotFound, name)
	}
	return nil
}
