package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/layout"
)

// LayoutEntry is a summary row of a saved layout.
type LayoutEntry struct {
	ID        string
	Name      string
	Rows      int
	Cols      int
	Walls     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveLayout inserts or replaces the layout with the same ID.
// The body is stored as layout YAML in map form.
func (s *Store) SaveLayout(l layout.Layout) error {
	if !layout.ValidID(l.ID) {
		return fmt.Errorf("storage: invalid layout id %q", l.ID)
	}
	body, err := layout.EncodeLayout(l)
	if err != nil {
		return fmt.Errorf("storage: cannot encode layout: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO layouts (id, name, grid_rows, grid_cols, walls, body)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   grid_rows = excluded.grid_rows,
		   grid_cols = excluded.grid_cols,
		   walls = excluded.walls,
		   body = excluded.body,
		   updated_at = CURRENT_TIMESTAMP`,
		l.ID, l.Name, l.Rows, l.Cols, len(l.Walls), string(body),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save layout: %w", err)
	}
	return nil
}

// LoadLayout returns the saved layout with the given ID.
func (s *Store) LoadLayout(id string) (layout.Layout, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM layouts WHERE id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return layout.Layout{}, fmt.Errorf("%w: layout %q", ErrNotFound, id)
	}
	if err != nil {
		return layout.Layout{}, fmt.Errorf("storage: cannot query layout: %w", err)
	}

	l, err := layout.Parse([]byte(body))
	if err != nil {
		return layout.Layout{}, fmt.Errorf("storage: stored layout %q is corrupt: %w", id, err)
	}
	return l, nil
}

// LayoutBody returns the stored YAML of a layout.
func (s *Store) LayoutBody(id string) ([]byte, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM layouts WHERE id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: layout %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layout: %w", err)
	}
	return []byte(body), nil
}

// ListLayouts returns all saved layouts ordered by ID.
func (s *Store) ListLayouts() ([]LayoutEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, grid_rows, grid_cols, walls, created_at, updated_at
		 FROM layouts
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layouts: %w", err)
	}
	defer rows.Close()

	var entries []LayoutEntry
	for rows.Next() {
		var e LayoutEntry
		var createdAt, updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Rows, &e.Cols, &e.Walls, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteLayout removes a saved layout. Run history that mentions it is kept.
func (s *Store) DeleteLayout(id string) error {
	res, err := s.db.Exec("DELETE FROM layouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete layout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: layout %q", ErrNotFound, id)
	}
	return nil
}
