package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

// RunRecord is one search run in the history.
type RunRecord struct {
	ID           int64
	RunID        string // UUID assigned on save
	Source       string // layout or pattern ID, "custom" for hand-drawn grids
	Rows         int
	Cols         int
	Walls        int
	Connectivity string
	Visited      int
	PathLength   int
	Reached      bool
	Duration     time.Duration // engine time, not replay time
	CreatedAt    time.Time
}

// NewRunRecord summarizes a finished search.
func NewRunRecord(source string, g *grid.Grid, opts pathfind.Options, res pathfind.Result, elapsed time.Duration) RunRecord {
	stats := res.Stats()
	return RunRecord{
		Source:       source,
		Rows:         g.Rows(),
		Cols:         g.Cols(),
		Walls:        g.WallCount(),
		Connectivity: opts.Conn.String(),
		Visited:      stats.Visited,
		PathLength:   stats.PathLength,
		Reached:      stats.Reached,
		Duration:     elapsed,
	}
}

// SaveRun records a run and returns it with its database and run IDs set.
func (s *Store) SaveRun(r RunRecord) (RunRecord, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Source == "" {
		r.Source = "custom"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, source, grid_rows, grid_cols, walls, connectivity, visited, path_length, reached, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Source, r.Rows, r.Cols, r.Walls, r.Connectivity,
		r.Visited, r.PathLength, r.Reached, r.Duration.Microseconds(),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id
	return r, nil
}

const runColumns = `id, run_id, source, grid_rows, grid_cols, walls, connectivity,
		        visited, path_length, reached, duration_us, created_at`

// RecentRuns returns the newest runs first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunsForSource returns the newest runs of one layout or pattern.
func (s *Store) RunsForSource(source string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE source = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		source, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationUS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.Source,
			&r.Rows,
			&r.Cols,
			&r.Walls,
			&r.Connectivity,
			&r.Visited,
			&r.PathLength,
			&r.Reached,
			&durationUS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationUS) * time.Microsecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RunStats contains aggregated statistics over the run history.
type RunStats struct {
	Runs          int
	Reached       int
	AvgVisited    float64
	AvgPathLength float64 // over reached runs only
	LastRun       time.Time
}

// Stats aggregates the whole run history.
func (s *Store) Stats() (RunStats, error) {
	var stats RunStats
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(reached), 0),
		        COALESCE(AVG(visited), 0),
		        COALESCE(AVG(CASE WHEN reached THEN path_length END), 0),
		        MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Reached, &stats.AvgVisited, &stats.AvgPathLength, &lastRun)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)
	return stats, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
