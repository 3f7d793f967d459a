// Package reportstore persists comparison reports to SQLite. Storage is
// opt-in: the engine never touches it, the CLI appends a row per run when
// asked to.
package reportstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hazyhaar/uidiff/dbopen"
	"github.com/hazyhaar/uidiff/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS comparison_reports (
	id          TEXT PRIMARY KEY,
	base_file   TEXT NOT NULL,
	input_file  TEXT NOT NULL,
	score       REAL NOT NULL,
	total_diffs INTEGER NOT NULL,
	base_nodes  INTEGER NOT NULL,
	report_json TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_created ON comparison_reports(created_at);
`

// Store wraps a report database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a report database at path.
func Open(path string) (*Store, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(schema))
	if err != nil {
		return nil, fmt.Errorf("reportstore: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore creates a Store from an already-opened database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ApplySchema creates the report tables on db.
func ApplySchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert appends one comparison report.
func (s *Store) Insert(ctx context.Context, r *report.Report) error {
	data, err := report.MarshalReport(r)
	if err != nil {
		return fmt.Errorf("reportstore: marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO comparison_reports (
			id, base_file, input_file, score, total_diffs, base_nodes,
			report_json, created_at
		) VALUES (?,?,?,?,?,?,?,?)`,
		r.ID, r.BaseFile, r.InputFile, r.Score, r.TotalDiffs, r.BaseNodes,
		string(data), r.Timestamp)
	if err != nil {
		return fmt.Errorf("reportstore: insert %s: %w", r.ID, err)
	}
	return nil
}

// Get retrieves a report by ID.
func (s *Store) Get(ctx context.Context, id string) (*report.Report, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT report_json FROM comparison_reports WHERE id = ?`, id).Scan(&data)
	if err != nil {
		return nil, fmt.Errorf("reportstore: get %s: %w", id, err)
	}
	return report.UnmarshalReport([]byte(data))
}

// Summary is one row of the report index.
type Summary struct {
	ID         string
	BaseFile   string
	InputFile  string
	Score      float64
	TotalDiffs int
	CreatedAt  int64
}

// Recent lists the newest reports, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, base_file, input_file, score, total_diffs, created_at
		FROM comparison_reports
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("reportstore: recent: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.BaseFile, &sm.InputFile, &sm.Score, &sm.TotalDiffs, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("reportstore: scan: %w", err)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}
