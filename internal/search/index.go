// Package search maintains a full-text index over note titles and content.
// The index is derived data: it is rebuilt from the in-memory collection
// after each save and can be lost without consequence.
package search

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/marcus/peek/internal/note"
)

// Index is a SQLite FTS5 index of the note collection.
type Index struct {
	db *sql.DB
}

// Open opens (or creates) the index database at path.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("search: open index: %w", err)
	}

	schema := `
CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
    id UNINDEXED,
    title,
    content
);
`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("search: init schema: %w", err)
	}
	return &Index{db: db}, nil
}

// Close closes the index database.
func (ix *Index) Close() error {
	if ix.db != nil {
		return ix.db.Close()
	}
	return nil
}

// Rebuild replaces the whole index with the given collection. Mirrors the
// persistence contract: full overwrite, no diffing.
func (ix *Index) Rebuild(notes []note.Note) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("search: begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notes_fts`); err != nil {
		return fmt.Errorf("search: clear index: %w", err)
	}
	for _, n := range notes {
		if _, err := tx.Exec(`INSERT INTO notes_fts (id, title, content) VALUES (?, ?, ?)`,
			n.ID, n.Title, n.Content); err != nil {
			return fmt.Errorf("search: index note %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}

// Query returns note IDs matching q, best match first. An empty or
// all-whitespace query matches nothing.
func (ix *Index) Query(q string) ([]string, error) {
	match := buildMatch(q)
	if match == "" {
		return nil, nil
	}

	rows, err := ix.db.Query(
		`SELECT id FROM notes_fts WHERE notes_fts MATCH ? ORDER BY bm25(notes_fts)`, match)
	if err != nil {
		return nil, fmt.Errorf("search: query: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("search: scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// buildMatch converts free text into an FTS5 prefix query. Each token is
// quoted so user input can never produce FTS syntax errors.
func buildMatch(q string) string {
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return ""
	}
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		escaped := strings.ReplaceAll(f, `"`, `""`)
		terms = append(terms, `"`+escaped+`"*`)
	}
	return strings.Join(terms, " ")
}

// Filter is the degraded path when the index is unavailable: a
// case-insensitive substring scan over titles and content, in collection
// order.
func Filter(notes []note.Note, q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var ids []string
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
