package corpus

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wiseai/quote-engine/internal/domain"
)

// Store persists the corpus in SQLite. The offline batch rebuilds it
// atomically; the serving process loads it once at startup and never
// writes through it.
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	text    TEXT NOT NULL,
	author  TEXT NOT NULL DEFAULT 'Unknown',
	tags    TEXT NOT NULL DEFAULT '',
	emotion TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quotes_emotion ON quotes(emotion);
`

// Open connects to the SQLite database at path, creating the schema when
// absent.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("connect corpus db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create corpus schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Rebuild replaces the entire corpus in one transaction.
func (s *Store) Rebuild(ctx context.Context, quotes []domain.Quote) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quotes`); err != nil {
		return fmt.Errorf("clear quotes: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO quotes (text, author, tags, emotion) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, q.Text, q.Author, q.Tags, q.Emotion); err != nil {
			return fmt.Errorf("insert quote: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

// LoadAll returns every quote in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]domain.Quote, error) {
	var quotes []domain.Quote
	err := s.db.SelectContext(ctx, &quotes, `SELECT id, text, author, tags, emotion FROM quotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load quotes: %w", err)
	}
	return quotes, nil
}

// Count returns the corpus size.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM quotes`); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return n, nil
}

// CountByEmotion returns the number of quotes stored per emotion label.
func (s *Store) CountByEmotion(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryxContext(ctx, `SELECT emotion, COUNT(*) FROM quotes GROUP BY emotion`)
	if err != nil {
		return nil, fmt.Errorf("count by emotion: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var emotion string
		var n int
		if err := rows.Scan(&emotion, &n); err != nil {
			return nil, fmt.Errorf("scan emotion count: %w", err)
		}
		counts[emotion] = n
	}
	return counts, rows.Err()
}
