// apps/go-cli/internal/history/sqlite.go
//
// SQLite transcript log.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Appending finished-session transcripts and listing recent ones.

package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLiteRecorder appends transcripts to a SQLite table.
type SQLiteRecorder struct {
	db  *sql.DB
	dsn string
}

// OpenSQLite opens (and creates if missing) the database at dsn and migrates it.
func OpenSQLite(dsn string) (*SQLiteRecorder, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteRecorder{db: db, dsn: dsn}, nil
}

func (s *SQLiteRecorder) Close() error { return s.db.Close() }

// openDB ensures the parent directory exists, then opens with a busy
// timeout and WAL journaling.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// serialize writers
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies embedded sql/*.sql files in lexical order, skipping those
// already listed in _migrations. Each file runs in its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *SQLiteRecorder) Record(ctx context.Context, t game.Transcript) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transcripts (id, finished_at, outcome, secret, attempts, body)
        VALUES (?, ?, ?, ?, ?, ?)`,
		t.SessionID, t.FinishedAt.UTC().Format(time.RFC3339), t.Outcome.String(),
		t.Secret.String(), t.Attempts, t.Text,
	)
	if err != nil {
		return &StorageError{Op: "insert", Target: s.dsn, Err: err}
	}
	return nil
}

// Row is one stored transcript.
type Row struct {
	ID         string
	FinishedAt time.Time
	Outcome    string
	Attempts   int
	Body       string
}

// Recent lists the newest transcripts first. Default limit is 20.
func (s *SQLiteRecorder) Recent(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, finished_at, outcome, attempts, body
        FROM transcripts
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var (
			r        Row
			finished string
		)
		if err := rows.Scan(&r.ID, &finished, &r.Outcome, &r.Attempts, &r.Body); err != nil {
			return nil, err
		}
		r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SQLiteLog records into the database at DSN, opening it for each Record and
// closing it before returning, whether or not the insert succeeded.
type SQLiteLog struct {
	DSN string
}

// NewSQLiteLog checks once that dsn opens and migrates, so a bad HISTORY_DB
// fails at startup rather than after the first game.
func NewSQLiteLog(dsn string) (*SQLiteLog, error) {
	db, err := OpenSQLite(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Close(); err != nil {
		return nil, err
	}
	return &SQLiteLog{DSN: dsn}, nil
}

func (l *SQLiteLog) Record(ctx context.Context, t game.Transcript) error {
	db, err := OpenSQLite(l.DSN)
	if err != nil {
		return &StorageError{Op: "open", Target: l.DSN, Err: err}
	}
	defer db.Close()
	return db.Record(ctx, t)
}
