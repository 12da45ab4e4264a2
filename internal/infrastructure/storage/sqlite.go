package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

// SQLite stores puzzle definitions in a single sqlite database. Hint sets
// are kept as JSON columns; solved grids are never written.
type SQLite struct{ db *sql.DB }

// OpenSQLite opens the database with sensible defaults and applies all up
// migrations found at migrationsPath.
func OpenSQLite(path, migrationsPath string) (*SQLite, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if err := runMigrations(db, migrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite3",
		driver,
	)
	if err != nil {
		return err
	}
	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	rows, err := json.Marshal(p.Rows)
	if err != nil {
		return err
	}
	cols, err := json.Marshal(p.Cols)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO puzzles(id, name, notes, row_hints, col_hints, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 notes=excluded.notes,
	 row_hints=excluded.row_hints,
	 col_hints=excluded.col_hints;
	`, p.ID, p.Name, p.Notes, string(rows), string(cols), p.CreatedAt)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var p domain.Puzzle
	var rows, cols string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, row_hints, col_hints, created_at FROM puzzles WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Notes, &rows, &cols, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rows), &p.Rows); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(cols), &p.Cols); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT id, name, row_hints, col_hints, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rs.Close()
	var out []domain.PuzzleMeta
	for rs.Next() {
		var m domain.PuzzleMeta
		var rows, cols string
		if err := rs.Scan(&m.ID, &m.Name, &rows, &cols, &m.CreatedAt); err != nil {
			return nil, err
		}
		var rh, ch []domain.Hints
		if err := json.Unmarshal([]byte(rows), &rh); err == nil {
			m.Height = len(rh)
		}
		if err := json.Unmarshal([]byte(cols), &ch); err == nil {
			m.Width = len(ch)
		}
		out = append(out, m)
	}
	return out, rs.Err()
}
