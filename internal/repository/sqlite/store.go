// Package sqlite provides the default SQLite-backed save store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
)

// Store wraps a SQLite connection holding save slots.
type Store struct {
	conn *sqlx.DB
}

// saveRow mirrors the saves table; saved_at is unix nanoseconds.
type saveRow struct {
	Name          string `db:"name"`
	SessionID     string `db:"session_id"`
	Turn          int    `db:"turn"`
	PlayerCountry string `db:"player_country"`
	SavedAt       int64  `db:"saved_at"`
}

func (r saveRow) meta() model.SaveMeta {
	return model.SaveMeta{
		Name:          r.Name,
		SessionID:     r.SessionID,
		Turn:          r.Turn,
		PlayerCountry: r.PlayerCountry,
		SavedAt:       time.Unix(0, r.SavedAt).UTC(),
	}
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		name TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		player_country TEXT NOT NULL,
		snapshot TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save writes the snapshot, replacing any slot with the same name.
func (s *Store) Save(ctx context.Context, meta model.SaveMeta, snapshot json.RawMessage) error {
	if err := repository.ValidateSaveName(meta.Name); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx, `INSERT INTO saves
		(name, session_id, turn, player_country, snapshot, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			session_id = excluded.session_id,
			turn = excluded.turn,
			player_country = excluded.player_country,
			snapshot = excluded.snapshot,
			saved_at = excluded.saved_at`,
		meta.Name, meta.SessionID, meta.Turn, meta.PlayerCountry, string(snapshot), meta.SavedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the snapshot stored under name, or nil when there is none.
func (s *Store) Load(ctx context.Context, name string) (json.RawMessage, error) {
	var data string
	err := s.conn.GetContext(ctx, &data, "SELECT snapshot FROM saves WHERE name = ?", name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}

// List returns every save, most recent first.
func (s *Store) List(ctx context.Context) ([]model.SaveMeta, error) {
	var rows []saveRow
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT name, session_id, turn, player_country, saved_at FROM saves ORDER BY saved_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	saves := make([]model.SaveMeta, len(rows))
	for i, r := range rows {
		saves[i] = r.meta()
	}
	return saves, nil
}

// Delete removes the slot and reports whether it existed.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("delete save: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete save: %w", err)
	}
	return n > 0, nil
}
