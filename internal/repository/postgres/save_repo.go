package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
)

// SaveRepo stores game snapshots in the saves table.
type SaveRepo struct {
	db *sql.DB
}

// NewSaveRepo creates a SaveRepo.
func NewSaveRepo(db *sql.DB) *SaveRepo {
	return &SaveRepo{db: db}
}

// Save upserts a snapshot under meta.Name.
func (r *SaveRepo) Save(ctx context.Context, meta model.SaveMeta, snapshot json.RawMessage) error {
	if err := repository.ValidateSaveName(meta.Name); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO saves (name, session_id, turn, player_country, snapshot, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name) DO UPDATE SET
		   session_id = EXCLUDED.session_id,
		   turn = EXCLUDED.turn,
		   player_country = EXCLUDED.player_country,
		   snapshot = EXCLUDED.snapshot,
		   saved_at = EXCLUDED.saved_at`,
		meta.Name, meta.SessionID, meta.Turn, meta.PlayerCountry, []byte(snapshot), meta.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the snapshot stored under name, or nil when there is none.
func (r *SaveRepo) Load(ctx context.Context, name string) (json.RawMessage, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM saves WHERE name = $1`, name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}

// List returns every save, most recent first.
func (r *SaveRepo) List(ctx context.Context) ([]model.SaveMeta, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, session_id, turn, player_country, saved_at
		 FROM saves ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var saves []model.SaveMeta
	for rows.Next() {
		var m model.SaveMeta
		if err := rows.Scan(&m.Name, &m.SessionID, &m.Turn, &m.PlayerCountry, &m.SavedAt); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		saves = append(saves, m)
	}
	return saves, rows.Err()
}

// Delete removes the save and reports whether it existed.
func (r *SaveRepo) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("delete save: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete save: %w", err)
	}
	return n > 0, nil
}

// Close closes the underlying pool.
func (r *SaveRepo) Close() error {
	return r.db.Close()
}
