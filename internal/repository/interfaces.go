package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"github.com/freeeve/statecraft/internal/model"
)

var ErrInvalidSaveName = errors.New("invalid save name")

var saveNamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

// ValidateSaveName rejects names that are empty, too long, or would escape a
// storage namespace.
func ValidateSaveName(name string) error {
	if !saveNamePattern.MatchString(name) {
		return ErrInvalidSaveName
	}
	return nil
}

// SaveStore persists game snapshots under named slots.
type SaveStore interface {
	// Save writes the snapshot, replacing any slot with the same name.
	Save(ctx context.Context, meta model.SaveMeta, snapshot json.RawMessage) error
	// Load returns the snapshot, or nil and no error when the slot is empty.
	Load(ctx context.Context, name string) (json.RawMessage, error)
	// List returns every slot, most recently saved first.
	List(ctx context.Context) ([]model.SaveMeta, error)
	// Delete removes the slot and reports whether it existed.
	Delete(ctx context.Context, name string) (bool, error)
	Close() error
}
