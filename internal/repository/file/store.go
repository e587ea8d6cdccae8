// Package file stores save slots as JSON documents in a directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
)

const ext = ".json"

// document is the on-disk layout of one slot.
type document struct {
	Meta     model.SaveMeta  `json:"meta"`
	Snapshot json.RawMessage `json:"snapshot"`
}

// Store keeps one <name>.json file per slot under dir.
type Store struct {
	dir string
}

// Open creates dir if needed and returns a Store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+ext)
}

// Save writes the slot atomically through a temp file and rename.
func (s *Store) Save(_ context.Context, meta model.SaveMeta, snapshot json.RawMessage) error {
	if err := repository.ValidateSaveName(meta.Name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(document{Meta: meta, Snapshot: snapshot}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, meta.Name+".*.tmp")
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(meta.Name)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Store) read(name string) (*document, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &doc, nil
}

// Load returns the snapshot stored under name, or nil when there is none.
func (s *Store) Load(_ context.Context, name string) (json.RawMessage, error) {
	if err := repository.ValidateSaveName(name); err != nil {
		return nil, err
	}
	doc, err := s.read(name)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc.Snapshot, nil
}

// List returns every slot in dir, most recent first. Unreadable files are skipped.
func (s *Store) List(_ context.Context) ([]model.SaveMeta, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	var saves []model.SaveMeta
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		doc, err := s.read(strings.TrimSuffix(e.Name(), ext))
		if err != nil || doc == nil {
			continue
		}
		saves = append(saves, doc.Meta)
	}
	sort.SliceStable(saves, func(i, j int) bool { return saves[i].SavedAt.After(saves[j].SavedAt) })
	return saves, nil
}

// Delete removes the slot file and reports whether it existed.
func (s *Store) Delete(_ context.Context, name string) (bool, error) {
	if err := repository.ValidateSaveName(name); err != nil {
		return false, err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete save: %w", err)
	}
	return true, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
