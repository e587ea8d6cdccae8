package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "saves"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	m := model.SaveMeta{Name: "slot1", SessionID: "s", Turn: 8, PlayerCountry: "France", SavedAt: time.Now().UTC()}
	if err := s.Save(ctx, m, json.RawMessage(`{"turn":8}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx, "slot1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var fetched map[string]any
	if err := json.Unmarshal(got, &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched["turn"].(float64) != 8 {
		t.Fatalf("unexpected snapshot %s", got)
	}
}

func TestFileStoreMissingAndDelete(t *testing.T) {
	s, _ := Open(t.TempDir())
	ctx := context.Background()

	got, err := s.Load(ctx, "nope")
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %s, %v", got, err)
	}

	s.Save(ctx, model.SaveMeta{Name: "x", SavedAt: time.Now()}, json.RawMessage(`{}`))
	if ok, err := s.Delete(ctx, "x"); err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if ok, _ := s.Delete(ctx, "x"); ok {
		t.Fatal("second delete should report missing slot")
	}
}

func TestFileStoreListOrderSkipsJunk(t *testing.T) {
	dir := t.TempDir()
	s, _ := Open(dir)
	ctx := context.Background()
	now := time.Now().UTC()

	s.Save(ctx, model.SaveMeta{Name: "older", SavedAt: now.Add(-time.Hour)}, json.RawMessage(`{}`))
	s.Save(ctx, model.SaveMeta{Name: "newer", SavedAt: now}, json.RawMessage(`{}`))
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte("not json"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644)

	saves, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(saves) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(saves))
	}
	if saves[0].Name != "newer" || saves[1].Name != "older" {
		t.Fatalf("unexpected order: %s, %s", saves[0].Name, saves[1].Name)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	s, _ := Open(t.TempDir())
	ctx := context.Background()

	if err := s.Save(ctx, model.SaveMeta{Name: "../escape"}, json.RawMessage(`{}`)); err != repository.ErrInvalidSaveName {
		t.Fatalf("expected ErrInvalidSaveName, got %v", err)
	}
	if _, err := s.Load(ctx, "../escape"); err != repository.ErrInvalidSaveName {
		t.Fatalf("expected ErrInvalidSaveName on load, got %v", err)
	}
}
