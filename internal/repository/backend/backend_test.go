package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/freeeve/statecraft/internal/config"
	"github.com/freeeve/statecraft/internal/repository/file"
	"github.com/freeeve/statecraft/internal/repository/sqlite"
)

func TestOpenLocalBackends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, &config.Config{SaveBackend: config.BackendFile, SaveDir: filepath.Join(dir, "saves")})
	if err != nil {
		t.Fatalf("open file backend: %v", err)
	}
	if _, ok := s.(*file.Store); !ok {
		t.Fatalf("file backend is %T", s)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(ctx, &config.Config{SaveBackend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "saves.db")})
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	if _, ok := s.(*sqlite.Store); !ok {
		t.Fatalf("sqlite backend is %T", s)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{SaveBackend: "floppy"})
	if err == nil || s != nil {
		t.Fatalf("got %v, %v; want nil store and an error", s, err)
	}
}
