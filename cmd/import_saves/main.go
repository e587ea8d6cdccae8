// Command import_saves moves save slots between backends through JSONL.
// Each line holds one slot: its metadata and the raw snapshot.
//
// Usage:
//
//	SAVE_BACKEND=sqlite go run ./cmd/import_saves/ --export saves.jsonl
//	SAVE_BACKEND=postgres go run ./cmd/import_saves/ --input saves.jsonl
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/statecraft/internal/config"
	"github.com/freeeve/statecraft/internal/engine"
	"github.com/freeeve/statecraft/internal/logger"
	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
	"github.com/freeeve/statecraft/internal/repository/backend"
)

// saveRecord is one JSONL line.
type saveRecord struct {
	Meta     model.SaveMeta  `json:"meta"`
	Snapshot json.RawMessage `json:"snapshot"`
}

var errNoSnapshot = errors.New("record has no snapshot")

func main() {
	logger.Init()
	cfg := config.Load()

	inputFile := flag.String("input", "", "Path to a JSONL file to import")
	exportFile := flag.String("export", "", "Path to write every slot as JSONL")
	backendName := flag.String("backend", cfg.SaveBackend, "Save backend (file, sqlite, postgres, redis)")
	namePrefix := flag.String("name-prefix", "", "Prefix added to imported slot names")
	flag.Parse()
	cfg.SaveBackend = *backendName

	if (*inputFile == "") == (*exportFile == "") {
		log.Fatal().Msg("exactly one of --input or --export is required")
	}

	ctx := context.Background()
	store, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SaveBackend).Msg("Save store unavailable")
	}
	defer store.Close()

	if *exportFile != "" {
		f, err := os.Create(*exportFile)
		if err != nil {
			log.Fatal().Err(err).Msg("create export file")
		}
		n, err := exportSaves(ctx, store, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		log.Info().Int("saves", n).Str("file", *exportFile).Msg("done")
		return
	}

	f, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Msg("open input")
	}
	defer f.Close()

	imported, skipped, err := importSaves(ctx, store, f, *namePrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
	log.Info().Int("imported", imported).Int("skipped", skipped).Msg("done")
}

// importSaves writes every valid line of r into store. Lines that do not
// decode or whose snapshot would not restore are skipped with a warning.
func importSaves(ctx context.Context, store repository.SaveStore, r io.Reader, prefix string) (imported, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	// Snapshots carry the full world and history.
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var rec saveRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("skip line (bad JSON)")
			skipped++
			continue
		}
		rec.Meta.Name = prefix + rec.Meta.Name
		if err := importSave(ctx, store, rec); err != nil {
			log.Error().Err(err).Int("line", lineNo).Str("save", rec.Meta.Name).Msg("import save")
			skipped++
			continue
		}

		imported++
		log.Info().Str("save", rec.Meta.Name).Int("turn", rec.Meta.Turn).Msg("imported save")
	}
	return imported, skipped, scanner.Err()
}

// importSave checks the snapshot restores into a fresh game before storing it.
func importSave(ctx context.Context, store repository.SaveStore, rec saveRecord) error {
	if len(rec.Snapshot) == 0 || string(rec.Snapshot) == "null" {
		return errNoSnapshot
	}
	var snap model.Snapshot
	if err := json.Unmarshal(rec.Snapshot, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if err := engine.New(engine.Options{SessionID: snap.SessionID}).Restore(&snap); err != nil {
		return err
	}
	if rec.Meta.SessionID == "" {
		rec.Meta.SessionID = snap.SessionID
	}
	if rec.Meta.PlayerCountry == "" {
		rec.Meta.PlayerCountry = snap.PlayerCountry
	}
	if rec.Meta.Turn == 0 {
		rec.Meta.Turn = snap.Turn
	}
	return store.Save(ctx, rec.Meta, rec.Snapshot)
}

// exportSaves writes every slot of store to w, most recent first.
func exportSaves(ctx context.Context, store repository.SaveStore, w io.Writer) (int, error) {
	saves, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	enc := json.NewEncoder(w)
	n := 0
	for _, meta := range saves {
		data, err := store.Load(ctx, meta.Name)
		if err != nil {
			return n, fmt.Errorf("load %s: %w", meta.Name, err)
		}
		if data == nil {
			continue
		}
		if err := enc.Encode(saveRecord{Meta: meta, Snapshot: data}); err != nil {
			return n, fmt.Errorf("encode %s: %w", meta.Name, err)
		}
		n++
	}
	return n, nil
}
