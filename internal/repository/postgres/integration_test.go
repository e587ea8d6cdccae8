//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/testutil"
)

func setup(t *testing.T) *SaveRepo {
	t.Helper()
	return NewSaveRepo(testutil.SetupDB(t))
}

func TestSaveRepoRoundTrip(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	m := model.SaveMeta{Name: "slot1", SessionID: "s1", Turn: 40, PlayerCountry: "France", SavedAt: time.Now().UTC()}
	if err := repo.Save(ctx, m, json.RawMessage(`{"turn":40}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "slot1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var fetched map[string]any
	json.Unmarshal(got, &fetched)
	if fetched["turn"].(float64) != 40 {
		t.Fatalf("unexpected snapshot: %s", got)
	}

	missing, err := repo.Load(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing slot, got %s, %v", missing, err)
	}
}

func TestSaveRepoUpsertAndList(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	repo.Save(ctx, model.SaveMeta{Name: "a", SessionID: "s", Turn: 1, PlayerCountry: "France", SavedAt: now.Add(-time.Minute)}, json.RawMessage(`{}`))
	repo.Save(ctx, model.SaveMeta{Name: "b", SessionID: "s", Turn: 2, PlayerCountry: "France", SavedAt: now}, json.RawMessage(`{}`))
	repo.Save(ctx, model.SaveMeta{Name: "a", SessionID: "s", Turn: 9, PlayerCountry: "France", SavedAt: now.Add(time.Minute)}, json.RawMessage(`{}`))

	saves, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(saves) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(saves))
	}
	if saves[0].Name != "a" || saves[0].Turn != 9 {
		t.Fatalf("expected upserted slot a first, got %+v", saves[0])
	}

	ok, err := repo.Delete(ctx, "b")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
}
