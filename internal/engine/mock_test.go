package engine

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/freeeve/statecraft/internal/bot"
	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
	"github.com/freeeve/statecraft/internal/scenario"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

type mockStore struct {
	metas map[string]model.SaveMeta
	snaps map[string]json.RawMessage
	err   error
}

func newMockStore() *mockStore {
	return &mockStore{
		metas: make(map[string]model.SaveMeta),
		snaps: make(map[string]json.RawMessage),
	}
}

func (m *mockStore) Save(_ context.Context, meta model.SaveMeta, snapshot json.RawMessage) error {
	if m.err != nil {
		return m.err
	}
	if err := repository.ValidateSaveName(meta.Name); err != nil {
		return err
	}
	m.metas[meta.Name] = meta
	m.snaps[meta.Name] = append(json.RawMessage(nil), snapshot...)
	return nil
}

func (m *mockStore) Load(_ context.Context, name string) (json.RawMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snaps[name], nil
}

func (m *mockStore) List(_ context.Context) ([]model.SaveMeta, error) {
	var out []model.SaveMeta
	for _, meta := range m.metas {
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

func (m *mockStore) Delete(_ context.Context, name string) (bool, error) {
	_, ok := m.snaps[name]
	delete(m.snaps, name)
	delete(m.metas, name)
	return ok, nil
}

func (m *mockStore) Close() error { return nil }

// fixedRand returns the same draw every time: 0 makes every chance succeed,
// 0.999 makes every chance below it fail.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
func (f fixedRand) Intn(int) int     { return 0 }

type panicStrategy struct{}

func (panicStrategy) Name() string { return "panic" }

func (panicStrategy) TakeTurn(t bot.Turn) bot.Decision {
	panic("strategy exploded for " + t.Country.Name)
}

// newTestGame starts a seeded game on the embedded scenario with AI
// countries holding still.
func newTestGame(t *testing.T, party string, r statecraft.Rand) (*Game, *mockStore) {
	t.Helper()
	sc, err := scenario.Default()
	if err != nil {
		t.Fatalf("default scenario: %v", err)
	}
	if r == nil {
		r = statecraft.NewRand(7)
	}
	store := newMockStore()
	g := New(Options{
		Scenario:  sc,
		Store:     store,
		Strategy:  bot.HoldStrategy{},
		Rand:      r,
		SessionID: "test-session",
	})
	g.StartNewGame(party)
	g.GetAndClearLog()
	return g, store
}

func logContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
