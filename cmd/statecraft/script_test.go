package main

import (
	"math"
	"slices"
	"testing"

	"github.com/freeeve/statecraft/internal/bot"
	"github.com/freeeve/statecraft/internal/engine"
	"github.com/freeeve/statecraft/internal/scenario"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

func newGame(t *testing.T, party string) *engine.Game {
	t.Helper()
	sc, err := scenario.Default()
	if err != nil {
		t.Fatalf("default scenario: %v", err)
	}
	g := engine.New(engine.Options{
		Scenario:  sc,
		Strategy:  bot.HoldStrategy{},
		Rand:      statecraft.NewRand(1),
		SessionID: "script-test",
	})
	g.StartNewGame(party)
	return g
}

func TestParseScript(t *testing.T) {
	actions, err := parseScript(" tax:revenu=-0.02,tva=0.01 ; treaty:trade:Allemagne;law:2;;concede ")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if len(actions) != 4 {
		t.Fatalf("got %d actions, want 4", len(actions))
	}
	if actions[0].raw != "tax:revenu=-0.02,tva=0.01" || actions[3].raw != "concede" {
		t.Fatalf("raw %q / %q", actions[0].raw, actions[3].raw)
	}

	none, err := parseScript("")
	if err != nil || len(none) != 0 {
		t.Fatalf("empty script: %v, %v", none, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{
		"tax:revenu",
		"tax:revenu=beaucoup",
		"fee:gratuit",
		"treaty:Allemagne",
		"law:deux",
		"dance",
	} {
		if _, err := parseScript(script); err == nil {
			t.Errorf("parseScript(%q) accepted", script)
		}
	}
}

func TestScriptDrivesGame(t *testing.T) {
	g := newGame(t, "Rassemblement National")
	if !g.InPower() {
		t.Fatal("governing party not in power")
	}

	actions, err := parseScript("tax:revenu=-0.03;treaty:military:Allemagne;fee:75;war:Atlantide")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}

	results := make([]bool, len(actions))
	for i, a := range actions {
		results[i] = a.apply(g)
	}
	if want := []bool{true, true, true, false}; !slices.Equal(results, want) {
		t.Fatalf("results %v, want %v", results, want)
	}
	if math.Abs(g.Player().TaxIncome-0.17) > 1e-9 {
		t.Errorf("income tax %v", g.Player().TaxIncome)
	}
	if len(g.Alliances()) != 1 {
		t.Errorf("alliances %d", len(g.Alliances()))
	}
	if fee := g.Player().Party("Rassemblement National").MembershipFee; fee != 75 {
		t.Errorf("membership fee %v", fee)
	}
}

func TestNegotiateOutsideCoalitionPhase(t *testing.T) {
	g := newGame(t, "Renaissance")

	negotiate(g) // not negotiating: both calls are refused and nothing changes

	if g.Phase() != engine.PhaseRunning || g.InPower() {
		t.Fatalf("phase %v, in power %v", g.Phase(), g.InPower())
	}
}
