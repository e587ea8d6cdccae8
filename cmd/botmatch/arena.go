package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/freeeve/statecraft/internal/bot"
	"github.com/freeeve/statecraft/internal/engine"
	"github.com/freeeve/statecraft/internal/scenario"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

// MatchConfig describes one headless session.
type MatchConfig struct {
	Name     string
	Strategy string
	Party    string
	Turns    int
	Seed     int64
}

// MatchResult is the state of the player nation and the world when a
// session ends.
type MatchResult struct {
	Name      string  `json:"name"`
	Strategy  string  `json:"strategy"`
	Seed      int64   `json:"seed"`
	Turns     int     `json:"turns"`
	Approval  float64 `json:"approval"`
	GDPChange float64 `json:"gdp_change"`
	Treasury  float64 `json:"treasury"`
	Leader    string  `json:"leader_party"`
	InPower   bool    `json:"player_in_power"`
	Treaties  int     `json:"treaties"`
	Wars      int     `json:"wars"`
}

// RunMatch plays cfg.Turns weeks with every AI country on cfg.Strategy and
// an idle player that concedes any coalition negotiation.
func RunMatch(ctx context.Context, sc *scenario.Scenario, cfg MatchConfig) (*MatchResult, error) {
	g := engine.New(engine.Options{
		Scenario:  sc,
		Strategy:  bot.StrategyForDifficulty(cfg.Strategy),
		Rand:      statecraft.NewRand(cfg.Seed),
		SessionID: cfg.Name,
	})
	g.StartNewGame(cfg.Party)
	p := g.Player()
	if p == nil {
		return nil, fmt.Errorf("start %s: %w", cfg.Name, engine.ErrNoGame)
	}
	startGDP := p.GDP

	for i := 0; i < cfg.Turns; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.Phase() == engine.PhaseCoalition {
			g.ConcedePower()
		}
		g.AdvanceTurn()
		g.GetAndClearLog()
	}

	p = g.Player()
	res := &MatchResult{
		Name:     cfg.Name,
		Strategy: cfg.Strategy,
		Seed:     cfg.Seed,
		Turns:    g.Turn() - 1,
		Approval: p.Approval,
		Treasury: p.Treasury,
		Leader:   p.LeaderParty,
		InPower:  g.InPower(),
		Treaties: len(g.Alliances()),
		Wars:     len(g.Wars()),
	}
	if startGDP > 0 {
		res.GDPChange = p.GDP/startGDP - 1
	}
	return res, nil
}

// StrategyStats aggregates the results of one strategy.
type StrategyStats struct {
	Strategy     string
	Games        int
	InPower      int
	AvgApproval  float64
	AvgGDPChange float64
	AvgTreaties  float64
	AvgWars      float64
}

// Summarize groups results by strategy in name order. Failed games (nil
// entries) are skipped.
func Summarize(results []*MatchResult) []StrategyStats {
	by := make(map[string]*StrategyStats)
	for _, r := range results {
		if r == nil {
			continue
		}
		s, ok := by[r.Strategy]
		if !ok {
			s = &StrategyStats{Strategy: r.Strategy}
			by[r.Strategy] = s
		}
		s.Games++
		if r.InPower {
			s.InPower++
		}
		s.AvgApproval += r.Approval
		s.AvgGDPChange += r.GDPChange
		s.AvgTreaties += float64(r.Treaties)
		s.AvgWars += float64(r.Wars)
	}

	out := make([]StrategyStats, 0, len(by))
	for _, s := range by {
		n := float64(s.Games)
		s.AvgApproval /= n
		s.AvgGDPChange /= n
		s.AvgTreaties /= n
		s.AvgWars /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Strategy < out[j].Strategy })
	return out
}
