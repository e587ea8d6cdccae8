// Command botmatch plays many headless sessions in parallel and compares
// how each AI strategy steers the world.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/statecraft/internal/scenario"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		strategies string
		party      string
		numGames   int
		workers    int
		turns      int
		seed       int64
		jsonOut    bool
		quiet      bool
	)

	flag.StringVar(&strategies, "s", "random,diplomat,hold", "Comma-separated AI strategies to compare")
	flag.StringVar(&party, "party", "Renaissance", "Party the idle player leads")
	flag.IntVar(&numGames, "n", 4, "Games per strategy")
	flag.IntVar(&workers, "workers", 2, "Concurrency (parallel games)")
	flag.IntVar(&turns, "turns", 104, "Weeks per game")
	flag.Int64Var(&seed, "seed", 0, "Base seed (0 = random)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.BoolVar(&quiet, "q", false, "Only log warnings")

	flag.Parse()

	if quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	sc, err := scenario.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("Scenario load failed")
	}

	names := splitList(strategies)
	if len(names) == 0 || numGames < 1 || workers < 1 {
		log.Fatal().Msg("Need at least one strategy, one game and one worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	total := len(names) * numGames
	results := make([]*MatchResult, total)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < total; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			gameSeed := seed
			if seed != 0 {
				gameSeed = seed + int64(idx%numGames)
			}

			cfg := MatchConfig{
				Name:     fmt.Sprintf("%s-%d", names[idx/numGames], idx%numGames+1),
				Strategy: names[idx/numGames],
				Party:    party,
				Turns:    turns,
				Seed:     gameSeed,
			}

			result, err := RunMatch(ctx, sc, cfg)
			if err != nil {
				log.Error().Err(err).Str("game", cfg.Name).Msg("Game failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().
				Str("game", cfg.Name).
				Int("turns", result.Turns).
				Float64("approval", result.Approval).
				Int("wars", result.Wars).
				Msg("Game completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, total, errCount)
	} else {
		printSummary(Summarize(results), turns, errCount)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printSummary(rows []StrategyStats, turns, errCount int) {
	fmt.Printf("\nResults (%d weeks per game):\n", turns)
	if errCount > 0 {
		fmt.Printf("  (%d games failed)\n", errCount)
	}
	for _, s := range rows {
		fmt.Printf("  %-10s %d games  -- approval %.1f%%, GDP %+.2f%%, %.1f treaties, %.1f wars, player in power %d/%d\n",
			s.Strategy, s.Games, s.AvgApproval*100, s.AvgGDPChange*100, s.AvgTreaties, s.AvgWars, s.InPower, s.Games)
	}
}

func printJSON(results []*MatchResult, total, errCount int) {
	out := struct {
		Total   int            `json:"total"`
		Errors  int            `json:"errors"`
		Results []*MatchResult `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
