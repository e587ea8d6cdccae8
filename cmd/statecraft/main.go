// Command statecraft runs a headless game session: it plays a scripted
// opening, advances a number of weeks and prints the turn log.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/statecraft/internal/bot"
	"github.com/freeeve/statecraft/internal/config"
	"github.com/freeeve/statecraft/internal/engine"
	"github.com/freeeve/statecraft/internal/logger"
	"github.com/freeeve/statecraft/internal/repository/backend"
	"github.com/freeeve/statecraft/internal/scenario"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

func main() {
	logger.Init()
	cfg := config.Load()

	var (
		turns       int
		party       string
		backendName string
		saveName    string
		loadName    string
		delName     string
		script      string
		listOnly    bool
	)
	flag.IntVar(&turns, "turns", 10, "Number of weeks to play")
	flag.StringVar(&party, "party", cfg.PlayerParty, "Party the player leads")
	flag.StringVar(&backendName, "backend", cfg.SaveBackend, "Save backend (file, sqlite, postgres, redis)")
	flag.StringVar(&saveName, "save", "", "Save slot to write after the last turn")
	flag.StringVar(&loadName, "load", "", "Save slot to resume instead of starting a new game")
	flag.StringVar(&delName, "delete", "", "Delete a save slot and exit")
	flag.StringVar(&script, "do", "", "Actions for the first turn (e.g. tax:revenu=-0.02;treaty:trade:Allemagne)")
	flag.BoolVar(&listOnly, "list", false, "List save slots and exit")
	flag.Parse()
	cfg.SaveBackend = backendName

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	actions, err := parseScript(script)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid action script")
	}

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SaveBackend).Msg("Save store unavailable")
	}
	defer store.Close()
	log.Info().Str("backend", cfg.SaveBackend).Msg("Save store ready")

	switch {
	case listOnly:
		if err := printSaves(ctx, store); err != nil {
			log.Fatal().Err(err).Msg("List saves failed")
		}
		return
	case delName != "":
		ok, err := store.Delete(ctx, delName)
		if err != nil {
			log.Fatal().Err(err).Str("save", delName).Msg("Delete failed")
		}
		if !ok {
			fmt.Printf("Aucune sauvegarde nommée '%s'.\n", delName)
			return
		}
		fmt.Printf("Sauvegarde '%s' supprimée.\n", delName)
		return
	}

	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ScenarioPath).Msg("Scenario load failed")
	}

	g := engine.New(engine.Options{
		Scenario: sc,
		Store:    store,
		Strategy: bot.StrategyForDifficulty(cfg.AIStrategy),
		Rand:     statecraft.NewRand(cfg.RNGSeed),
	})
	log.Info().
		Str("session", g.SessionID()).
		Str("strategy", cfg.AIStrategy).
		Int64("seed", cfg.RNGSeed).
		Msg("Session created")

	if loadName != "" {
		if !g.LoadGame(ctx, loadName) {
			flush(g)
			os.Exit(1)
		}
	} else {
		g.StartNewGame(party)
	}
	flush(g)

	for _, a := range actions {
		a.apply(g)
	}
	flush(g)

	for i := 0; i < turns && ctx.Err() == nil; i++ {
		if g.Phase() == engine.PhaseCoalition {
			negotiate(g)
		}
		g.AdvanceTurn()
		flush(g)
	}

	printSummary(g)

	if saveName != "" {
		g.SaveGame(ctx, saveName)
		flush(g)
	}
}

func flush(g *engine.Game) {
	for _, line := range g.GetAndClearLog() {
		fmt.Println(line)
	}
}

// negotiate courts every party whose stances are compatible with the
// player's and concedes when there is none.
func negotiate(g *engine.Game) {
	p := g.Player()
	if p == nil {
		return
	}
	own := p.Party(g.PlayerParty())
	var partners []string
	for _, other := range p.Parties {
		if other != own && own != nil && statecraft.CoalitionCompatibility(own, other) > 0 {
			partners = append(partners, other.Name)
		}
	}
	if len(partners) == 0 || !g.AttemptCoalition(partners) {
		g.ConcedePower()
	}
	flush(g)
}

func printSummary(g *engine.Game) {
	p := g.Player()
	if p == nil {
		return
	}
	role := "opposition"
	if g.InPower() {
		role = "gouvernement"
	}
	fmt.Printf("\n=== %s, semaine %d (%s) ===\n", p.Name, g.Turn(), g.CurrentDate().Format("02/01/2006"))
	fmt.Printf("Parti : %s (%s)\n", g.PlayerParty(), role)
	fmt.Printf("PIB : %s Md€ | Trésor : %s Md€ | Dette : %s Md€\n",
		humanize.CommafWithDigits(p.GDP, 1), humanize.CommafWithDigits(p.Treasury, 1), humanize.CommafWithDigits(p.Debt, 1))
	fmt.Printf("Opinion : %.1f%% | Chômage : %.1f%% | Inflation : %.2f%%\n",
		p.Approval*100, p.Unemployment*100, p.Inflation*100)
	fmt.Printf("Prochaine élection : semaine %d | Guerres en cours : %d\n", g.NextElectionTurn(), len(g.ActiveWars()))
}
