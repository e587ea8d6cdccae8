// Package engine runs a game session: it owns the world, sequences the
// simulation subsystems every turn and exposes the player's actions.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freeeve/statecraft/internal/bot"
	"github.com/freeeve/statecraft/internal/logger"
	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
	"github.com/freeeve/statecraft/internal/scenario"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

var (
	ErrNoGame          = errors.New("no game in progress")
	ErrNoStore         = errors.New("no save store configured")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// Phase is the global game phase.
type Phase string

const (
	PhaseRunning   Phase = "RUNNING"
	PhaseCoalition Phase = "COALITION_NEGOTIATION"
)

// Calendar of the legislature, in turns (weeks).
const (
	ElectionInterval  = 260
	CampaignPeriod    = 26
	SnapElectionDelay = 13
)

// DefaultParty is the party the player leads when none is chosen.
const DefaultParty = "Renaissance"

// Options configures a Game. Zero values get defaults.
type Options struct {
	Scenario  *scenario.Scenario
	Store     repository.SaveStore
	Strategy  bot.Strategy
	Rand      statecraft.Rand
	SessionID string
	Now       func() time.Time
}

// Game is one single-player session. It is not safe for concurrent use; a
// turn runs to completion before any other call.
type Game struct {
	turn             int
	startDate        time.Time
	world            *statecraft.World
	alliances        []*statecraft.Alliance
	wars             []*statecraft.War
	laws             statecraft.LawBook
	playerCountry    string
	playerParty      string
	inPower          bool
	phase            Phase
	nextElectionTurn int
	campaignPeriod   int
	history          model.History
	messages         []string

	scenario  *scenario.Scenario
	store     repository.SaveStore
	strategy  bot.Strategy
	rng       statecraft.Rand
	sessionID string
	now       func() time.Time
	log       zerolog.Logger
}

// New creates an idle Game. Call StartNewGame or LoadGame before playing.
func New(opts Options) *Game {
	g := &Game{
		turn:             1,
		startDate:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		world:            &statecraft.World{},
		playerParty:      DefaultParty,
		inPower:          true,
		phase:            PhaseRunning,
		nextElectionTurn: ElectionInterval,
		campaignPeriod:   CampaignPeriod,
		scenario:         opts.Scenario,
		store:            opts.Store,
		strategy:         opts.Strategy,
		rng:              opts.Rand,
		sessionID:        opts.SessionID,
		now:              opts.Now,
	}
	if g.sessionID == "" {
		g.sessionID = logger.NewSessionID()
	}
	g.log = logger.ForSession(g.sessionID)
	if g.rng == nil {
		g.rng = statecraft.NewRand(0)
	}
	if g.strategy == nil {
		g.strategy = bot.RandomStrategy{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// StartNewGame builds a fresh world from the scenario with the player leading
// party, runs the seeding election and returns its results. A broken
// scenario leaves the world empty.
func (g *Game) StartNewGame(party string) []string {
	if party == "" {
		party = DefaultParty
	}
	sc := g.scenario
	if sc == nil {
		var err error
		if sc, err = scenario.Default(); err != nil {
			g.log.Error().Err(err).Msg("Failed to load default scenario")
			g.world = &statecraft.World{}
			return nil
		}
	}
	world, err := sc.BuildWorld()
	if err == nil && world.Len() == 0 {
		err = scenario.ErrNoCountries
	}
	if err != nil {
		g.log.Error().Err(err).Msg("Failed to build world")
		g.world = &statecraft.World{}
		return nil
	}

	g.world = world
	g.alliances = nil
	g.wars = nil
	g.laws = sc.Laws
	g.startDate = sc.Start()
	g.turn = 1
	g.phase = PhaseRunning
	g.campaignPeriod = CampaignPeriod
	g.nextElectionTurn = g.campaignPeriod

	p := g.world.Countries()[0]
	g.playerCountry = p.Name
	if len(p.Parties) > 0 && p.Party(party) == nil {
		g.logf("Parti '%s' inconnu, vous dirigez '%s'.", party, p.Parties[0].Name)
		party = p.Parties[0].Name
	}
	g.playerParty = party
	p.LeaderParty = party

	g.history = model.History{}
	g.history.Record(p)

	res := statecraft.SimulateElection(p, g.playerParty, true)
	g.inPower = res.PlayerWon

	g.logf("\n--- Début de la législature ---")
	for _, line := range res.Log {
		g.logf("%s", line)
	}
	if g.inPower {
		g.logf("\nVotre parti a remporté les élections ! Vous êtes à la tête du gouvernement.")
	} else {
		g.logf("\nVotre parti est dans l'opposition. Le parti '%s' forme le gouvernement.", p.LeaderParty)
	}

	g.log.Info().
		Str("country", p.Name).
		Str("party", g.playerParty).
		Bool("inPower", g.inPower).
		Int("countries", g.world.Len()).
		Msg("New game started")
	return res.Log
}

// CurrentDate returns the calendar date of the current turn.
func (g *Game) CurrentDate() time.Time {
	return g.startDate.AddDate(0, 0, 7*(g.turn-1))
}

// GetAndClearLog drains the turn log.
func (g *Game) GetAndClearLog() []string {
	out := g.messages
	g.messages = nil
	if out == nil {
		return []string{}
	}
	return out
}

func (g *Game) logf(format string, args ...any) {
	g.messages = append(g.messages, fmt.Sprintf(format, args...))
}

// player re-resolves the player nation through the world on every call.
func (g *Game) player() *statecraft.Country {
	return g.world.Get(g.playerCountry)
}

func (g *Game) playerPartyRef() *statecraft.PoliticalParty {
	p := g.player()
	if p == nil {
		return nil
	}
	return p.Party(g.playerParty)
}

// Read-only views for presentation layers.
func (g *Game) Turn() int                         { return g.turn }
func (g *Game) World() *statecraft.World          { return g.world }
func (g *Game) Player() *statecraft.Country       { return g.player() }
func (g *Game) PlayerParty() string               { return g.playerParty }
func (g *Game) InPower() bool                     { return g.inPower }
func (g *Game) Phase() Phase                      { return g.phase }
func (g *Game) NextElectionTurn() int             { return g.nextElectionTurn }
func (g *Game) Alliances() []*statecraft.Alliance { return g.alliances }
func (g *Game) Wars() []*statecraft.War           { return g.wars }
func (g *Game) ActiveWars() []*statecraft.War     { return statecraft.ActiveWars(g.wars) }
func (g *Game) Laws() statecraft.LawBook          { return g.laws }
func (g *Game) History() model.History            { return g.history }
func (g *Game) SessionID() string                 { return g.sessionID }
