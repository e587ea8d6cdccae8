package engine

import (
	"github.com/freeeve/statecraft/internal/bot"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

// Alert thresholds for the player nation.
const (
	recessionGrowth = -0.001
	highInflation   = 0.05
)

// AdvanceTurn runs one week: campaign check, election, opposition campaign,
// AI countries, party economy and opposition AI, budgets and growth, wars,
// random events, then alliances and relations. It does nothing while a
// coalition is being negotiated.
func (g *Game) AdvanceTurn() {
	p := g.player()
	if g.world.Len() == 0 || p == nil {
		g.log.Warn().Msg("Advance turn without a game")
		g.logf("❌ Aucune partie en cours.")
		return
	}
	if g.phase == PhaseCoalition {
		g.logf("⌛ En attente de la formation d'un gouvernement.")
		return
	}

	if g.nextElectionTurn-g.turn <= g.campaignPeriod {
		if !p.CampaignActive {
			g.logf("📣 La période de campagne électorale a commencé !")
			p.CampaignActive = true
		}
	} else {
		p.CampaignActive = false
	}

	if g.turn >= g.nextElectionTurn {
		g.runElection(p)
	}

	if p.CampaignActive {
		statecraft.SimulateOppositionCampaign(p, g.rng)
	}

	g.runAITurns()

	statecraft.SimulatePartyEconomy(p)
	bot.OppositionTurn(p, g.rng)

	g.logf("\n=== Fin du tour ===")

	for _, c := range g.world.Countries() {
		statecraft.ComputeBudget(c)
	}
	statecraft.SimulateGrowth(g.world.Countries(), g.rng)

	g.runWars()
	g.runEvents(p)

	if p.Growth < recessionGrowth {
		g.logf("⚠️ ALERTE : L'économie de %s est en récession (Croissance : %.2f%%)", p.Name, p.Growth*100)
	}
	if p.Inflation > highInflation {
		g.logf("🔥 ALERTE : L'inflation est élevée (%.2f%%)", p.Inflation*100)
	}

	statecraft.TickAlliances(g.alliances)
	statecraft.UpdateRelations(g.world, g.alliances, g.rng)

	g.turn++
	g.history.Record(p)

	g.log.Debug().
		Int("turn", g.turn).
		Float64("approval", p.Approval).
		Float64("gdp", p.GDP).
		Int("activeWars", len(g.ActiveWars())).
		Msg("Turn advanced")
}

// runElection holds the scheduled election. Without an absolute majority the
// plurality party forms a coalition; when that party is the player's, the
// game pauses for negotiation.
func (g *Game) runElection(p *statecraft.Country) {
	g.logf("\n--- 🗳️ ÉLECTION 🗳️ ---")
	res := statecraft.SimulateElection(p, g.playerParty, false)
	for _, line := range res.Log {
		g.logf("%s", line)
	}

	leaderSeats := p.Parliament.SeatsOf(p.LeaderParty)
	if float64(leaderSeats) < float64(p.Parliament.TotalSeats)/2 {
		g.logf("\nAucun parti n'a la majorité absolue. Début des négociations de coalition...")
		out := statecraft.FormCoalition(p, g.playerParty, false)
		g.logf("%s", out.Message)
		if out.PlayerInitiative {
			g.phase = PhaseCoalition
		} else {
			g.inPower = false
		}
	} else {
		g.inPower = res.PlayerWon
	}

	if !g.inPower && g.phase == PhaseRunning {
		g.logf("\nVotre parti est dans l'opposition.")
	}

	p.CampaignActive = false
	g.nextElectionTurn += ElectionInterval

	g.log.Info().
		Str("leader", p.LeaderParty).
		Int("leaderSeats", leaderSeats).
		Bool("inPower", g.inPower).
		Str("phase", string(g.phase)).
		Msg("Election held")
}

// runAITurns plays every non-player country. A failing strategy is logged
// and skipped.
func (g *Game) runAITurns() {
	for _, c := range g.world.Countries() {
		if c.Name == g.playerCountry {
			continue
		}
		d, err := bot.SafeTurn(g.strategy, bot.Turn{
			Country:   c,
			World:     g.world,
			Alliances: &g.alliances,
			Rand:      g.rng,
		})
		if err != nil {
			g.log.Warn().Err(err).Str("country", c.Name).Msg("AI turn failed")
			continue
		}
		if d.Alliance != nil {
			g.logf("🤝 %s : nouveau traité (ID %d) %s", c.Name, d.Alliance.ID, d.Alliance.Name)
		}
	}
}

func (g *Game) runWars() {
	for _, war := range g.wars {
		if war.Status != statecraft.WarActive {
			continue
		}
		line := statecraft.SimulateWarTurn(g.world, war, g.turn, g.rng)
		g.logf("\n--- ⚔️ Conflit : %s vs %s ⚔️ ---\n%s", war.AttackerLeader, war.DefenderLeader, line)
		if war.Status == statecraft.WarFinished {
			g.log.Info().
				Int("war", war.ID).
				Str("winner", war.Winner).
				Int("turns", g.turn-war.StartTurn).
				Msg("War resolved")
		}
	}
}

func (g *Game) runEvents(p *statecraft.Country) {
	if statecraft.Chance(g.rng, statecraft.WorldEventChance) {
		if ev, ok := statecraft.TriggerWorldEvent(g.world, g.rng); ok {
			g.logf("\n--- 📰 ÉVÉNEMENT 📰 ---\n%s", ev.Message)
		}
	}
	if statecraft.Chance(g.rng, statecraft.PoliticalEventChance) {
		if ev, ok := statecraft.TriggerPartyScandal(p, g.rng); ok {
			g.logf("\n--- 🏛️ VIE POLITIQUE 🏛️ ---\n%s", ev.Message)
		}
	}
}
