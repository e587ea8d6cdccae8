package engine

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/freeeve/statecraft/pkg/statecraft"
)

// Costs of government actions (Md€).
const (
	TreatyCost       = 30.0
	TreatyTargetCost = 15.0
	MissionCost      = 20.0
	EspionageCost    = 25.0
	MaxMembershipFee = 500.0

	missionGain        = 10
	espionageOdds      = 0.6
	espionagePenalty   = 20
	censureCredibility = 0.95
	minTaxChange       = 0.0001
)

const msgOpposition = "❌ Action impossible depuis l'opposition."

// requireGovernment logs and reports false when the player is in opposition.
func (g *Game) requireGovernment() (*statecraft.Country, bool) {
	p := g.player()
	if p == nil {
		g.logf("❌ Aucune partie en cours.")
		return nil, false
	}
	if !g.inPower {
		g.logf(msgOpposition)
		return nil, false
	}
	return p, true
}

// foreign resolves a target country other than the player's.
func (g *Game) foreign(name string) *statecraft.Country {
	if name == g.playerCountry {
		g.logf("❌ Cible invalide : %s est votre propre pays.", name)
		return nil
	}
	t := g.world.Get(name)
	if t == nil {
		g.logf("❌ Pays inconnu : %s.", name)
	}
	return t
}

// AdjustTaxes applies every change above a hundredth of a point. An unknown
// tax kind rejects the whole request.
func (g *Game) AdjustTaxes(changes map[statecraft.TaxKind]float64) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	for k := range changes {
		if !k.Valid() {
			g.logf("❌ Impôt inconnu : %s.", k)
			return false
		}
	}
	for _, k := range statecraft.AllTaxKinds() {
		if delta, ok := changes[k]; ok && (delta > minTaxChange || delta < -minTaxChange) {
			p.AdjustTax(k, delta)
		}
	}
	g.logf("✅ Impôts mis à jour.")
	g.logf("Nouvelle opinion publique : %.1f%%", p.Approval*100)
	return true
}

// AdjustMembershipFee sets the player's party's yearly fee, 0 to 500 €.
func (g *Game) AdjustMembershipFee(fee float64) bool {
	party := g.playerPartyRef()
	if party == nil {
		return false
	}
	if fee < 0 || fee > MaxMembershipFee {
		g.logf("❌ Montant de cotisation invalide (doit être entre 0 et %.0f €).", MaxMembershipFee)
		return false
	}
	party.MembershipFee = fee
	g.logf("💰 La cotisation annuelle du parti a été fixée à %.2f €.", fee)
	return true
}

// ProposeTreaty signs a treaty with target. The player pays 30 Md€, the
// target 15, and both relations rise by the treaty strength.
func (g *Game) ProposeTreaty(kind statecraft.AllianceType, target string) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	if !kind.Valid() {
		g.logf("❌ Type de traité inconnu : %s.", kind)
		return false
	}
	t := g.foreign(target)
	if t == nil {
		return false
	}
	if p.Treasury < TreatyCost {
		g.logf("❌ Pas assez d'argent pour un traité (coût %.0f Md€).", TreatyCost)
		return false
	}

	p.Treasury -= TreatyCost
	t.Treasury -= TreatyTargetCost
	terms := kind.Terms()
	a := statecraft.CreateAlliance(&g.alliances, kind, []string{p.Name, t.Name}, terms.Duration, terms.Strength)
	statecraft.ImproveRelations(p, t, terms.Strength)
	g.logf("✍️ Traité signé (ID %d) : %s", a.ID, a.Name)
	return true
}

// SendDiplomaticMission pays 20 Md€ for a mission that succeeds with
// probability 0.5 + relation/200 and improves relations by 10 both ways.
func (g *Game) SendDiplomaticMission(target string) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	t := g.foreign(target)
	if t == nil {
		return false
	}
	if p.Treasury < MissionCost {
		g.logf("❌ Pas assez d'argent pour la mission (coût %.0f Md€).", MissionCost)
		return false
	}

	p.Treasury -= MissionCost
	if statecraft.Chance(g.rng, 0.5+float64(p.Relation(t.Name))/200) {
		statecraft.ImproveRelations(p, t, missionGain)
		g.logf("🤝 Mission réussie ! Relations améliorées avec %s (+%d).", t.Name, missionGain)
	} else {
		g.logf("Mission diplomatique échouée.")
	}
	return true
}

// Espionage pays 25 Md€ for an operation that succeeds 60% of the time.
// A discovered operation costs 20 points of the target's relation.
func (g *Game) Espionage(target string) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	t := g.foreign(target)
	if t == nil {
		return false
	}
	if p.Treasury < EspionageCost {
		g.logf("❌ Pas assez d'argent pour l'espionnage (coût %.0f Md€).", EspionageCost)
		return false
	}

	p.Treasury -= EspionageCost
	if statecraft.Chance(g.rng, espionageOdds) {
		p.EspionageSuccess++
		g.logf("🕶️ Espionnage réussi ! Infos sur %s : PIB %.1f Md€, population %s, opinion %.1f%%",
			t.Name, t.GDP, humanize.Comma(t.Population), t.Approval*100)
	} else {
		t.AdjustRelation(p.Name, -espionagePenalty)
		g.logf("⚠️ Espionnage découvert ! Relations avec %s diminuées (-%d).", t.Name, espionagePenalty)
	}
	return true
}

// DeclareWar opens a war against target with the current turn as its start.
func (g *Game) DeclareWar(target string) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	if g.foreign(target) == nil {
		return false
	}
	war, msg, err := statecraft.StartWar(g.world, g.alliances, &g.wars, p.Name, target, g.turn)
	if err != nil {
		g.logf("❌ Déclaration de guerre impossible : %v.", err)
		return false
	}
	g.logf("%s", msg)
	g.log.Info().
		Int("war", war.ID).
		Str("attacker", war.AttackerLeader).
		Str("defender", war.DefenderLeader).
		Strs("attackerAllies", war.AttackerAllies).
		Strs("defenderAllies", war.DefenderAllies).
		Msg("War declared")
	return true
}

// CampaignAction spends party funds on a campaign move while a campaign runs.
func (g *Game) CampaignAction(kind statecraft.CampaignAction) bool {
	p := g.player()
	if p == nil || !p.CampaignActive {
		g.logf("❌ Aucune campagne électorale en cours.")
		return false
	}
	party := p.Party(g.playerParty)
	if party == nil {
		return false
	}
	if !kind.Valid() {
		g.logf("❌ Action de campagne inconnue : %s.", kind)
		return false
	}
	if cost := kind.Cost(); cost > 0 {
		if party.Funds < cost {
			g.logf("❌ Fonds du parti insuffisants (coût : %.0f M€).", cost)
			return false
		}
		party.Funds -= cost
	}

	out := statecraft.RunCampaignAction(kind, p, party, g.rng)
	switch {
	case kind == statecraft.Rally:
		g.logf("🎤 Meeting organisé ! Le soutien pour %s augmente de %.2f%%.", party.Name, out.Delta*100)
	case kind == statecraft.Ads:
		g.logf("📺 Campagne publicitaire lancée ! Le soutien pour %s augmente de %.2f%%.", party.Name, out.Delta*100)
	case out.Success:
		g.logf("💬 Débat télévisé réussi ! Le soutien pour %s augmente de %.2f%%.", party.Name, out.Delta*100)
	default:
		g.logf("🤯 Débat télévisé raté ! Le soutien pour %s diminue de %.2f%%.", party.Name, -out.Delta*100)
	}
	return true
}

// OppositionAction runs an opposition move against the government.
func (g *Game) OppositionAction(kind statecraft.OppositionAction) bool {
	p := g.player()
	if p == nil || g.inPower {
		g.logf("❌ Cette action n'est disponible que pour l'opposition.")
		return false
	}
	party, gov := p.Party(g.playerParty), p.GoverningParty()
	if party == nil || gov == nil {
		return false
	}
	if !kind.Valid() {
		g.logf("❌ Action d'opposition inconnue : %s.", kind)
		return false
	}
	if cost := kind.Cost(); cost > 0 {
		if party.Funds < cost {
			g.logf("❌ Fonds du parti insuffisants (coût : %.0f M€).", cost)
			return false
		}
		party.Funds -= cost
	}

	out := statecraft.RunOppositionAction(kind, p, party, gov, g.rng)
	switch kind {
	case statecraft.Criticize:
		g.logf("🎤 Vous avez critiqué le gouvernement dans les médias. Leur soutien baisse légèrement.")
	case statecraft.Protest:
		if out.Success {
			g.logf("✊ Manifestation réussie ! La popularité du gouvernement chute de %.1f%%.", -out.Delta*100)
		} else {
			g.logf("Le mouvement de protestation a eu peu d'impact.")
		}
	case statecraft.Filibuster:
		if out.Success {
			g.logf("🏛️ Obstruction parlementaire réussie ! L'agenda législatif du gouvernement est ralenti.")
		} else {
			g.logf("L'obstruction parlementaire a échoué.")
		}
	}
	return true
}

// ProposeCensure tables a censure motion for 10 M€ of party funds. An
// adopted motion calls an election in 13 turns; a rejected one costs
// credibility.
func (g *Game) ProposeCensure() bool {
	p := g.player()
	if p == nil || g.inPower {
		g.logf("❌ Action réservée à l'opposition.")
		return false
	}
	party := p.Party(g.playerParty)
	if party == nil || party.Funds < statecraft.CensureCost {
		g.logf("❌ Fonds du parti insuffisants (coût : %.0f M€).", statecraft.CensureCost)
		return false
	}

	party.Funds -= statecraft.CensureCost
	if statecraft.CensureSucceeds(p, g.rng) {
		g.nextElectionTurn = g.turn + SnapElectionDelay
		g.logf("🔥 Motion de censure adoptée ! Des élections anticipées auront lieu dans %d semaines.", SnapElectionDelay)
	} else {
		party.Credibility *= censureCredibility
		g.logf("La motion de censure a été rejetée.")
	}
	return true
}

// AttemptCoalition tries to govern with the named partners. Any partner
// whose stances are incompatible with the player's party sinks the
// negotiation and the player concedes. Unknown names are ignored.
func (g *Game) AttemptCoalition(partners []string) bool {
	p := g.player()
	if p == nil || g.phase != PhaseCoalition {
		return false
	}
	party := p.Party(g.playerParty)
	if party == nil {
		return false
	}

	seats := p.Parliament.SeatsOf(party.Name)
	for _, name := range partners {
		partner := p.Party(name)
		if partner == nil || partner == party {
			continue
		}
		if statecraft.CoalitionCompatibility(party, partner) < 0 {
			g.logf("❌ Négociations échouées : '%s' refuse de s'allier avec vous en raison de divergences idéologiques trop importantes.", name)
			g.ConcedePower()
			return false
		}
		seats += p.Parliament.SeatsOf(name)
	}

	p.LeaderParty = party.Name
	g.inPower = true
	g.phase = PhaseRunning
	g.logf("✅ Négociations réussies ! Une coalition a été formée (%d sièges sur %d).", seats, p.Parliament.TotalSeats)
	g.log.Info().
		Strs("partners", partners).
		Int("seats", seats).
		Bool("majority", seats >= p.Parliament.Majority()).
		Msg("Coalition formed")
	return true
}

// ConcedePower gives up government formation; another party governs.
func (g *Game) ConcedePower() bool {
	p := g.player()
	if p == nil || g.phase != PhaseCoalition {
		return false
	}
	out := statecraft.FormCoalition(p, g.playerParty, true)
	g.logf("%s", out.Message)
	g.inPower = false
	g.phase = PhaseRunning
	return true
}

// ProposeLaw puts a catalogue law to a parliamentary vote and enacts it when
// it passes.
func (g *Game) ProposeLaw(id int) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	law, found := g.laws.ByID(id)
	if !found {
		g.logf("❌ Loi inconnue (ID %d).", id)
		return false
	}
	if p.HasLaw(id) {
		g.logf("❌ La loi '%s' est déjà en vigueur.", law.Name)
		return false
	}

	vote := statecraft.SimulateParliamentVote(p, law, g.rng)
	if !vote.Passed {
		g.logf("🏛️ La loi '%s' a été rejetée (%d pour, %d contre).", law.Name, vote.YesSeats, vote.NoSeats)
		return false
	}
	p.ApplyLaw(law)
	g.logf("🏛️ La loi '%s' a été adoptée (%d pour, %d contre).", law.Name, vote.YesSeats, vote.NoSeats)
	return true
}

// RepealLaw withdraws an enacted law and reverses its effect.
func (g *Game) RepealLaw(id int) bool {
	p, ok := g.requireGovernment()
	if !ok {
		return false
	}
	if !p.RemoveLaw(id) {
		g.logf("❌ Aucune loi en vigueur avec l'ID %d.", id)
		return false
	}
	name := fmt.Sprintf("ID %d", id)
	if law, found := g.laws.ByID(id); found {
		name = law.Name
	}
	g.logf("🗑️ La loi '%s' a été abrogée. Lois en vigueur : %s", name, strings.Join(p.LawNames(), ", "))
	return true
}
