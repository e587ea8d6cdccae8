// Package bot drives the countries and parties the player does not control.
package bot

import (
	"github.com/rs/zerolog/log"

	"github.com/freeeve/statecraft/pkg/statecraft"
)

// Move is one kind of AI action.
type Move string

const (
	MoveNone      Move = "none"
	MoveAdjustTax Move = "adjust_tax"
	MoveTreaty    Move = "propose_treaty"
	MoveMission   Move = "diplomatic_mission"
)

// AI action costs (Md€).
const (
	TreatyCost        = 30.0
	TreatyTargetCost  = 15.0
	MissionCost       = 20.0
	MissionGain       = 10
	minTreatyRelation = -20
)

// Decision records what a strategy did on its turn.
type Decision struct {
	Move     Move
	Target   string
	Success  bool
	Alliance *statecraft.Alliance
}

// Turn is what a strategy may read and change on one country's turn.
type Turn struct {
	Country   *statecraft.Country
	World     *statecraft.World
	Alliances *[]*statecraft.Alliance
	Rand      statecraft.Rand
}

// Strategy plays one non-player country's weekly turn.
type Strategy interface {
	Name() string
	TakeTurn(t Turn) Decision
}

// StrategyForDifficulty returns the strategy registered under name.
func StrategyForDifficulty(name string) Strategy {
	switch name {
	case "hold":
		return HoldStrategy{}
	case "diplomat":
		return DiplomatStrategy{}
	case "random", "":
		return RandomStrategy{}
	default:
		log.Warn().Str("strategy", name).Msg("Unknown AI strategy, using random")
		return RandomStrategy{}
	}
}

// --- HoldStrategy ---

// HoldStrategy does nothing.
type HoldStrategy struct{}

func (HoldStrategy) Name() string { return "hold" }

func (HoldStrategy) TakeTurn(Turn) Decision { return Decision{Move: MoveNone} }

// --- RandomStrategy ---

// RandomStrategy picks uniformly among a tax tweak, a treaty and a
// diplomatic mission aimed at a random other country.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return "random" }

var randomMoves = []Move{MoveAdjustTax, MoveTreaty, MoveMission}

// The AI never touches property tax.
var aiTaxKinds = []statecraft.TaxKind{
	statecraft.IncomeTax, statecraft.CorporateTax, statecraft.VATTax,
	statecraft.SocialTax, statecraft.ProductionTax,
}

func (RandomStrategy) TakeTurn(t Turn) Decision {
	move := statecraft.Pick(t.Rand, randomMoves)
	others := t.World.Others(t.Country.Name)
	if len(others) == 0 {
		return Decision{Move: MoveNone}
	}
	target := statecraft.Pick(t.Rand, others)

	switch move {
	case MoveAdjustTax:
		kind := statecraft.Pick(t.Rand, aiTaxKinds)
		delta := statecraft.Pick(t.Rand, []float64{0.01, -0.01})
		t.Country.AdjustTax(kind, delta)
		return Decision{Move: move, Success: true}
	case MoveTreaty:
		kind := statecraft.Pick(t.Rand, statecraft.AllAllianceTypes())
		return signTreaty(t, target, kind)
	default:
		return sendMission(t, target)
	}
}

// --- DiplomatStrategy ---

// DiplomatStrategy courts the country it gets on with best: a treaty when it
// can afford one, otherwise a mission.
type DiplomatStrategy struct{}

func (DiplomatStrategy) Name() string { return "diplomat" }

func (DiplomatStrategy) TakeTurn(t Turn) Decision {
	var best *statecraft.Country
	for _, o := range t.World.Others(t.Country.Name) {
		if t.Country.IsAtWarWith(o.Name) {
			continue
		}
		if best == nil || t.Country.Relation(o.Name) > t.Country.Relation(best.Name) {
			best = o
		}
	}
	if best == nil {
		return Decision{Move: MoveNone}
	}
	if t.Country.Treasury >= TreatyCost && t.Country.Relation(best.Name) > minTreatyRelation {
		return signTreaty(t, best, statecraft.Trade)
	}
	return sendMission(t, best)
}

// signTreaty charges both parties and creates the alliance when the
// signatory can pay and relations are not hostile.
func signTreaty(t Turn, target *statecraft.Country, kind statecraft.AllianceType) Decision {
	d := Decision{Move: MoveTreaty, Target: target.Name}
	if t.Country.Treasury < TreatyCost || t.Country.Relation(target.Name) <= minTreatyRelation {
		return d
	}
	terms := kind.Terms()
	t.Country.Treasury -= TreatyCost
	target.Treasury -= TreatyTargetCost
	d.Alliance = statecraft.CreateAlliance(t.Alliances, kind,
		[]string{t.Country.Name, target.Name}, terms.Duration, terms.Strength)
	statecraft.ImproveRelations(t.Country, target, terms.Strength)
	d.Success = true
	return d
}

// sendMission pays for a mission that succeeds with probability
// 0.5 + relation/200 and then improves relations both ways.
func sendMission(t Turn, target *statecraft.Country) Decision {
	d := Decision{Move: MoveMission, Target: target.Name}
	if t.Country.Treasury < MissionCost {
		return d
	}
	t.Country.Treasury -= MissionCost
	if statecraft.Chance(t.Rand, 0.5+float64(t.Country.Relation(target.Name))/200) {
		statecraft.ImproveRelations(t.Country, target, MissionGain)
		d.Success = true
	}
	return d
}
