package statecraft

import (
	"errors"
	"fmt"
	"strings"
)

// WarStatus is the lifecycle state of a war.
type WarStatus string

const (
	WarActive   WarStatus = "active"
	WarFinished WarStatus = "finished"
)

// War thresholds.
const (
	DominanceEdge         = 0.2
	DecisiveStreak        = 5
	CapitulationWeariness = 0.8
	WearinessPerTurn      = 0.02
	LongWarTurns          = 26
	DefaultWarIntensity   = 0.5
	relationWarPenalty    = 50
)

var (
	ErrSelfWar       = errors.New("a country cannot declare war on itself")
	ErrAlreadyAtWar  = errors.New("already at war with target")
	ErrUnknownNation = errors.New("unknown country")
)

// War is a conflict between two camps. War weariness lives on Country.
type War struct {
	ID                     int       `json:"id"`
	AttackerLeader         string    `json:"attacker_leader"`
	DefenderLeader         string    `json:"defender_leader"`
	StartTurn              int       `json:"start_turn"`
	AttackerAllies         []string  `json:"attacker_allies"`
	DefenderAllies         []string  `json:"defender_allies"`
	Intensity              float64   `json:"intensity"`
	Status                 WarStatus `json:"status"`
	AttackerDominanceTurns int       `json:"attacker_dominance_turns"`
	DefenderDominanceTurns int       `json:"defender_dominance_turns"`
	Winner                 string    `json:"winner,omitempty"`
}

// AttackerCamp returns the attacker followed by its allies.
func (w *War) AttackerCamp() []string {
	return append([]string{w.AttackerLeader}, w.AttackerAllies...)
}

// DefenderCamp returns the defender followed by its allies.
func (w *War) DefenderCamp() []string {
	return append([]string{w.DefenderLeader}, w.DefenderAllies...)
}

// Participants returns every country on either side.
func (w *War) Participants() []string {
	return append(w.AttackerCamp(), w.DefenderCamp()...)
}

// ActiveWars filters wars still being fought.
func ActiveWars(wars []*War) []*War {
	var out []*War
	for _, w := range wars {
		if w.Status == WarActive {
			out = append(out, w)
		}
	}
	return out
}

// StartWar opens a war between attacker and defender. Each side is joined by
// its direct partners in active military alliances (one hop, not
// transitively). A country allied with both sides joins the defender only.
// The attacker loses 10 points of approval, the defender gains 5, and every
// cross-camp pair of countries takes a 50-point relation hit.
func StartWar(world *World, alliances []*Alliance, wars *[]*War, attacker, defender string, turn int) (*War, string, error) {
	a, d := world.Get(attacker), world.Get(defender)
	if a == nil || d == nil {
		return nil, "", ErrUnknownNation
	}
	if attacker == defender {
		return nil, "", ErrSelfWar
	}
	if a.IsAtWarWith(defender) {
		return nil, "", fmt.Errorf("%w: %s", ErrAlreadyAtWar, defender)
	}

	a.AtWarWith = append(a.AtWarWith, defender)
	d.AtWarWith = append(d.AtWarWith, attacker)

	defenderAllies := without(AlliesOf(alliances, defender, Military), attacker)
	attackerAllies := withoutAll(AlliesOf(alliances, attacker, Military), append([]string{defender}, defenderAllies...))

	id := 1
	for _, w := range *wars {
		if w.ID >= id {
			id = w.ID + 1
		}
	}
	war := &War{
		ID:             id,
		AttackerLeader: attacker,
		DefenderLeader: defender,
		StartTurn:      turn,
		AttackerAllies: attackerAllies,
		DefenderAllies: defenderAllies,
		Intensity:      DefaultWarIntensity,
		Status:         WarActive,
	}
	*wars = append(*wars, war)

	a.Approval -= 0.10
	d.Approval += 0.05
	a.ClampAll()
	d.ClampAll()

	for _, n1 := range war.AttackerCamp() {
		for _, n2 := range war.DefenderCamp() {
			c1, c2 := world.Get(n1), world.Get(n2)
			if c1 == nil || c2 == nil || c1 == c2 {
				continue
			}
			c1.AdjustRelation(n2, -relationWarPenalty)
			c2.AdjustRelation(n1, -relationWarPenalty)
		}
	}

	msg := fmt.Sprintf("%s a déclaré la guerre à %s !", attacker, defender)
	if len(attackerAllies) > 0 {
		msg += " Alliés de l'attaquant : " + strings.Join(attackerAllies, ", ") + "."
	}
	if len(defenderAllies) > 0 {
		msg += " Alliés du défenseur : " + strings.Join(defenderAllies, ", ") + "."
	}
	return war, msg, nil
}

// SimulateWarTurn fights one week of war. It updates dominance streaks,
// damages every belligerent and resolves the war when, in this order, the
// attacker capitulates, the defender capitulates, the attacker or the
// defender completes a decisive streak. It returns a narrative line.
func SimulateWarTurn(world *World, war *War, turn int, r Rand) string {
	if war.Status != WarActive {
		return ""
	}
	attackers := resolveAll(world, war.AttackerCamp())
	defenders := resolveAll(world, war.DefenderCamp())

	advantage := (campPower(attackers) - campPower(defenders)) /
		max(campPower(attackers), campPower(defenders), 1)

	var narrative string
	switch {
	case advantage > DominanceEdge:
		war.AttackerDominanceTurns++
		war.DefenderDominanceTurns = 0
		narrative = fmt.Sprintf("Les forces de %s prennent l'avantage.", war.AttackerLeader)
	case advantage < -DominanceEdge:
		war.DefenderDominanceTurns++
		war.AttackerDominanceTurns = 0
		narrative = fmt.Sprintf("Les forces de %s repoussent l'offensive.", war.DefenderLeader)
	default:
		war.AttackerDominanceTurns = 0
		war.DefenderDominanceTurns = 0
		narrative = "Le front est stable, la guerre d'usure continue."
	}

	for _, camp := range [][]*Country{attackers, defenders} {
		for _, c := range camp {
			c.GDP *= 1 - Uniform(r, 0.005, 0.02)*war.Intensity
			c.Treasury -= Uniform(r, 5, 20) * war.Intensity
			c.Unemployment += Uniform(r, 0.005, 0.01) * war.Intensity
			c.Approval -= Uniform(r, 0.01, 0.03) * war.Intensity
			c.WarWeariness += WearinessPerTurn
			c.ClampAll()
		}
	}

	attacker, defender := world.Get(war.AttackerLeader), world.Get(war.DefenderLeader)
	if attacker == nil || defender == nil {
		return narrative
	}
	switch {
	case capitulates(attacker):
		ResolveWar(world, war, defender, attacker, turn, r)
		return fmt.Sprintf("Capitulation de %s ! %s a gagné la guerre.", attacker.Name, defender.Name)
	case capitulates(defender):
		ResolveWar(world, war, attacker, defender, turn, r)
		return fmt.Sprintf("Capitulation de %s ! %s a gagné la guerre.", defender.Name, attacker.Name)
	case war.AttackerDominanceTurns >= DecisiveStreak:
		ResolveWar(world, war, attacker, defender, turn, r)
		return fmt.Sprintf("Victoire militaire décisive pour %s !", attacker.Name)
	case war.DefenderDominanceTurns >= DecisiveStreak:
		ResolveWar(world, war, defender, attacker, turn, r)
		return fmt.Sprintf("Victoire militaire décisive pour %s !", defender.Name)
	}
	return narrative
}

func capitulates(c *Country) bool {
	return c.WarWeariness > CapitulationWeariness || c.Treasury < 0
}

// ResolveWar ends the war. Every participant leaves the war list of the
// other camp and sheds its weariness. The loser pays 10–30% of its GDP in
// reparations, loses 20 points of approval, takes on debt worth 20% of GDP
// and 5 points of unemployment. The winner gains 10 points of approval after
// a short war and loses 5 after one lasting LongWarTurns or more.
func ResolveWar(world *World, war *War, winner, loser *Country, turn int, r Rand) {
	war.Status = WarFinished
	war.Winner = winner.Name

	attackerCamp, defenderCamp := war.AttackerCamp(), war.DefenderCamp()
	for _, name := range attackerCamp {
		if c := world.Get(name); c != nil {
			c.AtWarWith = withoutAll(c.AtWarWith, defenderCamp)
			c.WarWeariness = 0
		}
	}
	for _, name := range defenderCamp {
		if c := world.Get(name); c != nil {
			c.AtWarWith = withoutAll(c.AtWarWith, attackerCamp)
			c.WarWeariness = 0
		}
	}

	reparations := loser.GDP * Uniform(r, 0.10, 0.30)
	loser.Treasury -= reparations
	winner.Treasury += reparations

	loser.Approval -= 0.20
	loser.Debt += loser.GDP * 0.20
	loser.Unemployment += 0.05

	if turn-war.StartTurn < LongWarTurns {
		winner.Approval += 0.10
	} else {
		winner.Approval -= 0.05
	}

	winner.ClampAll()
	loser.ClampAll()
}

func campPower(camp []*Country) float64 {
	total := 0.0
	for _, c := range camp {
		total += c.MilitaryPower()
	}
	return total
}

func resolveAll(world *World, names []string) []*Country {
	var out []*Country
	for _, n := range names {
		if c := world.Get(n); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func without(names []string, drop string) []string {
	return withoutAll(names, []string{drop})
}

func withoutAll(names, drop []string) []string {
	out := names[:0:0]
	for _, n := range names {
		keep := true
		for _, d := range drop {
			if n == d {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, n)
		}
	}
	return out
}
