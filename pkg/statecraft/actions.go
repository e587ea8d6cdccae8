package statecraft

import "math"

// CampaignAction is a move available to the player's party during a campaign.
type CampaignAction string

const (
	Rally  CampaignAction = "rally"
	Ads    CampaignAction = "ads"
	Debate CampaignAction = "debate"
)

// Cost returns the party funds (M€) the action consumes.
func (a CampaignAction) Cost() float64 {
	switch a {
	case Rally:
		return 2
	case Ads:
		return 10
	}
	return 0
}

// Valid reports whether a is a known campaign action.
func (a CampaignAction) Valid() bool {
	return a == Rally || a == Ads || a == Debate
}

// ActionOutcome reports what a party action did.
type ActionOutcome struct {
	Success bool
	Delta   float64 // support or approval moved, signed
}

// RunCampaignAction applies a campaign action's effect to the party. The
// caller has already charged Cost. Debate succeeds with probability
// 0.4 + 0.5 × approval and costs support when it fails.
func RunCampaignAction(a CampaignAction, c *Country, p *PoliticalParty, r Rand) ActionOutcome {
	switch a {
	case Rally:
		return ActionOutcome{Success: true, Delta: shiftSupport(p, Uniform(r, 0.005, 0.01))}
	case Ads:
		return ActionOutcome{Success: true, Delta: shiftSupport(p, Uniform(r, 0.01, 0.03))}
	case Debate:
		if Chance(r, 0.4+c.Approval*0.5) {
			return ActionOutcome{Success: true, Delta: shiftSupport(p, Uniform(r, 0.02, 0.05))}
		}
		return ActionOutcome{Delta: shiftSupport(p, -Uniform(r, 0.01, 0.03))}
	}
	return ActionOutcome{}
}

// shiftSupport moves p's support by delta within [0, 1] and returns the
// change actually applied.
func shiftSupport(p *PoliticalParty, delta float64) float64 {
	before := p.Support
	p.Support = math.Min(1, math.Max(0, before+delta))
	return p.Support - before
}

// OppositionAction is a move available to the player's party in opposition.
type OppositionAction string

const (
	Criticize  OppositionAction = "criticize"
	Protest    OppositionAction = "protest"
	Filibuster OppositionAction = "filibuster"
)

// Cost returns the party funds (M€) the action consumes.
func (a OppositionAction) Cost() float64 {
	if a == Protest {
		return 5
	}
	return 0
}

// Valid reports whether a is a known opposition action.
func (a OppositionAction) Valid() bool {
	return a == Criticize || a == Protest || a == Filibuster
}

// RunOppositionAction applies an opposition action. Criticism always shaves a
// little support off the government. A protest succeeds with probability
// support + (0.5 − approval) and costs the government approval. A filibuster
// succeeds with probability half the player's seat share.
func RunOppositionAction(a OppositionAction, c *Country, player, gov *PoliticalParty, r Rand) ActionOutcome {
	switch a {
	case Criticize:
		before := gov.Support
		gov.Support = max(0, gov.Support-0.005)
		player.Support += 0.002
		return ActionOutcome{Success: true, Delta: gov.Support - before}
	case Protest:
		if Chance(r, player.Support+(0.5-c.Approval)) {
			loss := Uniform(r, 0.02, 0.05)
			c.Approval -= loss
			c.ClampAll()
			return ActionOutcome{Success: true, Delta: -loss}
		}
		return ActionOutcome{}
	case Filibuster:
		share := 0.0
		if c.Parliament.TotalSeats > 0 {
			share = float64(c.Parliament.SeatsOf(player.Name)) / float64(c.Parliament.TotalSeats)
		}
		return ActionOutcome{Success: Chance(r, share*0.5)}
	}
	return ActionOutcome{}
}

// CensureCost is the party funds (M€) a censure motion consumes.
const CensureCost = 10.0

// CensureSucceeds draws whether a censure motion is adopted; the odds are
// 0.3 × disapproval.
func CensureSucceeds(c *Country, r Rand) bool {
	return Chance(r, (1-c.Approval)*0.3)
}
