package statecraft

import "math"

// Party finance constants.
const (
	votingAgeShare      = 0.7
	baseMembershipRate  = 0.02
	freeFeeThreshold    = 50.0
	feePenaltySlope     = 5000.0
	membershipSmoothing = 0.02
	subsidyPerSeat      = 50000.0 // € per year
	baseExpense         = 0.1     // M€ per week
	expensePerSeat      = 0.005   // M€ per week
	financialUnit       = 1_000_000.0
)

// GovernmentWeakness scores how exposed the government is: low approval,
// unemployment above 7% and inflation above 3% all raise it.
func GovernmentWeakness(c *Country) float64 {
	return (0.5 - c.Approval) + (c.Unemployment-0.07)*2 + (c.Inflation-0.03)*2
}

// SimulateOppositionCampaign transfers support from the governing party to
// the opposition while a campaign is running. The governing party loses
// exactly what the others gain, floored at 0.
func SimulateOppositionCampaign(c *Country, r Rand) float64 {
	if !c.CampaignActive {
		return 0
	}
	weakness := GovernmentWeakness(c)
	total := 0.0
	for _, p := range c.Parties {
		if p.Name == c.LeaderParty {
			continue
		}
		gain := Uniform(r, 0.0005, 0.0015) + math.Max(0, weakness*Uniform(r, 0.005, 0.01))
		p.Support += gain
		total += gain
	}
	if gov := c.GoverningParty(); gov != nil {
		gov.Support = math.Max(0, gov.Support-total)
	}
	return total
}

// VoteResult is the tally of one parliamentary vote.
type VoteResult struct {
	YesSeats int
	NoSeats  int
	Passed   bool
}

// SimulateParliamentVote has every seated party vote as a bloc with
// probability 0.5 + 0.45 × its stance on the law's domain. The law passes on
// a strict majority of all seats.
func SimulateParliamentVote(c *Country, law Law, r Rand) VoteResult {
	var res VoteResult
	for _, name := range sortedKeys(c.Parliament.Seats) {
		seats := c.Parliament.Seats[name]
		p := c.Party(name)
		if p == nil {
			continue
		}
		if Chance(r, 0.5+0.45*p.Stance(law.Domain)) {
			res.YesSeats += seats
		} else {
			res.NoSeats += seats
		}
	}
	res.Passed = float64(res.YesSeats) > float64(c.Parliament.TotalSeats)/2
	return res
}

// CoalitionOutcome says who leads government formation.
type CoalitionOutcome struct {
	Leader           string
	PlayerInitiative bool
	Message          string
}

// FormCoalition hands negotiation to the plurality party. When that is the
// player's party and the player has not conceded, the player keeps the
// initiative. Otherwise the plurality party takes the government; once the
// player concedes, the largest of the other parties does.
func FormCoalition(c *Country, playerParty string, conceded bool) CoalitionOutcome {
	leader := c.Parliament.PluralityParty(c.Parties)
	if leader == playerParty && !conceded {
		return CoalitionOutcome{
			Leader:           leader,
			PlayerInitiative: true,
			Message:          "Vous avez la main pour former une coalition.",
		}
	}
	if leader == playerParty {
		if other := c.Parliament.PluralityParty(c.Parties, playerParty); other != "" {
			leader = other
		}
	}
	c.LeaderParty = leader
	return CoalitionOutcome{
		Leader:  leader,
		Message: "Le parti '" + leader + "' a formé une coalition et prend la tête du gouvernement.",
	}
}

// CoalitionCompatibility sums the products of the two parties' stances over
// the domains a holds a stance on.
func CoalitionCompatibility(a, b *PoliticalParty) float64 {
	total := 0.0
	for d, s := range a.Stances {
		total += s * b.Stance(d)
	}
	return total
}

// SimulatePartyEconomy books one week of party income and spending, then
// moves membership 2% of the way toward its target.
func SimulatePartyEconomy(c *Country) {
	voters := float64(c.Population) * votingAgeShare
	for _, p := range c.Parties {
		seats := float64(c.Parliament.SeatsOf(p.Name))
		feeIncome := float64(p.MembersCount) * p.MembershipFee / 52 / financialUnit
		subsidy := seats * subsidyPerSeat / 52 / financialUnit
		p.Expenses = baseExpense + seats*expensePerSeat

		p.Funds = math.Max(0, p.Funds+feeIncome+subsidy-p.Expenses)

		penalty := math.Max(0, (p.MembershipFee-freeFeeThreshold)/feePenaltySlope)
		target := voters * p.Support * (baseMembershipRate - penalty)
		p.MembersCount = int(float64(p.MembersCount)*(1-membershipSmoothing) + target*membershipSmoothing)
		if p.MembersCount < 0 {
			p.MembersCount = 0
		}
	}
}
