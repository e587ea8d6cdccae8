package statecraft

import "testing"

func threePartyCountry() *Country {
	c := NewCountry("X")
	c.Parties = []*PoliticalParty{
		NewParty("A", "Centre", 0.40, map[Domain]float64{DomainSocial: 0.2, DomainBusiness: 0.7}),
		NewParty("B", "Droite", 0.35, map[Domain]float64{DomainSocial: -0.6, DomainBusiness: 0.8}),
		NewParty("C", "Gauche", 0.25, map[Domain]float64{DomainSocial: 0.9, DomainBusiness: -0.8}),
	}
	c.Parliament.Seats = map[string]int{"A": 250, "B": 200, "C": 127}
	c.LeaderParty = "A"
	return c
}

func TestParliamentVoteOdds(t *testing.T) {
	c := NewCountry("X")
	c.Parties = []*PoliticalParty{NewParty("Bloc", "", 1, map[Domain]float64{DomainSocial: 1})}
	c.Parliament.Seats = map[string]int{"Bloc": DefaultTotalSeats}
	law := Law{ID: 1, Domain: DomainSocial}

	r := NewRand(42)
	passed := 0
	for range 10000 {
		if SimulateParliamentVote(c, law, r).Passed {
			passed++
		}
	}
	if passed < 9350 || passed > 9650 {
		t.Fatalf("law passed %d times out of 10000, want about 9500", passed)
	}
}

func TestParliamentVoteNeedsStrictMajority(t *testing.T) {
	c := NewCountry("X")
	c.Parties = []*PoliticalParty{NewParty("A", "", 0.5, nil), NewParty("B", "", 0.5, nil)}
	c.Parliament = Parliament{TotalSeats: 4, Seats: map[string]int{"A": 2, "B": 2}}
	// B's stance pushes its odds below zero
	c.Parties[1].Stances[DomainFiscal] = -1.2
	res := SimulateParliamentVote(c, Law{Domain: DomainFiscal}, constRand(0.1))
	if res.YesSeats != 2 || res.NoSeats != 2 || res.Passed {
		t.Fatalf("vote %+v", res)
	}
}

func TestFormCoalition(t *testing.T) {
	t.Run("player holds plurality", func(t *testing.T) {
		c := threePartyCountry()
		out := FormCoalition(c, "A", false)
		if !out.PlayerInitiative || out.Leader != "A" {
			t.Fatalf("outcome %+v", out)
		}
	})
	t.Run("another party holds plurality", func(t *testing.T) {
		c := threePartyCountry()
		out := FormCoalition(c, "C", false)
		if out.PlayerInitiative || c.LeaderParty != "A" {
			t.Fatalf("outcome %+v, leader %s", out, c.LeaderParty)
		}
	})
	t.Run("player concedes", func(t *testing.T) {
		c := threePartyCountry()
		out := FormCoalition(c, "A", true)
		if out.PlayerInitiative || out.Leader != "B" || c.LeaderParty != "B" {
			t.Fatalf("outcome %+v, leader %s", out, c.LeaderParty)
		}
	})
}

func TestPluralityParty(t *testing.T) {
	c := threePartyCountry()
	if got := c.Parliament.PluralityParty(c.Parties); got != "A" {
		t.Fatalf("plurality = %q", got)
	}
	if got := c.Parliament.PluralityParty(c.Parties, "A", "B"); got != "C" {
		t.Fatalf("plurality excluding A and B = %q", got)
	}
	c.Parliament.Seats["B"] = 250
	if got := c.Parliament.PluralityParty(c.Parties); got != "A" {
		t.Fatalf("tie should go to the first party, got %q", got)
	}
	if c.Parliament.Majority() != 289 {
		t.Fatalf("majority = %d", c.Parliament.Majority())
	}
}

func TestCoalitionCompatibility(t *testing.T) {
	c := threePartyCountry()
	a, b, cc := c.Parties[0], c.Parties[1], c.Parties[2]
	if got := CoalitionCompatibility(a, b); !near(got, 0.2*-0.6+0.7*0.8) {
		t.Fatalf("A/B = %v", got)
	}
	if CoalitionCompatibility(b, cc) >= 0 {
		t.Fatal("B and C should be incompatible")
	}
}

func TestOppositionCampaignConservesSupport(t *testing.T) {
	c := threePartyCountry()
	c.CampaignActive = true
	c.Approval, c.Unemployment, c.Inflation = 0.3, 0.1, 0.04
	before := 0.0
	for _, p := range c.Parties {
		before += p.Support
	}

	moved := SimulateOppositionCampaign(c, NewRand(5))

	after := 0.0
	for _, p := range c.Parties {
		after += p.Support
	}
	if moved <= 0 || !near(before, after) {
		t.Fatalf("moved %v, support %v -> %v", moved, before, after)
	}

	c.CampaignActive = false
	if SimulateOppositionCampaign(c, NewRand(5)) != 0 {
		t.Fatal("no transfer outside a campaign")
	}
}

func TestPartyEconomy(t *testing.T) {
	c := threePartyCountry()
	c.Population = 1_000_000
	a := c.Party("A")
	funds := a.Funds

	SimulatePartyEconomy(c)

	income := 50000*50.0/52/1e6 + 250*50000.0/52/1e6
	wantExpenses := 0.1 + 250*0.005
	if !near(a.Expenses, wantExpenses) || !near(a.Funds, funds+income-wantExpenses) {
		t.Fatalf("expenses %v, funds %v", a.Expenses, a.Funds)
	}
	// target membership is 700k × 0.4 × 0.02 = 5600, 2% of the way from 50000
	if a.MembersCount != int(50000*0.98+5600*0.02) {
		t.Fatalf("members = %d", a.MembersCount)
	}
}

func TestPartyFundsNeverNegative(t *testing.T) {
	c := threePartyCountry()
	for _, p := range c.Parties {
		p.Funds, p.MembersCount, p.MembershipFee = 0, 0, 0
	}
	c.Parliament.Seats = map[string]int{}
	SimulatePartyEconomy(c)
	for _, p := range c.Parties {
		if p.Funds < 0 {
			t.Fatalf("%s funds = %v", p.Name, p.Funds)
		}
	}
}

func TestCensureOdds(t *testing.T) {
	c := NewCountry("X")
	c.Approval = 1
	if CensureSucceeds(c, constRand(0)) {
		t.Fatal("a fully approved government cannot be censured")
	}
	c.Approval = 0
	if !CensureSucceeds(c, constRand(0.29)) || CensureSucceeds(c, constRand(0.31)) {
		t.Fatal("censure odds should be 0.3 at zero approval")
	}
}
