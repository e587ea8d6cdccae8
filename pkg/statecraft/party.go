package statecraft

import "slices"

// DefaultTotalSeats is the size of the reference assembly.
const DefaultTotalSeats = 577

// Domain is a policy area. Laws belong to one; parties hold a stance on each.
type Domain string

const (
	DomainSocial        Domain = "Social"
	DomainFiscal        Domain = "Fiscalité"
	DomainMacroeconomic Domain = "Macroéconomie"
	DomainBusiness      Domain = "Entreprise"
	DomainGeneral       Domain = "Général"
)

// PoliticalParty is a party competing for seats in one country.
// Support values across a country's parties sum to 1 only right after an
// election.
type PoliticalParty struct {
	Name          string             `json:"name" yaml:"name"`
	Ideology      string             `json:"ideology" yaml:"ideology"`
	Support       float64            `json:"support" yaml:"support"`
	Funds         float64            `json:"funds" yaml:"funds"` // M€
	Cohesion      float64            `json:"cohesion" yaml:"cohesion"`
	Credibility   float64            `json:"credibility" yaml:"credibility"`
	ScandalCount  int                `json:"scandal_count" yaml:"scandal_count"`
	MembersCount  int                `json:"members_count" yaml:"members_count"`
	MembershipFee float64            `json:"membership_fee" yaml:"membership_fee"` // € per year
	Expenses      float64            `json:"expenses" yaml:"expenses"`             // M€ per week
	Stances       map[Domain]float64 `json:"stances" yaml:"stances"`
}

// NewParty returns a party with the reference defaults for its finances.
func NewParty(name, ideology string, support float64, stances map[Domain]float64) *PoliticalParty {
	if stances == nil {
		stances = make(map[Domain]float64)
	}
	return &PoliticalParty{
		Name:          name,
		Ideology:      ideology,
		Support:       support,
		Funds:         10.0,
		Cohesion:      1.0,
		Credibility:   0.7,
		MembersCount:  50000,
		MembershipFee: 50.0,
		Expenses:      0.5,
		Stances:       stances,
	}
}

// Stance returns the party's position on d, 0 when it has none.
func (p *PoliticalParty) Stance(d Domain) float64 {
	return p.Stances[d]
}

// Parliament is the composition of a country's assembly.
type Parliament struct {
	TotalSeats int            `json:"total_seats"`
	Seats      map[string]int `json:"seats_distribution"`
}

// NewParliament returns an empty assembly of DefaultTotalSeats.
func NewParliament() Parliament {
	return Parliament{TotalSeats: DefaultTotalSeats, Seats: make(map[string]int)}
}

// SeatsOf returns the seats held by the named party.
func (p *Parliament) SeatsOf(party string) int {
	return p.Seats[party]
}

// Majority returns the smallest seat count forming an absolute majority.
func (p *Parliament) Majority() int {
	return p.TotalSeats/2 + 1
}

// PluralityParty returns the party holding the most seats. Ties go to the
// party listed first in order.
// Parties named in exclude are skipped.
func (p *Parliament) PluralityParty(order []*PoliticalParty, exclude ...string) string {
	best, bestSeats := "", -1
	for _, party := range order {
		if slices.Contains(exclude, party.Name) {
			continue
		}
		if s, ok := p.Seats[party.Name]; ok && s > bestSeats {
			best, bestSeats = party.Name, s
		}
	}
	return best
}
