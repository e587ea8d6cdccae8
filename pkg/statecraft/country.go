package statecraft

import "math"

// Tax rate ceilings. Every rate is also floored at 0.
const (
	MaxTaxIncome     = 0.6
	MaxTaxCorporate  = 0.6
	MaxTaxVAT        = 0.6
	MaxTaxSocial     = 0.8
	MaxTaxProduction = 0.2
	MaxTaxProperty   = 0.1

	MinGrowth = -0.2
	MaxGrowth = 0.2

	MinRelation = -100
	MaxRelation = 100
)

// Country is a nation in the world. Name is its unique key.
type Country struct {
	Name       string  `json:"name"`
	Population int64   `json:"population"`
	GDP        float64 `json:"gdp"`      // Md€
	Treasury   float64 `json:"treasury"` // Md€
	Debt       float64 `json:"debt"`     // Md€
	Approval   float64 `json:"approval"`

	TaxIncome     float64 `json:"tax_income"`
	TaxCorporate  float64 `json:"tax_corporate"`
	TaxVAT        float64 `json:"tax_vat"`
	TaxSocial     float64 `json:"tax_social_contributions"`
	TaxProduction float64 `json:"tax_production"`
	TaxProperty   float64 `json:"tax_property"`

	Unemployment       float64 `json:"unemployment"`
	Growth             float64 `json:"growth"`
	Inflation          float64 `json:"inflation"`
	CentralBankRate    float64 `json:"central_bank_rate"`
	PotentialGrowth    float64 `json:"potential_growth"`
	Exports            float64 `json:"exports"`
	Imports            float64 `json:"imports"`
	GovernmentSpending float64 `json:"government_spending"` // share of GDP
	BudgetBalance      float64 `json:"budget_balance"`      // last weekly balance

	Relations        map[string]int `json:"relations"`
	EspionageSuccess int            `json:"espionage_success"`
	Laws             []Law          `json:"laws"`

	LeaderParty        string            `json:"leader_party"`
	Parties            []*PoliticalParty `json:"political_parties"`
	Parliament         Parliament        `json:"parliament"`
	CampaignActive     bool              `json:"is_campaign_active"`
	PoliticalStability float64           `json:"political_stability"`

	AtWarWith    []string `json:"at_war_with"`
	WarWeariness float64  `json:"war_weariness"`
}

// NewCountry returns a country carrying the default fiscal and monetary
// settings of the reference scenario.
func NewCountry(name string) *Country {
	return &Country{
		Name:               name,
		TaxIncome:          0.20,
		TaxCorporate:       0.25,
		TaxVAT:             0.20,
		TaxSocial:          0.40,
		TaxProduction:      0.05,
		TaxProperty:        0.03,
		Unemployment:       0.08,
		Debt:               2500,
		Growth:             0.015,
		Exports:            600,
		Imports:            650,
		GovernmentSpending: 0.45,
		Inflation:          0.02,
		CentralBankRate:    0.025,
		PotentialGrowth:    0.012,
		PoliticalStability: 1.0,
		Relations:          make(map[string]int),
		Parliament:         NewParliament(),
	}
}

// ClampAll brings every bounded field back inside its range. Every mutating
// operation ends with it.
func (c *Country) ClampAll() {
	c.Approval = clamp(c.Approval, 0, 1)
	c.TaxIncome = clamp(c.TaxIncome, 0, MaxTaxIncome)
	c.TaxCorporate = clamp(c.TaxCorporate, 0, MaxTaxCorporate)
	c.TaxVAT = clamp(c.TaxVAT, 0, MaxTaxVAT)
	c.TaxSocial = clamp(c.TaxSocial, 0, MaxTaxSocial)
	c.TaxProduction = clamp(c.TaxProduction, 0, MaxTaxProduction)
	c.TaxProperty = clamp(c.TaxProperty, 0, MaxTaxProperty)
	c.Unemployment = clamp(c.Unemployment, 0, 1)
	c.Debt = math.Max(0, c.Debt)
	c.Growth = clamp(c.Growth, MinGrowth, MaxGrowth)
	c.Exports = math.Max(0, c.Exports)
	c.Imports = math.Max(0, c.Imports)
	c.WarWeariness = clamp(c.WarWeariness, 0, 1)
}

// Relation returns the stored relation toward other, or 0 when none exists.
func (c *Country) Relation(other string) int {
	return c.Relations[other]
}

// SetRelation stores the relation toward other, clamped to [-100, 100].
func (c *Country) SetRelation(other string, value int) {
	if c.Relations == nil {
		c.Relations = make(map[string]int)
	}
	c.Relations[other] = clampInt(value, MinRelation, MaxRelation)
}

// AdjustRelation adds delta to the relation toward other.
func (c *Country) AdjustRelation(other string, delta int) {
	c.SetRelation(other, c.Relation(other)+delta)
}

// MilitaryPower is 2% of GDP. It is derived, never stored.
func (c *Country) MilitaryPower() float64 {
	return c.GDP * 0.02
}

// TradeBalance returns exports minus imports.
func (c *Country) TradeBalance() float64 {
	return c.Exports - c.Imports
}

// WeeklyGDP returns GDP pro-rated to one turn.
func (c *Country) WeeklyGDP() float64 {
	return c.GDP / 52
}

// IsAtWarWith reports whether other appears in the country's war list.
func (c *Country) IsAtWarWith(other string) bool {
	for _, n := range c.AtWarWith {
		if n == other {
			return true
		}
	}
	return false
}

// Party returns the party with the given name, or nil.
func (c *Country) Party(name string) *PoliticalParty {
	for _, p := range c.Parties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// GoverningParty returns the party currently leading the government, or nil.
func (c *Country) GoverningParty() *PoliticalParty {
	return c.Party(c.LeaderParty)
}

// TaxKind names one of the six adjustable taxes.
type TaxKind string

const (
	IncomeTax     TaxKind = "revenu"
	CorporateTax  TaxKind = "societes"
	VATTax        TaxKind = "tva"
	SocialTax     TaxKind = "social"
	ProductionTax TaxKind = "production"
	PropertyTax   TaxKind = "patrimoine"
)

// AllTaxKinds returns the six taxes in display order.
func AllTaxKinds() []TaxKind {
	return []TaxKind{IncomeTax, CorporateTax, VATTax, SocialTax, ProductionTax, PropertyTax}
}

// approvalWeight is how strongly voters react to one unit of rate change.
func (k TaxKind) approvalWeight() float64 {
	switch k {
	case IncomeTax:
		return 2
	case CorporateTax:
		return 1.2
	case VATTax:
		return 1.5
	case SocialTax:
		return 2.5
	case ProductionTax:
		return 0.5
	case PropertyTax:
		return 1.0
	}
	return 0
}

// Valid reports whether k is a known tax.
func (k TaxKind) Valid() bool {
	return k.approvalWeight() != 0
}

// rate returns a pointer to the rate field k controls.
func (c *Country) rate(k TaxKind) *float64 {
	switch k {
	case IncomeTax:
		return &c.TaxIncome
	case CorporateTax:
		return &c.TaxCorporate
	case VATTax:
		return &c.TaxVAT
	case SocialTax:
		return &c.TaxSocial
	case ProductionTax:
		return &c.TaxProduction
	case PropertyTax:
		return &c.TaxProperty
	}
	return nil
}

// TaxRate returns the current rate of k.
func (c *Country) TaxRate(k TaxKind) float64 {
	if p := c.rate(k); p != nil {
		return *p
	}
	return 0
}

// AdjustTax moves a tax rate by delta and shifts approval in the opposite
// direction, weighted by how visible the tax is. Unknown kinds are ignored.
func (c *Country) AdjustTax(k TaxKind, delta float64) bool {
	p := c.rate(k)
	if p == nil {
		return false
	}
	*p += delta
	c.Approval -= delta * k.approvalWeight()
	c.ClampAll()
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
