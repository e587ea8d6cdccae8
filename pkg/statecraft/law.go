package statecraft

import (
	"fmt"
	"sort"
)

// Field selects one numeric attribute of a Country that a law may move.
type Field string

const (
	FieldGDP             Field = "gdp"
	FieldTreasury        Field = "treasury"
	FieldDebt            Field = "debt"
	FieldApproval        Field = "approval"
	FieldUnemployment    Field = "unemployment"
	FieldGrowth          Field = "growth"
	FieldInflation       Field = "inflation"
	FieldPotentialGrowth Field = "potential_growth"
	FieldExports         Field = "exports"
	FieldImports         Field = "imports"
	FieldTaxIncome       Field = "tax_income"
	FieldTaxCorporate    Field = "tax_corporate"
	FieldTaxVAT          Field = "tax_vat"
	FieldTaxSocial       Field = "tax_social_contributions"
	FieldTaxProduction   Field = "tax_production"
	FieldTaxProperty     Field = "tax_property"
	FieldSpending        Field = "government_spending"
)

// Valid reports whether f names a Country field.
func (f Field) Valid() bool {
	return (&Country{}).field(f) != nil
}

// UnmarshalText rejects unknown field names so bad law data fails at load.
func (f *Field) UnmarshalText(text []byte) error {
	v := Field(text)
	if !v.Valid() {
		return fmt.Errorf("unknown law field %q", string(text))
	}
	*f = v
	return nil
}

func (c *Country) field(f Field) *float64 {
	switch f {
	case FieldGDP:
		return &c.GDP
	case FieldTreasury:
		return &c.Treasury
	case FieldDebt:
		return &c.Debt
	case FieldApproval:
		return &c.Approval
	case FieldUnemployment:
		return &c.Unemployment
	case FieldGrowth:
		return &c.Growth
	case FieldInflation:
		return &c.Inflation
	case FieldPotentialGrowth:
		return &c.PotentialGrowth
	case FieldExports:
		return &c.Exports
	case FieldImports:
		return &c.Imports
	case FieldTaxIncome:
		return &c.TaxIncome
	case FieldTaxCorporate:
		return &c.TaxCorporate
	case FieldTaxVAT:
		return &c.TaxVAT
	case FieldTaxSocial:
		return &c.TaxSocial
	case FieldTaxProduction:
		return &c.TaxProduction
	case FieldTaxProperty:
		return &c.TaxProperty
	case FieldSpending:
		return &c.GovernmentSpending
	}
	return nil
}

// Value returns the current value of f, 0 for an unknown field.
func (c *Country) Value(f Field) float64 {
	if p := c.field(f); p != nil {
		return *p
	}
	return 0
}

// Law is a data-defined policy whose effect is a set of field deltas.
type Law struct {
	ID          int               `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Effect      map[Field]float64 `json:"effect" yaml:"effect"`
	Domain      Domain            `json:"domain" yaml:"domain"`
}

func (l Law) shift(c *Country, sign float64) {
	for f, delta := range l.Effect {
		if p := c.field(f); p != nil {
			*p += sign * delta
		}
	}
	c.ClampAll()
}

// HasLaw reports whether a law with the given id is active.
func (c *Country) HasLaw(id int) bool {
	for _, l := range c.Laws {
		if l.ID == id {
			return true
		}
	}
	return false
}

// ApplyLaw adds the law's deltas and records it as active. A law already
// active is not applied twice; ApplyLaw then returns false.
func (c *Country) ApplyLaw(l Law) bool {
	if c.HasLaw(l.ID) {
		return false
	}
	l.shift(c, 1)
	c.Laws = append(c.Laws, l)
	return true
}

// RemoveLaw subtracts the deltas of the active law with the given id.
func (c *Country) RemoveLaw(id int) bool {
	for i, l := range c.Laws {
		if l.ID != id {
			continue
		}
		l.shift(c, -1)
		c.Laws = append(c.Laws[:i], c.Laws[i+1:]...)
		return true
	}
	return false
}

// LawNames lists active law names.
func (c *Country) LawNames() []string {
	names := make([]string, len(c.Laws))
	for i, l := range c.Laws {
		names[i] = l.Name
	}
	return names
}

// LawBook is the catalogue of laws a government may propose.
type LawBook []Law

// ByID returns the law with the given id.
func (b LawBook) ByID(id int) (Law, bool) {
	for _, l := range b {
		if l.ID == id {
			return l, true
		}
	}
	return Law{}, false
}

// ByDomain groups the catalogue by domain, each group ordered by id.
func (b LawBook) ByDomain() map[Domain][]Law {
	out := make(map[Domain][]Law)
	for _, l := range b {
		out[l.Domain] = append(out[l.Domain], l)
	}
	for _, laws := range out {
		sort.Slice(laws, func(i, j int) bool { return laws[i].ID < laws[j].ID })
	}
	return out
}
