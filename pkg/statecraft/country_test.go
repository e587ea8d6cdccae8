package statecraft

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestAdjustTaxIncomeCut(t *testing.T) {
	c := NewCountry("France")
	c.GDP, c.Treasury, c.Approval = 2800, 50, 0.5

	if !c.AdjustTax(IncomeTax, -0.03) {
		t.Fatal("income tax not adjusted")
	}
	if !near(c.TaxIncome, 0.17) {
		t.Fatalf("tax_income = %v", c.TaxIncome)
	}
	if !near(c.Approval, 0.56) {
		t.Fatalf("approval = %v, want 0.56", c.Approval)
	}
}

func TestAdjustTaxClamps(t *testing.T) {
	c := NewCountry("X")
	c.Approval = 0.5
	c.AdjustTax(ProductionTax, 0.5)
	if c.TaxProduction != MaxTaxProduction {
		t.Fatalf("production tax = %v, want ceiling %v", c.TaxProduction, MaxTaxProduction)
	}
	c.AdjustTax(PropertyTax, -1)
	if c.TaxProperty != 0 {
		t.Fatalf("property tax = %v, want 0", c.TaxProperty)
	}
	if c.AdjustTax("dime", 0.1) {
		t.Fatal("unknown tax accepted")
	}
}

func TestTaxKinds(t *testing.T) {
	c := NewCountry("X")
	for _, k := range AllTaxKinds() {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
		if c.TaxRate(k) <= 0 {
			t.Errorf("%s has no default rate", k)
		}
	}
}

func TestRelationsClamped(t *testing.T) {
	c := NewCountry("A")
	if c.Relation("B") != 0 {
		t.Fatal("missing relation should read 0")
	}
	c.AdjustRelation("B", 150)
	if c.Relation("B") != MaxRelation {
		t.Fatalf("relation = %d", c.Relation("B"))
	}
	c.AdjustRelation("B", -500)
	if c.Relation("B") != MinRelation {
		t.Fatalf("relation = %d", c.Relation("B"))
	}
}

func TestClampAllProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("bounded fields stay in range", prop.ForAll(
		func(approval, tax, unemployment, growth, weariness float64) bool {
			c := NewCountry("X")
			c.Approval = approval
			c.TaxIncome, c.TaxSocial, c.TaxProperty = tax, tax, tax
			c.Unemployment = unemployment
			c.Growth = growth
			c.WarWeariness = weariness
			c.Debt = -unemployment
			c.ClampAll()
			return c.Approval >= 0 && c.Approval <= 1 &&
				c.TaxIncome >= 0 && c.TaxIncome <= MaxTaxIncome &&
				c.TaxSocial >= 0 && c.TaxSocial <= MaxTaxSocial &&
				c.TaxProperty >= 0 && c.TaxProperty <= MaxTaxProperty &&
				c.Unemployment >= 0 && c.Unemployment <= 1 &&
				c.Growth >= MinGrowth && c.Growth <= MaxGrowth &&
				c.WarWeariness >= 0 && c.WarWeariness <= 1 &&
				c.Debt >= 0
		},
		gen.Float64Range(-5, 5),
		gen.Float64Range(-2, 2),
		gen.Float64Range(-2, 2),
		gen.Float64Range(-1, 1),
		gen.Float64Range(-2, 2),
	))

	properties.Property("relations stay in [-100, 100]", prop.ForAll(
		func(deltas []int) bool {
			c := NewCountry("A")
			for _, d := range deltas {
				c.AdjustRelation("B", d)
				if v := c.Relation("B"); v < MinRelation || v > MaxRelation {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-300, 300)),
	))

	properties.TestingRun(t)
}

func TestPartiesLookup(t *testing.T) {
	c := NewCountry("X")
	c.Parties = []*PoliticalParty{NewParty("A", "Centre", 0.6, nil), NewParty("B", "Droite", 0.4, nil)}
	c.LeaderParty = "B"
	if c.GoverningParty() != c.Parties[1] {
		t.Fatal("governing party not resolved")
	}
	if c.Party("Z") != nil {
		t.Fatal("unknown party resolved")
	}
}
