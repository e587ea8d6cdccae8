package statecraft

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWeeklyRevenue(t *testing.T) {
	c := NewCountry("X")
	c.GDP = 5200
	// 5200 × (0.11 + 0.09 + 0.18 + 0.03 + 0.05 + 0.045) / 52
	if got := WeeklyRevenue(c); !near(got, 50.5) {
		t.Fatalf("revenue = %v", got)
	}
}

func TestComputeBudgetSurplus(t *testing.T) {
	c := NewCountry("X")
	c.GDP, c.Debt, c.Treasury, c.GovernmentSpending = 5200, 0, 10, 0

	ComputeBudget(c)

	if !near(c.BudgetBalance, 50.5) || !near(c.Treasury, 10+25.25) || c.Debt != 0 {
		t.Fatalf("balance %v, treasury %v, debt %v", c.BudgetBalance, c.Treasury, c.Debt)
	}
}

func TestComputeBudgetDeficit(t *testing.T) {
	c := NewCountry("X")
	c.GDP, c.Debt, c.Treasury, c.GovernmentSpending = 5200, 0, 10, 0.52
	for _, k := range AllTaxKinds() {
		c.AdjustTax(k, -1)
	}

	ComputeBudget(c)

	if !near(c.BudgetBalance, -52) || !near(c.Debt, 52) || !near(c.Treasury, -42) {
		t.Fatalf("balance %v, debt %v, treasury %v", c.BudgetBalance, c.Debt, c.Treasury)
	}
}

func TestWeeklyInterestRate(t *testing.T) {
	c := NewCountry("X")
	c.GDP, c.Debt = 1000, 500
	if got := WeeklyInterestRate(c); !near(got, 0.025/52) {
		t.Fatalf("rate below the premium threshold = %v", got)
	}
	c.Debt = 1800
	if got := WeeklyInterestRate(c); !near(got, (0.025+0.02)/52) {
		t.Fatalf("rate with premium = %v", got)
	}
	c.GDP = 0
	if got := WeeklyInterestRate(c); got <= 0 {
		t.Fatal("zero GDP must not divide by zero")
	}
}

func TestGrowthSharedConditions(t *testing.T) {
	a, b := NewCountry("A"), NewCountry("B")
	a.GDP, b.GDP = 2000, 2000
	a.Approval, b.Approval = 0.5, 0.5

	SimulateGrowth([]*Country{a, b}, NewRand(9))

	if a.Growth != b.Growth || a.GDP != b.GDP {
		t.Fatal("identical countries diverged within one turn")
	}
}

func TestGrowthKeepsBounds(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties := gopter.NewProperties(params)

	properties.Property("a year of growth stays in range", prop.ForAll(
		func(approval, unemployment, taxIncome, balance float64, seed int64) bool {
			c := NewCountry("X")
			c.GDP = 2000
			c.Approval, c.Unemployment, c.TaxIncome = approval, unemployment, taxIncome
			c.BudgetBalance = balance
			r := NewRand(seed)
			for range 52 {
				SimulateGrowth([]*Country{c}, r)
				if c.Growth < MinGrowth || c.Growth > MaxGrowth ||
					c.Unemployment < 0 || c.Unemployment > 1 ||
					c.Approval < 0 || c.Approval > 1 ||
					c.CentralBankRate < 0 || c.GDP <= 0 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 0.5),
		gen.Float64Range(0, MaxTaxIncome),
		gen.Float64Range(-100, 100),
		gen.Int64Range(1, 1<<40),
	))

	properties.TestingRun(t)
}
