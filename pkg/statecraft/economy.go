package statecraft

import (
	"math"
	"sort"
)

// Shares of GDP that serve as each tax's annual base.
const (
	consumptionBase = 0.55 // VAT
	incomeBase      = 0.45 // income tax and social contributions
	corporateBase   = 0.12
	productionBase  = 1.0
	propertyBase    = 1.5
)

// Economic reference points the demand model measures deviations from.
const (
	targetInflation     = 0.02
	naturalUnemployment = 0.05
	neutralRate         = 0.025
	neutralIncomeTax    = 0.20
	neutralCorporate    = 0.25
	inflationPain       = 0.03
)

// WeeklyRevenue returns one turn of tax receipts.
func WeeklyRevenue(c *Country) float64 {
	annual := c.GDP*consumptionBase*c.TaxVAT +
		c.GDP*incomeBase*c.TaxIncome +
		c.GDP*incomeBase*c.TaxSocial +
		c.GDP*corporateBase*c.TaxCorporate +
		c.GDP*productionBase*c.TaxProduction +
		c.GDP*propertyBase*c.TaxProperty
	return annual / 52
}

// WeeklyInterestRate is the central-bank rate plus a risk premium that grows
// once debt passes 80% of GDP, pro-rated to one week.
func WeeklyInterestRate(c *Country) float64 {
	ratio := 100.0
	if c.GDP > 0 {
		ratio = c.Debt / c.GDP
	}
	premium := math.Max(0, ratio-0.8) * 0.02
	return (c.CentralBankRate + premium) / 52
}

// ComputeBudget settles one week of public finances. Half of a surplus pays
// down debt and the rest goes to the treasury; a deficit is borrowed in full.
func ComputeBudget(c *Country) {
	revenue := WeeklyRevenue(c)
	expense := c.GDP*c.GovernmentSpending/52 + c.Debt*WeeklyInterestRate(c)
	c.BudgetBalance = revenue - expense

	if c.BudgetBalance >= 0 {
		repayment := c.BudgetBalance * 0.5
		c.Debt = math.Max(0, c.Debt-repayment)
		c.Treasury += c.BudgetBalance - repayment
	} else {
		c.Debt -= c.BudgetBalance
		c.Treasury += c.BudgetBalance
	}
	c.ClampAll()
}

// GlobalConditions are the draws shared by every country in one turn.
type GlobalConditions struct {
	Growth float64
	Shock  float64
}

// DrawGlobalConditions draws this turn's world growth and external shock.
func DrawGlobalConditions(r Rand) GlobalConditions {
	return GlobalConditions{
		Growth: Uniform(r, 0.0001, 0.0004),
		Shock:  Uniform(r, -0.0005, 0.0005),
	}
}

// SimulateGrowth advances growth, inflation, the policy rate, GDP,
// unemployment and approval of every country by one week. All countries see
// the same global draw.
func SimulateGrowth(countries []*Country, r Rand) GlobalConditions {
	g := DrawGlobalConditions(r)
	for _, c := range countries {
		growCountry(c, g)
	}
	return g
}

func growCountry(c *Country, g GlobalConditions) {
	weeklyGDP := c.WeeklyGDP()
	var govTerm, tradeTerm float64
	if weeklyGDP > 0 {
		govTerm = c.BudgetBalance / weeklyGDP * 0.01
		tradeTerm = c.TradeBalance() / weeklyGDP * 0.0005
	}
	consumption := (c.Approval-0.5)*0.0005 -
		(c.TaxIncome-neutralIncomeTax)*0.001 -
		(c.Unemployment-naturalUnemployment)*0.002
	investment := (neutralCorporate-c.TaxCorporate)*0.001 -
		c.TaxProduction*0.001 -
		(c.CentralBankRate-neutralRate)*0.05
	demand := consumption + investment + govTerm + tradeTerm

	potential := c.PotentialGrowth / 52
	growth := potential*0.8 + demand*0.2 + g.Growth

	demandPull := math.Max(0, growth-potential) * 0.5
	costPush := math.Max(0, naturalUnemployment-c.Unemployment) * 0.1
	weeklyInflation := (demandPull + costPush + g.Shock) / 52
	c.Inflation = c.Inflation*0.98 + weeklyInflation*52*0.02

	adjustment := ((c.Inflation-targetInflation)*1.0 - (c.Unemployment-naturalUnemployment)*0.2) / 52
	target := math.Max(0, c.CentralBankRate+adjustment)
	c.CentralBankRate = target*0.99 + math.Max(0, target+adjustment)*0.01

	c.GDP *= 1 + growth
	c.Growth = growth
	c.Unemployment -= (growth - potential) * 0.2
	c.Approval -= math.Max(0, c.Inflation-inflationPain) * 0.005

	c.ClampAll()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
