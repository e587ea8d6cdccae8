package bot

import (
	"fmt"
	"math"
	"strings"

	"github.com/freeeve/statecraft/pkg/statecraft"
)

// Opposition pressure per party and week.
const (
	baseAggressiveness    = 0.1
	extremeAggressiveness = 0.3
	govSupportLoss        = 0.002
	oppositionGain        = 0.001
)

// OppositionTurn lets every non-governing party attack the government with a
// probability set by its ideology. It returns the number of attacks.
func OppositionTurn(c *statecraft.Country, r statecraft.Rand) int {
	gov := c.GoverningParty()
	if gov == nil {
		return 0
	}
	attacks := 0
	for _, p := range c.Parties {
		if p.Name == gov.Name {
			continue
		}
		odds := baseAggressiveness
		if strings.Contains(p.Ideology, "Extrême") {
			odds = extremeAggressiveness
		}
		if statecraft.Chance(r, odds) {
			gov.Support = math.Max(0, gov.Support-govSupportLoss)
			p.Support += oppositionGain
			attacks++
		}
	}
	return attacks
}

// SafeTurn runs s for one country and turns a panic into an error so the
// caller can carry on with the remaining countries.
func SafeTurn(s Strategy, t Turn) (d Decision, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s strategy for %s: %v", s.Name(), t.Country.Name, rec)
		}
	}()
	return s.TakeTurn(t), nil
}
