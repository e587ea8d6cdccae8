package statecraft

import (
	"fmt"
	"math"
	"sort"
)

// minGoverningSupport floors the governing party's support before
// renormalization at an election.
const minGoverningSupport = 0.05

// ElectionResult is the outcome of one election.
type ElectionResult struct {
	Leader    string
	PlayerWon bool
	Seats     map[string]int
	Log       []string
}

// AllocateSeats apportions total seats by the largest-remainder method:
// every party gets floor(share × total), then the leftover seats go one each
// to the largest fractional remainders. Equal remainders keep party order.
// Shares are normalized here, so they need not sum to 1.
func AllocateSeats(parties []*PoliticalParty, total int) map[string]int {
	seats := make(map[string]int, len(parties))
	if len(parties) == 0 || total <= 0 {
		return seats
	}

	sum := 0.0
	for _, p := range parties {
		sum += math.Max(0, p.Support)
	}

	type remainder struct {
		name string
		frac float64
	}
	rems := make([]remainder, len(parties))
	allocated := 0
	for i, p := range parties {
		share := 1.0 / float64(len(parties))
		if sum > 0 {
			share = math.Max(0, p.Support) / sum
		}
		exact := share * float64(total)
		whole := int(math.Floor(exact))
		seats[p.Name] = whole
		allocated += whole
		rems[i] = remainder{name: p.Name, frac: exact - float64(whole)}
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for i := 0; allocated < total; i++ {
		seats[rems[i%len(rems)].name]++
		allocated++
	}
	return seats
}

// SimulateElection re-scores every party, renormalizes support to sum to 1,
// apportions the assembly and installs the most-supported party as leader.
// The initial election only seeds seats from the starting support.
func SimulateElection(c *Country, playerParty string, initial bool) ElectionResult {
	if !initial {
		for _, p := range c.Parties {
			if p.Name == c.LeaderParty {
				performance := (c.Approval-0.5)*0.2 - (c.Unemployment-0.07)*0.5 + c.Growth*2
				p.Support = math.Max(minGoverningSupport, p.Support*(1+performance))
			} else {
				p.Support *= 1 - (c.Approval-0.5)*0.1
			}
		}
	}
	normalizeSupport(c.Parties)

	c.Parliament.Seats = AllocateSeats(c.Parties, c.Parliament.TotalSeats)

	res := ElectionResult{Seats: c.Parliament.Seats}
	res.Log = append(res.Log, "Résultats de l'élection :")
	ranked := append([]*PoliticalParty(nil), c.Parties...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.Parliament.Seats[ranked[i].Name] > c.Parliament.Seats[ranked[j].Name]
	})
	for _, p := range ranked {
		res.Log = append(res.Log, fmt.Sprintf("  - %s: %.1f%% des voix (%d sièges)",
			p.Name, p.Support*100, c.Parliament.Seats[p.Name]))
	}

	if winner := mostSupported(c.Parties); winner != nil {
		c.LeaderParty = winner.Name
		res.Leader = winner.Name
		res.PlayerWon = winner.Name == playerParty
	}
	if !initial {
		if res.PlayerWon {
			res.Log = append(res.Log, "Félicitations, vous avez été réélu !")
		} else {
			res.Log = append(res.Log, fmt.Sprintf("Le parti '%s' a remporté l'élection.", res.Leader))
		}
	}
	return res
}

// normalizeSupport scales support to sum to 1. Negative support counts as 0.
func normalizeSupport(parties []*PoliticalParty) {
	total := 0.0
	for _, p := range parties {
		p.Support = math.Max(0, p.Support)
		total += p.Support
	}
	if total <= 0 {
		for _, p := range parties {
			p.Support = 1 / float64(len(parties))
		}
		return
	}
	for _, p := range parties {
		p.Support /= total
	}
}

// mostSupported returns the party with the highest support; the first listed
// wins ties.
func mostSupported(parties []*PoliticalParty) *PoliticalParty {
	var best *PoliticalParty
	for _, p := range parties {
		if best == nil || p.Support > best.Support {
			best = p
		}
	}
	return best
}
