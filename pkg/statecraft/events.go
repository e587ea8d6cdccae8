package statecraft

import "fmt"

// Per-turn odds of a random event.
const (
	WorldEventChance     = 0.15
	PoliticalEventChance = 0.05
)

// EventKind is a random world event.
type EventKind string

const (
	EconomicBoom     EventKind = "economic_boom"
	FinancialCrisis  EventKind = "financial_crisis"
	TechBreakthrough EventKind = "tech_breakthrough"
	PoliticalScandal EventKind = "political_scandal"
	NaturalDisaster  EventKind = "natural_disaster"
	DiplomaticSummit EventKind = "diplomatic_summit"
)

// AllEventKinds returns the world events in draw order.
func AllEventKinds() []EventKind {
	return []EventKind{EconomicBoom, FinancialCrisis, TechBreakthrough, PoliticalScandal, NaturalDisaster, DiplomaticSummit}
}

// Event is what a triggered event did.
type Event struct {
	Kind    EventKind
	Targets []string
	Message string
}

// TriggerWorldEvent draws an event kind and applies it. It returns false when
// the drawn event needs more countries than the world has.
func TriggerWorldEvent(w *World, r Rand) (Event, bool) {
	return ApplyWorldEvent(w, Pick(r, AllEventKinds()), r)
}

// ApplyWorldEvent applies an event of the given kind.
func ApplyWorldEvent(w *World, kind EventKind, r Rand) (Event, bool) {
	countries := w.Countries()
	if len(countries) == 0 {
		return Event{}, false
	}
	ev := Event{Kind: kind}
	switch kind {
	case EconomicBoom:
		if len(countries) < 2 {
			return Event{}, false
		}
		c := Pick(r, countries)
		c.PotentialGrowth += 0.005
		c.Approval += 0.05
		c.ClampAll()
		ev.Targets = []string{c.Name}
		ev.Message = fmt.Sprintf("Boom économique en %s ! La croissance potentielle et l'opinion publique augmentent.", c.Name)
	case FinancialCrisis:
		for _, c := range countries {
			c.GDP *= 0.98
			c.Unemployment += 0.015
			c.Approval -= 0.08
			c.ClampAll()
			ev.Targets = append(ev.Targets, c.Name)
		}
		ev.Message = "Crise financière mondiale ! Le PIB de tous les pays chute de 2% et le chômage augmente."
	case TechBreakthrough:
		c := Pick(r, countries)
		c.PotentialGrowth += 0.01
		ev.Targets = []string{c.Name}
		ev.Message = fmt.Sprintf("Percée technologique majeure en %s ! La croissance potentielle à long terme est améliorée.", c.Name)
	case PoliticalScandal:
		c := Pick(r, countries)
		c.Approval -= 0.15
		c.ClampAll()
		ev.Targets = []string{c.Name}
		ev.Message = fmt.Sprintf("Scandale de corruption majeur en %s, l'opinion publique s'effondre (-15%%).", c.Name)
	case NaturalDisaster:
		c := Pick(r, countries)
		c.GDP *= 0.99
		c.Treasury -= c.GDP * 0.01
		ev.Targets = []string{c.Name}
		ev.Message = fmt.Sprintf("Catastrophe naturelle en %s. Le gouvernement doit financer la reconstruction.", c.Name)
	case DiplomaticSummit:
		if len(countries) < 3 {
			return Event{}, false
		}
		i := r.Intn(len(countries))
		j := r.Intn(len(countries) - 1)
		if j >= i {
			j++
		}
		c1, c2 := countries[i], countries[j]
		delta := IntBetween(r, 15, 30)
		ImproveRelations(c1, c2, delta)
		ev.Targets = []string{c1.Name, c2.Name}
		ev.Message = fmt.Sprintf("Sommet diplomatique réussi entre %s et %s. Leurs relations s'améliorent de %d points.", c1.Name, c2.Name, delta)
	default:
		return Event{}, false
	}
	return ev, true
}

// TriggerPartyScandal hits a random party of c: support ×0.9, credibility
// ×0.85 and one more scandal on its record.
func TriggerPartyScandal(c *Country, r Rand) (Event, bool) {
	if len(c.Parties) == 0 {
		return Event{}, false
	}
	p := Pick(r, c.Parties)
	p.ScandalCount++
	p.Support *= 0.90
	p.Credibility *= 0.85
	return Event{
		Kind:    PoliticalScandal,
		Targets: []string{p.Name},
		Message: fmt.Sprintf("Un scandale de financement éclabousse le parti '%s', qui perd en crédibilité et en soutien.", p.Name),
	}, true
}
