package statecraft

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllianceType is the kind of treaty binding an alliance.
type AllianceType string

const (
	Military AllianceType = "military"
	Trade    AllianceType = "trade"
	Science  AllianceType = "science"
)

// AllAllianceTypes returns the treaty kinds in display order.
func AllAllianceTypes() []AllianceType {
	return []AllianceType{Military, Trade, Science}
}

// TreatyTerms are the duration and relation strength a treaty is signed with.
type TreatyTerms struct {
	Duration int
	Strength int
}

// Terms returns the standard terms for a treaty of type t.
func (t AllianceType) Terms() TreatyTerms {
	switch t {
	case Military:
		return TreatyTerms{Duration: 8, Strength: 25}
	case Trade:
		return TreatyTerms{Duration: 6, Strength: 15}
	default:
		return TreatyTerms{Duration: 5, Strength: 12}
	}
}

// Valid reports whether t is a known alliance type.
func (t AllianceType) Valid() bool {
	return t == Military || t == Trade || t == Science
}

// Alliance is a treaty between two or more countries. Inactive alliances stay
// in the list; they are filtered out of active views only.
type Alliance struct {
	ID        int          `json:"id"`
	Type      AllianceType `json:"type"`
	Members   []string     `json:"members"`
	Strength  int          `json:"strength"`
	TurnsLeft int          `json:"turns_left"`
	Active    bool         `json:"active"`
	Name      string       `json:"name"`
}

// HasMember reports whether name is party to the alliance.
func (a *Alliance) HasMember(name string) bool {
	for _, m := range a.Members {
		if m == name {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.Und)

func allianceName(t AllianceType, members []string) string {
	return titleCaser.String(string(t)) + " - " + strings.Join(members, " & ")
}

// CreateAlliance appends a new active alliance with the next free id.
// Overlapping or duplicate alliances are allowed.
func CreateAlliance(alliances *[]*Alliance, t AllianceType, members []string, duration, strength int) *Alliance {
	id := 1
	for _, a := range *alliances {
		if a.ID >= id {
			id = a.ID + 1
		}
	}
	a := &Alliance{
		ID:        id,
		Type:      t,
		Members:   append([]string(nil), members...),
		Strength:  strength,
		TurnsLeft: duration,
		Active:    true,
		Name:      allianceName(t, members),
	}
	*alliances = append(*alliances, a)
	return a
}

// DissolveAlliance marks the alliance inactive. It returns false when no
// alliance has that id.
func DissolveAlliance(alliances []*Alliance, id int) bool {
	for _, a := range alliances {
		if a.ID == id {
			a.Active = false
			return true
		}
	}
	return false
}

// TickAlliances counts every active alliance down one turn and deactivates
// those that run out.
func TickAlliances(alliances []*Alliance) {
	for _, a := range alliances {
		if !a.Active {
			continue
		}
		a.TurnsLeft--
		if a.TurnsLeft <= 0 {
			a.Active = false
		}
	}
}

// ActiveAlliances returns the alliances still in force.
func ActiveAlliances(alliances []*Alliance) []*Alliance {
	var out []*Alliance
	for _, a := range alliances {
		if a.Active {
			out = append(out, a)
		}
	}
	return out
}

// AlliesOf returns the distinct partners of name across active alliances of
// type t, in first-seen order.
func AlliesOf(alliances []*Alliance, name string, t AllianceType) []string {
	seen := map[string]bool{name: true}
	var allies []string
	for _, a := range alliances {
		if !a.Active || a.Type != t || !a.HasMember(name) {
			continue
		}
		for _, m := range a.Members {
			if !seen[m] {
				seen[m] = true
				allies = append(allies, m)
			}
		}
	}
	return allies
}

// UpdateRelations runs the weekly relation update. Every existing relation
// drifts one point toward zero and takes noise in {-1,0,1}; only after all
// countries have drifted does each active alliance add half its strength to
// each member's relation toward every other member.
func UpdateRelations(w *World, alliances []*Alliance, r Rand) {
	for _, c := range w.Countries() {
		for _, other := range sortedKeys(c.Relations) {
			v := c.Relations[other]
			switch {
			case v > 0:
				v--
			case v < 0:
				v++
			}
			v += r.Intn(3) - 1
			c.SetRelation(other, v)
		}
	}

	for _, a := range alliances {
		if !a.Active {
			continue
		}
		bonus := a.Strength / 2
		for _, m1 := range a.Members {
			c := w.Get(m1)
			if c == nil {
				continue
			}
			for _, m2 := range a.Members {
				if m1 == m2 {
					continue
				}
				c.AdjustRelation(m2, bonus)
			}
		}
	}
}

// ImproveRelations moves both sides' relation by delta.
func ImproveRelations(a, b *Country, delta int) {
	a.AdjustRelation(b.Name, delta)
	b.AdjustRelation(a.Name, delta)
}
