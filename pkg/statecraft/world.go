package statecraft

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDuplicateCountry = errors.New("duplicate country name")

// World is the single authoritative, ordered collection of countries.
// Everything else refers to countries by name and resolves through Get.
type World struct {
	countries []*Country
	index     map[string]int
}

// NewWorld builds a world from countries in order. Names must be unique.
func NewWorld(countries ...*Country) (*World, error) {
	w := &World{index: make(map[string]int, len(countries))}
	for _, c := range countries {
		if err := w.Add(c); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Add appends a country.
func (w *World) Add(c *Country) error {
	if w.index == nil {
		w.index = make(map[string]int)
	}
	if _, ok := w.index[c.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCountry, c.Name)
	}
	w.index[c.Name] = len(w.countries)
	w.countries = append(w.countries, c)
	return nil
}

// Get returns the country with the given name, or nil.
func (w *World) Get(name string) *Country {
	if w == nil {
		return nil
	}
	i, ok := w.index[name]
	if !ok {
		return nil
	}
	return w.countries[i]
}

// Countries returns the countries in world order. The slice is shared.
func (w *World) Countries() []*Country {
	if w == nil {
		return nil
	}
	return w.countries
}

// Len returns the number of countries.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.countries)
}

// Names returns country names in world order.
func (w *World) Names() []string {
	names := make([]string, 0, w.Len())
	for _, c := range w.Countries() {
		names = append(names, c.Name)
	}
	return names
}

// Others returns every country except the named one.
func (w *World) Others(name string) []*Country {
	others := make([]*Country, 0, w.Len())
	for _, c := range w.Countries() {
		if c.Name != name {
			others = append(others, c)
		}
	}
	return others
}

// InitRelations gives every ordered pair of distinct countries a neutral
// relation entry. Existing entries are kept.
func (w *World) InitRelations() {
	for _, c := range w.Countries() {
		for _, o := range w.Countries() {
			if c.Name == o.Name {
				continue
			}
			if _, ok := c.Relations[o.Name]; !ok {
				c.SetRelation(o.Name, 0)
			}
		}
	}
}

// MarshalJSON encodes the world as its ordered country array.
func (w *World) MarshalJSON() ([]byte, error) {
	if w == nil || w.countries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.countries)
}

// UnmarshalJSON rebuilds the world and its name index from a country array.
func (w *World) UnmarshalJSON(data []byte) error {
	var countries []*Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return err
	}
	w.countries = nil
	w.index = make(map[string]int, len(countries))
	for _, c := range countries {
		if c.Relations == nil {
			c.Relations = make(map[string]int)
		}
		if err := w.Add(c); err != nil {
			return err
		}
	}
	return nil
}
