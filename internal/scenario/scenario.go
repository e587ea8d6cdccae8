// Package scenario loads the static seed data a new game starts from and
// builds the initial world out of it.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/freeeve/statecraft/pkg/statecraft"
)

//go:embed default.yaml
var defaultScenario []byte

var (
	ErrNoCountries   = errors.New("scenario has no countries")
	ErrUnknownPlayer = errors.New("scenario player country not found")
)

// CountrySeed is the starting data of one country.
type CountrySeed struct {
	Name         string  `yaml:"name"`
	Population   int64   `yaml:"pop"`
	GDP          float64 `yaml:"gdp"`
	Approval     float64 `yaml:"approval"`
	Treasury     float64 `yaml:"treasury"`
	Unemployment float64 `yaml:"unemployment"`
	Debt         float64 `yaml:"debt"`
	Growth       float64 `yaml:"growth"`
	Exports      float64 `yaml:"exports"`
	Imports      float64 `yaml:"imports"`
}

// PartySeed is the starting data of one party.
type PartySeed struct {
	Name     string                        `yaml:"name"`
	Ideology string                        `yaml:"ideology"`
	Support  float64                       `yaml:"support"`
	Stances  map[statecraft.Domain]float64 `yaml:"stances"`
}

// Scenario is a complete seed: countries, party rosters and the law catalogue.
type Scenario struct {
	Player    string                 `yaml:"player"`
	StartDate string                 `yaml:"start_date"`
	Countries []CountrySeed          `yaml:"countries"`
	Parties   map[string][]PartySeed `yaml:"parties"`
	Laws      statecraft.LawBook     `yaml:"laws"`
}

// Default returns the embedded reference scenario.
func Default() (*Scenario, error) {
	return Parse(defaultScenario)
}

// Load reads a scenario file. An empty path selects the embedded default.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Countries) == 0 {
		return nil, ErrNoCountries
	}
	if s.Player == "" {
		s.Player = s.Countries[0].Name
	}
	found := false
	for _, c := range s.Countries {
		if c.Name == s.Player {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, s.Player)
	}
	return &s, nil
}

// Start returns the calendar date of turn 1, 2024-01-01 when unset.
func (s *Scenario) Start() time.Time {
	if t, err := time.Parse(time.DateOnly, s.StartDate); err == nil {
		return t
	}
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// BuildWorld creates fresh countries from the seed with the player nation
// first, party rosters attached and every relation at 0.
func (s *Scenario) BuildWorld() (*statecraft.World, error) {
	ordered := make([]CountrySeed, 0, len(s.Countries))
	for _, c := range s.Countries {
		if c.Name == s.Player {
			ordered = append([]CountrySeed{c}, ordered...)
		} else {
			ordered = append(ordered, c)
		}
	}

	w, err := statecraft.NewWorld()
	if err != nil {
		return nil, err
	}
	for _, seed := range ordered {
		c := statecraft.NewCountry(seed.Name)
		c.Population = seed.Population
		c.GDP = seed.GDP
		c.Approval = seed.Approval
		c.Treasury = seed.Treasury
		c.Unemployment = seed.Unemployment
		c.Debt = seed.Debt
		c.Growth = seed.Growth
		c.Exports = seed.Exports
		c.Imports = seed.Imports
		for _, ps := range s.Parties[seed.Name] {
			stances := make(map[statecraft.Domain]float64, len(ps.Stances))
			for d, v := range ps.Stances {
				stances[d] = v
			}
			c.Parties = append(c.Parties, statecraft.NewParty(ps.Name, ps.Ideology, ps.Support, stances))
		}
		c.ClampAll()
		if err := w.Add(c); err != nil {
			return nil, fmt.Errorf("build world: %w", err)
		}
	}
	w.InitRelations()
	return w, nil
}
