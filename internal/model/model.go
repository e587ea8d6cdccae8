package model

import (
	"time"

	"github.com/freeeve/statecraft/pkg/statecraft"
)

// SnapshotVersion is bumped whenever the snapshot layout changes.
const SnapshotVersion = 1

// Snapshot is the full persisted game state. The player country is stored by
// name only and re-resolved against World after a load. The history series
// sit at the top level of the document.
type Snapshot struct {
	Version          int                    `json:"version"`
	SessionID        string                 `json:"session_id"`
	Turn             int                    `json:"turn"`
	StartDate        string                 `json:"start_date"` // ISO-8601 date
	PlayerCountry    string                 `json:"player_country"`
	PlayerPartyName  string                 `json:"player_party_name"`
	PlayerIsInPower  bool                   `json:"player_is_in_power"`
	Phase            string                 `json:"game_state"`
	NextElectionTurn int                    `json:"next_election_turn"`
	CampaignPeriod   int                    `json:"campaign_period"`
	World            *statecraft.World      `json:"world"`
	Alliances        []*statecraft.Alliance `json:"alliances"`
	Wars             []*statecraft.War      `json:"wars"`
	Laws             statecraft.LawBook     `json:"law_catalogue"`
	History
}

// History holds the player nation's weekly time series, one point per turn.
type History struct {
	Approval     []float64 `json:"approval_history"`
	GDP          []float64 `json:"gdp_history"`
	Treasury     []float64 `json:"treasury_history"`
	Inflation    []float64 `json:"inflation_history"`
	Unemployment []float64 `json:"unemployment_history"`
	Debt         []float64 `json:"debt_history"`
	Growth       []float64 `json:"growth_history"`
}

// Record appends the current values of c to every series.
func (h *History) Record(c *statecraft.Country) {
	h.Approval = append(h.Approval, c.Approval)
	h.GDP = append(h.GDP, c.GDP)
	h.Treasury = append(h.Treasury, c.Treasury)
	h.Inflation = append(h.Inflation, c.Inflation)
	h.Unemployment = append(h.Unemployment, c.Unemployment)
	h.Debt = append(h.Debt, c.Debt)
	h.Growth = append(h.Growth, c.Growth)
}

// Len returns the number of recorded turns.
func (h History) Len() int {
	return len(h.Approval)
}

// SaveMeta describes one stored save slot.
type SaveMeta struct {
	Name          string    `json:"name" db:"name"`
	SessionID     string    `json:"session_id" db:"session_id"`
	Turn          int       `json:"turn" db:"turn"`
	PlayerCountry string    `json:"player_country" db:"player_country"`
	SavedAt       time.Time `json:"saved_at" db:"saved_at"`
}
