package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/freeeve/statecraft/internal/logger"
	"github.com/freeeve/statecraft/internal/model"
)

// Snapshot captures the game state. It shares the live world, alliances and
// wars; marshal it before the next turn to keep a detached copy.
func (g *Game) Snapshot() *model.Snapshot {
	return &model.Snapshot{
		Version:          model.SnapshotVersion,
		SessionID:        g.sessionID,
		Turn:             g.turn,
		StartDate:        g.startDate.Format(time.DateOnly),
		PlayerCountry:    g.playerCountry,
		PlayerPartyName:  g.playerParty,
		PlayerIsInPower:  g.inPower,
		Phase:            string(g.phase),
		NextElectionTurn: g.nextElectionTurn,
		CampaignPeriod:   g.campaignPeriod,
		World:            g.world,
		Alliances:        g.alliances,
		Wars:             g.wars,
		Laws:             g.laws,
		History:          g.history,
	}
}

// Restore replaces the game state with s. The player nation is resolved by
// name against the restored world, so s must name a country it contains.
func (g *Game) Restore(s *model.Snapshot) error {
	if s == nil || s.World == nil || s.World.Len() == 0 {
		return fmt.Errorf("%w: empty world", ErrCorruptSnapshot)
	}
	if s.Version > model.SnapshotVersion {
		return fmt.Errorf("%w: version %d is newer than %d", ErrCorruptSnapshot, s.Version, model.SnapshotVersion)
	}
	player := s.PlayerCountry
	if player == "" {
		player = s.World.Countries()[0].Name
	}
	if s.World.Get(player) == nil {
		return fmt.Errorf("%w: player country %q not in world", ErrCorruptSnapshot, player)
	}
	start, err := time.Parse(time.DateOnly, s.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date: %v", ErrCorruptSnapshot, err)
	}

	phase := Phase(s.Phase)
	if phase != PhaseCoalition {
		phase = PhaseRunning
	}
	g.turn = max(s.Turn, 1)
	g.startDate = start
	g.world = s.World
	g.alliances = s.Alliances
	g.wars = s.Wars
	g.laws = s.Laws
	g.playerCountry = player
	g.playerParty = s.PlayerPartyName
	if g.playerParty == "" {
		g.playerParty = DefaultParty
	}
	g.inPower = s.PlayerIsInPower
	g.phase = phase
	g.nextElectionTurn = s.NextElectionTurn
	g.campaignPeriod = s.CampaignPeriod
	if g.campaignPeriod <= 0 {
		g.campaignPeriod = CampaignPeriod
	}
	g.history = s.History
	if len(g.laws) == 0 && g.scenario != nil {
		g.laws = g.scenario.Laws
	}
	return nil
}

// SaveGame writes the current state to the store under name.
func (g *Game) SaveGame(ctx context.Context, name string) bool {
	if g.player() == nil {
		g.logf("❌ Impossible de sauvegarder, aucune partie en cours.")
		return false
	}
	if g.store == nil {
		g.log.Error().Err(ErrNoStore).Msg("Save failed")
		g.logf("❌ Sauvegarde impossible : aucun stockage configuré.")
		return false
	}

	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		g.log.Error().Err(err).Msg("Failed to encode snapshot")
		g.logf("❌ Sauvegarde impossible.")
		return false
	}
	meta := model.SaveMeta{
		Name:          name,
		SessionID:     g.sessionID,
		Turn:          g.turn,
		PlayerCountry: g.playerCountry,
		SavedAt:       g.now().UTC(),
	}
	if err := g.store.Save(ctx, meta, data); err != nil {
		g.log.Error().Err(err).Str("save", name).Msg("Save failed")
		g.logf("❌ Sauvegarde '%s' impossible : %v.", name, err)
		return false
	}
	logger.LogPayload(g.log, "Snapshot saved", data)
	g.logf("💾 Partie sauvegardée sous le nom '%s'.", name)
	return true
}

// LoadGame replaces the current state with the named save. A missing or
// corrupt save leaves the current game untouched.
func (g *Game) LoadGame(ctx context.Context, name string) bool {
	if g.store == nil {
		g.log.Error().Err(ErrNoStore).Msg("Load failed")
		g.logf("❌ Chargement impossible : aucun stockage configuré.")
		return false
	}
	data, err := g.store.Load(ctx, name)
	if err != nil {
		g.log.Error().Err(err).Str("save", name).Msg("Load failed")
		g.logf("❌ Chargement de '%s' impossible.", name)
		return false
	}
	if data == nil {
		g.logf("❌ Aucune sauvegarde nommée '%s'.", name)
		return false
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		g.log.Error().Err(err).Str("save", name).Msg("Failed to decode snapshot")
		g.logf("❌ Sauvegarde '%s' corrompue.", name)
		return false
	}
	if err := g.Restore(&snap); err != nil {
		g.log.Error().Err(err).Str("save", name).Msg("Failed to restore snapshot")
		g.logf("❌ Sauvegarde '%s' corrompue.", name)
		return false
	}
	g.log.Info().Str("save", name).Int("turn", g.turn).Str("savedSession", snap.SessionID).Msg("Game loaded")
	g.logf("📄 Partie '%s' chargée.", name)
	return true
}

// ListSaves returns the stored saves, most recent first.
func (g *Game) ListSaves(ctx context.Context) ([]model.SaveMeta, error) {
	if g.store == nil {
		return nil, ErrNoStore
	}
	return g.store.List(ctx)
}

// DeleteSave removes a save and reports whether it existed.
func (g *Game) DeleteSave(ctx context.Context, name string) (bool, error) {
	if g.store == nil {
		return false, ErrNoStore
	}
	return g.store.Delete(ctx, name)
}
