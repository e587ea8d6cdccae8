package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/statecraft/internal/engine"
	"github.com/freeeve/statecraft/pkg/statecraft"
)

// action is one scripted player move.
type action struct {
	raw string
	run func(g *engine.Game) bool
}

func (a action) apply(g *engine.Game) bool {
	ok := a.run(g)
	log.Debug().Str("action", a.raw).Bool("ok", ok).Msg("Scripted action")
	return ok
}

// parseScript reads semicolon-separated actions of the form verb[:args].
func parseScript(script string) ([]action, error) {
	var out []action
	for _, raw := range strings.Split(script, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		a, err := parseAction(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func parseAction(raw string) (action, error) {
	verb, args, _ := strings.Cut(raw, ":")
	a := action{raw: raw}
	switch verb {
	case "tax":
		changes := make(map[statecraft.TaxKind]float64)
		for _, kv := range strings.Split(args, ",") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return a, fmt.Errorf("tax change %q: want kind=delta", kv)
			}
			delta, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return a, fmt.Errorf("tax change %q: %w", kv, err)
			}
			changes[statecraft.TaxKind(k)] = delta
		}
		a.run = func(g *engine.Game) bool { return g.AdjustTaxes(changes) }
	case "fee":
		fee, err := strconv.ParseFloat(args, 64)
		if err != nil {
			return a, fmt.Errorf("fee %q: %w", args, err)
		}
		a.run = func(g *engine.Game) bool { return g.AdjustMembershipFee(fee) }
	case "treaty":
		kind, target, ok := strings.Cut(args, ":")
		if !ok {
			return a, fmt.Errorf("treaty %q: want type:country", args)
		}
		a.run = func(g *engine.Game) bool { return g.ProposeTreaty(statecraft.AllianceType(kind), target) }
	case "mission":
		a.run = func(g *engine.Game) bool { return g.SendDiplomaticMission(args) }
	case "spy":
		a.run = func(g *engine.Game) bool { return g.Espionage(args) }
	case "war":
		a.run = func(g *engine.Game) bool { return g.DeclareWar(args) }
	case "law", "repeal":
		id, err := strconv.Atoi(args)
		if err != nil {
			return a, fmt.Errorf("law id %q: %w", args, err)
		}
		if verb == "law" {
			a.run = func(g *engine.Game) bool { return g.ProposeLaw(id) }
		} else {
			a.run = func(g *engine.Game) bool { return g.RepealLaw(id) }
		}
	case "campaign":
		a.run = func(g *engine.Game) bool { return g.CampaignAction(statecraft.CampaignAction(args)) }
	case "oppose":
		a.run = func(g *engine.Game) bool { return g.OppositionAction(statecraft.OppositionAction(args)) }
	case "censure":
		a.run = func(g *engine.Game) bool { return g.ProposeCensure() }
	case "coalition":
		partners := strings.Split(args, ",")
		a.run = func(g *engine.Game) bool { return g.AttemptCoalition(partners) }
	case "concede":
		a.run = func(g *engine.Game) bool { return g.ConcedePower() }
	default:
		return a, fmt.Errorf("unknown action %q", verb)
	}
	return a, nil
}
