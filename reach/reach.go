package reach

import (
	"errors"
	"fmt"

	"github.com/ori-community/wotw-seedgen-sub000/graph"
	"github.com/ori-community/wotw-seedgen-sub000/orbs"
	"github.com/ori-community/wotw-seedgen-sub000/player"
	"github.com/ori-community/wotw-seedgen-sub000/requirement"
)

// Sentinel errors for spawn resolution.
var (
	// ErrSpawnNotFound indicates the named spawn does not resolve to any node.
	ErrSpawnNotFound = errors.New("reach: spawn not found")

	// ErrSpawnNotAnchor indicates the named spawn resolves to a node that
	// is not an Anchor, so traversal cannot start there.
	ErrSpawnNotAnchor = errors.New("reach: spawn is not an anchor")
)

// ReachedLocations returns every Pickup/Quest node reachable from spawn
// under player's inventory, with extraUberStates and assertedIndices
// seeding the initially-known state set.
func ReachedLocations(g *graph.Graph, p player.Player, spawn string, extraUberStates map[string]string, assertedIndices []int, opts ...Option) ([]graph.Node, error) {
	reached, _, err := run(g, p, spawn, extraUberStates, assertedIndices, false, opts)
	return reached, err
}

// ReachedAndProgressions is ReachedLocations plus the list of unmet
// connections (and the orbs available when each was attempted) —
// candidates for "this item would help" hints. Connections deferred on a
// state whose target was still never reached are included as well.
func ReachedAndProgressions(g *graph.Graph, p player.Player, spawn string, extraUberStates map[string]string, assertedIndices []int, opts ...Option) ([]graph.Node, []Progression, error) {
	return run(g, p, spawn, extraUberStates, assertedIndices, true, opts)
}

func run(g *graph.Graph, p player.Player, spawn string, extraUberStates map[string]string, assertedIndices []int, progressionCheck bool, opts []Option) ([]graph.Node, []Progression, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	spawnIdx, ok := g.Index(spawn)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrSpawnNotFound, spawn)
	}
	if _, ok := g.Node(spawnIdx).(graph.Anchor); !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrSpawnNotAnchor, spawn)
	}

	ctx := newReachContext(g, p, progressionCheck, cfg.logger, collectExtraStates(g, extraUberStates, assertedIndices))
	ctx.reachRecursion(spawnIdx, true, orbs.Variants{p.MaxOrbs()})

	if progressionCheck {
		for state, pending := range ctx.stateProgressions {
			for _, pc := range pending {
				if _, ok := ctx.worldState[pc.conn.Target]; ok {
					continue
				}
				ctx.logger("reach: state %d never retried connection to node %d", state, pc.conn.Target)
				ctx.progressions = append(ctx.progressions, Progression{
					Requirement: pc.conn.Requirement,
					Orbs:        ctx.worldState[pc.from],
				})
			}
		}
	}

	return ctx.reached, ctx.progressions, nil
}

// collectExtraStates resolves the caller's externally-asserted state set:
// plain node indices in assertedIndices, plus any State/Quest node whose
// UberState key appears in extraUberStates with any non-empty value.
func collectExtraStates(g *graph.Graph, extraUberStates map[string]string, assertedIndices []int) map[int]bool {
	states := make(map[int]bool, len(assertedIndices))
	for i := 0; i < g.Len(); i++ {
		var uber string
		switch n := g.Node(i).(type) {
		case graph.State:
			uber = n.UberState
		case graph.Quest:
			uber = n.UberState
		default:
			continue
		}
		if uber == "" {
			continue
		}
		if value, ok := extraUberStates[uber]; ok && value != "" {
			states[i] = true
		}
	}
	for _, idx := range assertedIndices {
		states[idx] = true
	}
	return states
}

func (ctx *reachContext) reachRecursion(index int, isSpawn bool, bestOrbs orbs.Variants) {
	ctx.worldState[index] = bestOrbs

	switch n := ctx.graph.Node(index).(type) {
	case graph.Anchor:
		ctx.enterAnchor(index, n, bestOrbs, isSpawn)
	case graph.Pickup:
		ctx.reached = append(ctx.reached, n)
	case graph.State:
		ctx.states[index] = true
		ctx.followStateProgressions(index)
	case graph.Quest:
		ctx.states[index] = true
		ctx.reached = append(ctx.reached, n)
		ctx.followStateProgressions(index)
	}
}

func (ctx *reachContext) enterAnchor(index int, anchor graph.Anchor, bestOrbs orbs.Variants, isSpawn bool) {
	bestOrbs = ctx.applyRefills(anchor.Refills, bestOrbs)

	for _, conn := range anchor.Connections {
		if _, visited := ctx.worldState[conn.Target]; visited {
			continue
		}
		targetOrbs := ctx.tryConnection(conn, bestOrbs)
		if len(targetOrbs) == 0 {
			ctx.deferOrRecordProgression(index, conn, bestOrbs)
			continue
		}
		ctx.reachRecursion(conn.Target, false, targetOrbs)
	}

	if isSpawn {
		if hub, ok := ctx.graph.TeleporterHub(); ok {
			connected := false
			for _, conn := range anchor.Connections {
				if conn.Target == hub {
					connected = true
					break
				}
			}
			if !connected {
				if _, visited := ctx.worldState[hub]; !visited {
					ctx.reachRecursion(hub, false, bestOrbs)
				}
			}
		}
	}
}

// applyRefills applies anchor.Refills in declaration order: the first
// orb variant that satisfies a refill's gating requirement triggers it,
// which then restores the whole variant set by kind.
func (ctx *reachContext) applyRefills(refills []graph.Refill, bestOrbs orbs.Variants) orbs.Variants {
	for _, refill := range refills {
		for _, v := range bestOrbs {
			cost := requirement.IsMet(refill.Requirement, ctx.player, requirement.States(ctx.states), orbs.Variants{v})
			if len(cost) == 0 {
				continue
			}
			switch refill.Kind {
			case graph.RefillFull:
				bestOrbs = orbs.Variants{ctx.player.MaxOrbs()}
			case graph.RefillCheckpoint:
				bestOrbs = orbs.EitherSingle(bestOrbs, ctx.player.CheckpointOrbs())
			case graph.RefillHealth:
				bestOrbs = healAll(bestOrbs, refill.Amount, ctx.player.MaxHealth())
			case graph.RefillEnergy:
				bestOrbs = rechargeAll(bestOrbs, refill.Amount, ctx.player.MaxEnergy())
			}
			break
		}
	}
	return bestOrbs
}

func healAll(vs orbs.Variants, amount, maxHealth float32) orbs.Variants {
	out := make(orbs.Variants, len(vs))
	for i, v := range vs {
		out[i] = v.Heal(amount, maxHealth)
	}
	return out
}

func rechargeAll(vs orbs.Variants, amount, maxEnergy float32) orbs.Variants {
	out := make(orbs.Variants, len(vs))
	for i, v := range vs {
		out[i] = v.Recharge(amount, maxEnergy)
	}
	return out
}

// tryConnection evaluates conn.Requirement against bestOrbs and returns
// the Pareto-maximal residual variants across every starting variant
// that satisfies it. requirement.IsMet already folds the input variant
// into its result (it returns a full post-payment orb state, not a
// cost delta), so the residual is taken directly — no further
// combination with the pre-payment orbs is needed.
func (ctx *reachContext) tryConnection(conn graph.Connection, bestOrbs orbs.Variants) orbs.Variants {
	var target orbs.Variants
	for _, v := range bestOrbs {
		residual := requirement.IsMet(conn.Requirement, ctx.player, requirement.States(ctx.states), orbs.Variants{v})
		if len(residual) == 0 {
			continue
		}
		target = orbs.Either(target, residual)
	}
	return target
}

func (ctx *reachContext) deferOrRecordProgression(from int, conn graph.Connection, bestOrbs orbs.Variants) {
	pending := requirement.ContainedStates(conn.Requirement)
	var unknown []int
	for _, idx := range pending {
		if !ctx.states[idx] {
			unknown = append(unknown, idx)
		}
	}
	if len(unknown) == 0 {
		if ctx.progressionCheck {
			ctx.progressions = append(ctx.progressions, Progression{Requirement: conn.Requirement, Orbs: bestOrbs})
		}
		return
	}
	for _, idx := range unknown {
		ctx.stateProgressions[idx] = append(ctx.stateProgressions[idx], pendingConnection{from: from, conn: conn})
	}
}

func (ctx *reachContext) followStateProgressions(index int) {
	pending, ok := ctx.stateProgressions[index]
	if !ok {
		return
	}
	for _, pc := range pending {
		if _, visited := ctx.worldState[pc.conn.Target]; visited {
			continue
		}
		targetOrbs := ctx.tryConnection(pc.conn, ctx.worldState[pc.from])
		if len(targetOrbs) > 0 {
			ctx.reachRecursion(pc.conn.Target, false, targetOrbs)
		}
	}
}
