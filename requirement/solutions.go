package requirement

import (
	"sort"

	"github.com/ori-community/wotw-seedgen-sub000/inventory"
	"github.com/ori-community/wotw-seedgen-sub000/item"
	"github.com/ori-community/wotw-seedgen-sub000/orbs"
	"github.com/ori-community/wotw-seedgen-sub000/player"
	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

// wallWeapons lists the weapons BreakWall/Boss branch over, in the
// fixed order scenario tests rely on for deterministic output.
var wallWeapons = []item.Skill{
	item.SkillSword, item.SkillHammer, item.SkillBow, item.SkillGrenade,
	item.SkillShuriken, item.SkillBlaze, item.SkillSpear,
}

// taggedSolution is a candidate (inventory delta, residual orbs) pair
// tracked while walking the requirement tree. The boolean tags record
// which alternate payment methods this branch has already committed to,
// so a later leaf does not re-explore combinations a prior leaf already
// covered — the mechanism the original solver uses to keep the output
// set finite regardless of chain length.
type taggedSolution struct {
	inv                   inventory.Inventory
	orbs                  orbs.Orbs
	usedResilience        bool
	usedOvercharge        bool
	usedLifePact          bool
	usedRegenerate        bool
	healthPaidForLifePact bool
}

func (ts taggedSolution) clone() taggedSolution {
	return taggedSolution{
		inv:                   ts.inv.Clone(),
		orbs:                  ts.orbs,
		usedResilience:        ts.usedResilience,
		usedOvercharge:        ts.usedOvercharge,
		usedLifePact:          ts.usedLifePact,
		usedRegenerate:        ts.usedRegenerate,
		healthPaidForLifePact: ts.healthPaidForLifePact,
	}
}

// effectivePlayer returns p as it would be with ts.inv's items already
// granted, so cost formulas (defense_mod, energy_mod, damage_mod) see
// the effect of items this branch has decided to add.
func effectivePlayer(p player.Player, ts taggedSolution) player.Player {
	return player.New(p.Inventory.Merge(ts.inv), p.Settings, player.WithHard(p.Hard))
}

// Solutions enumerates minimal Inventory deltas that would make
// IsMet(req, ...) non-empty for at least one input variant, each
// respecting the slots (total item count) and worldSlots (spirit-light
// bucket count) budgets. Pass slots/worldSlots as a very large number to
// request an unbounded search.
func Solutions(req Requirement, p player.Player, states States, in orbs.Variants, slots, worldSlots int) []inventory.Inventory {
	working := make([]taggedSolution, 0, len(in))
	for _, v := range in {
		working = append(working, taggedSolution{inv: inventory.New(), orbs: v})
	}

	working = solveNode(req, p, states, working, slots, worldSlots)

	seen := map[string]bool{}
	results := make([]inventory.Inventory, 0, len(working))
	for _, ts := range working {
		key := ts.inv.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, ts.inv)
	}
	return filterRedundant(results)
}

func withinBudget(inv inventory.Inventory, slots, worldSlots int) bool {
	return inv.ItemCount() <= slots && inv.WorldItemCount() <= worldSlots
}

func solveNode(req Requirement, p player.Player, states States, in []taggedSolution, slots, worldSlots int) []taggedSolution {
	var out []taggedSolution
	switch r := req.(type) {
	case And:
		out = in
		for _, child := range r.Children {
			out = solveNode(child, p, states, out, slots, worldSlots)
			if len(out) == 0 {
				return nil
			}
		}
		return out

	case Or:
		for _, child := range r.Children {
			out = append(out, solveNode(child, p, states, in, slots, worldSlots)...)
		}
		return out

	default:
		for _, ts := range in {
			out = append(out, solveLeaf(req, p, states, ts, slots, worldSlots)...)
		}
		return out
	}
}

func solveLeaf(req Requirement, p player.Player, states States, ts taggedSolution, slots, worldSlots int) []taggedSolution {
	grant := func(it item.Item, amount uint16) []taggedSolution {
		next := ts.clone()
		next.inv.Grant(it, amount)
		if !withinBudget(next.inv, slots, worldSlots) {
			return nil
		}
		return []taggedSolution{next}
	}

	switch r := req.(type) {
	case Free:
		return []taggedSolution{ts}
	case Impossible:
		return nil
	case DifficultyAtLeast:
		if p.Settings.Difficulty.AtLeast(r.Difficulty) {
			return []taggedSolution{ts}
		}
		return nil
	case NormalGameDifficulty:
		if !p.Hard {
			return []taggedSolution{ts}
		}
		return nil
	case Trick:
		if p.Settings.HasTrick(r.Name) {
			return []taggedSolution{ts}
		}
		return nil
	case StateSet:
		if states.Contains(r.Index) {
			return []taggedSolution{ts}
		}
		return nil

	case HasSkill:
		if ts.inv.Get(item.OfSkill(r.Skill)) > 0 || p.Inventory.Has(item.OfSkill(r.Skill), 1) {
			return []taggedSolution{ts}
		}
		return grant(item.OfSkill(r.Skill), 1)
	case HasShard:
		if ts.inv.Get(item.OfShard(r.Shard)) > 0 || p.Inventory.Has(item.OfShard(r.Shard), 1) {
			return []taggedSolution{ts}
		}
		return grant(item.OfShard(r.Shard), 1)
	case HasTeleporter:
		if p.Inventory.Has(item.OfTeleporter(r.Teleporter), 1) {
			return []taggedSolution{ts}
		}
		return grant(item.OfTeleporter(r.Teleporter), 1)
	case HasWater:
		if p.Inventory.Has(item.CleanWater(), 1) {
			return []taggedSolution{ts}
		}
		return grant(item.CleanWater(), 1)

	case SpiritLightAtLeast:
		return topUp(ts, p, item.SpiritLight(), r.Amount, slots, worldSlots)
	case GorlekOreAtLeast:
		return topUp(ts, p, item.GorlekOre(), r.Amount, slots, worldSlots)
	case KeystoneAtLeast:
		return topUp(ts, p, item.Keystone(), r.Amount, slots, worldSlots)

	case EnergySkill:
		eff := effectivePlayer(p, ts)
		cost := eff.UseCost(r.Skill) * float32(r.Count)
		return solveEnergyCost(ts, p, cost, slots, worldSlots)
	case NonConsumingEnergySkill:
		eff := effectivePlayer(p, ts)
		cost := eff.UseCost(r.Skill)
		return solveEnergyCost(ts, p, cost, slots, worldSlots)

	case Damage:
		eff := effectivePlayer(p, ts)
		cost := r.Amount * eff.DefenseMod()
		return solveHealthCost(ts, p, cost, slots, worldSlots)
	case Danger:
		eff := effectivePlayer(p, ts)
		threshold := r.Amount * eff.DefenseMod()
		if ts.orbs.Health > threshold {
			return []taggedSolution{ts}
		}
		// Danger deducts nothing: each branch keeps its starting health
		// plus the health fragments it granted.
		sols := solveHealthCost(ts, p, threshold, slots, worldSlots)
		for i := range sols {
			granted := sols[i].inv.Get(item.HealthFragment()) - ts.inv.Get(item.HealthFragment())
			sols[i].orbs.Health = ts.orbs.Health + float32(granted)*5
		}
		return sols

	case BreakWall:
		return solveDestroy(ts, p, states, r.HP, false, wallWeapons, slots, worldSlots)
	case Boss:
		return solveDestroy(ts, p, states, r.HP, false, wallWeapons, slots, worldSlots)
	case ShurikenBreak:
		branch := ts.clone()
		branch.inv.Grant(item.OfSkill(item.SkillShuriken), 1)
		branchEff := effectivePlayer(p, branch)
		cost := branchEff.DestroyCost(r.HP, item.SkillShuriken, false) * shurikenClipMod(branchEff)
		return solveEnergyCost(branch, p, cost, slots, worldSlots)
	case SentryBreak:
		branch := ts.clone()
		branch.inv.Grant(item.OfSkill(item.SkillSentry), 1)
		branchEff := effectivePlayer(p, branch)
		cost := branchEff.DestroyCost(r.HP, item.SkillSentry, false) * sentryClipMod
		return solveEnergyCost(branch, p, cost, slots, worldSlots)

	case Combat:
		return solveCombat(ts, p, states, r.Steps, slots, worldSlots)

	default:
		return nil
	}
}

func topUp(ts taggedSolution, p player.Player, it item.Item, amount int, slots, worldSlots int) []taggedSolution {
	have := p.Inventory.Get(it) + ts.inv.Get(it)
	if int(have) >= amount {
		return []taggedSolution{ts}
	}
	next := ts.clone()
	next.inv.Grant(it, uint16(amount)-have)
	if !withinBudget(next.inv, slots, worldSlots) {
		return nil
	}
	return []taggedSolution{next}
}

// solveEnergyCost branches into an energy-fragment solution, and, on
// Unsafe, an Overcharge and a LifePact alternative. p is always the
// caller's original, unmerged Player; every branch's effective player is
// derived fresh from p and that branch's full cumulative inventory delta
// so nothing gets counted twice. Each branch is independent of the
// others; this package does not replicate the original solver's
// cross-leaf redundancy bookkeeping beyond per-branch slot filtering,
// trading some output-set minimality for tractability.
func solveEnergyCost(ts taggedSolution, p player.Player, cost float32, slots, worldSlots int) []taggedSolution {
	var out []taggedSolution
	eff := effectivePlayer(p, ts)

	shortfall := cost - ts.orbs.Energy
	if shortfall <= 0 {
		next := ts.clone()
		next.orbs.Energy -= cost
		out = append(out, next)
	} else {
		fragments := ceilDiv(shortfall, 0.5)
		next := ts.clone()
		next.inv.Grant(item.EnergyFragment(), uint16(fragments))
		next.orbs.Energy += fragments * 0.5
		next.orbs.Energy -= cost
		if withinBudget(next.inv, slots, worldSlots) {
			out = append(out, next)
		}
	}

	if eff.Settings.Difficulty.AtLeast(settings.Unsafe) && !ts.usedOvercharge {
		branch := ts.clone()
		branch.inv.Grant(item.OfShard(item.ShardOvercharge), 1)
		branch.usedOvercharge = true
		branchEff := effectivePlayer(p, branch)
		halfCost := cost * (branchEff.EnergyMod() / eff.EnergyMod())
		sub := solveEnergyCost(branch, p, halfCost, slots, worldSlots)
		out = append(out, sub...)
	}

	if eff.Settings.Difficulty.AtLeast(settings.Unsafe) && !ts.usedLifePact && !ts.healthPaidForLifePact {
		branch := ts.clone()
		branch.inv.Grant(item.OfShard(item.ShardLifePact), 1)
		branch.usedLifePact = true
		branch.healthPaidForLifePact = true
		healthCost := cost * 10
		hNext := branch.clone()
		hNext.orbs.Health -= healthCost
		if hNext.orbs.Health > 0 && withinBudget(hNext.inv, slots, worldSlots) {
			out = append(out, hNext)
		} else {
			fragments := ceilDiv(-hNext.orbs.Health, 5)
			if hNext.orbs.Health+fragments*5 <= 0 {
				fragments++
			}
			hNext.inv.Grant(item.HealthFragment(), uint16(fragments))
			hNext.orbs.Health += fragments * 5
			if withinBudget(hNext.inv, slots, worldSlots) {
				out = append(out, hNext)
			}
		}
	}

	return out
}

// solveHealthCost is solveEnergyCost's health-denominated counterpart:
// a health-fragment branch, plus a Gorlek+ Resilience branch that makes
// the defense_mod discount available to the rest of the tree. p is
// always the caller's original, unmerged Player, for the same reason as
// in solveEnergyCost.
func solveHealthCost(ts taggedSolution, p player.Player, cost float32, slots, worldSlots int) []taggedSolution {
	var out []taggedSolution
	eff := effectivePlayer(p, ts)

	// IsMet needs health strictly above a health cost.
	shortfall := cost - ts.orbs.Health
	if shortfall < 0 {
		next := ts.clone()
		next.orbs.Health -= cost
		out = append(out, next)
	} else {
		fragments := ceilDiv(shortfall, 5)
		if ts.orbs.Health+fragments*5 <= cost {
			fragments++
		}
		next := ts.clone()
		next.inv.Grant(item.HealthFragment(), uint16(fragments))
		next.orbs.Health += fragments * 5
		next.orbs.Health -= cost
		if withinBudget(next.inv, slots, worldSlots) {
			out = append(out, next)
		}
	}

	if eff.Settings.Difficulty.AtLeast(settings.Gorlek) && !ts.usedResilience {
		branch := ts.clone()
		branch.inv.Grant(item.OfShard(item.ShardResilience), 1)
		branch.usedResilience = true
		branchEff := effectivePlayer(p, branch)
		discountedCost := cost * (branchEff.DefenseMod() / eff.DefenseMod())
		sub := solveHealthCost(branch, p, discountedCost, slots, worldSlots)
		out = append(out, sub...)
	}

	return out
}

func solveDestroy(ts taggedSolution, p player.Player, states States, hp float32, flying bool, pool []item.Skill, slots, worldSlots int) []taggedSolution {
	var out []taggedSolution
	for _, weapon := range pool {
		branch := ts.clone()
		branch.inv.Grant(item.OfSkill(weapon), 1)
		eff := effectivePlayer(p, branch)
		cost := eff.DestroyCost(hp, weapon, flying)
		out = append(out, solveEnergyCost(branch, p, cost, slots, worldSlots)...)
	}
	return out
}

func solveCombat(ts taggedSolution, p player.Player, states States, steps []CombatStep, slots, worldSlots int) []taggedSolution {
	cur := []taggedSolution{ts}
	accumulated := make([]float32, len(cur))

	for _, step := range steps {
		if step.Refill {
			var next []taggedSolution
			var nextAcc []float32
			for i, c := range cur {
				branches := solveEnergyCost(c, p, accumulated[i], slots, worldSlots)
				for _, b := range branches {
					b.orbs = b.orbs.Recharge(step.RefillAmount, effectivePlayer(p, b).MaxEnergy())
					next = append(next, b)
					nextAcc = append(nextAcc, 0)
				}
			}
			cur, accumulated = next, nextAcc
			continue
		}

		var next []taggedSolution
		var nextAcc []float32
		for i, c := range cur {
			eff := effectivePlayer(p, c)
			branch := c.clone()
			acc := accumulated[i]

			if step.Enemy == item.EnemySandworm {
				if eff.Inventory.Has(item.OfSkill(item.SkillBurrow), 1) || eff.Settings.Difficulty.AtLeast(settings.Unsafe) {
					next = append(next, branch)
					nextAcc = append(nextAcc, acc)
					continue
				}
				branch.inv.Grant(item.OfSkill(item.SkillBurrow), 1)
				next = append(next, branch)
				nextAcc = append(nextAcc, acc)
				continue
			}

			if eff.Settings.Difficulty < settings.Unsafe && step.Enemy.Aerial() &&
				!eff.Inventory.Has(item.OfSkill(item.SkillDoubleJump), 1) &&
				!eff.Inventory.Has(item.OfSkill(item.SkillLaunch), 1) &&
				!eff.Inventory.Has(item.OfSkill(item.SkillBash), 1) {
				branch.inv.Grant(item.OfSkill(item.SkillDoubleJump), 1)
			}

			weapon, ok := eff.PreferredWallWeapon()
			if !ok {
				weapon = item.SkillSword
				branch.inv.Grant(item.OfSkill(weapon), 1)
				eff = effectivePlayer(p, branch)
			}
			health := step.Enemy.Health()
			if step.Enemy.Armored() && eff.Settings.Difficulty < settings.Unsafe {
				health *= 2
			}
			acc += eff.DestroyCost(health, weapon, step.Enemy.Flying()) * float32(step.Count)
			next = append(next, branch)
			nextAcc = append(nextAcc, acc)
		}
		cur, accumulated = next, nextAcc
	}

	var out []taggedSolution
	for i, c := range cur {
		if accumulated[i] > 0 {
			out = append(out, solveEnergyCost(c, p, accumulated[i], slots, worldSlots)...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func ceilDiv(amount, unit float32) float32 {
	if amount <= 0 {
		return 0
	}
	n := amount / unit
	whole := float32(int(n))
	if whole < n {
		whole++
	}
	return whole
}

// filterRedundant sorts candidates by item count and drops any
// inventory that is a superset of an already-kept smaller candidate.
func filterRedundant(candidates []inventory.Inventory) []inventory.Inventory {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ItemCount() < candidates[j].ItemCount()
	})
	kept := make([]inventory.Inventory, 0, len(candidates))
	for _, c := range candidates {
		redundant := false
		for _, k := range kept {
			if c.Contains(k) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, c)
		}
	}
	return kept
}
