package requirement

import (
	"math"
	"sort"

	"github.com/ori-community/wotw-seedgen-sub000/item"
	"github.com/ori-community/wotw-seedgen-sub000/orbs"
	"github.com/ori-community/wotw-seedgen-sub000/player"
	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

// States is the set of externally-asserted world state indices visible
// to a StateSet leaf during evaluation.
type States map[int]bool

// Contains reports whether idx has been asserted.
func (s States) Contains(idx int) bool { return s[idx] }

// shurikenClipMod is ShurikenBreak's destroy-cost multiplier: tighter on
// Unsafe, where the player is assumed to clip shots more reliably.
func shurikenClipMod(p player.Player) float32 {
	if p.Settings.Difficulty.AtLeast(settings.Unsafe) {
		return 2.0
	}
	return 3.0
}

// sentryClipMod is SentryBreak's fixed destroy-cost multiplier.
const sentryClipMod = 6.25

// IsMet evaluates req against p and the asserted states, starting from
// in (the Pareto-maximal orb variants available before paying this
// requirement's cost). It returns the Pareto-maximal residual variants;
// an empty result means req cannot be satisfied from any input variant.
func IsMet(req Requirement, p player.Player, states States, in orbs.Variants) orbs.Variants {
	if len(in) == 0 {
		return nil
	}
	switch r := req.(type) {
	case Free:
		return in
	case Impossible:
		return nil
	case DifficultyAtLeast:
		if p.Settings.Difficulty.AtLeast(r.Difficulty) {
			return in
		}
		return nil
	case NormalGameDifficulty:
		if !p.Hard {
			return in
		}
		return nil
	case Trick:
		if p.Settings.HasTrick(r.Name) {
			return in
		}
		return nil
	case HasSkill:
		if p.Inventory.Has(item.OfSkill(r.Skill), 1) {
			return in
		}
		return nil
	case HasShard:
		if p.Inventory.Has(item.OfShard(r.Shard), 1) {
			return in
		}
		return nil
	case HasTeleporter:
		if p.Inventory.Has(item.OfTeleporter(r.Teleporter), 1) {
			return in
		}
		return nil
	case HasWater:
		if p.Inventory.Has(item.CleanWater(), 1) {
			return in
		}
		return nil
	case SpiritLightAtLeast:
		if p.Inventory.Has(item.SpiritLight(), uint16(r.Amount)) {
			return in
		}
		return nil
	case GorlekOreAtLeast:
		if p.Inventory.Has(item.GorlekOre(), uint16(r.Amount)) {
			return in
		}
		return nil
	case KeystoneAtLeast:
		if p.Inventory.Has(item.Keystone(), uint16(r.Amount)) {
			return in
		}
		return nil
	case StateSet:
		if states.Contains(r.Index) {
			return in
		}
		return nil

	case EnergySkill:
		cost := p.UseCost(r.Skill) * float32(r.Count)
		return payEnergyCostAll(p, in, cost, true)
	case NonConsumingEnergySkill:
		cost := p.UseCost(r.Skill)
		return payEnergyCostAll(p, in, cost, false)

	case Damage:
		cost := r.Amount * p.DefenseMod()
		return payHealthCostAll(p, in, cost, true)
	case Danger:
		threshold := r.Amount * p.DefenseMod()
		return payHealthCostAll(p, in, threshold, false)

	case BreakWall:
		return payDestroyCost(p, in, r.HP, false, wallDestroyCost)
	case Boss:
		return payDestroyCost(p, in, r.HP, false, wallDestroyCost)
	case ShurikenBreak:
		cost := func(p player.Player, hp float32, flying bool) (float32, bool) {
			return p.DestroyCost(hp, item.SkillShuriken, flying) * shurikenClipMod(p), true
		}
		return payDestroyCost(p, in, r.HP, false, cost)
	case SentryBreak:
		cost := func(p player.Player, hp float32, flying bool) (float32, bool) {
			return p.DestroyCost(hp, item.SkillSentry, flying) * sentryClipMod, true
		}
		return payDestroyCost(p, in, r.HP, false, cost)

	case Combat:
		return evalCombat(p, in, r.Steps)

	case And:
		variants := in
		for _, child := range r.Children {
			variants = IsMet(child, p, states, variants)
			if len(variants) == 0 {
				return nil
			}
		}
		return variants

	case Or:
		var result orbs.Variants
		for _, child := range r.Children {
			res := IsMet(child, p, states, in)
			if len(res) == 0 {
				continue
			}
			result = orbs.Either(result, res)
			if variantsEqual(res, in) {
				break
			}
		}
		return result

	default:
		return nil
	}
}

// wallDestroyCost prices a BreakWall/Boss leaf using the player's
// preferred wall-breaking weapon; it fails (ok=false) if none is owned.
func wallDestroyCost(p player.Player, hp float32, flying bool) (float32, bool) {
	weapon, ok := p.PreferredWallWeapon()
	if !ok {
		return 0, false
	}
	return p.DestroyCost(hp, weapon, flying), true
}

type destroyCostFunc func(p player.Player, hp float32, flying bool) (float32, bool)

func payDestroyCost(p player.Player, in orbs.Variants, hp float32, flying bool, cost destroyCostFunc) orbs.Variants {
	amount, ok := cost(p, hp, flying)
	if !ok {
		return nil
	}
	return payEnergyCostAll(p, in, amount, true)
}

// payEnergyCostAll applies payEnergyCost to every input variant and
// returns the Pareto-maximal union of every variant's successful
// outcomes.
func payEnergyCostAll(p player.Player, in orbs.Variants, cost float32, consuming bool) orbs.Variants {
	var out orbs.Variants
	for _, v := range in {
		out = append(out, payEnergyCost(p, v, cost, consuming)...)
	}
	return paretoClose(out)
}

// payEnergyCost implements the pay_cost policy for an energy-denominated
// cost: pay directly from energy if possible, else (Unsafe, LifePact)
// convert the shortfall to health. The game tracks the health cost two
// ways at once - a flat 10-health-per-energy rate, and that rate scaled
// by defense_mod - and gates on whichever is higher while only
// deducting the (possibly cheaper) defense_mod-scaled amount. A
// successful LifePact pay drains energy to exactly zero when consuming,
// or refunds the shortfall back as energy when not. When Regenerate is
// also known, an extra variant is produced by regenerating 30 health
// first and retrying, since waiting to pay in health can otherwise
// strand the player unable to Regenerate later.
func payEnergyCost(p player.Player, v orbs.Orbs, cost float32, consuming bool) []orbs.Orbs {
	hasLifePact := p.Settings.Difficulty.AtLeast(settings.Unsafe) && p.Inventory.Has(item.OfShard(item.ShardLifePact), 1)

	var out []orbs.Orbs
	if hasLifePact && consuming && p.Inventory.Has(item.OfSkill(item.SkillRegenerate), 1) {
		gameThinksRegenCost := item.SkillRegenerate.EnergyCost()
		regenCost := p.UseCost(item.SkillRegenerate)
		higherCost := max32(regenCost, gameThinksRegenCost)
		if v.Energy >= higherCost && p.MaxHealth()-v.Health > regenCost {
			pre := orbs.Orbs{Health: v.Health, Energy: v.Energy - regenCost}.Heal(30, p.MaxHealth())
			if paid, ok := payEnergyCostDirect(p, pre, cost, consuming, hasLifePact); ok {
				out = append(out, paid)
			}
		}
	}

	if paid, ok := payEnergyCostDirect(p, v, cost, consuming, hasLifePact); ok {
		out = append(out, paid)
	}
	return out
}

// payEnergyCostDirect pays cost out of v without considering the
// regenerate-first alternative, looping through successive Regenerate
// rounds if a single one doesn't clear the LifePact health gate.
func payEnergyCostDirect(p player.Player, v orbs.Orbs, cost float32, consuming, hasLifePact bool) (orbs.Orbs, bool) {
	if v.Energy >= cost {
		if consuming {
			v.Energy -= cost
		}
		return v, true
	}
	if !hasLifePact {
		return v, false
	}
	for {
		missingEnergy := cost - v.Energy
		gameThinksHealthCost := missingEnergy * 10
		healthCost := gameThinksHealthCost * p.DefenseMod()
		higherCost := max32(healthCost, gameThinksHealthCost)
		if v.Health > higherCost {
			v.Health -= healthCost
			if consuming {
				v.Energy = 0
			} else {
				v = v.Recharge(missingEnergy, p.MaxEnergy())
			}
			return v, true
		}
		if !p.Inventory.Has(item.OfSkill(item.SkillRegenerate), 1) {
			return v, false
		}
		var ok bool
		v, ok = regenerateAsNeeded(p, v, higherCost)
		if !ok {
			return v, false
		}
	}
}

// regenerateAsNeeded heals v with enough 30-health Regenerate rounds to
// clear cost, charging use_cost(Regenerate) energy per round. It fails
// if energy goes negative, or if the energy held before the final round
// is less than the game's undiscounted idea of what one round costs.
func regenerateAsNeeded(p player.Player, v orbs.Orbs, cost float32) (orbs.Orbs, bool) {
	regens := float32(math.Ceil(float64((cost - v.Health) / 30)))
	if v.Health+30*regens <= cost {
		regens++
	}
	v = v.Heal(30*regens, p.MaxHealth())
	gameThinksRegenCost := item.SkillRegenerate.EnergyCost()
	regenCost := p.UseCost(item.SkillRegenerate)
	v.Energy -= regenCost * regens
	ok := v.Energy >= 0 && v.Energy+regenCost-gameThinksRegenCost >= 0
	return v, ok
}

// max32 returns the larger of a and b.
func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// payHealthCostAll applies payHealthCost to every input variant.
func payHealthCostAll(p player.Player, in orbs.Variants, cost float32, consuming bool) orbs.Variants {
	var out orbs.Variants
	for _, v := range in {
		out = append(out, payHealthCost(p, v, cost, consuming)...)
	}
	return paretoClose(out)
}

// payHealthCost pays a health-denominated cost (Damage, or Danger with
// consuming=false) directly when v.Health already clears cost, or, if
// Regenerate is known and reachable (max health above cost), by
// regenerating first via regenerateAsNeeded. The energy spent
// regenerating always applies once regeneration was attempted, even for
// a non-consuming (Danger) check where the health cost itself is never
// deducted.
func payHealthCost(p player.Player, v orbs.Orbs, cost float32, consuming bool) []orbs.Orbs {
	met := v.Health > cost
	if !met && p.Inventory.Has(item.OfSkill(item.SkillRegenerate), 1) && p.MaxHealth() > cost {
		regenerated, ok := regenerateAsNeeded(p, v, cost)
		if ok {
			v = regenerated
			met = true
		}
	}
	if !met {
		return nil
	}
	if consuming {
		v.Health -= cost
	}
	return []orbs.Orbs{v}
}

func evalCombat(p player.Player, in orbs.Variants, steps []CombatStep) orbs.Variants {
	variants := in
	accumulated := float32(0)
	for _, step := range steps {
		if step.Refill {
			variants = payEnergyCostAll(p, variants, accumulated, true)
			if len(variants) == 0 {
				return nil
			}
			accumulated = 0
			next := make(orbs.Variants, len(variants))
			for i, v := range variants {
				next[i] = v.Recharge(step.RefillAmount, p.MaxEnergy())
			}
			variants = next
			continue
		}

		if step.Enemy == item.EnemySandworm {
			if p.Inventory.Has(item.OfSkill(item.SkillBurrow), 1) || p.Settings.Difficulty.AtLeast(settings.Unsafe) {
				continue
			}
			return nil
		}

		if p.Settings.Difficulty < settings.Unsafe {
			if step.Enemy.Aerial() {
				hasBash := p.Settings.Difficulty.AtLeast(settings.Gorlek) && p.Inventory.Has(item.OfSkill(item.SkillBash), 1)
				if !p.Inventory.Has(item.OfSkill(item.SkillDoubleJump), 1) &&
					!p.Inventory.Has(item.OfSkill(item.SkillLaunch), 1) && !hasBash {
					return nil
				}
			}
			if step.Enemy.Dangerous() {
				if !p.Inventory.Has(item.OfSkill(item.SkillDoubleJump), 1) &&
					!p.Inventory.Has(item.OfSkill(item.SkillDash), 1) &&
					!p.Inventory.Has(item.OfSkill(item.SkillBash), 1) &&
					!p.Inventory.Has(item.OfSkill(item.SkillLaunch), 1) {
					return nil
				}
			}
			if step.Enemy == item.EnemyBat && !p.Inventory.Has(item.OfSkill(item.SkillBash), 1) {
				return nil
			}
			if step.Enemy.Ranged() {
				if _, ok := p.PreferredRangedWeapon(); !ok {
					return nil
				}
			}
		}

		weapon, ok := p.PreferredWallWeapon()
		if !ok {
			return nil
		}
		health := step.Enemy.Health()
		if step.Enemy.Shielded() {
			shield, sok := p.PreferredShieldWeapon()
			if !sok {
				return nil
			}
			accumulated += p.UseCost(shield) * float32(step.Count)
			health -= shield.BurnDamage()
		}
		if step.Enemy.Armored() && p.Settings.Difficulty < settings.Unsafe {
			health *= 2
		}
		accumulated += p.DestroyCost(health, weapon, step.Enemy.Flying()) * float32(step.Count)
	}
	if accumulated > 0 {
		variants = payEnergyCostAll(p, variants, accumulated, true)
	}
	return variants
}

// paretoClose is the evaluator-local equivalent of orbs.Either folded
// over a single already-collected set: it drops dominated duplicates
// without introducing the default-zero-variant fallback Either applies
// to two empty sides.
func paretoClose(vs orbs.Variants) orbs.Variants {
	if len(vs) == 0 {
		return nil
	}
	return orbs.Either(vs, nil)
}

func variantsEqual(a, b orbs.Variants) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append(orbs.Variants{}, a...)
	sb := append(orbs.Variants{}, b...)
	sort.Slice(sa, func(i, j int) bool { return less(sa[i], sa[j]) })
	sort.Slice(sb, func(i, j int) bool { return less(sb[i], sb[j]) })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func less(a, b orbs.Orbs) bool {
	if a.Health != b.Health {
		return a.Health < b.Health
	}
	return a.Energy < b.Energy
}
