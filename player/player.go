package player

import (
	"math"
	"sort"

	"github.com/ori-community/wotw-seedgen-sub000/inventory"
	"github.com/ori-community/wotw-seedgen-sub000/item"
	"github.com/ori-community/wotw-seedgen-sub000/orbs"
	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

// shardSlotDamageBonus is an Unsafe-only additive damage_mod bonus keyed
// by shard, applied in this fixed priority order when shard slots are
// available. SpiritSurge's bonus is computed from spirit light count
// rather than being a flat constant, so it is handled separately.
var shardSlotDamageBonus = []struct {
	shard  item.Shard
	amount float32
}{
	{item.ShardLastStand, 0.2},
	{item.ShardReckless, 0.15},
	{item.ShardLifeforce, 0.1},
	{item.ShardFinesse, 0.05},
}

// Player derives combat and resource numbers from an Inventory under a
// fixed Settings. It holds no mutable state of its own: every method is
// a pure function of the inventory and settings it was built with.
type Player struct {
	Inventory inventory.Inventory
	Settings  settings.Settings
	// Hard mirrors the game's "hard mode" flag referenced by
	// NormalGameDifficulty and defense_mod; it is independent of
	// Settings.Difficulty, which governs logic tiers, not damage taken.
	Hard bool
}

// Option configures a Player built with New.
type Option func(*Player)

// WithHard sets the hard-mode flag.
func WithHard(hard bool) Option {
	return func(p *Player) { p.Hard = hard }
}

// New builds a Player from an inventory and settings.
func New(inv inventory.Inventory, set settings.Settings, opts ...Option) Player {
	p := Player{Inventory: inv, Settings: set}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func ceil32(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func (p Player) hasShard(s item.Shard) bool {
	return p.Inventory.Has(item.OfShard(s), 1)
}

// healthFragments returns the raw health-fragment count held, the
// Vitality-independent component of MaxHealth.
func (p Player) healthFragments() float32 {
	return float32(p.Inventory.Get(item.HealthFragment())) * 5
}

// energyFragments returns the raw energy-fragment component of
// MaxEnergy, before the Gorlek+ Energy shard bonus.
func (p Player) energyFragments() float32 {
	return float32(p.Inventory.Get(item.EnergyFragment())) * 0.5
}

// MaxHealth returns the player's maximum health.
func (p Player) MaxHealth() float32 {
	h := p.healthFragments()
	if p.Settings.Difficulty.AtLeast(settings.Gorlek) && p.hasShard(item.ShardVitality) {
		h += 10
	}
	return h
}

// MaxEnergy returns the player's maximum energy.
func (p Player) MaxEnergy() float32 {
	e := p.energyFragments()
	if p.Settings.Difficulty.AtLeast(settings.Gorlek) && p.hasShard(item.ShardEnergy) {
		e += 1
	}
	return e
}

// MaxOrbs returns the player's full-health, full-energy orb state.
func (p Player) MaxOrbs() orbs.Orbs {
	return orbs.Orbs{Health: p.MaxHealth(), Energy: p.MaxEnergy()}
}

// CapOrbs clamps o to the player's max health and energy.
func (p Player) CapOrbs(o orbs.Orbs) orbs.Orbs {
	return orbs.Orbs{Health: min32(o.Health, p.MaxHealth()), Energy: min32(o.Energy, p.MaxEnergy())}
}

// CapOrbsWithOverflow is CapOrbs extended with the Overflow shard: health
// or energy that would be clamped away instead spills into the other
// resource, up to its own max.
func (p Player) CapOrbsWithOverflow(o orbs.Orbs) orbs.Orbs {
	if !p.hasShard(item.ShardOverflow) {
		return p.CapOrbs(o)
	}
	maxHealth, maxEnergy := p.MaxHealth(), p.MaxEnergy()
	health, energy := o.Health, o.Energy
	if health > maxHealth {
		energy += health - maxHealth
		health = maxHealth
	}
	if energy > maxEnergy {
		health += energy - maxEnergy
		energy = maxEnergy
	}
	return orbs.Orbs{Health: min32(health, maxHealth), Energy: min32(energy, maxEnergy)}
}

// CheckpointOrbs returns the orbs granted by a Checkpoint refill.
// Vitality-granted bonus health is not restored on checkpoint, but
// Energy-shard bonus energy is, per the game's refill behavior.
func (p Player) CheckpointOrbs() orbs.Orbs {
	healthBase := p.healthFragments()
	energyMax := p.MaxEnergy()

	health := max32(ceil32(healthBase*0.3), 40)
	health = min32(health, healthBase)

	energy := max32(ceil32(energyMax*0.2), 1)
	energy = min32(energy, energyMax)

	return orbs.Orbs{Health: health, Energy: energy}
}

// HealthPlantDrops returns how many health fragments a health plant
// yields, rounded to even (banker's rounding) the way the game's drop
// table is computed from max health.
func (p Player) HealthPlantDrops() int {
	raw := p.MaxHealth() / 30
	return int(math.RoundToEven(float64(raw)))
}

// DefenseMod returns the multiplier applied to incoming damage.
func (p Player) DefenseMod() float32 {
	mod := float32(1.0)
	if p.Settings.Difficulty.AtLeast(settings.Gorlek) && p.hasShard(item.ShardResilience) {
		mod = 0.9
	}
	if p.Hard {
		mod *= 2.0
	}
	return mod
}

// EnergyMod returns the multiplier applied to energy skill costs.
func (p Player) EnergyMod() float32 {
	if p.Settings.Difficulty < settings.Unsafe {
		return 2.0
	}
	if p.hasShard(item.ShardOvercharge) {
		return 0.5
	}
	return 1.0
}

// ancestralLightCount counts how many of the two Ancestral Light skills
// are owned.
func (p Player) ancestralLightCount() float32 {
	count := float32(0)
	if p.Inventory.Has(item.OfSkill(item.SkillAncestralLight1), 1) {
		count++
	}
	if p.Inventory.Has(item.OfSkill(item.SkillAncestralLight2), 1) {
		count++
	}
	return count
}

// availableShardSlots returns how many shard slots the player has free
// to spend on damage_mod bonuses for this single computation. Shard
// slots gate the Unsafe-tier combat shards (Wingclip, SpiritSurge,
// LastStand, Reckless, Lifeforce, Finesse, Splinter): only as many as
// fit in owned slots apply, in their fixed priority order.
func (p Player) availableShardSlots() int {
	return int(p.Inventory.Get(item.ShardSlotItem()))
}

// DamageMod returns the outgoing damage multiplier for an attack against
// a target that may be flying, optionally via a Bow shot.
func (p Player) DamageMod(flying, bow bool) float32 {
	mod := float32(1.0)
	if p.Settings.Difficulty.AtLeast(settings.Gorlek) {
		mod += 0.25 * p.ancestralLightCount()
	}
	if p.Settings.Difficulty < settings.Unsafe {
		return mod
	}

	slots := p.availableShardSlots()
	spent := 0
	spend := func(active bool, amount float32) {
		if active && spent < slots {
			mod += amount
			spent++
		}
	}

	spend(flying && p.hasShard(item.ShardWingclip), 1.0)
	spend(p.hasShard(item.ShardSpiritSurge), float32(p.Inventory.Get(item.SpiritLight()))/10000)
	for _, bonus := range shardSlotDamageBonus {
		spend(p.hasShard(bonus.shard), bonus.amount)
	}

	if bow && p.hasShard(item.ShardSplinter) && spent < slots {
		mod *= 1.5
		spent++
	}

	return mod
}

// UseCost returns the energy cost of one use of skill.
func (p Player) UseCost(skill item.Skill) float32 {
	return skill.EnergyCost() * p.EnergyMod()
}

// DestroyCost returns the energy cost to destroy a target with
// targetHP health using skill, against a possibly flying target.
func (p Player) DestroyCost(targetHP float32, skill item.Skill, flying bool) float32 {
	effectiveDamage := skill.Damage()*p.DamageMod(flying, skill == item.SkillBow) + skill.BurnDamage()
	if effectiveDamage <= 0 {
		return 0
	}
	uses := ceil32(targetHP / effectiveDamage)
	return uses * p.UseCost(skill)
}

// wallPool is the general-purpose weapon roster usable against
// inanimate walls. Flash and Sentry are special-cased elsewhere (Flash
// joins the ranged pool only on Unsafe; Sentry is priced only through
// its own SentryBreak requirement) and are never members of this pool.
var wallPool = []item.Skill{
	item.SkillSword, item.SkillHammer, item.SkillBow, item.SkillGrenade,
	item.SkillShuriken, item.SkillBlaze, item.SkillSpear,
}

// shieldPool is the set of skills that can break a shield directly.
var shieldPool = []item.Skill{item.SkillHammer, item.SkillLaunch, item.SkillGrenade, item.SkillSpear}

// rangedPool returns the ranged weapon pool available at the player's
// difficulty: Bow and Spear always qualify; Grenade and Shuriken join at
// Gorlek+; Flash and Blaze join at Unsafe.
func (p Player) rangedPool() []item.Skill {
	pool := []item.Skill{item.SkillBow, item.SkillSpear}
	if p.Settings.Difficulty.AtLeast(settings.Gorlek) {
		pool = append(pool, item.SkillGrenade, item.SkillShuriken)
	}
	if p.Settings.Difficulty.AtLeast(settings.Unsafe) {
		pool = append(pool, item.SkillFlash, item.SkillBlaze)
	}
	return pool
}

func (p Player) ownedFrom(pool []item.Skill) []item.Skill {
	owned := make([]item.Skill, 0, len(pool))
	for _, s := range pool {
		if p.Inventory.Has(item.OfSkill(s), 1) {
			owned = append(owned, s)
		}
	}
	return owned
}

func (p Player) bestByDPE(owned []item.Skill) (item.Skill, bool) {
	if len(owned) == 0 {
		return 0, false
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].DamagePerEnergy() > owned[j].DamagePerEnergy()
	})
	return owned[0], true
}

// PreferredWallWeapon returns the owned wall-breaking weapon with the
// highest damage-per-energy.
func (p Player) PreferredWallWeapon() (item.Skill, bool) {
	return p.bestByDPE(p.ownedFrom(wallPool))
}

// PreferredRangedWeapon returns the owned ranged weapon with the highest
// damage-per-energy, from the pool available at the player's difficulty.
func (p Player) PreferredRangedWeapon() (item.Skill, bool) {
	return p.bestByDPE(p.ownedFrom(p.rangedPool()))
}

// PreferredShieldWeapon returns the owned shield-breaking weapon with
// the highest damage-per-energy.
func (p Player) PreferredShieldWeapon() (item.Skill, bool) {
	return p.bestByDPE(p.ownedFrom(shieldPool))
}

// ProgressionWeapons returns the owned weapons from the wall (or, if
// isWall is false, ranged) pool ranked by damage-per-energy, extended
// with the next not-yet-owned weapon from that pool as a progression
// hint. The result is empty only if the pool itself is empty.
func (p Player) ProgressionWeapons(isWall bool) []item.Skill {
	pool := wallPool
	if !isWall {
		pool = p.rangedPool()
	}
	owned := p.ownedFrom(pool)
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].DamagePerEnergy() > owned[j].DamagePerEnergy()
	})
	for _, s := range pool {
		if !p.Inventory.Has(item.OfSkill(s), 1) {
			owned = append(owned, s)
			break
		}
	}
	return owned
}

// MissingItems returns, for each of the given skills not currently
// owned, the Item that would need to be granted.
func (p Player) MissingItems(skills ...item.Skill) []item.Item {
	missing := make([]item.Item, 0, len(skills))
	for _, s := range skills {
		it := item.OfSkill(s)
		if !p.Inventory.Has(it, 1) {
			missing = append(missing, it)
		}
	}
	return missing
}

// MissingForOrbs returns the health and energy fragment counts still
// needed to reach the given target orb maximums, given the player's
// current inventory and settings.
func (p Player) MissingForOrbs(target orbs.Orbs) (healthFragments, energyFragments int) {
	if missingHealth := target.Health - p.MaxHealth(); missingHealth > 0 {
		healthFragments = int(math.Ceil(float64(missingHealth) / 5))
	}
	if missingEnergy := target.Energy - p.MaxEnergy(); missingEnergy > 0 {
		energyFragments = int(math.Ceil(float64(missingEnergy) / 0.5))
	}
	return healthFragments, energyFragments
}
