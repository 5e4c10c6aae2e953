package item

import "math"

// Skill is a learnable ability. Two of the variants, AncestralLight1 and
// AncestralLight2, model a pair of distinct single-instance skills rather
// than a counted resource: the player's damage bonus counts how many of
// the two are owned, matching the original game's item design.
type Skill uint8

const (
	SkillSword Skill = iota
	SkillHammer
	SkillBow
	SkillGrenade
	SkillShuriken
	SkillBlaze
	SkillFlash
	SkillSpear
	SkillSentry
	SkillFlap

	SkillLaunch
	SkillDoubleJump
	SkillDash
	SkillBash
	SkillGlide
	SkillBurrow
	SkillWaterBreath
	SkillWallJump
	SkillGrapple
	SkillWaterDash
	SkillSeir
	SkillRegenerate

	SkillAncestralLight1
	SkillAncestralLight2
)

// IsWeapon reports whether the skill is usable as a combat weapon priced
// by the damage/energy tables below.
func (s Skill) IsWeapon() bool {
	switch s {
	case SkillSword, SkillHammer, SkillBow, SkillGrenade, SkillShuriken,
		SkillBlaze, SkillFlash, SkillSpear, SkillSentry:
		return true
	default:
		return false
	}
}

// IsShield reports whether the skill can be used to break shielded
// enemies without first dropping their shield.
func (s Skill) IsShield() bool {
	switch s {
	case SkillHammer, SkillSpear:
		return true
	default:
		return false
	}
}

// IsRanged reports whether the skill can hit aerial/ranged enemies from
// a distance.
func (s Skill) IsRanged() bool {
	switch s {
	case SkillBow, SkillGrenade, SkillSpear, SkillFlash, SkillSentry:
		return true
	default:
		return false
	}
}

// weaponStats holds the damage, burn-over-time damage, and energy cost
// per use of a weapon skill. Values are those the game's constant table
// uses; burn damage is added to the instantaneous hit for is-enough-to-
// kill computations but does not change the energy price.
type weaponStats struct {
	damage float32
	burn   float32
	energy float32
}

var weaponTable = map[Skill]weaponStats{
	SkillSword:    {damage: 18, energy: 0},
	SkillHammer:   {damage: 32, energy: 0},
	SkillBow:      {damage: 4, energy: 0.25},
	SkillGrenade:  {damage: 9, energy: 0.5},
	SkillShuriken: {damage: 6, energy: 0.5},
	SkillBlaze:    {damage: 4, burn: 2, energy: 0.5},
	SkillFlash:    {damage: 5, energy: 1},
	SkillSpear:    {damage: 28, energy: 2},
	SkillSentry:   {damage: 17, energy: 1},
	// Launch is a movement skill, not a priced weapon, but it can smash
	// through a shield for free; it is only ever looked up from the
	// shield-breaking weapon pool, never from IsWeapon()'s listing.
	SkillLaunch: {damage: 999, energy: 0},
	// Regenerate has no damage component; its energy entry prices one
	// activation (one 30-health heal) for the requirement package's
	// health-cost payment fallback.
	SkillRegenerate: {damage: 0, energy: 1},
}

// Damage returns the per-use base damage of a weapon skill, before any
// damage_mod multiplier and before burn damage is added back in.
func (s Skill) Damage() float32 {
	return weaponTable[s].damage
}

// BurnDamage returns the per-use burn-over-time damage of a weapon
// skill, added after damage_mod is applied to the base damage.
func (s Skill) BurnDamage() float32 {
	return weaponTable[s].burn
}

// EnergyCost returns the per-use energy cost of a weapon skill.
func (s Skill) EnergyCost() float32 {
	return weaponTable[s].energy
}

// DamagePerEnergy ranks weapons for preferred-weapon selection: weapons
// with zero energy cost are free and always preferred over any that
// cost energy (their ratio is reported as +Inf).
func (s Skill) DamagePerEnergy() float32 {
	stats, ok := weaponTable[s]
	if !ok {
		return 0
	}
	if stats.energy == 0 {
		return float32(math.Inf(1))
	}
	return (stats.damage + stats.burn) / stats.energy
}

func (s Skill) String() string {
	switch s {
	case SkillSword:
		return "Sword"
	case SkillHammer:
		return "Hammer"
	case SkillBow:
		return "Bow"
	case SkillGrenade:
		return "Grenade"
	case SkillShuriken:
		return "Shuriken"
	case SkillBlaze:
		return "Blaze"
	case SkillFlash:
		return "Flash"
	case SkillSpear:
		return "Spear"
	case SkillSentry:
		return "Sentry"
	case SkillFlap:
		return "Flap"
	case SkillLaunch:
		return "Launch"
	case SkillDoubleJump:
		return "Double Jump"
	case SkillDash:
		return "Dash"
	case SkillBash:
		return "Bash"
	case SkillGlide:
		return "Glide"
	case SkillBurrow:
		return "Burrow"
	case SkillWaterBreath:
		return "Water Breath"
	case SkillWallJump:
		return "Wall Jump"
	case SkillGrapple:
		return "Grapple"
	case SkillWaterDash:
		return "Water Dash"
	case SkillSeir:
		return "Seir"
	case SkillRegenerate:
		return "Regenerate"
	case SkillAncestralLight1:
		return "Ancestral Light 1"
	case SkillAncestralLight2:
		return "Ancestral Light 2"
	default:
		return "Unknown Skill"
	}
}

// Shard is an equippable passive modifier. A player can equip as many
// shards as they have ShardSlot items for.
type Shard uint8

const (
	ShardVitality Shard = iota
	ShardEnergy
	ShardResilience
	ShardOvercharge
	ShardLifePact
	ShardWingclip
	ShardSplinter
	ShardSpiritSurge
	ShardLastStand
	ShardReckless
	ShardLifeforce
	ShardFinesse
	ShardOverflow
)

func (s Shard) String() string {
	switch s {
	case ShardVitality:
		return "Vitality"
	case ShardEnergy:
		return "Energy"
	case ShardResilience:
		return "Resilience"
	case ShardOvercharge:
		return "Overcharge"
	case ShardLifePact:
		return "Life Pact"
	case ShardWingclip:
		return "Wingclip"
	case ShardSplinter:
		return "Splinter"
	case ShardSpiritSurge:
		return "Spirit Surge"
	case ShardLastStand:
		return "Last Stand"
	case ShardReckless:
		return "Reckless"
	case ShardLifeforce:
		return "Lifeforce"
	case ShardFinesse:
		return "Finesse"
	case ShardOverflow:
		return "Overflow"
	default:
		return "Unknown Shard"
	}
}

// Teleporter identifies one of the game's fixed teleporter anchors.
type Teleporter uint8
