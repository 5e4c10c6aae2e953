package requirement

import (
	"github.com/ori-community/wotw-seedgen-sub000/item"
	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

// Requirement is one node of a logic tree. Implementations are value
// types and safe to share across many reach/solve calls.
type Requirement interface {
	requirement()
}

// Free is always satisfied at no cost.
type Free struct{}

// Impossible is never satisfied.
type Impossible struct{}

// DifficultyAtLeast is satisfied iff the player's configured difficulty
// is at or above Difficulty.
type DifficultyAtLeast struct{ Difficulty settings.Difficulty }

// NormalGameDifficulty is satisfied iff the player is not in hard mode.
type NormalGameDifficulty struct{}

// Trick is satisfied iff Name is an enabled trick.
type Trick struct{ Name string }

// HasSkill is satisfied iff the skill is owned.
type HasSkill struct{ Skill item.Skill }

// HasShard is satisfied iff the shard is owned.
type HasShard struct{ Shard item.Shard }

// HasTeleporter is satisfied iff the teleporter is owned.
type HasTeleporter struct{ Teleporter item.Teleporter }

// HasWater is satisfied iff clean water has been granted.
type HasWater struct{}

// SpiritLightAtLeast is satisfied iff at least Amount spirit light is held.
type SpiritLightAtLeast struct{ Amount int }

// GorlekOreAtLeast is satisfied iff at least Amount Gorlek Ore is held.
type GorlekOreAtLeast struct{ Amount int }

// KeystoneAtLeast is satisfied iff at least Amount keystones are held.
type KeystoneAtLeast struct{ Amount int }

// StateSet is satisfied iff Index is present in the evaluation's asserted
// state set.
type StateSet struct{ Index int }

// EnergySkill costs use_cost(Skill)*Count energy, consumed on success.
type EnergySkill struct {
	Skill item.Skill
	Count int
}

// NonConsumingEnergySkill costs use_cost(Skill) energy but is not
// deducted from the residual on success; it models cancel/swap skill
// usage where the energy is refunded by the game.
type NonConsumingEnergySkill struct{ Skill item.Skill }

// Damage costs Amount*defense_mod health, consumed on success.
type Damage struct{ Amount float32 }

// Danger requires current health to exceed Amount*defense_mod, without
// deducting anything.
type Danger struct{ Amount float32 }

// BreakWall costs destroy_cost(HP, preferred wall weapon, false).
type BreakWall struct{ HP float32 }

// Boss costs destroy_cost(HP, preferred wall weapon, false); modeled
// separately from BreakWall because a future difficulty tier may price
// boss encounters differently even though today the formula matches.
type Boss struct{ HP float32 }

// ShurikenBreak costs destroy_cost(HP, Shuriken, false) times a clip
// multiplier (2 on Unsafe, else 3).
type ShurikenBreak struct{ HP float32 }

// SentryBreak costs destroy_cost(HP, Sentry, false) times a 6.25 clip
// multiplier.
type SentryBreak struct{ HP float32 }

// CombatStep is one step of a Combat requirement: either an enemy
// encounter to account for, or a mid-fight energy refill that pays off
// the accumulated cost so far before continuing.
type CombatStep struct {
	Enemy        item.Enemy
	Count        int
	Refill       bool
	RefillAmount float32
}

// Combat sequentially accounts for a list of enemy encounters (and any
// interleaved refills), then pays the accumulated destroy cost.
type Combat struct{ Steps []CombatStep }

// And is satisfied iff every child is satisfied in sequence, each
// consuming the previous child's residual.
type And struct{ Children []Requirement }

// Or is satisfied iff any child is satisfied from the original input;
// successful branches combine via Pareto union.
type Or struct{ Children []Requirement }

func (Free) requirement()                    {}
func (Impossible) requirement()               {}
func (DifficultyAtLeast) requirement()        {}
func (NormalGameDifficulty) requirement()     {}
func (Trick) requirement()                    {}
func (HasSkill) requirement()                 {}
func (HasShard) requirement()                 {}
func (HasTeleporter) requirement()            {}
func (HasWater) requirement()                 {}
func (SpiritLightAtLeast) requirement()       {}
func (GorlekOreAtLeast) requirement()         {}
func (KeystoneAtLeast) requirement()          {}
func (StateSet) requirement()                 {}
func (EnergySkill) requirement()              {}
func (NonConsumingEnergySkill) requirement()  {}
func (Damage) requirement()                   {}
func (Danger) requirement()                   {}
func (BreakWall) requirement()                {}
func (Boss) requirement()                     {}
func (ShurikenBreak) requirement()            {}
func (SentryBreak) requirement()              {}
func (Combat) requirement()                   {}
func (And) requirement()                      {}
func (Or) requirement()                       {}
