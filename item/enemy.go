package item

// Enemy is a combat encounter the reach engine and requirement evaluator
// price using the combat requirement variant. The stat table below is
// the fixed per-enemy-type data the original game ships; it is not
// derived from any settings or inventory.
type Enemy uint8

const (
	EnemyBombSlug Enemy = iota
	EnemyCorruptSlug
	EnemyBalloon
	EnemySmallSkeeto
	EnemyWeakSlug
	EnemySpiderling
	EnemySlug
	EnemySkeeto
	EnemySandworm
	EnemyTentacle
	EnemyShieldSlug
	EnemyLizard
	EnemyBee
	EnemyNest
	EnemyMantis
	EnemySneezeSlug
	EnemyBat
	EnemyCrab
	EnemySpinCrab
	EnemyHornbug
	EnemyMiner
	EnemyShieldCrystalMiner
	EnemyMaceMiner
	EnemyShieldMiner
	EnemyCrystalMiner
)

var enemyHealth = map[Enemy]float32{
	EnemyBombSlug:           1,
	EnemyCorruptSlug:        1,
	EnemyBalloon:            1,
	EnemySmallSkeeto:        8,
	EnemyWeakSlug:           12,
	EnemySpiderling:         12,
	EnemySlug:               13,
	EnemySkeeto:             20,
	EnemySandworm:           20,
	EnemyTentacle:           20,
	EnemyShieldSlug:         24,
	EnemyLizard:             24,
	EnemyBee:                24,
	EnemyNest:               25,
	EnemyMantis:             32,
	EnemySneezeSlug:         32,
	EnemyBat:                32,
	EnemyCrab:               32,
	EnemySpinCrab:           32,
	EnemyHornbug:            40,
	EnemyMiner:              40,
	EnemyShieldCrystalMiner: 50,
	EnemyMaceMiner:          60,
	EnemyShieldMiner:        60,
	EnemyCrystalMiner:       80,
}

// Health returns the enemy's hit points.
func (e Enemy) Health() float32 { return enemyHealth[e] }

// Shielded reports whether the enemy must have its shield broken (with a
// shield-capable weapon) before other damage applies.
func (e Enemy) Shielded() bool {
	switch e {
	case EnemyHornbug, EnemyShieldSlug, EnemyShieldMiner, EnemyShieldCrystalMiner:
		return true
	default:
		return false
	}
}

// Armored reports whether the enemy's effective health is doubled in
// combat pricing below Unsafe difficulty.
func (e Enemy) Armored() bool {
	return e == EnemyTentacle
}

// Aerial reports whether the enemy occupies airborne space, affecting
// which movement is needed to reach melee range.
func (e Enemy) Aerial() bool {
	switch e {
	case EnemyBat, EnemySkeeto, EnemySmallSkeeto, EnemyBee, EnemyNest, EnemyTentacle:
		return true
	default:
		return false
	}
}

// Flying reports whether the enemy actively flies, as opposed to simply
// being elevated.
func (e Enemy) Flying() bool {
	switch e {
	case EnemySkeeto, EnemySmallSkeeto, EnemyBee:
		return true
	default:
		return false
	}
}

// Ranged reports whether the enemy attacks from a distance, requiring
// the player to close in or fight back at range.
func (e Enemy) Ranged() bool {
	switch e {
	case EnemyBombSlug, EnemyCorruptSlug, EnemyBalloon, EnemyBat:
		return true
	default:
		return false
	}
}

// Dangerous reports whether the encounter is risky enough that, below
// Unsafe, the combat requirement demands one of Double Jump, Dash, Bash
// or Launch.
func (e Enemy) Dangerous() bool {
	switch e {
	case EnemySneezeSlug, EnemyHornbug, EnemyCrab, EnemySpinCrab,
		EnemyMiner, EnemyMaceMiner, EnemyShieldMiner, EnemyCrystalMiner, EnemyShieldCrystalMiner:
		return true
	default:
		return false
	}
}

func (e Enemy) String() string {
	switch e {
	case EnemyBombSlug:
		return "Bomb Slug"
	case EnemyCorruptSlug:
		return "Corrupt Slug"
	case EnemyBalloon:
		return "Balloon"
	case EnemySmallSkeeto:
		return "Small Skeeto"
	case EnemyWeakSlug:
		return "Weak Slug"
	case EnemySpiderling:
		return "Spiderling"
	case EnemySlug:
		return "Slug"
	case EnemySkeeto:
		return "Skeeto"
	case EnemySandworm:
		return "Sandworm"
	case EnemyTentacle:
		return "Tentacle"
	case EnemyShieldSlug:
		return "Shield Slug"
	case EnemyLizard:
		return "Lizard"
	case EnemyBee:
		return "Bee"
	case EnemyNest:
		return "Nest"
	case EnemyMantis:
		return "Mantis"
	case EnemySneezeSlug:
		return "Sneeze Slug"
	case EnemyBat:
		return "Bat"
	case EnemyCrab:
		return "Crab"
	case EnemySpinCrab:
		return "Spin Crab"
	case EnemyHornbug:
		return "Hornbug"
	case EnemyMiner:
		return "Miner"
	case EnemyShieldCrystalMiner:
		return "Shielded Crystal Miner"
	case EnemyMaceMiner:
		return "Mace Miner"
	case EnemyShieldMiner:
		return "Shielded Miner"
	case EnemyCrystalMiner:
		return "Crystal Miner"
	default:
		return "Unknown Enemy"
	}
}
