package item

import "fmt"

// Kind discriminates the variants of Item.
type Kind uint8

const (
	KindSpiritLight Kind = iota
	KindHealthFragment
	KindEnergyFragment
	KindGorlekOre
	KindKeystone
	KindShardSlot
	KindSkill
	KindShard
	KindTeleporter
	KindCleanWater
	KindCommand
)

// Item is one possessable thing. Only the fields relevant to Kind are
// meaningful; the rest are left at their zero value. Item is comparable
// and is used directly as an Inventory map key.
type Item struct {
	Kind       Kind
	Skill      Skill
	Shard      Shard
	Teleporter Teleporter
	Command    string // payload for extension/command items, out of core scope otherwise
}

// SpiritLight returns the canonical single-stack spirit light item; the
// stack size is carried by the Inventory count, not the Item itself.
func SpiritLight() Item { return Item{Kind: KindSpiritLight} }

// HealthFragment returns the health-fragment item (one fragment = 5 health).
func HealthFragment() Item { return Item{Kind: KindHealthFragment} }

// EnergyFragment returns the energy-fragment item (one fragment = 0.5 energy).
func EnergyFragment() Item { return Item{Kind: KindEnergyFragment} }

// GorlekOre returns the Gorlek Ore currency item.
func GorlekOre() Item { return Item{Kind: KindGorlekOre} }

// Keystone returns the Keystone currency item.
func Keystone() Item { return Item{Kind: KindKeystone} }

// ShardSlotItem returns the shard-slot capacity item.
func ShardSlotItem() Item { return Item{Kind: KindShardSlot} }

// CleanWater returns the clean-water flag item.
func CleanWater() Item { return Item{Kind: KindCleanWater} }

// OfSkill wraps a Skill as an Item.
func OfSkill(s Skill) Item { return Item{Kind: KindSkill, Skill: s} }

// OfShard wraps a Shard as an Item.
func OfShard(s Shard) Item { return Item{Kind: KindShard, Shard: s} }

// OfTeleporter wraps a Teleporter as an Item.
func OfTeleporter(t Teleporter) Item { return Item{Kind: KindTeleporter, Teleporter: t} }

// IsSingleInstance reports whether granting this item more than once is
// meaningless — skills, shards, teleporters, and clean water are acquired
// once each; spirit light, fragments, ore, keystones, and shard slots
// stack.
func (it Item) IsSingleInstance() bool {
	switch it.Kind {
	case KindSkill, KindShard, KindTeleporter, KindCleanWater:
		return true
	default:
		return false
	}
}

func (it Item) String() string {
	switch it.Kind {
	case KindSpiritLight:
		return "Spirit Light"
	case KindHealthFragment:
		return "Health Fragment"
	case KindEnergyFragment:
		return "Energy Fragment"
	case KindGorlekOre:
		return "Gorlek Ore"
	case KindKeystone:
		return "Keystone"
	case KindShardSlot:
		return "Shard Slot"
	case KindSkill:
		return it.Skill.String()
	case KindShard:
		return it.Shard.String()
	case KindTeleporter:
		return fmt.Sprintf("Teleporter(%d)", it.Teleporter)
	case KindCleanWater:
		return "Clean Water"
	case KindCommand:
		return fmt.Sprintf("Command(%s)", it.Command)
	default:
		return "Unknown Item"
	}
}
