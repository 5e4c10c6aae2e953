package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ori-community/wotw-seedgen-sub000/inventory"
	"github.com/ori-community/wotw-seedgen-sub000/item"
)

func TestGrantAndGet(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.SpiritLight(), 50)
	inv.Grant(item.SpiritLight(), 30)
	assert.Equal(t, uint16(80), inv.Get(item.SpiritLight()))
}

func TestGrantSingleInstanceClamps(t *testing.T) {
	inv := inventory.New()
	bash := item.OfSkill(item.SkillBash)
	inv.Grant(bash, 1)
	inv.Grant(bash, 5)
	assert.Equal(t, uint16(1), inv.Get(bash))
}

func TestRemoveFloorsAtZeroAndDeletesEntry(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.HealthFragment(), 3)
	inv.Remove(item.HealthFragment(), 10)
	assert.Equal(t, uint16(0), inv.Get(item.HealthFragment()))
	assert.Equal(t, 0, inv.Len())
}

func TestHas(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.Keystone(), 2)
	assert.True(t, inv.Has(item.Keystone(), 2))
	assert.False(t, inv.Has(item.Keystone(), 3))
}

func TestContains(t *testing.T) {
	a := inventory.New()
	a.Grant(item.OfSkill(item.SkillBash), 1)
	a.Grant(item.HealthFragment(), 4)

	b := inventory.New()
	b.Grant(item.OfSkill(item.SkillBash), 1)

	assert.True(t, a.Contains(b))
	assert.False(t, b.Contains(a))
}

func TestMerge(t *testing.T) {
	a := inventory.New()
	a.Grant(item.EnergyFragment(), 2)
	b := inventory.New()
	b.Grant(item.EnergyFragment(), 3)
	b.Grant(item.OfShard(item.ShardOverflow), 1)

	merged := a.Merge(b)
	assert.Equal(t, uint16(5), merged.Get(item.EnergyFragment()))
	assert.Equal(t, uint16(1), merged.Get(item.OfShard(item.ShardOverflow)))
	// originals unaffected
	assert.Equal(t, uint16(2), a.Get(item.EnergyFragment()))
}

func TestItemCountBucketsSpiritLight(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.SpiritLight(), 81) // 81 -> ceil(81/40) = 3 slots
	inv.Grant(item.OfSkill(item.SkillDash), 1)
	assert.Equal(t, 4, inv.ItemCount())
}

func TestWorldItemCountExcludesNonSpiritLight(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.SpiritLight(), 81) // 81 -> ceil(81/40) = 3 slots
	inv.Grant(item.OfSkill(item.SkillDash), 1)
	inv.Grant(item.HealthFragment(), 5)
	assert.Equal(t, 3, inv.WorldItemCount())
}

func TestClone(t *testing.T) {
	a := inventory.New()
	a.Grant(item.GorlekOre(), 1)
	b := a.Clone()
	b.Grant(item.GorlekOre(), 5)
	assert.Equal(t, uint16(1), a.Get(item.GorlekOre()))
	assert.Equal(t, uint16(6), b.Get(item.GorlekOre()))
}
