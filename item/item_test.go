package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ori-community/wotw-seedgen-sub000/item"
)

func TestItemEquality(t *testing.T) {
	a := item.OfSkill(item.SkillBash)
	b := item.OfSkill(item.SkillBash)
	c := item.OfSkill(item.SkillDash)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	m := map[item.Item]int{}
	m[a] = 1
	m[b] = 2 // same key, overwrites
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a])
}

func TestIsSingleInstance(t *testing.T) {
	assert.True(t, item.OfSkill(item.SkillBash).IsSingleInstance())
	assert.True(t, item.OfShard(item.ShardOverflow).IsSingleInstance())
	assert.True(t, item.CleanWater().IsSingleInstance())
	assert.False(t, item.SpiritLight().IsSingleInstance())
	assert.False(t, item.HealthFragment().IsSingleInstance())
}

func TestWeaponCostsMatchBreakWallScenario(t *testing.T) {
	// BreakWall(12) base energy: whole uses times the per-use base cost,
	// before energy_mod (which doubles these below Unsafe); see the
	// requirement package's own tests for the full scenario.
	cases := []struct {
		skill    item.Skill
		useCount float32
		wantCost float32
	}{
		{item.SkillBow, 3, 0.75},
		{item.SkillGrenade, 2, 1.0},
		{item.SkillShuriken, 2, 1.0},
		{item.SkillSpear, 1, 2.0},
	}
	for _, c := range cases {
		assert.Equal(t, c.wantCost, c.useCount*c.skill.EnergyCost())
	}
}

func TestEnemyStats(t *testing.T) {
	assert.Equal(t, float32(1), item.EnemyBombSlug.Health())
	assert.Equal(t, float32(80), item.EnemyCrystalMiner.Health())
	assert.True(t, item.EnemyHornbug.Shielded())
	assert.True(t, item.EnemyTentacle.Armored())
	assert.True(t, item.EnemyTentacle.Aerial())
	assert.False(t, item.EnemySlug.Aerial())
	assert.True(t, item.EnemySkeeto.Flying())
	assert.True(t, item.EnemyBat.Ranged())
	assert.True(t, item.EnemyCrab.Dangerous())
}
