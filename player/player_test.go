package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ori-community/wotw-seedgen-sub000/inventory"
	"github.com/ori-community/wotw-seedgen-sub000/item"
	"github.com/ori-community/wotw-seedgen-sub000/orbs"
	"github.com/ori-community/wotw-seedgen-sub000/player"
	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

func TestMaxHealthAndEnergy(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.HealthFragment(), 7)
	inv.Grant(item.OfShard(item.ShardVitality), 1)
	inv.Grant(item.OfShard(item.ShardEnergy), 1)

	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Gorlek)))
	assert.Equal(t, float32(45), p.MaxHealth()) // 5*7 + 10
	assert.Equal(t, float32(1), p.MaxEnergy())  // 0 + 1
}

func TestMaxHealthVitalityRequiresGorlek(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.HealthFragment(), 7)
	inv.Grant(item.OfShard(item.ShardVitality), 1)

	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(35), p.MaxHealth())
}

func TestCheckpointOrbsScenario5(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.HealthFragment(), 7)
	inv.Grant(item.OfShard(item.ShardVitality), 1)
	inv.Grant(item.OfShard(item.ShardEnergy), 1)

	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Gorlek)))
	got := p.CheckpointOrbs()
	assert.Equal(t, orbs.Orbs{Health: 35, Energy: 1}, got)
}

func TestEnergyModByDifficulty(t *testing.T) {
	moki := player.New(inventory.New(), settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(2.0), moki.EnergyMod())

	inv := inventory.New()
	inv.Grant(item.OfShard(item.ShardOvercharge), 1)
	unsafeOvercharge := player.New(inv, settings.New(settings.WithDifficulty(settings.Unsafe)))
	assert.Equal(t, float32(0.5), unsafeOvercharge.EnergyMod())

	unsafePlain := player.New(inventory.New(), settings.New(settings.WithDifficulty(settings.Unsafe)))
	assert.Equal(t, float32(1.0), unsafePlain.EnergyMod())
}

func TestDestroyCostScenario1SwordBreaksWallFree(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.OfSkill(item.SkillSword), 1)
	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(0), p.DestroyCost(12, item.SkillSword, false))
}

func TestDestroyCostScenario2Grenade(t *testing.T) {
	p := player.New(inventory.New(), settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(2.0), p.DestroyCost(12, item.SkillGrenade, false))
}

func TestDestroyCostBreakWallWeaponFamily(t *testing.T) {
	p := player.New(inventory.New(), settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(1.5), p.DestroyCost(12, item.SkillBow, false))
	assert.Equal(t, float32(2.0), p.DestroyCost(12, item.SkillShuriken, false))
	assert.Equal(t, float32(2.0), p.DestroyCost(12, item.SkillBlaze, false))
	assert.Equal(t, float32(4.0), p.DestroyCost(12, item.SkillSpear, false))
	assert.Equal(t, float32(0), p.DestroyCost(12, item.SkillHammer, false))
}

func TestDestroyCostZeroHPIsFree(t *testing.T) {
	p := player.New(inventory.New(), settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(0), p.DestroyCost(0, item.SkillSpear, false))
}

func TestCombatScenario3UnsafeBowVsSlugAndSkeeto(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.OfSkill(item.SkillBow), 1)
	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Unsafe)))

	slugCost := p.DestroyCost(item.EnemySlug.Health(), item.SkillBow, item.EnemySlug.Aerial())
	skeetoCost := p.DestroyCost(item.EnemySkeeto.Health(), item.SkillBow, item.EnemySkeeto.Aerial())
	total := slugCost*2 + skeetoCost
	assert.InDelta(t, float32(3.25), total, 0.0001)
}

func TestPreferredWallWeaponPicksHighestDPE(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.OfSkill(item.SkillGrenade), 1)
	inv.Grant(item.OfSkill(item.SkillSpear), 1)
	p := player.New(inv, settings.New())
	got, ok := p.PreferredWallWeapon()
	assert.True(t, ok)
	// Grenade: 9/0.5=18 dpe, Spear: 28/2=14 dpe -> Grenade wins.
	assert.Equal(t, item.SkillGrenade, got)
}

func TestPreferredWallWeaponNoneOwned(t *testing.T) {
	p := player.New(inventory.New(), settings.New())
	_, ok := p.PreferredWallWeapon()
	assert.False(t, ok)
}

func TestRangedPoolGatedByDifficulty(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.OfSkill(item.SkillGrenade), 1)

	moki := player.New(inv, settings.New(settings.WithDifficulty(settings.Moki)))
	_, ok := moki.PreferredRangedWeapon()
	assert.False(t, ok) // Grenade not in ranged pool below Gorlek

	gorlek := player.New(inv, settings.New(settings.WithDifficulty(settings.Gorlek)))
	got, ok := gorlek.PreferredRangedWeapon()
	assert.True(t, ok)
	assert.Equal(t, item.SkillGrenade, got)
}

func TestDefenseModHardMode(t *testing.T) {
	p := player.New(inventory.New(), settings.New(), player.WithHard(true))
	assert.Equal(t, float32(2.0), p.DefenseMod())
}

func TestDefenseModResilienceRequiresGorlek(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.OfShard(item.ShardResilience), 1)
	moki := player.New(inv, settings.New(settings.WithDifficulty(settings.Moki)))
	assert.Equal(t, float32(1.0), moki.DefenseMod())

	gorlek := player.New(inv, settings.New(settings.WithDifficulty(settings.Gorlek)))
	assert.Equal(t, float32(0.9), gorlek.DefenseMod())
}

func TestMissingItems(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.OfSkill(item.SkillBash), 1)
	p := player.New(inv, settings.New())
	missing := p.MissingItems(item.SkillBash, item.SkillDash)
	assert.Equal(t, []item.Item{item.OfSkill(item.SkillDash)}, missing)
}
