package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

func TestDifficultyOrdering(t *testing.T) {
	assert.True(t, settings.Unsafe.AtLeast(settings.Moki))
	assert.True(t, settings.Gorlek.AtLeast(settings.Gorlek))
	assert.False(t, settings.Moki.AtLeast(settings.Gorlek))
	assert.True(t, settings.Kii > settings.Gorlek)
}

func TestNewDefaults(t *testing.T) {
	s := settings.New()
	assert.Equal(t, settings.Moki, s.Difficulty)
	assert.False(t, s.HasTrick("anything"))
}

func TestWithOptions(t *testing.T) {
	s := settings.New(settings.WithDifficulty(settings.Unsafe), settings.WithTricks("SwordSentryJump", "HammerSentryJump"))
	assert.Equal(t, settings.Unsafe, s.Difficulty)
	assert.True(t, s.HasTrick("SwordSentryJump"))
	assert.True(t, s.HasTrick("HammerSentryJump"))
	assert.False(t, s.HasTrick("Unknown"))
}
