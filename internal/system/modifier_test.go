package system

import (
	"testing"

	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollWithEmptyCatalogIsIdentity(t *testing.T) {
	s := NewModifierSystem(nil, utils.NewPRNGService(1))

	set := s.Roll()

	assert.Equal(t, defs.IdentityModifierSet(), set)
	assert.Empty(t, s.Announcement())
}

func TestRollSingleEntryAlwaysChosen(t *testing.T) {
	only := defs.NewModifierDefinition(defs.ModifierJackpot, "Jackpot")
	only.GoldMultiplier = 2.5
	s := NewModifierSystem([]defs.WaveModifierDefinition{only}, utils.NewPRNGService(1))

	for i := 0; i < 20; i++ {
		set := s.Roll()
		require.Len(t, set.Modifiers, 1)
		assert.Equal(t, defs.ModifierJackpot, set.Modifiers[0].Type)
		assert.InDelta(t, 2.5, set.Gold, 1e-9)
	}
}

func TestRollPicksDistinctModifiers(t *testing.T) {
	lib, err := defs.Default()
	require.NoError(t, err)
	s := NewModifierSystem(lib.Modifiers, utils.NewPRNGService(99))

	sizes := map[int]bool{}
	for i := 0; i < 200; i++ {
		set := s.Roll()
		require.GreaterOrEqual(t, len(set.Modifiers), 1)
		require.LessOrEqual(t, len(set.Modifiers), 2)
		sizes[len(set.Modifiers)] = true
		if len(set.Modifiers) == 2 {
			assert.NotEqual(t, set.Modifiers[0].Type, set.Modifiers[1].Type)
		}
	}
	assert.True(t, sizes[1] && sizes[2], "both one and two modifiers occur")
}

func TestClearResetsActiveSet(t *testing.T) {
	only := defs.NewModifierDefinition(defs.ModifierBouncers, "Bouncers")
	only.KnockbackMultiplier = 2.5
	s := NewModifierSystem([]defs.WaveModifierDefinition{only}, utils.NewPRNGService(1))

	s.Roll()
	assert.InDelta(t, 2.5, s.Active().Knockback, 1e-9)
	assert.Contains(t, s.Announcement(), "Bouncers")

	s.Clear()
	assert.Equal(t, defs.IdentityModifierSet(), s.Active())
}
