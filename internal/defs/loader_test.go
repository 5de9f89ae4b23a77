package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)

	assert.Len(t, lib.Modifiers, 8)
	assert.NotEmpty(t, lib.Waves)
	for _, kind := range WeaponKinds {
		_, ok := lib.Weapons[kind]
		assert.True(t, ok, "weapon %s missing", kind)
	}
	assert.Equal(t, 25, lib.BuffCost(BuffChainReaction))
	assert.Equal(t, 20, lib.BuffCost(BuffThorns))
	assert.Equal(t, "level", lib.VampireHeal)
}

func TestParseNormalizesDefaults(t *testing.T) {
	lib, err := Parse([]byte(`
enemies:
  - {id: a, health: 1, speed: 1}
modifiers:
  - {type: jackpot, gold: 2}
upgrades:
  pistol:
    - {diamond_cost: 1, bonus_projectiles: 1}
`))
	require.NoError(t, err)

	assert.Equal(t, 1.0, lib.Enemies["a"].Scale)

	mod := lib.Modifiers[0]
	assert.Equal(t, 2.0, mod.GoldMultiplier)
	assert.Equal(t, 1.0, mod.ScaleMultiplier)
	assert.Equal(t, 1.0, mod.KnockbackMultiplier)

	tier := lib.Upgrades[WeaponPistol][0]
	assert.Equal(t, 1.0, tier.DamageMultiplier)
	assert.Equal(t, 1.0, tier.CooldownMultiplier)

	assert.Equal(t, "level", lib.VampireHeal)
	assert.Equal(t, DefaultBuffCost, lib.BuffCost(BuffVampire))
}

func TestParseAggregatesValidationErrors(t *testing.T) {
	_, err := Parse([]byte(`
enemies:
  - {id: a, health: 0, min_gold: 5, max_gold: 1}
waves:
  - groups:
      - {enemy: ghost, count: 1}
chests:
  - {kind: speed, weight: -1}
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "catalog validation failed")
	assert.Contains(t, msg, "enemies.a.health must be > 0")
	assert.Contains(t, msg, "gold range")
	assert.Contains(t, msg, `"ghost" is unknown`)
	assert.Contains(t, msg, "chests[0].weight")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("enemies: [::"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal catalog")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
enemies:
  - {id: a, health: 2, speed: 1}
waves:
  - groups:
      - {enemy: a, count: 3}
`), 0o644))

	lib, err := Load(path)
	require.NoError(t, err)
	require.Len(t, lib.Waves, 1)
	assert.Equal(t, 3, lib.Waves[0].Total())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWaveManifestScaled(t *testing.T) {
	m := WaveManifest{Groups: []EnemyGroup{{EnemyID: "a", Count: 3}, {EnemyID: "b", Count: 1}}}

	assert.Equal(t, m.Groups, m.Scaled(1).Groups)
	assert.Equal(t, 8, m.Scaled(2).Total())

	tiny := m.Scaled(0.1)
	assert.Equal(t, 1, tiny.Groups[0].Count)
	assert.Equal(t, 1, tiny.Groups[1].Count)
}
