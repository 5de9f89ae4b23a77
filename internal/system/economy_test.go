package system

import (
	"testing"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/economy"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMineYieldsOnBuildAndOnInterval(t *testing.T) {
	w := newWorld(t)
	w.sess.Ledger.Credit(economy.Gold, 10)

	require.True(t, w.mines.Buy())
	assert.Equal(t, 9, w.sess.Ledger.Gold())
	assert.Equal(t, 1, w.sess.Ledger.Diamonds())
	assert.Equal(t, 4, w.mines.Cost())

	w.sched.Advance(config.MineYieldInterval)
	assert.Equal(t, 2, w.sess.Ledger.Diamonds())

	require.True(t, w.mines.Buy())
	assert.Equal(t, 5, w.sess.Ledger.Gold())
	assert.Equal(t, 3, w.sess.Ledger.Diamonds())
	assert.Equal(t, 13, w.mines.Cost())

	assert.False(t, w.mines.Buy(), "not enough gold")
	assert.Equal(t, 2, w.mines.Count())
}

func TestMineUpgradeRaisesYield(t *testing.T) {
	w := newWorld(t)
	w.sess.Ledger.Credit(economy.Gold, 20)

	assert.False(t, w.mines.Upgrade(), "no mines yet")

	require.True(t, w.mines.Buy())
	require.True(t, w.mines.Upgrade())
	assert.Equal(t, 2, w.mines.Yield())
	assert.Equal(t, 16, w.mines.UpgradeCost())
	assert.Equal(t, 15, w.sess.Ledger.Gold())

	before := w.sess.Ledger.Diamonds()
	w.sched.Advance(config.MineYieldInterval)
	assert.Equal(t, before+2, w.sess.Ledger.Diamonds())
}

func TestMinesIdleWhilePaused(t *testing.T) {
	w := newWorld(t)
	w.sess.Ledger.Credit(economy.Gold, 1)
	require.True(t, w.mines.Buy())

	w.clock.Pause()
	w.sched.Advance(config.MineYieldInterval * 3)
	assert.Equal(t, 1, w.sess.Ledger.Diamonds())

	w.clock.Resume()
	w.mines.Stop()
	w.sched.Advance(config.MineYieldInterval * 3)
	assert.Equal(t, 1, w.sess.Ledger.Diamonds())
}

func TestFrostFreezesEveryEnemy(t *testing.T) {
	w := newWorld(t)
	assert.False(t, w.abilities.UseFrost(), "no charges")

	w.sess.Ledger.Credit(economy.Gold, config.FrostCost)
	require.True(t, w.abilities.BuyFrost())
	assert.Zero(t, w.sess.Ledger.Gold())

	a := w.spawn(t, "grunt", 0, 10)
	b := w.spawn(t, "runner", 5, 10)
	w.ecs.Velocities[a].Value[0] = 3

	require.True(t, w.abilities.UseFrost())
	assert.Zero(t, w.abilities.FrostCharges())
	assert.True(t, isFrozen(w.ecs, a))
	assert.True(t, isFrozen(w.ecs, b))
	assert.Zero(t, w.ecs.Velocities[a].Value.Len())
	assert.Contains(t, w.effects.names, config.AbilityFrostEffect)

	w.at(config.FrostDuration)
	assert.False(t, isFrozen(w.ecs, a))
}

func TestExplosionAbilityHitsNearbyEnemies(t *testing.T) {
	w := newWorld(t)
	w.sess.Ledger.Credit(economy.Gold, config.ExplosionCost)
	require.True(t, w.abilities.BuyExplosion())

	near := w.spawn(t, "grunt", 0, 3)
	far := w.spawn(t, "grunt", 0, 20)

	require.True(t, w.abilities.UseExplosion())
	assert.Equal(t, 0, w.health(near))
	assert.Equal(t, 3, w.health(far))
	assert.Contains(t, w.effects.names, config.AbilityBoomEffect)
	assert.False(t, w.abilities.UseExplosion())
}

func TestChestPickupGrantsBuff(t *testing.T) {
	w := newWorld(t)
	id := w.chests.Drop(w.ecs.Transforms[w.ecs.PlayerID].Position, "speed")

	w.chests.Update(0.016)

	_, exists := w.ecs.Chests[id]
	assert.False(t, exists)
	assert.InDelta(t, config.PlayerMoveSpeed+config.SpeedBuffBonus, w.players.MoveSpeed(), 1e-9)

	w.at(config.ChestBuffDuration)
	assert.InDelta(t, config.PlayerMoveSpeed, w.players.MoveSpeed(), 1e-9)
}

func TestChestExpiresOnTheGround(t *testing.T) {
	w := newWorld(t)
	id := w.chests.Drop(w.ecs.Transforms[w.ecs.PlayerID].Position.Add(mgl64.Vec3{0, 0, 10}), "attack_speed")

	w.chests.Update(0.016)
	require.Contains(t, w.ecs.Chests, id)

	w.at(config.ChestLifetime)
	w.chests.Update(0.016)
	assert.NotContains(t, w.ecs.Chests, id)
	assert.NotContains(t, w.ecs.AttackSpeedBuffs, w.ecs.PlayerID)
}

func TestStatusEffectsExpire(t *testing.T) {
	w := newWorld(t)
	status := NewStatusEffectSystem(w.ecs)
	id := w.spawn(t, "grunt", 0, 10)
	w.ecs.Frozen[id] = &component.Frozen{Until: 1}
	w.ecs.SpeedBuffs[w.ecs.PlayerID] = &component.SpeedBuff{Bonus: 1, ExpiresAt: 2}

	w.at(1)
	status.Update(0.016)
	assert.False(t, status.IsFrozen(id))
	assert.NotContains(t, w.ecs.Frozen, id)
	assert.Contains(t, w.ecs.SpeedBuffs, w.ecs.PlayerID)

	w.at(2)
	status.Update(0.016)
	assert.NotContains(t, w.ecs.SpeedBuffs, w.ecs.PlayerID)
}
