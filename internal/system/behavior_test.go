package system

import (
	"testing"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangedOf(t *testing.T, w *world, id types.EntityID) *RangedBehavior {
	t.Helper()
	b, ok := w.enemies.Behavior(id)
	require.True(t, ok)
	rb, ok := b.(*RangedBehavior)
	require.True(t, ok)
	return rb
}

func hostileShots(w *world) int {
	n := 0
	for _, p := range w.ecs.Projectiles {
		if p.Owner == component.OwnedByEnemy {
			n++
		}
	}
	return n
}

func TestNewBehaviorPicksVariant(t *testing.T) {
	w := newWorld(t)
	for kind, want := range map[string]defs.BehaviorKind{
		"grunt":    defs.BehaviorMelee,
		"runner":   defs.BehaviorDodger,
		"archer":   defs.BehaviorRanged,
		"shaman":   defs.BehaviorBuffer,
		"champion": defs.BehaviorChampion,
	} {
		def, ok := w.sess.Library.Enemy(kind)
		require.True(t, ok)
		assert.Equal(t, want, NewBehavior(def, w.sess.Rng, 0).Kind(), kind)
	}
}

func TestRangedKeepsItsDistance(t *testing.T) {
	w := newWorld(t)
	far := w.spawn(t, "archer", 0, 20)
	near := w.spawn(t, "archer", 0, 3)

	w.enemies.Update(0.016)

	toPlayer := mgl64.Vec3{0, 0, -1}
	assert.Equal(t, rangedApproach, rangedOf(t, w, far).mode)
	assert.Equal(t, toPlayer, rangedOf(t, w, far).MoveIntent(w.enemies, far, toPlayer, 20))
	assert.Equal(t, rangedRetreat, rangedOf(t, w, near).mode)
	assert.Equal(t, toPlayer.Mul(-1), rangedOf(t, w, near).MoveIntent(w.enemies, near, toPlayer, 3))
	assert.Zero(t, hostileShots(w), "moving archers do not shoot")
}

func TestRangedFiresAtItsRate(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "archer", 0, 9)

	w.enemies.Update(0.016)
	assert.Equal(t, rangedHold, rangedOf(t, w, id).mode)
	assert.Equal(t, 1, hostileShots(w))

	w.at(0.2)
	w.enemies.Update(0.016)
	assert.Equal(t, 1, hostileShots(w))

	w.at(0.5)
	w.enemies.Update(0.016)
	assert.Equal(t, 2, hostileShots(w))
}

func TestHostileShotHurtsPlayer(t *testing.T) {
	w := newWorld(t)
	w.spawn(t, "archer", 0, 9)
	w.enemies.Update(0.016)
	require.Equal(t, 1, hostileShots(w))

	for i := 0; i < 60; i++ {
		w.shots.FixedUpdate(config.FixedTimeStep)
	}

	assert.Equal(t, config.PlayerMaxHealth-2, w.playerHealth())
	assert.Zero(t, hostileShots(w))
}

func TestDodgerFlipsSide(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "runner", 0, 20)
	b, ok := w.enemies.Behavior(id)
	require.True(t, ok)
	dodger := b.(*DodgerBehavior)

	w.at(0.4)
	w.enemies.Update(0.016)
	assert.Equal(t, 1.0, dodger.Sign())

	w.at(0.5)
	w.enemies.Update(0.016)
	assert.Equal(t, -1.0, dodger.Sign())

	w.at(1.0)
	w.enemies.Update(0.016)
	assert.Equal(t, 1.0, dodger.Sign())

	intent := dodger.MoveIntent(w.enemies, id, mgl64.Vec3{0, 0, -1}, 20)
	assert.InDelta(t, 1.5, intent.Len(), 1e-9)
	assert.NotZero(t, intent.X(), "dodger strafes sideways")
}

func TestChampionSpawnsChildrenOnce(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "champion", 0, 20)
	b, _ := w.enemies.Behavior(id)

	b.OnDeath(w.enemies, id)
	first := w.ecs.LiveEnemyCount()
	b.OnDeath(w.enemies, id)

	assert.Equal(t, first, w.ecs.LiveEnemyCount())
	assert.GreaterOrEqual(t, first-1, 2)
	assert.LessOrEqual(t, first-1, 4)
}
