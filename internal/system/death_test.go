package system

import (
	"testing"

	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func explosive() defs.ActiveModifierSet {
	mods := defs.IdentityModifierSet()
	mods.ExplodeOnDeath = true
	mods.ExplosionRadius = 4
	mods.ExplosionDamage = 3
	return mods
}

func splitting() defs.ActiveModifierSet {
	mods := defs.IdentityModifierSet()
	mods.SplitOnDeath = true
	return mods
}

func TestDeathReportsGoldOnce(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "grunt", 0, 20)
	w.kill(id)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	assert.Equal(t, id, reports[0].EnemyID)
	assert.Equal(t, "grunt", reports[0].DefID)
	assert.Equal(t, 2, reports[0].Gold)

	_, alive := w.ecs.Enemies[id]
	assert.False(t, alive)
	assert.Empty(t, w.deaths.Update())
}

func TestGoldScalesWithModifier(t *testing.T) {
	w := newWorld(t)
	mods := defs.IdentityModifierSet()
	mods.Gold = 2.5
	id := w.spawnWith(t, "grunt", 0, 20, mods, 0)
	w.kill(id)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	assert.Equal(t, 5, reports[0].Gold)
}

func TestChestDropsAtDeathPoint(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "looter", 3, 20)
	w.kill(id)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	require.NotZero(t, reports[0].Chest)

	chest, ok := w.ecs.Chests[reports[0].Chest]
	require.True(t, ok)
	assert.Equal(t, defs.ChestSpeed, chest.Kind)
	assert.InDelta(t, 3.0, w.ecs.Transforms[reports[0].Chest].Position.X(), 1e-9)
}

func TestExplosionSparesTheDeadEnemy(t *testing.T) {
	w := newWorld(t)
	bomb := w.spawnWith(t, "grunt", 0, 20, explosive(), 0)
	near := w.spawn(t, "grunt", 1, 20)
	far := w.spawn(t, "grunt", 0, 30)
	w.kill(bomb)

	reports := w.deaths.Update()

	// сосед умер от взрыва в том же кадре
	require.Len(t, reports, 2)
	assert.Equal(t, bomb, reports[0].EnemyID)
	assert.Equal(t, []types.EntityID{near}, reports[0].Exploded)
	assert.Equal(t, near, reports[1].EnemyID)
	assert.Equal(t, 3, w.health(far))
}

func TestSplitCopiesInheritAndShrink(t *testing.T) {
	w := newWorld(t)
	parent := w.spawnWith(t, "grunt", 0, 20, splitting(), 0)
	parentScale := w.ecs.Transforms[parent].Scale
	w.kill(parent)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Split, config.SplitCopies)

	for _, id := range reports[0].Split {
		enemy := w.ecs.Enemies[id]
		assert.Equal(t, 1, enemy.Generation)
		assert.True(t, enemy.SplitOnDeath)
		assert.InDelta(t, parentScale*config.SplitScale, w.ecs.Transforms[id].Scale, 1e-9)
		assert.Equal(t, 3, w.health(id), "copies start at full health")
	}
}

func TestThirdGenerationDoesNotSplit(t *testing.T) {
	w := newWorld(t)
	id := w.spawnWith(t, "grunt", 0, 20, splitting(), config.MaxSplitGeneration)
	w.kill(id)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Split)
	assert.Zero(t, w.ecs.LiveEnemyCount())
}

func TestChampionChildrenEscapeItsExplosion(t *testing.T) {
	w := newWorld(t)
	champ := w.spawnWith(t, "champion", 0, 20, explosive(), 0)
	w.kill(champ)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Exploded)

	children := w.ecs.EnemyIDs()
	assert.GreaterOrEqual(t, len(children), 2)
	assert.LessOrEqual(t, len(children), 4)
	for _, id := range children {
		enemy := w.ecs.Enemies[id]
		assert.Equal(t, "minion", enemy.DefID)
		assert.Equal(t, 1, w.health(id))
		assert.NotZero(t, enemy.Impulse.Len(), "children are pushed outward")
		assert.True(t, enemy.Modifiers.ExplodeOnDeath, "children inherit the champion's modifiers")
	}
}

func TestChainReactionAlwaysFiresAtLevelTen(t *testing.T) {
	w := newWorld(t)
	w.sess.Buffs.SetLevel(defs.BuffChainReaction, 10)
	victim := w.spawn(t, "grunt", 0, 20)
	near := w.spawn(t, "grunt", 2, 20)
	w.kill(victim)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	assert.True(t, reports[0].ChainReaction)
	assert.Equal(t, 3-config.ChainReactionDamage, w.health(near))
	assert.Contains(t, w.effects.names, "chain_reaction")
}

func TestNoChainReactionWithoutBuff(t *testing.T) {
	w := newWorld(t)
	victim := w.spawn(t, "grunt", 0, 20)
	near := w.spawn(t, "grunt", 2, 20)
	w.kill(victim)

	reports := w.deaths.Update()
	require.Len(t, reports, 1)
	assert.False(t, reports[0].ChainReaction)
	assert.Equal(t, 3, w.health(near))
}
