package system

import (
	"testing"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (w *world) arm(t *testing.T, kind defs.WeaponKind) *component.Weapon {
	t.Helper()
	require.True(t, w.players.GiveWeapon(kind))
	player, _ := w.ecs.Player()
	weapon, ok := player.Weapon(kind)
	require.True(t, ok)
	return weapon
}

func (w *world) flyShots(steps int) {
	for i := 0; i < steps; i++ {
		w.shots.FixedUpdate(config.FixedTimeStep)
	}
}

func TestSwordRespectsCooldown(t *testing.T) {
	w := newWorld(t)
	w.arm(t, defs.WeaponSword)
	id := w.spawn(t, "grunt", 0, 1)

	w.combat.Update(0.016)
	assert.Equal(t, 2, w.health(id))

	w.at(1.0)
	w.combat.Update(0.016)
	assert.Equal(t, 2, w.health(id), "still cooling down")

	w.at(3.0)
	w.combat.Update(0.016)
	assert.Equal(t, 1, w.health(id))
}

func TestSwingHitsEachEnemyOnce(t *testing.T) {
	w := newWorld(t)
	sword := w.arm(t, defs.WeaponSword)
	id := w.spawn(t, "grunt", 0, 1)

	w.combat.Update(0.016)
	require.True(t, sword.Swinging)

	// враг вошел в зону посреди взмаха
	late := w.spawn(t, "grunt", 1, 0)
	w.at(0.2)
	w.combat.Update(0.016)

	assert.Equal(t, 2, w.health(id))
	assert.Equal(t, 2, w.health(late))

	w.at(sword.Def.SwingDuration)
	w.combat.Update(0.016)
	assert.False(t, sword.Swinging)
}

func TestAttackSpeedBuffShortensCooldown(t *testing.T) {
	w := newWorld(t)
	sword := w.arm(t, defs.WeaponSword)
	w.ecs.AttackSpeedBuffs[w.ecs.PlayerID] = &component.AttackSpeedBuff{Multiplier: 1.5, ExpiresAt: 100}

	assert.InDelta(t, 2.0, w.combat.Cooldown(sword), 1e-9)
}

func TestDisabledWeaponDoesNotFire(t *testing.T) {
	w := newWorld(t)
	sword := w.arm(t, defs.WeaponSword)
	sword.Enabled = false
	id := w.spawn(t, "grunt", 0, 1)

	assert.False(t, w.combat.TryAttack(sword, id))
	assert.Equal(t, 3, w.health(id))
}

func TestNoTargetNoAttack(t *testing.T) {
	w := newWorld(t)
	pistol := w.arm(t, defs.WeaponPistol)

	w.combat.Update(0.016)

	assert.Empty(t, w.ecs.Projectiles)
	assert.Zero(t, pistol.NextAttackTime)
}

func TestCorpseIsNotATarget(t *testing.T) {
	w := newWorld(t)
	sword := w.arm(t, defs.WeaponSword)
	pistol := w.arm(t, defs.WeaponPistol)
	dead := w.spawn(t, "grunt", 0, 1)
	// шипы убили врага раньше в этом же кадре
	w.kill(dead)

	w.combat.Update(0.016)
	assert.Zero(t, sword.NextAttackTime, "cooldown kept for a living target")
	assert.False(t, sword.Swinging)
	assert.Zero(t, pistol.NextAttackTime)
	assert.Empty(t, w.ecs.Projectiles)
	assert.False(t, w.combat.TryAttack(pistol, dead))

	// живой враг дальше становится целью в следующем тике
	live := w.spawn(t, "grunt", 0, 6)
	w.at(0.1)
	w.combat.Update(0.016)
	assert.Greater(t, pistol.NextAttackTime, 0.1)
	require.Len(t, w.ecs.Projectiles, 1)
	for _, p := range w.ecs.Projectiles {
		assert.Equal(t, live, p.TargetID)
	}
}

func TestPistolHomesOntoTarget(t *testing.T) {
	w := newWorld(t)
	w.arm(t, defs.WeaponPistol)
	id := w.spawn(t, "grunt", 3, 8)

	w.combat.Update(0.016)
	require.Len(t, w.ecs.Projectiles, 1)

	w.flyShots(100)
	assert.Equal(t, 2, w.health(id))
	assert.Empty(t, w.ecs.Projectiles)
}

func TestHomingShotVanishesWithTarget(t *testing.T) {
	w := newWorld(t)
	w.arm(t, defs.WeaponPistol)
	id := w.spawn(t, "grunt", 0, 10)

	w.combat.Update(0.016)
	require.Len(t, w.ecs.Projectiles, 1)
	w.enemies.Remove(id)

	w.flyShots(1)
	assert.Empty(t, w.ecs.Projectiles)
}

func TestShotgunFiresPellets(t *testing.T) {
	w := newWorld(t)
	shotgun := w.arm(t, defs.WeaponShotgun)
	w.spawn(t, "grunt", 0, 10)

	w.combat.Update(0.016)
	assert.Len(t, w.ecs.Projectiles, 6)

	shotgun.BonusProjectiles = 2
	w.at(10)
	w.combat.Update(0.016)
	assert.Len(t, w.ecs.Projectiles, 6+8)
}

func TestRocketDamagesEveryoneInRadius(t *testing.T) {
	w := newWorld(t)
	w.arm(t, defs.WeaponRocketLauncher)
	a := w.spawn(t, "grunt", 0, 10)
	b := w.spawn(t, "grunt", 2, 11)
	c := w.spawn(t, "grunt", 0, 30)

	w.combat.Update(0.016)
	w.flyShots(100)

	assert.LessOrEqual(t, w.health(a), 0)
	assert.LessOrEqual(t, w.health(b), 0)
	assert.Equal(t, 3, w.health(c))
	assert.Contains(t, w.effects.names, "rocket")
}

func TestGiantSlayerAppliesAtImpact(t *testing.T) {
	w := newWorld(t)
	w.sess.Buffs.SetLevel(defs.BuffGiantSlayer, 1)
	big := w.spawn(t, "champion", 0, 1)
	normal := w.spawn(t, "grunt", 1, 0)

	assert.Equal(t, 3, HitEnemy(w.ecs, w.sess, big, 2))
	assert.Equal(t, 2, HitEnemy(w.ecs, w.sess, normal, 2))
}

func TestApplyDamageFlashesAndClamps(t *testing.T) {
	w := newWorld(t)
	id := w.spawn(t, "grunt", 0, 10)

	assert.Equal(t, 3, ApplyDamage(w.ecs, id, 5), "clamped to remaining health")
	assert.Equal(t, 0, w.health(id))
	assert.Contains(t, w.ecs.DamageFlashes, id)
	assert.Equal(t, 0, ApplyDamage(w.ecs, id, 1), "already dead")
}
