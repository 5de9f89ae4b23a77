package system

import (
	"testing"

	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/scheduler"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
enemies:
  - {id: grunt, behavior: melee, health: 3, speed: 2, damage: 1, min_gold: 2, max_gold: 2}
  - {id: looter, behavior: melee, health: 1, speed: 2, damage: 1, chest_chance: 1}
  - {id: minion, behavior: melee, health: 1, speed: 3, damage: 1, scale: 0.5}
  - id: runner
    behavior: dodger
    health: 2
    speed: 2
    damage: 1
    dodger: {strafe_amplitude: 1, strafe_frequency: 2, speed_boost: 1.5}
  - id: archer
    behavior: ranged
    health: 3
    speed: 2
    damage: 1
    ranged: {preferred_distance: 12, retreat_distance: 6, fire_rate: 2, projectile_speed: 10, projectile_damage: 2}
  - id: shaman
    behavior: buffer
    health: 4
    speed: 2
    damage: 3
    buffer: {radius: 5, multiplier: 1.5, interval: 0.5}
  - id: champion
    behavior: champion
    health: 10
    speed: 2
    damage: 2
    scale: 1.5
    champion: {child_id: minion, min_children: 2, max_children: 4, min_push: 2, max_push: 5}
weapons:
  - {kind: sword, style: melee, cost: 5, damage: 1, cooldown: 3, swing_duration: 0.5, reach: 2.5}
  - {kind: pistol, style: homing, cost: 10, damage: 1, cooldown: 1, projectile_speed: 15, lifetime: 3}
  - {kind: shotgun, style: spread, cost: 20, damage: 1, cooldown: 2, projectile_speed: 12, lifetime: 1.5, pellets: 6, spread_degrees: 10}
  - {kind: rocket_launcher, style: explosive, cost: 40, damage: 5, cooldown: 4, projectile_speed: 12, lifetime: 5, explosion_radius: 4}
upgrades:
  pistol:
    - {diamond_cost: 2, damage_multiplier: 1.5, cooldown_multiplier: 0.9}
    - {diamond_cost: 5, damage_multiplier: 2.0, cooldown_multiplier: 0.7}
chests:
  - {kind: speed, weight: 1}
waves:
  - groups:
      - {enemy: grunt, count: 2}
      - {enemy: minion, count: 1}
`

// world собирает системы вокруг одной сессии без хоста и оркестратора.
type world struct {
	sess      *session.GameSession
	ecs       *entity.ECS
	clock     *scheduler.Clock
	sched     *scheduler.Scheduler
	modifiers *ModifierSystem
	auras     *AuraSystem
	players   *PlayerSystem
	enemies   *EnemySystem
	area      *AreaAttackSystem
	chests    *ChestSystem
	deaths    *DeathSystem
	combat    *CombatSystem
	shots     *ProjectileSystem
	abilities *AbilitySystem
	mines     *MineSystem
	movement  *MovementSystem
	effects   *recordingEffects
}

type recordingEffects struct {
	names []string
}

func (r *recordingEffects) PlayEffect(name string, _ mgl64.Vec3, _ float64) {
	r.names = append(r.names, name)
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.Parse([]byte(testCatalog))
	require.NoError(t, err)
	sess, err := session.New(lib, 7)
	require.NoError(t, err)

	w := &world{sess: sess, ecs: entity.NewECS(), clock: scheduler.NewClock(), effects: &recordingEffects{}}
	w.sched = scheduler.New(w.clock)
	w.modifiers = NewModifierSystem(nil, sess.Rng)
	w.auras = NewAuraSystem(w.ecs)
	w.players = NewPlayerSystem(w.ecs, sess)
	w.enemies = NewEnemySystem(w.ecs, sess, w.modifiers, w.auras, w.players)
	w.area = NewAreaAttackSystem(w.ecs, sess, w.effects)
	w.chests = NewChestSystem(w.ecs, sess)
	w.deaths = NewDeathSystem(w.ecs, sess, w.enemies, w.area, w.chests)
	w.combat = NewCombatSystem(w.ecs, sess)
	w.shots = NewProjectileSystem(w.ecs, sess, w.area, w.players)
	w.abilities = NewAbilitySystem(w.ecs, sess, w.area)
	w.mines = NewMineSystem(sess, w.sched)
	w.movement = NewMovementSystem(w.ecs)

	w.players.CreatePlayer(mgl64.Vec3{})
	return w
}

func (w *world) spawn(t *testing.T, kind string, x, z float64) types.EntityID {
	t.Helper()
	id, ok := w.enemies.Spawn(kind, mgl64.Vec3{x, 0, z}, 0)
	require.True(t, ok)
	return id
}

func (w *world) spawnWith(t *testing.T, kind string, x, z float64, mods defs.ActiveModifierSet, generation int) types.EntityID {
	t.Helper()
	id, ok := w.enemies.SpawnChild(kind, mgl64.Vec3{x, 0, z}, mods, generation, 0, mgl64.Vec3{})
	require.True(t, ok)
	return id
}

func (w *world) kill(id types.EntityID) {
	w.ecs.Healths[id].Value = 0
}

func (w *world) health(id types.EntityID) int {
	h, ok := w.ecs.Healths[id]
	if !ok {
		return 0
	}
	return h.Value
}

func (w *world) playerHealth() int {
	return w.health(w.ecs.PlayerID)
}

// at двигает игровое время напрямую: системы читают ecs.GameTime.
func (w *world) at(t float64) {
	w.ecs.GameTime = t
}
