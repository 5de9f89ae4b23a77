// internal/system/enemy.go
package system

import (
	"log"
	"math"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// EnemySystem — общая машина состояний врага. Варианты поведения
// подключаются через Behavior и живут здесь, а не в ECS.
type EnemySystem struct {
	ecs       *entity.ECS
	session   *session.GameSession
	modifiers *ModifierSystem
	auras     *AuraSystem
	players   *PlayerSystem
	behaviors map[types.EntityID]Behavior
	wave      int
}

func NewEnemySystem(ecs *entity.ECS, sess *session.GameSession, modifiers *ModifierSystem,
	auras *AuraSystem, players *PlayerSystem) *EnemySystem {
	return &EnemySystem{
		ecs:       ecs,
		session:   sess,
		modifiers: modifiers,
		auras:     auras,
		players:   players,
		behaviors: make(map[types.EntityID]Behavior),
	}
}

// SetWave задает номер волны, которым помечаются новые враги.
func (s *EnemySystem) SetWave(n int) {
	s.wave = n
}

// Behavior возвращает поведение врага.
func (s *EnemySystem) Behavior(id types.EntityID) (Behavior, bool) {
	b, ok := s.behaviors[id]
	return b, ok
}

// Spawn создает врага вида kind с активными модификаторами волны.
func (s *EnemySystem) Spawn(kind string, position mgl64.Vec3, yaw float64) (types.EntityID, bool) {
	def, ok := s.session.Library.Enemy(kind)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", kind)
		return 0, false
	}
	mods := s.modifiers.Active()
	id := s.spawn(def, position, yaw, mods, 0, def.Scale*mods.Scale)
	return id, true
}

// SpawnChild создает копию от деления или детеныша чемпиона. Модификаторы
// берутся от родителя, а не из текущего набора волны. scale == 0 означает
// обычный размер вида с учетом модификаторов.
func (s *EnemySystem) SpawnChild(kind string, position mgl64.Vec3, mods defs.ActiveModifierSet,
	generation int, scale float64, impulse mgl64.Vec3) (types.EntityID, bool) {
	def, ok := s.session.Library.Enemy(kind)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", kind)
		return 0, false
	}
	if scale <= 0 {
		scale = def.Scale * mods.Scale
	}
	id := s.spawn(def, position, utils.Yaw(impulse), mods, generation, scale)
	s.ecs.Enemies[id].Impulse = utils.Planar(impulse)
	return id, true
}

func (s *EnemySystem) spawn(def defs.EnemyDefinition, position mgl64.Vec3, yaw float64,
	mods defs.ActiveModifierSet, generation int, scale float64) types.EntityID {
	health := int(math.Round(float64(def.Health) * mods.Health))
	if health < 1 {
		health = 1
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: position, Yaw: yaw, Scale: scale}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.EnemyColor,
		Radius: float32(0.5 * scale),
		Alpha:  1 - mods.Transparency,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:        def.ID,
		Behavior:     def.Behavior,
		State:        component.EnemySpawned,
		Target:       s.ecs.PlayerID,
		BaseSpeed:    def.Speed,
		Damage:       def.Damage,
		MinGold:      def.MinGold,
		MaxGold:      def.MaxGold,
		ChestChance:  def.ChestChance,
		Modifiers:    mods,
		Generation:   generation,
		SplitOnDeath: mods.SplitOnDeath,
		Wave:         s.wave,
		CanHit:       true,
	}
	s.behaviors[id] = NewBehavior(def, s.session.Rng, s.ecs.GameTime)

	s.session.Events.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyPayload{ID: id, DefID: def.ID, Position: position},
	})
	return id
}

// Remove уничтожает врага и его поведение.
func (s *EnemySystem) Remove(id types.EntityID) {
	if enemy, ok := s.ecs.Enemies[id]; ok {
		enemy.State = component.EnemyRemoved
	}
	s.ecs.DestroyEntity(id)
	delete(s.behaviors, id)
}

// Clear убирает всех врагов и их снаряды (сброс волны).
func (s *EnemySystem) Clear() {
	s.ecs.ClearEnemies()
	for id := range s.behaviors {
		delete(s.behaviors, id)
	}
}

// FireProjectile выпускает вражеский снаряд из точки над врагом.
func (s *EnemySystem) FireProjectile(from types.EntityID, dir mgl64.Vec3, speed float64, damage int) (types.EntityID, bool) {
	t, ok := s.ecs.Transforms[from]
	if !ok || dir.LenSqr() < config.MoveEpsilonSq {
		return 0, false
	}
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{
		Position: t.Position.Add(mgl64.Vec3{0, 1, 0}),
		Yaw:      utils.Yaw(dir),
		Scale:    1,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.HostileColor, Radius: 0.25, Alpha: 1}
	s.ecs.Projectiles[id] = &component.Projectile{
		Owner:     component.OwnedByEnemy,
		Direction: utils.Planar(dir).Normalize(),
		Speed:     speed,
		Damage:    damage,
		ExpiresAt: s.ecs.GameTime + config.EnemyProjectileLife,
	}
	return id, true
}

// towardPlayer — нормализованное плоское направление к цели и расстояние.
func (s *EnemySystem) towardPlayer(enemy *component.Enemy, t *component.Transform) (mgl64.Vec3, float64, bool) {
	target, ok := s.ecs.Transforms[enemy.Target]
	if !ok {
		return mgl64.Vec3{}, 0, false
	}
	dir, ok := utils.PlanarDirection(t.Position, target.Position, config.MoveEpsilonSq)
	dist := math.Sqrt(utils.PlanarDistSq(t.Position, target.Position))
	return dir, dist, ok
}

// Update — кадровая фаза: переходы состояний, окно удара, поведение, контакт.
func (s *EnemySystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	player, hasPlayer := s.ecs.Player()

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		health, ok := s.ecs.Healths[id]
		if !ok || health.Value <= 0 {
			continue
		}
		if enemy.State == component.EnemySpawned {
			enemy.State = component.EnemyActive
		}
		if enemy.State != component.EnemyActive {
			continue
		}

		// Окно повторного удара проверяется по времени каждый кадр
		if !enemy.CanHit && now-enemy.LastHitTime >= config.EnemyHitCooldown {
			enemy.CanHit = true
		}

		if isFrozen(s.ecs, id) {
			continue
		}

		t := s.ecs.Transforms[id]
		toPlayer, dist, ok := s.towardPlayer(enemy, t)
		behavior := s.behaviors[id]
		if behavior != nil && ok {
			behavior.Tick(s, id, toPlayer, dist)
		}

		if !hasPlayer || player.Dead {
			enemy.Touching = false
			continue
		}

		touching := dist <= config.EnemyContactRadius*t.Scale
		if touching && !enemy.Touching {
			s.session.Buffs.ApplyFireTouch(enemyTarget{ecs: s.ecs, id: id})
		}
		enemy.Touching = touching

		if !touching || !enemy.CanHit || enemy.Damage <= 0 {
			continue
		}
		if behavior != nil && !behavior.ContactDamage() {
			continue
		}
		if h, ok := s.ecs.Healths[id]; !ok || h.Value <= 0 {
			// сгорел от огненного касания
			continue
		}
		s.hitPlayer(id, enemy, toPlayer)
	}
}

// hitPlayer: урон, отбрасывание, затем шипы обратно во врага.
func (s *EnemySystem) hitPlayer(id types.EntityID, enemy *component.Enemy, toPlayer mgl64.Vec3) {
	s.players.Damage(enemy.Damage)
	s.players.ApplyKnockback(toPlayer, float64(enemy.Damage)*enemy.Modifiers.Knockback)
	s.session.Buffs.ApplyThornsOnEnemyHit(enemyTarget{ecs: s.ecs, id: id})
	enemy.CanHit = false
	enemy.LastHitTime = s.ecs.GameTime
}

// FixedUpdate выставляет плоскую скорость по намерению поведения.
// Вертикальная составляющая сохраняется.
func (s *EnemySystem) FixedUpdate(deltaTime float64) {
	decay := math.Exp(-config.ChampionImpulseDecay * deltaTime)

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		vel, hasVel := s.ecs.Velocities[id]
		t, hasT := s.ecs.Transforms[id]
		health, hasHealth := s.ecs.Healths[id]
		if !hasVel || !hasT || !hasHealth || health.Value <= 0 {
			continue
		}

		impulse := enemy.Impulse
		enemy.Impulse = impulse.Mul(decay)
		if enemy.Impulse.LenSqr() < config.MoveEpsilonSq {
			enemy.Impulse = mgl64.Vec3{}
		}

		// заморозка гасит и толчок: он затухает, но не двигает
		if isFrozen(s.ecs, id) {
			vel.Value = mgl64.Vec3{0, vel.Value.Y(), 0}
			continue
		}

		planar := impulse
		if enemy.State == component.EnemyActive {
			if toPlayer, dist, ok := s.towardPlayer(enemy, t); ok {
				intent := toPlayer
				if behavior := s.behaviors[id]; behavior != nil {
					intent = behavior.MoveIntent(s, id, toPlayer, dist)
				}
				speed := enemy.BaseSpeed * s.auras.SpeedMultiplier(id) * enemy.Modifiers.Speed
				planar = planar.Add(intent.Mul(speed))
				if intent.LenSqr() >= config.MoveEpsilonSq {
					t.Yaw = utils.Yaw(intent)
				}
			}
		}
		vel.Value = mgl64.Vec3{planar.X(), vel.Value.Y(), planar.Z()}
	}
}
