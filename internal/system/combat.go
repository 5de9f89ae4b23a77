package system

import (
	"log"
	"math"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// CombatSystem управляет атаками оружия игрока
type CombatSystem struct {
	ecs     *entity.ECS
	session *session.GameSession
}

func NewCombatSystem(ecs *entity.ECS, sess *session.GameSession) *CombatSystem {
	return &CombatSystem{ecs: ecs, session: sess}
}

// Update — кадровая фаза: взмахи меча и стрельба по ближайшему врагу.
func (s *CombatSystem) Update(deltaTime float64) {
	player, ok := s.ecs.Player()
	if !ok || player.Dead {
		return
	}
	playerPos := s.ecs.Transforms[s.ecs.PlayerID].Position

	for _, weapon := range player.Arsenal {
		if weapon.Swinging {
			s.sweep(weapon, playerPos)
			if s.ecs.GameTime >= weapon.SwingEndsAt {
				weapon.Swinging = false
				weapon.SwingHits = nil
			}
		}

		// Цель - ближайший к игроку враг. Нет цели - пропускаем тик.
		targetID, found := s.ecs.ClosestEnemy(playerPos)
		if !found {
			continue
		}
		s.TryAttack(weapon, targetID)
	}
}

// Cooldown — перезарядка оружия с учетом баффа скорости атаки.
func (s *CombatSystem) Cooldown(weapon *component.Weapon) float64 {
	cooldown := weapon.EffectiveCooldown()
	if buff, ok := s.ecs.AttackSpeedBuffs[s.ecs.PlayerID]; ok && s.ecs.GameTime < buff.ExpiresAt && buff.Multiplier > 0 {
		cooldown /= buff.Multiplier
	}
	return cooldown
}

// TryAttack ничего не делает, пока оружие выключено или не перезарядилось.
func (s *CombatSystem) TryAttack(weapon *component.Weapon, targetID types.EntityID) bool {
	if weapon == nil || !weapon.Enabled || s.ecs.GameTime < weapon.NextAttackTime {
		return false
	}
	if _, exists := s.ecs.Enemies[targetID]; !exists {
		return false
	}
	if h, ok := s.ecs.Healths[targetID]; ok && !h.Alive() {
		return false
	}
	weapon.NextAttackTime = s.ecs.GameTime + s.Cooldown(weapon)
	s.fire(weapon, targetID)
	return true
}

func (s *CombatSystem) fire(weapon *component.Weapon, targetID types.EntityID) {
	playerPos := s.ecs.Transforms[s.ecs.PlayerID].Position
	targetPos := s.ecs.Transforms[targetID].Position
	dir, ok := utils.PlanarDirection(playerPos, targetPos, config.MoveEpsilonSq)
	if !ok {
		dir = mgl64.Vec3{0, 0, 1}
	}

	switch weapon.Def.Style {
	case defs.AttackMelee:
		weapon.Swinging = true
		weapon.SwingEndsAt = s.ecs.GameTime + weapon.Def.SwingDuration
		weapon.SwingHits = make(map[types.EntityID]bool)
		s.sweep(weapon, playerPos)

	case defs.AttackHoming:
		s.createProjectile(weapon, playerPos, dir, targetID, config.BulletLifetime)

	case defs.AttackSpread:
		spread := weapon.Def.SpreadDegrees * math.Pi / 180
		for i := 0; i < weapon.ProjectileCount(); i++ {
			angle := (s.session.Rng.Float64()*2 - 1) * spread
			s.createProjectile(weapon, playerPos, utils.RotateY(dir, angle), 0, config.PelletLifetime)
		}

	case defs.AttackExplosive:
		s.createProjectile(weapon, playerPos, dir, targetID, config.RocketLifetime)

	default:
		log.Printf("weapon %s: unknown attack style %q", weapon.Kind, weapon.Def.Style)
	}
}

// sweep бьет всех в радиусе взмаха, каждого не больше раза за взмах.
func (s *CombatSystem) sweep(weapon *component.Weapon, center mgl64.Vec3) {
	for _, enemyID := range s.ecs.EntitiesWithin(center, weapon.Def.Reach) {
		if weapon.SwingHits[enemyID] {
			continue
		}
		weapon.SwingHits[enemyID] = true
		HitEnemy(s.ecs, s.session, enemyID, weapon.EffectiveDamage())
	}
}

func (s *CombatSystem) createProjectile(weapon *component.Weapon, from, dir mgl64.Vec3,
	targetID types.EntityID, fallbackLifetime float64) types.EntityID {
	lifetime := weapon.Def.Lifetime
	if lifetime <= 0 {
		lifetime = fallbackLifetime
	}

	projID := s.ecs.NewEntity()
	s.ecs.Transforms[projID] = &component.Transform{Position: from, Yaw: utils.Yaw(dir), Scale: 1}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: 0.2,
		Alpha:  1,
	}
	s.ecs.Projectiles[projID] = &component.Projectile{
		Owner:           component.OwnedByPlayer,
		Weapon:          weapon.Kind,
		Style:           weapon.Def.Style,
		TargetID:        targetID,
		Direction:       dir,
		Speed:           weapon.Def.ProjectileSpeed,
		Damage:          weapon.EffectiveDamage(),
		ExplosionRadius: weapon.Def.ExplosionRadius,
		ExpiresAt:       s.ecs.GameTime + lifetime,
	}
	return projID
}
