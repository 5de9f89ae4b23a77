// internal/system/projectile.go
package system

import (
	"sort"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs     *entity.ECS
	session *session.GameSession
	area    *AreaAttackSystem
	players *PlayerSystem
}

func NewProjectileSystem(ecs *entity.ECS, sess *session.GameSession, area *AreaAttackSystem, players *PlayerSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:     ecs,
		session: sess,
		area:    area,
		players: players,
	}
}

func (s *ProjectileSystem) projectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.ecs.Projectiles))
	for id := range s.ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FixedUpdate двигает снаряды и проверяет попадания.
func (s *ProjectileSystem) FixedUpdate(deltaTime float64) {
	for _, id := range s.projectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos := s.ecs.Transforms[id]
		if pos == nil || s.ecs.GameTime >= proj.ExpiresAt {
			s.ecs.DestroyEntity(id)
			continue
		}

		if proj.Owner == component.OwnedByEnemy {
			s.updateHostile(id, proj, pos, deltaTime)
			continue
		}

		// Самонаводящийся снаряд доворачивает на цель; цель пропала - снаряд тоже
		if proj.Style == defs.AttackHoming {
			target, targetExists := s.ecs.Transforms[proj.TargetID]
			if _, isEnemy := s.ecs.Enemies[proj.TargetID]; !targetExists || !isEnemy {
				s.ecs.DestroyEntity(id)
				continue
			}
			if dir, ok := utils.PlanarDirection(pos.Position, target.Position, config.MoveEpsilonSq); ok {
				proj.Direction = dir
				pos.Yaw = utils.Yaw(dir)
			}
		}

		pos.Position = pos.Position.Add(proj.Direction.Mul(proj.Speed * deltaTime))

		for _, enemyID := range s.ecs.EntitiesWithin(pos.Position, config.ProjectileHitRadius) {
			// убитые в этом шаге ждут конвейера смерти и снаряды не ловят
			if h, ok := s.ecs.Healths[enemyID]; ok && h.Alive() {
				s.hitTarget(id, proj, enemyID)
				break
			}
		}
	}
}

// updateHostile — вражеский снаряд ранит только игрока. Шипы на него не действуют.
func (s *ProjectileSystem) updateHostile(id types.EntityID, proj *component.Projectile, pos *component.Transform, deltaTime float64) {
	pos.Position = pos.Position.Add(proj.Direction.Mul(proj.Speed * deltaTime))

	playerPos, ok := s.players.Position()
	if !ok {
		return
	}
	r := config.EnemyProjectileRange
	if utils.PlanarDistSq(pos.Position, playerPos) <= r*r {
		s.players.Damage(proj.Damage)
		s.ecs.DestroyEntity(id)
	}
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, targetID types.EntityID) {
	center := s.ecs.Transforms[projectileID].Position
	if proj.Style == defs.AttackExplosive && proj.ExplosionRadius > 0 {
		s.area.WeaponBlast(center, proj.ExplosionRadius, proj.Damage, "rocket")
	} else {
		HitEnemy(s.ecs, s.session, targetID, proj.Damage)
	}
	s.ecs.DestroyEntity(projectileID)
}
