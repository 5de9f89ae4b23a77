// internal/system/ability.go
package system

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/economy"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/session"
)

// AbilitySystem — активные способности игрока: заряды покупаются за золото.
type AbilitySystem struct {
	ecs     *entity.ECS
	session *session.GameSession
	area    *AreaAttackSystem

	frostCharges     int
	explosionCharges int
}

func NewAbilitySystem(ecs *entity.ECS, sess *session.GameSession, area *AreaAttackSystem) *AbilitySystem {
	return &AbilitySystem{ecs: ecs, session: sess, area: area}
}

// BuyFrost покупает заряд заморозки.
func (s *AbilitySystem) BuyFrost() bool {
	if !s.session.Ledger.Spend(economy.Gold, config.FrostCost) {
		return false
	}
	s.frostCharges++
	return true
}

// BuyExplosion покупает заряд взрыва.
func (s *AbilitySystem) BuyExplosion() bool {
	if !s.session.Ledger.Spend(economy.Gold, config.ExplosionCost) {
		return false
	}
	s.explosionCharges++
	return true
}

// UseFrost замораживает всех живых врагов. Без зарядов ничего не делает.
func (s *AbilitySystem) UseFrost() bool {
	if s.frostCharges <= 0 {
		return false
	}
	s.frostCharges--
	until := s.ecs.GameTime + config.FrostDuration
	for _, id := range s.ecs.EnemyIDs() {
		s.ecs.Frozen[id] = &component.Frozen{Until: until}
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.Value = vel.Value.Mul(0)
		}
	}
	if t, ok := s.ecs.Transforms[s.ecs.PlayerID]; ok {
		s.area.spawnEffect(t.Position, config.SpawnRadius, config.AbilityFrostEffect)
	}
	return true
}

// UseExplosion бьет всех врагов вокруг игрока.
func (s *AbilitySystem) UseExplosion() bool {
	if s.explosionCharges <= 0 {
		return false
	}
	t, ok := s.ecs.Transforms[s.ecs.PlayerID]
	if !ok {
		return false
	}
	s.explosionCharges--
	s.area.Blast(t.Position, config.ExplosionRadius, config.ExplosionDamage, nil, 0, config.AbilityBoomEffect)
	return true
}

// Convert меняет золото на алмаз.
func (s *AbilitySystem) Convert() bool {
	return s.session.Ledger.Convert()
}

func (s *AbilitySystem) FrostCharges() int     { return s.frostCharges }
func (s *AbilitySystem) ExplosionCharges() int { return s.explosionCharges }
