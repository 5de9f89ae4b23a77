// internal/system/status_effect.go
package system

import (
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/types"
)

// StatusEffectSystem снимает истекшие эффекты: заморозку, ауры и баффы из сундуков.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime

	for id, frozen := range s.ecs.Frozen {
		if now >= frozen.Until {
			delete(s.ecs.Frozen, id)
		}
	}

	for id, effect := range s.ecs.AuraEffects {
		if now >= effect.ExpiresAt {
			delete(s.ecs.AuraEffects, id)
		}
	}

	for id, buff := range s.ecs.SpeedBuffs {
		if now >= buff.ExpiresAt {
			delete(s.ecs.SpeedBuffs, id)
		}
	}

	for id, buff := range s.ecs.AttackSpeedBuffs {
		if now >= buff.ExpiresAt {
			delete(s.ecs.AttackSpeedBuffs, id)
		}
	}
}

// IsFrozen сообщает, заморожена ли сущность в данный момент.
func (s *StatusEffectSystem) IsFrozen(id types.EntityID) bool {
	return isFrozen(s.ecs, id)
}

func isFrozen(ecs *entity.ECS, id types.EntityID) bool {
	f, ok := ecs.Frozen[id]
	return ok && ecs.GameTime < f.Until
}
