// internal/system/aura.go
package system

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/types"
)

// AuraSystem обрабатывает ауры скорости врагов-бафферов.
// Эффект истекает через секунду после последнего обновления,
// поэтому баффер должен подпитывать его постоянно.
type AuraSystem struct {
	ecs *entity.ECS
}

func NewAuraSystem(ecs *entity.ECS) *AuraSystem {
	return &AuraSystem{ecs: ecs}
}

// RefreshAround обновляет ауру всем врагам в радиусе, кроме самого источника.
// Возвращает число задетых врагов.
func (s *AuraSystem) RefreshAround(sourceID types.EntityID, radius, multiplier float64) int {
	src, ok := s.ecs.Transforms[sourceID]
	if !ok {
		return 0
	}
	count := 0
	for _, targetID := range s.ecs.EntitiesWithin(src.Position, radius) {
		if targetID == sourceID {
			continue
		}
		s.ApplyAura(targetID, multiplier)
		count++
	}
	return count
}

// ApplyAura применяет или продлевает эффект. Множители нескольких
// бафферов не складываются, берется наибольший.
func (s *AuraSystem) ApplyAura(targetID types.EntityID, multiplier float64) {
	expires := s.ecs.GameTime + config.AuraBuffLifetime
	effect, hasEffect := s.ecs.AuraEffects[targetID]
	if !hasEffect || effect.ExpiresAt <= s.ecs.GameTime {
		s.ecs.AuraEffects[targetID] = &component.AuraEffect{
			SpeedMultiplier: multiplier,
			ExpiresAt:       expires,
		}
		return
	}
	if multiplier > effect.SpeedMultiplier {
		effect.SpeedMultiplier = multiplier
	}
	effect.ExpiresAt = expires
}

// SpeedMultiplier — текущий множитель скорости от ауры (1, если ее нет).
func (s *AuraSystem) SpeedMultiplier(id types.EntityID) float64 {
	effect, ok := s.ecs.AuraEffects[id]
	if !ok || effect.ExpiresAt <= s.ecs.GameTime {
		return 1.0
	}
	return effect.SpeedMultiplier
}
