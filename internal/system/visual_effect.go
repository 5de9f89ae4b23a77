// internal/system/visual_effect.go
package system

import (
	"fmt"
	"image/color"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// круги взрывов и всплывающий текст.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает систему и подписывает ее на начисление золота.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.GoldAwarded, s)
	}
	return s
}

// OnEvent показывает "+N gold" над местом смерти врага.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	payload, ok := e.Data.(event.GoldPayload)
	if !ok || payload.Amount <= 0 {
		return
	}
	s.SpawnText(payload.Position, fmt.Sprintf("+%d gold", payload.Amount), config.ProjectileColor)
}

// SpawnText создает всплывающую надпись.
func (s *VisualEffectSystem) SpawnText(pos mgl64.Vec3, text string, c color.RGBA) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: pos, Scale: 1}
	s.ecs.Texts[id] = &component.FloatingText{
		Text:      text,
		Color:     c,
		ExpiresAt: s.ecs.GameTime + config.FloatingTextDuration,
	}
	return id
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, aoeEffect := range s.ecs.AoeEffects {
		aoeEffect.CurrentTimer += deltaTime
		if aoeEffect.CurrentTimer >= aoeEffect.Duration {
			s.ecs.DestroyEntity(id)
			continue
		}
		// Радиус растет для анимации
		if renderable, ok := s.ecs.Renderables[id]; ok {
			progress := aoeEffect.CurrentTimer / aoeEffect.Duration
			renderable.Radius = float32(progress * aoeEffect.MaxRadius)
			renderable.Alpha = 1 - progress
		}
	}

	for id, text := range s.ecs.Texts {
		if s.ecs.GameTime >= text.ExpiresAt {
			s.ecs.DestroyEntity(id)
			continue
		}
		// надпись всплывает
		if t, ok := s.ecs.Transforms[id]; ok {
			t.Position = t.Position.Add(mgl64.Vec3{0, deltaTime, 0})
		}
	}
}
