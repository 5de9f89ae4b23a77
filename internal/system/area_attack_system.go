// internal/system/area_attack_system.go
package system

import (
	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/interfaces"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// AreaAttackSystem наносит урон по области: взрывы при смерти, цепная реакция,
// способность "Взрыв" и ракеты.
type AreaAttackSystem struct {
	ecs     *entity.ECS
	session *session.GameSession
	effects interfaces.EffectPlayer // может быть nil
}

func NewAreaAttackSystem(ecs *entity.ECS, sess *session.GameSession, effects interfaces.EffectPlayer) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs, session: sess, effects: effects}
}

// Blast наносит фиксированный урон врагам в радиусе, кроме exclude.
// candidates - снимок врагов на момент события; nil означает "все живые сейчас".
// Возвращает задетых врагов.
func (s *AreaAttackSystem) Blast(center mgl64.Vec3, radius float64, damage int,
	candidates []types.EntityID, exclude types.EntityID, effect string) []types.EntityID {
	if radius <= 0 || damage <= 0 {
		return nil
	}
	s.spawnEffect(center, radius, effect)

	var hit []types.EntityID
	for _, enemyID := range s.targets(center, radius, candidates) {
		if enemyID == exclude {
			continue
		}
		if ApplyDamage(s.ecs, enemyID, damage) > 0 {
			hit = append(hit, enemyID)
		}
	}
	return hit
}

// WeaponBlast — взрыв оружия игрока: каждый враг в радиусе считает
// MoneyIsStrength и GiantSlayer отдельно.
func (s *AreaAttackSystem) WeaponBlast(center mgl64.Vec3, radius float64, effectiveDamage int, effect string) []types.EntityID {
	if radius <= 0 {
		return nil
	}
	s.spawnEffect(center, radius, effect)

	var hit []types.EntityID
	for _, enemyID := range s.targets(center, radius, nil) {
		if HitEnemy(s.ecs, s.session, enemyID, effectiveDamage) > 0 {
			hit = append(hit, enemyID)
		}
	}
	return hit
}

func (s *AreaAttackSystem) targets(center mgl64.Vec3, radius float64, candidates []types.EntityID) []types.EntityID {
	if candidates == nil {
		return s.ecs.EntitiesWithin(center, radius)
	}
	r2 := radius * radius
	out := make([]types.EntityID, 0, len(candidates))
	for _, id := range candidates {
		if _, alive := s.ecs.Enemies[id]; !alive {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		dx := t.Position.X() - center.X()
		dz := t.Position.Z() - center.Z()
		if dx*dx+dz*dz <= r2 {
			out = append(out, id)
		}
	}
	return out
}

// spawnEffect создает расширяющийся круг и просит хост проиграть эффект.
func (s *AreaAttackSystem) spawnEffect(center mgl64.Vec3, radius float64, name string) {
	effectID := s.ecs.NewEntity()
	s.ecs.Transforms[effectID] = &component.Transform{Position: center, Scale: 1}
	s.ecs.Renderables[effectID] = &component.Renderable{
		Color:  config.HostileColor,
		Radius: 0, // Начнет с нуля и будет расти
		Alpha:  1,
	}
	s.ecs.AoeEffects[effectID] = &component.AoeEffect{
		MaxRadius: radius,
		Duration:  config.AoeEffectDuration,
	}

	if name == "" {
		return
	}
	if s.effects != nil {
		s.effects.PlayEffect(name, center, radius)
	}
	if s.session != nil {
		s.session.Events.Dispatch(event.Event{
			Type: event.EffectRequested,
			Data: event.EffectPayload{Name: name, Position: center, Radius: radius},
		})
	}
}
