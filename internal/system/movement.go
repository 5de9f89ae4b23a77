// internal/system/movement.go
package system

import (
	"go-wave-arena/internal/entity"
)

// MovementSystem интегрирует скорости в позиции. Работает только в
// фиксированном шаге: поведение и игрок до этого выставили Velocity.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) FixedUpdate(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		// Пол арены на y=0, вертикальная скорость не опускает ниже
		next := t.Position.Add(vel.Value.Mul(deltaTime))
		if next.Y() < 0 {
			next[1] = 0
			vel.Value[1] = 0
		}
		t.Position = next
	}
}
