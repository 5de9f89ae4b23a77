// internal/system/chest.go
package system

import (
	"log"

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

// ChestSystem — сундуки с временными баффами.
type ChestSystem struct {
	ecs     *entity.ECS
	session *session.GameSession
}

func NewChestSystem(ecs *entity.ECS, sess *session.GameSession) *ChestSystem {
	return &ChestSystem{ecs: ecs, session: sess}
}

// Roll выбирает вид сундука по весам таблицы добычи.
func (s *ChestSystem) Roll() defs.ChestKind {
	return utils.ChooseWeighted(s.session.Rng, s.session.Library.Chests)
}

// Drop кладет сундук на землю в точке смерти.
func (s *ChestSystem) Drop(pos mgl64.Vec3, kind defs.ChestKind) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = &component.Transform{Position: utils.Planar(pos), Scale: 1}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.ChestColor, Radius: 0.4, Alpha: 1}
	s.ecs.Chests[id] = &component.Chest{Kind: kind, ExpiresAt: s.ecs.GameTime + config.ChestLifetime}

	s.session.Events.Dispatch(event.Event{
		Type: event.ChestDropped,
		Data: event.ChestPayload{ID: id, Kind: kind, Position: pos},
	})
	return id
}

// Update убирает просроченные сундуки и подбирает те, что рядом с игроком.
func (s *ChestSystem) Update(deltaTime float64) {
	if len(s.ecs.Chests) == 0 {
		return
	}
	playerPos, hasPlayer := s.ecs.Transforms[s.ecs.PlayerID]
	r2 := config.ChestPickupRadius * config.ChestPickupRadius

	for id, chest := range s.ecs.Chests {
		if s.ecs.GameTime >= chest.ExpiresAt {
			s.ecs.DestroyEntity(id)
			continue
		}
		if !hasPlayer {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok || utils.PlanarDistSq(t.Position, playerPos.Position) > r2 {
			continue
		}
		s.apply(chest.Kind)
		s.session.Events.Dispatch(event.Event{
			Type: event.ChestPicked,
			Data: event.ChestPayload{ID: id, Kind: chest.Kind, Position: t.Position},
		})
		s.ecs.DestroyEntity(id)
	}
}

// apply выдает игроку бафф сундука. Повторный подбор продлевает срок.
func (s *ChestSystem) apply(kind defs.ChestKind) {
	expires := s.ecs.GameTime + config.ChestBuffDuration
	switch kind {
	case defs.ChestSpeed:
		s.ecs.SpeedBuffs[s.ecs.PlayerID] = &component.SpeedBuff{
			Bonus:     config.SpeedBuffBonus,
			ExpiresAt: expires,
		}
	case defs.ChestAttackSpeed:
		s.ecs.AttackSpeedBuffs[s.ecs.PlayerID] = &component.AttackSpeedBuff{
			Multiplier: config.AttackSpeedBuffBonus,
			ExpiresAt:  expires,
		}
	default:
		log.Printf("unknown chest kind: %s", kind)
	}
}
