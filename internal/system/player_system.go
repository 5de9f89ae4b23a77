// internal/system/player_system.go
package system

import (
	"log"
	"math"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/economy"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/event"
	"go-wave-arena/internal/session"
	"go-wave-arena/internal/types"
	"go-wave-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerSystem отвечает за здоровье, движение, отбрасывание и арсенал игрока.
type PlayerSystem struct {
	ecs     *entity.ECS
	session *session.GameSession
}

func NewPlayerSystem(ecs *entity.ECS, sess *session.GameSession) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, session: sess}
}

// CreatePlayer создает игрока в точке появления.
func (s *PlayerSystem) CreatePlayer(pos mgl64.Vec3) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.PlayerID = id
	s.ecs.Transforms[id] = &component.Transform{Position: pos, Scale: 1}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: 0.6, Alpha: 1}
	s.ecs.Players[id] = &component.Player{MoveSpeed: config.PlayerMoveSpeed}
	return id
}

// Position — текущая позиция игрока.
func (s *PlayerSystem) Position() (mgl64.Vec3, bool) {
	t, ok := s.ecs.Transforms[s.ecs.PlayerID]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return t.Position, true
}

// Health возвращает здоровье игрока.
func (s *PlayerSystem) Health() (*component.Health, bool) {
	h, ok := s.ecs.Healths[s.ecs.PlayerID]
	return h, ok
}

// Damage снимает здоровье игрока, не ниже нуля.
func (s *PlayerSystem) Damage(amount int) int {
	player, ok := s.ecs.Player()
	if !ok || player.Dead {
		return 0
	}
	return ApplyDamage(s.ecs, s.ecs.PlayerID, amount)
}

// Heal восстанавливает здоровье, не выше максимума.
func (s *PlayerSystem) Heal(amount int) {
	h, ok := s.Health()
	if !ok || amount <= 0 || h.Value <= 0 {
		return
	}
	h.Value += amount
	if h.Value > h.Max {
		h.Value = h.Max
	}
}

// ApplyKnockback толкает игрока по плоскости. Толчок затухает экспоненциально.
func (s *PlayerSystem) ApplyKnockback(dir mgl64.Vec3, force float64) {
	player, ok := s.ecs.Player()
	if !ok || force <= 0 {
		return
	}
	planar := mgl64.Vec3{dir.X(), 0, dir.Z()}
	if planar.LenSqr() < config.MoveEpsilonSq {
		return
	}
	player.Knockback = player.Knockback.Add(planar.Normalize().Mul(force))
}

// Teleport переносит игрока и гасит отбрасывание.
func (s *PlayerSystem) Teleport(pos mgl64.Vec3) {
	if t, ok := s.ecs.Transforms[s.ecs.PlayerID]; ok {
		t.Position = pos
	}
	if player, ok := s.ecs.Player(); ok {
		player.Knockback = mgl64.Vec3{}
	}
}

// SetMoveInput сохраняет оси ввода. Диагональ не быстрее прямой.
func (s *PlayerSystem) SetMoveInput(x, z float64) {
	player, ok := s.ecs.Player()
	if !ok {
		return
	}
	in := mgl64.Vec3{x, 0, z}
	if in.LenSqr() > 1 {
		in = in.Normalize()
	}
	player.MoveInput = in
}

// MoveSpeed учитывает бафф скорости из сундука.
func (s *PlayerSystem) MoveSpeed() float64 {
	player, ok := s.ecs.Player()
	if !ok {
		return 0
	}
	speed := player.MoveSpeed
	if buff, ok := s.ecs.SpeedBuffs[s.ecs.PlayerID]; ok && s.ecs.GameTime < buff.ExpiresAt {
		speed += buff.Bonus
	}
	return speed
}

// FixedUpdate выставляет скорость игрока: ввод плюс затухающее отбрасывание.
func (s *PlayerSystem) FixedUpdate(deltaTime float64) {
	player, ok := s.ecs.Player()
	if !ok || player.Dead {
		return
	}
	vel, ok := s.ecs.Velocities[s.ecs.PlayerID]
	if !ok {
		return
	}
	move := player.MoveInput.Mul(s.MoveSpeed())
	vel.Value = mgl64.Vec3{move.X() + player.Knockback.X(), vel.Value.Y(), move.Z() + player.Knockback.Z()}

	player.Knockback = player.Knockback.Mul(math.Exp(-config.KnockbackDamping * deltaTime))
	if player.Knockback.LenSqr() < config.MoveEpsilonSq {
		player.Knockback = mgl64.Vec3{}
	}
	if move.LenSqr() > config.MoveEpsilonSq {
		s.ecs.Transforms[s.ecs.PlayerID].Yaw = utils.Yaw(move)
	}
}

// CheckDeath проверяется раз за кадр. Запасная жизнь отменяет смерть и
// возвращает полное здоровье. Возвращает true, если игрок погиб.
func (s *PlayerSystem) CheckDeath() bool {
	player, ok := s.ecs.Player()
	if !ok || player.Dead {
		return false
	}
	h, ok := s.Health()
	if !ok || h.Value > 0 {
		return false
	}

	pos, _ := s.Position()
	if s.session.Buffs.ConsumeExtraLife() {
		h.Value = h.Max
		log.Printf("[%s] extra life used, %d left", s.session.ShortID(), s.session.Buffs.Level(defs.BuffExtraLife))
		s.session.Events.Dispatch(event.Event{Type: event.ExtraLifeUsed, Data: event.EnemyPayload{Position: pos}})
		return false
	}

	player.Dead = true
	player.MoveInput = mgl64.Vec3{}
	log.Printf("[%s] player died", s.session.ShortID())
	s.session.Events.Dispatch(event.Event{Type: event.PlayerDied, Data: event.EnemyPayload{Position: pos}})
	return true
}

// BuyWeapon покупает оружие за золото. Повторная покупка того же вида отклоняется.
func (s *PlayerSystem) BuyWeapon(kind defs.WeaponKind) bool {
	player, ok := s.ecs.Player()
	if !ok {
		return false
	}
	if _, owned := player.Weapon(kind); owned {
		return false
	}
	def, ok := s.session.Library.Weapons[kind]
	if !ok {
		log.Printf("Error: weapon definition not found for kind: %s", kind)
		return false
	}
	if !s.session.Ledger.Spend(economy.Gold, def.Cost) {
		return false
	}
	player.Arsenal = append(player.Arsenal, component.NewWeapon(def))
	return true
}

// GiveWeapon выдает оружие бесплатно (стартовый меч).
func (s *PlayerSystem) GiveWeapon(kind defs.WeaponKind) bool {
	player, ok := s.ecs.Player()
	if !ok {
		return false
	}
	if _, owned := player.Weapon(kind); owned {
		return false
	}
	def, ok := s.session.Library.Weapons[kind]
	if !ok {
		return false
	}
	player.Arsenal = append(player.Arsenal, component.NewWeapon(def))
	return true
}
