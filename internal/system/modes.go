// internal/system/modes.go
package system

import (
	"log"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/entity"
	"go-wave-arena/internal/scheduler"
)

// ModeSystem переключает глобальный режим игры. Любой режим, кроме Active,
// ставит игровые часы на паузу: таймеры волны замирают, но не сбрасываются.
type ModeSystem struct {
	ecs   *entity.ECS
	clock *scheduler.Clock
	final bool
}

func NewModeSystem(ecs *entity.ECS, clock *scheduler.Clock) *ModeSystem {
	return &ModeSystem{ecs: ecs, clock: clock}
}

func (s *ModeSystem) Current() component.GameMode {
	return s.ecs.Mode
}

// IsActive — идут ли бой и таймеры.
func (s *ModeSystem) IsActive() bool {
	return s.ecs.Mode == component.ModeActive
}

func (s *ModeSystem) switchTo(mode component.GameMode) {
	if s.ecs.Mode == mode {
		return
	}
	log.Printf("game mode: %s -> %s", s.ecs.Mode, mode)
	s.ecs.Mode = mode
	if mode == component.ModeActive {
		s.clock.Resume()
	} else {
		s.clock.Pause()
	}
}

// ToggleShop: Active <-> Shop. Из меню и после конца игры не работает.
func (s *ModeSystem) ToggleShop() bool {
	switch s.ecs.Mode {
	case component.ModeActive:
		s.switchTo(component.ModeShop)
		return true
	case component.ModeShop:
		s.switchTo(component.ModeActive)
		return true
	}
	return false
}

// Escape: закрыть меню, иначе закрыть магазин, иначе открыть меню.
func (s *ModeSystem) Escape() {
	switch s.ecs.Mode {
	case component.ModeMainMenu:
		s.CloseMenu()
	case component.ModeShop:
		s.switchTo(component.ModeActive)
	case component.ModeActive:
		s.OpenMenu()
	}
}

// OpenMenu открывает меню паузы / подтверждения выхода.
func (s *ModeSystem) OpenMenu() bool {
	if s.ecs.Mode == component.ModeEnd {
		return false
	}
	s.switchTo(component.ModeMainMenu)
	return true
}

// OpenFinalMenu открывает меню конца забега. Закрыть его нельзя, только выйти.
func (s *ModeSystem) OpenFinalMenu() bool {
	if !s.OpenMenu() {
		return false
	}
	s.final = true
	return true
}

// Final — открыто меню конца забега.
func (s *ModeSystem) Final() bool {
	return s.final
}

// CloseMenu возвращает в бой.
func (s *ModeSystem) CloseMenu() bool {
	if s.ecs.Mode != component.ModeMainMenu || s.final {
		return false
	}
	s.switchTo(component.ModeActive)
	return true
}

// End — игра окончена, из этого режима выхода нет.
func (s *ModeSystem) End() {
	s.switchTo(component.ModeEnd)
}
