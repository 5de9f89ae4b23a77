// internal/interfaces/host.go
package interfaces

import (
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// Action — дискретное нажатие, которое хост передает симуляции.
type Action int

const (
	ActionToggleShop Action = iota
	ActionMenu
	ActionTriggerWave
	ActionFrost
	ActionExplosion
	ActionConvert
	ActionBuyMine
	ActionUpgradeMines
	ActionConfirmExit
	ActionCancel
)

// InputState — оси движения и нажатия за кадр.
type InputState struct {
	MoveX, MoveZ float64
	Pressed      map[Action]bool
}

// Has сообщает, было ли нажатие в этом кадре.
func (s InputState) Has(a Action) bool {
	return s.Pressed[a]
}

// InputSource — опрос устройства ввода хостом.
type InputSource interface {
	Poll() InputState
}

// EffectPlayer проигрывает визуальный эффект в точке.
type EffectPlayer interface {
	PlayEffect(name string, position mgl64.Vec3, radius float64)
}

// EntitySpawner — возможность создать сущность заданного вида.
type EntitySpawner interface {
	Spawn(kind string, position mgl64.Vec3, yaw float64) (types.EntityID, bool)
}

// ProximityQuery — поиск сущностей в радиусе.
type ProximityQuery interface {
	EntitiesWithin(position mgl64.Vec3, radius float64) []types.EntityID
}
