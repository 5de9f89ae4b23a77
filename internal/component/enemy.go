package component

import (
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// EnemyState — стадия жизненного цикла врага.
type EnemyState int

const (
	EnemySpawned EnemyState = iota
	EnemyActive
	EnemyDying
	EnemyRemoved
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID    string // ID из каталога врагов
	Behavior defs.BehaviorKind
	State    EnemyState
	Target   types.EntityID // игрок, за которым охотится враг

	BaseSpeed   float64
	Damage      int
	MinGold     int
	MaxGold     int
	ChestChance float64

	// Модификаторы волны, скопированные в момент спавна.
	Modifiers defs.ActiveModifierSet

	Generation   int  // поколение деления: 0, 1, 2
	SplitOnDeath bool
	Wave         int

	CanHit      bool
	LastHitTime float64
	Touching    bool // касается игрока на этом тике

	Impulse mgl64.Vec3 // внешний толчок, затухает в фиксированном шаге

	ChampionSpawned bool // детей чемпиона выпускаем один раз
}
