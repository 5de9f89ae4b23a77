// internal/component/projectile.go
package component

import (
	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectileOwner — чей это снаряд.
type ProjectileOwner int

const (
	OwnedByPlayer ProjectileOwner = iota
	OwnedByEnemy
)

// Projectile представляет летящий снаряд.
// Урон здесь - уже с учетом апгрейда; баффы добавляются в момент попадания.
type Projectile struct {
	Owner           ProjectileOwner
	Weapon          defs.WeaponKind
	Style           defs.AttackStyle
	TargetID        types.EntityID // для самонаводящихся
	Direction       mgl64.Vec3
	Speed           float64
	Damage          int
	ExplosionRadius float64
	ExpiresAt       float64
}
