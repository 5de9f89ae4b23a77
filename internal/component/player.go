// internal/component/player.go
package component

import (
	"go-wave-arena/internal/defs"

	"github.com/go-gl/mathgl/mgl64"
)

// Player хранит информацию, специфичную для игрока.
type Player struct {
	MoveSpeed float64
	Knockback mgl64.Vec3
	MoveInput mgl64.Vec3 // оси ввода в плоскости XZ

	Arsenal []*Weapon // купленное оружие в порядке покупки
	Dead    bool
}

// Weapon returns the owned weapon of the given kind.
func (p *Player) Weapon(kind defs.WeaponKind) (*Weapon, bool) {
	for _, w := range p.Arsenal {
		if w.Kind == kind {
			return w, true
		}
	}
	return nil, false
}
