// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-wave-arena/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModeIndicator — цветной круг режима игры. Пульсирует при смене режима.
type ModeIndicator struct {
	X, Y           float32
	Radius         float32
	LastChangeTime time.Time
	last           component.GameMode
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{X: x, Y: y, Radius: radius, last: component.ModeActive}
}

// ModeColor — цвет круга для режима.
func ModeColor(mode component.GameMode) color.RGBA {
	switch mode {
	case component.ModeActive:
		return color.RGBA{80, 200, 120, 255}
	case component.ModeShop:
		return color.RGBA{230, 190, 60, 255}
	case component.ModeMainMenu:
		return color.RGBA{90, 140, 230, 255}
	}
	return color.RGBA{200, 60, 60, 255}
}

func (i *ModeIndicator) Draw(screen *ebiten.Image, mode component.GameMode) {
	if mode != i.last {
		i.last = mode
		i.LastChangeTime = time.Now()
	}
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, ModeColor(mode), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
