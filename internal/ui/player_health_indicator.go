// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-wave-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
)

var (
	healthLow  = color.RGBA{220, 40, 40, 255}
	healthHigh = color.RGBA{60, 110, 230, 255}
	healthNone = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw: верхняя половина здоровья синяя, нижняя красная, пустые ячейки черные.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	halfHealth := maxHealth / 2
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.X + float32(col)*step + HealthCircleRadius
		y := i.Y + float32(row)*step + HealthCircleRadius

		c := healthNone
		if j < health {
			c = healthLow
			if health > halfHealth && j < health-halfHealth {
				c = healthHigh
			}
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, color.White, true)
	}

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, healthText, face, int(i.X), int(i.Y)-6, config.TextLightColor)
}
