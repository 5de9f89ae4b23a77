package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-wave-arena/internal/component"
	"go-wave-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и ее стадию.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.GoColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// phaseLine — вторая строка: отсчет или счетчики спавна.
func phaseLine(p component.WaveProgress) string {
	switch p.Phase {
	case component.PhaseCountdown:
		return fmt.Sprintf("next wave in %ds  [Enter] start now", p.Countdown)
	case component.PhaseSpawning, component.PhaseDraining:
		return fmt.Sprintf("spawned %d/%d  alive %d", p.Spawned, p.ToSpawn, p.Alive)
	case component.PhaseCleared:
		return "cleared"
	case component.PhaseRunComplete:
		return "all waves cleared"
	}
	return ""
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, p component.WaveProgress) {
	if p.Number <= 0 {
		return
	}

	title := fmt.Sprintf("%s / %s", toRoman(p.Number), toRoman(p.Total))
	textColor := i.Color
	if p.Number == p.Total {
		textColor = config.EnemyColor // последняя волна
	}

	// обводка
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, title, face, i.X+x, i.Y+y, i.OutlineColor)
		}
	}
	text.Draw(screen, title, face, i.X, i.Y, textColor)
	text.Draw(screen, phaseLine(p), face, i.X, i.Y+18, config.TextLightColor)
}
