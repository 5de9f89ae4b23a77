// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

// FloatingText — всплывающая надпись над точкой мира ("+3 gold").
type FloatingText struct {
	Text      string
	Color     color.RGBA
	ExpiresAt float64
}

// AoeEffect — расширяющийся круг взрыва.
type AoeEffect struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
}
