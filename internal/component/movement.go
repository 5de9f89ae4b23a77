// component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Transform — позиция и ориентация в мире. Y - вертикаль.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64 // поворот вокруг вертикали, радианы
	Scale    float64
}

// Velocity — компонент скорости. Горизонтальную часть задает поведение,
// вертикальную не трогаем.
type Velocity struct {
	Value mgl64.Vec3
}
