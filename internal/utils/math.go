// internal/utils/math.go
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Вся игровая логика плоская: движение идет по XZ, Y - вертикаль.

// Planar обнуляет вертикальную составляющую.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// PlanarDistSq — квадрат расстояния между точками по плоскости XZ.
func PlanarDistSq(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return dx*dx + dz*dz
}

// PlanarDirection возвращает нормализованное направление from -> to по XZ
// и false, если точки почти совпадают.
func PlanarDirection(from, to mgl64.Vec3, epsilonSq float64) (mgl64.Vec3, bool) {
	d := Planar(to.Sub(from))
	if d.Dot(d) < epsilonSq {
		return mgl64.Vec3{}, false
	}
	return d.Normalize(), true
}

// RotateY поворачивает вектор вокруг вертикальной оси.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// PointOnCircle возвращает точку на окружности радиуса radius вокруг center.
func PointOnCircle(center mgl64.Vec3, radius, angle float64) mgl64.Vec3 {
	return mgl64.Vec3{
		center.X() + math.Cos(angle)*radius,
		center.Y(),
		center.Z() + math.Sin(angle)*radius,
	}
}

// RandomPlanarDirection — случайное единичное направление по XZ.
func RandomPlanarDirection(r RandomSource) mgl64.Vec3 {
	angle := r.Float64() * 2 * math.Pi
	return mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Yaw — угол поворота вокруг вертикали для направления dir.
func Yaw(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.X(), dir.Z())
}
