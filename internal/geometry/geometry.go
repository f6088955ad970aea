// Package geometry содержит тригонометрию для построения дуговых стрелок.
package geometry

import "math"

// Point - точка на холсте в пикселях.
type Point struct {
	X, Y float64
}

// Radians переводит градусы в радианы.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees переводит радианы в градусы.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PointOnCircle возвращает точку окружности радиуса r под углом angleDeg.
// Соглашение углов: 0° - восток, рост по часовой стрелке (экранные
// координаты, ось Y направлена вниз). Соглашение менять нельзя:
// обратное направление зеркалит стрелки и ломает поворотную симметрию.
func PointOnCircle(cx, cy, r, angleDeg float64) Point {
	rad := Radians(angleDeg)
	return Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

// TangentCCW возвращает единичный касательный вектор в направлении
// против часовой стрелки (в сторону убывания угла) в точке окружности
// под углом angleDeg.
func TangentCCW(angleDeg float64) Point {
	rad := Radians(angleDeg)
	return Point{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// NormalizeSpan возвращает угловой размах дуги от startDeg до endDeg при
// обходе по часовой стрелке. Когда конец дуги «перешагнул» через 360°,
// размах дополняется полным оборотом, чтобы обход всегда шёл в нужную
// сторону.
func NormalizeSpan(startDeg, endDeg float64) float64 {
	span := endDeg - startDeg
	if span <= 0 {
		span += 360
	}
	return span
}
