package render

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"ikona/internal/config"
	"ikona/internal/geometry"
)

// arcSteps - число угловых шагов при обходе кромок дуги. Влияет только
// на гладкость контура, не на корректность.
const arcSteps = 200

// ArrowPolygon строит замкнутый многоугольник изогнутой стрелки.
//
// Контур: вершина наконечника, внешнее «крыло», внешняя кромка дуги от
// начального угла к конечному, внутренняя кромка обратно, внутреннее
// «крыло». Вершина наконечника вынесена за начало дуги вдоль осевой
// линии на угол headLength/radius (перевод длины дуги в угол); крылья -
// радиальные смещения от осевой линии в точке начала на полуширину
// основания.
func ArrowPolygon(cx, cy float64, a config.ArcSpec) []geometry.Point {
	span := geometry.NormalizeSpan(a.StartAngle, a.EndAngle)
	outer := a.Radius + a.Thickness/2
	inner := a.Radius - a.Thickness/2
	headDelta := geometry.Degrees(a.HeadLength / a.Radius)

	pts := make([]geometry.Point, 0, 2*(arcSteps+1)+3)
	pts = append(pts, geometry.PointOnCircle(cx, cy, a.Radius, a.StartAngle-headDelta))
	pts = append(pts, geometry.PointOnCircle(cx, cy, a.Radius+a.HeadHalfWidth, a.StartAngle))
	for i := 0; i <= arcSteps; i++ {
		ang := a.StartAngle + span*float64(i)/arcSteps
		pts = append(pts, geometry.PointOnCircle(cx, cy, outer, ang))
	}
	for i := arcSteps; i >= 0; i-- {
		ang := a.StartAngle + span*float64(i)/arcSteps
		pts = append(pts, geometry.PointOnCircle(cx, cy, inner, ang))
	}
	pts = append(pts, geometry.PointOnCircle(cx, cy, a.Radius-a.HeadHalfWidth, a.StartAngle))
	return pts
}

// fillPolygon заливает замкнутый многоугольник сплошным цветом через
// векторный растеризатор (со сглаживанием краёв).
func fillPolygon(img *image.RGBA, pts []geometry.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}

	b := img.Bounds()
	var r vector.Rasterizer
	r.Reset(b.Dx(), b.Dy())
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(col), image.Point{})
}
