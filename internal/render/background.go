package render

import (
	"image"

	"ikona/internal/config"
)

// drawBackground рисует три концентрических непрозрачных круга:
// внешний фиолетовый, утопленное тёмное кольцо и внутренний фиолетовый.
// Габариты внешнего круга совпадают с границами холста.
func drawBackground(img *image.RGBA, def config.Definition) {
	// Центр - середина пиксельной сетки, радиус внешнего круга - половина
	// стороны: так круг касается всех четырёх краёв холста.
	c := float64(def.Size-1) / 2
	outer := float64(def.Size) / 2

	fillDisk(img, c, c, outer, def.Background)
	fillDisk(img, c, c, outer-float64(def.RingInset), def.Ring)
	fillDisk(img, c, c, outer-float64(def.InnerInset), def.Background)
}

// fillDisk закрашивает сплошной круг попиксельно по проверке расстояния.
func fillDisk(img *image.RGBA, cx, cy, r float64, col config.RGBA) {
	c := col.Color()
	rr := r * r
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := float64(y) - cy
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= rr {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
