// Package render отрисовывает мастер-иконку: фоновые круги, две дуговые
// стрелки и центральную букву - и сохраняет результат в PNG.
package render

import (
	"image"
	"image/png"
	"os"

	"ikona/internal/config"
)

// Renderer рисует иконку по определению. Холст живёт только на время
// одного вызова Render, состояние между запусками не сохраняется.
type Renderer struct {
	def config.Definition
}

// New создаёт рендерер для заданного определения иконки.
func New(def config.Definition) *Renderer {
	return &Renderer{def: def}
}

// Render отрисовывает иконку целиком на прозрачном холсте.
// Единственный путь отказа - загрузка шрифта: вся остальная геометрия
// задана константами и не может провалиться во время выполнения.
func (r *Renderer) Render() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.def.Size, r.def.Size))

	drawBackground(img, r.def)

	// Центр стрелок и буквы - середина холста в целых пикселях.
	c := float64(r.def.Size / 2)
	gold := r.def.Accent.Color()
	for _, arc := range r.def.Arrows {
		fillPolygon(img, ArrowPolygon(c, c, arc), gold)
	}

	face, err := LoadFace(r.def.Fonts, r.def.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	DrawGlyph(img, face, r.def.Letter, gold)

	return img, nil
}

// SavePNG кодирует холст в PNG-файл. Ошибки ввода-вывода возвращаются
// вызывающему как есть.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
