package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"ikona/internal/config"
)

// glyphDPI - разрешение растеризации шрифта; кегль задаётся в пунктах
// при 72 dpi, то есть численно равен размеру в пикселях.
const glyphDPI = 72

// LoadFace перебирает кандидатов шрифта по порядку и возвращает первый
// успешно загруженный face. Любая ошибка загрузки (нет файла, битый файл,
// отсутствующий номер в коллекции) продвигает цепочку дальше; ошибка
// возвращается только когда исчерпаны все кандидаты.
func LoadFace(candidates []config.FontCandidate, size float64) (font.Face, error) {
	var lastErr error
	for _, c := range candidates {
		face, err := loadCandidate(c, size)
		if err != nil {
			lastErr = err
			continue
		}
		return face, nil
	}
	if lastErr == nil {
		lastErr = errors.New("список кандидатов пуст")
	}
	return nil, fmt.Errorf("не удалось загрузить ни один шрифт: %w", lastErr)
}

// loadCandidate загружает один файл шрифта. Коллекции .ttc разбираются
// целиком, нужный шрифт выбирается по номеру; одиночный .ttf - это
// коллекция из одного шрифта с номером 0.
func loadCandidate(c config.FontCandidate, size float64) (font.Face, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, err
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	fnt, err := coll.Font(c.Index)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     glyphDPI,
		Hinting: font.HintingNone,
	})
}

// DrawGlyph рисует строку (на практике - одну букву), центрируя её
// габаритный прямоугольник относительно середины холста по обеим осям.
func DrawGlyph(img *image.RGBA, face font.Face, s string, col color.Color) {
	bounds, _ := font.BoundString(face, s)

	cx := fixed.I(img.Bounds().Dx() / 2)
	cy := fixed.I(img.Bounds().Dy() / 2)
	dot := fixed.Point26_6{
		X: cx - (bounds.Min.X+bounds.Max.X)/2,
		Y: cy - (bounds.Min.Y+bounds.Max.Y)/2,
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}
