// Package variants выводит платформенные варианты иконки из
// мастер-изображения: уменьшенные PNG, контейнеры icon.ico и icon.icns.
// Набор размеров повторяет вывод `tauri icon`.
package variants

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// pngTargets - именованные PNG-варианты.
var pngTargets = []struct {
	Name string
	Size int
}{
	{"32x32.png", 32},
	{"128x128.png", 128},
	{"128x128@2x.png", 256},
	{"512x512.png", 512},
}

// Scale масштабирует мастер-изображение до квадрата size×size
// интерполяцией Катмулла-Рома.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Generate записывает в dir полный набор производных иконок и возвращает
// пути созданных файлов. Для фиксированного мастер-изображения вывод
// детерминирован.
func Generate(master image.Image, dir string) ([]string, error) {
	written := make([]string, 0, len(pngTargets)+2)

	for _, t := range pngTargets {
		p := filepath.Join(dir, t.Name)
		if err := writePNG(p, Scale(master, t.Size)); err != nil {
			return written, err
		}
		written = append(written, p)
	}

	icoPath := filepath.Join(dir, "icon.ico")
	if err := writeFile(icoPath, func(f *os.File) error {
		return WriteICO(f, master, icoSizes)
	}); err != nil {
		return written, err
	}
	written = append(written, icoPath)

	icnsPath := filepath.Join(dir, "icon.icns")
	if err := writeFile(icnsPath, func(f *os.File) error {
		return WriteICNS(f, master)
	}); err != nil {
		return written, err
	}
	written = append(written, icnsPath)

	return written, nil
}

func writePNG(path string, img image.Image) error {
	return writeFile(path, func(f *os.File) error {
		return png.Encode(f, img)
	})
}

func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
