package render

import (
	"image"
	"image/png"
	"math"
	"os"
	"testing"
)

func cosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

// decodePNGFile читает и декодирует PNG-файл, падая при любой ошибке.
func decodePNGFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Не удалось открыть %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Не удалось декодировать %s: %v", path, err)
	}
	return img
}
