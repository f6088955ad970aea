// Package config описывает определение иконки: цвета, геометрию дуговых
// стрелок, букву и цепочку шрифтов. Определения хранятся во встроенных
// пресетах и могут частично переопределяться JSON-файлом.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"

	"ikona/embedded"
)

// RGBA - цвет как четвёрка каналов 0-255, в JSON записывается массивом.
type RGBA [4]uint8

// Color возвращает цвет в виде color.RGBA стандартной библиотеки.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// FontCandidate - один кандидат в цепочке фолбэков шрифта.
type FontCandidate struct {
	Path string `json:"path"`
	// Index - номер шрифта внутри коллекции .ttc. Для обычных .ttf равен 0.
	Index int `json:"index,omitempty"`
}

// ArcSpec описывает одну дуговую стрелку. Углы в градусах, 0° - восток,
// рост по часовой стрелке.
type ArcSpec struct {
	Radius        float64 `json:"radius"`          // радиус осевой линии
	Thickness     float64 `json:"thickness"`       // ширина штриха
	StartAngle    float64 `json:"start_angle"`     // наконечник находится у начала дуги
	EndAngle      float64 `json:"end_angle"`
	HeadLength    float64 `json:"head_length"`     // длина наконечника вдоль дуги
	HeadHalfWidth float64 `json:"head_half_width"` // полуширина основания наконечника
}

// Definition - полное определение иконки. Все поля - константы времени
// запуска: после загрузки определение не меняется.
type Definition struct {
	Size       int             `json:"size"`
	Background RGBA            `json:"background"`
	Ring       RGBA            `json:"ring"`
	Accent     RGBA            `json:"accent"`
	RingInset  int             `json:"ring_inset"`
	InnerInset int             `json:"inner_inset"`
	Arrows     []ArcSpec       `json:"arrows"`
	Letter     string          `json:"letter"`
	FontSize   float64         `json:"font_size"`
	Fonts      []FontCandidate `json:"fonts"`
	OutputName string          `json:"output_name"`
}

// loadPresets разбирает встроенный JSON с пресетами.
func loadPresets() (map[string]Definition, error) {
	var presets map[string]Definition
	if err := json.Unmarshal(embedded.Presets, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// Default возвращает определение иконки по умолчанию (пресет "default").
// Встроенные данные корректны по построению, поэтому ошибка здесь - паника.
func Default() Definition {
	def, err := Preset("default")
	if err != nil {
		panic(err)
	}
	return def
}

// Preset возвращает именованный встроенный пресет.
func Preset(name string) (Definition, error) {
	presets, err := loadPresets()
	if err != nil {
		return Definition{}, fmt.Errorf("встроенные пресеты повреждены: %w", err)
	}
	def, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for n := range presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return Definition{}, fmt.Errorf("неизвестный пресет %q, доступны: %v", name, names)
	}
	return def, nil
}

// Load читает JSON-файл и накладывает его поверх базового определения:
// заданные в файле поля переопределяют базу, остальные сохраняются.
// Явно указанный файл обязан читаться - любая ошибка возвращается
// вызывающему, тихого отката к базе нет.
func Load(path string, base Definition) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	def := base
	if err := json.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("некорректное описание иконки %s: %w", path, err)
	}
	return def, nil
}
