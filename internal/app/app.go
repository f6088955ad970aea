// Package app связывает конфигурацию, рендер и вывод вариантов в один
// линейный конвейер без состояния между запусками.
package app

import (
	"path/filepath"

	"ikona/internal/config"
	"ikona/internal/render"
	"ikona/internal/variants"
)

// Options задают режим одного запуска.
type Options struct {
	OutDir     string // директория вывода
	Variants   bool   // дополнительно вывести платформенные варианты
	ConfigPath string // путь к JSON-описанию иконки (необязателен)
	Preset     string // имя встроенного пресета (необязательно)
}

// App - однопроходный конвейер генерации иконки.
type App struct {
	def  config.Definition
	opts Options
}

// New разрешает определение иконки: пресет по умолчанию, затем именованный
// пресет, затем явный JSON-файл поверх него.
func New(opts Options) (*App, error) {
	def := config.Default()

	if opts.Preset != "" {
		var err error
		def, err = config.Preset(opts.Preset)
		if err != nil {
			return nil, err
		}
	}
	if opts.ConfigPath != "" {
		var err error
		def, err = config.Load(opts.ConfigPath, def)
		if err != nil {
			return nil, err
		}
	}

	return &App{def: def, opts: opts}, nil
}

// Definition возвращает разрешённое определение иконки.
func (a *App) Definition() config.Definition {
	return a.def
}

// Run отрисовывает мастер-иконку, сохраняет её и при необходимости
// выводит производные варианты. Возвращает путь мастер-файла и пути
// вариантов. Ошибки не перехватываются - запуск либо полностью успешен,
// либо завершается первым отказом.
func (a *App) Run() (string, []string, error) {
	img, err := render.New(a.def).Render()
	if err != nil {
		return "", nil, err
	}

	masterPath := filepath.Join(a.opts.OutDir, a.def.OutputName)
	if err := render.SavePNG(img, masterPath); err != nil {
		return "", nil, err
	}

	if !a.opts.Variants {
		return masterPath, nil, nil
	}

	extra, err := variants.Generate(img, a.opts.OutDir)
	return masterPath, extra, err
}
