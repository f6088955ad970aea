// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// Presets - встроенные пресеты определений иконки (JSON).
//
//go:embed presets.json
var Presets []byte
