package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultDefinition проверяет ключевые константы пресета по умолчанию.
func TestDefaultDefinition(t *testing.T) {
	def := Default()

	if def.Size != 1024 {
		t.Errorf("размер %d, ожидалось 1024", def.Size)
	}
	if def.Letter != "R" {
		t.Errorf("буква %q, ожидалась \"R\"", def.Letter)
	}
	if def.OutputName != "icon_1024.png" {
		t.Errorf("имя файла %q, ожидалось icon_1024.png", def.OutputName)
	}
	if len(def.Fonts) != 3 {
		t.Errorf("кандидатов шрифта %d, ожидалось 3", len(def.Fonts))
	}
	if def.Background.Color().A != 255 || def.Ring.Color().A != 255 || def.Accent.Color().A != 255 {
		t.Error("цвета фона, кольца и акцента должны быть полностью непрозрачными")
	}
	if def.RingInset >= def.InnerInset {
		t.Errorf("кольцо (отступ %d) должно лежать снаружи внутреннего круга (отступ %d)",
			def.RingInset, def.InnerInset)
	}
}

// TestDefaultArrowsSymmetric: две конгруэнтные дуги, повёрнутые на 180°.
func TestDefaultArrowsSymmetric(t *testing.T) {
	def := Default()
	if len(def.Arrows) != 2 {
		t.Fatalf("стрелок %d, ожидалось 2", len(def.Arrows))
	}

	a, b := def.Arrows[0], def.Arrows[1]
	if a.Radius != b.Radius || a.Thickness != b.Thickness ||
		a.HeadLength != b.HeadLength || a.HeadHalfWidth != b.HeadHalfWidth {
		t.Error("дуги не конгруэнтны")
	}

	diff := math.Mod(b.StartAngle-a.StartAngle+360, 360)
	if diff != 180 {
		t.Errorf("начала дуг разнесены на %v°, ожидалось 180°", diff)
	}

	spanA := math.Mod(a.EndAngle-a.StartAngle+360, 360)
	spanB := math.Mod(b.EndAngle-b.StartAngle+360, 360)
	if spanA != 150 || spanB != 150 {
		t.Errorf("размахи дуг %v° и %v°, ожидалось по 150°", spanA, spanB)
	}
}

// TestPresetDefaultMatches: пресет "default" и Default - одно и то же.
func TestPresetDefaultMatches(t *testing.T) {
	preset, err := Preset("default")
	if err != nil {
		t.Fatalf("Preset вернул ошибку: %v", err)
	}
	if preset.Size != Default().Size || preset.Letter != Default().Letter {
		t.Error("пресет default расходится с Default()")
	}
}

// TestPresetUnknown: несуществующее имя - ошибка.
func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("нет-такого"); err == nil {
		t.Fatal("ожидалась ошибка для неизвестного пресета")
	}
}

// TestLoadOverridesDefaults: файл переопределяет только заданные поля.
func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.json")
	payload := `{"letter": "S", "font_size": 400}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	def, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load вернул ошибку: %v", err)
	}
	if def.Letter != "S" {
		t.Errorf("буква %q, ожидалась \"S\"", def.Letter)
	}
	if def.FontSize != 400 {
		t.Errorf("кегль %v, ожидалось 400", def.FontSize)
	}
	// Остальное - из пресета по умолчанию.
	if def.Size != 1024 || len(def.Arrows) != 2 {
		t.Error("непереопределённые поля должны сохраняться из пресета")
	}
}

// TestLoadMissingFile: явно указанный файл обязан читаться.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "нет.json"), Default()); err == nil {
		t.Fatal("ожидалась ошибка для отсутствующего файла")
	}
}

// TestLoadInvalidJSON: битый JSON - ошибка, а не тихий откат к дефолтам.
func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "битый.json")
	if err := os.WriteFile(path, []byte("{не json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, Default()); err == nil {
		t.Fatal("ожидалась ошибка для некорректного JSON")
	}
}
