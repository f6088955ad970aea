package variants

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"
)

// icnsElements - типы элементов ICNS, допускающие PNG-содержимое,
// и соответствующие им размеры в пикселях.
var icnsElements = []struct {
	Type string
	Size int
}{
	{"ic11", 32},   // 16pt @2x
	{"ic12", 64},   // 32pt @2x
	{"ic07", 128},  // 128pt
	{"ic08", 256},  // 256pt
	{"ic09", 512},  // 512pt
	{"ic10", 1024}, // 512pt @2x
}

// WriteICNS собирает контейнер ICNS из PNG-элементов. Формат: магия
// "icns" и общая длина (big-endian), затем элементы - четырёхбайтный тип,
// длина элемента вместе с восьмибайтным заголовком, PNG-данные.
func WriteICNS(w io.Writer, master image.Image) error {
	payloads := make([][]byte, 0, len(icnsElements))
	total := uint32(8)
	for _, e := range icnsElements {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Scale(master, e.Size)); err != nil {
			return err
		}
		payloads = append(payloads, buf.Bytes())
		total += uint32(8 + buf.Len())
	}

	if _, err := w.Write([]byte("icns")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, total); err != nil {
		return err
	}

	for i, e := range icnsElements {
		if _, err := w.Write([]byte(e.Type)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, uint32(8+len(payloads[i]))); err != nil {
			return err
		}
		if _, err := w.Write(payloads[i]); err != nil {
			return err
		}
	}
	return nil
}
