package variants

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"
)

// icoSizes - размеры кадров внутри icon.ico.
var icoSizes = []int{16, 32, 48, 256}

// icoHeader - заголовок контейнера ICO.
type icoHeader struct {
	Reserved uint16
	Type     uint16 // 1 = ICO
	Count    uint16
}

// icoEntry - запись каталога: один кадр.
type icoEntry struct {
	Width    uint8 // 0 означает 256
	Height   uint8
	Colors   uint8
	Reserved uint8
	Planes   uint16
	BPP      uint16
	Size     uint32
	Offset   uint32
}

// WriteICO собирает контейнер ICO из PNG-кадров заданных размеров.
// Формат: заголовок, каталог из 16-байтных записей (little-endian),
// затем PNG-данные кадров подряд.
func WriteICO(w io.Writer, master image.Image, sizes []int) error {
	frames := make([][]byte, 0, len(sizes))
	for _, s := range sizes {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Scale(master, s)); err != nil {
			return err
		}
		frames = append(frames, buf.Bytes())
	}

	if err := binary.Write(w, binary.LittleEndian, icoHeader{Type: 1, Count: uint16(len(sizes))}); err != nil {
		return err
	}

	offset := uint32(6 + 16*len(sizes))
	for i, s := range sizes {
		e := icoEntry{
			Planes: 1,
			BPP:    32,
			Size:   uint32(len(frames[i])),
			Offset: offset,
		}
		if s < 256 {
			e.Width = uint8(s)
			e.Height = uint8(s)
		}
		if err := binary.Write(w, binary.LittleEndian, e); err != nil {
			return err
		}
		offset += uint32(len(frames[i]))
	}

	for _, frame := range frames {
		if _, err := w.Write(frame); err != nil {
			return err
		}
	}
	return nil
}
