package assets

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"
)

func TestBeamFrameCoreIsBrightest(t *testing.T) {
	img := BeamFrame(16, 0, 4, color.RGBA{R: 255, A: 255})

	edge := img.RGBAAt(0, 4).A
	core := img.RGBAAt(8, 4).A
	if core <= edge {
		t.Errorf("Expected core alpha > edge alpha, got core=%d edge=%d", core, edge)
	}
}

func TestBeamFrameAnimates(t *testing.T) {
	a := BeamFrame(16, 0, 4, color.RGBA{G: 255, A: 255})
	b := BeamFrame(16, 1, 4, color.RGBA{G: 255, A: 255})

	if bytes.Equal(a.Pix, b.Pix) {
		t.Error("Expected frames 0 and 1 to differ")
	}
}

func TestToneWAVHeader(t *testing.T) {
	data := ToneWAV(440, 100, 8000, true)

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("Expected RIFF/WAVE header, got %q %q", data[0:4], data[8:12])
	}
	dataLen := binary.LittleEndian.Uint32(data[40:44])
	if dataLen != 800*2 {
		t.Errorf("Expected %d PCM bytes, got %d", 800*2, dataLen)
	}
	if len(data) != 44+int(dataLen) {
		t.Errorf("Expected file length %d, got %d", 44+dataLen, len(data))
	}
}

func TestEmbeddedAssetsLoad(t *testing.T) {
	names, err := ArenaNames()
	if err != nil {
		t.Fatalf("ArenaNames: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("Expected at least one embedded arena")
	}

	arena, err := LoadArena("arena")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	blocks, err := LoadDatablocks()
	if err != nil {
		t.Fatalf("LoadDatablocks: %v", err)
	}
	for _, m := range arena.Turrets {
		if _, ok := blocks[m.Datablock]; !ok {
			t.Errorf("Turret %q uses unknown datablock %q", m.Name, m.Datablock)
		}
	}
}
