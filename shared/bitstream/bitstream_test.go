package bitstream

import (
	"errors"
	"math"
	"testing"
)

func TestFlagsPackIntoSingleByte(t *testing.T) {
	w := NewWriter()
	pattern := []bool{true, false, true, true, false, false, true, false}
	for _, b := range pattern {
		w.WriteFlag(b)
	}

	if got := len(w.Bytes()); got != 1 {
		t.Fatalf("Expected 1 byte for 8 flags, got %d", got)
	}
	if w.Bytes()[0] != 0x4D {
		t.Errorf("Expected 0x4D, got %#x", w.Bytes()[0])
	}

	r := NewReader(w.Bytes())
	for i, want := range pattern {
		if got := r.ReadFlag(); got != want {
			t.Errorf("flag %d: expected %v, got %v", i, want, got)
		}
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestIntegerFields(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		bits int
	}{
		{"Zero", 0, 1},
		{"Three bits", 5, 3},
		{"Twelve bits max", 4095, 12},
		{"Full word", 0xDEADBEEF, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteFlag(true) // misalign on purpose
			w.WriteInt(tt.v, tt.bits)

			r := NewReader(w.Bytes())
			r.ReadFlag()
			if got := r.ReadInt(tt.bits); got != tt.v {
				t.Errorf("Expected %d, got %d", tt.v, got)
			}
		})
	}
}

func TestSignedAndFloatWords(t *testing.T) {
	w := NewWriter()
	w.WriteS32(-42)
	w.WriteF32(0.05)
	w.WriteU32(7)

	r := NewReader(w.Bytes())
	if got := r.ReadS32(); got != -42 {
		t.Errorf("Expected -42, got %d", got)
	}
	if got := r.ReadF32(); got != float64(float32(0.05)) {
		t.Errorf("Expected float32(0.05), got %v", got)
	}
	if got := r.ReadU32(); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
}

func TestRangedU32(t *testing.T) {
	if got := RangeBits(0, 4095); got != 12 {
		t.Errorf("Expected 12 bits, got %d", got)
	}
	if got := RangeBits(3, 3); got != 0 {
		t.Errorf("Expected 0 bits for a single-value range, got %d", got)
	}

	w := NewWriter()
	w.WriteRangedU32(10, 5, 20)
	w.WriteRangedU32(99, 0, 7) // clamps to 7

	r := NewReader(w.Bytes())
	if got := r.ReadRangedU32(5, 20); got != 10 {
		t.Errorf("Expected 10, got %d", got)
	}
	if got := r.ReadRangedU32(0, 7); got != 7 {
		t.Errorf("Expected clamped 7, got %d", got)
	}
}

func TestQuantizedFloatWithinOneStep(t *testing.T) {
	for _, f := range []float64{0, 0.001, 0.25, 0.5, 0.7519, 0.999, 1} {
		w := NewWriter()
		w.WriteFloat(f, 8)
		got := NewReader(w.Bytes()).ReadFloat(8)
		if math.Abs(got-f) > Quantum(8) {
			t.Errorf("f=%v: decoded %v outside one quantum", f, got)
		}
		if got > f {
			t.Errorf("f=%v: truncating quantizer produced larger value %v", f, got)
		}
	}
}

func TestQuantizedFloatClamps(t *testing.T) {
	w := NewWriter()
	w.WriteFloat(-3, 8)
	w.WriteFloat(7.5, 8)
	r := NewReader(w.Bytes())
	if got := r.ReadFloat(8); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := r.ReadFloat(8); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
}

func TestStrings(t *testing.T) {
	w := NewWriter()
	w.WriteFlag(false)
	w.WriteString("beam.png")
	w.WriteString("")

	r := NewReader(w.Bytes())
	r.ReadFlag()
	if got := r.ReadString(); got != "beam.png" {
		t.Errorf("Expected beam.png, got %q", got)
	}
	if got := r.ReadString(); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestReadPastEndIsSticky(t *testing.T) {
	w := NewWriter()
	w.WriteInt(3, 4)

	r := NewReader(w.Bytes())
	r.ReadInt(4)
	r.ReadInt(4) // pad bits of the same byte are still readable
	if r.Err() != nil {
		t.Fatalf("unexpected error inside last byte: %v", r.Err())
	}

	if got := r.ReadU32(); got != 0 {
		t.Errorf("Expected zero value after overrun, got %d", got)
	}
	if !errors.Is(r.Err(), ErrCorruptStream) {
		t.Fatalf("Expected ErrCorruptStream, got %v", r.Err())
	}
	if got := r.ReadFlag(); got {
		t.Errorf("Expected false after overrun")
	}
	if !errors.Is(r.Err(), ErrCorruptStream) {
		t.Errorf("error should stay sticky, got %v", r.Err())
	}
}

func TestTruncatedString(t *testing.T) {
	w := NewWriter()
	w.WriteString("beam.png")
	data := w.Bytes()[:4]

	r := NewReader(data)
	if got := r.ReadString(); got != "" {
		t.Errorf("Expected empty string from truncated data, got %q", got)
	}
	if !errors.Is(r.Err(), ErrCorruptStream) {
		t.Errorf("Expected ErrCorruptStream, got %v", r.Err())
	}
}
