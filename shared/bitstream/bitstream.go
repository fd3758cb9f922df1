// Package bitstream packs values into a bit-oriented buffer for replication.
//
// Bits are written least-significant first into consecutive bytes, so a
// single flag costs one bit and an 8-bit quantized float costs eight. The
// Reader keeps the first failure sticky: once a read runs past the end of
// the buffer every later read returns a zero value and Err reports
// ErrCorruptStream.
package bitstream

import (
	"errors"
	"math"
	"math/bits"
)

// MaxStringLen is the longest string WriteString will emit.
const MaxStringLen = 255

// ErrCorruptStream is reported when a read needs more bits than remain.
var ErrCorruptStream = errors.New("bitstream: corrupt stream")

// Writer accumulates bits into a growing byte slice.
type Writer struct {
	buf    []byte
	bitPos int
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 32)}
}

// Bytes returns the packed buffer. Trailing bits of the last byte are zero.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// BitLen reports how many bits have been written.
func (w *Writer) BitLen() int {
	return w.bitPos
}

func (w *Writer) writeBits(v uint64, n int) {
	for i := 0; i < n; i++ {
		byteIdx := w.bitPos >> 3
		if byteIdx >= len(w.buf) {
			w.buf = append(w.buf, 0)
		}
		if v&(1<<uint(i)) != 0 {
			w.buf[byteIdx] |= 1 << uint(w.bitPos&7)
		}
		w.bitPos++
	}
}

// WriteFlag writes a single bit and returns b so callers can branch on it.
func (w *Writer) WriteFlag(b bool) bool {
	if b {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
	return b
}

// WriteInt writes the low bitCount bits of v.
func (w *Writer) WriteInt(v uint32, bitCount int) {
	w.writeBits(uint64(v), bitCount)
}

// WriteRangedU32 writes v, clamped to [min, max], using just enough bits for
// the range.
func (w *Writer) WriteRangedU32(v, min, max uint32) {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	w.WriteInt(v-min, RangeBits(min, max))
}

// WriteFloat quantizes f, clamped to [0, 1], into bitCount bits. The
// fractional part below one quantum is truncated.
func (w *Writer) WriteFloat(f float64, bitCount int) {
	if f < 0 || math.IsNaN(f) {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	maxv := uint32(1)<<uint(bitCount) - 1
	w.WriteInt(uint32(f*float64(maxv)), bitCount)
}

// WriteF32 writes f as a full-precision 32-bit IEEE float.
func (w *Writer) WriteF32(f float64) {
	w.WriteInt(math.Float32bits(float32(f)), 32)
}

// WriteS32 writes a 32-bit signed integer.
func (w *Writer) WriteS32(v int32) {
	w.WriteInt(uint32(v), 32)
}

// WriteU32 writes a 32-bit unsigned integer.
func (w *Writer) WriteU32(v uint32) {
	w.WriteInt(v, 32)
}

// WriteString writes an 8-bit length followed by the bytes of s. Strings
// longer than MaxStringLen are cut.
func (w *Writer) WriteString(s string) {
	if len(s) > MaxStringLen {
		s = s[:MaxStringLen]
	}
	w.WriteInt(uint32(len(s)), 8)
	for i := 0; i < len(s); i++ {
		w.WriteInt(uint32(s[i]), 8)
	}
}

// Reader consumes bits produced by a Writer.
type Reader struct {
	buf    []byte
	bitPos int
	err    error
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Err returns ErrCorruptStream once any read ran out of data.
func (r *Reader) Err() error {
	return r.err
}

// Remaining reports how many unread bits are left in the buffer.
func (r *Reader) Remaining() int {
	return len(r.buf)*8 - r.bitPos
}

func (r *Reader) readBits(n int) uint64 {
	if r.err != nil {
		return 0
	}
	if n > r.Remaining() {
		r.err = ErrCorruptStream
		r.bitPos = len(r.buf) * 8
		return 0
	}
	var v uint64
	for i := 0; i < n; i++ {
		if r.buf[r.bitPos>>3]&(1<<uint(r.bitPos&7)) != 0 {
			v |= 1 << uint(i)
		}
		r.bitPos++
	}
	return v
}

func (r *Reader) ReadFlag() bool {
	return r.readBits(1) == 1
}

func (r *Reader) ReadInt(bitCount int) uint32 {
	return uint32(r.readBits(bitCount))
}

func (r *Reader) ReadRangedU32(min, max uint32) uint32 {
	return r.ReadInt(RangeBits(min, max)) + min
}

// ReadFloat returns a value in [0, 1] quantized to bitCount bits.
func (r *Reader) ReadFloat(bitCount int) float64 {
	maxv := uint32(1)<<uint(bitCount) - 1
	return float64(r.ReadInt(bitCount)) / float64(maxv)
}

func (r *Reader) ReadF32() float64 {
	return float64(math.Float32frombits(r.ReadInt(32)))
}

func (r *Reader) ReadS32() int32 {
	return int32(r.ReadInt(32))
}

func (r *Reader) ReadU32() uint32 {
	return r.ReadInt(32)
}

func (r *Reader) ReadString() string {
	n := int(r.ReadInt(8))
	if r.err != nil {
		return ""
	}
	if n*8 > r.Remaining() {
		r.err = ErrCorruptStream
		r.bitPos = len(r.buf) * 8
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.ReadInt(8))
	}
	return string(b)
}

// RangeBits is the number of bits needed to carry any value in [min, max].
func RangeBits(min, max uint32) int {
	if max <= min {
		return 0
	}
	return bits.Len32(max - min)
}

// Quantum is the spacing between representable values of an n-bit float.
func Quantum(bitCount int) float64 {
	return 1.0 / float64(uint32(1)<<uint(bitCount)-1)
}
