package laser

import (
	"fmt"

	"github.com/automoto/laserbeam-mp/shared/bitstream"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

// radiusBits is the width of a quantized beam radius.
const radiusBits = 8

// RadiusTolerance is the largest error a radius picks up on the wire.
var RadiusTolerance = RadiusScale * bitstream.Quantum(radiusBits)

// PackData writes the datablock fields a client needs to simulate and draw.
// Damage stays on the server.
func PackData(w *bitstream.Writer, d *Data) {
	w.WriteRangedU32(d.ArmingDelay, 0, netconfig.MaxLivingTicks)
	w.WriteRangedU32(d.DamageInterval, 0, netconfig.MaxLivingTicks)
	w.WriteRangedU32(d.LifetimeCap(), 0, netconfig.MaxLivingTicks)

	w.WriteFloat(d.BeamStartRadius/RadiusScale, radiusBits)
	w.WriteFloat(d.BeamEndRadius/RadiusScale, radiusBits)
	if w.WriteFlag(d.TextureName != "") {
		w.WriteString(d.TextureName)
	}
	w.WriteF32(d.ScrollSpeed)
}

// UnpackData reads a datablock written by PackData. On error nothing is
// returned and the caller must drop the record.
func UnpackData(r *bitstream.Reader, name string) (*Data, error) {
	d := &Data{Name: name}

	d.ArmingDelay = r.ReadRangedU32(0, netconfig.MaxLivingTicks)
	d.DamageInterval = r.ReadRangedU32(0, netconfig.MaxLivingTicks)
	d.MaxLifetime = r.ReadRangedU32(0, netconfig.MaxLivingTicks)

	d.BeamStartRadius = r.ReadFloat(radiusBits) * RadiusScale
	d.BeamEndRadius = r.ReadFloat(radiusBits) * RadiusScale
	if r.ReadFlag() {
		d.TextureName = r.ReadString()
	}
	d.ScrollSpeed = r.ReadF32()

	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("unpack datablock %q: %w", name, err)
	}
	return d, nil
}

// Update is one decoded per-tick record.
type Update struct {
	Initial    bool
	SourceID   uint32
	MuzzleSlot int
	Tick       uint32
	Range      float64
	Lifetime   uint32
}

// PackUpdate writes the per-tick record for l. initial must be true only for
// the first record a given client receives for this laser.
func PackUpdate(w *bitstream.Writer, l *Laser, initial bool) {
	if w.WriteFlag(initial) {
		w.WriteU32(l.SourceID)
		w.WriteRangedU32(uint32(l.MuzzleSlot), 0, netconfig.MaxMuzzleSlots-1)
	}
	w.WriteRangedU32(l.Tick, 0, netconfig.MaxLivingTicks)

	if w.WriteFlag(initial) {
		w.WriteF32(l.Range)
	}
	w.WriteS32(int32(l.Lifetime))
}

// DecodeUpdate reads one record without touching any laser.
func DecodeUpdate(r *bitstream.Reader) (Update, error) {
	var u Update

	if r.ReadFlag() {
		u.Initial = true
		u.SourceID = r.ReadU32()
		u.MuzzleSlot = int(r.ReadRangedU32(0, netconfig.MaxMuzzleSlots-1))
	}
	u.Tick = r.ReadRangedU32(0, netconfig.MaxLivingTicks)

	hasRange := r.ReadFlag()
	if hasRange {
		u.Range = r.ReadF32()
	}
	lifetime := r.ReadS32()

	if err := r.Err(); err != nil {
		return Update{}, fmt.Errorf("unpack laser update: %w", err)
	}
	if hasRange != u.Initial {
		return Update{}, fmt.Errorf("unpack laser update: initial flags disagree: %w", bitstream.ErrCorruptStream)
	}
	if lifetime < 0 {
		return Update{}, fmt.Errorf("unpack laser update: negative lifetime %d: %w", lifetime, bitstream.ErrCorruptStream)
	}
	u.Lifetime = uint32(lifetime)
	return u, nil
}

// Apply copies a decoded record onto l. The tick never moves backwards.
func (l *Laser) Apply(u Update) {
	if u.Initial {
		l.SourceID = u.SourceID
		l.MuzzleSlot = u.MuzzleSlot
		l.Range = u.Range
	}
	if u.Tick > l.Tick {
		l.Tick = u.Tick
	}
	l.Lifetime = u.Lifetime
}

// UnpackUpdate decodes a record and applies it to l. On error l is left
// untouched.
func UnpackUpdate(r *bitstream.Reader, l *Laser) error {
	u, err := DecodeUpdate(r)
	if err != nil {
		return err
	}
	l.Apply(u)
	return nil
}
