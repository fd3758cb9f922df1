package laser_test

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/laserbeam-mp/shared/bitstream"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

func roundTripData(t *testing.T, d *laser.Data) *laser.Data {
	t.Helper()
	w := bitstream.NewWriter()
	laser.PackData(w, d)
	got, err := laser.UnpackData(bitstream.NewReader(w.Bytes()), d.Name)
	if err != nil {
		t.Fatalf("Expected datablock to decode, got %v", err)
	}
	return got
}

func TestRadiusQuantizationRoundTrip(t *testing.T) {
	for r := 0.0; r <= laser.RadiusScale; r += 0.37 {
		d := laser.DefaultData("q")
		d.BeamStartRadius = r
		d.BeamEndRadius = laser.RadiusScale - r

		got := roundTripData(t, d)
		if math.Abs(got.BeamStartRadius-r) > laser.RadiusTolerance {
			t.Errorf("Expected start radius %f within %f, got %f", r, laser.RadiusTolerance, got.BeamStartRadius)
		}
		if math.Abs(got.BeamEndRadius-d.BeamEndRadius) > laser.RadiusTolerance {
			t.Errorf("Expected end radius %f within %f, got %f", d.BeamEndRadius, laser.RadiusTolerance, got.BeamEndRadius)
		}
	}
}

func TestDatablockReplication(t *testing.T) {
	d := laser.DefaultData("beam")
	d.BeamStartRadius = 15
	d.BeamEndRadius = 5
	d.TextureName = "beam.png"
	d.ScrollSpeed = 0.05
	d.ArmingDelay = 2
	d.DamageInterval = 3
	d.MaxLifetime = 300

	got := roundTripData(t, d)
	if got.TextureName != "beam.png" {
		t.Errorf("Expected texture beam.png, got %q", got.TextureName)
	}
	if math.Abs(got.BeamStartRadius-15) > laser.RadiusTolerance {
		t.Errorf("Expected start radius near 15, got %f", got.BeamStartRadius)
	}
	if math.Abs(got.BeamEndRadius-5) > laser.RadiusTolerance {
		t.Errorf("Expected end radius near 5, got %f", got.BeamEndRadius)
	}
	if got.ScrollSpeed != float64(float32(0.05)) {
		t.Errorf("Expected scroll speed %v, got %v", float32(0.05), got.ScrollSpeed)
	}
	if got.ArmingDelay != 2 || got.DamageInterval != 3 || got.MaxLifetime != 300 {
		t.Errorf("Expected ticks 2/3/300, got %d/%d/%d", got.ArmingDelay, got.DamageInterval, got.MaxLifetime)
	}
	if got.Name != "beam" {
		t.Errorf("Expected name beam, got %q", got.Name)
	}
}

func TestDatablockWithoutTexture(t *testing.T) {
	d := laser.DefaultData("plain")
	got := roundTripData(t, d)
	if got.TextureName != "" {
		t.Errorf("Expected empty texture, got %q", got.TextureName)
	}
}

func TestDatablockRadiusClamped(t *testing.T) {
	d := laser.DefaultData("big")
	d.BeamStartRadius = 45
	got := roundTripData(t, d)
	if got.BeamStartRadius != laser.RadiusScale {
		t.Errorf("Expected clamp to %f, got %f", laser.RadiusScale, got.BeamStartRadius)
	}
}

func TestTruncatedDatablock(t *testing.T) {
	d := testData()
	w := bitstream.NewWriter()
	laser.PackData(w, d)
	raw := w.Bytes()

	for cut := 0; cut < len(raw)-1; cut++ {
		got, err := laser.UnpackData(bitstream.NewReader(raw[:cut]), d.Name)
		if !errors.Is(err, bitstream.ErrCorruptStream) {
			t.Errorf("Expected corrupt stream at %d bytes, got %v", cut, err)
		}
		if got != nil {
			t.Errorf("Expected no datablock at %d bytes", cut)
		}
	}
}

func TestUpdateInitialAndDelta(t *testing.T) {
	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	server := laser.New(testData(), netconfig.SideServer, &stubRef{src: src, alive: true}, 42, 3, 75.5, 120)
	for i := 0; i < 4; i++ {
		server.ProcessTick(noHits{}, nil)
	}

	w := bitstream.NewWriter()
	laser.PackUpdate(w, server, true)
	replica := laser.New(testData(), netconfig.SideClient, nil, 0, 0, 0, 0)
	if err := laser.UnpackUpdate(bitstream.NewReader(w.Bytes()), replica); err != nil {
		t.Fatalf("Expected initial update to decode, got %v", err)
	}
	if replica.SourceID != 42 || replica.MuzzleSlot != 3 {
		t.Errorf("Expected source 42 slot 3, got %d slot %d", replica.SourceID, replica.MuzzleSlot)
	}
	if replica.Range != 75.5 {
		t.Errorf("Expected range 75.5, got %f", replica.Range)
	}
	if replica.Lifetime != 120 || replica.Tick != 4 {
		t.Errorf("Expected lifetime 120 tick 4, got %d tick %d", replica.Lifetime, replica.Tick)
	}

	server.ProcessTick(noHits{}, nil)
	server.Range = 10

	delta := bitstream.NewWriter()
	laser.PackUpdate(delta, server, false)
	if delta.BitLen() >= w.BitLen() {
		t.Errorf("Expected delta smaller than initial, got %d vs %d bits", delta.BitLen(), w.BitLen())
	}
	if err := laser.UnpackUpdate(bitstream.NewReader(delta.Bytes()), replica); err != nil {
		t.Fatalf("Expected delta update to decode, got %v", err)
	}
	if replica.Range != 75.5 {
		t.Errorf("Expected delta to leave range alone, got %f", replica.Range)
	}
	if replica.Tick != 5 {
		t.Errorf("Expected tick 5, got %d", replica.Tick)
	}
}

func TestUpdateTickNeverRewinds(t *testing.T) {
	l := laser.New(testData(), netconfig.SideClient, nil, 0, 0, 0, 0)
	l.Tick = 9
	l.Apply(laser.Update{Tick: 4, Lifetime: 30})
	if l.Tick != 9 {
		t.Errorf("Expected tick to stay at 9, got %d", l.Tick)
	}
	if l.Lifetime != 30 {
		t.Errorf("Expected lifetime 30, got %d", l.Lifetime)
	}
}

func TestTruncatedUpdateLeavesLaserUntouched(t *testing.T) {
	src := newTurretStub(gamemath.Vec3(0, -1, 0), gamemath.Zero3(), 0)
	server := laser.New(testData(), netconfig.SideServer, &stubRef{src: src, alive: true}, 42, 1, 60, 200)
	server.Tick = 17

	w := bitstream.NewWriter()
	laser.PackUpdate(w, server, true)
	raw := w.Bytes()

	for cut := 0; cut < len(raw)-1; cut++ {
		replica := laser.New(testData(), netconfig.SideClient, nil, 0, 0, 0, 0)
		err := laser.UnpackUpdate(bitstream.NewReader(raw[:cut]), replica)
		if !errors.Is(err, bitstream.ErrCorruptStream) {
			t.Errorf("Expected corrupt stream at %d bytes, got %v", cut, err)
		}
		if replica.Tick != 0 || replica.SourceID != 0 || replica.Range != 0 || replica.Lifetime != 0 {
			t.Errorf("Expected untouched replica at %d bytes, got tick %d source %d range %f lifetime %d",
				cut, replica.Tick, replica.SourceID, replica.Range, replica.Lifetime)
		}
	}
}

func TestUpdateRejectsNegativeLifetime(t *testing.T) {
	w := bitstream.NewWriter()
	w.WriteFlag(false)
	w.WriteRangedU32(3, 0, netconfig.MaxLivingTicks)
	w.WriteFlag(false)
	w.WriteS32(-5)

	if _, err := laser.DecodeUpdate(bitstream.NewReader(w.Bytes())); !errors.Is(err, bitstream.ErrCorruptStream) {
		t.Errorf("Expected corrupt stream for negative lifetime, got %v", err)
	}
}
