// Package laser implements the networked beam projectile: its datablock, the
// per-tick simulation shared by server and client, the bitstream codec that
// replicates it and the camera-facing quad it renders as.
package laser

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

// RadiusScale normalizes beam radii into [0,1] for the 8-bit wire encoding.
const RadiusScale = 20.0

// DefaultScrollSpeed is the UV scroll applied per rendered frame when a
// datablock leaves it unset.
const DefaultScrollSpeed = 0.05

// ErrInvalidDatablock is returned when a datablock value is out of range.
var ErrInvalidDatablock = errors.New("laser: invalid datablock")

// Data is the immutable per-type definition shared by every laser of that
// type. It is loaded once and only ever passed around by pointer.
type Data struct {
	Name string `json:"name"`

	BeamStartRadius float64 `json:"beamStartRadius"`
	BeamEndRadius   float64 `json:"beamEndRadius"`
	TextureName     string  `json:"textureName"`
	ScrollSpeed     float64 `json:"scrollSpeed"`

	// ArmingDelay is the number of ticks after spawn during which hits are
	// ignored.
	ArmingDelay uint32 `json:"armingDelay"`
	// DamageInterval is the tick spacing of damage pulses. The renderer reuses
	// it as the texture frame duration in milliseconds.
	DamageInterval uint32 `json:"damageInterval"`
	// MaxLifetime caps the per-spawn lifetime. Zero means MaxLivingTicks.
	MaxLifetime uint32 `json:"maxLifetime"`

	// Damage is the health removed from a turret per collision event. It is
	// server-only and not replicated.
	Damage int `json:"damage"`
}

// DefaultData returns a datablock with the stock defaults.
func DefaultData(name string) *Data {
	return &Data{
		Name:        name,
		ScrollSpeed: DefaultScrollSpeed,
		MaxLifetime: netconfig.MaxLivingTicks,
		Damage:      1,
	}
}

// LifetimeCap returns the effective upper bound for a spawn's lifetime.
func (d *Data) LifetimeCap() uint32 {
	if d.MaxLifetime == 0 || d.MaxLifetime > netconfig.MaxLivingTicks {
		return netconfig.MaxLivingTicks
	}
	return d.MaxLifetime
}

// Validate checks every field against what the wire format can carry.
func (d *Data) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidDatablock)
	}
	if err := checkRadius("beamStartRadius", d.BeamStartRadius); err != nil {
		return err
	}
	if err := checkRadius("beamEndRadius", d.BeamEndRadius); err != nil {
		return err
	}
	if math.IsNaN(d.ScrollSpeed) || math.IsInf(d.ScrollSpeed, 0) {
		return fmt.Errorf("%w: scrollSpeed %v is not finite", ErrInvalidDatablock, d.ScrollSpeed)
	}
	ticks := []struct {
		name  string
		value uint32
	}{
		{"armingDelay", d.ArmingDelay},
		{"damageInterval", d.DamageInterval},
		{"maxLifetime", d.MaxLifetime},
	}
	for _, f := range ticks {
		if f.value > netconfig.MaxLivingTicks {
			return fmt.Errorf("%w: %s %d exceeds %d", ErrInvalidDatablock, f.name, f.value, netconfig.MaxLivingTicks)
		}
	}
	if len(d.TextureName) > 255 {
		return fmt.Errorf("%w: textureName longer than 255 bytes", ErrInvalidDatablock)
	}
	return nil
}

func checkRadius(name string, r float64) error {
	if math.IsNaN(r) || r < 0 || r > RadiusScale {
		return fmt.Errorf("%w: %s %v outside [0, %v]", ErrInvalidDatablock, name, r, RadiusScale)
	}
	return nil
}
