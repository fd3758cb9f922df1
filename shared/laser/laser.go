package laser

import (
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/kvartborg/vector"
)

//go:generate go tool mockgen -destination=mocks/mock_laser.go -package=mocks github.com/automoto/laserbeam-mp/shared/laser Source,SourceRef,Container,Effects

// Source is the entity a laser is fired from.
type Source interface {
	MuzzleTransform(slot int) gamemath.Transform
	RenderMuzzleTransform(slot int) gamemath.Transform
	MuzzleVector(slot int) vector.Vector
	Position() vector.Vector
	WorldBox() gamemath.Box
	RenderWorldBox() gamemath.Box
	EnableCollision()
	DisableCollision()
}

// SourceRef is a weak handle to a Source. Resolve fails once the firing
// entity is gone.
type SourceRef interface {
	Resolve() (Source, bool)
}

// Container answers ray casts against world geometry.
type Container interface {
	CastRay(start, end vector.Vector, mask netconfig.CollisionMask) (collision.RayInfo, bool)
}

// Effects receives client-side feedback for a ticking laser.
type Effects interface {
	EmitParticles(start, end, scale vector.Vector, durationMs int)
	UpdateSound(l *Laser)
}

// Laser is one live beam. It is owned by whichever side holds it and is never
// shared across goroutines.
type Laser struct {
	Data *Data
	Side netconfig.Side

	Position     vector.Vector
	PrevPosition vector.Vector
	Tick         uint32
	DamageCycle  uint32

	Source     SourceRef
	SourceID   uint32
	MuzzleSlot int
	Range      float64
	Lifetime   uint32

	// Render-side animation state. Repeated renders of one tick may advance
	// it differently per viewport.
	FrameIndex   int
	UVOffset     float64
	frameElapsed float64

	removed       bool
	sourceMissing bool
}

// New spawns a laser attached to src at the given muzzle slot. lifetime is
// clamped to the datablock cap.
func New(data *Data, side netconfig.Side, src SourceRef, sourceID uint32, slot int, rng float64, lifetime uint32) *Laser {
	if limit := data.LifetimeCap(); lifetime > limit {
		lifetime = limit
	}
	l := &Laser{
		Data:       data,
		Side:       side,
		Source:     src,
		SourceID:   sourceID,
		MuzzleSlot: slot,
		Range:      rng,
		Lifetime:   lifetime,
		Position:   gamemath.Zero3(),
	}
	if s, ok := l.resolveSource(); ok {
		l.Position = muzzlePosition(s.MuzzleTransform(slot), s.Position(), s.WorldBox())
	}
	l.PrevPosition = l.Position.Clone()
	return l
}

// Removed reports whether the laser has signalled removal or was despawned.
func (l *Laser) Removed() bool {
	return l.removed
}

// Despawn removes the laser without waiting for its lifetime.
func (l *Laser) Despawn() {
	l.removed = true
}

// RemainingTicks is the number of ticks left before lifetime removal.
func (l *Laser) RemainingTicks() uint32 {
	if l.Tick >= l.Lifetime {
		return 0
	}
	return l.Lifetime - l.Tick
}

// Bind swaps the source handle, used when a replica learns which entity fired
// the beam.
func (l *Laser) Bind(src SourceRef, sourceID uint32) {
	l.Source = src
	l.SourceID = sourceID
	l.sourceMissing = false
}

func (l *Laser) resolveSource() (Source, bool) {
	if l.Source == nil {
		return nil, false
	}
	return l.Source.Resolve()
}

// muzzlePosition reads the muzzle translation, falling back to the box center
// while the attachment point still sits exactly on the entity origin.
func muzzlePosition(muzzle gamemath.Transform, origin vector.Vector, box gamemath.Box) vector.Vector {
	p := muzzle.Column(3)
	if gamemath.ExactlyEqual(p, origin) {
		return box.Center()
	}
	return p.Clone()
}
