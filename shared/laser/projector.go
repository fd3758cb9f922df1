package laser

import (
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/kvartborg/vector"
)

// Vertex is one triangle-strip vertex.
type Vertex struct {
	Pos vector.Vector
	U   float64
	V   float64
}

// DrawCall is the billboard for one laser in one frame. Strip order is
// start-left, end-left, start-right, end-right.
type DrawCall struct {
	Strip   [4]Vertex
	Texture string
	Frame   int
	State   *RenderState

	Muzzle vector.Vector
	End    vector.Vector
}

// FrameSource reports how many animation frames a texture has.
type FrameSource interface {
	FrameCount(textureName string) int
}

// Projector turns lasers into camera-facing quads. It owns the state cache
// the quads are drawn with.
type Projector struct {
	Frames FrameSource
	Cache  *StateCache
}

// NewProjector creates a projector. frames may be nil, giving every texture a
// single frame.
func NewProjector(frames FrameSource, cache *StateCache) *Projector {
	if cache == nil {
		cache = NewStateCache(nil)
	}
	return &Projector{Frames: frames, Cache: cache}
}

func (p *Projector) frameCount(texture string) int {
	if p.Frames == nil {
		return 1
	}
	if n := p.Frames.FrameCount(texture); n > 0 {
		return n
	}
	return 1
}

// Animate advances the texture frame and UV scroll of l. elapsedMs is the
// real time since the previous call.
func (p *Projector) Animate(l *Laser, elapsedMs float64) {
	frames := p.frameCount(l.Data.TextureName)

	l.frameElapsed += elapsedMs
	if l.frameElapsed > float64(l.Data.DamageInterval) {
		l.FrameIndex++
		l.frameElapsed = 0
	}
	if l.FrameIndex >= frames {
		l.FrameIndex %= frames
	}

	l.UVOffset -= l.Data.ScrollSpeed
	if l.UVOffset < -1.0 {
		l.UVOffset = 0
	}
}

// Project animates l and builds its quad. ok is false when the source can no
// longer be resolved; the laser is then skipped for this frame.
func (p *Projector) Project(l *Laser, cam gamemath.CameraPose, elapsedMs float64) (DrawCall, bool) {
	p.Animate(l, elapsedMs)

	src, ok := l.resolveSource()
	if !ok {
		return DrawCall{}, false
	}

	muzzle := muzzlePosition(src.RenderMuzzleTransform(l.MuzzleSlot), src.Position(), src.RenderWorldBox())
	dir := src.MuzzleVector(l.MuzzleSlot)

	toCamera := gamemath.Normalize(cam.Position.Sub(muzzle))
	crossA := gamemath.CrossUnit(toCamera, dir)
	crossB := gamemath.CrossUnit(dir, toCamera)

	d := l.Data
	end := l.Position
	length := gamemath.Distance(muzzle, end)
	off := l.UVOffset

	return DrawCall{
		Strip: [4]Vertex{
			{Pos: crossA.Scale(d.BeamStartRadius).Add(muzzle), U: 0, V: off},
			{Pos: crossA.Scale(d.BeamEndRadius).Add(end), U: 0, V: off + length},
			{Pos: crossB.Scale(d.BeamStartRadius).Add(muzzle), U: 1, V: off},
			{Pos: crossB.Scale(d.BeamEndRadius).Add(end), U: 1, V: off + length},
		},
		Texture: d.TextureName,
		Frame:   l.FrameIndex,
		State:   p.Cache.Get(BeamState),
		Muzzle:  muzzle,
		End:     end.Clone(),
	}, true
}
