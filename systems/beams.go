package systems

import (
	"time"

	"github.com/automoto/laserbeam-mp/assets"
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxFrameMs caps the animation step after a stall.
const maxFrameMs = 100.0

// beamIndices splits the 4-vertex strip into two triangles.
var beamIndices = []uint16{0, 1, 2, 1, 3, 2}

// BeamRenderer draws replicated lasers as textured camera-facing quads. It
// implements laser.Renderer for the render pass it fills each frame.
type BeamRenderer struct {
	Projector *laser.Projector
	Textures  *assets.BeamTextures

	pass     laser.RenderPass
	alpha    map[*laser.Laser]float64
	vertices []ebiten.Vertex
	last     time.Time

	screen    *ebiten.Image
	view      view
	elapsedMs float64
}

var _ laser.Renderer = (*BeamRenderer)(nil)

func NewBeamRenderer() *BeamRenderer {
	textures := assets.NewBeamTextures()
	return &BeamRenderer{
		Projector: laser.NewProjector(textures, laser.NewStateCache(buildBeamState)),
		Textures:  textures,
		alpha:     make(map[*laser.Laser]float64),
		vertices:  make([]ebiten.Vertex, 0, 4),
	}
}

// buildBeamState turns a state key into draw options.
func buildBeamState(key laser.StateKey) any {
	op := &ebiten.DrawTrianglesOptions{
		Address: ebiten.AddressRepeat,
		Filter:  ebiten.FilterLinear,
	}
	switch key.Blend {
	case laser.BlendAdditive:
		op.Blend = ebiten.BlendLighter
	default:
		op.Blend = ebiten.BlendSourceOver
	}
	return op
}

// Draw is the ecs renderer func.
func (r *BeamRenderer) Draw(e *ecs.ECS, screen *ebiten.Image) {
	now := time.Now()
	r.elapsedMs = 0
	if !r.last.IsZero() {
		r.elapsedMs = min(float64(now.Sub(r.last).Microseconds())/1000, maxFrameMs)
	}
	r.last = now

	v, ok := newView(e, screen)
	if !ok {
		return
	}
	debug := cfg.Render.DebugSegments
	if entry, ok := components.Settings.First(e.World); ok {
		debug = debug || components.Settings.Get(entry).ShowDebug
	}

	r.pass.Reset()
	clear(r.alpha)
	tags.Laser.Each(e.World, func(entry *donburi.Entry) {
		rep := components.LaserReplica.Get(entry)
		if rep.Laser.Removed() {
			return
		}
		rep.Laser.PrepRender(&r.pass, v.cam, debug)
		r.alpha[rep.Laser] = rep.Alpha
	})

	r.screen, r.view = screen, v
	r.pass.Dispatch(r)
	r.screen = nil
}

func (r *BeamRenderer) DrawBeam(l *laser.Laser) {
	dc, ok := r.Projector.Project(l, r.view.cam, r.elapsedMs)
	if !ok {
		return
	}
	alpha := float32(r.alpha[l])
	if alpha <= 0 {
		return
	}

	img := r.Textures.Frame(dc.Texture, dc.Frame)
	size := float32(img.Bounds().Dx())

	r.vertices = r.vertices[:0]
	for _, vert := range dc.Strip {
		x, y, ok := r.view.project(vert.Pos)
		if !ok {
			return
		}
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   float32(vert.U) * size,
			SrcY:   float32(vert.V) * size,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: alpha,
		})
	}

	op, _ := dc.State.Handle.(*ebiten.DrawTrianglesOptions)
	if op == nil {
		op = buildBeamState(dc.State.Key).(*ebiten.DrawTrianglesOptions)
	}
	r.screen.DrawTriangles(r.vertices, beamIndices, img, op)
}

// DrawDebugSegment draws the simulated muzzle to end segment.
func (r *BeamRenderer) DrawDebugSegment(l *laser.Laser) {
	if l.Source == nil {
		return
	}
	src, ok := l.Source.Resolve()
	if !ok {
		return
	}
	muzzle := src.MuzzleTransform(l.MuzzleSlot).Origin
	r.view.line(r.screen, muzzle, l.Position, 1, cfg.Yellow)
}

// Dispose releases the textures and cached states, used when the scene ends.
func (r *BeamRenderer) Dispose() {
	r.Textures.Reset()
	r.Projector.Cache.Reset()
}
