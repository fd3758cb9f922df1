package assets

import (
	"image"
	"image/color"
	"log"
	"math"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// beamTints are the procedural palettes for the texture names datablocks use.
var beamTints = map[string]color.RGBA{
	"beam.png":  {R: 255, G: 70, B: 50, A: 255},
	"pulse.png": {R: 60, G: 220, B: 255, A: 255},
	"heavy.png": {R: 255, G: 170, B: 40, A: 255},
}

// BeamFrame renders one animation frame of a beam texture. U runs across the
// beam with a bright core, V along it with bands that shift per frame.
func BeamFrame(size, frame, frames int, tint color.RGBA) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	phase := float64(frame) / float64(frames)

	for y := 0; y < size; y++ {
		band := 0.65 + 0.35*math.Sin(2*math.Pi*(float64(y)/float64(size)+phase))
		for x := 0; x < size; x++ {
			u := (float64(x)+0.5)/float64(size)*2 - 1
			core := 1 - u*u
			if core < 0 {
				core = 0
			}
			a := core * band
			white := core * core * core
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(math.Min(255, (float64(tint.R)*(1-white)+255*white)*a)),
				G: uint8(math.Min(255, (float64(tint.G)*(1-white)+255*white)*a)),
				B: uint8(math.Min(255, (float64(tint.B)*(1-white)+255*white)*a)),
				A: uint8(255 * a),
			})
		}
	}
	return img
}

// BeamTextures builds and caches the animated beam textures. It implements
// laser.FrameSource.
type BeamTextures struct {
	frames  map[string][]*ebiten.Image
	missing map[string]bool
}

func NewBeamTextures() *BeamTextures {
	return &BeamTextures{
		frames:  make(map[string][]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// FrameCount reports the frames generated for every beam texture.
func (t *BeamTextures) FrameCount(name string) int {
	return max(cfg.Render.TextureFrames, 1)
}

// Frame returns frame idx of a texture, generating it on first use. Unknown
// names fall back to the default tint.
func (t *BeamTextures) Frame(name string, idx int) *ebiten.Image {
	frames, ok := t.frames[name]
	if !ok {
		frames = t.build(name)
		t.frames[name] = frames
	}
	return frames[idx%len(frames)]
}

func (t *BeamTextures) build(name string) []*ebiten.Image {
	tint, ok := beamTints[name]
	if !ok {
		if name != "" && !t.missing[name] {
			t.missing[name] = true
			log.Printf("[render] texture %q not found, using procedural default", name)
		}
		tint = cfg.Render.BeamTint
	}

	n := t.FrameCount(name)
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImageFromImage(BeamFrame(cfg.Render.TextureSize, i, n, tint))
	}
	return frames
}

// Reset drops every generated texture, used when the graphics context is lost.
func (t *BeamTextures) Reset() {
	for _, frames := range t.frames {
		for _, img := range frames {
			img.Deallocate()
		}
	}
	clear(t.frames)
}
