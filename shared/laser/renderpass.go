package laser

import (
	"log"
	"sort"

	"github.com/automoto/laserbeam-mp/shared/gamemath"
)

// RenderInstType is the bucket an instance is drawn in.
type RenderInstType int

const (
	RenderObject RenderInstType = iota
	RenderObjectTranslucent
)

// RenderOp names the draw routine for an instance.
type RenderOp int

const (
	OpBeam RenderOp = iota
	OpDebugSegment
)

func (op RenderOp) String() string {
	switch op {
	case OpBeam:
		return "beam"
	case OpDebugSegment:
		return "debug-segment"
	}
	return "unknown"
}

// RenderInst is one queued draw.
type RenderInst struct {
	Type            RenderInstType
	Op              RenderOp
	Laser           *Laser
	TranslucentSort bool
	SortKey         float64
}

// Renderer carries out the ops a pass dispatches.
type Renderer interface {
	DrawBeam(l *Laser)
	DrawDebugSegment(l *Laser)
}

// RenderPass collects instances for one frame.
type RenderPass struct {
	insts []RenderInst
}

// Add queues an instance.
func (p *RenderPass) Add(ri RenderInst) {
	p.insts = append(p.insts, ri)
}

// Len returns the number of queued instances.
func (p *RenderPass) Len() int {
	return len(p.insts)
}

// Insts exposes the queue in its current order.
func (p *RenderPass) Insts() []RenderInst {
	return p.insts
}

// Sort orders opaque instances first, then translucent ones back to front.
func (p *RenderPass) Sort() {
	sort.SliceStable(p.insts, func(i, j int) bool {
		a, b := p.insts[i], p.insts[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.TranslucentSort && b.TranslucentSort {
			return a.SortKey > b.SortKey
		}
		return false
	})
}

// Dispatch sorts the pass and calls r for each instance in order.
func (p *RenderPass) Dispatch(r Renderer) {
	p.Sort()
	for _, ri := range p.insts {
		switch ri.Op {
		case OpBeam:
			r.DrawBeam(ri.Laser)
		case OpDebugSegment:
			r.DrawDebugSegment(ri.Laser)
		default:
			log.Printf("[render] unknown op %d", ri.Op)
		}
	}
}

// Reset empties the pass, keeping its storage.
func (p *RenderPass) Reset() {
	p.insts = p.insts[:0]
}

// PrepRender queues l as a translucent beam sorted by camera distance.
func (l *Laser) PrepRender(pass *RenderPass, cam gamemath.CameraPose, debug bool) {
	key := gamemath.Distance(cam.Position, l.Position)
	pass.Add(RenderInst{
		Type:            RenderObjectTranslucent,
		Op:              OpBeam,
		Laser:           l,
		TranslucentSort: true,
		SortKey:         key,
	})
	if debug {
		pass.Add(RenderInst{Type: RenderObject, Op: OpDebugSegment, Laser: l})
	}
}
