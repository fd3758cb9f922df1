// Package collision is the world-geometry collaborator the laser casts rays
// against. Boxes are indexed in a resolv.Space over their XY footprint so a
// ray only tests the colliders whose cells it crosses; planes are few and are
// tested directly.
package collision

import (
	"math"

	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// ObjectID identifies a collider in a World. Zero means "none".
type ObjectID uint32

// ColliderTag marks resolv objects that stand for boxes.
const ColliderTag = "collider"

// RayInfo describes the nearest hit of a ray cast.
type RayInfo struct {
	Point  vector.Vector
	Normal vector.Vector
	Object ObjectID
	// T is the hit fraction along start->end.
	T float64
}

// Plane is the set of points p with p.Normal == Distance. Only rays crossing
// from the front side to the back side hit it.
type Plane struct {
	Normal   vector.Vector
	Distance float64
}

type collider struct {
	id      ObjectID
	mask    netconfig.CollisionMask
	enabled bool

	box   gamemath.Box
	plane *Plane
	obj   *resolv.Object
}

// World holds static and dynamic colliders.
type World struct {
	space   *resolv.Space
	originX float64
	originY float64

	colliders map[ObjectID]*collider
	objects   map[*resolv.Object]ObjectID
	// overflow holds boxes that reach outside the broadphase grid. They are
	// tested on every cast.
	overflow map[ObjectID]bool
	nextID   ObjectID
}

// NewWorld creates a world whose broadphase covers the XY rectangle starting
// at (minX, minY) with the given size. Boxes reaching outside it are kept
// beside the grid and tested on every cast.
func NewWorld(minX, minY, width, height float64, cellSize int) *World {
	if cellSize <= 0 {
		cellSize = 16
	}
	return &World{
		space:     resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize),
		originX:   minX,
		originY:   minY,
		colliders: make(map[ObjectID]*collider),
		objects:   make(map[*resolv.Object]ObjectID),
		overflow:  make(map[ObjectID]bool),
	}
}

// inGrid reports whether the XY footprint of box lies wholly inside the
// cells of the broadphase.
func (w *World) inGrid(box gamemath.Box) bool {
	maxX := float64(w.space.Width() * w.space.CellWidth)
	maxY := float64(w.space.Height() * w.space.CellHeight)
	x0, y0 := box.Min[0]-w.originX, box.Min[1]-w.originY
	x1, y1 := box.Max[0]-w.originX, box.Max[1]-w.originY
	return x0 >= 0 && y0 >= 0 && x1 < maxX && y1 < maxY
}

func (w *World) allocID() ObjectID {
	w.nextID++
	return w.nextID
}

// AddBox registers an axis-aligned box and returns its id.
func (w *World) AddBox(box gamemath.Box, mask netconfig.CollisionMask) ObjectID {
	id := w.allocID()
	ext := box.Extents()

	obj := resolv.NewObject(box.Min[0]-w.originX, box.Min[1]-w.originY, ext[0], ext[1], ColliderTag)
	obj.SetShape(resolv.NewRectangle(0, 0, ext[0], ext[1]))
	w.space.Add(obj)

	w.colliders[id] = &collider{id: id, mask: mask, enabled: true, box: box, obj: obj}
	w.objects[obj] = id
	if !w.inGrid(box) {
		w.overflow[id] = true
	}
	return id
}

// AddPlane registers an infinite plane and returns its id.
func (w *World) AddPlane(p Plane, mask netconfig.CollisionMask) ObjectID {
	id := w.allocID()
	p.Normal = gamemath.Normalize(p.Normal)
	w.colliders[id] = &collider{id: id, mask: mask, enabled: true, plane: &p}
	return id
}

// Remove drops a collider. Unknown ids are ignored.
func (w *World) Remove(id ObjectID) {
	c, ok := w.colliders[id]
	if !ok {
		return
	}
	if c.obj != nil {
		w.space.Remove(c.obj)
		delete(w.objects, c.obj)
	}
	delete(w.colliders, id)
	delete(w.overflow, id)
}

// SetEnabled toggles whether ray casts can hit the collider.
func (w *World) SetEnabled(id ObjectID, enabled bool) {
	if c, ok := w.colliders[id]; ok {
		c.enabled = enabled
	}
}

// Enabled reports whether the collider takes part in ray casts.
func (w *World) Enabled(id ObjectID) bool {
	c, ok := w.colliders[id]
	return ok && c.enabled
}

// Box returns the bounds of a box collider.
func (w *World) Box(id ObjectID) (gamemath.Box, bool) {
	c, ok := w.colliders[id]
	if !ok || c.plane != nil {
		return gamemath.Box{}, false
	}
	return c.box, true
}

// Len returns the number of colliders.
func (w *World) Len() int {
	return len(w.colliders)
}
