package collision

import (
	"math"
	"sort"

	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

const parallelEpsilon = 1e-12

// CastRay returns the nearest enabled collider matching mask along the
// segment start->end.
func (w *World) CastRay(start, end vector.Vector, mask netconfig.CollisionMask) (RayInfo, bool) {
	dir := end.Sub(start)
	best := RayInfo{T: math.Inf(1)}
	found := false

	consider := func(c *collider, t float64, normal vector.Vector) {
		if t < best.T || (t == best.T && c.id < best.Object) {
			best = RayInfo{
				Point:  start.Add(dir.Scale(t)),
				Normal: normal,
				Object: c.id,
				T:      t,
			}
			found = true
		}
	}

	for _, c := range w.planeCandidates(mask) {
		if t, ok := intersectPlane(*c.plane, start, dir); ok {
			consider(c, t, c.plane.Normal.Clone())
		}
	}
	for _, c := range w.boxCandidates(start, end, mask) {
		if t, normal, ok := intersectBox(c.box, start, dir); ok {
			consider(c, t, normal)
		}
	}

	return best, found
}

func (w *World) planeCandidates(mask netconfig.CollisionMask) []*collider {
	var out []*collider
	for _, c := range w.colliders {
		if c.plane != nil && c.enabled && c.mask&mask != 0 {
			out = append(out, c)
		}
	}
	sortByID(out)
	return out
}

// boxCandidates queries the broadphase with a probe covering the ray's XY
// bounds, then adds the boxes that reach outside the grid.
func (w *World) boxCandidates(start, end vector.Vector, mask netconfig.CollisionMask) []*collider {
	x0 := math.Max(math.Min(start[0], end[0])-w.originX, 0)
	y0 := math.Max(math.Min(start[1], end[1])-w.originY, 0)
	x1 := math.Max(math.Max(start[0], end[0])-w.originX, x0+1)
	y1 := math.Max(math.Max(start[1], end[1])-w.originY, y0+1)

	probe := resolv.NewObject(x0, y0, x1-x0, y1-y0)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	seen := make(map[ObjectID]bool)
	var out []*collider
	add := func(id ObjectID) {
		if seen[id] {
			return
		}
		seen[id] = true
		c := w.colliders[id]
		if c.enabled && c.mask&mask != 0 {
			out = append(out, c)
		}
	}

	if check := probe.Check(0, 0, ColliderTag); check != nil {
		for _, obj := range check.Objects {
			if id, ok := w.objects[obj]; ok {
				add(id)
			}
		}
	}
	for id := range w.overflow {
		add(id)
	}
	sortByID(out)
	return out
}

func sortByID(cs []*collider) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].id < cs[j].id })
}

func intersectPlane(p Plane, start, dir vector.Vector) (float64, bool) {
	denom := gamemath.Dot(dir, p.Normal)
	if denom > -parallelEpsilon {
		return 0, false
	}
	dist := gamemath.Dot(start, p.Normal) - p.Distance
	if dist < 0 {
		return 0, false
	}
	t := -dist / denom
	if t > 1 {
		return 0, false
	}
	return t, true
}

// intersectBox is a slab test. Rays starting inside the box do not hit it.
func intersectBox(b gamemath.Box, start, dir vector.Vector) (float64, vector.Vector, bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	enterAxis, enterSign := -1, 0.0

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < parallelEpsilon {
			if start[axis] < b.Min[axis] || start[axis] > b.Max[axis] {
				return 0, nil, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t0 := (b.Min[axis] - start[axis]) * inv
		t1 := (b.Max[axis] - start[axis]) * inv
		sign := -1.0
		if t0 > t1 {
			t0, t1 = t1, t0
			sign = 1.0
		}
		if t0 > tEnter {
			tEnter = t0
			enterAxis = axis
			enterSign = sign
		}
		if t1 < tExit {
			tExit = t1
		}
		if tEnter > tExit {
			return 0, nil, false
		}
	}

	if enterAxis < 0 || tEnter < 0 || tEnter > 1 {
		return 0, nil, false
	}

	normal := gamemath.Zero3()
	normal[enterAxis] = enterSign
	return tEnter, normal, true
}
