package laser

import (
	"log"

	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/kvartborg/vector"
)

// ParticleDurationMs is how long the particles emitted each client tick live.
const ParticleDurationMs = netconfig.TickMs * 4

// CollisionEvent is a damage pulse raised by a beam resting on a surface.
type CollisionEvent struct {
	Tick   uint32
	Point  vector.Vector
	Normal vector.Vector
	Object collision.ObjectID
}

// TickResult is what one simulation step produced.
type TickResult struct {
	Collision *CollisionEvent
	Removed   bool
}

// ProcessTick advances the laser by one fixed step. fx may be nil on the
// server. Once removal has been signalled further calls do nothing.
func (l *Laser) ProcessTick(c Container, fx Effects) TickResult {
	if l.removed {
		return TickResult{}
	}

	l.Tick++
	if l.Side == netconfig.SideServer && l.Tick >= l.Lifetime {
		l.removed = true
		return TickResult{Removed: true}
	}

	src, ok := l.resolveSource()
	if !ok {
		if !l.sourceMissing {
			l.sourceMissing = true
			log.Printf("[laser] %s source %d unavailable at tick %d, freezing", l.Data.Name, l.SourceID, l.Tick)
		}
		return TickResult{}
	}

	muzzle := muzzlePosition(src.MuzzleTransform(l.MuzzleSlot), src.Position(), src.WorldBox())
	end := src.MuzzleVector(l.MuzzleSlot).Scale(l.Range).Add(muzzle)

	var result TickResult

	src.DisableCollision()
	if hit, ok := c.CastRay(muzzle, end, netconfig.ProjectileCollisionMask); ok && l.Tick > l.Data.ArmingDelay {
		end = hit.Point.Clone()
		src.EnableCollision()

		if l.DamageCycle == 0 {
			result.Collision = &CollisionEvent{
				Tick:   l.Tick,
				Point:  hit.Point.Clone(),
				Normal: hit.Normal.Clone(),
				Object: hit.Object,
			}
		}
		l.DamageCycle++
		if l.DamageCycle >= l.Data.DamageInterval {
			l.DamageCycle = 0
		}
	}
	src.EnableCollision()

	if l.Side == netconfig.SideClient && fx != nil {
		fx.EmitParticles(muzzle, end, gamemath.Vec3(1, 1, 1), ParticleDurationMs)
		fx.UpdateSound(l)
	}

	l.PrevPosition = l.Position
	l.Position = end
	return result
}
