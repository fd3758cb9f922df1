package systems

import (
	"log"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/network"
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/automoto/laserbeam-mp/systems/factory"
	"github.com/automoto/laserbeam-mp/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LaserFeed is the part of network.Client the laser system consumes.
type LaserFeed interface {
	DrainDatablocks() []messages.LaserDataBlock
	DrainUpdates() []messages.LaserUpdate
	DrainDespawnEvents() []messages.LaserDespawnEvent
}

// LaserSystem applies replicated laser state and runs the client side of the
// beam simulation at the server tick rate.
type LaserSystem struct {
	feed     LaserFeed
	Registry *network.Registry
	entities map[uint32]donburi.Entity

	frameSeconds float64
	acc          float64
	empty        *collision.World
}

// NewLaserSystem creates the system. tps is the update rate Update is called at.
func NewLaserSystem(feed LaserFeed, world donburi.World, tps int) *LaserSystem {
	if tps <= 0 {
		tps = 60
	}
	return &LaserSystem{
		feed:         feed,
		Registry:     network.NewRegistry(TurretResolver(world), cfg.Net.DatablockLimit),
		entities:     make(map[uint32]donburi.Entity),
		frameSeconds: 1 / float64(tps),
		empty:        collision.NewWorld(0, 0, 1, 1, 1),
	}
}

// Update is the ecs system func.
func (s *LaserSystem) Update(e *ecs.ECS) {
	s.applyNetwork(e)

	container := s.container(e)
	fx := &ecsEffects{ecs: e, tps: int(1/s.frameSeconds + 0.5)}

	s.acc += s.frameSeconds
	for s.acc >= netconfig.TickSeconds {
		s.acc -= netconfig.TickSeconds
		for _, id := range s.Registry.IDs() {
			l, _ := s.Registry.Get(id)
			l.ProcessTick(container, fx)
		}
	}

	s.updateFades(e)
}

func (s *LaserSystem) applyNetwork(e *ecs.ECS) {
	for _, db := range s.feed.DrainDatablocks() {
		if err := s.Registry.AddDatablock(db); err != nil {
			log.Printf("[replica] %v", err)
		}
	}

	for _, u := range s.feed.DrainUpdates() {
		l, created, err := s.Registry.ApplyUpdate(u)
		if err != nil {
			log.Printf("[replica] dropped update: %v", err)
			continue
		}
		if created {
			entry := factory.CreateLaser(e, u.LaserID, l)
			s.entities[u.LaserID] = entry.Entity()
		}
	}

	for _, d := range s.feed.DrainDespawnEvents() {
		s.despawn(e, d.LaserID)
	}
}

func (s *LaserSystem) despawn(e *ecs.ECS, id uint32) {
	s.Registry.Remove(id)
	entity, ok := s.entities[id]
	if !ok {
		return
	}
	delete(s.entities, id)
	if e.World.Valid(entity) {
		e.World.Remove(entity)
	}
}

// Clear drops every replica, used when leaving the arena.
func (s *LaserSystem) Clear(e *ecs.ECS) {
	for id := range s.entities {
		s.despawn(e, id)
	}
	s.Registry.Reset()
}

func (s *LaserSystem) container(e *ecs.ECS) laser.Container {
	if entry, ok := components.Arena.First(e.World); ok {
		if w := components.Arena.Get(entry).World; w != nil {
			return w
		}
	}
	return s.empty
}

// updateFades starts a fade-out tween once a beam enters its last
// FadeTicks and advances running tweens.
func (s *LaserSystem) updateFades(e *ecs.ECS) {
	tags.Laser.Each(e.World, func(entry *donburi.Entry) {
		r := components.LaserReplica.Get(entry)

		if r.Fade == nil {
			remaining := r.Laser.RemainingTicks()
			if r.Laser.Lifetime == 0 || remaining > uint32(cfg.Laser.FadeTicks) {
				return
			}
			duration := float32(float64(remaining) * netconfig.TickSeconds)
			r.Fade = gween.New(float32(r.Alpha), 0, duration, ease.OutQuad)
		}

		alpha, _ := r.Fade.Update(float32(s.frameSeconds))
		r.Alpha = float64(alpha)
	})
}

// turretRef resolves a replicated source id to the client turret with the
// matching arena index. It fails while no such turret is alive.
type turretRef struct {
	world donburi.World
	index int
}

func (r *turretRef) Resolve() (laser.Source, bool) {
	var src laser.Source
	tags.Turret.Each(r.world, func(entry *donburi.Entry) {
		if src != nil {
			return
		}
		view := components.TurretView.Get(entry)
		if view.Index == r.index && !view.Destroyed {
			src = view.Source
		}
	})
	return src, src != nil
}

// TurretResolver maps source ids (arena index + 1) to turret handles.
func TurretResolver(world donburi.World) network.SourceResolver {
	return func(id uint32) laser.SourceRef {
		if id == 0 {
			return nil
		}
		return &turretRef{world: world, index: int(id) - 1}
	}
}
