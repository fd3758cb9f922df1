package core

import (
	"log"
	"sort"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/gamemath"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/leveldata"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/automoto/laserbeam-mp/shared/turret"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// TurretPhysics holds server-side state for a turret that isn't synced.
type TurretPhysics struct {
	Entity   donburi.Entity
	Index    int
	Mount    leveldata.TurretMount
	Source   *turret.Source
	Data     *laser.Data
	Cooldown int // Ticks until the next automatic shot
	NextSlot int
	Health   int
	Destroy  bool
	KilledBy uint
}

// turretRef resolves a turret entity for a laser. It fails once the entity is
// removed or flagged for destruction.
type turretRef struct {
	s      *Server
	entity donburi.Entity
}

func (r turretRef) Resolve() (laser.Source, bool) {
	if !r.s.world.Valid(r.entity) {
		return nil, false
	}
	tp, ok := r.s.turrets[r.entity]
	if !ok || tp.Destroy {
		return nil, false
	}
	return tp.Source, true
}

// sourceID is the turret identifier carried in laser updates. Zero is never
// used so clients can tell an unset id apart.
func sourceID(index int) uint32 {
	return uint32(index + 1)
}

func (s *Server) spawnTurrets() {
	for i, mount := range s.arena.Arena.Turrets {
		s.spawnTurret(i, mount)
	}
}

func (s *Server) spawnTurret(index int, mount leveldata.TurretMount) donburi.Entity {
	entity := s.world.Create(netcomponents.NetPosition, netcomponents.NetTurret)
	entry := s.world.Entry(entity)

	health := mount.Health
	if health <= 0 {
		health = cfg.Turret.DefaultHealth
	}

	pose := turret.Pose{
		X:            mount.X,
		Y:            mount.Y,
		MuzzleHeight: mount.MuzzleHeight,
		Yaw:          mount.Yaw,
		Pitch:        cfg.Turret.SweepPitch,
	}
	src := &turret.Source{
		Body:   s.body,
		Sim:    pose,
		Render: pose,
		World:  s.arena.World,
	}
	src.Collider = s.arena.World.AddBox(s.body.Box(pose), netconfig.DynamicCollisionMask)

	netcomponents.NetPosition.Set(entry, &netcomponents.NetPositionData{X: mount.X, Y: mount.Y})
	netcomponents.NetTurret.Set(entry, &netcomponents.NetTurretData{
		Name:         mount.Name,
		Index:        index,
		Yaw:          pose.Yaw,
		Pitch:        pose.Pitch,
		MuzzleHeight: mount.MuzzleHeight,
		State:        netconfig.TurretActive,
		Health:       health,
		MaxHealth:    health,
		Datablock:    mount.Datablock,
	})

	s.turrets[entity] = &TurretPhysics{
		Entity:   entity,
		Index:    index,
		Mount:    mount,
		Source:   src,
		Data:     s.arena.Datablocks[mount.Datablock],
		Cooldown: mount.FireInterval,
		Health:   health,
	}
	s.colliderTurrets[src.Collider] = entity

	if s.synced {
		s.syncTurret(entity)
	}
	return entity
}

func (s *Server) syncTurret(entity donburi.Entity) {
	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetTurret),
		netcomponents.NetPosition,
	); err != nil {
		log.Printf("[server] failed to sync turret: %v", err)
	}
}

// sortedTurrets returns live turret state ordered by arena index.
func (s *Server) sortedTurrets() []*TurretPhysics {
	out := make([]*TurretPhysics, 0, len(s.turrets))
	for _, tp := range s.turrets {
		out = append(out, tp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (s *Server) turretByIndex(index int) *TurretPhysics {
	for _, tp := range s.turrets {
		if tp.Index == index {
			return tp
		}
	}
	return nil
}

// updateTurrets sweeps every turret and fires those whose cooldown expired.
func (s *Server) updateTurrets() {
	dt := s.loop.TickSeconds()

	for _, tp := range s.sortedTurrets() {
		if tp.Destroy {
			continue
		}

		tp.Source.Sim.Yaw = gamemath.WrapAngle(tp.Source.Sim.Yaw + tp.Mount.YawRate*dt)
		tp.Source.Render = tp.Source.Sim

		if tp.Cooldown > 0 {
			tp.Cooldown--
		}
		if tp.Cooldown == 0 && tp.Mount.FireInterval > 0 {
			s.fireTurret(tp, tp.NextSlot)
			tp.NextSlot = (tp.NextSlot + 1) % max(s.body.Slots, 1)
			tp.Cooldown = tp.Mount.FireInterval
		}
	}
}

// damageTurret flags the turret for destruction once its health runs out.
func (s *Server) damageTurret(entity donburi.Entity, damage int, killer uint) {
	tp, ok := s.turrets[entity]
	if !ok || tp.Destroy {
		return
	}

	tp.Health -= damage
	if tp.Health <= 0 {
		tp.Health = 0
		tp.Destroy = true
		tp.KilledBy = killer
		log.Printf("[server] turret %q destroyed", tp.Mount.Name)
	}
}

// destroyFlaggedTurrets removes turrets whose health ran out. Lasers they
// fired lose their source and freeze until their lifetime ends.
func (s *Server) destroyFlaggedTurrets() {
	for entity, tp := range s.turrets {
		if !tp.Destroy {
			continue
		}

		netID := s.networkID(entity)
		s.broadcastEvent(messages.TurretDestroyedEvent{
			NetworkID: netID,
			KillerID:  tp.KilledBy,
		})

		s.arena.World.Remove(tp.Source.Collider)
		delete(s.colliderTurrets, tp.Source.Collider)
		delete(s.turrets, entity)

		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
	}
}

// networkID returns the esync id of an entity, or 0 when it isn't synced.
func (s *Server) networkID(entity donburi.Entity) uint {
	if !s.world.Valid(entity) {
		return 0
	}
	if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
		return uint(*nid)
	}
	return 0
}

// writeNetState copies simulation state into the synced components.
func (s *Server) writeNetState() {
	for entity, tp := range s.turrets {
		if !s.world.Valid(entity) {
			continue
		}
		nt := netcomponents.NetTurret.Get(s.world.Entry(entity))
		nt.Yaw = tp.Source.Sim.Yaw
		nt.Pitch = tp.Source.Sim.Pitch
		nt.Health = tp.Health
	}

	as := netcomponents.NetArenaState.Get(s.world.Entry(s.arenaEntity))
	as.Tick = s.tick
	as.LiveLasers = len(s.lasers)
	as.TurretsAlive = len(s.turrets)
	as.State = s.arenaState
}

// updateArenaState moves the arena between waiting, running and cleared, and
// respawns the turrets once a cleared arena's delay has passed.
func (s *Server) updateArenaState() {
	switch s.arenaState {
	case netcomponents.ArenaStateWaiting:
		if len(s.peers) > 0 {
			s.arenaState = netcomponents.ArenaStateRunning
			log.Printf("[server] arena %q running", s.arena.Arena.Name)
		}
	case netcomponents.ArenaStateRunning:
		if len(s.arena.Arena.Turrets) > 1 && len(s.turrets) <= 1 {
			s.arenaState = netcomponents.ArenaStateCleared
			s.resetTimer = s.opts.ResetDelayTicks
			log.Printf("[server] arena %q cleared at tick %d", s.arena.Arena.Name, s.tick)
		}
	case netcomponents.ArenaStateCleared:
		if s.resetTimer > 0 {
			s.resetTimer--
			return
		}
		s.resetArena()
	}
}

func (s *Server) resetArena() {
	for id := range s.lasers {
		s.despawnLaser(id, messages.DespawnShutdown)
	}
	for entity, tp := range s.turrets {
		s.arena.World.Remove(tp.Source.Collider)
		delete(s.colliderTurrets, tp.Source.Collider)
		delete(s.turrets, entity)
		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
	}

	s.spawnTurrets()
	s.arenaState = netcomponents.ArenaStateRunning
	log.Printf("[server] arena %q reset", s.arena.Arena.Name)
}
