package core

import (
	"log"
	"sort"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
	"github.com/yohamta/donburi"
)

// LaserState is a live server laser and its bookkeeping.
type LaserState struct {
	ID          uint32
	Laser       *laser.Laser
	Turret      donburi.Entity
	SourceNetID uint
	Datablock   string
}

func (s *Server) fireTurret(tp *TurretPhysics, slot int) *LaserState {
	if tp.Data == nil {
		return nil
	}

	rng := tp.Mount.Range
	if rng < cfg.Laser.MinRange {
		rng = cfg.Laser.MinRange
	}
	s.nextLaserID++
	ls := &LaserState{
		ID: s.nextLaserID,
		Laser: laser.New(tp.Data, netconfig.SideServer,
			turretRef{s: s, entity: tp.Entity}, sourceID(tp.Index),
			slot, rng, uint32(tp.Mount.Lifetime)),
		Turret:      tp.Entity,
		SourceNetID: s.networkID(tp.Entity),
		Datablock:   tp.Mount.Datablock,
	}
	s.lasers[ls.ID] = ls
	return ls
}

func (s *Server) sortedLaserIDs() []uint32 {
	ids := make([]uint32, 0, len(s.lasers))
	for id := range s.lasers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// updateLasers ticks every laser and turns collision events into damage.
func (s *Server) updateLasers() {
	for _, id := range s.sortedLaserIDs() {
		ls := s.lasers[id]
		res := ls.Laser.ProcessTick(s.arena.World, nil)

		if res.Collision != nil {
			s.applyHit(ls, res.Collision)
		}
	}
}

func (s *Server) applyHit(ls *LaserState, ev *laser.CollisionEvent) {
	damage := ls.Laser.Data.Damage

	var targetNetID uint
	if entity, ok := s.colliderTurrets[ev.Object]; ok {
		targetNetID = s.networkID(entity)
		s.damageTurret(entity, damage, ls.SourceNetID)
	}

	s.broadcastEvent(messages.LaserHitEvent{
		LaserID:         ls.ID,
		SourceNetworkID: ls.SourceNetID,
		TargetNetworkID: targetNetID,
		Tick:            ev.Tick,
		X:               ev.Point[0],
		Y:               ev.Point[1],
		Z:               ev.Point[2],
		NX:              ev.Normal[0],
		NY:              ev.Normal[1],
		NZ:              ev.Normal[2],
		Damage:          damage,
	})
}

// destroyFlaggedLasers drops every laser that signalled removal.
func (s *Server) destroyFlaggedLasers() {
	for _, id := range s.sortedLaserIDs() {
		if s.lasers[id].Laser.Removed() {
			s.despawnLaser(id, messages.DespawnExpired)
		}
	}
}

func (s *Server) despawnLaser(id uint32, reason int) {
	ls, ok := s.lasers[id]
	if !ok {
		return
	}
	ls.Laser.Despawn()
	delete(s.lasers, id)
	s.forgetLaser(id)

	s.broadcastEvent(messages.LaserDespawnEvent{LaserID: id, Reason: reason})
}

// shutdown despawns every laser so connected clients drop their replicas.
func (s *Server) shutdown() {
	for _, id := range s.sortedLaserIDs() {
		s.despawnLaser(id, messages.DespawnShutdown)
	}
	log.Printf("[server] shutdown at tick %d", s.tick)
}
