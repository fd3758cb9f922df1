package core

import (
	"log"

	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

// command is work queued by a router callback for the game loop.
type command interface {
	apply(s *Server)
}

type joinCommand struct {
	peer Peer
	req  messages.JoinRequest
}

type leaveCommand struct {
	id string
}

type fireCommand struct {
	id  string
	req messages.FireRequest
}

// enqueue hands a command to the game loop. It blocks while the queue is
// full and gives up once the server stops.
func (s *Server) enqueue(cmd command) {
	select {
	case s.commands <- cmd:
	case <-s.done:
	}
}

// ProcessCommands applies every queued command. Called at the start of a tick.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd.apply(s)
		default:
			return
		}
	}
}

func (c joinCommand) apply(s *Server) {
	id := c.peer.Id()

	if s.opts.Version != "" && c.req.Version != s.opts.Version {
		log.Printf("[server] rejecting %s: version %q, want %q", id, c.req.Version, s.opts.Version)
		s.send(c.peer, messages.JoinRejected{Reason: "version mismatch: server requires " + s.opts.Version})
		return
	}
	if s.opts.MaxClients > 0 && len(s.peers) >= s.opts.MaxClients {
		log.Printf("[server] rejecting %s: server full", id)
		s.send(c.peer, messages.JoinRejected{Reason: "server full"})
		return
	}
	if _, exists := s.peers[id]; exists {
		return
	}

	ps := newPeerState(c.peer, c.req.PlayerName)
	s.peers[id] = ps
	s.playerCount.Store(int32(len(s.peers)))

	s.send(c.peer, messages.JoinAccepted{
		ServerName: s.opts.Name,
		Arena:      s.arena.Arena.Name,
		TickRate:   s.opts.TickRate,
		Datablocks: len(s.datablocks),
	})
	for _, db := range s.datablocks {
		s.send(c.peer, db)
	}

	log.Printf("[server] %s joined as %q (%d clients)", id, c.req.PlayerName, len(s.peers))
}

func (c leaveCommand) apply(s *Server) {
	if _, ok := s.peers[c.id]; !ok {
		return
	}
	delete(s.peers, c.id)
	s.playerCount.Store(int32(len(s.peers)))
	log.Printf("[server] %s left (%d clients)", c.id, len(s.peers))
}

func (c fireCommand) apply(s *Server) {
	if _, ok := s.peers[c.id]; !ok {
		return
	}
	tp := s.turretByIndex(c.req.TurretIndex)
	if tp == nil || tp.Destroy {
		return
	}
	if tp.Cooldown > 0 {
		return
	}
	slot := c.req.Slot
	if slot < 0 || slot >= netconfig.MaxMuzzleSlots {
		slot = 0
	}
	s.fireTurret(tp, slot)
	tp.Cooldown = tp.Mount.FireInterval
}
