package core

import (
	"log"
	"sort"

	"github.com/automoto/laserbeam-mp/shared/bitstream"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/messages"
)

// Peer is the sending half of a connected client. *router.NetworkClient
// satisfies it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

type peerState struct {
	peer  Peer
	name  string
	known map[uint32]bool // Lasers this peer received an initial update for
}

func newPeerState(peer Peer, name string) *peerState {
	return &peerState{
		peer:  peer,
		name:  name,
		known: make(map[uint32]bool),
	}
}

func packDatablocks(blocks map[string]*laser.Data) []messages.LaserDataBlock {
	names := laser.Names(blocks)
	out := make([]messages.LaserDataBlock, 0, len(names))
	for _, name := range names {
		w := bitstream.NewWriter()
		laser.PackData(w, blocks[name])
		out = append(out, messages.LaserDataBlock{Name: name, Payload: w.Bytes()})
	}
	return out
}

func (s *Server) sortedPeers() []*peerState {
	out := make([]*peerState, 0, len(s.peers))
	for _, ps := range s.peers {
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].peer.Id() < out[j].peer.Id() })
	return out
}

func (s *Server) send(peer Peer, msg any) bool {
	if err := peer.SendMessage(msg); err != nil {
		log.Printf("[server] send %T to %s failed: %v", msg, peer.Id(), err)
		return false
	}
	return true
}

func (s *Server) broadcastEvent(msg any) {
	for _, ps := range s.sortedPeers() {
		s.send(ps.peer, msg)
	}
}

func (s *Server) forgetLaser(id uint32) {
	for _, ps := range s.peers {
		delete(ps.known, id)
	}
}

// replicate sends every live laser to every peer. A peer's first update for
// a laser carries the initial section; later ones are deltas.
func (s *Server) replicate() {
	if len(s.peers) == 0 {
		return
	}

	type payloads struct{ initial, delta []byte }
	packed := make(map[uint32]*payloads, len(s.lasers))
	pack := func(ls *LaserState, initial bool) []byte {
		p, ok := packed[ls.ID]
		if !ok {
			p = &payloads{}
			packed[ls.ID] = p
		}
		dst := &p.delta
		if initial {
			dst = &p.initial
		}
		if *dst == nil {
			w := bitstream.NewWriter()
			laser.PackUpdate(w, ls.Laser, initial)
			*dst = w.Bytes()
		}
		return *dst
	}

	ids := s.sortedLaserIDs()
	for _, ps := range s.sortedPeers() {
		for _, id := range ids {
			ls := s.lasers[id]
			initial := !ps.known[id]

			msg := messages.LaserUpdate{LaserID: id, Payload: pack(ls, initial)}
			if initial {
				msg.Datablock = ls.Datablock
			}
			if s.send(ps.peer, msg) && initial {
				ps.known[id] = true
			}
		}
	}
}
