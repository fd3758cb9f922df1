package network

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/automoto/laserbeam-mp/shared/bitstream"
	"github.com/automoto/laserbeam-mp/shared/laser"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/shared/netconfig"
)

var (
	ErrUnknownDatablock = errors.New("unknown laser datablock")
	ErrUnknownLaser     = errors.New("delta update for unknown laser")
	ErrDatablockLimit   = errors.New("datablock limit reached")
)

// SourceResolver maps a replicated source id to a weak handle on the client's
// copy of that entity.
type SourceResolver func(sourceID uint32) laser.SourceRef

// Registry holds the client's laser replicas and the datablocks they use.
// It is not safe for concurrent use; the scene owns it.
type Registry struct {
	resolve    SourceResolver
	limit      int
	datablocks map[string]*laser.Data
	lasers     map[uint32]*laser.Laser

	decodeErrors int
}

func NewRegistry(resolve SourceResolver, datablockLimit int) *Registry {
	return &Registry{
		resolve:    resolve,
		limit:      datablockLimit,
		datablocks: make(map[string]*laser.Data),
		lasers:     make(map[uint32]*laser.Laser),
	}
}

// AddDatablock decodes and stores a datablock. A datablock with the same name
// replaces the old one for lasers created afterwards.
func (r *Registry) AddDatablock(msg messages.LaserDataBlock) error {
	if _, exists := r.datablocks[msg.Name]; !exists && r.limit > 0 && len(r.datablocks) >= r.limit {
		return fmt.Errorf("datablock %q: %w", msg.Name, ErrDatablockLimit)
	}

	d, err := laser.UnpackData(bitstream.NewReader(msg.Payload), msg.Name)
	if err != nil {
		r.decodeErrors++
		return fmt.Errorf("datablock %q: %w", msg.Name, err)
	}
	r.datablocks[msg.Name] = d
	return nil
}

// Datablock returns a stored datablock by name.
func (r *Registry) Datablock(name string) (*laser.Data, bool) {
	d, ok := r.datablocks[name]
	return d, ok
}

// ApplyUpdate decodes msg onto its replica, creating the replica from an
// initial update. created reports whether a new replica was spawned.
func (r *Registry) ApplyUpdate(msg messages.LaserUpdate) (l *laser.Laser, created bool, err error) {
	u, err := laser.DecodeUpdate(bitstream.NewReader(msg.Payload))
	if err != nil {
		r.decodeErrors++
		return nil, false, fmt.Errorf("laser %d: %w", msg.LaserID, err)
	}

	if l, ok := r.lasers[msg.LaserID]; ok {
		if u.Initial && u.SourceID != l.SourceID {
			l.Bind(r.resolveSource(u.SourceID), u.SourceID)
		}
		l.Apply(u)
		return l, false, nil
	}

	if !u.Initial {
		return nil, false, fmt.Errorf("laser %d: %w", msg.LaserID, ErrUnknownLaser)
	}
	data, ok := r.datablocks[msg.Datablock]
	if !ok {
		return nil, false, fmt.Errorf("laser %d datablock %q: %w", msg.LaserID, msg.Datablock, ErrUnknownDatablock)
	}

	l = laser.New(data, netconfig.SideClient, r.resolveSource(u.SourceID), u.SourceID, u.MuzzleSlot, u.Range, u.Lifetime)
	l.Apply(u)
	r.lasers[msg.LaserID] = l
	return l, true, nil
}

func (r *Registry) resolveSource(id uint32) laser.SourceRef {
	if r.resolve == nil {
		return nil
	}
	return r.resolve(id)
}

// Remove drops a replica. The returned laser is marked removed.
func (r *Registry) Remove(id uint32) (*laser.Laser, bool) {
	l, ok := r.lasers[id]
	if !ok {
		return nil, false
	}
	l.Despawn()
	delete(r.lasers, id)
	return l, true
}

func (r *Registry) Get(id uint32) (*laser.Laser, bool) {
	l, ok := r.lasers[id]
	return l, ok
}

func (r *Registry) Len() int {
	return len(r.lasers)
}

// IDs returns replica ids in ascending order.
func (r *Registry) IDs() []uint32 {
	ids := make([]uint32, 0, len(r.lasers))
	for id := range r.lasers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DecodeErrors counts payloads that failed to decode.
func (r *Registry) DecodeErrors() int {
	return r.decodeErrors
}

// Reset drops every replica and datablock, used when leaving a server.
func (r *Registry) Reset() {
	for id := range r.lasers {
		r.Remove(id)
	}
	clear(r.datablocks)
	if r.decodeErrors > 0 {
		log.Printf("[client] registry reset after %d decode errors", r.decodeErrors)
	}
	r.decodeErrors = 0
}
