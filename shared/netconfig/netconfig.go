// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// Side identifies which copy of the simulation is running a piece of code.
type Side int

const (
	// SideServer owns authoritative state and decides removal.
	SideServer Side = iota
	// SideClient mirrors replicated state and drives effects.
	SideClient
)

func (s Side) String() string {
	switch s {
	case SideServer:
		return "server"
	case SideClient:
		return "client"
	}
	return "unknown"
}

// Simulation timing.
const (
	TickMs       = 32
	TickRate     = 1000 / TickMs
	TickSeconds  = float64(TickMs) / 1000.0
	DefaultPort  = 7373
	ProtoVersion = "laser-1"
)

// MaxLivingTicks caps projectile lifetime and arming values; they travel as
// 12-bit ranged integers.
const MaxLivingTicks = 4095

// MaxMuzzleSlots bounds the muzzle slot index on the wire.
const MaxMuzzleSlots = 8

// CollisionMask selects which collider classes a ray cast considers.
type CollisionMask uint32

const (
	StaticCollisionMask CollisionMask = 1 << iota
	DynamicCollisionMask

	// ProjectileCollisionMask is what a beam ray is cast against.
	ProjectileCollisionMask = StaticCollisionMask | DynamicCollisionMask
)

// Turret states carried in NetTurretData.State.
const (
	TurretActive    = 0
	TurretDestroyed = 1
)
