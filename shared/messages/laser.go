package messages

// LaserDataBlock carries one bitstream-packed laser datablock. Sent to each
// client once on join, before any LaserUpdate that references it.
type LaserDataBlock struct {
	Name    string
	Payload []byte
}

// LaserUpdate carries one bitstream-packed per-tick record. Datablock is only
// set on the first update a client receives for a laser.
type LaserUpdate struct {
	LaserID   uint32
	Datablock string
	Payload   []byte
}

// LaserHitEvent is broadcast for every damage pulse.
type LaserHitEvent struct {
	LaserID         uint32
	SourceNetworkID uint // Turret that fired
	TargetNetworkID uint // Turret that was hit, 0 for walls and ground
	Tick            uint32
	X, Y, Z         float64
	NX, NY, NZ      float64
	Damage          int
}

// Despawn reasons.
const (
	DespawnExpired = iota
	DespawnSourceLost
	DespawnShutdown
)

// LaserDespawnEvent is broadcast when the server removes a laser.
type LaserDespawnEvent struct {
	LaserID uint32
	Reason  int
}

// TurretDestroyedEvent is broadcast when a turret's health reaches zero.
type TurretDestroyedEvent struct {
	NetworkID uint
	KillerID  uint
}
