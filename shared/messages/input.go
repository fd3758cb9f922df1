package messages

// FireRequest asks the server to fire a turret out of turn. The server
// honours it only if the turret is alive and off cooldown.
type FireRequest struct {
	TurretIndex int // Index in the arena's sorted turret list
	Slot        int
}
