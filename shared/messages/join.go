package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request joining the arena.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// The datablocks follow as LaserDataBlock messages.
type JoinAccepted struct {
	NetworkID  esync.NetworkId
	ServerName string
	Arena      string
	TickRate   int
	Datablocks int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
