package protocol

import (
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition   uint = 10
	SyncIDNetTurret     uint = 11
	SyncIDNetArenaState uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetTurret   uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetTurret,
		netcomponents.NetTurretData{},
		netcomponents.NetTurret,
		esync.WithInterpFn(InterpIDNetTurret, netcomponents.LerpNetTurret),
	); err != nil {
		return err
	}

	// ArenaState: no interpolation (discrete state)
	if err := esync.RegisterComponent(
		SyncIDNetArenaState,
		netcomponents.NetArenaStateData{},
		netcomponents.NetArenaState,
	); err != nil {
		return err
	}

	return nil
}
