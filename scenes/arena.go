package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/laserbeam-mp/archetypes"
	"github.com/automoto/laserbeam-mp/assets"
	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/network"
	"github.com/automoto/laserbeam-mp/systems"
	"github.com/automoto/laserbeam-mp/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene spectates a server arena: it mirrors turrets from snapshots,
// runs replica lasers and sends fire requests.
type ArenaScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	settings     *components.SettingsData
	lasers       *systems.LaserSystem
	beams        *systems.BeamRenderer
	once         sync.Once
	left         bool
}

func NewArenaScene(sc SceneChanger, client *network.Client, settings *components.SettingsData) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		netClient:    client,
		settings:     settings,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.left {
		return
	}

	state := as.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		msg := "Disconnected from server"
		if err := as.netClient.LastError(); err != nil {
			msg = err.Error()
		}
		log.Printf("[arena] %s, returning to connect screen", msg)
		as.leave(msg)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		as.leave("")
		return
	}

	if snap := as.netClient.LatestSnapshot(); snap != nil {
		systems.ApplySnapshot(as.ecsWorld, systems.DecodeSnapshot(*snap))
	}

	as.ecsWorld.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	if as.ecsWorld == nil || as.left {
		return
	}

	as.ecsWorld.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecsWorld = ecs.NewECS(donburi.NewWorld())

	name := as.netClient.Arena()
	arena, err := assets.LoadArena(name)
	if err != nil {
		log.Printf("[arena] %v, falling back to %q", err, cfg.Server.Arena)
		if arena, err = assets.LoadArena(cfg.Server.Arena); err != nil {
			as.leave(fmt.Sprintf("Unknown arena %q", name))
			return
		}
	}
	factory.CreateArena(as.ecsWorld, arena)
	factory.CreateCamera(as.ecsWorld, float64(arena.MapWidth)/2, float64(arena.MapHeight)/2)

	settingsEntry := archetypes.Settings.Spawn(as.ecsWorld)
	components.Settings.Set(settingsEntry, as.settings)

	tps := ebiten.TPS()
	as.lasers = systems.NewLaserSystem(as.netClient, as.ecsWorld.World, tps)
	as.beams = systems.NewBeamRenderer()

	sendFn := func(msg any) error {
		if as.netClient.State() != network.StateJoinedGame {
			return fmt.Errorf("not in game (%s)", as.netClient.State())
		}
		return as.netClient.SendMessage(msg)
	}

	as.ecsWorld.AddSystem(systems.UpdateCamera)
	as.ecsWorld.AddSystem(systems.NewFireControl(sendFn).Update)
	as.ecsWorld.AddSystem(systems.NewTurretInterpSystem(as.netClient.TickRate, tps))
	as.ecsWorld.AddSystem(as.lasers.Update)
	as.ecsWorld.AddSystem(systems.NewEventSystem(as.netClient))
	as.ecsWorld.AddSystem(systems.UpdateEffects)
	as.ecsWorld.AddSystem(systems.UpdateAudio)

	as.ecsWorld.AddRenderer(archetypes.LayerWorld, systems.DrawArena)
	as.ecsWorld.AddRenderer(archetypes.LayerWorld, systems.DrawTurrets)
	as.ecsWorld.AddRenderer(archetypes.LayerWorld, as.beams.Draw)
	as.ecsWorld.AddRenderer(archetypes.LayerWorld, systems.DrawParticles)
	as.ecsWorld.AddRenderer(archetypes.LayerHUD, systems.NewHUDRenderer(as.hudStatus))
	as.ecsWorld.AddRenderer(archetypes.LayerHUD, systems.DrawRadar)

	log.Printf("[arena] joined %q on %s as network id %d", arena.Name, as.netClient.ServerName(), as.netClient.NetworkID())
}

func (as *ArenaScene) hudStatus() systems.HUDStatus {
	return systems.HUDStatus{
		ServerName: as.netClient.ServerName(),
		Connection: as.netClient.State().String(),
		DecodeErrs: as.lasers.Registry.DecodeErrors(),
		Replicas:   as.lasers.Registry.Len(),
	}
}

// leave tears the scene down and returns to the connect screen.
func (as *ArenaScene) leave(status string) {
	if as.left {
		return
	}
	as.left = true

	if as.ecsWorld != nil {
		if entry, ok := components.Settings.First(as.ecsWorld.World); ok {
			*as.settings = *components.Settings.Get(entry)
		}
		if as.lasers != nil {
			as.lasers.Clear(as.ecsWorld)
		}
		systems.StopHum(as.ecsWorld)
	}
	if as.beams != nil {
		as.beams.Dispose()
	}
	as.netClient.Disconnect()
	systems.SaveCurrentSettings(as.settings)

	as.sceneChanger.ChangeScene(NewConnectScene(as.sceneChanger, as.settings, status))
}
