package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/laserbeam-mp/components"
	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/network"
	"github.com/automoto/laserbeam-mp/systems"
	"github.com/automoto/laserbeam-mp/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ConnectScene asks for a server address and joins it.
type ConnectScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	settings     *components.SettingsData
	status       string
	autoConnect  bool
	once         sync.Once
	shouldQuit   bool
}

// NewConnectScene creates the connect screen. status is shown on entry, for
// example why the last session ended.
func NewConnectScene(sc SceneChanger, settings *components.SettingsData, status string) *ConnectScene {
	return &ConnectScene{
		sceneChanger: sc,
		settings:     settings,
		status:       status,
	}
}

// NewAutoConnectScene joins settings.LastAddress without waiting for input.
func NewAutoConnectScene(sc SceneChanger, settings *components.SettingsData) *ConnectScene {
	s := NewConnectScene(sc, settings, "")
	s.autoConnect = true
	return s
}

func (s *ConnectScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.connectUI.Update()

	if s.shouldQuit {
		if s.netClient != nil {
			s.netClient.Disconnect()
			s.netClient = nil
		}
		s.sceneChanger.Quit()
		return
	}

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateJoinedGame:
		s.connectUI.SetStatus("Joined! Loading arena...")
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewArenaScene(s.sceneChanger, client, s.settings))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.connectUI.SetStatus(errMsg)
		s.connectUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateConnected:
		s.connectUI.SetStatus("Connected, joining arena...")

	case network.StateDisconnected:
		s.connectUI.SetStatus("Disconnected")
		s.connectUI.SetConnecting(false)
		s.netClient = nil
	}
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{12, 12, 20, 255})

	if s.ecsWorld == nil {
		return
	}

	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateAudio)

	s.connectUI = ui.NewConnectUI(
		s.settings,
		func(address, playerName string) { s.onConnect(address, playerName) },
		func() { s.shouldQuit = true },
	)
	s.connectUI.SetStatus(s.status)

	if s.autoConnect {
		s.onConnect(s.settings.LastAddress, s.settings.PlayerName)
	}
}

func (s *ConnectScene) onConnect(address, playerName string) {
	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	s.settings.LastAddress = address
	s.settings.PlayerName = playerName
	systems.SaveCurrentSettings(s.settings)
	systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)

	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)

	s.netClient = network.NewClient()
	s.netClient.Connect(address, cfg.Net.Version, playerName)
}
