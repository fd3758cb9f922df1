package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/fonts"
	"github.com/automoto/laserbeam-mp/scenes"
	"github.com/automoto/laserbeam-mp/shared/protocol"
	"github.com/automoto/laserbeam-mp/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.UI.FontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	settings := systems.DefaultSettings()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.FromSaved(&settings, saved)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		settings.LastAddress = config.Net.Address
		g.scene = scenes.NewAutoConnectScene(g, &settings)
	} else {
		g.scene = scenes.NewConnectScene(g, &settings, "")
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	address := flag.String("connect", "", "Connect straight to host:port")
	debug := flag.Bool("debug", false, "Draw simulated beam segments")
	flag.Parse()

	if *address != "" {
		config.Net.Address = *address
		config.Debug.SkipMenu = true
	}
	config.Render.DebugSegments = *debug

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Laserbeam Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
