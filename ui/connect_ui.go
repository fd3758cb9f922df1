package ui

import (
	"bytes"
	"image/color"
	"log"
	"net"

	"github.com/automoto/laserbeam-mp/components"
	"github.com/automoto/laserbeam-mp/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConnectUI is the direct connect screen with the client options panel.
type ConnectUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	OnConnect func(address, playerName string)
	OnQuit    func()

	hostInput   *widget.TextInput
	portInput   *widget.TextInput
	nameInput   *widget.TextInput
	statusLabel *widget.Label
	connectBtn  *widget.Button

	volumeLabel     *widget.Label
	radarLabel      *widget.Label
	resolutionLabel *widget.Label
	fullscreenLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewConnectUI(settings *components.SettingsData, onConnect func(address, playerName string), onQuit func()) *ConnectUI {
	ui := &ConnectUI{
		Settings:  settings,
		OnConnect: onConnect,
		OnQuit:    onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.prefill()
	return ui
}

func (ui *ConnectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *ConnectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{12, 12, 20, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LASERBEAM ARENA", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 80, 60, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildConnectPanel())
	contentContainer.AddChild(ui.buildOptionsPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ConnectUI) textInput(width int, placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (ui *ConnectUI) row(label string, children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	for _, c := range children {
		row.AddChild(c)
	}
	return row
}

func (ui *ConnectUI) buildConnectPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.hostInput = ui.textInput(180, "localhost")
	ui.portInput = ui.textInput(80, "7373")
	ui.nameInput = ui.textInput(180, "spectator")

	panel.AddChild(ui.row("Server:", ui.hostInput, ui.portInput))
	panel.AddChild(ui.row("Name:  ", ui.nameInput))

	ui.connectBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Connect", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnConnect != nil {
				ui.OnConnect(ui.address(), ui.playerName())
			}
		}),
	)
	panel.AddChild(ui.connectBtn)

	return panel
}

func (ui *ConnectUI) valueLabel(value string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(value, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
}

func (ui *ConnectUI) changeButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 20)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Change", &ui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			ui.refreshOptions()
			systems.SaveCurrentSettings(ui.Settings)
		}),
	)
}

func (ui *ConnectUI) buildOptionsPanel() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("OPTIONS", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))

	ui.volumeLabel = ui.valueLabel("")
	ui.radarLabel = ui.valueLabel("")
	ui.resolutionLabel = ui.valueLabel("")
	ui.fullscreenLabel = ui.valueLabel("")

	panel.AddChild(ui.row("Sound:     ", ui.volumeLabel, ui.changeButton(func() {
		systems.CycleSFXVolume(ui.Settings)
	})))
	panel.AddChild(ui.row("Radar:     ", ui.radarLabel, ui.changeButton(func() {
		systems.CycleRadarRange(ui.Settings)
	})))
	panel.AddChild(ui.row("Window:    ", ui.resolutionLabel, ui.changeButton(func() {
		systems.CycleResolution(ui.Settings)
		systems.ApplyWindow(ui.Settings)
	})))
	panel.AddChild(ui.row("Fullscreen:", ui.fullscreenLabel, ui.changeButton(func() {
		ui.Settings.Fullscreen = !ui.Settings.Fullscreen
		ebiten.SetFullscreen(ui.Settings.Fullscreen)
	})))

	ui.refreshOptions()
	return panel
}

func (ui *ConnectUI) refreshOptions() {
	ui.volumeLabel.Label = systems.VolumeLabel(ui.Settings)
	ui.radarLabel.Label = systems.RadarRangeLabel(ui.Settings)
	ui.resolutionLabel.Label = systems.ResolutionLabel(ui.Settings)
	ui.fullscreenLabel.Label = "Off"
	if ui.Settings.Fullscreen {
		ui.fullscreenLabel.Label = "On"
	}
}

func (ui *ConnectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Quit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnQuit != nil {
				ui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (ui *ConnectUI) prefill() {
	host, port, err := net.SplitHostPort(ui.Settings.LastAddress)
	if err == nil {
		ui.hostInput.SetText(host)
		ui.portInput.SetText(port)
	}
	ui.nameInput.SetText(ui.Settings.PlayerName)
}

func (ui *ConnectUI) address() string {
	host := ui.hostInput.GetText()
	if host == "" {
		host = "localhost"
	}
	port := ui.portInput.GetText()
	if port == "" {
		port = "7373"
	}
	return net.JoinHostPort(host, port)
}

func (ui *ConnectUI) playerName() string {
	if name := ui.nameInput.GetText(); name != "" {
		return name
	}
	return "spectator"
}

func (ui *ConnectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *ConnectUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *ConnectUI) Update() {
	ui.UI.Update()
}
