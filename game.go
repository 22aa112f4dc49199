package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
	"infinite-canvas/ui"
)

// Game is the Ebitengine surface host. It feeds polled input to the router
// and repaints only after the router asks for a redraw.
type Game struct {
	screenWidth  int
	screenHeight int

	router *input.Router
	poller *input.Poller
	render canvas.RenderFunc
	hud    *ui.HUD

	dirty bool
}

func NewGame(cfg Config) *Game {
	g := &Game{
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		poller:       input.NewPoller(),
		dirty:        true,
	}

	var observer input.Observer
	if cfg.Debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		observer = input.NewLogObserver(logger)
	}
	g.router = input.NewRouter(g, cfg.NewTransform(), input.Options{
		ZoomIntensity: cfg.Input.ZoomIntensity,
		Observer:      observer,
	})

	var grid *canvas.GridStyle
	if cfg.ShowGrid {
		grid = &canvas.GridStyle{Spacing: GridSize, Line: ColorGrid, OriginCross: ColorOriginCross}
	}
	g.render = canvas.Placeholder(ColorBackground, grid)

	if cfg.ShowHUD {
		g.hud = &ui.HUD{
			Face:     LoadHUDFont(cfg.FontPath),
			DrawText: DrawTextLines,
			Color:    ColorHUDText,
			Visible:  true,
		}
	}
	return g
}

// SetSize records the surface size in pixels.
func (g *Game) SetSize(width, height int) {
	g.screenWidth = width
	g.screenHeight = height
}

// RequestRedraw marks the surface stale; the next Draw repaints it.
func (g *Game) RequestRedraw() {
	g.dirty = true
}

func (g *Game) Update() error {
	gestures := g.router.Gestures()
	pan, pinch, mods := gestures.Pan(), gestures.Pinch(), gestures.Modifiers()

	for _, ev := range g.poller.Poll() {
		g.router.Handle(ev)
	}

	// The HUD reflects gesture state, so it needs a repaint on any change.
	if g.hud != nil && (pan != gestures.Pan() || pinch != gestures.Pinch() || mods != gestures.Modifiers()) {
		g.dirty = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	t := g.router.Transform().Snapshot()
	g.render(screen, t)
	g.hud.Draw(screen, t, g.router.Gestures())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.router.Handle(input.ResizeEvent{Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

// RunWindow opens the window and blocks until it is closed.
func RunWindow(cfg Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Draw skips frames when nothing changed, so the last frame must persist.
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("starting viewport %dx%d", cfg.Window.Width, cfg.Window.Height)
	return ebiten.RunGame(NewGame(cfg))
}
