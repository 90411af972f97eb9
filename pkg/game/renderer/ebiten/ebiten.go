// Package ebiten is the graphical renderer backend: glyph tiles drawn
// with a bitmap font in a desktop window. The window loop runs on the
// main goroutine and feeds intents to the core turn loop over a
// channel; RenderFrame swaps in the latest snapshot and Draw always
// paints it.
package ebiten

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/basicfont"

	"gridbot/pkg/engine/input"
	"gridbot/pkg/game/renderer"
	"gridbot/pkg/game/state"
)

// Tile and HUD geometry in pixels.
const (
	cellW    = 14
	cellH    = 16
	marginX  = 8
	hudLines = 4
)

var (
	colVisible = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	colMemory  = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	colRobot   = color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
	colHUD     = color.RGBA{R: 0xc0, G: 0xc0, B: 0x40, A: 0xff}
	colDanger  = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// EbitenRenderer implements both the game's Renderer contract and
// ebiten's Game interface.
type EbitenRenderer struct {
	mu    sync.Mutex
	frame *renderer.Frame

	face text.Face

	intents chan input.Intent
	done    chan struct{}
}

// New creates a new ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		face:    text.NewGoXFace(basicfont.Face7x13),
		intents: make(chan input.Intent, 8),
		done:    make(chan struct{}),
	}
}

// Init is a no-op; the window starts in Run.
func (e *EbitenRenderer) Init() error {
	return nil
}

// Run starts the window loop. It must be called from the main
// goroutine, with the turn loop running beside it. It returns when
// the window closes.
func (e *EbitenRenderer) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(e)
	close(e.done)
	return err
}

// Update maps just-pressed keys to one intent per tick. Unlike the
// terminal backends a single tick can combine a module toggle with a
// move, which is exactly the combined-intent path the engine supports.
func (e *EbitenRenderer) Update() error {
	var in input.Intent

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		in.Toggles = append(in.Toggles, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		in.Toggles = append(in.Toggles, 1)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		in.Move = input.DirUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		in.Move = input.DirDown
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		in.Move = input.DirLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		in.Move = input.DirRight
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
	}

	if in.Move != input.DirNone || len(in.Toggles) > 0 || in.Quit {
		select {
		case e.intents <- in:
		default:
			// Turn loop is busy; dropping beats stalling the window.
		}
	}

	return nil
}

// drawText draws s with its top-left corner at (x, y). text/v2 uses
// the top-left as the origin point.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.face, op)
}

// Draw paints the latest snapshot.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.mu.Lock()
	f := e.frame
	e.mu.Unlock()
	if f == nil {
		return
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			g := f.Glyphs[y][x]
			if g == ' ' {
				continue
			}
			clr := color.Color(colVisible)
			switch {
			case x == f.RobotX && y == f.RobotY:
				clr = colRobot
			case f.Views[y][x] == renderer.CellDiscovered:
				clr = colMemory
			}
			e.drawText(screen, string(g), marginX+x*cellW, y*cellH, clr)
		}
	}

	hudY := (f.Height + 1) * cellH
	hud := fmt.Sprintf("%s %d   %s %d", gotext.Get("Energy:"), f.Energy, gotext.Get("Keys:"), f.Keys)
	e.drawText(screen, hud, marginX, hudY, colHUD)
	for i, m := range f.Modules {
		label := gotext.Get("disabled")
		clr := color.Color(colMemory)
		if m.Enabled {
			label = gotext.Get("enabled")
			clr = colRobot
		}
		e.drawText(screen, fmt.Sprintf("%d: %s [%s]", i+1, m.Name, label), marginX, hudY+(i+1)*cellH, clr)
	}

	msgY := hudY + (len(f.Modules)+1)*cellH
	switch f.Status {
	case state.Won:
		e.drawText(screen, gotext.Get("The robot reached the exit!"), marginX, msgY, colRobot)
	case state.Lost:
		e.drawText(screen, gotext.Get("The robot was lost."), marginX, msgY, colDanger)
	}
}

// Layout sizes the logical screen to the map plus the HUD.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.mu.Lock()
	f := e.frame
	e.mu.Unlock()
	if f == nil {
		return 640, 480
	}
	return f.Width*cellW + 2*marginX, (f.Height + hudLines + 3) * cellH
}

// RenderFrame publishes a snapshot for Draw to pick up.
func (e *EbitenRenderer) RenderFrame(f *renderer.Frame) {
	e.mu.Lock()
	e.frame = f
	e.mu.Unlock()
}

// NextIntent receives the next intent from the window loop. A closed
// window reads as quit.
func (e *EbitenRenderer) NextIntent() (input.Intent, error) {
	select {
	case in := <-e.intents:
		return in, nil
	case <-e.done:
		return input.Intent{Quit: true}, nil
	}
}

// Close is a no-op; the window lives until the player closes it.
func (e *EbitenRenderer) Close() {}
