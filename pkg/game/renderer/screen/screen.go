// Package screen is the full-screen terminal renderer built on tcell:
// cell-addressed drawing and native key events.
package screen

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"gridbot/pkg/engine/input"
	"gridbot/pkg/game/renderer"
	"gridbot/pkg/game/state"
)

// ScreenRenderer draws frames onto a tcell screen.
type ScreenRenderer struct {
	screen tcell.Screen

	styleVisible tcell.Style
	styleMemory  tcell.Style
	styleRobot   tcell.Style
	styleHUD     tcell.Style
	styleDanger  tcell.Style
	styleGood    tcell.Style
}

// New creates a new full-screen renderer
func New() *ScreenRenderer {
	return &ScreenRenderer{}
}

// Init creates and initializes the tcell screen
func (s *ScreenRenderer) Init() error {
	sc, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := sc.Init(); err != nil {
		return err
	}
	s.screen = sc

	s.styleVisible = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	s.styleMemory = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	s.styleRobot = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	s.styleHUD = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	s.styleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	s.styleGood = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	return nil
}

// RenderFrame draws the map and the HUD and flushes the screen.
func (s *ScreenRenderer) RenderFrame(f *renderer.Frame) {
	s.screen.Clear()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			style := s.styleVisible
			switch {
			case x == f.RobotX && y == f.RobotY:
				style = s.styleRobot
			case f.Views[y][x] == renderer.CellDiscovered:
				style = s.styleMemory
			}
			s.screen.SetContent(x, y, f.Glyphs[y][x], nil, style)
		}
	}

	hudY := f.Height + 1
	s.drawText(0, hudY, s.styleHUD,
		fmt.Sprintf("%s %d   %s %d", gotext.Get("Energy:"), f.Energy, gotext.Get("Keys:"), f.Keys))
	for i, m := range f.Modules {
		style := s.styleMemory
		label := gotext.Get("disabled")
		if m.Enabled {
			style = s.styleGood
			label = gotext.Get("enabled")
		}
		s.drawText(0, hudY+1+i, style, fmt.Sprintf("%d: %s [%s]", i+1, m.Name, label))
	}

	msgY := hudY + 1 + len(f.Modules)
	switch f.Status {
	case state.Won:
		s.drawText(0, msgY, s.styleGood, gotext.Get("The robot reached the exit!"))
	case state.Lost:
		s.drawText(0, msgY, s.styleDanger, gotext.Get("The robot was lost."))
	default:
		s.drawText(0, msgY, s.styleHUD, gotext.Get("arrows/wasd/hjkl: move   1/2: toggle modules   q: quit"))
	}

	s.screen.Show()
}

// drawText writes a string starting at (x, y)
func (s *ScreenRenderer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// NextIntent blocks on the tcell event queue until a key event maps
// to an intent. Resize events trigger a sync and keep waiting.
func (s *ScreenRenderer) NextIntent() (input.Intent, error) {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				return input.Intent{Move: input.DirUp}, nil
			case tcell.KeyDown:
				return input.Intent{Move: input.DirDown}, nil
			case tcell.KeyLeft:
				return input.Intent{Move: input.DirLeft}, nil
			case tcell.KeyRight:
				return input.Intent{Move: input.DirRight}, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return input.Intent{Quit: true}, nil
			case tcell.KeyRune:
				return input.MapToIntent(strings.ToLower(string(ev.Rune()))), nil
			}
		}
	}
}

// Close restores the terminal.
func (s *ScreenRenderer) Close() {
	if s.screen != nil {
		s.screen.Fini()
	}
}
