// Package tui is the line-mode terminal renderer: ANSI-colored text
// over plain stdout, one full redraw per turn, single-key raw-mode
// input.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gridbot/pkg/engine/input"
	"gridbot/pkg/engine/terminal"
	"gridbot/pkg/game/renderer"
	"gridbot/pkg/game/state"
)

// TUIRenderer renders frames as colored text lines.
type TUIRenderer struct {
	colorVisible color.Style
	colorMemory  color.Style
	colorRobot   color.Style
	colorHUD     color.Style
	colorDanger  color.Style
	colorGood    color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the color styles
func (t *TUIRenderer) Init() error {
	t.colorVisible = color.Style{color.FgWhite}
	t.colorMemory = color.Style{color.FgGray}
	t.colorRobot = color.Style{color.FgGreen, color.OpBold}
	t.colorHUD = color.Style{color.FgGray, color.OpBold}
	t.colorDanger = color.Style{color.FgRed, color.OpBold}
	t.colorGood = color.Style{color.FgGreen}
	return nil
}

// clear clears the terminal screen
func (t *TUIRenderer) clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// RenderFrame draws the map and the HUD.
func (t *TUIRenderer) RenderFrame(f *renderer.Frame) {
	t.clear()

	for y := 0; y < f.Height; y++ {
		var line strings.Builder
		for x := 0; x < f.Width; x++ {
			g := string(f.Glyphs[y][x])
			switch {
			case x == f.RobotX && y == f.RobotY:
				line.WriteString(t.colorRobot.Sprint(g))
			case f.Views[y][x] == renderer.CellVisible:
				line.WriteString(t.colorVisible.Sprint(g))
			case f.Views[y][x] == renderer.CellDiscovered:
				line.WriteString(t.colorMemory.Sprint(g))
			default:
				line.WriteString(g)
			}
		}
		fmt.Println(line.String())
	}

	t.printHUD(f)
}

// printHUD renders the status area below the map
func (t *TUIRenderer) printHUD(f *renderer.Frame) {
	width := terminal.GetWidth()
	fmt.Println(t.colorHUD.Sprint(strings.Repeat("─", width)))

	fmt.Printf("%s %s   %s %s\n",
		t.colorHUD.Sprint(gotext.Get("Energy:")),
		energyStyle(t, f.Energy).Sprintf("%d", f.Energy),
		t.colorHUD.Sprint(gotext.Get("Keys:")),
		t.colorVisible.Sprintf("%d", f.Keys))

	for i, m := range f.Modules {
		label := gotext.Get("disabled")
		style := t.colorMemory
		if m.Enabled {
			label = gotext.Get("enabled")
			style = t.colorGood
		}
		fmt.Printf("%s %s [%s]\n",
			t.colorHUD.Sprintf("%d:", i+1),
			t.colorVisible.Sprint(m.Name),
			style.Sprint(label))
	}

	switch f.Status {
	case state.Won:
		fmt.Println(t.colorGood.Sprint(gotext.Get("The robot reached the exit!")))
		fmt.Println(t.colorHUD.Sprint(gotext.Get("(press any key)")))
	case state.Lost:
		fmt.Println(t.colorDanger.Sprint(gotext.Get("The robot was lost.")))
		fmt.Println(t.colorHUD.Sprint(gotext.Get("(press any key)")))
	default:
		fmt.Println(t.colorHUD.Sprint(gotext.Get("arrows/wasd/hjkl: move   1/2: toggle modules   q: quit")))
	}
}

// energyStyle picks a color for the energy readout
func energyStyle(t *TUIRenderer, energy int) color.Style {
	if energy <= state.StartingEnergy/5 {
		return t.colorDanger
	}
	return t.colorGood
}

// NextIntent blocks for one keypress and maps it to an intent.
func (t *TUIRenderer) NextIntent() (input.Intent, error) {
	code, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	return input.MapToIntent(code), nil
}

// Close is a no-op; line mode leaves the terminal as-is.
func (t *TUIRenderer) Close() {}
