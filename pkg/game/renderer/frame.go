package renderer

import (
	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/state"
)

// CellView classifies how a cell renders this frame.
type CellView int

// Cell view classes
const (
	CellHidden     CellView = iota // never been within vision range
	CellDiscovered                 // fog-of-war memory: seen before, out of view now
	CellVisible                    // within vision radius right now
)

// ModuleStatus is one HUD entry for an attached module.
type ModuleStatus struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Frame is everything a backend (or the watch feed) needs to draw one
// turn: per-cell glyphs with visibility already applied, the view
// classification for styling, and the HUD data. It is computed once
// per turn from live state and never written back.
type Frame struct {
	Width  int
	Height int

	Glyphs [][]rune     // [y][x]; hidden cells hold the hidden glyph
	Views  [][]CellView // [y][x]

	RobotX int
	RobotY int

	Energy  int
	Keys    int
	Modules []ModuleStatus
	Status  state.Status
}

// Snapshot builds the frame for the current turn. The visible set is
// recomputed here on every call from the live robot position and
// stats; only DiscoverRadius, inside the move path, touches lasting
// state, so rendering stays a pure read.
func Snapshot(g *state.Game) *Frame {
	m := g.Map
	visible := world.VisibleWithin(m, g.Robot.X, g.Robot.Y, g.Robot.VisionRadius())

	f := &Frame{
		Width:  m.Width(),
		Height: m.Height(),
		Glyphs: make([][]rune, m.Height()),
		Views:  make([][]CellView, m.Height()),
		RobotX: g.Robot.X,
		RobotY: g.Robot.Y,
		Energy: g.Robot.Energy,
		Keys:   g.Robot.Keys,
		Status: g.Status,
	}
	for _, mod := range g.Robot.Modules {
		f.Modules = append(f.Modules, ModuleStatus{Name: mod.Name(), Enabled: mod.Enabled()})
	}

	for y := 0; y < m.Height(); y++ {
		f.Glyphs[y] = make([]rune, m.Width())
		f.Views[y] = make([]CellView, m.Width())
		for x := 0; x < m.Width(); x++ {
			t := m.At(x, y)

			view := CellHidden
			if visible.Has(world.XY{X: x, Y: y}) {
				view = CellVisible
			} else if t.Discovered {
				view = CellDiscovered
			}
			f.Views[y][x] = view

			glyph := world.HiddenGlyph
			switch {
			case x == g.Robot.X && y == g.Robot.Y:
				glyph = world.RobotGlyph
			case view != CellHidden:
				glyph = t.Type.Glyph()
			}
			f.Glyphs[y][x] = glyph
		}
	}

	return f
}

// RowStrings renders the glyph grid as plain strings, used by the
// watch feed and by tests asserting output.
func (f *Frame) RowStrings() []string {
	rows := make([]string, f.Height)
	for y := 0; y < f.Height; y++ {
		rows[y] = string(f.Glyphs[y])
	}
	return rows
}
