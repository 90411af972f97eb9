// Package state holds the per-session game state: the map, the robot
// and the terminal-state machine.
package state

import (
	"fmt"

	"gridbot/pkg/engine/world"
)

// Status is the game's lifecycle state. It starts Running and
// transitions exactly once, to Won or Lost, never back.
type Status int

// Status constants
const (
	Running Status = iota
	Won
	Lost
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Game owns the map and the robot for one session. Single actor,
// single goroutine: all mutation happens between one input event and
// the next render.
type Game struct {
	Map   *world.Map
	Robot *Robot

	ExitX int
	ExitY int

	Status Status
}

// NewGame parses a layout, places the robot on the 'S' marker
// (rewritten to floor in the working grid; the 'E' tile stays Exit)
// and runs the initial discovery sweep at the starting vision radius.
// Exactly one 'S' and one 'E' are required; anything else fails fast.
func NewGame(rows []string) (*Game, error) {
	sx, sy, ex, ey, err := findMarkers(rows)
	if err != nil {
		return nil, err
	}

	m, err := world.Parse(rows)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Map:   m,
		Robot: NewRobot(sx, sy),
		ExitX: ex,
		ExitY: ey,
	}
	g.Map.DiscoverRadius(sx, sy, g.Robot.VisionRadius())

	return g, nil
}

// findMarkers locates the start and exit markers in the layout text.
func findMarkers(rows []string) (sx, sy, ex, ey int, err error) {
	starts := 0
	exits := 0
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'S':
				sx, sy = x, y
				starts++
			case 'E':
				ex, ey = x, y
				exits++
			}
		}
	}
	if starts != 1 {
		return 0, 0, 0, 0, fmt.Errorf("layout must contain exactly one 'S' start marker, found %d", starts)
	}
	if exits != 1 {
		return 0, 0, 0, 0, fmt.Errorf("layout must contain exactly one 'E' exit marker, found %d", exits)
	}
	return sx, sy, ex, ey, nil
}

// Finish moves the state machine to a terminal status. Transitions
// out of a terminal status, or to Running, are ignored.
func (g *Game) Finish(s Status) {
	if g.Status != Running || s == Running {
		return
	}
	g.Status = s
}
