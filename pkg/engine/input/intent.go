// Package input translates device key codes into high-level game
// intents: raw codes pass through a bindings map and come out as the
// player's intent for the turn.
package input

// Direction is a requested movement axis step.
type Direction int

// Direction constants
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Intent is what the player wants this turn. One event may carry
// module toggles alongside a move: toggles never consume the move
// slot, so enabling the sensor and stepping north in the same event
// runs that step's discovery at the boosted radius. The zero Intent
// is a handled no-op.
type Intent struct {
	Move    Direction
	Toggles []int // module list indexes to flip, in order
	Quit    bool
}

// bindings maps raw key codes to intents. Multiple codes may point to
// the same intent (arrows, Vim keys and WASD all move).
var bindings = map[string]Intent{
	// Movement
	"arrow_up":    {Move: DirUp},
	"w":           {Move: DirUp},
	"k":           {Move: DirUp},
	"arrow_down":  {Move: DirDown},
	"s":           {Move: DirDown},
	"j":           {Move: DirDown},
	"arrow_left":  {Move: DirLeft},
	"a":           {Move: DirLeft},
	"h":           {Move: DirLeft},
	"arrow_right": {Move: DirRight},
	"d":           {Move: DirRight},
	"l":           {Move: DirRight},

	// Module toggles by fixed list index
	"1": {Toggles: []int{0}},
	"2": {Toggles: []int{1}},

	// Quit (voluntary forfeit)
	"q":      {Quit: true},
	"escape": {Quit: true},
	"ctrl_c": {Quit: true},
}

// MapToIntent applies the current bindings to a raw key code.
// Unknown codes map to the zero Intent, which the engine ignores.
func MapToIntent(code string) Intent {
	if in, ok := bindings[code]; ok {
		return in
	}
	return Intent{}
}
