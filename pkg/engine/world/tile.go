// Package world provides the tile-grid primitives for gridbot:
// tile types, the map, and radius-based discovery.
// These are engine-level constructs usable by any tile-based game.
package world

// TileType identifies what occupies a grid cell. The set is closed:
// a tile's type may be rewritten at runtime (door to empty, key to
// empty) but never to or from Wall.
type TileType int

// Tile type constants
const (
	Empty TileType = iota
	Wall
	Key
	Door
	Trap
	Exit
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Key:
		return "Key"
	case Door:
		return "Door"
	case Trap:
		return "Trap"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Glyph returns the display rune for a tile type. The mapping is
// total: values outside the known set map to '?'. Every renderer
// backend and any test asserting output share this table.
func (t TileType) Glyph() rune {
	switch t {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Key:
		return 'K'
	case Door:
		return 'D'
	case Trap:
		return '^'
	case Exit:
		return 'E'
	default:
		return '?'
	}
}

// Display runes that have no tile type of their own.
const (
	RobotGlyph  = 'R'
	HiddenGlyph = ' '
)

// Tile is a single cell: its type plus whether the robot has ever had
// it within vision range. Discovered is monotonic; Map.DiscoverRadius
// sets it and nothing clears it.
type Tile struct {
	Type       TileType
	Discovered bool
}
