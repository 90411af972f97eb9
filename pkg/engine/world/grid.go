package world

import (
	"fmt"
)

// Map is a rectangular grid of tiles with dense row-major storage
// (index y*width+x). The Map owns its tiles exclusively; callers
// mutate tile state through pointers returned by At.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// Parse builds a map from layout text rows. Width is the longest row;
// columns missing from shorter rows read as walls, so the grid is
// always rectangular. All tiles start undiscovered.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout has no rows")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("layout rows are all empty")
	}

	m := &Map{
		width:  width,
		height: len(rows),
		tiles:  make([]Tile, width*len(rows)),
	}

	for y, row := range rows {
		for x := 0; x < width; x++ {
			t := Wall // absent columns in a short row are walls, not floor
			if x < len(row) {
				t = tileFor(row[x])
			}
			m.tiles[y*width+x] = Tile{Type: t}
		}
	}

	return m, nil
}

// tileFor maps a layout character to its tile type. Characters with
// no meaning here (including the 'S' start marker, which the game
// constructor handles) are floor.
func tileFor(c byte) TileType {
	switch c {
	case '#':
		return Wall
	case 'K':
		return Key
	case 'D':
		return Door
	case '^':
		return Trap
	case 'E':
		return Exit
	default:
		return Empty
	}
}

// Width returns the number of columns in the map
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows in the map
func (m *Map) Height() int {
	return m.height
}

// InBounds checks if an x/y position is within map bounds
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the tile at (x, y), or nil when out of bounds. Callers
// are expected to check InBounds first; a nil result means "not
// there" and must be treated as a no-op, never an error.
func (m *Map) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.tiles[y*m.width+x]
}

// DiscoverRadius marks every in-bounds tile within Euclidean distance
// radius of (cx, cy) as discovered. The comparison is done on squared
// distances so the sweep stays in integer math. Idempotent; a tile
// once discovered stays discovered.
func (m *Map) DiscoverRadius(cx, cy, radius int) {
	if radius < 0 {
		return
	}
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !m.InBounds(x, y) {
				continue
			}
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= radius*radius {
				m.tiles[y*m.width+x].Discovered = true
			}
		}
	}
}

// ForEachTile iterates over all tiles, calling fn for each
func (m *Map) ForEachTile(fn func(x, y int, t *Tile)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fn(x, y, &m.tiles[y*m.width+x])
		}
	}
}
