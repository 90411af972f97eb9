package world

import (
	"github.com/zyedidia/generic/mapset"
)

// XY is a grid coordinate usable as a set element.
type XY struct {
	X int
	Y int
}

// VisibleWithin returns the set of in-bounds coordinates within
// Euclidean distance radius of (cx, cy). This is the transient
// "currently visible" set that renderers recompute every frame from
// the live robot position and stats; unlike DiscoverRadius it
// persists nothing on the map.
func VisibleWithin(m *Map, cx, cy, radius int) mapset.Set[XY] {
	visible := mapset.New[XY]()
	if m == nil || radius < 0 {
		return visible
	}
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !m.InBounds(x, y) {
				continue
			}
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= radius*radius {
				visible.Put(XY{X: x, Y: y})
			}
		}
	}
	return visible
}
