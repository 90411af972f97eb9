package state

import (
	"gridbot/pkg/game/modules"
)

// Default robot stats.
const (
	BaseVisionRadius   = 3
	BaseMoveEnergyCost = 2
	StartingEnergy     = 100
)

// Robot is the player-controlled unit: position, resources and the
// ordered module list. Modules keep a stable index so they can be
// toggled by number.
type Robot struct {
	X int
	Y int

	Keys   int
	Energy int
	Alive  bool

	BaseVisionRadius   int
	BaseMoveEnergyCost int

	Modules []modules.Module
}

// NewRobot creates a live robot at (x, y) with the standard module
// loadout: sensor at index 0, efficiency at index 1, both disabled.
func NewRobot(x, y int) *Robot {
	return &Robot{
		X:                  x,
		Y:                  y,
		Energy:             StartingEnergy,
		Alive:              true,
		BaseVisionRadius:   BaseVisionRadius,
		BaseMoveEnergyCost: BaseMoveEnergyCost,
		Modules: []modules.Module{
			modules.NewSensor(),
			modules.NewEfficiency(),
		},
	}
}

// VisionRadius folds the base radius through the module list.
func (r *Robot) VisionRadius() int {
	return modules.FoldVision(r.Modules, r.BaseVisionRadius)
}

// MoveEnergyCost folds the base cost through the module list.
func (r *Robot) MoveEnergyCost() int {
	return modules.FoldMoveCost(r.Modules, r.BaseMoveEnergyCost)
}

// AddKey adds a key to the inventory; there is no upper bound.
func (r *Robot) AddKey() {
	r.Keys++
}

// UseKey consumes one key and reports success. This is the only way
// past a door tile; with no keys it mutates nothing.
func (r *Robot) UseKey() bool {
	if r.Keys == 0 {
		return false
	}
	r.Keys--
	return true
}

// DamageByTrap kills the robot outright. Traps are instant death, not
// energy damage.
func (r *Robot) DamageByTrap() {
	r.Alive = false
}

// ConsumeEnergy drains amount, clamping at zero. Reaching zero is
// fatal, and death is terminal: nothing revives the robot.
func (r *Robot) ConsumeEnergy(amount int) {
	r.Energy -= amount
	if r.Energy <= 0 {
		r.Energy = 0
		r.Alive = false
	}
}

// MoveTo overwrites the position unconditionally. Legality is the
// engine's business; callers have already vetted the destination.
func (r *Robot) MoveTo(x, y int) {
	r.X = x
	r.Y = y
}

// ToggleModule flips the module at index i. Out-of-range indexes are
// silently ignored.
func (r *Robot) ToggleModule(i int) {
	if i < 0 || i >= len(r.Modules) {
		return
	}
	r.Modules[i].Toggle()
}
