// Package modules implements the robot's togglable stat-modifying
// capabilities. A module transforms a base stat (vision radius or
// move energy cost) while enabled; disabled modules are identity
// transforms on both stats.
package modules

// Module is a togglable capability that alters a derived robot stat.
// Both Modify methods are pure functions of the enabled flag and the
// variant.
type Module interface {
	Name() string
	Enabled() bool
	Toggle()
	ModifyVisionRadius(base int) int
	ModifyMoveEnergyCost(base int) int
}

// toggle holds the shared enabled/disabled state for module variants.
type toggle struct {
	enabled bool
}

// Enabled returns whether the module is active
func (t *toggle) Enabled() bool {
	return t.enabled
}

// Toggle flips the module as a unit
func (t *toggle) Toggle() {
	t.enabled = !t.enabled
}

// Sensor extends the vision radius by 2 while enabled.
type Sensor struct {
	toggle
}

// NewSensor creates a disabled sensor module
func NewSensor() *Sensor {
	return &Sensor{}
}

// Name returns the display name of the module
func (s *Sensor) Name() string {
	return "Sensor"
}

// ModifyVisionRadius boosts the radius when enabled
func (s *Sensor) ModifyVisionRadius(base int) int {
	if !s.enabled {
		return base
	}
	return base + 2
}

// ModifyMoveEnergyCost is identity; the sensor does not touch movement
func (s *Sensor) ModifyMoveEnergyCost(base int) int {
	return base
}

// Efficiency halves the move energy cost (floor division, minimum 1)
// while enabled.
type Efficiency struct {
	toggle
}

// NewEfficiency creates a disabled efficiency module
func NewEfficiency() *Efficiency {
	return &Efficiency{}
}

// Name returns the display name of the module
func (e *Efficiency) Name() string {
	return "Efficiency"
}

// ModifyVisionRadius is identity; efficiency does not touch vision
func (e *Efficiency) ModifyVisionRadius(base int) int {
	return base
}

// ModifyMoveEnergyCost halves the cost when enabled, never below 1
func (e *Efficiency) ModifyMoveEnergyCost(base int) int {
	if !e.enabled {
		return base
	}
	cost := base / 2
	if cost < 1 {
		cost = 1
	}
	return cost
}

// FoldVision applies each module to the base vision radius in list
// order, each consuming the previous result. Modules touching the
// same stat therefore compose left to right rather than implicitly.
func FoldVision(mods []Module, base int) int {
	for _, m := range mods {
		base = m.ModifyVisionRadius(base)
	}
	return base
}

// FoldMoveCost applies each module to the base move energy cost in
// list order.
func FoldMoveCost(mods []Module, base int) int {
	for _, m := range mods {
		base = m.ModifyMoveEnergyCost(base)
	}
	return base
}
