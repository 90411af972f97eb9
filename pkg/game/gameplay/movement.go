// Package gameplay implements the turn state machine: interpreting
// input intents and resolving move attempts against the map.
package gameplay

import (
	"gridbot/pkg/engine/input"
	"gridbot/pkg/engine/world"
	"gridbot/pkg/game/state"
)

// ProcessIntent applies one input event to the game. Module toggles
// run before movement and never consume the move slot, so a single
// event may both retune a module and step; the step then uses the
// retuned stats. Once the game is in a terminal state every intent is
// ignored.
func ProcessIntent(g *state.Game, in input.Intent) {
	if g.Status != state.Running {
		return
	}

	for _, i := range in.Toggles {
		g.Robot.ToggleModule(i)
	}

	if in.Quit {
		g.Finish(state.Lost)
		return
	}

	if in.Move != input.DirNone {
		dx, dy := in.Move.Delta()
		TryMove(g, g.Robot.X+dx, g.Robot.Y+dy)
	}
}

// TryMove attempts to step the robot onto (nx, ny), applying the full
// door/energy/tile-effect sequence. Illegal destinations — out of
// bounds, walls, doors without a key — leave every piece of state
// untouched.
func TryMove(g *state.Game, nx, ny int) {
	if g.Status != state.Running {
		return
	}

	dest := g.Map.At(nx, ny)
	if dest == nil || dest.Type == world.Wall {
		return
	}

	if dest.Type == world.Door {
		if !g.Robot.UseKey() {
			// No key: the whole attempt aborts, no energy spent.
			return
		}
		dest.Type = world.Empty
	}

	g.Robot.ConsumeEnergy(g.Robot.MoveEnergyCost())
	if !g.Robot.Alive {
		// Died at the threshold: the position stays put.
		g.Finish(state.Lost)
		return
	}

	g.Robot.MoveTo(nx, ny)

	switch dest.Type {
	case world.Key:
		g.Robot.AddKey()
		dest.Type = world.Empty
	case world.Trap:
		g.Robot.DamageByTrap()
		g.Finish(state.Lost)
	case world.Exit:
		g.Finish(state.Won)
	}

	// A toggle from this same event may have changed the radius, so
	// recompute it rather than caching it before the move.
	g.Map.DiscoverRadius(g.Robot.X, g.Robot.Y, g.Robot.VisionRadius())
}
