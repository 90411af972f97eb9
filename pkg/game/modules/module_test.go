package modules

import (
	"testing"
)

func TestSensor(t *testing.T) {
	s := NewSensor()

	if s.Enabled() {
		t.Error("sensor should start disabled")
	}
	if got := s.ModifyVisionRadius(3); got != 3 {
		t.Errorf("disabled sensor: got radius %d, want 3", got)
	}

	s.Toggle()
	if got := s.ModifyVisionRadius(3); got != 5 {
		t.Errorf("enabled sensor: got radius %d, want 5", got)
	}
	if got := s.ModifyMoveEnergyCost(2); got != 2 {
		t.Errorf("sensor should not touch move cost, got %d", got)
	}

	s.Toggle()
	if s.Enabled() {
		t.Error("second toggle should disable")
	}
}

func TestEfficiency(t *testing.T) {
	e := NewEfficiency()

	if got := e.ModifyMoveEnergyCost(2); got != 2 {
		t.Errorf("disabled efficiency: got cost %d, want 2", got)
	}

	e.Toggle()

	tests := []struct {
		base, want int
	}{
		{2, 1},
		{3, 1},
		{4, 2},
		{1, 1},
	}
	for _, tt := range tests {
		if got := e.ModifyMoveEnergyCost(tt.base); got != tt.want {
			t.Errorf("base %d: got cost %d, want %d", tt.base, got, tt.want)
		}
	}

	if got := e.ModifyVisionRadius(3); got != 3 {
		t.Errorf("efficiency should not touch vision, got %d", got)
	}
}

func TestFoldOrder(t *testing.T) {
	s := NewSensor()
	e := NewEfficiency()
	s.Toggle()
	e.Toggle()
	mods := []Module{s, e}

	if got := FoldVision(mods, 3); got != 5 {
		t.Errorf("got vision %d, want 5", got)
	}
	if got := FoldMoveCost(mods, 2); got != 1 {
		t.Errorf("got cost %d, want 1", got)
	}
}

func TestFoldDisabledIsIdentity(t *testing.T) {
	mods := []Module{NewSensor(), NewEfficiency()}

	if got := FoldVision(mods, 3); got != 3 {
		t.Errorf("got vision %d, want 3", got)
	}
	if got := FoldMoveCost(mods, 2); got != 2 {
		t.Errorf("got cost %d, want 2", got)
	}
}
