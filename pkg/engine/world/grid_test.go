package world

import (
	"testing"
)

func mustParse(t *testing.T, rows []string) *Map {
	t.Helper()

	m, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParseDimensions(t *testing.T) {
	m := mustParse(t, []string{
		"####",
		"#..#",
		"####",
	})

	if m.Width() != 4 {
		t.Errorf("got width %d, want 4", m.Width())
	}
	if m.Height() != 3 {
		t.Errorf("got height %d, want 3", m.Height())
	}
}

func TestParseShortRowsPadWithWall(t *testing.T) {
	m := mustParse(t, []string{
		"....",
		"..",
	})

	if got := m.At(3, 0).Type; got != Empty {
		t.Errorf("got %v at (3,0), want Empty", got)
	}
	if got := m.At(2, 1).Type; got != Wall {
		t.Errorf("got %v at (2,1), want Wall", got)
	}
	if got := m.At(3, 1).Type; got != Wall {
		t.Errorf("got %v at (3,1), want Wall", got)
	}
}

func TestParseCharacterMapping(t *testing.T) {
	tests := []struct {
		char byte
		want TileType
	}{
		{'.', Empty},
		{'#', Wall},
		{'K', Key},
		{'D', Door},
		{'^', Trap},
		{'E', Exit},
		{'S', Empty},
		{'x', Empty},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			m := mustParse(t, []string{string(tt.char)})
			if got := m.At(0, 0).Type; got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("expected error for empty layout")
	}
	if _, err := Parse([]string{"", ""}); err == nil {
		t.Error("expected error for all-empty rows")
	}
}

func TestParseTilesStartUndiscovered(t *testing.T) {
	m := mustParse(t, []string{"...", "..."})

	m.ForEachTile(func(x, y int, tile *Tile) {
		if tile.Discovered {
			t.Errorf("tile (%d,%d) discovered at parse time", x, y)
		}
	})
}

func TestAtOutOfBounds(t *testing.T) {
	m := mustParse(t, []string{"...", "..."})

	for _, pos := range []struct{ x, y int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 2},
	} {
		if got := m.At(pos.x, pos.y); got != nil {
			t.Errorf("At(%d,%d) = %v, want nil", pos.x, pos.y, got)
		}
	}
}

func TestInBounds(t *testing.T) {
	m := mustParse(t, []string{"...", "..."})

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 1, false},
		{2, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := m.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDiscoverRadiusEuclidean(t *testing.T) {
	m := mustParse(t, []string{
		".....",
		".....",
		".....",
		".....",
		".....",
	})

	m.DiscoverRadius(2, 2, 2)

	// Distance squared 4 is inside radius 2, distance squared 8 is not.
	if !m.At(4, 2).Discovered {
		t.Error("tile at distance 2 straight out should be discovered")
	}
	if m.At(4, 4).Discovered {
		t.Error("diagonal corner at distance sqrt(8) should stay hidden")
	}
	if !m.At(3, 3).Discovered {
		t.Error("diagonal at distance sqrt(2) should be discovered")
	}
	if !m.At(2, 2).Discovered {
		t.Error("center should be discovered")
	}
}

func TestDiscoverRadiusMonotonic(t *testing.T) {
	m := mustParse(t, []string{".....", ".....", "....."})

	m.DiscoverRadius(0, 0, 2)
	if !m.At(2, 0).Discovered {
		t.Fatal("expected (2,0) discovered")
	}

	// A later sweep elsewhere never clears earlier discoveries.
	m.DiscoverRadius(4, 2, 0)
	if !m.At(2, 0).Discovered {
		t.Error("(2,0) lost its discovered flag")
	}
}

func TestDiscoverRadiusZeroAndNegative(t *testing.T) {
	m := mustParse(t, []string{"...", "..."})

	m.DiscoverRadius(1, 0, 0)
	if !m.At(1, 0).Discovered {
		t.Error("radius 0 should discover the center tile itself")
	}
	if m.At(0, 0).Discovered {
		t.Error("radius 0 should not reach neighbors")
	}

	m.DiscoverRadius(0, 1, -1)
	if m.At(0, 1).Discovered {
		t.Error("negative radius should discover nothing")
	}
}

func TestDiscoverRadiusClipsAtEdges(t *testing.T) {
	m := mustParse(t, []string{"...", "..."})

	// Center outside the sweep rectangle partially off-map.
	m.DiscoverRadius(0, 0, 5)
	if !m.At(2, 1).Discovered {
		t.Error("large radius should cover the whole small map")
	}
}
