package automaton

import "testing"

func TestCrossPatternSurvival(t *testing.T) {
	g := NewGrid(8, 8, 8)

	// Center plus four orthogonal neighbors in one plane.
	g.Set(4, 4, 4, 1)
	g.Set(3, 4, 4, 1)
	g.Set(5, 4, 4, 1)
	g.Set(4, 3, 4, 1)
	g.Set(4, 5, 4, 1)

	g.Step()

	// The center saw exactly four neighbors and survives; the arms saw
	// fewer and die.
	if g.Get(4, 4, 4) != 1 {
		t.Fatal("center with four neighbors should survive")
	}
	for _, c := range [][3]int16{{3, 4, 4}, {5, 4, 4}, {4, 3, 4}, {4, 5, 4}} {
		if g.Get(c[0], c[1], c[2]) != 0 {
			t.Fatalf("arm (%d,%d,%d) should die", c[0], c[1], c[2])
		}
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", g.Generation())
	}
}

func TestBirthOnFour(t *testing.T) {
	g := NewGrid(8, 8, 8)

	// Four alive cells around a dead center.
	g.Set(3, 4, 4, 1)
	g.Set(5, 4, 4, 1)
	g.Set(4, 3, 4, 1)
	g.Set(4, 5, 4, 1)

	g.Step()

	if g.Get(4, 4, 4) != 1 {
		t.Fatal("dead cell with four neighbors should be born")
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := NewGrid(4, 4, 4)
	g.Step()
	for i, v := range g.Cells {
		if v != 0 {
			t.Fatalf("cell %d alive in empty grid", i)
		}
	}
	if g.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", g.Generation())
	}
}

func TestSetNormalizesNonzero(t *testing.T) {
	g := NewGrid(4, 4, 4)
	g.Set(1, 1, 1, 200)
	if got := g.Get(1, 1, 1); got != 1 {
		t.Fatalf("Set(200) stored %d, want 1", got)
	}
	g.Set(-1, 0, 0, 1)
	g.Set(4, 0, 0, 1)
	alive := 0
	for _, v := range g.Cells {
		alive += int(v)
	}
	if alive != 1 {
		t.Fatalf("out-of-bounds writes leaked: %d alive cells", alive)
	}
}

func TestRegionRoundTrip(t *testing.T) {
	src := NewGrid(8, 8, 8)
	src.Set(2, 2, 2, 1)
	src.Set(3, 2, 2, 1)
	src.Set(2, 3, 2, 1)

	buf := make([]uint8, 64)
	if n := src.ExtractRegion(buf, 2, 2, 2, 6, 6, 6); n != 64 {
		t.Fatalf("extract = %d, want 64", n)
	}
	if buf[0] != 1 || buf[1] != 1 || buf[4] != 1 {
		t.Fatalf("unexpected layout: %v", buf[:8])
	}

	dst := NewGrid(8, 8, 8)
	if n := dst.ImportRegion(buf, 2, 2, 2, 6, 6, 6); n != 64 {
		t.Fatalf("import = %d, want 64", n)
	}
	for z := int16(2); z < 6; z++ {
		for y := int16(2); y < 6; y++ {
			for x := int16(2); x < 6; x++ {
				if src.Get(x, y, z) != dst.Get(x, y, z) {
					t.Fatalf("cell (%d,%d,%d) lost in round trip", x, y, z)
				}
			}
		}
	}
}

func TestRegionImportNormalizes(t *testing.T) {
	g := NewGrid(4, 4, 4)
	buf := make([]uint8, 64)
	buf[0], buf[1], buf[2], buf[3] = 0, 1, 5, 255
	if n := g.ImportRegion(buf, 0, 0, 0, 4, 4, 4); n != 64 {
		t.Fatalf("import = %d, want 64", n)
	}
	want := []uint8{0, 1, 1, 1}
	for i, w := range want {
		if g.Cells[i] != w {
			t.Fatalf("cell %d = %d, want %d", i, g.Cells[i], w)
		}
	}
}

func TestRegionBoundsRejected(t *testing.T) {
	g := NewGrid(4, 4, 4)
	buf := make([]uint8, 512)
	if n := g.ExtractRegion(buf, -2, 0, 0, 4, 4, 4); n != 0 {
		t.Fatalf("negative min accepted: %d", n)
	}
	if n := g.ExtractRegion(buf, 0, 0, 0, 10, 4, 4); n != 0 {
		t.Fatalf("max beyond extent accepted: %d", n)
	}
	if n := g.ImportRegion(buf[:3], 0, 0, 0, 4, 4, 4); n != 0 {
		t.Fatalf("short buffer accepted: %d", n)
	}
}
