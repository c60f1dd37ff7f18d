package level

import (
	"testing"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

func TestDeterminism(t *testing.T) {
	for _, diff := range []core.Difficulty{core.Easy, core.Medium, core.Hard, core.Hell} {
		a := Generate(12345, 2, diff)
		b := Generate(12345, 2, diff)

		if len(a.Tiles) != len(b.Tiles) {
			t.Fatalf("tile grid length mismatch: %d vs %d", len(a.Tiles), len(b.Tiles))
		}
		for i := range a.Tiles {
			if a.Tiles[i] != b.Tiles[i] {
				t.Fatalf("diff %v: tile %d differs: %d vs %d", diff, i, a.Tiles[i], b.Tiles[i])
			}
		}
		if a.Start != b.Start || a.Exit != b.Exit {
			t.Errorf("diff %v: start/exit mismatch: %v/%v vs %v/%v", diff, a.Start, a.Exit, b.Start, b.Exit)
		}
		if len(a.Checkpoints) != len(b.Checkpoints) {
			t.Fatalf("checkpoint count mismatch: %d vs %d", len(a.Checkpoints), len(b.Checkpoints))
		}
		for i := range a.Checkpoints {
			if a.Checkpoints[i] != b.Checkpoints[i] {
				t.Errorf("checkpoint %d mismatch: %v vs %v", i, a.Checkpoints[i], b.Checkpoints[i])
			}
		}
		if a.KillTarget != b.KillTarget {
			t.Errorf("kill target mismatch: %d vs %d", a.KillTarget, b.KillTarget)
		}
	}
}

// reachable runs a BFS over open tiles from start and reports whether goal
// was reached.
func reachable(l *Level, start, goal core.Point) bool {
	seen := make([]bool, l.Width*l.Height)
	queue := []core.Point{start}
	seen[start.Y*l.Width+start.X] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return true
		}
		for _, d := range [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			next := core.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < 0 || next.X >= l.Width || next.Y < 0 || next.Y >= l.Height {
				continue
			}
			if l.Solid(next.X, next.Y) || seen[next.Y*l.Width+next.X] {
				continue
			}
			seen[next.Y*l.Width+next.X] = true
			queue = append(queue, next)
		}
	}
	return false
}

func TestConnectivity(t *testing.T) {
	seeds := []int64{0, 1, 42, -7, 99999, 123456789}
	for _, seed := range seeds {
		for idx := 0; idx < 8; idx++ {
			l := Generate(seed, idx, core.Medium)

			if l.Solid(l.Start.X, l.Start.Y) {
				t.Fatalf("seed %d idx %d: start %v is inside a wall", seed, idx, l.Start)
			}
			if l.Solid(l.Exit.X, l.Exit.Y) {
				t.Fatalf("seed %d idx %d: exit %v is inside a wall", seed, idx, l.Exit)
			}
			if !reachable(l, l.Start, l.Exit) {
				t.Errorf("seed %d idx %d: exit %v unreachable from start %v", seed, idx, l.Exit, l.Start)
			}
			for i, cp := range l.Checkpoints {
				if l.Solid(cp.X, cp.Y) {
					t.Errorf("seed %d idx %d: checkpoint %d at %v is inside a wall", seed, idx, i, cp)
				}
				if !reachable(l, l.Start, cp) {
					t.Errorf("seed %d idx %d: checkpoint %d at %v unreachable", seed, idx, i, cp)
				}
			}
		}
	}
}

func TestKillTargetFormula(t *testing.T) {
	cases := []struct {
		diff  core.Difficulty
		index int
		want  int
	}{
		{core.Easy, 0, 8},
		{core.Medium, 3, 18},
		{core.Hard, 2, 20},
		{core.Hell, 1, 24},
	}
	for _, c := range cases {
		l := Generate(7, c.index, c.diff)
		if l.KillTarget != c.want {
			t.Errorf("killTarget(%v, %d) = %d, want %d", c.diff, c.index, l.KillTarget, c.want)
		}
	}
}

func TestBorderSealed(t *testing.T) {
	l := Generate(31337, 0, core.Medium)
	for x := 0; x < l.Width; x++ {
		if !l.Solid(x, 0) || !l.Solid(x, l.Height-1) {
			t.Fatalf("border open at x=%d", x)
		}
		if l.Tile(x, 0) != MaterialBrick || l.Tile(x, l.Height-1) != MaterialBrick {
			t.Errorf("border at x=%d is not brick", x)
		}
	}
	for y := 0; y < l.Height; y++ {
		if !l.Solid(0, y) || !l.Solid(l.Width-1, y) {
			t.Fatalf("border open at y=%d", y)
		}
	}
}

func TestMaterialsInRange(t *testing.T) {
	l := Generate(555, 4, core.Hard)
	for i, tile := range l.Tiles {
		if tile > MaterialMetal {
			t.Fatalf("tile %d has invalid material %d", i, tile)
		}
	}
}

func TestSeedDerivation(t *testing.T) {
	seen := make(map[int64]int)
	for idx := 0; idx < 32; idx++ {
		s := DeriveSeed(1000, idx)
		if prev, dup := seen[s]; dup {
			t.Fatalf("levels %d and %d derived identical seed %d", prev, idx, s)
		}
		seen[s] = idx
	}
}

func TestCheckpointsFollowPathOrder(t *testing.T) {
	l := Generate(2024, 3, core.Medium)
	if len(l.Checkpoints) == 0 {
		t.Skip("level generated a short path with no checkpoints")
	}
	if len(l.Checkpoints) != 3 {
		t.Fatalf("expected 3 checkpoints, got %d", len(l.Checkpoints))
	}
	path := farthestPath(l, l.Start)
	pos := make(map[core.Point]int, len(path))
	for i, p := range path {
		pos[p] = i
	}
	last := -1
	for i, cp := range l.Checkpoints {
		at, on := pos[cp]
		if !on {
			t.Fatalf("checkpoint %d at %v is not on the validated path", i, cp)
		}
		if at <= last {
			t.Errorf("checkpoint %d at path index %d is not past the previous one (%d)", i, at, last)
		}
		last = at
	}
}
