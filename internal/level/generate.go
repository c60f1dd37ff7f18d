package level

import (
	"math/rand"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

// Tuning constants for the carving passes.
const (
	widenChance     = 0.18 // per-direction chance to widen an open cell
	strayMetalRatio = 0.06 // chance an ordinary interior wall becomes metal
	minPathLen      = 12   // below this the fallback tunnel kicks in
	minCheckpoints  = 10   // paths shorter than this get no checkpoints
)

// DeriveSeed combines the campaign seed with a level index so that levels
// within one campaign are uncorrelated but reproducible. SplitMix64 finalizer.
func DeriveSeed(campaignSeed int64, levelIndex int) int64 {
	h := uint64(campaignSeed) ^ (uint64(levelIndex)+1)*0x9E3779B97F4A7C15
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return int64(h)
}

// killTargetBase returns the per-difficulty base kill requirement.
func killTargetBase(diff core.Difficulty) int {
	switch diff {
	case core.Easy:
		return 8
	case core.Medium:
		return 12
	case core.Hard:
		return 16
	case core.Hell:
		return 22
	default:
		return 12
	}
}

// Generate produces the level for the given campaign seed, level index and
// difficulty. The returned level always has an open path from Start to Exit.
func Generate(campaignSeed int64, levelIndex int, diff core.Difficulty) *Level {
	seed := DeriveSeed(campaignSeed, levelIndex)
	rng := rand.New(rand.NewSource(seed))

	l := &Level{
		Width:  Width,
		Height: Height,
		Tiles:  make([]uint8, Width*Height),
		Seed:   seed,
	}
	for i := range l.Tiles {
		l.Tiles[i] = MaterialBrick
	}

	carveMaze(l, rng)
	widenCorridors(l, rng)
	carveRooms(l, rng, 5+levelIndex/3)
	validateAndPlace(l)

	l.KillTarget = killTargetBase(diff) + 2*levelIndex

	classifyMaterials(l, rng)
	return l
}

// carveMaze runs a randomized depth-first backtracker on the half-resolution
// lattice (odd coordinates), carving a perfect-maze spanning tree of
// one-cell-wide corridors.
func carveMaze(l *Level, rng *rand.Rand) {
	start := core.Point{X: 1, Y: 1}
	l.set(start.X, start.Y, TileOpen)

	stack := []core.Point{start}
	dirs := [4]core.Point{{X: 2, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -2}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		order := [4]int{0, 1, 2, 3}
		rng.Shuffle(4, func(i, j int) { order[i], order[j] = order[j], order[i] })

		advanced := false
		for _, di := range order {
			d := dirs[di]
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx < 1 || nx >= l.Width-1 || ny < 1 || ny >= l.Height-1 {
				continue
			}
			if !l.Solid(nx, ny) {
				continue
			}
			// Knock down the wall between lattice cells, then the cell itself.
			l.set(cur.X+d.X/2, cur.Y+d.Y/2, TileOpen)
			l.set(nx, ny, TileOpen)
			stack = append(stack, core.Point{X: nx, Y: ny})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// widenCorridors makes a single pass over open cells and, with fixed
// probability, additionally opens the cell to the right and/or below. Widening
// only ever adds open cells, so connectivity is preserved.
func widenCorridors(l *Level, rng *rand.Rand) {
	for y := 1; y < l.Height-1; y++ {
		for x := 1; x < l.Width-1; x++ {
			if l.Solid(x, y) {
				continue
			}
			if x+1 < l.Width-1 && rng.Float64() < widenChance {
				l.set(x+1, y, TileOpen)
			}
			if y+1 < l.Height-1 && rng.Float64() < widenChance {
				l.set(x, y+1, TileOpen)
			}
		}
	}
}

type room struct {
	x, y, w, h int
}

func (r room) overlapsPadded(o room) bool {
	// One-cell padding around both boxes.
	return r.x-1 < o.x+o.w+1 && o.x-1 < r.x+r.w+1 &&
		r.y-1 < o.y+o.h+1 && o.y-1 < r.y+r.h+1
}

// carveRooms attempts to place the requested number of rectangular rooms.
// Candidates whose padded bounding box overlaps an already placed room are
// rejected. Each carved room is connected to the nearest existing open cell by
// probing outward from its center so no room is left isolated.
func carveRooms(l *Level, rng *rand.Rand, count int) {
	var placed []room
	for attempt := 0; attempt < count; attempt++ {
		r := room{
			w: 3 + rng.Intn(4),
			h: 3 + rng.Intn(4),
		}
		r.x = 1 + rng.Intn(l.Width-r.w-2)
		r.y = 1 + rng.Intn(l.Height-r.h-2)

		rejected := false
		for _, o := range placed {
			if r.overlapsPadded(o) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		for y := r.y; y < r.y+r.h; y++ {
			for x := r.x; x < r.x+r.w; x++ {
				l.set(x, y, TileOpen)
			}
		}
		connectRoom(l, rng, core.Point{X: r.x + r.w/2, Y: r.y + r.h/2})
		placed = append(placed, r)
	}
}

// connectRoom carves outward from the room center along a randomized direction
// order until the carved cell touches two or more open neighbors, which means
// the room has joined the existing corridor network.
func connectRoom(l *Level, rng *rand.Rand, center core.Point) {
	dirs := [4]core.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	order := [4]int{0, 1, 2, 3}
	rng.Shuffle(4, func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, di := range order {
		d := dirs[di]
		x, y := center.X, center.Y
		for step := 0; step < l.Width; step++ {
			x += d.X
			y += d.Y
			if x < 1 || x >= l.Width-1 || y < 1 || y >= l.Height-1 {
				break
			}
			l.set(x, y, TileOpen)
			if l.openNeighbors(x, y) >= 2 {
				return
			}
		}
	}
}

// classifyMaterials assigns a rendering material to every wall cell based on
// its surroundings. It never opens or closes tiles: only nonzero values change.
//
// Border cells stay brick. Thin partitions and pillars (three or more open
// neighbors) become metal. Interior walls lining a corridor (exactly two open
// neighbors) become concrete on a seeded periodic pattern; the rest stay brick
// with a small chance of metal.
func classifyMaterials(l *Level, rng *rand.Rand) {
	parity := int(l.Seed & 3)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if !l.Solid(x, y) {
				continue
			}
			if x == 0 || y == 0 || x == l.Width-1 || y == l.Height-1 {
				l.set(x, y, MaterialBrick)
				continue
			}
			switch n := l.openNeighbors(x, y); {
			case n >= 3:
				l.set(x, y, MaterialMetal)
			case n == 2 && (x*3+y*5+parity)%4 != 0:
				l.set(x, y, MaterialConcrete)
			case rng.Float64() < strayMetalRatio:
				l.set(x, y, MaterialMetal)
			default:
				l.set(x, y, MaterialBrick)
			}
		}
	}
}
