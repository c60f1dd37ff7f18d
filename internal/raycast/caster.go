// Package raycast turns a player pose and a level tile grid into a per-column
// depth and shading field using grid DDA traversal. The field is consumed by
// the renderer for wall columns and by the simulation engine to occlusion-test
// sprites.
package raycast

import (
	"math"
	"runtime"
	"sync"

	"github.com/vovakirdan/tui-corridor/internal/core"
	"github.com/vovakirdan/tui-corridor/internal/level"
)

const (
	// MaxSteps bounds the DDA walk per ray. A valid bordered level always
	// terminates far sooner; the guard keeps the walk finite on any input.
	MaxSteps = 256

	// MaxViewDist is the shading horizon in world units.
	MaxViewDist = 12 * level.TileSize

	// MinShade is the darkest fog factor a visible column can reach.
	MinShade = 0.15

	// minDist keeps downstream projection divisions away from zero.
	minDist = 1e-4

	// parallelThreshold is the ray count below which sequential casting beats
	// the dispatch overhead of the worker fan-out.
	parallelThreshold = 128
)

// Pose is the camera position and facing angle in world units/radians.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Field holds the four parallel per-column output arrays of one cast.
// Dist is the perpendicular wall distance in world units, Shade the fog
// factor in [MinShade, 1], TexU the horizontal wall texture coordinate in
// [0, 1), and Material the hit wall material id.
type Field struct {
	Dist     []float64
	Shade    []float64
	TexU     []float64
	Material []uint8
}

// NewField allocates a field for the given ray count.
func NewField(rayCount int) *Field {
	f := &Field{}
	f.Resize(rayCount)
	return f
}

// Resize adjusts the field to a new ray count, reallocating only on growth.
func (f *Field) Resize(rayCount int) {
	if cap(f.Dist) >= rayCount {
		f.Dist = f.Dist[:rayCount]
		f.Shade = f.Shade[:rayCount]
		f.TexU = f.TexU[:rayCount]
		f.Material = f.Material[:rayCount]
		return
	}
	f.Dist = make([]float64, rayCount)
	f.Shade = make([]float64, rayCount)
	f.TexU = make([]float64, rayCount)
	f.Material = make([]uint8, rayCount)
}

// Rays returns the number of columns in the field.
func (f *Field) Rays() int { return len(f.Dist) }

// Cast fills the field for the given pose and field of view. Columns only
// read the immutable level and the pose and write disjoint indices, so wide
// fields are fanned out across workers; small ones run sequentially.
func Cast(l *level.Level, pose Pose, fov float64, f *Field) {
	n := f.Rays()
	if n == 0 {
		return
	}
	if n == 1 {
		castColumn(l, pose, pose.Angle, f, 0)
		return
	}

	step := fov / float64(n-1)
	first := pose.Angle - fov/2

	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			castColumn(l, pose, first+float64(i)*step, f, i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := core.Min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				castColumn(l, pose, first+float64(i)*step, f, i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// castColumn walks one ray through the tile grid with DDA and writes the
// column outputs at index i.
func castColumn(l *level.Level, pose Pose, angle float64, f *Field, i int) {
	// Work in tile units; convert the perpendicular distance back at the end.
	px := pose.X / level.TileSize
	py := pose.Y / level.TileSize

	dirX := math.Cos(angle)
	dirY := math.Sin(angle)

	mapX := int(math.Floor(px))
	mapY := int(math.Floor(py))

	deltaX := math.Inf(1)
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	deltaY := math.Inf(1)
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - px) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (py - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - py) * deltaY
	}

	// side is 0 when the last step crossed a vertical grid line (x face hit).
	side := 0
	hit := false
	for step := 0; step < MaxSteps; step++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			sideY += deltaY
			mapY += stepY
			side = 1
		}
		if l.Solid(mapX, mapY) {
			hit = true
			break
		}
	}

	if !hit {
		// Cannot happen on bordered level data; the guard still needs a sane
		// fallback so downstream stays finite.
		f.Dist[i] = MaxViewDist
		f.Shade[i] = MinShade
		f.TexU[i] = 0
		f.Material[i] = level.MaterialBrick
		return
	}

	// Perpendicular (camera-plane) distance avoids fisheye distortion.
	var perp float64
	if side == 0 {
		perp = sideX - deltaX
	} else {
		perp = sideY - deltaY
	}
	if perp < minDist {
		perp = minDist
	}

	// Fractional world position along the hit face, mirrored so texture
	// orientation is consistent from both sides of a wall.
	var wallX float64
	if side == 0 {
		wallX = py + perp*dirY
	} else {
		wallX = px + perp*dirX
	}
	wallX -= math.Floor(wallX)
	if (side == 0 && dirX > 0) || (side == 1 && dirY < 0) {
		wallX = 1 - wallX
	}

	dist := perp * level.TileSize
	mat := l.Tile(mapX, mapY)
	if mat < level.MaterialBrick || mat > level.MaterialCount {
		mat = level.MaterialBrick
	}

	f.Dist[i] = dist
	f.Shade[i] = core.ClampF(1-dist/MaxViewDist, MinShade, 1)
	f.TexU[i] = wallX
	f.Material[i] = mat
}
