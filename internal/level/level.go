// Package level implements the deterministic procedural level generator:
// maze carving, room placement, connectivity repair, checkpoint and exit
// placement, and wall material classification. Generation is a pure function
// of (campaign seed, level index, difficulty); the same inputs always produce
// a bit-identical level.
package level

import "github.com/vovakirdan/tui-corridor/internal/core"

// Grid dimensions are fixed and odd so the maze lattice aligns to cell centers.
const (
	Width  = 33
	Height = 33
)

// TileSize is the width of one tile in world units. Engine positions and the
// speed tables in the simulation are expressed in world units.
const TileSize = 64.0

// Tile values. 0 is open floor; nonzero values are walls tagged with a
// rendering material.
const (
	TileOpen         uint8 = 0
	MaterialBrick    uint8 = 1
	MaterialConcrete uint8 = 2
	MaterialMetal    uint8 = 3
)

// MaterialCount is the number of wall materials (1..MaterialCount).
const MaterialCount = 3

// Level is the immutable output of the generator. It is superseded, never
// edited, when the next level loads.
type Level struct {
	Width  int
	Height int

	// Tiles is the row-major tile grid: Tiles[y*Width+x].
	Tiles []uint8

	Start       core.Point
	Exit        core.Point
	Checkpoints []core.Point

	KillTarget int
	Seed       int64
}

// Tile returns the tile value at (x, y). Out-of-bounds coordinates read as
// brick so callers can treat the world as bordered everywhere.
func (l *Level) Tile(x, y int) uint8 {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return MaterialBrick
	}
	return l.Tiles[y*l.Width+x]
}

// Solid reports whether the tile at (x, y) blocks movement and rays.
func (l *Level) Solid(x, y int) bool {
	return l.Tile(x, y) != TileOpen
}

// SolidAtWorld reports whether the world-unit position (wx, wy) is inside a
// wall tile.
func (l *Level) SolidAtWorld(wx, wy float64) bool {
	return l.Solid(int(wx/TileSize), int(wy/TileSize))
}

// CenterOf returns the world-unit center of the given tile.
func (l *Level) CenterOf(p core.Point) (float64, float64) {
	return (float64(p.X) + 0.5) * TileSize, (float64(p.Y) + 0.5) * TileSize
}

func (l *Level) set(x, y int, v uint8) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	l.Tiles[y*l.Width+x] = v
}

// openNeighbors counts open orthogonal neighbors of (x, y).
func (l *Level) openNeighbors(x, y int) int {
	n := 0
	if !l.Solid(x+1, y) {
		n++
	}
	if !l.Solid(x-1, y) {
		n++
	}
	if !l.Solid(x, y+1) {
		n++
	}
	if !l.Solid(x, y-1) {
		n++
	}
	return n
}
