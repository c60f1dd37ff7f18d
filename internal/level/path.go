package level

import "github.com/vovakirdan/tui-corridor/internal/core"

// fixed coordinate the start cell snaps to (nearest open cell wins).
var startAnchor = core.Point{X: 1, Y: 1}

// validateAndPlace fixes the start cell, picks the exit as the farthest
// reachable open cell, and guarantees a traversable start→exit path of useful
// length. Checkpoints are placed along the validated path.
func validateAndPlace(l *Level) {
	l.Start = nearestOpen(l, startAnchor)

	path := farthestPath(l, l.Start)
	if len(path) < minPathLen {
		// Fallback guarantee: carve a straight L-shaped tunnel between start
		// and candidate, then re-derive the path. This structurally eliminates
		// unreachable exits no matter how the randomized maze turned out.
		candidate := l.Start
		if len(path) > 0 {
			candidate = path[len(path)-1]
		}
		carveTunnel(l, l.Start, candidate)
		path = farthestPath(l, l.Start)
	}

	l.Exit = path[len(path)-1]

	if len(path) >= minCheckpoints {
		l.Checkpoints = []core.Point{
			path[len(path)/4],
			path[len(path)/2],
			path[3*len(path)/4],
		}
	}
}

// nearestOpen returns the open cell closest to p, scanning outward ring by
// ring. Generation always leaves open cells, so the search terminates.
func nearestOpen(l *Level, p core.Point) core.Point {
	if !l.Solid(p.X, p.Y) {
		return p
	}
	for radius := 1; radius < l.Width+l.Height; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if core.Abs(dx)+core.Abs(dy) != radius {
					continue
				}
				x, y := p.X+dx, p.Y+dy
				if x >= 0 && x < l.Width && y >= 0 && y < l.Height && !l.Solid(x, y) {
					return core.Point{X: x, Y: y}
				}
			}
		}
	}
	return p
}

// farthestPath runs a breadth-first search over open cells from start,
// recording parent pointers, and returns the shortest path to the open cell
// with maximum BFS distance. The returned path includes both endpoints.
func farthestPath(l *Level, start core.Point) []core.Point {
	const unvisited = -1
	dist := make([]int, l.Width*l.Height)
	parent := make([]core.Point, l.Width*l.Height)
	for i := range dist {
		dist[i] = unvisited
	}
	idx := func(p core.Point) int { return p.Y*l.Width + p.X }

	queue := []core.Point{start}
	dist[idx(start)] = 0
	farthest := start

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[idx(cur)] > dist[idx(farthest)] {
			farthest = cur
		}
		for _, d := range [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			next := core.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < 0 || next.X >= l.Width || next.Y < 0 || next.Y >= l.Height {
				continue
			}
			if l.Solid(next.X, next.Y) || dist[idx(next)] != unvisited {
				continue
			}
			dist[idx(next)] = dist[idx(cur)] + 1
			parent[idx(next)] = cur
			queue = append(queue, next)
		}
	}

	// Reconstruct start→farthest by walking parents backward.
	path := []core.Point{farthest}
	for cur := farthest; cur != start; cur = parent[idx(cur)] {
		path = append(path, parent[idx(cur)])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// carveTunnel opens a straight horizontal run then a vertical run between the
// two cells, keeping the outer border intact.
func carveTunnel(l *Level, from, to core.Point) {
	x, y := from.X, from.Y
	for x != to.X {
		if x < to.X {
			x++
		} else {
			x--
		}
		carveInterior(l, x, y)
	}
	for y != to.Y {
		if y < to.Y {
			y++
		} else {
			y--
		}
		carveInterior(l, x, y)
	}
}

func carveInterior(l *Level, x, y int) {
	if x >= 1 && x < l.Width-1 && y >= 1 && y < l.Height-1 {
		l.set(x, y, TileOpen)
	}
}
