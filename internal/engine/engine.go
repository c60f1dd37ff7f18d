// Package engine implements the real-time combat and objective simulation:
// player, enemy and bullet physics, collision, combat resolution, the
// checkpoint/exit state machine, and achievement/challenge evaluation. It
// advances on a single logical update thread, one Update call per tick, and
// emits an immutable Snapshot for presentation. The engine performs no I/O;
// persistence happens in the host via the save-record value shape.
package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-corridor/internal/config"
	"github.com/vovakirdan/tui-corridor/internal/core"
	"github.com/vovakirdan/tui-corridor/internal/level"
	"github.com/vovakirdan/tui-corridor/internal/raycast"
)

// Engine owns all mutable simulation state for one campaign.
type Engine struct {
	diff core.Difficulty
	par  params

	campaignSeed int64
	levelIndex   int
	lvl          *level.Level
	rng          *rand.Rand

	player  Player
	enemies []Enemy
	bullets []Bullet
	impacts []Impact

	score      int
	totalKills int
	levelKills int

	checkpointIndex int
	achievements    [AchievementCount]bool
	challenges      [ChallengeCount]bool

	// per-level challenge tracking
	levelTime    float64
	damageTaken  bool
	diedThisRun  bool
	shotsFired   int
	shotsHit     int
	spawnTimer   float64
	fireCooldownLeft float64
	muzzleFlashLeft  float64

	// exit / death state machine
	atExit       bool
	exitTimerLeft float64
	dead         bool
	respawnLeft  float64

	// view settings and ray field
	rayCount int
	fov      float64
	rays     *raycast.Field

	tick     uint64
	autosave bool
}

// NewGame creates an engine with default view settings and no level loaded.
// Call StartCampaign or LoadSave before the first Update.
func NewGame() *Engine {
	e := &Engine{
		diff:     core.Medium,
		par:      paramsFor(core.Medium),
		rayCount: config.DefaultSettings().RayCount(),
		fov:      config.DefaultSettings().FOVRadians(),
	}
	e.rays = raycast.NewField(e.rayCount)
	return e
}

// StartCampaign begins a fresh campaign from level 0 with the given seed and
// difficulty. A zero seed is honored as-is: seeding policy belongs to the host.
func (e *Engine) StartCampaign(seed int64, diff core.Difficulty) {
	e.diff = diff.Clamp()
	e.par = paramsFor(e.diff)
	e.campaignSeed = seed
	e.levelIndex = 0
	e.score = 0
	e.totalKills = 0
	e.achievements = [AchievementCount]bool{}
	e.tick = 0
	e.autosave = false
	e.loadLevel()
}

// loadLevel regenerates the current level, resets per-level state and places
// the player at the start cell. The spawn rng is re-seeded from the level seed
// so a campaign replay reproduces the full spawn sequence.
func (e *Engine) loadLevel() {
	e.lvl = level.Generate(e.campaignSeed, e.levelIndex, e.diff)
	e.rng = rand.New(rand.NewSource(e.lvl.Seed ^ 0x5DEECE66D))

	x, y := e.lvl.CenterOf(e.lvl.Start)
	e.player = Player{X: x, Y: y, Angle: 0, Health: e.par.startHealth}

	e.enemies = e.enemies[:0]
	e.bullets = e.bullets[:0]
	e.impacts = e.impacts[:0]

	e.levelKills = 0
	e.checkpointIndex = 0
	e.challenges = [ChallengeCount]bool{}
	e.levelTime = 0
	e.damageTaken = false
	e.diedThisRun = false
	e.shotsFired = 0
	e.shotsHit = 0
	e.spawnTimer = spawnIntervalFor(e.par.spawnInterval, e.levelIndex)
	e.fireCooldownLeft = 0
	e.muzzleFlashLeft = 0
	e.atExit = false
	e.exitTimerLeft = 0
	e.dead = false
	e.respawnLeft = 0

	e.castRays()
}

// ApplySettings applies host settings to the engine view: the ray count and
// field of view are recomputed from the (already clamped) settings value.
func (e *Engine) ApplySettings(s config.Settings) {
	s.Normalize()
	e.rayCount = s.RayCount()
	e.fov = s.FOVRadians()
	e.rays.Resize(e.rayCount)
	if e.lvl != nil {
		e.castRays()
	}
}

// Level exposes the current generated level (read-only by convention).
func (e *Engine) Level() *level.Level { return e.lvl }

// Difficulty returns the campaign difficulty.
func (e *Engine) Difficulty() core.Difficulty { return e.diff }

// TryConsumeAutosave reports and clears the one-shot autosave flag. The host
// polls it after Update and persists a save record when it fires.
func (e *Engine) TryConsumeAutosave() bool {
	fired := e.autosave
	e.autosave = false
	return fired
}

// Update advances the simulation by dt seconds under the given input.
// It never fails: out-of-range input values are clamped on entry.
func (e *Engine) Update(in core.InputFrame, dt float64) {
	if e.lvl == nil {
		return
	}
	dt = core.ClampF(dt, 0, maxDeltaTime)
	e.tick++
	e.levelTime += dt

	if e.muzzleFlashLeft > 0 {
		e.muzzleFlashLeft -= dt
	}

	if e.dead {
		e.updateDead(in, dt)
		e.castRays()
		return
	}

	if e.atExit && e.objectiveComplete() {
		e.updateExit(in, dt)
		e.castRays()
		return
	}

	e.movePlayer(in, dt)
	e.updateFiring(in, dt)
	e.updateBullets(dt)
	e.updateImpacts(dt)
	e.updateEnemies(dt)
	e.updateSpawning(dt)
	e.updateProgress()

	e.castRays()
}

// castRays recomputes the per-column depth field for the current pose.
// Engine-owned so sprite occlusion and presentation share one buffer.
func (e *Engine) castRays() {
	raycast.Cast(e.lvl, e.pose(), e.fov, e.rays)
}

func (e *Engine) pose() raycast.Pose {
	return raycast.Pose{X: e.player.X, Y: e.player.Y, Angle: e.player.Angle}
}

// movePlayer applies turning and strafe-relative movement. The intent vector
// is normalized before scaling so diagonals are not faster, and each axis is
// collision-tested independently so the player slides along walls.
func (e *Engine) movePlayer(in core.InputFrame, dt float64) {
	turn := 0.0
	if in.TurnLeft {
		turn -= 1
	}
	if in.TurnRight {
		turn += 1
	}
	e.player.Angle += turn*e.par.turnSpeed*dt + in.TurnDelta
	e.player.Angle = normalizeAngle(e.player.Angle)

	fwd, strafe := 0.0, 0.0
	if in.Forward {
		fwd += 1
	}
	if in.Backward {
		fwd -= 1
	}
	if in.StrafeRight {
		strafe += 1
	}
	if in.StrafeLeft {
		strafe -= 1
	}
	if fwd == 0 && strafe == 0 {
		return
	}

	norm := math.Hypot(fwd, strafe)
	fwd /= norm
	strafe /= norm

	sin, cos := math.Sincos(e.player.Angle)
	dx := (fwd*cos - strafe*sin) * e.par.moveSpeed * dt
	dy := (fwd*sin + strafe*cos) * e.par.moveSpeed * dt

	e.player.X, e.player.Y = e.moveWithCollision(e.player.X, e.player.Y, dx, dy, playerRadius)
}

// moveWithCollision moves a circle through the tile grid one axis at a time,
// rejecting an axis move that would overlap a wall.
func (e *Engine) moveWithCollision(x, y, dx, dy, radius float64) (float64, float64) {
	if dx != 0 && e.bodyFits(x+dx, y, radius) {
		x += dx
	}
	if dy != 0 && e.bodyFits(x, y+dy, radius) {
		y += dy
	}
	return x, y
}

// bodyFits reports whether a circle of the given radius centered at (x, y)
// overlaps no wall tile, sampled at the four box corners.
func (e *Engine) bodyFits(x, y, radius float64) bool {
	return !e.lvl.SolidAtWorld(x-radius, y-radius) &&
		!e.lvl.SolidAtWorld(x+radius, y-radius) &&
		!e.lvl.SolidAtWorld(x-radius, y+radius) &&
		!e.lvl.SolidAtWorld(x+radius, y+radius)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
