package engine

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-corridor/internal/core"
	"github.com/vovakirdan/tui-corridor/internal/level"
)

// SpriteKind is a closed enum of billboard sprites the renderer can draw.
type SpriteKind int

const (
	SpriteGrunt SpriteKind = iota
	SpriteScout
	SpriteBrute
	SpriteCheckpoint
	SpriteExit
)

func spriteKindFor(k EnemyKind) SpriteKind {
	switch k {
	case Scout:
		return SpriteScout
	case Brute:
		return SpriteBrute
	default:
		return SpriteGrunt
	}
}

// Sprite is one billboard in screen space: Column is the fractional ray
// column of its center, Dist the camera-plane depth used for projection and
// painter ordering, Width its world width.
type Sprite struct {
	Kind     SpriteKind
	Column   float64
	Dist     float64
	Width    float64
	Phase    float64
	HitFlash bool
}

// PlayerView is the read-only player projection.
type PlayerView struct {
	X, Y, Angle float64
	Health      int
}

// EnemyView is the read-only enemy projection (world space, for map overlays).
type EnemyView struct {
	X, Y, Radius float64
	Kind         EnemyKind
	Phase        float64
	HitFlash     bool
}

// BulletView is the read-only bullet projection.
type BulletView struct {
	X, Y float64
}

// ImpactView is the read-only impact effect projection.
type ImpactView struct {
	X, Y, Radius float64
	Kind         ImpactKind
}

// RayView carries copies of the four per-column arrays for one frame.
type RayView struct {
	Dist     []float64
	Shade    []float64
	TexU     []float64
	Material []uint8
}

// Snapshot is a fully-owned copy of everything the presentation layer needs
// for one frame. It has no identity beyond the frame it describes.
type Snapshot struct {
	Tick       uint64
	Difficulty core.Difficulty

	LevelIndex      int
	Score           int
	TotalKills      int
	LevelKills      int
	KillTarget      int
	CheckpointIndex int
	CheckpointCount int

	ObjectiveComplete bool
	AtExit            bool
	ExitCountdown     float64
	Dead              bool
	RespawnCountdown  float64
	MuzzleFlash       bool

	Achievements [AchievementCount]bool
	Challenges   [ChallengeCount]bool

	Player  PlayerView
	Enemies []EnemyView
	Bullets []BulletView
	Impacts []ImpactView

	FOV     float64
	Rays    RayView
	Sprites []Sprite
}

// Snapshot projects the current engine state into an immutable value.
// All slices are fresh copies; the caller may hold them across ticks.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:              e.tick,
		Difficulty:        e.diff,
		LevelIndex:        e.levelIndex,
		Score:             e.score,
		TotalKills:        e.totalKills,
		LevelKills:        e.levelKills,
		KillTarget:        e.lvl.KillTarget,
		CheckpointIndex:   e.checkpointIndex,
		CheckpointCount:   len(e.lvl.Checkpoints),
		ObjectiveComplete: e.objectiveComplete(),
		AtExit:            e.atExit,
		ExitCountdown:     math.Max(e.exitTimerLeft, 0),
		Dead:              e.dead,
		RespawnCountdown:  math.Max(e.respawnLeft, 0),
		MuzzleFlash:       e.muzzleFlashLeft > 0,
		Achievements:      e.achievements,
		Challenges:        e.challenges,
		FOV:               e.fov,
		Player: PlayerView{
			X: e.player.X, Y: e.player.Y, Angle: e.player.Angle,
			Health: e.player.Health,
		},
	}

	s.Enemies = make([]EnemyView, len(e.enemies))
	for i, en := range e.enemies {
		s.Enemies[i] = EnemyView{
			X: en.X, Y: en.Y, Radius: en.Radius,
			Kind: en.Kind, Phase: en.Phase, HitFlash: en.HitFlash > 0,
		}
	}
	s.Bullets = make([]BulletView, len(e.bullets))
	for i, b := range e.bullets {
		s.Bullets[i] = BulletView{X: b.X, Y: b.Y}
	}
	s.Impacts = make([]ImpactView, len(e.impacts))
	for i, im := range e.impacts {
		s.Impacts[i] = ImpactView{X: im.X, Y: im.Y, Radius: im.Radius, Kind: im.Kind}
	}

	n := e.rays.Rays()
	s.Rays = RayView{
		Dist:     append([]float64(nil), e.rays.Dist[:n]...),
		Shade:    append([]float64(nil), e.rays.Shade[:n]...),
		TexU:     append([]float64(nil), e.rays.TexU[:n]...),
		Material: append([]uint8(nil), e.rays.Material[:n]...),
	}

	s.Sprites = e.collectSprites()
	return s
}

// collectSprites projects enemies, unclaimed checkpoints and the exit marker
// into screen-space sprites, occlusion-tests each against the ray distance
// buffer and sorts the result far to near for painter-order drawing.
func (e *Engine) collectSprites() []Sprite {
	sprites := make([]Sprite, 0, len(e.enemies)+4)

	for _, en := range e.enemies {
		if sp, ok := e.projectSprite(en.X, en.Y, spriteKindFor(en.Kind), en.Radius*2); ok {
			sp.Phase = en.Phase
			sp.HitFlash = en.HitFlash > 0
			sprites = append(sprites, sp)
		}
	}
	for i := e.checkpointIndex; i < len(e.lvl.Checkpoints); i++ {
		cx, cy := e.lvl.CenterOf(e.lvl.Checkpoints[i])
		if sp, ok := e.projectSprite(cx, cy, SpriteCheckpoint, level.TileSize*0.5); ok {
			sprites = append(sprites, sp)
		}
	}
	ex, ey := e.lvl.CenterOf(e.lvl.Exit)
	if sp, ok := e.projectSprite(ex, ey, SpriteExit, level.TileSize*0.7); ok {
		sprites = append(sprites, sp)
	}

	sort.Slice(sprites, func(i, j int) bool {
		return sprites[i].Dist > sprites[j].Dist
	})
	return sprites
}

// projectSprite maps a world position into a ray column and camera-plane
// depth, rejecting sprites outside the view cone or hidden behind a wall
// column nearer than the sprite.
func (e *Engine) projectSprite(x, y float64, kind SpriteKind, width float64) (Sprite, bool) {
	dx, dy := x-e.player.X, y-e.player.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return Sprite{}, false
	}

	rel := math.Atan2(dy, dx) - e.player.Angle
	for rel > math.Pi {
		rel -= 2 * math.Pi
	}
	for rel < -math.Pi {
		rel += 2 * math.Pi
	}
	halfFOV := e.fov / 2
	if math.Abs(rel) > halfFOV*1.2 {
		return Sprite{}, false
	}

	n := e.rays.Rays()
	column := (rel + halfFOV) / e.fov * float64(n-1)
	depth := dist * math.Cos(rel)

	c := core.Clamp(int(math.Round(column)), 0, n-1)
	if depth > e.rays.Dist[c]+level.TileSize*0.25 {
		return Sprite{}, false
	}

	return Sprite{Kind: kind, Column: column, Dist: depth, Width: width}, true
}
