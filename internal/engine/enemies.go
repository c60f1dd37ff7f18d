package engine

import (
	"math"

	"github.com/vovakirdan/tui-corridor/internal/level"
)

// updateEnemies advances enemy AI: each enemy seeks the player at its
// kind-scaled speed with the same per-axis wall collision the player uses,
// and deals contact damage on overlap subject to a per-enemy cooldown.
func (e *Engine) updateEnemies(dt float64) {
	for i := range e.enemies {
		en := &e.enemies[i]
		en.Phase += dt * enemyPhaseRate
		if en.Cooldown > 0 {
			en.Cooldown -= dt
		}
		if en.HitFlash > 0 {
			en.HitFlash -= dt
		}

		dx := e.player.X - en.X
		dy := e.player.Y - en.Y
		dist := math.Hypot(dx, dy)
		if dist > 1 {
			speed := e.par.enemySpeed * en.speedMult * dt
			en.X, en.Y = e.moveWithCollision(en.X, en.Y, dx/dist*speed, dy/dist*speed, en.Radius)
		}

		if dist < en.Radius+playerRadius && en.Cooldown <= 0 {
			en.Cooldown = contactCooldown
			e.hurtPlayer(e.par.contactDamage)
		}
	}
}

// hurtPlayer applies contact damage and triggers the death transition when
// health reaches zero.
func (e *Engine) hurtPlayer(damage int) {
	e.damageTaken = true
	e.player.Health -= damage
	if e.player.Health <= 0 {
		e.player.Health = 0
		e.dead = true
		e.diedThisRun = true
		e.respawnLeft = respawnTime
	}
}

// rollKind picks an enemy archetype from the engine-owned seeded generator
// using a fixed weight distribution.
func (e *Engine) rollKind() EnemyKind {
	switch roll := e.rng.Float64(); {
	case roll < 0.55:
		return Grunt
	case roll < 0.85:
		return Scout
	default:
		return Brute
	}
}

// updateSpawning runs the timer-gated spawn routine: on expiry it makes a
// bounded number of random open-tile placement attempts, rejecting tiles too
// close to the player, and scales the new enemy by its kind multipliers.
func (e *Engine) updateSpawning(dt float64) {
	e.spawnTimer -= dt
	if e.spawnTimer > 0 {
		return
	}
	e.spawnTimer = spawnIntervalFor(e.par.spawnInterval, e.levelIndex)

	if len(e.enemies) >= maxLiveEnemies {
		return
	}

	minDist := spawnMinDistTiles * level.TileSize
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		tx := e.rng.Intn(e.lvl.Width)
		ty := e.rng.Intn(e.lvl.Height)
		if e.lvl.Solid(tx, ty) {
			continue
		}
		x, y := (float64(tx)+0.5)*level.TileSize, (float64(ty)+0.5)*level.TileSize
		if math.Hypot(x-e.player.X, y-e.player.Y) < minDist {
			continue
		}

		kind := e.rollKind()
		e.enemies = append(e.enemies, Enemy{
			X:         x,
			Y:         y,
			Radius:    kind.radius(),
			Health:    e.par.enemyHealth * kind.healthMult(),
			Kind:      kind,
			speedMult: kind.speedMult(),
		})
		return
	}
}
