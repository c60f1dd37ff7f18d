package engine

import (
	"math"

	"github.com/vovakirdan/tui-corridor/internal/core"
	"github.com/vovakirdan/tui-corridor/internal/level"
)

// Achievement indexes the campaign-scoped unlock flags. Flags only ever
// transition false→true within a campaign.
type Achievement int

const (
	AchFirstBlood Achievement = iota // first kill of the campaign
	AchHundredKills
	AchLevelFive // reached level 5
	AchUntouchable
	AchMarksman

	AchievementCount
)

// Challenge indexes the per-level bonus conditions, evaluated once at level
// advance and reset on level load.
type Challenge int

const (
	ChNoDamage Challenge = iota
	ChFastClear
	ChAccuracy

	ChallengeCount
)

// unlock sets an achievement flag; already-unlocked flags are untouched so
// the transition stays monotonic.
func (e *Engine) unlock(a Achievement) {
	if a >= 0 && a < AchievementCount {
		e.achievements[a] = true
	}
}

// objectiveComplete reports whether the level kill requirement is met.
func (e *Engine) objectiveComplete() bool {
	return e.levelKills >= e.lvl.KillTarget
}

// updateProgress evaluates checkpoint and exit proximity after movement.
func (e *Engine) updateProgress() {
	// Checkpoints are claimed strictly in order, one edge-triggered event per
	// checkpoint. The index never decreases within a level.
	if e.checkpointIndex < len(e.lvl.Checkpoints) {
		cp := e.lvl.Checkpoints[e.checkpointIndex]
		cx, cy := e.lvl.CenterOf(cp)
		if math.Hypot(e.player.X-cx, e.player.Y-cy) < checkpointRadius {
			e.checkpointIndex++
			e.autosave = true
		}
	}

	if !e.objectiveComplete() {
		return
	}
	ex, ey := e.lvl.CenterOf(e.lvl.Exit)
	if math.Hypot(e.player.X-ex, e.player.Y-ey) < exitRadius {
		if !e.atExit {
			e.atExit = true
			e.exitTimerLeft = exitHoldTime
		}
	} else {
		e.atExit = false
	}
}

// updateExit runs while the player stands on the exit with the objective
// complete: the fixed timer counts down, short-circuited by interact.
func (e *Engine) updateExit(in core.InputFrame, dt float64) {
	e.exitTimerLeft -= dt
	if in.Interact || e.exitTimerLeft <= 0 {
		e.advanceLevel()
	}
}

// advanceLevel evaluates challenges and achievements for the finished level,
// loads the next one and signals autosave.
func (e *Engine) advanceLevel() {
	if !e.damageTaken && !e.diedThisRun {
		e.challenges[ChNoDamage] = true
		e.unlock(AchUntouchable)
	}
	if e.levelTime < fastClearSeconds {
		e.challenges[ChFastClear] = true
	}
	if e.shotsFired >= accuracyMinShots &&
		float64(e.shotsHit)/float64(e.shotsFired) >= accuracyTarget {
		e.challenges[ChAccuracy] = true
		e.unlock(AchMarksman)
	}

	e.levelIndex++
	if e.levelIndex >= 5 {
		e.unlock(AchLevelFive)
	}
	e.loadLevel()
	e.autosave = true
}

// updateDead advances the respawn countdown. All input is ignored except the
// explicit restart signal, which reloads the current level configuration.
func (e *Engine) updateDead(in core.InputFrame, dt float64) {
	if in.Restart {
		e.loadLevel()
		return
	}
	e.respawnLeft -= dt
	if e.respawnLeft > 0 {
		return
	}

	// Respawn at the last claimed checkpoint, or the level start, with full
	// health. Campaign score and level progress survive death.
	p := e.lvl.Start
	if e.checkpointIndex > 0 && e.checkpointIndex <= len(e.lvl.Checkpoints) {
		p = e.lvl.Checkpoints[e.checkpointIndex-1]
	}
	x, y := e.lvl.CenterOf(p)
	e.player.X, e.player.Y = x, y
	e.player.Health = e.par.startHealth
	e.dead = false
	e.respawnLeft = 0
	e.clearEnemiesNear(x, y, 3*level.TileSize)
}

// clearEnemiesNear removes enemies within radius of (x, y) so a respawn
// never lands inside a contact-damage loop.
func (e *Engine) clearEnemiesNear(x, y, radius float64) {
	for i := 0; i < len(e.enemies); {
		en := e.enemies[i]
		if math.Hypot(en.X-x, en.Y-y) < radius {
			e.enemies[i] = e.enemies[len(e.enemies)-1]
			e.enemies = e.enemies[:len(e.enemies)-1]
			continue
		}
		i++
	}
}
