package engine

import (
	"math"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

// updateFiring handles the shoot cooldown and spawns a bullet when the fire
// input lands on a ready weapon.
func (e *Engine) updateFiring(in core.InputFrame, dt float64) {
	if e.fireCooldownLeft > 0 {
		e.fireCooldownLeft -= dt
	}
	if !in.Fire || e.fireCooldownLeft > 0 {
		return
	}
	e.fireCooldownLeft = fireCooldown
	e.muzzleFlashLeft = muzzleFlash
	e.shotsFired++

	sin, cos := math.Sincos(e.player.Angle)
	e.bullets = append(e.bullets, Bullet{
		X:    e.player.X + cos*muzzleOffset,
		Y:    e.player.Y + sin*muzzleOffset,
		VX:   cos * e.par.bulletSpeed,
		VY:   sin * e.par.bulletSpeed,
		Life: bulletLifetime,
	})
}

// updateBullets advances every bullet with sub-stepped motion. The sub-step
// count is chosen so no single step travels farther than maxSubStepDist,
// which prevents tunneling through thin walls or small enemies.
func (e *Engine) updateBullets(dt float64) {
	for i := 0; i < len(e.bullets); {
		b := &e.bullets[i]
		b.Life -= dt
		if b.Life <= 0 {
			e.removeBullet(i)
			continue
		}

		travel := math.Hypot(b.VX, b.VY) * dt
		steps := int(math.Ceil(travel/maxSubStepDist)) + 1
		stepDT := dt / float64(steps)

		alive := true
		for s := 0; s < steps && alive; s++ {
			px, py := b.X, b.Y
			b.X += b.VX * stepDT
			b.Y += b.VY * stepDT

			if e.lvl.SolidAtWorld(b.X, b.Y) {
				e.spawnImpact(px, py, WallHit)
				alive = false
				break
			}
			if hit := e.nearestEnemyOnSegment(px, py, b.X, b.Y); hit >= 0 {
				e.damageEnemy(hit)
				alive = false
			}
		}

		if !alive {
			e.removeBullet(i)
			continue
		}
		i++
	}
}

// nearestEnemyOnSegment returns the index of the closest enemy whose hit
// radius (plus a fixed assist margin) intersects the segment, or -1.
// "Closest" is measured along the segment so the first enemy in the bullet's
// path claims the hit.
func (e *Engine) nearestEnemyOnSegment(x0, y0, x1, y1 float64) int {
	best := -1
	bestT := math.Inf(1)
	for i := range e.enemies {
		en := &e.enemies[i]
		t, d := pointSegmentDistance(en.X, en.Y, x0, y0, x1, y1)
		if d <= en.Radius+bulletRadius+hitAssistMargin && t < bestT {
			best = i
			bestT = t
		}
	}
	return best
}

// pointSegmentDistance returns the segment parameter t in [0, 1] of the
// closest point to (px, py) and the distance to it.
func pointSegmentDistance(px, py, x0, y0, x1, y1 float64) (t, dist float64) {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if lenSq > 0 {
		t = ((px-x0)*dx + (py-y0)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	cx, cy := x0+t*dx, y0+t*dy
	return t, math.Hypot(px-cx, py-cy)
}

// damageEnemy applies one bullet's damage to the enemy at index i, removing
// it and scoring the kill if it dies. levelKills is set the instant the
// killing hit lands, which is also when the objective can complete.
func (e *Engine) damageEnemy(i int) {
	en := &e.enemies[i]
	e.shotsHit++
	en.Health -= en.Kind.bulletDamage()
	en.HitFlash = hitFlashTime
	e.spawnImpact(en.X, en.Y, EnemyHit)

	if en.Health > 0 {
		return
	}

	e.score += en.Kind.score()
	e.totalKills++
	if e.levelKills < e.lvl.KillTarget {
		e.levelKills++
	}
	e.unlock(AchFirstBlood)
	if e.totalKills >= 100 {
		e.unlock(AchHundredKills)
	}

	// Swap-remove keeps the live list compact without pointer aliasing.
	e.enemies[i] = e.enemies[len(e.enemies)-1]
	e.enemies = e.enemies[:len(e.enemies)-1]
}

func (e *Engine) removeBullet(i int) {
	e.bullets[i] = e.bullets[len(e.bullets)-1]
	e.bullets = e.bullets[:len(e.bullets)-1]
}

// spawnImpact adds a cosmetic impact effect at (x, y).
func (e *Engine) spawnImpact(x, y float64, kind ImpactKind) {
	e.impacts = append(e.impacts, Impact{
		X:      x,
		Y:      y,
		Radius: impactBaseRadius,
		Life:   impactLifetime,
		Kind:   kind,
	})
}

// updateImpacts decays impact effects, growing their radius over life.
func (e *Engine) updateImpacts(dt float64) {
	for i := 0; i < len(e.impacts); {
		im := &e.impacts[i]
		im.Life -= dt
		if im.Life <= 0 {
			e.impacts[i] = e.impacts[len(e.impacts)-1]
			e.impacts = e.impacts[:len(e.impacts)-1]
			continue
		}
		grown := 1 + 2*(1-im.Life/impactLifetime)
		im.Radius = impactBaseRadius * grown
		i++
	}
}
