package engine

import "github.com/vovakirdan/tui-corridor/internal/core"

// params is the per-difficulty balance table. All linear quantities are in
// world units (one tile = 64 units) and seconds.
type params struct {
	startHealth   int
	moveSpeed     float64
	turnSpeed     float64
	bulletSpeed   float64
	enemySpeed    float64
	enemyHealth   float64
	contactDamage int
	spawnInterval float64
}

// paramsFor returns the balance table for a difficulty. The switch is
// exhaustive over the closed Difficulty enum.
func paramsFor(diff core.Difficulty) params {
	switch diff {
	case core.Easy:
		return params{
			startHealth:   130,
			moveSpeed:     225,
			turnSpeed:     2.50,
			bulletSpeed:   780,
			enemySpeed:    86,
			enemyHealth:   55,
			contactDamage: 7,
			spawnInterval: 1.25,
		}
	case core.Medium:
		return params{
			startHealth:   100,
			moveSpeed:     215,
			turnSpeed:     2.35,
			bulletSpeed:   740,
			enemySpeed:    98,
			enemyHealth:   70,
			contactDamage: 10,
			spawnInterval: 1.00,
		}
	case core.Hard:
		return params{
			startHealth:   85,
			moveSpeed:     205,
			turnSpeed:     2.20,
			bulletSpeed:   710,
			enemySpeed:    115,
			enemyHealth:   82,
			contactDamage: 13,
			spawnInterval: 0.86,
		}
	case core.Hell:
		return params{
			startHealth:   70,
			moveSpeed:     195,
			turnSpeed:     2.05,
			bulletSpeed:   680,
			enemySpeed:    136,
			enemyHealth:   94,
			contactDamage: 16,
			spawnInterval: 0.72,
		}
	default:
		return paramsFor(core.Medium)
	}
}

// spawnIntervalFor shortens the base spawn interval as the campaign deepens,
// floored so late levels stay playable.
func spawnIntervalFor(base float64, levelIndex int) float64 {
	interval := base - 0.05*float64(levelIndex)
	if interval < 0.35 {
		interval = 0.35
	}
	return interval
}

// Simulation tuning constants shared across difficulties.
const (
	maxDeltaTime = 0.1 // dt safety ceiling, guards against frame hitches

	playerRadius = 14.0
	muzzleOffset = 20.0
	muzzleFlash  = 0.06
	fireCooldown = 0.18

	bulletRadius    = 4.0
	bulletLifetime  = 1.2
	maxSubStepDist  = 16.0 // max bullet travel per sub-step, prevents tunneling
	hitAssistMargin = 6.0

	contactCooldown = 0.8
	enemyPhaseRate  = 6.0
	hitFlashTime    = 0.15

	impactLifetime   = 0.35
	impactBaseRadius = 6.0

	spawnAttempts     = 12
	spawnMinDistTiles = 4.0
	maxLiveEnemies    = 22

	checkpointRadius = 48.0
	exitRadius       = 40.0

	exitHoldTime = 1.5
	respawnTime  = 3.0

	fastClearSeconds = 90.0
	accuracyTarget   = 0.70
	accuracyMinShots = 10
)
