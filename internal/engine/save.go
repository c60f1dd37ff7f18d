package engine

import (
	"time"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

// SaveRecord is the value shape persisted by the host. Geometry is never
// stored: the level is re-derived from seed, index and difficulty on load.
type SaveRecord struct {
	Name       string
	SavedAt    time.Time
	Difficulty string

	CampaignSeed int64
	LevelIndex   int
	Score        int
	TotalKills   int

	PlayerX     float64
	PlayerY     float64
	PlayerAngle float64
	Health      int

	CheckpointIndex int
	LevelKills      int

	Achievements [AchievementCount]bool
	Challenges   [ChallengeCount]bool
}

// CreateSave projects the current engine state into a save record.
// Pure: no I/O happens here.
func (e *Engine) CreateSave(name string) SaveRecord {
	return SaveRecord{
		Name:            name,
		SavedAt:         time.Now(),
		Difficulty:      e.diff.String(),
		CampaignSeed:    e.campaignSeed,
		LevelIndex:      e.levelIndex,
		Score:           e.score,
		TotalKills:      e.totalKills,
		PlayerX:         e.player.X,
		PlayerY:         e.player.Y,
		PlayerAngle:     e.player.Angle,
		Health:          e.player.Health,
		CheckpointIndex: e.checkpointIndex,
		LevelKills:      e.levelKills,
		Achievements:    e.achievements,
		Challenges:      e.challenges,
	}
}

// LoadSave resumes a campaign from a save record. The level is regenerated
// from the stored seed/index/difficulty; restored counters are clamped into
// valid range and a player position inside a wall is re-snapped to the level
// start, so corrupted records degrade instead of failing.
func (e *Engine) LoadSave(rec SaveRecord) {
	diff, _ := core.ParseDifficulty(rec.Difficulty)
	e.diff = diff
	e.par = paramsFor(diff)
	e.campaignSeed = rec.CampaignSeed
	e.levelIndex = core.Max(rec.LevelIndex, 0)
	e.tick = 0
	e.autosave = false

	e.loadLevel()

	e.score = core.Max(rec.Score, 0)
	e.totalKills = core.Max(rec.TotalKills, 0)
	e.achievements = rec.Achievements
	e.challenges = rec.Challenges

	e.levelKills = core.Clamp(rec.LevelKills, 0, e.lvl.KillTarget)
	e.checkpointIndex = core.Clamp(rec.CheckpointIndex, 0, len(e.lvl.Checkpoints))
	e.player.Health = core.Clamp(rec.Health, 1, e.par.startHealth)
	e.player.Angle = normalizeAngle(rec.PlayerAngle)

	if e.bodyFits(rec.PlayerX, rec.PlayerY, playerRadius) {
		e.player.X = rec.PlayerX
		e.player.Y = rec.PlayerY
	}
	// else: loadLevel already placed the player at the level start.

	e.castRays()
}
