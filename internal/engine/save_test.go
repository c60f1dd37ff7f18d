package engine

import (
	"testing"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

func TestSaveRoundTrip(t *testing.T) {
	a := newTestEngine(core.Hard)
	for i := 0; i < 120; i++ {
		a.Update(core.InputFrame{Forward: true, Fire: i%4 == 0}, 1.0/60)
	}
	a.score = 340
	a.totalKills = 17
	a.unlock(AchFirstBlood)

	rec := a.CreateSave("slot1")
	if rec.Difficulty != "hard" {
		t.Errorf("saved difficulty %q, want %q", rec.Difficulty, "hard")
	}

	b := NewGame()
	b.LoadSave(rec)

	if b.diff != core.Hard {
		t.Errorf("restored difficulty %v, want %v", b.diff, core.Hard)
	}
	if b.score != 340 || b.totalKills != 17 {
		t.Errorf("restored score/kills %d/%d, want 340/17", b.score, b.totalKills)
	}
	if !b.achievements[AchFirstBlood] {
		t.Error("achievements lost across save round-trip")
	}
	if b.player.X != rec.PlayerX || b.player.Y != rec.PlayerY {
		t.Error("valid player position should be restored exactly")
	}
	if b.player.Health != rec.Health {
		t.Errorf("restored health %d, want %d", b.player.Health, rec.Health)
	}

	// The level is regenerated, not stored: tiles must match the original.
	la, lb := a.lvl, b.lvl
	if la.Seed != lb.Seed || la.KillTarget != lb.KillTarget {
		t.Fatal("regenerated level differs from saved campaign level")
	}
	for i := range la.Tiles {
		if la.Tiles[i] != lb.Tiles[i] {
			t.Fatal("regenerated tiles differ from saved campaign level")
		}
	}
}

func TestLoadSaveClampsCorruptRecord(t *testing.T) {
	e := NewGame()
	e.LoadSave(SaveRecord{
		Difficulty:      "medium",
		CampaignSeed:    99,
		LevelIndex:      -3,
		Score:           -100,
		TotalKills:      -5,
		PlayerX:         -500, // outside the map, inside implicit wall
		PlayerY:         -500,
		PlayerAngle:     100,
		Health:          0,
		CheckpointIndex: 999,
		LevelKills:      999,
	})

	if e.levelIndex != 0 {
		t.Errorf("level index %d, want 0", e.levelIndex)
	}
	if e.score != 0 || e.totalKills != 0 {
		t.Errorf("negative counters not clamped: score %d kills %d", e.score, e.totalKills)
	}
	if e.player.Health < 1 {
		t.Errorf("health %d, must be at least 1", e.player.Health)
	}
	if e.levelKills > e.lvl.KillTarget {
		t.Errorf("level kills %d exceed target %d", e.levelKills, e.lvl.KillTarget)
	}
	if e.checkpointIndex > len(e.lvl.Checkpoints) {
		t.Errorf("checkpoint index %d out of range", e.checkpointIndex)
	}
	if e.player.Angle < 0 || e.player.Angle >= 7 {
		t.Errorf("angle %v not normalized", e.player.Angle)
	}

	// The stored position is inside a wall, so the player re-snaps to start.
	sx, sy := e.lvl.CenterOf(e.lvl.Start)
	if e.player.X != sx || e.player.Y != sy {
		t.Error("in-wall position should re-snap to level start")
	}

	// A clamped load is still playable.
	e.Update(core.InputFrame{Forward: true}, 1.0/60)
}

func TestLoadSaveUnknownDifficultyDefaults(t *testing.T) {
	e := NewGame()
	e.LoadSave(SaveRecord{Difficulty: "nightmare", CampaignSeed: 7})
	if e.diff != core.Medium {
		t.Errorf("unknown difficulty mapped to %v, want %v", e.diff, core.Medium)
	}
}
