package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-corridor/internal/core"
	"github.com/vovakirdan/tui-corridor/internal/engine"
	"github.com/vovakirdan/tui-corridor/internal/level"
)

// Shade ramp for wall columns, brightest first.
var wallGlyphs = [...]rune{'█', '▓', '▒', '░'}

func wallGlyph(shade float64) rune {
	switch {
	case shade >= 0.75:
		return wallGlyphs[0]
	case shade >= 0.5:
		return wallGlyphs[1]
	case shade >= 0.25:
		return wallGlyphs[2]
	default:
		return wallGlyphs[3]
	}
}

func wallColor(material uint8, shade float64) core.Color {
	if shade < 0.2 {
		return core.ColorDarkGray
	}
	switch material {
	case level.MaterialConcrete:
		return core.ColorGray
	case level.MaterialMetal:
		return core.ColorCyan
	default:
		return core.ColorRed
	}
}

func spriteCell(kind engine.SpriteKind, flash bool) core.Cell {
	if flash {
		return core.Cell{Rune: '*', Color: core.ColorBrightWhite}
	}
	switch kind {
	case engine.SpriteScout:
		return core.Cell{Rune: 'S', Color: core.ColorYellow}
	case engine.SpriteBrute:
		return core.Cell{Rune: 'B', Color: core.ColorBrightRed}
	case engine.SpriteCheckpoint:
		return core.Cell{Rune: '◆', Color: core.ColorBrightGreen}
	case engine.SpriteExit:
		return core.Cell{Rune: '▼', Color: core.ColorBrightYellow}
	default:
		return core.Cell{Rune: 'G', Color: core.ColorGreen}
	}
}

// drawFrame paints one simulation snapshot into the screen buffer:
// floor and ceiling, shaded wall columns, billboard sprites, crosshair,
// HUD rows and state banners.
func drawFrame(s *core.Screen, snap engine.Snapshot) {
	s.Clear()

	w, h := s.Width(), s.Height()
	viewTop := 1
	viewH := h - 2
	if viewH < 1 {
		viewH = h
		viewTop = 0
	}
	horizon := viewTop + viewH/2

	// Floor texture below the horizon.
	for y := horizon + 1; y < viewTop+viewH; y++ {
		for x := 0; x < w; x++ {
			s.SetCell(x, y, core.Cell{Rune: '.', Color: core.ColorDarkGray})
		}
	}

	n := len(snap.Rays.Dist)
	if n == 0 {
		return
	}

	// Wall columns. Screen columns map onto ray columns so the two can have
	// different resolutions.
	for x := 0; x < w; x++ {
		i := x * n / w
		if i >= n {
			i = n - 1
		}
		dist := snap.Rays.Dist[i]
		if dist < 1 {
			dist = 1
		}

		lineH := int(float64(viewH) * level.TileSize / dist)
		if lineH > viewH {
			lineH = viewH
		}
		if lineH < 1 {
			lineH = 1
		}

		shade := snap.Rays.Shade[i]
		cell := core.Cell{
			Rune:  wallGlyph(shade),
			Color: wallColor(snap.Rays.Material[i], shade),
		}
		s.DrawVLine(x, horizon-lineH/2, lineH, cell)
	}

	drawSprites(s, snap, viewTop, viewH, horizon)

	// Crosshair, brightened while the muzzle flash is live.
	cross := core.Cell{Rune: '+', Color: core.ColorWhite}
	if snap.MuzzleFlash {
		cross = core.Cell{Rune: '✶', Color: core.ColorBrightYellow}
	}
	s.SetCell(w/2, horizon, cross)

	drawHUD(s, snap)
	drawBanners(s, snap, horizon)
}

// drawSprites paints the pre-sorted billboard list far to near, re-testing
// occlusion per screen column against the wall distance of that column.
func drawSprites(s *core.Screen, snap engine.Snapshot, viewTop, viewH, horizon int) {
	w := s.Width()
	n := len(snap.Rays.Dist)

	for _, sp := range snap.Sprites {
		if sp.Dist < 1 {
			continue
		}
		size := int(float64(viewH) * sp.Width / sp.Dist)
		if size < 1 {
			size = 1
		}
		if size > viewH {
			size = viewH
		}
		half := size / 2

		cx := int(sp.Column / float64(n-1) * float64(w-1))
		cell := spriteCell(sp.Kind, sp.HitFlash)

		for x := cx - half/2; x <= cx+half/2; x++ {
			if x < 0 || x >= w {
				continue
			}
			i := x * n / w
			if i >= n {
				i = n - 1
			}
			if snap.Rays.Dist[i] < sp.Dist {
				continue // wall in front of this sprite column
			}
			top := horizon - half
			for y := top; y < top+size; y++ {
				if y >= viewTop && y < viewTop+viewH {
					s.SetCell(x, y, cell)
				}
			}
		}
	}
}

// drawHUD paints the top status row and the bottom hint row.
func drawHUD(s *core.Screen, snap engine.Snapshot) {
	w := s.Width()

	hpColor := core.ColorBrightGreen
	switch {
	case snap.Player.Health <= 25:
		hpColor = core.ColorBrightRed
	case snap.Player.Health <= 50:
		hpColor = core.ColorYellow
	}

	left := fmt.Sprintf(" HP %3d  Score %d", snap.Player.Health, snap.Score)
	s.DrawText(0, 0, left, hpColor)

	ach := 0
	for _, unlocked := range snap.Achievements {
		if unlocked {
			ach++
		}
	}
	right := fmt.Sprintf("Kills %d/%d  CP %d/%d  Ach %d/%d  L%d %s ",
		snap.LevelKills, snap.KillTarget,
		snap.CheckpointIndex, snap.CheckpointCount,
		ach, len(snap.Achievements),
		snap.LevelIndex+1, snap.Difficulty)
	s.DrawText(w-len(right), 0, right, core.ColorGray)

	hint := " wasd move  ←→ turn  space fire  e interact  q quit"
	s.DrawText(0, s.Height()-1, hint, core.ColorDarkGray)
}

// drawBanners paints centered state messages over the 3D view.
func drawBanners(s *core.Screen, snap engine.Snapshot, horizon int) {
	switch {
	case snap.Dead:
		s.DrawTextCentered(horizon-1, "YOU DIED", core.ColorBrightRed)
		msg := fmt.Sprintf("respawning in %.1fs  (r to restart level)", snap.RespawnCountdown)
		s.DrawTextCentered(horizon+1, msg, core.ColorWhite)

	case snap.AtExit:
		msg := fmt.Sprintf("EXIT  leaving in %.1fs  (e to go now)", snap.ExitCountdown)
		s.DrawTextCentered(horizon-horizonOffset(s), msg, core.ColorBrightYellow)

	case snap.ObjectiveComplete:
		s.DrawTextCentered(1, "objective complete  ▼ find the exit", core.ColorBrightGreen)
	}
}

func horizonOffset(s *core.Screen) int {
	if s.Height() >= 12 {
		return 3
	}
	return 1
}

// renderFrame draws the snapshot and converts the buffer to a styled string.
func renderFrame(s *core.Screen, snap engine.Snapshot) string {
	drawFrame(s, snap)
	return RenderScreen(s)
}
