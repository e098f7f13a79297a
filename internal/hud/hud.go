package hud

import (
	"fmt"
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	crosshair  = 8
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
	maxLineChars   = 120
)

const lookHint = "Click to look around. WASD / arrows to move. Click a video to toggle it."

var (
	hintBg    = rl.NewColor(0, 0, 0, 160)
	logColor  = rl.NewColor(220, 220, 220, 230)
	crossHair = rl.NewColor(255, 255, 255, 200)
)

// State is what the overlay shows for one frame.
type State struct {
	Locked   bool
	FPS      int32
	LogLines []string
}

// HUD draws the 2D overlay: crosshair while looking, a hint while the pointer is free,
// FPS (top-right, green) and the most recent log lines (bottom-left).
type HUD struct {
	ShowFPS bool
	ShowLog bool

	frameCount  uint32
	lastFpsText string
}

// New returns a HUD with the given overlays enabled.
func New(showFPS, showLog bool) *HUD {
	return &HUD{ShowFPS: showFPS, ShowLog: showLog}
}

// fpsText returns the cached FPS label, refreshed every updateInterval frames.
func (h *HUD) fpsText(fps int32) string {
	h.frameCount++
	if h.lastFpsText == "" || h.frameCount%updateInterval == 0 {
		h.lastFpsText = fmt.Sprintf("FPS: %d", fps)
	}
	return h.lastFpsText
}

// Draw renders the overlay. Call after the 3D pass.
func (h *HUD) Draw(s State) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if s.Locked {
		cx, cy := screenW/2, screenH/2
		rl.DrawLine(cx-crosshair, cy, cx+crosshair, cy, crossHair)
		rl.DrawLine(cx, cy-crosshair, cx, cy+crosshair, crossHair)
	} else {
		w := rl.MeasureText(lookHint, fontSize)
		x := (screenW - w) / 2
		rl.DrawRectangle(x-padding, padding, w+2*padding, lineHeight+padding, hintBg)
		rl.DrawText(lookHint, x, padding+padding/2, fontSize, rl.White)
	}

	if h.ShowFPS {
		text := h.fpsText(s.FPS)
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, padding, fontSize, rl.Green)
	}

	if h.ShowLog {
		lines := FormatLines(s.LogLines)
		y := screenH - padding - int32(len(lines))*lineHeight
		for _, line := range lines {
			rl.DrawText(line, padding, y, fontSize, logColor)
			y += lineHeight
		}
	}
}

// FormatLines trims log lines for display: long lines are cut with "...".
func FormatLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) > maxLineChars {
			cut := maxLineChars - 3
			for cut > 0 && !utf8.RuneStart(l[cut]) {
				cut--
			}
			l = l[:cut] + "..."
		}
		out = append(out, l)
	}
	return out
}
