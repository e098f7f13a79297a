package graphics

import (
	"video-gallery/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and runs the frame loop. Each frame it calls update (input, camera),
// then clears the screen and calls draw. When the window is closed it calls unload (if set)
// while the GL context still exists, then closes the window.
// ESC is not an exit key: the scene uses it to release the pointer.
func Run(cfg config.WindowConfig, update, draw, unload func()) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := int32(cfg.Width), int32(cfg.Height)
	if cfg.Fullscreen {
		width, height = 0, 0
	}
	rl.InitWindow(width, height, cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if unload != nil {
		unload()
	}
}
