package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MouseSource is the pointer capability the scene reads from.
// Ray returns the picking ray for a click: from the screen center when the pointer is captured
// (the cursor is hidden and the crosshair marks the target), else from the cursor position.
type MouseSource interface {
	LeftPressed() bool
	Delta() rl.Vector2
	Ray(cam rl.Camera3D, centered bool) rl.Ray
}

// RaylibMouse reads the mouse through raylib. Only valid after the window exists.
type RaylibMouse struct{}

func (RaylibMouse) LeftPressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

func (RaylibMouse) Delta() rl.Vector2 {
	return rl.GetMouseDelta()
}

func (RaylibMouse) Ray(cam rl.Camera3D, centered bool) rl.Ray {
	pos := rl.GetMousePosition()
	if centered {
		pos = rl.NewVector2(float32(rl.GetScreenWidth())/2, float32(rl.GetScreenHeight())/2)
	}
	return rl.GetScreenToWorldRay(pos, cam)
}
