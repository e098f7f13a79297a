package movement

import (
	"video-gallery/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultSpeed is the step length in world units per frame.
	DefaultSpeed = float32(0.05)
	// DefaultEyeHeight pins the camera to a standing viewpoint above the floor.
	DefaultEyeHeight = float32(1.5)
)

var worldUp = rl.NewVector3(0, 1, 0)

// Controller moves a first-person camera on the horizontal plane from a KeyState.
// It only writes the camera position; orientation belongs to the look control, so
// Target is shifted by the same offset to keep the view direction.
type Controller struct {
	Speed     float32
	EyeHeight float32
}

// New returns a controller. Non-positive speed falls back to DefaultSpeed.
func New(speed, eyeHeight float32) *Controller {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Controller{Speed: speed, EyeHeight: eyeHeight}
}

// Delta returns the per-frame translation for a camera looking along forward.
// forward is flattened onto XZ and normalized, so pitch does not change speed. Flags add up
// without renormalizing: diagonals are faster than axial moves and opposite flags cancel.
// The Y component is always zero.
func (c *Controller) Delta(forward rl.Vector3, keys input.KeyState) rl.Vector3 {
	if !keys.Any() {
		return rl.Vector3{}
	}
	flat := rl.Vector3Normalize(rl.NewVector3(forward.X, 0, forward.Z))
	lateral := rl.Vector3CrossProduct(worldUp, flat)

	var d rl.Vector3
	if keys.Forward {
		d = rl.Vector3Add(d, rl.Vector3Scale(flat, c.Speed))
	}
	if keys.Backward {
		d = rl.Vector3Add(d, rl.Vector3Scale(flat, -c.Speed))
	}
	if keys.Left {
		d = rl.Vector3Add(d, rl.Vector3Scale(lateral, c.Speed))
	}
	if keys.Right {
		d = rl.Vector3Add(d, rl.Vector3Scale(lateral, -c.Speed))
	}
	return d
}

// Step runs one frame: translate by Delta, then force Y to EyeHeight.
func (c *Controller) Step(cam *rl.Camera3D, keys input.KeyState) {
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	next := rl.Vector3Add(cam.Position, c.Delta(forward, keys))
	next.Y = c.EyeHeight

	shift := rl.Vector3Subtract(next, cam.Position)
	cam.Position = next
	cam.Target = rl.Vector3Add(cam.Target, shift)
}
