package pointerlock

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultSensitivity is radians of rotation per pixel of mouse movement.
	DefaultSensitivity = float32(0.003)
	// maxPitch keeps the view just short of vertical so the flattened forward never vanishes.
	maxPitch = 89 * math32.Pi / 180
)

// Cursor captures or releases the mouse. RaylibCursor hides the cursor and reports deltas.
type Cursor interface {
	Disable()
	Enable()
}

// RaylibCursor drives raylib cursor capture. Only valid after the window exists.
type RaylibCursor struct{}

func (RaylibCursor) Disable() { rl.DisableCursor() }
func (RaylibCursor) Enable()  { rl.EnableCursor() }

// Control is mouse-look while the pointer is captured. It only rotates: Target moves
// around Position, Position is never written.
type Control struct {
	cursor      Cursor
	locked      bool
	Sensitivity float32
}

// New returns an unlocked control. Non-positive sensitivity uses DefaultSensitivity.
func New(cursor Cursor, sensitivity float32) *Control {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Control{cursor: cursor, Sensitivity: sensitivity}
}

// IsLocked reports whether mouse movement currently drives the view.
func (c *Control) IsLocked() bool {
	return c.locked
}

// Lock captures the pointer. A nil cursor means capture is unavailable and the call is a no-op.
func (c *Control) Lock() {
	if c.locked || c.cursor == nil {
		return
	}
	c.cursor.Disable()
	c.locked = true
}

// Unlock releases the pointer. Safe to call when already unlocked.
func (c *Control) Unlock() {
	if !c.locked {
		return
	}
	c.cursor.Enable()
	c.locked = false
}

// Look turns the camera by a mouse delta in pixels. Ignored while unlocked.
// Moving the mouse right turns right; moving it down looks down.
func (c *Control) Look(cam *rl.Camera3D, delta rl.Vector2) {
	if !c.locked || (delta.X == 0 && delta.Y == 0) {
		return
	}
	yaw, pitch := Angles(rl.Vector3Subtract(cam.Target, cam.Position))
	yaw += delta.X * c.Sensitivity
	pitch -= delta.Y * c.Sensitivity
	pitch = math32.Max(-maxPitch, math32.Min(maxPitch, pitch))
	cam.Target = rl.Vector3Add(cam.Position, Direction(yaw, pitch))
}

// Angles returns yaw (around +Y, zero facing -Z, positive toward +X) and pitch of a view vector.
func Angles(forward rl.Vector3) (yaw, pitch float32) {
	f := rl.Vector3Normalize(forward)
	yaw = math32.Atan2(f.X, -f.Z)
	pitch = math32.Asin(math32.Max(-1, math32.Min(1, f.Y)))
	return yaw, pitch
}

// Direction is the unit view vector for yaw and pitch; inverse of Angles.
func Direction(yaw, pitch float32) rl.Vector3 {
	cp := math32.Cos(pitch)
	return rl.NewVector3(math32.Sin(yaw)*cp, math32.Sin(pitch), -math32.Cos(yaw)*cp)
}
