package pointerlock

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeCursor struct {
	disabled, enabled int
}

func (f *fakeCursor) Disable() { f.disabled++ }
func (f *fakeCursor) Enable()  { f.enabled++ }

func TestLockUnlock(t *testing.T) {
	cur := &fakeCursor{}
	c := New(cur, 0)
	if c.IsLocked() {
		t.Fatal("new control is locked")
	}
	c.Lock()
	c.Lock()
	if !c.IsLocked() || cur.disabled != 1 {
		t.Errorf("after double Lock: locked=%v disabled=%d", c.IsLocked(), cur.disabled)
	}
	c.Unlock()
	c.Unlock()
	if c.IsLocked() || cur.enabled != 1 {
		t.Errorf("after double Unlock: locked=%v enabled=%d", c.IsLocked(), cur.enabled)
	}
}

func TestLockWithoutCursor(t *testing.T) {
	c := New(nil, 0)
	c.Lock()
	if c.IsLocked() {
		t.Error("Lock with no cursor capability should stay unlocked")
	}
	c.Unlock()
}

func TestLookIgnoredWhenUnlocked(t *testing.T) {
	c := New(&fakeCursor{}, 0)
	cam := rl.Camera3D{Position: rl.NewVector3(0, 1.5, 4), Target: rl.NewVector3(0, 1.5, 3)}
	c.Look(&cam, rl.NewVector2(100, 50))
	if cam.Target != rl.NewVector3(0, 1.5, 3) {
		t.Errorf("Target moved to %+v while unlocked", cam.Target)
	}
}

func TestLookRotatesOnly(t *testing.T) {
	c := New(&fakeCursor{}, 0.01)
	c.Lock()
	pos := rl.NewVector3(2, 1.5, 4)
	cam := rl.Camera3D{Position: pos, Target: rl.NewVector3(2, 1.5, 3)}
	c.Look(&cam, rl.NewVector2(30, -20))
	if cam.Position != pos {
		t.Errorf("Position changed to %+v", cam.Position)
	}
	yaw, pitch := Angles(rl.Vector3Subtract(cam.Target, cam.Position))
	if math32.Abs(yaw-0.3) > 1e-4 || math32.Abs(pitch-0.2) > 1e-4 {
		t.Errorf("yaw=%v pitch=%v, want 0.3 and 0.2", yaw, pitch)
	}
	if d := rl.Vector3Subtract(cam.Target, cam.Position); d.X <= 0 {
		t.Errorf("moving the mouse right should turn toward +X, got %+v", d)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(&fakeCursor{}, 0.01)
	c.Lock()
	cam := rl.Camera3D{Position: rl.NewVector3(0, 1.5, 0), Target: rl.NewVector3(0, 1.5, -1)}
	c.Look(&cam, rl.NewVector2(0, -10000))
	_, pitch := Angles(rl.Vector3Subtract(cam.Target, cam.Position))
	if pitch > maxPitch+1e-4 {
		t.Errorf("pitch %v exceeds clamp %v", pitch, maxPitch)
	}
	f := rl.Vector3Subtract(cam.Target, cam.Position)
	if f.X == 0 && f.Z == 0 {
		t.Error("view became exactly vertical")
	}
}

func TestAnglesDirectionRoundTrip(t *testing.T) {
	tests := []struct{ yaw, pitch float32 }{
		{0, 0}, {0.5, 0.1}, {-2, -0.7}, {3, 1.2},
	}
	for _, tt := range tests {
		yaw, pitch := Angles(Direction(tt.yaw, tt.pitch))
		if math32.Abs(yaw-tt.yaw) > 1e-4 || math32.Abs(pitch-tt.pitch) > 1e-4 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", tt.yaw, tt.pitch, yaw, pitch)
		}
	}
}
