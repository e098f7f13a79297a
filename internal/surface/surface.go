package surface

import (
	"image/color"

	"video-gallery/internal/media"
	"video-gallery/internal/primitives"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultWidth and DefaultHeight are the world size of a surface (portrait, 1:2).
	DefaultWidth  = float32(2)
	DefaultHeight = float32(4)
)

// Surface is one clickable video-textured rectangle standing upright and facing +Z.
// It owns its playback handle but leaves play/pause/mute decisions to the click handler.
type Surface struct {
	Name     string
	Position rl.Vector3
	Width    float32
	Height   float32

	handle media.Handle
	pixels []color.RGBA
	tex    rl.Texture2D
	hasTex bool
}

// New returns a surface centered at position showing handle.
func New(name string, position rl.Vector3, handle media.Handle) *Surface {
	w, h := handle.Size()
	return &Surface{
		Name:     name,
		Position: position,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		handle:   handle,
		pixels:   make([]color.RGBA, w*h),
	}
}

// Playback is what the click handler toggles.
func (s *Surface) Playback() media.Playback {
	return s.handle
}

// Corners returns the rectangle's corners counter-clockwise seen from +Z:
// bottom-left, bottom-right, top-right, top-left.
func (s *Surface) Corners() [4]rl.Vector3 {
	hw, hh := s.Width/2, s.Height/2
	p := s.Position
	return [4]rl.Vector3{
		rl.NewVector3(p.X-hw, p.Y-hh, p.Z),
		rl.NewVector3(p.X+hw, p.Y-hh, p.Z),
		rl.NewVector3(p.X+hw, p.Y+hh, p.Z),
		rl.NewVector3(p.X-hw, p.Y+hh, p.Z),
	}
}

// Hit reports whether ray crosses the rectangle and at what distance along the ray.
// The rectangle is two-sided.
func (s *Surface) Hit(ray rl.Ray) (bool, float32) {
	c := s.Corners()
	col := rl.GetRayCollisionQuad(ray, c[0], c[1], c[2], c[3])
	return col.Hit, col.Distance
}

// Refresh uploads the latest decoded frame. The texture is created on first call, after the
// GL context exists; until a frame arrives it stays black.
func (s *Surface) Refresh() {
	w, h := s.handle.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if !s.hasTex {
		img := rl.GenImageColor(w, h, rl.Black)
		s.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		s.hasTex = true
	}
	if s.handle.CopyFrame(s.pixels) && rl.IsTextureValid(s.tex) {
		rl.UpdateTexture(s.tex, s.pixels)
	}
}

// Draw renders the rectangle. Must be called between BeginMode3D and EndMode3D.
func (s *Surface) Draw(reg *primitives.Registry) {
	transform := primitives.Transform(s.Position, rl.NewVector3(s.Width, 1, s.Height), math32.Pi/2)
	reg.DrawTextured(primitives.Plane, transform, s.tex)
}

// Close stops playback and frees the texture.
func (s *Surface) Close() error {
	if s.hasTex {
		rl.UnloadTexture(s.tex)
		s.hasTex = false
	}
	return s.handle.Close()
}
