package scene

import (
	"errors"

	"video-gallery/internal/config"
	"video-gallery/internal/input"
	"video-gallery/internal/interaction"
	"video-gallery/internal/logger"
	"video-gallery/internal/media"
	"video-gallery/internal/movement"
	"video-gallery/internal/pointerlock"
	"video-gallery/internal/primitives"
	"video-gallery/internal/surface"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	floorSize = 100
	floorY    = -0.5
	// cubeTilt is the static cube's rotation about X, in radians.
	cubeTilt = -0.5
)

var (
	floorColor = rl.NewColor(128, 128, 128, 255)
	cubeColor  = rl.NewColor(135, 206, 235, 255)
)

// Deps are the host capabilities the scene drives. RaylibDeps wires the real ones; tests use fakes.
type Deps struct {
	Keys   input.KeySource
	Mouse  input.MouseSource
	Cursor pointerlock.Cursor
	// Open creates the playback handle for one configured video.
	Open func(v config.VideoConfig) media.Handle
}

// RaylibDeps reads input from the window and decodes videos with ffmpeg.
// mixer may be nil to run without sound.
func RaylibDeps(cfg config.MediaConfig, mixer *media.Mixer, log *logger.Logger) Deps {
	opts := media.Options{
		FFmpeg:    cfg.FFmpeg,
		Width:     cfg.Width,
		Height:    cfg.Height,
		FrameRate: cfg.FrameRate,
		Mixer:     mixer,
	}
	return Deps{
		Keys:   input.RaylibKeys{},
		Mouse:  input.RaylibMouse{},
		Cursor: pointerlock.RaylibCursor{},
		Open: func(v config.VideoConfig) media.Handle {
			return media.Open(v.Name, v.Path, opts, log)
		},
	}
}

// Scene is the gallery: lights, floor, a tilted cube, the video surfaces, first-person
// movement and pointer-lock look. Update runs one tick; Draw renders it.
type Scene struct {
	Camera   rl.Camera3D
	Surfaces []*surface.Surface

	keyboard   *input.Keyboard
	mouse      input.MouseSource
	movement   *movement.Controller
	lock       *pointerlock.Control
	dispatcher *interaction.Dispatcher
	prims      *primitives.Registry
}

// New builds the scene from cfg. Nothing here touches the GPU; textures and meshes are
// created on the first Draw.
func New(cfg config.Config, deps Deps, log *logger.Logger) *Scene {
	cam := cfg.Camera
	s := &Scene{
		keyboard: input.NewKeyboard(deps.Keys, nil),
		mouse:    deps.Mouse,
		movement: movement.New(cam.MoveSpeed, cam.EyeHeight),
		lock:     pointerlock.New(deps.Cursor, cam.MouseSensitivity),
		prims: primitives.NewRegistry(primitives.Lights{
			AmbientIntensity:     cfg.Lights.AmbientIntensity,
			Direction:            vec(cfg.Lights.DirectionalPosition),
			DirectionalIntensity: cfg.Lights.DirectionalIntensity,
		}),
	}
	s.Camera = rl.Camera3D{
		Position:   vec(cam.Start),
		Target:     vec(cam.LookAt),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
	s.dispatcher = interaction.New(s.lock, log)
	for _, v := range cfg.Videos {
		s.Surfaces = append(s.Surfaces, surface.New(v.Name, vec(v.Position), deps.Open(v)))
	}
	return s
}

func vec(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// Locked reports whether mouse look is active.
func (s *Scene) Locked() bool {
	return s.lock.IsLocked()
}

// Update runs one frame: ESC releases the pointer, mouse look rotates, keys move, and a click
// either toggles the surface under the pointer or captures the pointer.
func (s *Scene) Update() {
	if s.keyboard.Pressed(rl.KeyEscape) {
		s.lock.Unlock()
	}
	s.lock.Look(&s.Camera, s.mouse.Delta())
	s.movement.Step(&s.Camera, s.keyboard.Sample())
	if s.mouse.LeftPressed() {
		s.Click()
	}
}

// Click handles one left click at the current pointer.
func (s *Scene) Click() {
	ray := s.mouse.Ray(s.Camera, s.lock.IsLocked())
	if surf := s.Pick(ray); surf != nil {
		s.dispatcher.OnSurfaceClicked(surf.Playback())
		return
	}
	s.lock.Lock()
}

// Pick returns the nearest surface hit by ray, or nil.
func (s *Scene) Pick(ray rl.Ray) *surface.Surface {
	var best *surface.Surface
	var bestDist float32
	for _, surf := range s.Surfaces {
		hit, dist := surf.Hit(ray)
		if hit && (best == nil || dist < bestDist) {
			best, bestDist = surf, dist
		}
	}
	return best
}

// Draw uploads new video frames and renders the 3D pass.
func (s *Scene) Draw() {
	for _, surf := range s.Surfaces {
		surf.Refresh()
	}
	rl.BeginMode3D(s.Camera)
	s.prims.DrawLit(primitives.Plane,
		primitives.Transform(rl.NewVector3(0, floorY, 0), rl.NewVector3(floorSize, 1, floorSize), 0),
		floorColor)
	s.prims.DrawLit(primitives.Cube,
		primitives.Transform(rl.Vector3{}, rl.NewVector3(1, 1, 1), cubeTilt),
		cubeColor)
	for _, surf := range s.Surfaces {
		surf.Draw(s.prims)
	}
	rl.EndMode3D()
}

// Close unmounts the scene: stops every video and frees GPU resources.
// Call while the window is still open.
func (s *Scene) Close() error {
	var errs []error
	for _, surf := range s.Surfaces {
		if err := surf.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.prims.Unload()
	return errors.Join(errs...)
}
