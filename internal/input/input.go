package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyState is the movement snapshot sampled once per frame. Most recent key state wins.
type KeyState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether at least one movement flag is set.
func (k KeyState) Any() bool {
	return k.Forward || k.Backward || k.Left || k.Right
}

// Action names one movement flag.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
)

// KeyMap binds each action to the raylib key codes that drive it.
type KeyMap map[Action][]int32

// DefaultKeyMap is WASD plus the arrow-key aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward:  {rl.KeyW, rl.KeyUp},
		Backward: {rl.KeyS, rl.KeyDown},
		Left:     {rl.KeyA, rl.KeyLeft},
		Right:    {rl.KeyD, rl.KeyRight},
	}
}

// KeySource is the keyboard capability the scene reads from. RaylibKeys polls the window.
type KeySource interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
}

// RaylibKeys reads the keyboard through raylib. Only valid after the window exists.
type RaylibKeys struct{}

func (RaylibKeys) IsKeyDown(key int32) bool    { return rl.IsKeyDown(key) }
func (RaylibKeys) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }

// Keyboard turns raw key state into a KeyState using a KeyMap.
type Keyboard struct {
	src    KeySource
	keymap KeyMap
}

// NewKeyboard returns a Keyboard over src. A nil keymap uses DefaultKeyMap.
func NewKeyboard(src KeySource, keymap KeyMap) *Keyboard {
	if keymap == nil {
		keymap = DefaultKeyMap()
	}
	return &Keyboard{src: src, keymap: keymap}
}

// Sample reads the current key state. Keys that are not bound to an action are ignored.
func (k *Keyboard) Sample() KeyState {
	return KeyState{
		Forward:  k.down(Forward),
		Backward: k.down(Backward),
		Left:     k.down(Left),
		Right:    k.down(Right),
	}
}

// Pressed reports whether key went down this frame.
func (k *Keyboard) Pressed(key int32) bool {
	return k.src.IsKeyPressed(key)
}

func (k *Keyboard) down(a Action) bool {
	for _, key := range k.keymap[a] {
		if k.src.IsKeyDown(key) {
			return true
		}
	}
	return false
}
