package main

import (
	"fmt"
	"os"

	"video-gallery/internal/config"
	"video-gallery/internal/env"
	"video-gallery/internal/graphics"
	"video-gallery/internal/hud"
	"video-gallery/internal/logger"
	"video-gallery/internal/media"
	"video-gallery/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// configEnv overrides config.DefaultPath.
const configEnv = "GALLERY_CONFIG"

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	path := config.DefaultPath
	if p := os.Getenv(configEnv); p != "" {
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.DefaultPath)
	if created, err := config.Ensure(path); err != nil {
		log.Warnf("write default config: %v", err)
	} else if created {
		log.Logf("wrote default config to %s", path)
	}
	log.Logf("gallery starting with %d videos", len(cfg.Videos))

	var mixer *media.Mixer
	if cfg.Media.Audio {
		m, err := media.NewMixer(cfg.Media.SampleRate)
		if err != nil {
			log.Warnf("audio disabled: %v", err)
		} else {
			mixer = m
			defer mixer.Close()
		}
	}

	scn := scene.New(cfg, scene.RaylibDeps(cfg.Media, mixer, log), log)
	overlay := hud.New(cfg.HUD.ShowFPS, cfg.HUD.ShowLog)
	draw := func() {
		scn.Draw()
		overlay.Draw(hud.State{
			Locked:   scn.Locked(),
			FPS:      rl.GetFPS(),
			LogLines: log.Tail(cfg.HUD.LogLines),
		})
	}
	unload := func() {
		if err := scn.Close(); err != nil {
			log.Warnf("close scene: %v", err)
		}
	}
	graphics.Run(cfg.Window, scn.Update, draw, unload)
}
