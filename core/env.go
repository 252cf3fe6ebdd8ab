package core

import (
	"errors"
	"strconv"

	"github.com/gobuffalo/envy"
)

// Environment variables read by FromEnv.
const (
	EnvTitle        = "KANVA_TITLE"
	EnvScreenWidth  = "KANVA_SCREEN_WIDTH"
	EnvScreenHeight = "KANVA_SCREEN_HEIGHT"
	EnvVSync        = "KANVA_VSYNC"
	EnvFps          = "KANVA_FPS"
)

// FromEnv assembles a Configuration from KANVA_* environment
// variables, falling back to defaults where a variable is unset.
// A .env file in the working directory is picked up automatically.
func FromEnv() (Configuration, error) {
	var cfg Configuration

	width, err := strconv.ParseUint(envy.Get(EnvScreenWidth, "640"), 10, 32)
	if err != nil {
		return cfg, errors.New(EnvScreenWidth + ": " + err.Error())
	}
	height, err := strconv.ParseUint(envy.Get(EnvScreenHeight, "480"), 10, 32)
	if err != nil {
		return cfg, errors.New(EnvScreenHeight + ": " + err.Error())
	}
	fps, err := strconv.Atoi(envy.Get(EnvFps, "60"))
	if err != nil {
		return cfg, errors.New(EnvFps + ": " + err.Error())
	}

	cfg.Display = DisplayConfiguration{
		Title:        envy.Get(EnvTitle, "kanva"),
		ScreenWidth:  uint32(width),
		ScreenHeight: uint32(height),
		VSync:        envy.Get(EnvVSync, "0") == "1",
	}
	cfg.Time = TimeConfiguration{
		FramesPerSecond: fps,
	}
	return cfg, nil
}
