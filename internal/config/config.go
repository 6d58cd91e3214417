package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Default values for configuration
const (
	DefaultFPS       = 144
	DefaultSoundsDir = "./sounds"
	MaxFPS           = 1000
)

// Frontend selects how the game is drawn and read from
type Frontend string

const (
	FrontendTerminal Frontend = "terminal"
	FrontendWindow   Frontend = "window"
)

// Config holds the application configuration
type Config struct {
	Frontend  Frontend
	FPS       int
	SoundsDir string
	Mute      bool
	Volume    float64
	Seed      int64
	LogFile   string
	Debug     bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	frontend := fs.String("frontend", string(FrontendTerminal), "terminal or window")
	fps := fs.Int("fps", DefaultFPS, "target frame rate (1-1000)")
	sounds := fs.String("sounds", DefaultSoundsDir, "directory with paddleHit.wav and score.wav")
	mute := fs.Bool("mute", false, "disable sound")
	volume := fs.Float64("volume", 0, "volume in halvings/doublings (-5 to 1)")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	logFile := fs.String("log", "", "write logs to this file")
	debug := fs.Bool("debug", false, "log collision events")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	f := Frontend(*frontend)
	if f != FrontendTerminal && f != FrontendWindow {
		return nil, fmt.Errorf("frontend must be %q or %q, got %q", FrontendTerminal, FrontendWindow, *frontend)
	}

	if *fps < 1 || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	if *volume < -5 || *volume > 1 {
		return nil, fmt.Errorf("volume must be between -5 and 1, got %g", *volume)
	}

	if *sounds == "" && !*mute {
		return nil, errors.New("sounds directory cannot be empty")
	}

	cfg := &Config{
		Frontend:  f,
		FPS:       *fps,
		SoundsDir: *sounds,
		Mute:      *mute,
		Volume:    *volume,
		Seed:      *seed,
		LogFile:   *logFile,
		Debug:     *debug,
	}

	return cfg, nil
}
