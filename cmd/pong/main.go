package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --frontend <name>   terminal or window (default: terminal)")
	fmt.Fprintf(os.Stderr, "  --fps <n>           Target frame rate, 1-%d (default: %d)\n", config.MaxFPS, config.DefaultFPS)
	fmt.Fprintf(os.Stderr, "  --sounds <dir>      Directory with paddleHit.wav and score.wav (default: %s)\n", config.DefaultSoundsDir)
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --volume <n>        Volume in halvings/doublings, -5 to 1 (default: 0)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for ball launches")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "  --debug             Also log collisions")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S                 Left paddle")
	fmt.Fprintln(os.Stderr, "  Up/Down             Right paddle")
	fmt.Fprintln(os.Stderr, "  Click or R/Q        Reset or quit when the game is over")
	fmt.Fprintln(os.Stderr, "  Esc                 Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong")
	fmt.Fprintln(os.Stderr, "  pong --frontend window --fps 60")
	fmt.Fprintln(os.Stderr, "  pong --mute --seed 42 --log pong.log --debug")
}
