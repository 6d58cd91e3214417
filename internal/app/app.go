package app

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/ui"
	"github.com/diegok/pong/internal/window"
)

// maxFrameTime bounds dt after a stall, e.g. a suspended terminal, so the
// ball cannot jump across the court in one step
const maxFrameTime = 0.05

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	logFile io.Closer

	session *game.Session
	player  *audio.Player
	driver  *Driver

	screen   *ui.Screen
	renderer *ui.Renderer
	input    *ui.Input
	lastTick time.Time

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It sets up logging, sound and the session, then runs the chosen frontend.
func (a *App) Run() error {
	if err := a.setup(); err != nil {
		return err
	}

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if _, ok := <-a.sigChan; ok {
			a.log.Info("signal received")
			close(a.quit)
		}
	}()

	var runErr error
	switch a.cfg.Frontend {
	case config.FrontendWindow:
		runErr = window.Run(window.New(a.session, a.driver, a.cfg.FPS, a.quit))
	default:
		screen, err := ui.InitScreen()
		if err != nil {
			runErr = fmt.Errorf("failed to initialize screen: %w", err)
			break
		}
		runErr = a.runTerminal(screen)
	}

	a.log.Info("exiting", "state", a.session.State(), "left", a.session.LeftScore, "right", a.session.RightScore)
	a.cleanup()

	return runErr
}

// setup builds everything the frontends share
func (a *App) setup() error {
	logger, closer, err := newLogger(a.cfg)
	if err != nil {
		return err
	}
	a.log, a.logFile = logger, closer

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Info("starting", "frontend", a.cfg.Frontend, "fps", a.cfg.FPS, "seed", seed)

	// The zero Player stays silent, so the game works without sound
	a.player = audio.NewPlayer()
	if !a.cfg.Mute {
		err := a.player.Init(audio.Options{Dir: a.cfg.SoundsDir, Volume: a.cfg.Volume})
		reportAudio(a.log, err, a.player.Warnings)
	}

	a.session = game.NewSession(game.DefaultConfig(), rand.New(rand.NewSource(seed)))
	a.driver = &Driver{Session: a.session, Sounds: a.player, Log: a.log}
	return nil
}

// reportAudio logs the outcome of audio init. Fallback tones only matter
// when the speaker opened.
func reportAudio(log *slog.Logger, initErr error, warnings []error) {
	if initErr != nil {
		log.Warn("audio disabled", "err", initErr)
		return
	}
	for _, w := range warnings {
		log.Info("using synthesized sound", "err", w)
	}
}

// newLogger writes text logs to the configured file, or nowhere. Logging to
// stderr would corrupt the terminal frontend.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// runTerminal is the terminal main loop. Each tick renders the current
// state, then simulates using the input gathered since the last tick.
func (a *App) runTerminal(screen *ui.Screen) error {
	a.attachScreen(screen)

	// Create event channel for screen events
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(a.screen.PollEvent, events, a.quit, done)

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			a.session.Terminate()
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.screen.Sync()
			}
			a.input.HandleEvent(ev, time.Now())

		case now := <-ticker.C:
			if a.tick(now) {
				return nil
			}
		}
	}
}

func (a *App) attachScreen(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.session.Court)
	a.input = ui.NewInput()
	a.lastTick = time.Now()
}

// forwardEvents feeds polled events into events until the screen is
// finalized or either quit or done is closed
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, quit, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		case <-done:
			return
		}
	}
}

// tick draws the frame the player sees, resolves a popup click against it,
// then simulates. It reports whether the session has ended.
func (a *App) tick(now time.Time) bool {
	if a.input.QuitRequested() {
		a.log.Info("quit key pressed")
		a.session.Terminate()
		return true
	}

	dt := min(now.Sub(a.lastTick).Seconds(), maxFrameTime)
	a.lastTick = now

	cx, cy := a.input.Cursor()
	action := a.renderer.Render(a.session, cx, cy, a.input.TakeClick())
	if shortcut := a.input.TakeShortcut(); action == game.PopupNone {
		action = shortcut
	}

	a.driver.Step(dt, a.input.Controls(now), action)
	return a.session.State() == game.StateTerminated
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.player != nil {
		a.player.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
	close(a.sigChan)

	if a.logFile != nil {
		a.logFile.Close()
	}
}
