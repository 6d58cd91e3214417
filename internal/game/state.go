package game

// Fixed game configuration
const (
	DefaultWidth    = 868
	DefaultHeight   = 1024
	DefaultMaxScore = 11
)

// State is the session lifecycle stage
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// PopupAction is what the player chose on the end-of-game popup this frame
type PopupAction int

const (
	PopupNone PopupAction = iota
	PopupReset
	PopupQuit
)

// Controls is the held state of the four movement keys for one frame
type Controls struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

func (c Controls) Left() Direction {
	return holdDirection(c.LeftUp, c.LeftDown)
}

func (c Controls) Right() Direction {
	return holdDirection(c.RightUp, c.RightDown)
}

// holdDirection cancels out opposite holds
func holdDirection(up, down bool) Direction {
	switch {
	case up && !down:
		return DirUp
	case down && !up:
		return DirDown
	}
	return DirNone
}

// FrameEvents reports everything a frame changed that a frontend may react to
type FrameEvents struct {
	Ball      BallEvents
	GameOver  bool // Session entered StateGameOver this frame
	Restarted bool
	Quit      bool
}

// Config is supplied once when the session is created
type Config struct {
	Width    int
	Height   int
	MaxScore int
}

func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxScore: DefaultMaxScore,
	}
}

// Session owns all game state for one run of the program
type Session struct {
	Court      Court
	Ball       *Ball
	Left       *Paddle
	Right      *Paddle
	LeftScore  int
	RightScore int
	MaxScore   int
	Tick       int

	state State
	rng   Rand
}

func NewSession(cfg Config, rng Rand) *Session {
	court := NewCourt(cfg.Width, cfg.Height)
	return &Session{
		Court:    court,
		Ball:     NewBall(court, rng),
		Left:     NewPaddle(SideLeft, court.Width, court.Height),
		Right:    NewPaddle(SideRight, court.Width, court.Height),
		MaxScore: cfg.MaxScore,
		state:    StatePlaying,
		rng:      rng,
	}
}

func (s *Session) State() State {
	return s.state
}

// Frame runs one simulation step. While playing, paddles move then the ball
// updates; the popup action is ignored. After the game is over only the
// popup action matters.
func (s *Session) Frame(dt float64, ctl Controls, action PopupAction) FrameEvents {
	var ev FrameEvents
	s.Tick++

	switch s.state {
	case StatePlaying:
		s.Left.Move(ctl.Left(), dt, s.Court.Height)
		s.Right.Move(ctl.Right(), dt, s.Court.Height)

		ev.Ball = UpdateBall(s.Ball, s.Court, s.Left, s.Right, dt, s.rng)
		switch ev.Ball.Outcome {
		case LeftScored:
			s.LeftScore++
		case RightScored:
			s.RightScore++
		}

		if s.IsGameOver() {
			s.state = StateGameOver
			ev.GameOver = true
		}

	case StateGameOver:
		switch action {
		case PopupQuit:
			s.state = StateTerminated
			ev.Quit = true
		case PopupReset:
			s.Restart()
			ev.Restarted = true
		}
	}

	return ev
}

// Restart zeroes the scores, resets the ball and resumes play.
// Paddles keep their positions.
func (s *Session) Restart() {
	s.LeftScore = 0
	s.RightScore = 0
	s.Ball.Reset(s.Court, s.rng)
	s.state = StatePlaying
}

// Terminate ends the session from any state, e.g. when the window closes
func (s *Session) Terminate() {
	s.state = StateTerminated
}

// IsGameOver returns true if either side has reached the max score
func (s *Session) IsGameOver() bool {
	return s.LeftScore >= s.MaxScore || s.RightScore >= s.MaxScore
}

// Winner returns the side that reached the max score first
func (s *Session) Winner() Side {
	if s.LeftScore >= s.MaxScore {
		return SideLeft
	}
	return SideRight
}
