package audio

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)

	PaddleHitFile = "paddleHit.wav"
	ScoreFile     = "score.wav"
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Options configures a Player
type Options struct {
	Dir    string  // Directory holding the wav assets
	Volume float64 // In halvings/doublings, 0 leaves samples unchanged
}

// Player plays the game's sound effects. The zero value is silent.
type Player struct {
	paddleHit *beep.Buffer
	score     *beep.Buffer
	volume    float64
	ready     bool

	// Missing asset errors from the last Init, the fallback tone was used
	Warnings []error
}

func NewPlayer() *Player {
	return &Player{}
}

// Init loads the sounds and opens the speaker. Assets that cannot be loaded
// are replaced with synthesized tones and recorded in Warnings.
func (p *Player) Init(opts Options) error {
	if p.ready {
		return nil
	}

	p.volume = opts.Volume
	p.paddleHit = p.load(filepath.Join(opts.Dir, PaddleHitFile), paddleHitTone())
	p.score = p.load(filepath.Join(opts.Dir, ScoreFile), scoreTone())

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	p.ready = true
	return nil
}

func (p *Player) load(path string, fallback beep.Streamer) *beep.Buffer {
	buf, err := loadSound(path)
	if err != nil {
		p.Warnings = append(p.Warnings, err)
		return bufferOf(fallback)
	}
	return buf
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

// PaddleHit plays the sound for ball hitting a paddle
func (p *Player) PaddleHit() {
	p.play(p.paddleHit)
}

// Score plays the sound when a side scores
func (p *Player) Score() {
	p.play(p.score)
}

func (p *Player) play(buf *beep.Buffer) {
	if !p.ready || buf == nil {
		return
	}
	speaker.Play(p.withVolume(buf.Streamer(0, buf.Len())))
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
}

// loadSound decodes a wav file into memory at the speaker sample rate
func loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sound %s", path)
	}
	defer f.Close()

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode sound %s", path)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer)
	}
	return bufferOf(s), nil
}

func bufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// High-pitched short beep
func paddleHitTone() beep.Streamer {
	return squareWave(880, 50*time.Millisecond)
}

// Descending tone for score
func scoreTone() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
