package playback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Short attack/release ramps keep note boundaries click-free.
	attack  = 5 * time.Millisecond
	release = 30 * time.Millisecond
)

// Note is one tone to synthesize: frequency in Hz, duration in wall time.
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// MIDIToFrequency converts a MIDI pitch to equal-temperament Hz (A4 = 440).
func MIDIToFrequency(pitch int) float64 {
	return 440 * math.Pow(2, float64(pitch-69)/12)
}

// BeatsToDuration converts a length in beats at the given tempo to wall time.
func BeatsToDuration(beats float64, tempo int) time.Duration {
	return time.Duration(beats * 60 / float64(tempo) * float64(time.Second))
}

// Player synthesizes melodies through the system speaker.
type Player struct {
	initialized bool
}

// NewPlayer creates a new player
func NewPlayer() *Player {
	return &Player{}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Play streams the notes in order and blocks until the last one finishes.
func (p *Player) Play(notes []Note) error {
	if !p.initialized {
		if err := p.Initialize(); err != nil {
			return err
		}
	}

	streamers := make([]beep.Streamer, 0, len(notes)+1)
	for _, n := range notes {
		tone := NewTone(n.Frequency, n.Duration, sampleRate)
		streamers = append(streamers, NewEnvelope(tone, n.Duration, attack, release, sampleRate))
	}

	done := make(chan struct{})
	streamers = append(streamers, beep.Callback(func() { close(done) }))

	speaker.Play(beep.Seq(streamers...))
	<-done
	return nil
}
