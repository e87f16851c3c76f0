// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"grid-snake/game"
	"grid-snake/game/manager"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq      = 880.0
	eatDuration  = 60 * time.Millisecond
	overDuration = 400 * time.Millisecond
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device. Callers may treat failure as non-fatal.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything queued on the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat plays a short high blip.
func (sm *SoundManager) PlayEat() {
	sm.play(NewTone(sampleRate, eatFreq, eatDuration))
}

// PlayGameOver plays a falling buzz.
func (sm *SoundManager) PlayGameOver() {
	sm.play(NewSweep(sampleRate, 440, 110, overDuration))
}

// Handle plays the cue for a tick result, if any. It fits game.Runner.OnStep.
func (sm *SoundManager) Handle(res game.StepResult) {
	switch {
	case res.Outcome != manager.NoCollision:
		sm.PlayGameOver()
	case res.Ate:
		sm.PlayEat()
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Tone is a fixed-length sine with a linear fade out.
type Tone struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func NewTone(sr beep.SampleRate, freq float64, d time.Duration) *Tone {
	return &Tone{sr: sr, freq: freq, total: sr.N(d)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		at := float64(t.pos) / float64(t.sr)
		envelope := 1 - float64(t.pos)/float64(t.total)
		v := 0.3 * envelope * math.Sin(2*math.Pi*t.freq*at)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

// Sweep glides a square-ish wave from one frequency to another.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += 2 * math.Pi * freq / float64(s.sr)

		v := math.Sin(s.phase) + math.Sin(3*s.phase)/3
		v *= 0.2 * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error {
	return nil
}
