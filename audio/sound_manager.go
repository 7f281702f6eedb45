// Package audio plays short synthesized cues for the map viewers.
// Every call is a no-op until Initialize succeeds, so tools run silently on
// machines without an audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	chimeDurationMs   = 400
	chimeAmplitude    = 0.25
	chimeDecayRate    = 7.0
	chimeFreqMinHz    = 220.0
	chimeFreqMaxHz    = 880.0
	chimeOvertoneGain = 0.3

	errorBuzzDurationMs  = 150
	errorBuzzFrequencyHz = 120.0
	errorBuzzAmplitude   = 0.2
)

// SoundManager owns the speaker and a mixer that cues are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDurationMs*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues and stops playback
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayChime plays a bell whose pitch rises with the open share of the map
func (sm *SoundManager) PlayChime(openRatio float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(chimeDurationMs*time.Millisecond), NewChimeGenerator(sampleRate, ChimeFrequency(openRatio)))
	sm.mixer.Add(streamer)
}

// PlayError plays a short low buzz
func (sm *SoundManager) PlayError() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(errorBuzzDurationMs*time.Millisecond), NewBuzzGenerator(sampleRate, errorBuzzFrequencyHz))
	sm.mixer.Add(streamer)
}

// ChimeFrequency maps an open ratio in [0, 1] onto the chime range, clamping outside it
func ChimeFrequency(openRatio float64) float64 {
	r := math.Max(0, math.Min(1, openRatio))
	if math.IsNaN(openRatio) {
		r = 0
	}
	return chimeFreqMinHz + (chimeFreqMaxHz-chimeFreqMinHz)*r
}

// ChimeGenerator is a decaying sine with one octave overtone
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at freq
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * chimeDecayRate)
		sample := math.Sin(2*math.Pi*g.freq*t) + chimeOvertoneGain*math.Sin(4*math.Pi*g.freq*t)
		sample *= chimeAmplitude * envelope / (1 + chimeOvertoneGain)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * errorBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
