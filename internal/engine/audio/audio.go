// Package audio plays short sound effects.
package audio

import (
	"bytes"
	"fmt"
	"io"
	stdmath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Tone is a synthesized beep.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

// Manager mixes sound effects onto the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64

	clips map[string][]byte // WAV data by name

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		clips:        make(map[string][]byte),
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized reports whether Init succeeded.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	m.masterVolume = clamp(vol, 0, 1)
	m.mu.Unlock()
}

// SetSFXVolume sets the sound effect volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	m.sfxVolLevel = clamp(vol, 0, 1)
	m.mu.Unlock()
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// SFXVolume returns the sound effect volume.
func (m *Manager) SFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// Register stores WAV data under name for PlayClip. The data is decoded
// once here to reject broken files early.
func (m *Manager) Register(name string, data []byte) error {
	if _, _, err := wav.Decode(io.NopCloser(bytes.NewReader(data))); err != nil {
		return fmt.Errorf("decode wav %s: %w", name, err)
	}
	m.mu.Lock()
	m.clips[name] = data
	m.mu.Unlock()
	return nil
}

// HasClip reports whether a clip was registered under name.
func (m *Manager) HasClip(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.clips[name]
	return ok
}

// PlayClip plays a registered clip.
func (m *Manager) PlayClip(name string) error {
	m.mu.RLock()
	data, ok := m.clips[name]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown clip %q", name)
	}
	return m.PlaySFX(data)
}

// PlaySFX plays a sound effect from WAV data.
func (m *Manager) PlaySFX(data []byte) error {
	if !m.IsInitialized() {
		return fmt.Errorf("audio not initialized")
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}
	m.mix(resampled)
	return nil
}

// PlayTone plays a sine tone.
func (m *Manager) PlayTone(t Tone) error {
	if !m.IsInitialized() {
		return fmt.Errorf("audio not initialized")
	}
	sine, err := generators.SineTone(m.sampleRate, t.Freq)
	if err != nil {
		return fmt.Errorf("tone %.0f Hz: %w", t.Freq, err)
	}
	m.mix(beep.Take(m.sampleRate.N(t.Duration), sine))
	return nil
}

// mix adds s to the effect mixer at the current effect volume.
func (m *Manager) mix(s beep.Streamer) {
	m.mu.RLock()
	vol := m.masterVolume * m.sfxVolLevel
	m.mu.RUnlock()

	speaker.Lock()
	m.sfxMixer.Add(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	})
	speaker.Unlock()
}

// volumeToDb maps a linear volume to the base-2 exponent effects.Volume
// expects.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return stdmath.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
