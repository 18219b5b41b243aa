package game

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/config"
	"github.com/Faultbox/breakout3d/internal/engine/audio"
	"github.com/Faultbox/breakout3d/internal/game/level"
	"github.com/Faultbox/breakout3d/internal/logger"
)

const (
	clipBounce = "bounce"
	clipBreak  = "break"
)

// tonePlayer is the part of audio.Manager the contact sounds use.
type tonePlayer interface {
	HasClip(name string) bool
	PlayClip(name string) error
	PlayTone(t audio.Tone) error
}

// contactTones maps each contact to its fallback tone.
var contactTones = map[level.Contact]audio.Tone{
	level.ContactPaddle: {Freq: 440, Duration: 60 * time.Millisecond},
	level.ContactWall1:  {Freq: 330, Duration: 40 * time.Millisecond},
	level.ContactWall2:  {Freq: 330, Duration: 40 * time.Millisecond},
	level.ContactWall3:  {Freq: 330, Duration: 40 * time.Millisecond},
	level.ContactWood:   {Freq: 660, Duration: 80 * time.Millisecond},
	level.ContactPaper:  {Freq: 660, Duration: 80 * time.Millisecond},
	level.ContactIron:   {Freq: 220, Duration: 50 * time.Millisecond},
}

// contactSounds plays a short effect for every ball contact. Registered
// clips win over synthesized tones.
type contactSounds struct {
	player tonePlayer
}

// Contact implements states.Sounds.
func (s *contactSounds) Contact(c level.Contact) {
	tone, ok := contactTones[c]
	if !ok {
		return
	}

	clip := clipBounce
	if c == level.ContactWood || c == level.ContactPaper {
		clip = clipBreak
	}

	var err error
	if s.player.HasClip(clip) {
		err = s.player.PlayClip(clip)
	} else {
		err = s.player.PlayTone(tone)
	}
	if err != nil {
		logger.Debug("sound effect failed", zap.String("contact", string(c)), zap.Error(err))
	}
}

// newAudio opens the speaker and registers the configured clips. A nil
// manager means the game runs silent.
func newAudio(cfg config.AudioConfig) (*audio.Manager, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	m := audio.New()
	m.SetMasterVolume(cfg.Volume)
	m.SetSFXVolume(cfg.SFXVolume)

	clips := map[string]string{clipBounce: cfg.BounceClip, clipBreak: cfg.BreakClip}
	for name, path := range clips {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read clip %s: %w", name, err)
		}
		if err := m.Register(name, data); err != nil {
			return nil, err
		}
	}

	if err := m.Init(); err != nil {
		return nil, err
	}
	logger.Info("audio ready",
		zap.Float64("master", m.MasterVolume()),
		zap.Float64("sfx", m.SFXVolume()))
	return m, nil
}
