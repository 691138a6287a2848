// Package audio produces the timer's sound cues and keeps the underlying
// audio session alive between them.
package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// sampleRate is the fixed rate for synthesized cues. Ambient file streams are
// resampled to it.
const sampleRate = beep.SampleRate(44100)

// Service owns the speaker lifecycle. The speaker is created lazily on first
// playback; if initialisation fails it is torn down and recreated once before
// giving up. All playback is best-effort: callers never see an audible
// failure beyond a missing sound.
type Service struct {
	logger      *slog.Logger
	keepAlive   *beep.Ctrl
	ambient     *beep.Ctrl
	ambientVol  *effects.Volume
	mu          sync.Mutex
	volume      float64
	initialized bool
}

// NewService returns an audio service playing at the given volume (0.0-1.0).
func NewService(logger *slog.Logger, volume float64) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		logger: logger,
		volume: clampVolume(volume),
	}
}

// SetVolume adjusts the playback volume for subsequent cues and for any
// ambient sound already on the mixer.
func (s *Service) SetVolume(volume float64) {
	s.mu.Lock()
	s.volume = clampVolume(volume)
	v := s.volume
	vol := s.ambientVol
	s.mu.Unlock()

	if vol == nil {
		return
	}

	speaker.Lock()
	vol.Volume = volumeToDecibels(v)
	vol.Silent = v == 0
	speaker.Unlock()
}

// volumeNode wraps a streamer in a volume stage set to the configured
// volume.
func (s *Service) volumeNode(streamer beep.Streamer) *effects.Volume {
	s.mu.Lock()
	volume := s.volume
	s.mu.Unlock()

	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeToDecibels(volume),
		Silent:   volume == 0,
	}
}

// ensureSpeaker initialises the speaker if needed. A failed initialisation is
// retried exactly once with a fresh speaker.
func (s *Service) ensureSpeaker() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	bufferSize := sampleRate.N(100 * time.Millisecond)

	err := speaker.Init(sampleRate, bufferSize)
	if err != nil {
		s.logger.Warn("speaker init failed, recreating", "error", err)

		speaker.Close()

		err = speaker.Init(sampleRate, bufferSize)
		if err != nil {
			return err
		}
	}

	s.initialized = true

	return nil
}

// play queues a streamer on the speaker at the configured volume.
func (s *Service) play(streamer beep.Streamer) {
	if err := s.ensureSpeaker(); err != nil {
		s.logger.Warn("sound may not play", "error", err)
		return
	}

	speaker.Play(s.volumeNode(streamer))
}

// StartKeepAlive holds an endless inaudible streamer on the mixer so the
// platform does not tear the audio session down while the timer idles
// between cues.
func (s *Service) StartKeepAlive() {
	if err := s.ensureSpeaker(); err != nil {
		s.logger.Warn("keep-alive unavailable", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keepAlive != nil {
		return
	}

	s.keepAlive = &beep.Ctrl{Streamer: beep.Silence(-1)}

	speaker.Play(s.keepAlive)
}

// StopKeepAlive releases the keep-alive streamer.
func (s *Service) StopKeepAlive() {
	s.mu.Lock()
	ctrl := s.keepAlive
	s.keepAlive = nil
	s.mu.Unlock()

	if ctrl == nil {
		return
	}

	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// Suspend pauses the audio device, e.g. while the timer is paused with no
// ambient sound playing.
func (s *Service) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		_ = speaker.Suspend()
	}
}

// Resume reactivates a suspended audio device.
func (s *Service) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		_ = speaker.Resume()
	}
}

// Close stops playback and releases the audio device.
func (s *Service) Close() {
	s.StopKeepAlive()
	s.StopAmbient()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		speaker.Clear()
		speaker.Close()
		s.initialized = false
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

// volumeToDecibels converts a linear volume (0-1) to a gain exponent.
func volumeToDecibels(volume float64) float64 {
	if volume <= 0 {
		return -100
	}

	return math.Log2(volume) * 2
}
