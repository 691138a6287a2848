package audio

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/dbalogun/pulse/config"
	"github.com/dbalogun/pulse/internal/apperr"
	"github.com/dbalogun/pulse/internal/static"
)

// dataSoundDir is where bundled and user-provided sounds live on disk.
func dataSoundDir() string {
	return filepath.Join(xdg.DataHome, config.Dir(), "static")
}

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format",
}

// SetAmbient replaces the looped background sound. An empty name or "off"
// clears it. Names without an extension resolve to the bundled sounds in the
// data directory; anything else is treated as a path to a sound file.
func (s *Service) SetAmbient(name string) error {
	s.StopAmbient()

	if name == "" || name == "off" {
		return nil
	}

	buf, err := loadSound(name)
	if err != nil {
		return err
	}

	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))

	var streamer beep.Streamer = loop
	if buf.Format().SampleRate != sampleRate {
		streamer = beep.Resample(4, buf.Format().SampleRate, sampleRate, loop)
	}

	ctrl := &beep.Ctrl{Streamer: streamer, Paused: true}
	vol := s.volumeNode(ctrl)

	s.mu.Lock()
	s.ambient = ctrl
	s.ambientVol = vol
	s.mu.Unlock()

	if err := s.ensureSpeaker(); err != nil {
		return errInvalidSoundFormat.Wrap(err)
	}

	speaker.Play(vol)

	return nil
}

// StartAmbient unpauses the background sound, if any.
func (s *Service) StartAmbient() {
	s.setAmbientPaused(false)
}

// PauseAmbient silences the background sound without discarding it.
func (s *Service) PauseAmbient() {
	s.setAmbientPaused(true)
}

func (s *Service) setAmbientPaused(paused bool) {
	s.mu.Lock()
	ctrl := s.ambient
	s.mu.Unlock()

	if ctrl == nil {
		return
	}

	speaker.Lock()
	ctrl.Paused = paused
	speaker.Unlock()
}

// StopAmbient removes the background sound from the mixer.
func (s *Service) StopAmbient() {
	s.mu.Lock()
	ctrl := s.ambient
	s.ambient = nil
	s.ambientVol = nil
	initialized := s.initialized
	s.mu.Unlock()

	if ctrl == nil || !initialized {
		return
	}

	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

// loadSound decodes a sound into memory so it can be looped without holding
// a file handle open.
func loadSound(sound string) (*beep.Buffer, error) {
	var (
		f   fs.File
		err error
	)

	ext := filepath.Ext(sound)
	// without an extension, resolve against the bundled sounds
	if ext == "" {
		sound, f, err = openBundled(sound)
		if err != nil {
			return nil, err
		}

		ext = filepath.Ext(sound)
	} else {
		f, err = os.Open(sound)
		if err != nil {
			return nil, err
		}
	}

	defer func() {
		_ = f.Close()
	}()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		return nil, errInvalidSoundFormat.Wrap(err)
	}

	buf := beep.NewBuffer(format)
	buf.Append(stream)

	_ = stream.Close()

	return buf, nil
}

// openBundled finds a bundled sound by bare name, preferring a user copy in
// the data directory over the embedded defaults.
func openBundled(name string) (string, fs.File, error) {
	for _, ext := range []string{".wav", ".ogg", ".mp3", ".flac"} {
		candidate := filepath.Join(dataSoundDir(), name+ext)

		f, err := os.Open(candidate)
		if err == nil {
			return candidate, f, nil
		}
	}

	for _, ext := range []string{".wav", ".ogg"} {
		candidate := name + ext

		f, err := static.Files.Open(static.FilePath(candidate))
		if err == nil {
			return candidate, f, nil
		}
	}

	return "", nil, errInvalidSoundFormat
}
