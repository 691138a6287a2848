package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// Cue identifies a synthesized sound.
type Cue int

const (
	// CueTick is the short blip played on countdown seconds.
	CueTick Cue = iota
	// CueIntervalEnd is the ding played on each interval boundary.
	CueIntervalEnd
	// CueSessionEnd is the two-note ding played when the session completes.
	CueSessionEnd
)

const (
	tickFreq = 1100
	dingFreq = 660
	endFreq  = 880

	tickLength = 80 * time.Millisecond
	dingLength = 350 * time.Millisecond
	endLength  = 300 * time.Millisecond
)

// PlayCue synthesizes and plays the given cue. Failures are logged and
// swallowed.
func (s *Service) PlayCue(cue Cue) {
	streamer, err := cueStreamer(cue)
	if err != nil {
		s.logger.Warn("unable to synthesize cue", "cue", int(cue), "error", err)
		return
	}

	s.play(streamer)
}

// cueStreamer builds the tone sequence for a cue.
func cueStreamer(cue Cue) (beep.Streamer, error) {
	switch cue {
	case CueIntervalEnd:
		return triangleNote(dingFreq, dingLength)
	case CueSessionEnd:
		first, err := triangleNote(dingFreq, endLength)
		if err != nil {
			return nil, err
		}

		second, err := triangleNote(endFreq, endLength)
		if err != nil {
			return nil, err
		}

		return beep.Seq(first, second), nil
	default:
		return sineNote(tickFreq, tickLength)
	}
}

func sineNote(freq int, length time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil, err
	}

	return newEnvelope(tone, length), nil
}

func triangleNote(freq int, length time.Duration) (beep.Streamer, error) {
	tone, err := generators.TriangleTone(sampleRate, float64(freq))
	if err != nil {
		return nil, err
	}

	return newEnvelope(tone, length), nil
}

// envelope shapes a raw tone with a linear attack and release so cues start
// and stop without clicks.
type envelope struct {
	wrapped beep.Streamer
	length  int
	attack  int
	release int
	pos     int
}

func newEnvelope(tone beep.Streamer, length time.Duration) *envelope {
	n := sampleRate.N(length)
	ramp := sampleRate.N(10 * time.Millisecond)

	// very short notes still get a symmetric ramp
	if ramp*2 > n {
		ramp = n / 2
	}

	return &envelope{
		wrapped: tone,
		length:  n,
		attack:  ramp,
		release: ramp,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.length {
		return 0, false
	}

	if remaining := e.length - e.pos; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.wrapped.Stream(samples)

	for i := 0; i < n; i++ {
		gain := 1.0

		switch {
		case e.pos < e.attack:
			gain = float64(e.pos) / float64(e.attack)
		case e.pos >= e.length-e.release:
			gain = float64(e.length-e.pos) / float64(e.release)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}

	return n, ok
}

func (e *envelope) Err() error {
	return e.wrapped.Err()
}
