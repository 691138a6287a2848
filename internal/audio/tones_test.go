package audio

import (
	"math"
	"testing"
	"time"
)

// drainStreamer streams everything and returns the samples.
func drainStreamer(t *testing.T, e *envelope) [][2]float64 {
	t.Helper()

	var all [][2]float64

	buf := make([][2]float64, 512)

	for {
		n, ok := e.Stream(buf)

		all = append(all, buf[:n]...)

		if !ok {
			return all
		}

		if n == 0 {
			t.Fatal("streamer returned ok with no samples")
		}
	}
}

func TestEnvelopeLength(t *testing.T) {
	for _, length := range []time.Duration{
		tickLength,
		dingLength,
		5 * time.Millisecond, // shorter than the default ramp
	} {
		note, err := sineNote(tickFreq, length)
		if err != nil {
			t.Fatal(err)
		}

		env, ok := note.(*envelope)
		if !ok {
			t.Fatalf("sineNote returned %T, want *envelope", note)
		}

		samples := drainStreamer(t, env)

		if want := sampleRate.N(length); len(samples) != want {
			t.Errorf(
				"note of %v streamed %d samples, want %d",
				length,
				len(samples),
				want,
			)
		}

		if n, ok := env.Stream(make([][2]float64, 8)); ok || n != 0 {
			t.Errorf("exhausted envelope streamed %d more samples", n)
		}
	}
}

func TestEnvelopeShapesAmplitude(t *testing.T) {
	note, err := triangleNote(dingFreq, dingLength)
	if err != nil {
		t.Fatal(err)
	}

	samples := drainStreamer(t, note.(*envelope))

	for i, s := range samples {
		if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}

	// The ramps pin the edges to silence.
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", samples[0][0])
	}

	last := samples[len(samples)-1]
	ramp := sampleRate.N(10 * time.Millisecond)

	if math.Abs(last[0]) > 1.0/float64(ramp)*2 {
		t.Errorf("final sample = %v, want near 0", last[0])
	}
}

func TestCueStreamers(t *testing.T) {
	for _, cue := range []Cue{CueTick, CueIntervalEnd, CueSessionEnd} {
		streamer, err := cueStreamer(cue)
		if err != nil {
			t.Fatalf("cueStreamer(%d): %v", cue, err)
		}

		if streamer == nil {
			t.Fatalf("cueStreamer(%d) returned nil", cue)
		}
	}
}
