package bell

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone is a finite oscillator. The phase accumulator stays in [0, 1)
// so frequency precision does not degrade over long streams.
type tone struct {
	freq      float64
	phase     float64
	remaining int
	wave      WaveType
	rate      beep.SampleRate
}

// NewTone creates an oscillator streamer that ends after the duration
func NewTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:      freq,
		remaining: rate.N(d),
		wave:      wave,
		rate:      rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.remaining <= 0 {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.remaining--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps so
// cues start and stop without clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps a streamer in attack/release shaping over the
// given total duration. Attack and release that together exceed the
// duration squeeze the sustain to zero.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		releaseStart := e.total - e.release
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a streamer to a linear volume. effects.Volume works in
// log space and math.Log2(0) is -Inf, so zero maps to the silent flag.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue timings. The ring is a struck bell: long fundamental, overtone
// that dies early. The tick is a short click-like blip.
const (
	ringDuration        = 600 * time.Millisecond
	ringAttack          = 5 * time.Millisecond
	ringFundamentalFade = 550 * time.Millisecond
	ringOvertoneFade    = 200 * time.Millisecond

	tickDuration = 80 * time.Millisecond
	tickAttack   = 5 * time.Millisecond
	tickFade     = 40 * time.Millisecond
)

// ringCue builds the two-tone bell: A5 fundamental plus its octave
func ringCue(rate beep.SampleRate) beep.Streamer {
	fund := NewTone(880.0, ringDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, ringDuration, ringAttack, ringFundamentalFade, rate)

	over := NewTone(1760.0, ringDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, ringDuration, ringAttack, ringOvertoneFade, rate)

	return beep.Mix(
		gain(fundShaped, 0.7),
		gain(overShaped, 0.3),
	)
}

// tickCue builds the short click blip: one square-wave B5 note
func tickCue(rate beep.SampleRate) beep.Streamer {
	blip := NewTone(987.77, tickDuration, WaveSquare, rate)
	shaped := NewEnvelope(blip, tickDuration, tickAttack, tickFade, rate)
	return gain(shaped, 0.4)
}
