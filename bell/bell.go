// @focus: #sys { audio }
package bell

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(48000)
	speakerBuffer = 100 * time.Millisecond
)

// Manager owns the speaker and overlays short cues on a shared mixer.
// Cues are fire-and-forget; overlapping rings mix instead of cutting
// each other off.
type Manager struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
	muted atomic.Bool
}

// Open initializes the audio device and starts the mixer. A box with
// no audio device gets a silent manager, not an error: every cue
// method stays callable and does nothing.
func Open() *Manager {
	m := &Manager{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return m
	}
	speaker.Play(m.mixer)
	m.ready = true
	return m
}

// Ready reports whether the audio device initialized
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

// Ring plays the two-tone bell cue
func (m *Manager) Ring() {
	m.play(ringCue(sampleRate))
}

// Tick plays the short blip cue
func (m *Manager) Tick() {
	m.play(tickCue(sampleRate))
}

// Mute sets the mute state. Muted cues are dropped, not queued.
func (m *Manager) Mute(on bool) {
	m.muted.Store(on)
}

// Muted returns the current mute state
func (m *Manager) Muted() bool {
	return m.muted.Load()
}

// play adds a finished-when-drained streamer to the live mixer. The
// speaker goroutine reads the mixer concurrently, so mutation happens
// under the speaker lock.
func (m *Manager) play(s beep.Streamer) {
	if m.muted.Load() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close drops pending cues and releases the audio device. The manager
// goes silent; it cannot be reopened.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.ready = false
}
