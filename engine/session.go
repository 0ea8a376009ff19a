package engine

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/vt"
)

// outputBufferSize holds a full frame of styled cells without
// intermediate flushes.
const outputBufferSize = 131072

// Session owns one terminal UI lifetime: raw-mode entry and
// restoration, the component tree, the z-order registry, event routing,
// and rendering. Not safe for concurrent use; NextEvent, Render, and
// tree mutation belong to one goroutine.
type Session struct {
	cfg config

	backend terminal.Backend
	screen  vt.Screen
	input   InputSource
	out     *bufio.Writer
	enc     *terminal.Encoder
	log     *slog.Logger

	colorMode terminal.ColorMode
	scratch   []byte // per-cell encode buffer, reused across Render

	root *Component
	reg  *registry

	width, height uint16

	// Lifecycle flags. active gates every operation; the watcher
	// goroutine stores needsResize/exiting and never touches the rest.
	active      atomic.Bool
	needsResize atomic.Bool
	exiting     atomic.Bool

	sigCh   chan os.Signal
	wakeCh  chan struct{}
	sigStop chan struct{}
}

// New allocates a session. No terminal state changes until Init; the
// tree can be built first.
func New(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session{
		cfg:     cfg,
		log:     cfg.logger,
		reg:     newRegistry(cfg.registryCap),
		scratch: make([]byte, 0, 8),
	}
}

// Init activates the session: raw mode, output encoding resolution,
// size query, emulation engine construction, signal watcher, terminal
// enter sequence, input reader. Any failure after raw mode entry
// restores the terminal exactly once before the error returns. Init
// after Fini is a fresh activation.
func (s *Session) Init() error {
	const op Op = "engine.Init"

	if s.cfg.err != nil {
		return E(op, KindInit, s.cfg.err)
	}
	if s.active.Load() {
		return E(op, KindInit, "session already active")
	}

	backend := s.cfg.backend
	if backend == nil {
		backend = terminal.NewBackend()
	}
	if err := backend.Init(); err != nil {
		return E(op, KindInit, err)
	}

	enc, err := s.resolveEncoding()
	if err != nil {
		backend.Fini()
		return E(op, KindInit, err)
	}

	cols, rows, err := backend.Size()
	if err != nil {
		backend.Fini()
		return E(op, KindInit, err)
	}
	w, h, err := dims16(op, cols, rows)
	if err != nil {
		backend.Fini()
		return err
	}

	s.backend = backend
	s.enc = enc
	s.width, s.height = w, h
	s.screen = s.cfg.newScreen(cols, rows)
	s.out = bufio.NewWriterSize(backend, outputBufferSize)

	s.colorMode = s.cfg.colorMode
	if !s.cfg.colorModeSet {
		s.colorMode = terminal.DetectColorMode()
	}

	s.needsResize.Store(false)
	s.exiting.Store(false)
	s.sigCh = make(chan os.Signal, 8)
	s.wakeCh = make(chan struct{}, 1)
	s.sigStop = make(chan struct{})
	signal.Notify(s.sigCh, sessionSignals...)
	go s.watchSignals(s.sigCh, s.sigStop)

	terminal.EnterScreen(s.out, s.cfg.mouseMode)
	s.out.Flush()

	s.input = s.cfg.newInput(backend)
	s.input.Start()

	if s.root != nil {
		s.root.Resize(Rect{W: w, H: h})
	}

	s.active.Store(true)
	s.log.Info("session active",
		slog.Int("cols", cols), slog.Int("rows", rows),
		slog.String("encoding", enc.Name()))
	return nil
}

// resolveEncoding picks the output encoder: the WithEncoding override
// when present, otherwise the environment locale's charset.
func (s *Session) resolveEncoding() (*terminal.Encoder, error) {
	if s.cfg.charset != "" {
		return terminal.ResolveEncoding(s.cfg.charset)
	}
	return terminal.ResolveEncoding(terminal.DetectLocale().Charset)
}

// Fini deactivates the session and restores the terminal. Idempotent:
// only the call that swaps the activity flag restores, so a deferred
// Fini after a fatal error is a no-op. Order: mouse reporting off,
// input reader stopped, signal dispositions released, leave sequence,
// termios restored.
func (s *Session) Fini() {
	if !s.active.CompareAndSwap(true, false) {
		return
	}

	terminal.SetMouseMode(s.out, s.cfg.mouseMode, terminal.MouseModeNone)
	s.out.Flush()

	s.input.Stop()

	signal.Stop(s.sigCh)
	close(s.sigStop)

	terminal.LeaveScreen(s.out, terminal.MouseModeNone)
	s.out.Flush()

	s.backend.Fini()
	s.log.Info("session restored")
}

// watchSignals translates process signals into the atomic flags. No
// session work happens here; the router observes the flags on its own
// schedule. Exits when Fini closes stop.
func (s *Session) watchSignals(sigCh <-chan os.Signal, stop <-chan struct{}) {
	for {
		select {
		case sig := <-sigCh:
			if isResizeSignal(sig) {
				s.needsResize.Store(true)
			} else {
				s.exiting.Store(true)
			}
			s.wake()
		case <-stop:
			return
		}
	}
}

// wake pokes a blocked NextEvent without blocking the sender; one
// pending wake is enough for any number of flag stores.
func (s *Session) wake() {
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}

// Quit requests an orderly exit: the next NextEvent call restores the
// terminal and returns EventEnd. Safe to call from handlers during
// dispatch and from other goroutines.
func (s *Session) Quit() {
	s.exiting.Store(true)
	s.wake()
}

// SetRoot registers the root component and, when the session is active,
// immediately applies the current window rect to it.
func (s *Session) SetRoot(c *Component) error {
	const op Op = "engine.SetRoot"
	if c == nil {
		return E(op, KindOther, "nil component")
	}
	if s.root != nil {
		return E(op, KindOther, "root already set")
	}
	if c.sess != nil {
		return E(op, KindOther, "component already attached")
	}
	if !s.reg.insert(c) {
		return E(op, KindCapacity, fmt.Sprintf("registry full at %d components", s.reg.capacity))
	}
	c.sess = s
	s.root = c
	if s.active.Load() {
		c.Resize(Rect{W: s.width, H: s.height})
	}
	return nil
}

// Attach links child under parent in the tree and inserts it top-most
// in the z-order. A component attaches at most once. On registry
// rejection the child-list append is rolled back.
func (s *Session) Attach(parent, child *Component) error {
	const op Op = "engine.Attach"
	if parent == nil || child == nil {
		return E(op, KindOther, "nil component")
	}
	if child.sess != nil || child.parent != nil {
		return E(op, KindOther, "component already attached")
	}
	if parent.sess != s {
		return E(op, KindOther, "parent not in this session")
	}
	if len(parent.children) >= s.cfg.childCap {
		return E(op, KindCapacity, fmt.Sprintf("component %q full at %d children", parent.kind.Name(), s.cfg.childCap))
	}

	parent.children = append(parent.children, child)
	if !s.reg.insert(child) {
		parent.children = parent.children[:len(parent.children)-1]
		s.log.Debug("registry full", slog.String("component", child.kind.Name()), slog.Int("capacity", s.reg.capacity))
		return E(op, KindCapacity, fmt.Sprintf("registry full at %d components", s.reg.capacity))
	}
	child.parent = parent
	child.sess = s
	return nil
}

// Detach removes the component and its whole subtree from the tree and
// the registry. Every removed node is dismantled back to the unattached
// state, so nodes are individually reusable. The root cannot be
// detached.
func (s *Session) Detach(c *Component) error {
	const op Op = "engine.Detach"
	if c == nil {
		return E(op, KindOther, "nil component")
	}
	if c.sess != s {
		return E(op, KindOther, "component not in this session")
	}
	if c == s.root {
		return E(op, KindOther, "cannot detach root")
	}

	p := c.parent
	for i, ch := range p.children {
		if ch == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	s.dropSubtree(c)
	return nil
}

// dropSubtree unregisters c and every descendant, clearing their links.
func (s *Session) dropSubtree(c *Component) {
	s.reg.remove(c)
	for _, ch := range c.children {
		s.dropSubtree(ch)
	}
	c.parent = nil
	c.children = nil
	c.sess = nil
}

// Raise moves the component to the top of the z-order. The registry is
// flat; children do not follow. Unattached components are ignored.
func (s *Session) Raise(c *Component) {
	if c == nil || c.sess != s {
		return
	}
	s.reg.raise(c)
}

// Write feeds bytes through the emulation engine's cursor. The bytes
// land in cells, not on the wire; Render flushes the difference.
func (s *Session) Write(p []byte) (int, error) {
	if !s.active.Load() {
		return 0, E(Op("engine.Write"), KindNotInitialized)
	}
	return s.screen.Write(p)
}

// Screen exposes the emulation engine for direct cell access. Nil
// before the first Init.
func (s *Session) Screen() vt.Screen {
	return s.screen
}

// Size returns the window dimensions from the last query.
func (s *Session) Size() (w, h uint16) {
	return s.width, s.height
}
