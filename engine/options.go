package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/vt"
)

// DefaultRegistryCapacity bounds live components per session.
const DefaultRegistryCapacity = 64

// DefaultChildCapacity bounds the children of one component.
const DefaultChildCapacity = 64

// InputSource feeds terminal events into the router. terminal.Reader is
// the production implementation; tests inject scripted sources.
type InputSource interface {
	Start()
	Stop()
	Events() <-chan terminal.Event
}

type config struct {
	backend      terminal.Backend
	newScreen    func(cols, rows int) vt.Screen
	newInput     func(terminal.Backend) InputSource
	logger       *slog.Logger
	colorMode    terminal.ColorMode
	colorModeSet bool
	mouseMode    terminal.MouseMode
	registryCap  int
	childCap     int
	charset      string

	err error // first invalid option, surfaced at Init
}

func defaultConfig() config {
	return config{
		newScreen:   func(cols, rows int) vt.Screen { return vt.NewGrid(cols, rows) },
		newInput:    func(b terminal.Backend) InputSource { return terminal.NewReader(b) },
		logger:      slog.New(slog.DiscardHandler),
		mouseMode:   terminal.MouseModeClick,
		registryCap: DefaultRegistryCapacity,
		childCap:    DefaultChildCapacity,
	}
}

// fail records the first invalid option; Init reports it.
func (c *config) fail(msg string) {
	if c.err == nil {
		c.err = errors.New(msg)
	}
}

// Option configures a Session at construction.
type Option func(*config)

// WithBackend substitutes the terminal backend. Test seam; the default
// is the platform backend over stdin/stdout.
func WithBackend(b terminal.Backend) Option {
	return func(c *config) {
		if b == nil {
			c.fail("nil backend")
			return
		}
		c.backend = b
	}
}

// WithScreen substitutes the emulation-engine factory. Test seam; the
// default builds a vt.Grid.
func WithScreen(f func(cols, rows int) vt.Screen) Option {
	return func(c *config) {
		if f == nil {
			c.fail("nil screen factory")
			return
		}
		c.newScreen = f
	}
}

// WithInput substitutes the input source factory. Test seam; the
// default builds a terminal.Reader over the backend.
func WithInput(f func(terminal.Backend) InputSource) Option {
	return func(c *config) {
		if f == nil {
			c.fail("nil input factory")
			return
		}
		c.newInput = f
	}
}

// WithLogger routes session logging. The default discards; pass a
// NewFileLogger result to capture activity. The terminal is the UI, so
// a logger must never write to stdout or stderr.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			c.fail("nil logger")
			return
		}
		c.logger = l
	}
}

// WithColorMode overrides color mode detection.
func WithColorMode(m terminal.ColorMode) Option {
	return func(c *config) {
		switch m {
		case terminal.ColorMode256, terminal.ColorModeTrueColor:
			c.colorMode = m
			c.colorModeSet = true
		default:
			c.fail(fmt.Sprintf("unknown color mode %d", m))
		}
	}
}

// WithMouseMode selects the mouse reporting modes enabled at Init.
// Default is click reporting only.
func WithMouseMode(m terminal.MouseMode) Option {
	return func(c *config) {
		if m&^(terminal.MouseModeClick|terminal.MouseModeDrag|terminal.MouseModeMotion) != 0 {
			c.fail(fmt.Sprintf("unknown mouse mode bits %#x", uint8(m)))
			return
		}
		c.mouseMode = m
	}
}

// WithRegistryCapacity bounds the number of live components.
func WithRegistryCapacity(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail(fmt.Sprintf("registry capacity %d below 1", n))
			return
		}
		c.registryCap = n
	}
}

// WithChildCapacity bounds the children of one component.
func WithChildCapacity(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail(fmt.Sprintf("child capacity %d below 1", n))
			return
		}
		c.childCap = n
	}
}

// WithEncoding forces an output charset instead of locale detection.
// The name resolves through the IANA registry at Init.
func WithEncoding(charset string) Option {
	return func(c *config) {
		if charset == "" {
			c.fail("empty charset")
			return
		}
		c.charset = charset
	}
}
