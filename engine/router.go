package engine

import (
	"log/slog"

	"github.com/lixenwraith/tuikit/terminal"
)

// NextEvent blocks for the next routed event. Precedence is total:
// exit request, then pending resize, then input. Signal flags are
// re-checked after every wake, so a SIGWINCH arriving while input is
// queued still delivers its resize first. Fatal conditions restore the
// terminal before the error returns.
func (s *Session) NextEvent() (Event, error) {
	const op Op = "engine.NextEvent"

	if !s.active.Load() {
		return Event{}, E(op, KindNotInitialized)
	}
	if s.root == nil {
		s.Fini()
		return Event{}, E(op, KindNoRoot)
	}

	for {
		if s.exiting.Load() {
			s.log.Info("exit requested")
			s.Fini()
			return Event{Type: EventEnd, Handled: true}, nil
		}
		if s.needsResize.CompareAndSwap(true, false) {
			return s.handleResize()
		}

		select {
		case ev, ok := <-s.input.Events():
			if !ok {
				s.Fini()
				return Event{Type: EventEnd, Handled: true}, nil
			}
			switch ev.Type {
			case terminal.EventClosed:
				s.log.Info("input stream closed")
				s.Fini()
				return Event{Type: EventEnd, Handled: true}, nil
			case terminal.EventError:
				s.log.Error("input read failed", slog.String("err", ev.Err.Error()))
				s.Fini()
				return Event{}, E(op, KindInit, ev.Err)
			case terminal.EventKey:
				return s.dispatchKey(ev), nil
			case terminal.EventMouse:
				return s.dispatchMouse(ev), nil
			}
		case <-s.wakeCh:
			// Flag store since the last check; loop re-runs precedence
		}
	}
}

// handleResize re-queries the window, resizes the emulation engine, and
// reflows the tree from the root down. Queued input stays behind the
// resize event.
func (s *Session) handleResize() (Event, error) {
	const op Op = "engine.NextEvent"

	cols, rows, err := s.backend.Size()
	if err != nil {
		s.Fini()
		return Event{}, E(op, KindInit, err)
	}
	w, h, err := dims16(op, cols, rows)
	if err != nil {
		s.Fini()
		return Event{}, err
	}
	if err := s.screen.Resize(cols, rows); err != nil {
		s.Fini()
		return Event{}, E(op, KindInit, err)
	}

	s.width, s.height = w, h
	s.root.Resize(Rect{W: w, H: h})
	s.log.Debug("window resized", slog.Int("cols", cols), slog.Int("rows", rows))
	return Event{Type: EventResize, Width: w, Height: h, Handled: true}, nil
}

// dispatchKey scans the registry top-most first; the first KeyHandler
// that consumes the event stops the scan. There is no focus model: key
// dispatch is a global z-order scan.
func (s *Session) dispatchKey(ev terminal.Event) Event {
	key := KeyEvent{Rune: ev.Rune, Key: ev.Key, Mod: ev.Modifiers}
	out := Event{Type: EventKey, Key: key}

	for i := s.reg.len() - 1; i >= 0; i-- {
		c := s.reg.at(i)
		if h, ok := c.kind.(KeyHandler); ok && h.HandleKey(c, key) {
			out.Handled = true
			break
		}
	}
	return out
}

// dispatchMouse hit-tests top-most first, then escalates along parent
// links from the hit component. Siblings are never consulted; a miss
// delivers the event unhandled.
func (s *Session) dispatchMouse(ev terminal.Event) Event {
	mouse := MouseEvent{
		X:      clamp16(ev.MouseX),
		Y:      clamp16(ev.MouseY),
		Button: ev.MouseBtn,
		Action: ev.MouseAction,
		Mod:    ev.Modifiers,
	}
	out := Event{Type: EventMouse, Mouse: mouse}

	hit := s.reg.topAt(mouse.X, mouse.Y)
	for c := hit; c != nil; c = c.parent {
		if h, ok := c.kind.(ClickHandler); ok && h.HandleClick(c, mouse) {
			out.Handled = true
			break
		}
	}
	return out
}
