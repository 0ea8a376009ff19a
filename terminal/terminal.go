package terminal

import (
	"io"
)

// EnterScreen switches the terminal into session state: alternate screen
// buffer, cleared and homed, cursor hidden, auto-wrap off, mouse reporting
// per mode. The caller must already hold raw mode via Backend.Init.
func EnterScreen(w io.Writer, mode MouseMode) {
	w.Write(csiAltScreenEnter)
	w.Write(csiClear)
	w.Write(csiHome)
	w.Write(csiCursorHide)
	// Prevents terminal scroll/wrap on bottom-right corner write
	w.Write(csiAutoWrapOff)
	SetMouseMode(w, MouseModeNone, mode)
}

// LeaveScreen reverses EnterScreen: mouse reporting off, screen cleared,
// cursor shown, alternate screen exited, auto-wrap and attributes restored.
func LeaveScreen(w io.Writer, mode MouseMode) {
	SetMouseMode(w, mode, MouseModeNone)
	w.Write(csiClear)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	// Re-enable auto-wrap after exiting alt screen so the main buffer wraps
	w.Write(csiAutoWrapOn)
	w.Write(csiSGR0)
}

// SetMouseMode emits the reporting-mode delta between old and new.
// SGR coordinate mode is enabled before the first tracking mode and
// disabled after the last; tracking modes disable in reverse enable order.
func SetMouseMode(w io.Writer, old, new MouseMode) {
	if old == new {
		return
	}

	if old&MouseModeMotion != 0 && new&MouseModeMotion == 0 {
		w.Write(csiMouseMotionOff)
	}
	if old&MouseModeDrag != 0 && new&MouseModeDrag == 0 {
		w.Write(csiMouseDragOff)
	}
	if old&MouseModeClick != 0 && new&MouseModeClick == 0 {
		w.Write(csiMouseClickOff)
	}
	if new == MouseModeNone && old != MouseModeNone {
		w.Write(csiMouseSGROff)
	}

	if new != MouseModeNone && old == MouseModeNone {
		w.Write(csiMouseSGROn)
	}
	if new&MouseModeClick != 0 && old&MouseModeClick == 0 {
		w.Write(csiMouseClickOn)
	}
	if new&MouseModeDrag != 0 && old&MouseModeDrag == 0 {
		w.Write(csiMouseDragOn)
	}
	if new&MouseModeMotion != 0 && old&MouseModeMotion == 0 {
		w.Write(csiMouseMotionOn)
	}
}
