package main

import (
	"fmt"

	"github.com/lixenwraith/tuikit/bell"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/vt"
)

// app wires the session, audio, and configuration together and tracks
// which pane was raised last. Pane rotation follows attach order, which
// is stable while z-order changes underneath it.
type app struct {
	sess  *engine.Session
	bell  *bell.Manager
	theme theme
	keys  keymap
	names keysConfig

	panes []*engine.Component
	top   *engine.Component
	next  int
}

func (a *app) raisePane(c *engine.Component) {
	a.sess.Raise(c)
	a.top = c
	a.bell.Tick()
}

func (a *app) raiseNext() {
	if len(a.panes) == 0 {
		return
	}
	a.raisePane(a.panes[a.next])
	a.next = (a.next + 1) % len(a.panes)
}

func (a *app) toggleMute() {
	muted := !a.bell.Muted()
	a.bell.Mute(muted)
	if !muted {
		a.bell.Ring()
	}
}

// dashboard is the root component: paints the backdrop, lays out the
// panes and status bar, and owns the global key bindings.
type dashboard struct {
	app *app
}

func (d *dashboard) Name() string { return "dashboard" }

func (d *dashboard) Render(c *engine.Component, scr vt.Screen) {
	r := c.Rect()
	vt.NewRegion(scr, int(r.X), int(r.Y), int(r.W), int(r.H)).Fill(d.app.theme.background)
}

func (d *dashboard) Resize(c *engine.Component, r engine.Rect) {
	kids := c.Children()
	if len(kids) == 0 {
		return
	}
	w, h := int(r.W), int(r.H)

	// Last child is the status bar, pinned to the bottom row.
	status := kids[len(kids)-1]
	if h > 0 {
		status.Resize(engine.Rect{X: 0, Y: uint16(h - 1), W: uint16(w), H: 1})
	}

	// Panes cascade diagonally over the remaining rows.
	body := h - 1
	pw, ph := w*3/5, body*3/5
	if pw < 4 || ph < 3 {
		return
	}
	for i, pane := range kids[:len(kids)-1] {
		x, y := i*w/8, i*body/8
		pane.Resize(engine.Rect{X: uint16(x), Y: uint16(y), W: uint16(pw), H: uint16(ph)})
	}
}

func (d *dashboard) HandleKey(c *engine.Component, ev engine.KeyEvent) bool {
	switch {
	case d.app.keys.quit.matches(ev):
		d.app.sess.Quit()
		return true
	case d.app.keys.raise.matches(ev):
		d.app.raiseNext()
		return true
	case d.app.keys.mute.matches(ev):
		d.app.toggleMute()
		return true
	}
	return false
}

// pane is an opaque framed panel. Clicking it raises it to the top of
// the z-order.
type pane struct {
	app   *app
	title string
	lines []string
}

func (p *pane) Name() string { return "pane:" + p.title }

func (p *pane) Render(c *engine.Component, scr vt.Screen) {
	r := c.Rect()
	reg := vt.NewRegion(scr, int(r.X), int(r.Y), int(r.W), int(r.H))
	reg.Fill(p.app.theme.background)

	border := p.app.theme.border
	if p.app.top == c {
		border = p.app.theme.accent
	}
	body := reg.Frame(vt.LineRounded, p.title, border)
	for i, line := range p.lines {
		if i >= body.Height() {
			break
		}
		body.WriteString(1, i, line, p.app.theme.text, terminal.RGB{}, terminal.AttrFgSet)
	}
}

func (p *pane) HandleClick(c *engine.Component, ev engine.MouseEvent) bool {
	if ev.Button == terminal.MouseBtnLeft && ev.Action == terminal.MouseActionPress {
		p.app.raisePane(c)
		return true
	}
	return false
}

// statusBar shows the key bindings and audio state on the bottom row.
type statusBar struct {
	app *app
}

func (s *statusBar) Name() string { return "status" }

func (s *statusBar) Render(c *engine.Component, scr vt.Screen) {
	r := c.Rect()
	reg := vt.NewRegion(scr, int(r.X), int(r.Y), int(r.W), int(r.H))
	reg.Fill(s.app.theme.statusBg)

	state := "on"
	if s.app.bell.Muted() {
		state = "muted"
	}
	if !s.app.bell.Ready() {
		state = "off"
	}
	text := fmt.Sprintf(" %s quit | %s raise | %s bell (%s) | click a pane to raise it",
		s.app.names.Quit, s.app.names.Raise, s.app.names.Mute, state)
	reg.WriteString(0, 0, text, s.app.theme.statusText, s.app.theme.statusBg,
		terminal.AttrFgSet|terminal.AttrBgSet)
}

// buildTree assembles root, panes, and status bar. Attach order puts
// the status bar top-most so cascading panes never cover it.
func buildTree(a *app) error {
	root := engine.NewComponent(&dashboard{app: a})
	if err := a.sess.SetRoot(root); err != nil {
		return err
	}

	content := []struct {
		title string
		lines []string
	}{
		{"Overview", []string{
			"Session state, color mode and",
			"encoding negotiated at startup.",
		}},
		{"Activity", []string{
			"Raised panes jump to the top",
			"of the z-order; the frame color",
			"marks the most recent raise.",
		}},
		{"Audio", []string{
			"Pane raises play a short tick,",
			"rejected keys ring the bell.",
		}},
	}
	for _, pc := range content {
		p := engine.NewComponent(&pane{app: a, title: pc.title, lines: pc.lines})
		if err := a.sess.Attach(root, p); err != nil {
			return err
		}
		a.panes = append(a.panes, p)
	}

	status := engine.NewComponent(&statusBar{app: a})
	if err := a.sess.Attach(root, status); err != nil {
		return err
	}

	// Trigger the initial layout now that the children exist.
	root.Resize(root.Rect())
	return nil
}
