// Command input-test echoes parsed input events: press keys, move the
// mouse, drag the [X] marker. Useful for checking what a terminal
// actually delivers. Ctrl+C or Ctrl+Q quits.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/vt"
)

var (
	bgColor     = terminal.Gunmetal
	headerBg    = terminal.DeepNavy
	fgColor     = terminal.Silver
	dimColor    = terminal.SlateGray
	markerColor = terminal.SeaGreen
	dragColor   = terminal.Gold
)

const maxLog = 10

// echoView is the root: title bar, rolling event log, status line.
type echoView struct {
	log      []string
	dragging bool
}

func (v *echoView) Name() string { return "echo" }

func (v *echoView) add(s string) {
	if len(v.log) >= maxLog {
		copy(v.log, v.log[1:])
		v.log = v.log[:maxLog-1]
	}
	v.log = append(v.log, s)
}

func (v *echoView) Render(c *engine.Component, scr vt.Screen) {
	r := c.Rect()
	reg := vt.NewRegion(scr, int(r.X), int(r.Y), int(r.W), int(r.H))
	reg.Fill(bgColor)
	w, h := reg.Width(), reg.Height()

	reg.Sub(0, 0, w, 1).Fill(headerBg)
	reg.WriteCentered(0, "Input Test - keys, mouse, drag the [X] - Ctrl+C quits",
		fgColor, headerBg, terminal.AttrBold|terminal.AttrFgSet|terminal.AttrBgSet)

	for x := 0; x < w; x++ {
		reg.SetCell(x, 1, '─', dimColor, terminal.RGB{}, terminal.AttrFgSet)
	}

	for i, entry := range v.log {
		y := 2 + i
		if y >= h-2 {
			break
		}
		reg.WriteString(1, y, entry, fgColor, terminal.RGB{}, terminal.AttrFgSet)
	}

	var mk engine.Rect
	if kids := c.Children(); len(kids) > 0 {
		mk = kids[0].Rect()
	}
	for x := 0; x < w; x++ {
		reg.SetCell(x, h-2, '─', dimColor, terminal.RGB{}, terminal.AttrFgSet)
	}
	status := fmt.Sprintf("Size: %dx%d | Marker: (%d,%d) | Dragging: %v",
		w, h, mk.X, mk.Y, v.dragging)
	reg.WriteString(1, h-1, status, dimColor, terminal.RGB{}, terminal.AttrFgSet)
}

// Resize keeps the marker inside the new bounds.
func (v *echoView) Resize(c *engine.Component, r engine.Rect) {
	kids := c.Children()
	if len(kids) == 0 {
		return
	}
	kids[0].Resize(clampMarker(kids[0].Rect(), r))
}

// marker is the draggable 3x1 [X] object.
type marker struct {
	view *echoView
}

func (m *marker) Name() string { return "marker" }

func (m *marker) Render(c *engine.Component, scr vt.Screen) {
	r := c.Rect()
	fg := markerColor
	if m.view.dragging {
		fg = dragColor
	}
	reg := vt.NewRegion(scr, int(r.X), int(r.Y), int(r.W), int(r.H))
	reg.WriteString(0, 0, "[X]", fg, headerBg,
		terminal.AttrBold|terminal.AttrFgSet|terminal.AttrBgSet)
}

func clampMarker(mk, bounds engine.Rect) engine.Rect {
	x, y := int(mk.X), int(mk.Y)
	maxX, maxY := int(bounds.W)-3, int(bounds.H)-1
	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return engine.Rect{X: uint16(x), Y: uint16(y), W: 3, H: 1}
}

func main() {
	sess := engine.New(engine.WithMouseMode(
		terminal.MouseModeClick | terminal.MouseModeDrag | terminal.MouseModeMotion))
	if err := sess.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
	defer sess.Fini()

	view := &echoView{}
	root := engine.NewComponent(view)
	if err := sess.SetRoot(root); err != nil {
		sess.Fini()
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
	mk := engine.NewComponent(&marker{view: view})
	if err := sess.Attach(root, mk); err != nil {
		sess.Fini()
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
	w, h := sess.Size()
	mk.Resize(clampMarker(engine.Rect{X: w / 2, Y: h / 2, W: 3, H: 1}, root.Rect()))

	sess.Render()
	for {
		ev, err := sess.NextEvent()
		if err != nil {
			fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
			os.Exit(1)
		}
		switch ev.Type {
		case engine.EventEnd:
			return

		case engine.EventKey:
			if ev.Key.Key == terminal.KeyCtrlC || ev.Key.Key == terminal.KeyCtrlQ {
				sess.Quit()
				continue
			}
			view.add("KEY: " + keyLabel(ev.Key))

		case engine.EventMouse:
			view.add("MOUSE: " + mouseLabel(ev.Mouse))
			switch ev.Mouse.Action {
			case terminal.MouseActionPress:
				r := mk.Rect()
				if ev.Mouse.Button == terminal.MouseBtnLeft &&
					ev.Mouse.Y == r.Y && ev.Mouse.X >= r.X && ev.Mouse.X < r.X+r.W {
					view.dragging = true
				}
			case terminal.MouseActionRelease:
				view.dragging = false
			case terminal.MouseActionDrag:
				if view.dragging {
					mk.Resize(clampMarker(
						engine.Rect{X: ev.Mouse.X, Y: ev.Mouse.Y, W: 3, H: 1},
						root.Rect()))
				}
			}

		case engine.EventResize:
			view.add(fmt.Sprintf("RESIZE: %dx%d", ev.Width, ev.Height))
		}
		sess.Render()
	}
}

func modPrefix(m terminal.Modifier) string {
	var s string
	if m&terminal.ModShift != 0 {
		s += "Shift+"
	}
	if m&terminal.ModAlt != 0 {
		s += "Alt+"
	}
	if m&terminal.ModCtrl != 0 {
		s += "Ctrl+"
	}
	return s
}

func keyLabel(k engine.KeyEvent) string {
	name := terminal.KeyName(k.Key)
	switch {
	case k.Key == terminal.KeyRune && k.Rune >= 0x20 && k.Rune < 0x7f:
		name = fmt.Sprintf("'%c'", k.Rune)
	case k.Key == terminal.KeyRune:
		name = fmt.Sprintf("U+%04X", k.Rune)
	case name == "":
		name = fmt.Sprintf("key(%d)", k.Key)
	}
	return modPrefix(k.Mod) + name
}

func mouseLabel(m engine.MouseEvent) string {
	return fmt.Sprintf("%s%s %s @ (%d,%d)",
		modPrefix(m.Mod), m.Button.String(), m.Action.String(), m.X, m.Y)
}
