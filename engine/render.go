// @focus: #sys { render }
package engine

import (
	"github.com/lixenwraith/tuikit/terminal"
)

// Render paints the registry bottom-up into the screen, then flushes
// every dirty row as a minimal ANSI delta. Rows that no paint touched
// emit nothing; an all-clean screen writes nothing at all.
func (s *Session) Render() error {
	const op Op = "engine.Render"
	if !s.active.Load() {
		return E(op, KindNotInitialized)
	}

	for i := 0; i < s.reg.len(); i++ {
		c := s.reg.at(i)
		if r, ok := c.kind.(Renderer); ok {
			r.Render(c, s.screen)
		}
	}

	_, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		if s.screen.Dirty(y) {
			s.flushRow(y)
		}
	}
	s.screen.Clean()
	return nil
}

// flushRow emits one dirty row: cursor position, then each cell as a
// style transition plus its encoded rune. The running style starts at
// the default and the row ends back at the default, so rows are
// independent of emission order. The buffered bytes flush once, one
// backend write per dirty row.
func (s *Session) flushRow(y int) {
	terminal.WriteCursorPos(s.out, 0, y)
	cur := terminal.DefaultStyle

	for _, cell := range s.screen.Line(y) {
		// Wide-rune placeholder; the left half already covers this column
		if cell.Rune == 0 {
			continue
		}
		next := effectiveStyle(cell)
		cur = terminal.WriteStyle(s.out, cur, next, s.colorMode)

		r := cell.Rune
		if next.Attrs&terminal.AttrInvisible != 0 {
			r = ' '
		}
		s.scratch = s.enc.AppendRune(s.scratch[:0], r)
		s.out.Write(s.scratch)
	}

	terminal.WriteStyle(s.out, cur, terminal.DefaultStyle, s.colorMode)
	s.out.Flush()
}

// effectiveStyle resolves reverse video before the transition writer
// sees the style: fg and bg swap roles, together with their set and
// palette flags, and the reverse bit clears. SGR 7 never reaches the
// wire, so the running-state comparison stays exact.
func effectiveStyle(c terminal.Cell) terminal.Style {
	st := terminal.StyleOf(c)
	if st.Attrs&terminal.AttrReverse == 0 {
		return st
	}

	a := st.Attrs &^ (terminal.AttrReverse |
		terminal.AttrFgSet | terminal.AttrBgSet |
		terminal.AttrFg256 | terminal.AttrBg256)
	if st.Attrs&terminal.AttrBgSet != 0 {
		a |= terminal.AttrFgSet
	}
	if st.Attrs&terminal.AttrFgSet != 0 {
		a |= terminal.AttrBgSet
	}
	if st.Attrs&terminal.AttrBg256 != 0 {
		a |= terminal.AttrFg256
	}
	if st.Attrs&terminal.AttrFg256 != 0 {
		a |= terminal.AttrBg256
	}
	return terminal.Style{Fg: st.Bg, Bg: st.Fg, Attrs: a}
}
