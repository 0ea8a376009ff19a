package engine

import (
	"strings"
	"testing"

	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/vt"
)

func TestRenderNotInitialized(t *testing.T) {
	s := newTestSession(t, newFakeBackend(10, 4), newFakeInput())
	if err := s.Render(); !Is(KindNotInitialized, err) {
		t.Errorf("Expected KindNotInitialized, got %v", err)
	}
}

func TestRenderOneWritePerDirtyRow(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())
	k := &paintKind{name: "root", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 1, 'h', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
		scr.SetCell(1, 1, 'i', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	}}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	// A fresh emulation engine is fully dirty, so the first pass flushes
	// every row
	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	if got := len(b.writes) - before; got != 4 {
		t.Fatalf("Expected one write per row on first paint, got %d", got)
	}
	rowAddrs := []string{"\x1b[1;1H", "\x1b[2;1H", "\x1b[3;1H", "\x1b[4;1H"}
	for i, addr := range rowAddrs {
		if got := string(b.writes[before+i]); !strings.HasPrefix(got, addr) {
			t.Errorf("Expected row %d write to start with %q, got %q", i, addr, got)
		}
	}
	if row := string(b.writes[before+1]); !strings.Contains(row, "hi") {
		t.Errorf("Expected painted text in row 1, got %q", row)
	}
}

func TestRenderCleanRowsSilent(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())
	k := &paintKind{name: "root"}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	if err := s.Render(); err != nil {
		t.Fatalf("Expected priming Render to succeed, got %v", err)
	}

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	if got := len(b.writes) - before; got != 0 {
		t.Fatalf("Expected all-clean screen to write nothing, got %d writes", got)
	}

	k.paint = func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 2, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	}
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	if got := len(b.writes) - before; got != 1 {
		t.Fatalf("Expected exactly the touched row flushed, got %d writes", got)
	}
	row := string(b.writes[before])
	if !strings.HasPrefix(row, "\x1b[3;1H") || !strings.Contains(row, "x") {
		t.Errorf("Expected row 2 flushed with the new cell, got %q", row)
	}
}

func TestRenderPaintsBottomUp(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())

	root := NewComponent(&stubKind{name: "root"})
	under := NewComponent(&paintKind{name: "under", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 0, 'B', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	}})
	over := NewComponent(&paintKind{name: "over", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 0, 'T', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	}})

	s.SetRoot(root)
	s.Attach(root, under)
	s.Attach(root, over)
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}

	if got := s.Screen().CellAt(0, 0).Rune; got != 'T' {
		t.Errorf("Expected top-most paint to win the cell, got %q", got)
	}
	row := string(b.writes[before])
	if !strings.Contains(row, "T") || strings.Contains(row, "B") {
		t.Errorf("Expected only the top-most rune on the wire, got %q", row)
	}
}

func TestRenderReverseVideo(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())
	k := &paintKind{name: "root", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 0, 'R',
			terminal.RGB{R: 255}, terminal.RGB{B: 255},
			terminal.AttrReverse|terminal.AttrFgSet|terminal.AttrBgSet)
	}}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	row := string(b.writes[before])

	if !strings.Contains(row, "38;2;0;0;255") {
		t.Errorf("Expected foreground resolved to the old background, got %q", row)
	}
	if !strings.Contains(row, "48;2;255;0;0") {
		t.Errorf("Expected background resolved to the old foreground, got %q", row)
	}
	if strings.Contains(row, "\x1b[7") || strings.Contains(row, ";7m") || strings.Contains(row, ";7;") {
		t.Errorf("Expected no SGR 7 on the wire, got %q", row)
	}
}

func TestRenderInvisible(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())
	k := &paintKind{name: "root", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 0, 'X', terminal.RGB{}, terminal.RGB{}, terminal.AttrInvisible)
	}}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	row := string(b.writes[before])

	if !strings.Contains(row, "\x1b[8m") {
		t.Errorf("Expected conceal attribute on the wire, got %q", row)
	}
	if strings.Contains(row, "X") {
		t.Errorf("Expected concealed rune blanked, got %q", row)
	}
}

func TestRenderCharmapSubstitution(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput(), WithEncoding("ISO-8859-1"))
	k := &paintKind{name: "root", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 0, '世', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	}}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	row := string(b.writes[before])

	if !strings.Contains(row, "?") {
		t.Errorf("Expected unmappable rune substituted, got %q", row)
	}
	if strings.Contains(row, "世") {
		t.Errorf("Expected no UTF-8 bytes on a charmap wire, got %q", row)
	}
}

func TestRenderWidePlaceholderSkipped(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())
	k := &paintKind{name: "root", paint: func(c *Component, scr vt.Screen) {
		scr.SetCell(0, 0, '世', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
		scr.SetCell(2, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	}}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	row := string(b.writes[before])

	// The placeholder column emits nothing, so the wide rune and its
	// right neighbor are adjacent on the wire
	if !strings.Contains(row, "世x") {
		t.Errorf("Expected placeholder column skipped, got %q", row)
	}
}

func TestRenderTrailingReset(t *testing.T) {
	b := newFakeBackend(10, 4)
	s := newTestSession(t, b, newFakeInput())
	k := &paintKind{name: "root", paint: func(c *Component, scr vt.Screen) {
		for col := 0; col < 10; col++ {
			scr.SetCell(col, 0, 'a', terminal.RGB{}, terminal.RGB{}, terminal.AttrBold)
		}
	}}
	s.SetRoot(NewComponent(k))
	if err := s.Init(); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	defer s.Fini()

	before := len(b.writes)
	if err := s.Render(); err != nil {
		t.Fatalf("Expected Render to succeed, got %v", err)
	}
	row := string(b.writes[before])

	if !strings.Contains(row, "\x1b[1m") {
		t.Errorf("Expected bold enabled once for the run, got %q", row)
	}
	if strings.Count(row, "\x1b[1m") != 1 {
		t.Errorf("Expected a single transition for a uniform run, got %q", row)
	}
	if !strings.HasSuffix(row, "\x1b[0m") {
		t.Errorf("Expected row to end at the default style, got %q", row)
	}
}
