package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnterScreen(t *testing.T) {
	var buf bytes.Buffer
	EnterScreen(&buf, MouseModeClick)
	want := "\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l\x1b[?7l\x1b[?1006h\x1b[?1000h"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestEnterScreenNoMouse(t *testing.T) {
	var buf bytes.Buffer
	EnterScreen(&buf, MouseModeNone)
	want := "\x1b[?1049h\x1b[2J\x1b[H\x1b[?25l\x1b[?7l"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLeaveScreen(t *testing.T) {
	var buf bytes.Buffer
	LeaveScreen(&buf, MouseModeClick)
	want := "\x1b[?1000l\x1b[?1006l\x1b[2J\x1b[?25h\x1b[?1049l\x1b[?7h\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestLeaveScreenRestoresAttributes(t *testing.T) {
	var buf bytes.Buffer
	LeaveScreen(&buf, MouseModeNone)
	if !strings.HasSuffix(buf.String(), "\x1b[0m") {
		t.Errorf("Expected trailing SGR reset, got %q", buf.String())
	}
}

func TestSetMouseMode(t *testing.T) {
	tests := []struct {
		name     string
		old, new MouseMode
		want     string
	}{
		{"No change", MouseModeClick, MouseModeClick, ""},
		{"None to none", MouseModeNone, MouseModeNone, ""},
		{"Enable click", MouseModeNone, MouseModeClick, "\x1b[?1006h\x1b[?1000h"},
		{"Disable click", MouseModeClick, MouseModeNone, "\x1b[?1000l\x1b[?1006l"},
		{"Enable click and drag", MouseModeNone, MouseModeClick | MouseModeDrag, "\x1b[?1006h\x1b[?1000h\x1b[?1002h"},
		{"Drop drag keep click", MouseModeClick | MouseModeDrag, MouseModeClick, "\x1b[?1002l"},
		{"Swap click for drag", MouseModeClick, MouseModeDrag, "\x1b[?1000l\x1b[?1002h"},
		{"Enable motion", MouseModeNone, MouseModeMotion, "\x1b[?1006h\x1b[?1003h"},
		{"Disable motion", MouseModeMotion, MouseModeNone, "\x1b[?1003l\x1b[?1006l"},
		{"Full tracking off", MouseModeClick | MouseModeDrag | MouseModeMotion, MouseModeNone, "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetMouseMode(&buf, tt.old, tt.new)
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
