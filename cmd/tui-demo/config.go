package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/terminal"
)

// config is the TOML file layout. Colors are palette names, keys are
// single runes or canonical key names ("ctrl_x", "f5").
type config struct {
	Theme themeConfig `toml:"theme"`
	Keys  keysConfig  `toml:"keys"`
}

type themeConfig struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Border     string `toml:"border"`
	Accent     string `toml:"accent"`
	Highlight  string `toml:"highlight"`
	StatusBg   string `toml:"status_bg"`
	StatusText string `toml:"status_text"`
}

type keysConfig struct {
	Quit  string `toml:"quit"`
	Raise string `toml:"raise"`
	Mute  string `toml:"mute"`
}

func defaultConfig() config {
	return config{
		Theme: themeConfig{
			Background: "gunmetal",
			Text:       "silver",
			Border:     "steelblue",
			Accent:     "amber",
			Highlight:  "seagreen",
			StatusBg:   "deepnavy",
			StatusText: "lightgray",
		},
		Keys: keysConfig{
			Quit:  "q",
			Raise: "r",
			Mute:  "b",
		},
	}
}

// loadConfig overlays a TOML file on the defaults, so partial files
// only override what they name.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// theme is the resolved color set
type theme struct {
	background terminal.RGB
	text       terminal.RGB
	border     terminal.RGB
	accent     terminal.RGB
	highlight  terminal.RGB
	statusBg   terminal.RGB
	statusText terminal.RGB
}

func (tc themeConfig) resolve() (theme, error) {
	var th theme
	fields := []struct {
		name string
		dst  *terminal.RGB
	}{
		{tc.Background, &th.background},
		{tc.Text, &th.text},
		{tc.Border, &th.border},
		{tc.Accent, &th.accent},
		{tc.Highlight, &th.highlight},
		{tc.StatusBg, &th.statusBg},
		{tc.StatusText, &th.statusText},
	}
	for _, f := range fields {
		c, ok := terminal.ColorByName(f.name)
		if !ok {
			return th, fmt.Errorf("unknown color %q", f.name)
		}
		*f.dst = c
	}
	return th, nil
}

// binding matches one configured key chord
type binding struct {
	key terminal.Key
	r   rune
}

func parseBinding(s string) (binding, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return binding{key: terminal.KeyRune, r: r}, nil
	}
	if k, ok := terminal.KeyByName(s); ok {
		return binding{key: k}, nil
	}
	return binding{}, fmt.Errorf("unknown key %q", s)
}

func (b binding) matches(ev engine.KeyEvent) bool {
	if b.key == terminal.KeyRune {
		return ev.Key == terminal.KeyRune && ev.Rune == b.r
	}
	return ev.Key == b.key
}

// keymap is the resolved key set
type keymap struct {
	quit  binding
	raise binding
	mute  binding
}

func (kc keysConfig) resolve() (keymap, error) {
	var km keymap
	fields := []struct {
		name string
		dst  *binding
	}{
		{kc.Quit, &km.quit},
		{kc.Raise, &km.raise},
		{kc.Mute, &km.mute},
	}
	for _, f := range fields {
		b, err := parseBinding(f.name)
		if err != nil {
			return km, err
		}
		*f.dst = b
	}
	return km, nil
}
