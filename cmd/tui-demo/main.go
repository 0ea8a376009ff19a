// Command tui-demo is a small dashboard exercising the full stack:
// session lifecycle, z-ordered panes with mouse raise, key routing,
// TOML-driven theming, and the audio cues.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tuikit/bell"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/terminal"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	configPath := flag.String("config", "", "TOML config file (theme colors, key bindings)")
	logPath := flag.String("log", "", "write debug log to file")
	mute := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	// Deferred Fini runs before this and restores the terminal; the
	// reset here covers a panic before Init or during restore itself.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mtui-demo CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = 1
		}
	}()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
			return 1
		}
	}
	th, err := cfg.Theme.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
		return 1
	}
	km, err := cfg.Keys.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
		return 1
	}

	var opts []engine.Option
	if *logPath != "" {
		logger, closeLog, err := engine.NewFileLogger(*logPath, slog.LevelDebug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
			return 1
		}
		defer closeLog()
		opts = append(opts, engine.WithLogger(logger))
	}

	audio := bell.Open()
	defer audio.Close()
	audio.Mute(*mute)

	sess := engine.New(opts...)
	if err := sess.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
		return 1
	}
	defer sess.Fini()

	a := &app{sess: sess, bell: audio, theme: th, keys: km, names: cfg.Keys}
	if err := buildTree(a); err != nil {
		sess.Fini()
		fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
		return 1
	}

	if err := sess.Render(); err != nil {
		sess.Fini()
		fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
		return 1
	}
	for {
		ev, err := sess.NextEvent()
		if err != nil {
			// Fatal event paths restore the terminal before returning.
			fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
			return 1
		}
		switch {
		case ev.Type == engine.EventEnd:
			return 0
		case ev.Type == engine.EventKey && !ev.Handled:
			audio.Ring()
		}
		if err := sess.Render(); err != nil {
			sess.Fini()
			fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
			return 1
		}
	}
}
