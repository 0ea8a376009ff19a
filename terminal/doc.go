// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control.
//
// Features:
//   - Raw mode entry/exit with byte-exact state restoration
//   - True color (24-bit) and 256-color palette support
//   - Minimal SGR transitions between cell styles
//   - Raw stdin parsing: UTF-8, CSI/SS3 keys, SGR mouse reports
//   - Locale-aware output encoding with substitution
//   - Emergency restore path for crashed sessions
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with
// xterm-compatible terminals. Session orchestration (signal handling,
// event routing, drawing) lives above this package; terminal only
// speaks the wire protocol.
package terminal
