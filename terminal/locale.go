package terminal

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Locale holds the parsed POSIX locale identifier
// lang_territory.CHARSET@modifier
type Locale struct {
	Raw       string
	Lang      string
	Territory string
	Charset   string
	Modifier  string
}

// DetectLocale reads the effective locale from the environment.
// Precedence: LC_ALL > LC_CTYPE > LANG. Returns the zero Locale
// when none is set.
func DetectLocale() Locale {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if raw := os.Getenv(name); raw != "" {
			return ParseLocale(raw)
		}
	}
	return Locale{}
}

// ParseLocale splits a locale identifier into its components.
// Missing parts stay empty, so "C" parses to Lang "C" with no charset.
func ParseLocale(raw string) Locale {
	l := Locale{Raw: raw}
	rest := raw
	if i := strings.IndexByte(rest, '@'); i >= 0 {
		l.Modifier = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		l.Charset = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '_'); i >= 0 {
		l.Territory = rest[i+1:]
		rest = rest[:i]
	}
	l.Lang = rest
	return l
}

// Encoder converts cell runes to the output charset
type Encoder struct {
	name string
	cm   *charmap.Charmap  // single-byte fast path
	enc  *encoding.Encoder // transform path for multi-byte charsets
}

// UTF8Encoding returns the passthrough encoder for UTF-8 output
func UTF8Encoding() *Encoder {
	return &Encoder{name: "UTF-8"}
}

// ResolveEncoding maps a locale charset to an output encoder.
// Empty charset, UTF-8 spellings, and charset-less locales (C, POSIX)
// resolve to UTF-8. Other names go through the IANA registry; names
// the registry cannot resolve return an error.
func ResolveEncoding(charset string) (*Encoder, error) {
	name := strings.TrimSpace(charset)
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", "utf8":
		return UTF8Encoding(), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", charset, err)
	}
	if enc == nil {
		// Registered name with no backing implementation
		return nil, fmt.Errorf("charset %q: no encoding available", charset)
	}

	if cm, ok := enc.(*charmap.Charmap); ok {
		return &Encoder{name: name, cm: cm}, nil
	}
	return &Encoder{name: name, enc: encoding.ReplaceUnsupported(enc.NewEncoder())}, nil
}

// Name returns the charset name this encoder produces
func (e *Encoder) Name() string {
	return e.name
}

// UTF8 reports whether output is passthrough UTF-8
func (e *Encoder) UTF8() bool {
	return e.cm == nil && e.enc == nil
}

// AppendRune appends the encoded form of r to dst.
// Runes the charset cannot represent are substituted: U+FFFD under
// UTF-8, '?' under single-byte charmaps (U+FFFD has no byte form)
func (e *Encoder) AppendRune(dst []byte, r rune) []byte {
	if e.cm != nil {
		b, ok := e.cm.EncodeRune(r)
		if !ok {
			b = '?'
		}
		return append(dst, b)
	}
	if e.enc != nil {
		var scratch [utf8.UTFMax]byte
		n := utf8.EncodeRune(scratch[:], r)
		out, err := e.enc.Bytes(scratch[:n])
		if err != nil || len(out) == 0 {
			return append(dst, '?')
		}
		return append(dst, out...)
	}
	// utf8.AppendRune substitutes U+FFFD for invalid runes itself
	return utf8.AppendRune(dst, r)
}
