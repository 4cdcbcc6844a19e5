// Package sgfcharset decodes raw SGF bytes to UTF-8 before parsing.
//
// SGF files declare their character encoding in the root CA property and
// default to ISO-8859-1 (Latin-1) per FF[4]. [Decode] sniffs CA from the
// raw bytes and transcodes accordingly; [DecodeAs] takes an explicit
// charset name. Charset names are resolved through the WHATWG index, so
// the usual aliases (latin1, Shift_JIS, euc-kr, windows-1252, ...) work.
package sgfcharset

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Decode transcodes raw SGF bytes to UTF-8 using the charset named by
// the first CA property in the input. Missing CA means ISO-8859-1.
func Decode(raw []byte) (string, error) {
	return DecodeAs(raw, Sniff(raw))
}

// DecodeAs transcodes raw SGF bytes to UTF-8 using the named charset.
// An empty name means ISO-8859-1.
func DecodeAs(raw []byte, name string) (string, error) {
	switch {
	case name == "", strings.EqualFold(name, "ISO-8859-1"), strings.EqualFold(name, "latin1"), strings.EqualFold(name, "latin-1"):
		// The WHATWG index aliases latin1 to windows-1252, so the FF[4]
		// default is resolved here instead.
		out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		return string(out), nil
	case strings.EqualFold(name, "UTF-8"), strings.EqualFold(name, "utf8"):
		return string(raw), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("charset %q: %w", name, err)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// Sniff extracts the charset name from the first CA property in the raw
// bytes, or "" if there is none. Only the region before the first game
// tree closes is searched; CA is a root property.
func Sniff(raw []byte) string {
	region := raw
	if i := bytes.IndexByte(raw, ')'); i >= 0 {
		region = raw[:i]
	}
	i := bytes.Index(region, []byte("CA["))
	if i < 0 {
		return ""
	}
	rest := region[i+3:]
	j := bytes.IndexByte(rest, ']')
	if j < 0 {
		return ""
	}
	return strings.TrimSpace(string(rest[:j]))
}
