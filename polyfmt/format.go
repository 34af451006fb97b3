package polyfmt

import (
	"fmt"
	"strings"
)

// Format identifies one rendering style. It selects the concrete formatter
// at construction time and is the vocabulary for Only restrictions.
type Format string

const (
	// Plain renders messages as glyph-prefixed text without decoration.
	Plain Format = "plain"

	// Tree renders messages with box-drawing connectors down the left side.
	Tree Format = "tree"

	// Spinner renders messages above a live animated progress glyph. When
	// output is not an interactive terminal it degrades to Plain.
	Spinner Format = "spinner"

	// JSON renders one machine-readable record per message.
	JSON Format = "json"

	// Silent renders nothing at all.
	Silent Format = "silent"
)

// ParseFormat resolves a case-insensitive style name, typically taken from a
// flag or config value, into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case Plain:
		return Plain, nil
	case Tree:
		return Tree, nil
	case Spinner:
		return Spinner, nil
	case JSON:
		return JSON, nil
	case Silent:
		return Silent, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// String returns the lowercase style name.
func (f Format) String() string {
	return string(f)
}
