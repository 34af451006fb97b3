package polyfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// DefaultMaxLineLength is the wrap width used when the terminal width
// cannot be determined.
const DefaultMaxLineLength = 80

// Options configures a formatter. The zero value is usable: it resolves to
// debug off, a wrap width derived from the terminal, no initial padding,
// and standard input/output.
type Options struct {
	// Debug turns on printing for Debug-kind messages.
	Debug bool

	// MaxLineLength is the maximum character length for rendered lines,
	// including indentation. Zero means "terminal width minus a small
	// margin", falling back to DefaultMaxLineLength when the width cannot
	// be detected.
	MaxLineLength int

	// Padding is the initial indentation offset between the start of the
	// line and the start of the text.
	Padding int

	// Out is the destination for rendered output. Nil means os.Stdout.
	Out io.Writer

	// In is the source for Question input. Nil means os.Stdin.
	In io.Reader

	// NoColor disables glyph styling even on interactive terminals. The
	// NO_COLOR environment variable has the same effect.
	NoColor bool
}

// normalized fills in defaults, leaving the receiver untouched.
func (o Options) normalized() Options {
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = detectMaxLineLength()
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if os.Getenv("NO_COLOR") != "" {
		o.NoColor = true
	}
	return o
}

// interactive reports whether Out is a live terminal. Only file-backed
// writers can be; redirected or in-memory sinks never are.
func (o Options) interactive() bool {
	f, ok := o.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled reports whether glyphs should carry ANSI styling.
func (o Options) colorEnabled() bool {
	return !o.NoColor && o.interactive()
}

// detectMaxLineLength returns the terminal width minus a small margin, or
// DefaultMaxLineLength if the width is undeterminable.
func detectMaxLineLength() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultMaxLineLength
	}
	return width - 2
}

// fileOptions is the on-disk shape of a formatter configuration.
type fileOptions struct {
	Format        string `yaml:"format"`
	Debug         bool   `yaml:"debug"`
	MaxLineLength int    `yaml:"max_line_length"`
	Padding       int    `yaml:"padding"`
	NoColor       bool   `yaml:"no_color"`
}

// OptionsFromFile loads a format name and Options from a YAML file, so
// applications can let users persist their preferred output style.
//
// Recognized keys: format, debug, max_line_length, padding, no_color. An
// absent or empty format defaults to Plain.
func OptionsFromFile(path string) (Format, Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Options{}, fmt.Errorf("reading options file: %w", err)
	}

	var cfg fileOptions
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", Options{}, fmt.Errorf("parsing options file %s: %w", path, err)
	}

	format := Plain
	if cfg.Format != "" {
		format, err = ParseFormat(cfg.Format)
		if err != nil {
			return "", Options{}, fmt.Errorf("options file %s: %w", path, err)
		}
	}

	return format, Options{
		Debug:         cfg.Debug,
		MaxLineLength: cfg.MaxLineLength,
		Padding:       cfg.Padding,
		NoColor:       cfg.NoColor,
	}, nil
}
