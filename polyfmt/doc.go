// Package polyfmt renders one logical stream of CLI messages in multiple
// visual styles: plain text, a box-drawn tree, an animated spinner,
// line-delimited JSON records, or fully suppressed output.
//
// A command line application usually wants pretty output for interactive
// users and machine-readable output for automation. polyfmt keeps the API
// identical across both: callers print info, error, success, warning, debug,
// and question messages against a single Formatter interface, and the style
// chosen at construction time decides what actually reaches the terminal.
//
// Construct a formatter directly:
//
//	fmt, err := polyfmt.New(polyfmt.Plain, polyfmt.Options{})
//	if err != nil {
//		return err
//	}
//	defer fmt.Finish()
//	fmt.Println("hello from polyfmt")
//
// or install one as the process-wide default and use the package-level
// helpers:
//
//	polyfmt.SetGlobalFormatter(fmt)
//	polyfmt.Success("all done")
//
// Individual calls can be restricted to specific styles with Only. The
// restriction applies to exactly the next call and is cleared afterward,
// whether or not that call produced output:
//
//	fmt.Only(polyfmt.Plain, polyfmt.Tree).Println("humans only")
//
// Anything passed as a message must be printable with fmt.Sprint and, for
// the JSON style, serializable with encoding/json. Color honors the
// NO_COLOR environment variable and is dropped automatically when output is
// not an interactive terminal.
package polyfmt
