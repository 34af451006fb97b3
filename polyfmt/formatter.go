package polyfmt

import "fmt"

// Formatter is the rendering contract shared by every style. Messages are
// arbitrary values: human styles print them with fmt.Sprint, the JSON style
// serializes them with encoding/json.
//
// A Formatter is safe for concurrent use. Each call is one atomic operation
// against the formatter's state; only Question blocks, while it waits for a
// line of user input.
type Formatter interface {
	// Print renders a message without a trailing newline. For the Spinner
	// style this updates the live spinner text instead of printing a line.
	Print(msg any)

	// Println renders an informational message followed by a newline,
	// wrapped to the configured maximum line length.
	Println(msg any)

	// Error renders the message marked as an error.
	Error(msg any)

	// Success renders the message marked as a success.
	Success(msg any)

	// Warning renders the message marked as a warning.
	Warning(msg any)

	// Debug renders the message only when the formatter was constructed
	// with Options.Debug set.
	Debug(msg any)

	// Question renders the message as a prompt, blocks for one line of
	// user input, and returns it with surrounding whitespace trimmed. A
	// filtered-out or failed read returns the empty string.
	Question(msg any) string

	// Indent increases the indentation depth and returns a guard that
	// restores it. The guard may be released from any goroutine and
	// releasing it more than once has no further effect.
	Indent() IndentGuard

	// Outdent decreases the indentation depth. At depth zero it is a no-op.
	Outdent()

	// Spacer renders a visual gap between message groups.
	Spacer()

	// Only restricts the next render call to the given styles. The
	// restriction is consumed by that call no matter its outcome; it never
	// carries over to the call after.
	Only(formats ...Format) Formatter

	// Pause suspends any background redraw activity. Styles without
	// animation treat it as a no-op.
	Pause()

	// Resume restarts background redraw activity after Pause.
	Resume()

	// Finish flushes buffered output and tears the formatter down. It is
	// idempotent. Indent guards released after Finish are silent no-ops.
	Finish()
}

// IndentGuard represents one held indentation level. Release restores it.
type IndentGuard interface {
	// Release decrements the indentation depth exactly once. Further calls,
	// calls at depth zero, and calls after the formatter has finished are
	// all safe no-ops.
	Release()
}

// New constructs a formatter for the given style.
//
// When the Spinner style is requested but Options.Out is not an interactive
// terminal, a Plain formatter is returned instead: animation only makes
// sense against a live TTY.
func New(format Format, opts Options) (Formatter, error) {
	opts = opts.normalized()
	switch format {
	case Plain:
		return newPlainFormatter(opts), nil
	case Tree:
		return newTreeFormatter(opts), nil
	case Spinner:
		if !opts.interactive() {
			return newPlainFormatter(opts), nil
		}
		return newSpinnerFormatter(opts), nil
	case JSON:
		return newJSONFormatter(opts), nil
	case Silent:
		return silentFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
