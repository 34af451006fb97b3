package polyfmt

import (
	"bufio"
	"fmt"
	"strings"
)

// plainFormatter renders glyph-prefixed text without any framing. It is
// also what Spinner degrades to when output is not a terminal.
type plainFormatter struct {
	st  *state
	out *sink
	in  *bufio.Reader
	gl  glyphs
}

func newPlainFormatter(opts Options) *plainFormatter {
	return &plainFormatter{
		st:  newState(opts),
		out: newSink(opts.Out),
		in:  bufio.NewReader(opts.In),
		gl:  newGlyphs(opts.colorEnabled()),
	}
}

func (p *plainFormatter) Print(msg any) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.takeAllowed(Plain) {
		return
	}
	p.out.print(fmt.Sprint(msg))
}

func (p *plainFormatter) Println(msg any) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.takeAllowed(Plain) {
		return
	}

	lines := wrapText(fmt.Sprint(msg), p.st.indent, p.st.maxLineLength)
	if len(lines) == 0 {
		return
	}

	pad := strings.Repeat(" ", p.st.indent)
	for _, line := range lines {
		p.out.println(pad + line)
	}
}

func (p *plainFormatter) Error(msg any) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.takeAllowed(Plain) {
		return
	}
	p.renderKind(p.gl.err, errorReserve, msg)
}

func (p *plainFormatter) Success(msg any) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.takeAllowed(Plain) {
		return
	}
	p.renderKind(p.gl.success, successReserve, msg)
}

func (p *plainFormatter) Warning(msg any) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.takeAllowed(Plain) {
		return
	}
	p.renderKind(p.gl.warning, warningReserve, msg)
}

func (p *plainFormatter) Debug(msg any) {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	if !p.st.takeAllowed(Plain) || !p.st.debug {
		return
	}
	p.renderKind(p.gl.debug, debugReserve, msg)
}

// renderKind writes one glyph-prefixed message: the first line carries the
// glyph, continuation lines are indented past it so the text column stays
// aligned. Callers must hold the state lock.
func (p *plainFormatter) renderKind(glyph string, reserve int, msg any) {
	lines := wrapText(fmt.Sprint(msg), p.st.indent+reserve, p.st.maxLineLength)
	if len(lines) == 0 {
		return
	}

	pad := strings.Repeat(" ", p.st.indent)
	p.out.println(pad + glyph + " " + lines[0])

	contPad := strings.Repeat(" ", p.st.indent+reserve)
	for _, line := range lines[1:] {
		p.out.println(contPad + line)
	}
}

func (p *plainFormatter) Question(msg any) string {
	p.st.mu.Lock()
	if !p.st.takeAllowed(Plain) {
		p.st.mu.Unlock()
		return ""
	}

	lines := wrapText(fmt.Sprint(msg), p.st.indent+questionReserve, p.st.maxLineLength)
	if len(lines) == 0 {
		p.st.mu.Unlock()
		return ""
	}

	pad := strings.Repeat(" ", p.st.indent)
	contPad := strings.Repeat(" ", p.st.indent+questionReserve)
	if len(lines) == 1 {
		p.out.print(pad + p.gl.question + " " + lines[0])
	} else {
		p.out.println(pad + p.gl.question + " " + lines[0])
		for _, line := range lines[1 : len(lines)-1] {
			p.out.println(contPad + line)
		}
		p.out.print(contPad + lines[len(lines)-1])
	}
	p.out.flush()

	// The read must not hold the formatter lock; other goroutines may keep
	// rendering while we wait on the user.
	p.st.mu.Unlock()
	return readLine(p.in)
}

func (p *plainFormatter) Indent() IndentGuard {
	return p.st.enter()
}

func (p *plainFormatter) Outdent() {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	p.st.outdent()
}

func (p *plainFormatter) Spacer() {
	p.out.println("")
}

func (p *plainFormatter) Only(formats ...Format) Formatter {
	p.st.mu.Lock()
	defer p.st.mu.Unlock()
	p.st.setOnly(formats)
	return p
}

func (p *plainFormatter) Pause()  {}
func (p *plainFormatter) Resume() {}

func (p *plainFormatter) Finish() {
	p.st.mu.Lock()
	p.st.close()
	p.st.mu.Unlock()
	p.out.flush()
}

// readLine collects one line of user input. A failed read yields the empty
// string; the caller treats it like an empty answer.
func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
