package polyfmt

import (
	"bufio"
	"fmt"
	"strings"
)

// treeFormatter renders messages connected by box-drawing glyphs down the
// left edge, like a tree of log output.
type treeFormatter struct {
	st  *state
	out *sink
	in  *bufio.Reader
	gl  glyphs

	// headerPrinted flips when the first Println lands and never resets for
	// the life of the renderer: only the very first line gets the top
	// corner glyph.
	headerPrinted bool
}

func newTreeFormatter(opts Options) *treeFormatter {
	return &treeFormatter{
		st:  newState(opts),
		out: newSink(opts.Out),
		in:  bufio.NewReader(opts.In),
		gl:  newGlyphs(opts.colorEnabled()),
	}
}

func (t *treeFormatter) Print(msg any) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if !t.st.takeAllowed(Tree) {
		return
	}
	t.out.print(t.gl.vertical + fmt.Sprint(msg))
}

func (t *treeFormatter) Println(msg any) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if !t.st.takeAllowed(Tree) {
		return
	}

	lines := wrapText(fmt.Sprint(msg), t.st.indent, t.st.maxLineLength)

	// An empty message usually means the caller wants a visual gap without
	// reaching for Spacer. Keep the tree edge intact.
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		t.out.println(t.gl.vertical)
		return
	}

	connector := t.gl.branch
	if !t.headerPrinted {
		connector = t.gl.header
		t.headerPrinted = true
	}

	t.out.println(connector + strings.Repeat(t.gl.dash, t.st.indent) + " " + lines[0])
	for _, line := range lines[1:] {
		t.out.println(t.gl.vertical + strings.Repeat(" ", t.st.indent) + " " + line)
	}
}

func (t *treeFormatter) Error(msg any) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if !t.st.takeAllowed(Tree) {
		return
	}
	t.renderKind(t.gl.err, errorReserve, msg)
}

func (t *treeFormatter) Success(msg any) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if !t.st.takeAllowed(Tree) {
		return
	}
	t.renderKind(t.gl.success, successReserve, msg)
}

func (t *treeFormatter) Warning(msg any) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if !t.st.takeAllowed(Tree) {
		return
	}
	t.renderKind(t.gl.warning, warningReserve, msg)
}

func (t *treeFormatter) Debug(msg any) {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	if !t.st.takeAllowed(Tree) || !t.st.debug {
		return
	}
	t.renderKind(t.gl.debug, debugReserve, msg)
}

// renderKind writes one glyph-marked tree node. Callers must hold the state
// lock.
func (t *treeFormatter) renderKind(glyph string, reserve int, msg any) {
	lines := wrapText(fmt.Sprint(msg), t.st.indent+reserve, t.st.maxLineLength)
	if len(lines) == 0 {
		return
	}

	t.out.println(t.gl.branch + strings.Repeat(t.gl.dash, t.st.indent) + " " + glyph + " " + lines[0])
	for _, line := range lines[1:] {
		t.out.println(t.gl.vertical + strings.Repeat(" ", t.st.indent+reserve) + " " + line)
	}
}

func (t *treeFormatter) Question(msg any) string {
	t.st.mu.Lock()
	if !t.st.takeAllowed(Tree) {
		t.st.mu.Unlock()
		return ""
	}

	lines := wrapText(fmt.Sprint(msg), t.st.indent+questionReserve, t.st.maxLineLength)
	if len(lines) == 0 {
		t.st.mu.Unlock()
		return ""
	}

	first := t.gl.branch + strings.Repeat(t.gl.dash, t.st.indent) + " " + t.gl.question + " " + lines[0]
	if len(lines) == 1 {
		t.out.print(first)
	} else {
		t.out.println(first)
		contPad := t.gl.vertical + strings.Repeat(" ", t.st.indent+questionReserve) + " "
		for _, line := range lines[1 : len(lines)-1] {
			t.out.println(contPad + line)
		}
		t.out.print(contPad + lines[len(lines)-1])
	}
	t.out.flush()

	t.st.mu.Unlock()
	return readLine(t.in)
}

func (t *treeFormatter) Indent() IndentGuard {
	return t.st.enter()
}

func (t *treeFormatter) Outdent() {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	t.st.outdent()
}

func (t *treeFormatter) Spacer() {
	t.out.println(t.gl.gap)
}

func (t *treeFormatter) Only(formats ...Format) Formatter {
	t.st.mu.Lock()
	defer t.st.mu.Unlock()
	t.st.setOnly(formats)
	return t
}

func (t *treeFormatter) Pause()  {}
func (t *treeFormatter) Resume() {}

func (t *treeFormatter) Finish() {
	t.st.mu.Lock()
	t.st.close()
	t.st.mu.Unlock()
	t.out.flush()
}
