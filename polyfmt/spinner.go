package polyfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// spinFrames is the braille-dot animation cycle.
var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinInterval is the redraw cadence of the live frame.
const spinInterval = 120 * time.Millisecond

// spinWidget is the live animation behind the Spinner style. It owns the
// terminal line it draws on: persistent output goes through printAbove,
// which clears the frame, emits the lines, and redraws underneath them.
type spinWidget struct {
	out io.Writer

	mu       sync.Mutex
	message  string
	frameIdx int
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func newSpinWidget(out io.Writer) *spinWidget {
	return &spinWidget{out: out}
}

func (s *spinWidget) start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.run()
}

// stop halts the animation and clears its line. Safe to call when already
// stopped.
func (s *spinWidget) stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
	s.clearLine()
}

func (s *spinWidget) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(spinInterval)
	defer ticker.Stop()

	s.render()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frameIdx = (s.frameIdx + 1) % len(spinFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *spinWidget) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderLocked()
}

func (s *spinWidget) renderLocked() {
	fmt.Fprint(s.out, "\r\033[K")
	fmt.Fprintf(s.out, "%s %s", spinFrames[s.frameIdx], s.message)
}

func (s *spinWidget) clearLine() {
	fmt.Fprint(s.out, "\r\033[K")
}

func (s *spinWidget) setMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	running := s.running
	if running {
		s.renderLocked()
	}
	s.mu.Unlock()
}

// printAbove emits persistent lines over the animation: clear the frame,
// write the lines, then redraw the frame below them.
func (s *spinWidget) printAbove(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.out, "\r\033[K")
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
	if s.running {
		s.renderLocked()
	}
}

// spinnerFormatter renders messages above a live spinner. New hands it out
// only when output is an interactive terminal; otherwise callers get Plain.
type spinnerFormatter struct {
	st *state
	w  *spinWidget
	in *bufio.Reader
	gl glyphs

	out io.Writer
}

func newSpinnerFormatter(opts Options) *spinnerFormatter {
	w := newSpinWidget(opts.Out)
	w.start()
	return &spinnerFormatter{
		st:  newState(opts),
		w:   w,
		in:  bufio.NewReader(opts.In),
		gl:  newGlyphs(opts.colorEnabled()),
		out: opts.Out,
	}
}

// Print swaps the live spinner text rather than emitting a new line.
func (s *spinnerFormatter) Print(msg any) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.st.takeAllowed(Spinner) {
		return
	}
	s.w.setMessage(fmt.Sprint(msg))
}

func (s *spinnerFormatter) Println(msg any) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.st.takeAllowed(Spinner) {
		return
	}

	lines := wrapText(fmt.Sprint(msg), s.st.indent, s.st.maxLineLength)
	if len(lines) == 0 {
		return
	}

	pad := strings.Repeat(" ", s.st.indent)
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = pad + line
	}
	s.w.printAbove(padded)
}

func (s *spinnerFormatter) Error(msg any) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.st.takeAllowed(Spinner) {
		return
	}
	s.renderKind(s.gl.err, errorReserve, msg)
}

func (s *spinnerFormatter) Success(msg any) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.st.takeAllowed(Spinner) {
		return
	}
	s.renderKind(s.gl.success, successReserve, msg)
}

func (s *spinnerFormatter) Warning(msg any) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.st.takeAllowed(Spinner) {
		return
	}
	s.renderKind(s.gl.warning, warningReserve, msg)
}

func (s *spinnerFormatter) Debug(msg any) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	if !s.st.takeAllowed(Spinner) || !s.st.debug {
		return
	}
	s.renderKind(s.gl.debug, debugReserve, msg)
}

func (s *spinnerFormatter) renderKind(glyph string, reserve int, msg any) {
	lines := wrapText(fmt.Sprint(msg), s.st.indent+reserve, s.st.maxLineLength)
	if len(lines) == 0 {
		return
	}

	pad := strings.Repeat(" ", s.st.indent)
	contPad := strings.Repeat(" ", s.st.indent+reserve)
	padded := make([]string, len(lines))
	padded[0] = pad + glyph + " " + lines[0]
	for i, line := range lines[1:] {
		padded[i+1] = contPad + line
	}
	s.w.printAbove(padded)
}

// Question suspends the animation before blocking on input, so the redraw
// goroutine cannot race the prompt or the user's typed echo.
func (s *spinnerFormatter) Question(msg any) string {
	s.st.mu.Lock()
	if !s.st.takeAllowed(Spinner) {
		s.st.mu.Unlock()
		return ""
	}

	lines := wrapText(fmt.Sprint(msg), s.st.indent+questionReserve, s.st.maxLineLength)
	if len(lines) == 0 {
		s.st.mu.Unlock()
		return ""
	}

	s.w.stop()

	pad := strings.Repeat(" ", s.st.indent)
	contPad := strings.Repeat(" ", s.st.indent+questionReserve)
	if len(lines) == 1 {
		fmt.Fprint(s.out, pad+s.gl.question+" "+lines[0])
	} else {
		fmt.Fprintln(s.out, pad+s.gl.question+" "+lines[0])
		for _, line := range lines[1 : len(lines)-1] {
			fmt.Fprintln(s.out, contPad+line)
		}
		fmt.Fprint(s.out, contPad+lines[len(lines)-1])
	}

	s.st.mu.Unlock()
	input := readLine(s.in)
	s.w.start()
	return input
}

func (s *spinnerFormatter) Indent() IndentGuard {
	return s.st.enter()
}

func (s *spinnerFormatter) Outdent() {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.st.outdent()
}

func (s *spinnerFormatter) Spacer() {
	s.w.printAbove([]string{""})
}

func (s *spinnerFormatter) Only(formats ...Format) Formatter {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.st.setOnly(formats)
	return s
}

func (s *spinnerFormatter) Pause() {
	s.w.stop()
}

func (s *spinnerFormatter) Resume() {
	s.w.start()
}

func (s *spinnerFormatter) Finish() {
	s.st.mu.Lock()
	s.st.close()
	s.st.mu.Unlock()
	s.w.stop()
}
