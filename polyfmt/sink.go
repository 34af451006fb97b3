package polyfmt

import (
	"bufio"
	"io"
	"sync"

	"github.com/dkoosis/polyfmt/internal/logging"
)

// sink is the single point of byte output for a formatter. All writers
// serialize through its lock. It is line-buffered: every completed line is
// flushed through to the destination, while partial writes, like a prompt
// awaiting input, stay buffered until the caller flushes. Writes are
// best-effort: rendering must never abort the caller's control flow, so
// failures are logged at trace level and otherwise dropped.
type sink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func newSink(w io.Writer) *sink {
	return &sink{w: bufio.NewWriter(w)}
}

// print writes s verbatim without flushing.
func (s *sink) print(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(str)
}

// println writes s followed by a newline and flushes the completed line.
func (s *sink) println(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(str + "\n")
	s.flushLocked()
}

// flush pushes buffered output to the destination. Safe to call repeatedly.
func (s *sink) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

func (s *sink) write(str string) {
	if _, err := s.w.WriteString(str); err != nil {
		logging.GetLogger("sink").Trace().Err(err).Msg("write failed")
	}
}

func (s *sink) flushLocked() {
	if err := s.w.Flush(); err != nil {
		logging.GetLogger("sink").Trace().Err(err).Msg("flush failed")
	}
}
