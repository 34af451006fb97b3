package polyfmt

import "sync"

// state is the mutable record every rendering style shares: indentation
// depth, the debug gate, the wrap width, and the one-shot style filter.
// Every formatter operation takes mu for its duration; nothing here is
// touched without it.
type state struct {
	mu sync.Mutex

	debug         bool
	maxLineLength int
	indent        int
	allowed       map[Format]struct{}
	closed        bool
}

func newState(opts Options) *state {
	return &state{
		debug:         opts.Debug,
		maxLineLength: opts.MaxLineLength,
		indent:        opts.Padding,
	}
}

// takeAllowed reports whether a call rendering as f may proceed, draining
// the one-shot restriction as a side effect. The drain happens on every
// check, allowed or not, so a restriction can never leak into the next
// call. Callers must hold mu.
func (s *state) takeAllowed(f Format) bool {
	allowed := len(s.allowed) == 0
	if _, ok := s.allowed[f]; ok {
		allowed = true
	}
	s.allowed = nil
	return allowed
}

// setOnly installs the one-shot restriction. Callers must hold mu.
func (s *state) setOnly(formats []Format) {
	if len(formats) == 0 {
		s.allowed = nil
		return
	}
	s.allowed = make(map[Format]struct{}, len(formats))
	for _, f := range formats {
		s.allowed[f] = struct{}{}
	}
}

// enter increments the indentation depth and returns the guard that undoes
// it.
func (s *state) enter() *indentGuard {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indent++
	return &indentGuard{st: s}
}

// outdent decrements the indentation depth. At zero it is a no-op rather
// than an error. Callers must hold mu.
func (s *state) outdent() {
	if s.indent > 0 {
		s.indent--
	}
}

// close marks the state torn down. Guards released afterward do nothing.
// Callers must hold mu.
func (s *state) close() {
	s.closed = true
}

// indentGuard holds one indentation level on a state. Guards compose
// additively: the depth equals the number of unreleased guards (plus any
// initial padding), and siblings may be released in any order, from any
// goroutine.
type indentGuard struct {
	once sync.Once
	st   *state
}

// Release decrements the depth exactly once. Releasing again, releasing at
// depth zero, or releasing after the formatter finished are all no-ops.
func (g *indentGuard) Release() {
	g.once.Do(func() {
		st := g.st
		g.st = nil
		st.mu.Lock()
		defer st.mu.Unlock()
		if st.closed {
			return
		}
		st.outdent()
	})
}
