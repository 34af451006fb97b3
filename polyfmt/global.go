package polyfmt

import "sync"

// The process-wide formatter behind the package-level helpers. It defaults
// to Plain with default options and can be swapped at runtime, typically
// once flags are parsed.
var (
	globalMu  sync.Mutex
	globalFmt Formatter
)

// globalLocked returns the process-wide formatter, creating the default on
// first use. Callers must hold globalMu.
func globalLocked() Formatter {
	if globalFmt == nil {
		globalFmt, _ = New(Plain, Options{})
	}
	return globalFmt
}

// SetGlobalFormatter replaces the formatter used by the package-level
// helpers.
func SetGlobalFormatter(f Formatter) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalFmt = f
}

// GlobalFormatter returns the current process-wide formatter.
func GlobalFormatter() Formatter {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalLocked()
}

// withGlobal runs fn against the global formatter, applying an optional
// one-shot style restriction first. The global lock is held for the whole
// call so the restriction and the render form one atomic step.
func withGlobal(only []Format, fn func(Formatter)) {
	globalMu.Lock()
	defer globalMu.Unlock()
	f := globalLocked()
	if len(only) > 0 {
		f = f.Only(only...)
	}
	fn(f)
}

// Print renders msg on the global formatter, optionally restricted to the
// given styles.
func Print(msg any, only ...Format) {
	withGlobal(only, func(f Formatter) { f.Print(msg) })
}

// Println renders msg plus a newline on the global formatter.
func Println(msg any, only ...Format) {
	withGlobal(only, func(f Formatter) { f.Println(msg) })
}

// Error renders msg as an error on the global formatter.
func Error(msg any, only ...Format) {
	withGlobal(only, func(f Formatter) { f.Error(msg) })
}

// Success renders msg as a success on the global formatter.
func Success(msg any, only ...Format) {
	withGlobal(only, func(f Formatter) { f.Success(msg) })
}

// Warning renders msg as a warning on the global formatter.
func Warning(msg any, only ...Format) {
	withGlobal(only, func(f Formatter) { f.Warning(msg) })
}

// Debug renders msg on the global formatter when debug output is enabled.
func Debug(msg any, only ...Format) {
	withGlobal(only, func(f Formatter) { f.Debug(msg) })
}

// Question prompts on the global formatter and returns the user's answer.
func Question(msg any, only ...Format) string {
	var answer string
	withGlobal(only, func(f Formatter) { answer = f.Question(msg) })
	return answer
}

// Indent increases the global formatter's indentation and returns the guard
// restoring it.
func Indent() IndentGuard {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalLocked().Indent()
}

// Outdent decreases the global formatter's indentation.
func Outdent() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLocked().Outdent()
}

// Spacer renders a visual gap on the global formatter.
func Spacer() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLocked().Spacer()
}

// Finish flushes the global formatter.
func Finish() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLocked().Finish()
}
