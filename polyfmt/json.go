package polyfmt

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/dkoosis/polyfmt/internal/logging"
)

// record is one line of machine-readable output: the message kind plus the
// caller's payload, serialized as given.
type record struct {
	Label string `json:"label"`
	Data  any    `json:"data"`
}

// jsonFormatter emits exactly one record per call, ignoring wrapping and
// indentation entirely; machine consumers do their own presentation.
type jsonFormatter struct {
	st  *state
	out *sink
	in  *bufio.Reader
}

func newJSONFormatter(opts Options) *jsonFormatter {
	return &jsonFormatter{
		st:  newState(opts),
		out: newSink(opts.Out),
		in:  bufio.NewReader(opts.In),
	}
}

// emit writes one record. A payload that cannot be serialized degrades to a
// diagnostic record instead of surfacing an error to the caller. Callers
// must hold the state lock.
func (j *jsonFormatter) emit(label string, msg any) {
	b, err := json.Marshal(record{Label: label, Data: msg})
	if err != nil {
		logging.GetLogger("json").Debug().Err(err).Msg("message not serializable")
		b, _ = json.Marshal(record{
			Label: "error",
			Data:  fmt.Sprintf("serializing message: %v", err),
		})
	}
	j.out.println(string(b))
}

func (j *jsonFormatter) Print(msg any) {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	if !j.st.takeAllowed(JSON) {
		return
	}
	j.emit("info", msg)
}

func (j *jsonFormatter) Println(msg any) {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	if !j.st.takeAllowed(JSON) {
		return
	}
	j.emit("info", msg)
}

func (j *jsonFormatter) Error(msg any) {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	if !j.st.takeAllowed(JSON) {
		return
	}
	j.emit("error", msg)
}

func (j *jsonFormatter) Success(msg any) {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	if !j.st.takeAllowed(JSON) {
		return
	}
	j.emit("success", msg)
}

func (j *jsonFormatter) Warning(msg any) {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	if !j.st.takeAllowed(JSON) {
		return
	}
	j.emit("warning", msg)
}

func (j *jsonFormatter) Debug(msg any) {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	if !j.st.takeAllowed(JSON) || !j.st.debug {
		return
	}
	j.emit("debug", msg)
}

// Question still blocks for input even though the prompt is a record; if
// that is unwanted in automation, filter the call with Only first.
func (j *jsonFormatter) Question(msg any) string {
	j.st.mu.Lock()
	if !j.st.takeAllowed(JSON) {
		j.st.mu.Unlock()
		return ""
	}
	j.emit("question", msg)
	j.out.flush()
	j.st.mu.Unlock()
	return readLine(j.in)
}

func (j *jsonFormatter) Indent() IndentGuard {
	return j.st.enter()
}

func (j *jsonFormatter) Outdent() {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	j.st.outdent()
}

// Spacer is a no-op: blank lines would only corrupt a record stream.
func (j *jsonFormatter) Spacer() {}

func (j *jsonFormatter) Only(formats ...Format) Formatter {
	j.st.mu.Lock()
	defer j.st.mu.Unlock()
	j.st.setOnly(formats)
	return j
}

func (j *jsonFormatter) Pause()  {}
func (j *jsonFormatter) Resume() {}

func (j *jsonFormatter) Finish() {
	j.st.mu.Lock()
	j.st.close()
	j.st.mu.Unlock()
	j.out.flush()
}
