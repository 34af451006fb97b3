package polyfmt

// silentFormatter renders nothing at all, for callers that asked for no
// output. The indent guards it hands out honor the usual release contract;
// they just have nothing to restore.
type silentFormatter struct{}

func (silentFormatter) Print(any)   {}
func (silentFormatter) Println(any) {}
func (silentFormatter) Error(any)   {}
func (silentFormatter) Success(any) {}
func (silentFormatter) Warning(any) {}
func (silentFormatter) Debug(any)   {}

func (silentFormatter) Question(any) string {
	return ""
}

func (silentFormatter) Indent() IndentGuard {
	return noopGuard{}
}

func (silentFormatter) Outdent() {}
func (silentFormatter) Spacer()  {}

func (s silentFormatter) Only(...Format) Formatter {
	return s
}

func (silentFormatter) Pause()  {}
func (silentFormatter) Resume() {}
func (silentFormatter) Finish() {}

type noopGuard struct{}

func (noopGuard) Release() {}
