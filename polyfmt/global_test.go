package polyfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapGlobal installs a plain formatter over a buffer as the process-wide
// formatter and restores the previous one when the test ends. Tests using
// it must not run in parallel.
func swapGlobal(t *testing.T, opts Options) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	opts.Out = &buf
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	f, err := New(Plain, opts)
	require.NoError(t, err)

	prev := GlobalFormatter()
	SetGlobalFormatter(f)
	t.Cleanup(func() { SetGlobalFormatter(prev) })

	return &buf
}

func TestGlobalHelpers_RenderOnInstalledFormatter_When_Called(t *testing.T) {
	buf := swapGlobal(t, Options{MaxLineLength: 40, Debug: true})

	Println("hello")
	Success("done")
	Warning("careful")
	Error("broken")
	Debug("detail")
	Finish()

	assert.Equal(t,
		"hello\n✓ done\n!! careful\nx broken\n[debug] detail\n",
		buf.String())
}

func TestGlobalHelpers_ApplyOneShotFilter_When_StylesGiven(t *testing.T) {
	buf := swapGlobal(t, Options{MaxLineLength: 40})

	Println("machine only", JSON)
	Println("everyone")
	Finish()

	assert.Equal(t, "everyone\n", buf.String())
}

func TestGlobalIndent_ReturnsWorkingGuard_When_Called(t *testing.T) {
	buf := swapGlobal(t, Options{MaxLineLength: 40})

	guard := Indent()
	Println("nested")
	guard.Release()
	Println("flat")
	Finish()

	assert.Equal(t, " nested\nflat\n", buf.String())
}

func TestGlobalOutdentAndSpacer_DelegateToFormatter_When_Called(t *testing.T) {
	buf := swapGlobal(t, Options{MaxLineLength: 40})

	Indent()
	Outdent()
	Println("flat")
	Spacer()
	Finish()

	assert.Equal(t, "flat\n\n", buf.String())
}

func TestGlobalQuestion_ReturnsAnswer_When_InputAvailable(t *testing.T) {
	buf := swapGlobal(t, Options{MaxLineLength: 40, In: strings.NewReader("ship it\n")})

	answer := Question("Ready?")
	Finish()

	assert.Equal(t, "ship it", answer)
	assert.Equal(t, "? Ready?", buf.String())
}

func TestGlobalFormatter_LazilyCreatesDefault_When_NoneInstalled(t *testing.T) {
	prev := GlobalFormatter()
	t.Cleanup(func() { SetGlobalFormatter(prev) })

	SetGlobalFormatter(nil)
	f := GlobalFormatter()

	require.NotNil(t, f)
	_, isPlain := f.(*plainFormatter)
	assert.True(t, isPlain)
}
