package polyfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderPlain runs fn against a plain formatter wired to an in-memory
// buffer and returns everything it wrote.
func renderPlain(opts Options, fn func(f Formatter)) string {
	var buf bytes.Buffer
	opts.Out = &buf
	if opts.In == nil {
		opts.In = strings.NewReader("")
	}
	f, _ := New(Plain, opts)
	fn(f)
	f.Finish()
	return buf.String()
}

func TestPlainPrintln_EmitsSingleLine_When_TextExactlyFillsWidth(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Println("Fast frogs leap over every lazy dogs to.")
	})

	assert.Equal(t, "Fast frogs leap over every lazy dogs to.\n", out)
}

func TestPlainPrintln_WrapsAtWordBoundary_When_TextOverflowsWidth(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Println("Fast frogs leap over every lazy dogs to food.")
	})

	assert.Equal(t, "Fast frogs leap over every lazy dogs to\nfood.\n", out)
}

func TestPlainPrintln_ReachesSink_Before_Finish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(Plain, Options{MaxLineLength: 40, Out: &buf, In: strings.NewReader("")})
	require.NoError(t, err)

	f.Println("step 1 of 3 complete")
	assert.Equal(t, "step 1 of 3 complete\n", buf.String(),
		"a completed line must not wait for Finish")

	f.Error("midway failure")
	assert.Contains(t, buf.String(), "x midway failure\n")

	f.Finish()
}

func TestPlainPrint_EmitsNoNewline_When_Called(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{}, func(f Formatter) {
		f.Print("thinking...")
	})

	assert.Equal(t, "thinking...", out)
}

func TestPlainError_AlignsContinuations_When_MessageWraps(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 20}, func(f Formatter) {
		f.Error("something has gone badly wrong here")
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "x "), "first line carries the glyph: %q", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "continuation aligns under the text: %q", line)
		assert.False(t, strings.HasPrefix(line, "   "), "continuation over-indented: %q", line)
	}
}

func TestPlainKinds_UseTheirGlyphs_When_Rendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		render func(f Formatter)
		want   string
	}{
		{"success", func(f Formatter) { f.Success("ok") }, "✓ ok\n"},
		{"warning", func(f Formatter) { f.Warning("careful") }, "!! careful\n"},
		{"error", func(f Formatter) { f.Error("broken") }, "x broken\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := renderPlain(Options{MaxLineLength: 40}, tc.render)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestPlainDebug_StaysSilent_When_DebugDisabled(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Debug("hidden")
	})

	assert.Empty(t, out)
}

func TestPlainDebug_Renders_When_DebugEnabled(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40, Debug: true}, func(f Formatter) {
		f.Debug("visible")
	})

	assert.Equal(t, "[debug] visible\n", out)
}

func TestPlainIndent_ShiftsOutput_When_GuardHeld(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Println("top")
		guard := f.Indent()
		f.Println("nested")
		guard.Release()
		f.Println("top again")
	})

	assert.Equal(t, "top\n nested\ntop again\n", out)
}

func TestPlainIndent_StacksWithPadding_When_OptionSet(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40, Padding: 2}, func(f Formatter) {
		f.Println("padded")
		defer f.Indent().Release()
		f.Println("deeper")
	})

	assert.Equal(t, "  padded\n   deeper\n", out)
}

func TestPlainOnly_SuppressesOneCall_When_StyleNotListed(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Only(JSON).Println("machine only")
		f.Println("back to normal")
	})

	assert.Equal(t, "back to normal\n", out)
}

func TestPlainOnly_Renders_When_StyleListed(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Only(Plain, Tree).Println("both humans")
	})

	assert.Equal(t, "both humans\n", out)
}

func TestPlainQuestion_ReturnsTrimmedAnswer_When_InputAvailable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(Plain, Options{
		MaxLineLength: 40,
		Out:           &buf,
		In:            strings.NewReader("  blue  \n"),
	})
	require.NoError(t, err)

	answer := f.Question("What color?")
	f.Finish()

	assert.Equal(t, "blue", answer)
	assert.Equal(t, "? What color?", buf.String(), "prompt must not end in a newline")
}

func TestPlainQuestion_ReturnsEmpty_When_InputExhausted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(Plain, Options{Out: &buf, In: strings.NewReader("")})
	require.NoError(t, err)

	assert.Empty(t, f.Question("anyone there?"))
}

func TestPlainQuestion_SkipsPromptAndRead_When_FilteredOut(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(Plain, Options{Out: &buf, In: strings.NewReader("never read\n")})
	require.NoError(t, err)

	answer := f.Only(JSON).Question("suppressed?")
	f.Finish()

	assert.Empty(t, answer)
	assert.Empty(t, buf.String())
}

func TestPlainSpacer_EmitsBlankLine_When_Called(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Println("before")
		f.Spacer()
		f.Println("after")
	})

	assert.Equal(t, "before\n\nafter\n", out)
}

func TestPlainOutdent_MirrorsIndent_When_CalledDirectly(t *testing.T) {
	t.Parallel()

	out := renderPlain(Options{MaxLineLength: 40}, func(f Formatter) {
		f.Indent()
		f.Indent()
		f.Outdent()
		f.Println("one deep")
	})

	assert.Equal(t, " one deep\n", out)
}
