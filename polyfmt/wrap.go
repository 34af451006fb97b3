package polyfmt

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// chunk is one run of text: either a word or a run of identical whitespace
// characters.
type chunk struct {
	text string
	ws   bool
}

// splitChunks tokenizes text into alternating word and whitespace runs.
// Consecutive identical whitespace characters group into a single run, so
// two spaces make one run while a space followed by a tab makes two. Keeping
// runs intact preserves visually meaningful spacing, like hand-written
// indentation or bullet alignment, instead of collapsing it to single
// spaces.
func splitChunks(text string) []chunk {
	var chunks []chunk
	var cur strings.Builder
	var curWS bool
	var lastRune rune

	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, chunk{text: cur.String(), ws: curWS})
			cur.Reset()
		}
	}

	for _, r := range text {
		ws := unicode.IsSpace(r)
		if cur.Len() > 0 {
			if ws != curWS || (ws && r != lastRune) {
				flush()
			}
		}
		cur.WriteRune(r)
		curWS = ws
		lastRune = r
	}
	flush()

	return chunks
}

// wrapText reflows text to fit within maxWidth columns, the first indent of
// which are reserved for indentation. Words are never split: a single word
// wider than the remaining space gets a line of its own. Each explicit
// newline forces a break, so blank lines survive wrapping. Returns nil when
// nothing fits or the text is empty.
func wrapText(text string, indent, maxWidth int) []string {
	if maxWidth <= indent {
		return nil
	}
	avail := maxWidth - indent

	var lines []string
	var cur strings.Builder
	curWidth := 0

	// wrapped marks a line opened by a width break rather than an explicit
	// newline. Leading whitespace is dropped only on those lines; whitespace
	// the author wrote at the head of an explicit line stays.
	wrapped := false

	flush := func(byWrap bool) {
		line := cur.String()
		if byWrap {
			// A break we introduced should not leave invisible trailing
			// whitespace behind; explicit lines keep theirs verbatim.
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		lines = append(lines, line)
		cur.Reset()
		curWidth = 0
		wrapped = byWrap
	}

	for _, c := range splitChunks(text) {
		if c.ws && c.text[0] == '\n' {
			for range c.text {
				flush(false)
			}
			continue
		}

		w := runewidth.StringWidth(c.text)

		if c.ws {
			if curWidth == 0 && wrapped {
				continue
			}
			if curWidth > 0 && curWidth+w > avail {
				flush(true)
				continue
			}
			cur.WriteString(c.text)
			curWidth += w
			continue
		}

		if curWidth > 0 && curWidth+w > avail {
			flush(true)
		}
		cur.WriteString(c.text)
		curWidth += w
	}

	if cur.Len() > 0 {
		flush(false)
	}

	return lines
}
