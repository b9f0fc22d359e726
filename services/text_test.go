package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	s := newRecordSurface()
	f := Font{Name: "Helvetica", Size: 10}
	// One character measures 6pt at size 10 in the test surface.

	t.Run("Everything Fits On One Line", func(t *testing.T) {
		lines := WrapText(s, "hello world", f, 200)
		assert.Equal(t, []string{"hello world"}, lines)
	})

	t.Run("Breaks At Width", func(t *testing.T) {
		// "aaaa " and "bbbb " measure 30pt each, so only one word plus its
		// trailing space fits in 40pt.
		lines := WrapText(s, "aaaa bbbb cccc", f, 40)
		assert.Equal(t, []string{"aaaa", "bbbb", "cccc"}, lines)
	})

	t.Run("Preserves Word Sequence", func(t *testing.T) {
		text := "the quick brown fox jumps over the lazy dog"
		lines := WrapText(s, text, f, 100)
		assert.Equal(t, text, strings.Join(lines, " "))
	})

	t.Run("Lines Stay Within Width", func(t *testing.T) {
		lines := WrapText(s, "alpha beta gamma delta epsilon zeta", f, 80)
		for _, line := range lines {
			words := strings.Fields(line)
			width := 0.0
			for _, w := range words {
				width += s.TextWidth(w+" ", f)
			}
			assert.LessOrEqual(t, width, 80.0, "line %q", line)
		}
	})

	t.Run("Oversized Word Gets Its Own Line", func(t *testing.T) {
		lines := WrapText(s, "a extraordinarily b", f, 30)
		assert.Contains(t, lines, "extraordinarily")
		for _, line := range lines {
			assert.NotEmpty(t, line)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Nil(t, WrapText(s, "", f, 100))
		assert.Nil(t, WrapText(s, "   ", f, 100))
	})

	t.Run("Never Emits Empty Lines", func(t *testing.T) {
		lines := WrapText(s, "one  two   three", f, 25)
		for _, line := range lines {
			assert.NotEmpty(t, line)
		}
	})
}

func TestTruncateText(t *testing.T) {
	t.Run("Short Text Unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", TruncateText("hello", 25))
	})

	t.Run("Long Text Cut With Ellipsis", func(t *testing.T) {
		got := TruncateText("this description is much too long for the cell", 10)
		assert.Equal(t, "this descr...", got)
	})

	t.Run("Zero Limit Means No Truncation", func(t *testing.T) {
		assert.Equal(t, "anything at all", TruncateText("anything at all", 0))
	})

	t.Run("Multibyte Safe", func(t *testing.T) {
		got := TruncateText("pâté général überweisung", 4)
		assert.Equal(t, "pâté...", got)
	})
}
