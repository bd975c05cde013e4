package buffer

import (
	"strings"

	"github.com/riverfjs/discordify-go/internal/types"
	"github.com/riverfjs/discordify-go/internal/util"
)

// TextBuffer accumulates the text of the open chunk and tracks its length
// in the configured unit.
type TextBuffer struct {
	parts  []string
	length int
	unit   types.Unit
}

// New creates a new TextBuffer measuring in unit.
func New(unit types.Unit) *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
		unit:  unit,
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.length += util.Len(text, tb.unit)
}

// Len returns the current length in the buffer's unit.
func (tb *TextBuffer) Len() int {
	return tb.length
}

// Fits reports whether text can be appended without exceeding limit.
func (tb *TextBuffer) Fits(text string, limit int) bool {
	return tb.length+util.Len(text, tb.unit) <= limit
}

// Empty reports whether nothing has been written since the last reset.
func (tb *TextBuffer) Empty() bool {
	return len(tb.parts) == 0
}

// EndsWithSpace reports whether the last written rune is whitespace.
func (tb *TextBuffer) EndsWithSpace() bool {
	if len(tb.parts) == 0 {
		return false
	}
	return util.EndsWithSpace(tb.parts[len(tb.parts)-1])
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	switch len(tb.parts) {
	case 0:
		return ""
	case 1:
		return tb.parts[0]
	}
	var sb strings.Builder
	for _, p := range tb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Flush returns the accumulated text and resets the buffer.
func (tb *TextBuffer) Flush() string {
	s := tb.String()
	tb.Reset()
	return s
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.length = 0
}
