package discordify

import "strings"

// MessageTrace tracks where a message came from.
type MessageTrace struct {
	// Segment is the index of the rewriter segment the message belongs to.
	Segment int
	// Part is the index of the message within its segment.
	Part int
	// Placeholder is set when the message carries a rewritten image.
	Placeholder bool
}

// Message is one chunk ready to be sent to Discord.
type Message struct {
	Text  string
	Trace MessageTrace
}

// Len returns the length of the message in runes.
func (m *Message) Len() int {
	return CountText(m.Text)
}

func hasPlaceholder(text, glyph string) bool {
	return strings.Contains(text, "["+glyph+"](")
}
