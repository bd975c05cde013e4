package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/discordify-go/internal/types"
)

// RuneWidth returns how many units r occupies when measured in unit.
//
// Characters outside the BMP take 2 UTF-16 code units (a surrogate pair);
// everything else takes 1 in both units.
func RuneWidth(r rune, unit types.Unit) int {
	if unit == types.UnitUTF16 && r > 0xFFFF {
		return 2
	}
	return 1
}

// Len returns the length of text measured in unit.
func Len(text string, unit types.Unit) int {
	if unit != types.UnitUTF16 {
		return utf8.RuneCountInString(text)
	}
	count := 0
	for _, r := range text {
		count += RuneWidth(r, unit)
	}
	return count
}

// HardSlice cuts text into consecutive pieces of at most size units.
//
// Pieces end on rune boundaries, so in UTF-16 mode a piece can be one unit
// short of size when the next rune is a surrogate pair.
func HardSlice(text string, size int, unit types.Unit) []string {
	if size <= 0 || text == "" {
		return nil
	}
	var pieces []string
	start, width := 0, 0
	for i, r := range text {
		w := RuneWidth(r, unit)
		if width+w > size && i > start {
			pieces = append(pieces, text[start:i])
			start, width = i, 0
		}
		width += w
	}
	return append(pieces, text[start:])
}

// IsBlank reports whether text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// EndsWithSpace reports whether the last rune of text is whitespace.
func EndsWithSpace(text string) bool {
	r, size := utf8.DecodeLastRuneInString(text)
	return size > 0 && unicode.IsSpace(r)
}

// StartsWithAny reports whether text begins with one of the runes in set.
func StartsWithAny(text, set string) bool {
	if text == "" || set == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return strings.ContainsRune(set, r)
}
